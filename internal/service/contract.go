package service

import (
	"context"

	"storefront-backend/internal/dto"

	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type PaymentService interface {
	GetEmailVerified(ctx context.Context, uid string) (verified bool, err error)
	CreateTransactionToken(ctx context.Context, req dto.ChargeRequest) (token string, err error)
	GetTransactionDetail(ctx context.Context, transactionID string) (status *coreapi.TransactionStatusResponse, err error)
	HandleNotification(ctx context.Context, req dto.PaymentNotification) (status *coreapi.TransactionStatusResponse, err error)
	ReconcilePendingPayments()
}

type PaymentGateway interface {
	CreateTransactionToken(ctx context.Context, req *snap.Request) (string, error)
}

// NotificationVerifier is the gateway's authenticity check for inbound
// notifications: the reported transaction is re-queried at the gateway and
// that response is the authoritative status object.
type NotificationVerifier interface {
	CheckTransaction(ctx context.Context, id string) (*coreapi.TransactionStatusResponse, error)
}

type IdentityProvider interface {
	GetEmailVerified(ctx context.Context, uid string) (bool, error)
}
