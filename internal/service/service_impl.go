package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/dto"
	"storefront-backend/internal/repository"
	"storefront-backend/pkg/errs"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const outboundCallTimeout = 15 * time.Second

type PaymentServiceImpl struct {
	repository    repository.OrderRepository
	gateway       PaymentGateway
	verifier      NotificationVerifier
	identity      IdentityProvider
	kafkaProducer *kafka.Conn
}

func CreatePaymentService(repository repository.OrderRepository, gateway PaymentGateway, verifier NotificationVerifier, identity IdentityProvider, kafkaProducer *kafka.Conn) PaymentService {
	return &PaymentServiceImpl{
		repository:    repository,
		gateway:       gateway,
		verifier:      verifier,
		identity:      identity,
		kafkaProducer: kafkaProducer,
	}
}

func (s *PaymentServiceImpl) GetEmailVerified(ctx context.Context, uid string) (verified bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
	defer cancel()

	return s.identity.GetEmailVerified(ctx, uid)
}

func (s *PaymentServiceImpl) CreateTransactionToken(ctx context.Context, req dto.ChargeRequest) (token string, err error) {
	var grossAmount int64
	chargeItems := make([]midtrans.ItemDetails, len(req.Items))
	for i, item := range req.Items {
		grossAmount += item.Price * int64(item.Quantity)
		chargeItems[i] = midtrans.ItemDetails{
			ID:    item.ID,
			Price: item.Price,
			Qty:   item.Quantity,
			Name:  item.Name,
		}
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  "order-id-" + req.OrderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.Customers.FirstName,
			LName: req.Customers.LastName,
			Email: req.Customers.Email,
			Phone: req.Customers.Phone,
		},
		Items: &chargeItems,
		Callbacks: &snap.Callbacks{
			Finish: req.URL,
		},
	}

	token, err = s.gateway.CreateTransactionToken(ctx, snapReq)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateTransactionToken").Msg("")
		return "", err
	}

	return token, nil
}

func (s *PaymentServiceImpl) GetTransactionDetail(ctx context.Context, transactionID string) (status *coreapi.TransactionStatusResponse, err error) {
	return s.verifier.CheckTransaction(ctx, transactionID)
}

// HandleNotification verifies the inbound payload against the gateway, maps
// the reported transaction status onto an order status, and writes it back.
// The parsed status object is returned to the gateway even when the
// write-back cannot be applied: a webhook retry would not change the
// outcome, so failures are logged rather than surfaced.
func (s *PaymentServiceImpl) HandleNotification(ctx context.Context, req dto.PaymentNotification) (status *coreapi.TransactionStatusResponse, err error) {
	status, err = s.verifier.CheckTransaction(ctx, req.OrderID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleNotification").Msg("")
		return nil, errs.ErrTransactionNotFound
	}

	orderStatus, ok := resolveOrderStatus(status.TransactionStatus, status.FraudStatus)
	if !ok {
		log.Ctx(ctx).Warn().
			Str("order_id", status.OrderID).
			Str("transaction_status", status.TransactionStatus).
			Msg("unrecognized transaction status, skipping order update")
		return status, nil
	}

	order, err := s.repository.GetOrderByOrderID(ctx, status.OrderID)
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			log.Ctx(ctx).Warn().
				Str("order_id", status.OrderID).
				Msg("notification references an unknown order, skipping update")
			return status, nil
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "HandleNotification").Msg("")
		return status, nil
	}

	err = s.repository.UpdateOrderStatus(ctx, order.ID, orderStatus)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "HandleNotification").Msg("")
		return status, nil
	}

	s.publishStatusUpdate(ctx, status.OrderID, status.TransactionStatus, orderStatus)

	return status, nil
}

// ReconcilePendingPayments re-queries the gateway for orders stuck in
// pending and applies the same status mapping the webhook path uses. Runs
// on a schedule; notifications remain the primary update path.
func (s *PaymentServiceImpl) ReconcilePendingPayments() {
	log.Info().Str("component", "ReconcilePendingPayments").Msg("cron starts")

	ctx := context.Background()
	orders, err := s.repository.GetOrdersByStatus(ctx, domain.OrderStatusPending)
	if err != nil {
		return
	}

	for _, order := range orders {
		status, err := s.verifier.CheckTransaction(ctx, order.OrderID)
		if err != nil {
			log.Error().Err(err).Str("component", "ReconcilePendingPayments").Str("order_id", order.OrderID).Msg("")
			continue
		}

		orderStatus, ok := resolveOrderStatus(status.TransactionStatus, status.FraudStatus)
		if !ok || orderStatus == order.Status {
			continue
		}

		err = s.repository.UpdateOrderStatus(ctx, order.ID, orderStatus)
		if err != nil {
			log.Error().Err(err).Str("component", "ReconcilePendingPayments").Str("order_id", order.OrderID).Msg("")
			continue
		}

		s.publishStatusUpdate(ctx, order.OrderID, status.TransactionStatus, orderStatus)
	}

	log.Info().Str("component", "ReconcilePendingPayments").Msg("cron ends")
}

// resolveOrderStatus maps a gateway-reported transaction status (plus the
// fraud sub-status for captures) onto the persisted order status. Unlisted
// values produce no update.
func resolveOrderStatus(transactionStatus string, fraudStatus string) (string, bool) {
	switch transactionStatus {
	case "capture":
		switch fraudStatus {
		case "challenge":
			return domain.OrderStatusChallenge, true
		case "accept":
			return domain.OrderStatusAccept, true
		}
		return "", false
	case "settlement":
		return domain.OrderStatusSettlement, true
	case "cancel", "deny", "expire":
		return domain.OrderStatusFailure, true
	case "pending":
		return domain.OrderStatusPending, true
	case "refund":
		return domain.OrderStatusRefund, true
	}

	return "", false
}

func (s *PaymentServiceImpl) publishStatusUpdate(ctx context.Context, orderID string, transactionStatus string, orderStatus string) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: "payment_status_updated",
		Data: dto.PaymentStatusUpdate{
			OrderID:           orderID,
			TransactionStatus: transactionStatus,
			OrderStatus:       orderStatus,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishStatusUpdate").Msg("")
		return
	}

	err = s.writeKafkaMessageWithKey(jsonMsg, orderID)
	if err != nil {
		log.Ctx(ctx).Error().Err(fmt.Errorf("failed to write Kafka message: %w", err)).Str("component", "publishStatusUpdate").Msg("")
	}
}

func (s *PaymentServiceImpl) writeKafkaMessageWithKey(msg []byte, key string) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Key:   []byte(key),
			Value: msg,
		},
	)
	return err
}
