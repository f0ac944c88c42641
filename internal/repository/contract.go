package repository

import (
	"context"

	"storefront-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository interface {
	GetOrderByOrderID(ctx context.Context, orderID string) (data domain.Order, err error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (err error)
	GetOrdersByStatus(ctx context.Context, status string) (data []domain.Order, err error)
}
