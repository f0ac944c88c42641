package repository

import (
	"context"
	"time"

	"storefront-backend/internal/domain"
	"storefront-backend/pkg/errs"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

func (r *MongoDBOrderRepositoryImpl) GetOrderByOrderID(ctx context.Context, orderID string) (data domain.Order, err error) {
	filter := bson.D{{Key: "order_id", Value: orderID}}

	err = r.db.Collection("orders").FindOne(ctx, filter).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByOrderID").Msg("")
		if err == mongo.ErrNoDocuments {
			return data, errs.ErrOrderNotFound
		}

		return data, err
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}

func (r *MongoDBOrderRepositoryImpl) GetOrdersByStatus(ctx context.Context, status string) (data []domain.Order, err error) {
	filter := bson.D{{Key: "status", Value: status}}

	cursor, err := r.db.Collection("orders").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByStatus").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByStatus").Msg("")
		return
	}

	return data, nil
}
