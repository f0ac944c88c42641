package main

import (
	"context"
	"log"

	"storefront-backend/config"
	"storefront-backend/internal/app"
	"storefront-backend/internal/infrastructure/database/mongodb"
	"storefront-backend/internal/infrastructure/identity"
	kafkamq "storefront-backend/internal/infrastructure/message-queue/kafka"
	paymentgateway "storefront-backend/internal/infrastructure/payment-gateway"

	"github.com/segmentio/kafka-go"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	identityProvider, err := identity.CreateFirebaseIdentityProvider(context.Background(), config)
	if err != nil {
		log.Fatalf("Failed to initialize the identity provider: %v", err)
	}

	gateway := paymentgateway.CreateMidtransGateway(config)

	var kafkaProducer *kafka.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer = kafkamq.CreateKafkaProducer(config)
	}

	server := app.App{
		DB:            db,
		Config:        config,
		Identity:      identityProvider,
		Gateway:       gateway,
		KafkaProducer: kafkaProducer,
	}

	server.Start()
}
