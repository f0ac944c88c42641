package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type PaymentStatusUpdate struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	OrderStatus       string `json:"order_status"`
}
