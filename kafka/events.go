package kafka

import "time"

// SaleCompletedItem is one committed line inside a sale event.
type SaleCompletedItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// SaleCompletedEvent is published after a checkout commits. Amounts travel as
// decimal strings to keep them exact across consumers.
type SaleCompletedEvent struct {
	EventID     string              `json:"event_id"`
	EventType   string              `json:"event_type"`
	SaleID      string              `json:"sale_id"`
	Items       []SaleCompletedItem `json:"items"`
	TotalAmount string              `json:"total_amount"`
	TotalCost   string              `json:"total_cost"`
	TotalProfit string              `json:"total_profit"`
	SoldAt      time.Time           `json:"sold_at"`
	Timestamp   time.Time           `json:"timestamp"`
}

// Event types
const (
	EventTypeSaleCompleted = "sale.completed"
)

// Kafka topics
const (
	TopicSaleCompleted = "sale-completed"
)
