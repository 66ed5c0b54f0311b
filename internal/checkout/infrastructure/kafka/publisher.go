package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/checkout/domain"
	"github.com/gmatheus/commerce-core/pkg/tracing"
)

type OrderPlacedEvent struct {
	OrderID   string          `json:"order_id"`
	ClientID  string          `json:"client_id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	InvoiceID string          `json:"invoice_id,omitempty"`
	Items     []EventItem     `json:"items"`
	PlacedAt  time.Time       `json:"placed_at"`
}

type EventItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// Publisher announces completed placements on a Kafka topic. It is a
// plain fire-and-forget producer: the placement has already committed
// by the time an event is written, and a write failure is the caller's
// to log, not to retry.
type Publisher struct {
	log    *slog.Logger
	writer *kafka.Writer
	topic  string
}

func NewPublisher(log *slog.Logger, brokers []string, topic string) *Publisher {
	return &Publisher{
		log: log,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		topic: topic,
	}
}

func (p *Publisher) OrderPlaced(ctx context.Context, o domain.Order, invoiceID string) error {
	event := OrderPlacedEvent{
		OrderID:   o.ID,
		ClientID:  o.ClientID,
		Status:    string(o.Status),
		Total:     o.Total(),
		InvoiceID: invoiceID,
		PlacedAt:  o.UpdatedAt,
	}
	for _, item := range o.Items {
		event.Items = append(event.Items, EventItem{ProductID: item.ID, Name: item.Name, Price: item.Price})
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	headers := []kafka.Header{{Key: "event_type", Value: []byte("OrderPlaced")}}
	headers = tracing.InjectKafkaHeaders(ctx, headers)

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic:   p.topic,
		Key:     []byte(o.ID),
		Value:   payload,
		Headers: headers,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
