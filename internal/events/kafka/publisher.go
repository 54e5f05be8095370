// Package kafka publishes committed ledger mutations for downstream
// consumers (fraud screening, analytics). Publishing is best effort: the
// mutation has already committed by the time an event is emitted.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TransactionEvent is the wire shape of a committed ledger mutation.
type TransactionEvent struct {
	EventID                  string          `json:"eventId"`
	Operation                string          `json:"operation"`
	AccountNumber            string          `json:"accountNumber"`
	DestinationAccountNumber string          `json:"destinationAccountNumber,omitempty"`
	Amount                   decimal.Decimal `json:"amount"`
	Status                   string          `json:"status"`
	OccurredAt               time.Time       `json:"occurredAt"`
}

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, event TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AccountNumber),
		Value: data,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
