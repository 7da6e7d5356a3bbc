package event

import (
	"context"
	"encoding/json"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type StockEventType string

const (
	StockEventCreated   StockEventType = "sweet.created"
	StockEventUpdated   StockEventType = "sweet.updated"
	StockEventPurchased StockEventType = "sweet.purchased"
	StockEventRestocked StockEventType = "sweet.restocked"
	StockEventDeleted   StockEventType = "sweet.deleted"
)

// StockEvent 庫存異動事件
// 每次成功的庫存寫入都會發布一筆, 供下游報表或補貨流程消費
type StockEvent struct {
	Type       StockEventType `json:"type"`
	SweetID    uuid.UUID      `json:"sweet_id"`
	Name       string         `json:"name"`
	Quantity   int            `json:"quantity"`
	InStock    bool           `json:"in_stock"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type StockPublisher interface {
	Publish(ctx context.Context, evt StockEvent) error
	Close() error
}

type kafkaStockPublisher struct {
	writer *kafka.Writer
}

// NewKafkaStockPublisher 建立kafka庫存事件發布器
// 同步模式, 會block到訊息寫入
func NewKafkaStockPublisher(brokers []string, topic string) StockPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: time.Second,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  3,

		// 重連機制設置
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second,
					DualStack: true,
					KeepAlive: 30 * time.Second,
				}
				return dialer.DialContext(ctx, network, address)
			},
		},

		// 壓縮設置
		Compression: kafka.Snappy,
	}

	return &kafkaStockPublisher{writer: writer}
}

func (p *kafkaStockPublisher) Publish(ctx context.Context, evt StockEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.SweetID.String()),
		Value: payload,
	})
}

func (p *kafkaStockPublisher) Close() error {
	return p.writer.Close()
}
