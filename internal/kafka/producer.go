// Package kafka содержит продюсер событий заказов и чата и консьюмер чата.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/caterquest/caterquest/internal/models"
	"github.com/segmentio/kafka-go"
)

// NewOrderEvent публикуется после коммита заказа в канал продавца.
type NewOrderEvent struct {
	VendorID   int64            `json:"VendorID"`
	Orders     []OrderLineEvent `json:"Orders"`
	TotalPrice string           `json:"TotalPrice"`
}

// OrderLineEvent описывает одну позицию в событии нового заказа.
type OrderLineEvent struct {
	MenuID   int64  `json:"menuID"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// StatusEvent публикуется после смены статуса заказа.
type StatusEvent struct {
	OrderID      int64              `json:"OrderID"`
	NewStatus    models.OrderStatus `json:"NewStatus"`
	CustomerName string             `json:"CustomerName"`
}

// ChatEvent рассылается всем подключенным клиентам.
type ChatEvent struct {
	Room     string `json:"room"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// UserJoinEvent публикуется при подключении клиента к чату.
type UserJoinEvent struct {
	Username string `json:"username"`
}

// Notifier описывает канал уведомлений о заказах и чате.
type Notifier interface {
	NewOrder(ctx context.Context, e NewOrderEvent) error
	OrderStatusUpdate(ctx context.Context, e StatusEvent) error
	Chat(ctx context.Context, e ChatEvent) error
	UserJoin(ctx context.Context, e UserJoinEvent) error
}

// Producer публикует события в Kafka. Ключ сообщения задает канал:
// vendor_<id> для новых заказов, customers для смены статуса.
type Producer struct {
	writer     *kafka.Writer
	orderTopic string
	chatTopic  string
}

func NewProducer(brokers []string, orderTopic, chatTopic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		orderTopic: orderTopic,
		chatTopic:  chatTopic,
	}
}

func (p *Producer) NewOrder(ctx context.Context, e NewOrderEvent) error {
	return p.publish(ctx, p.orderTopic, "new_order", fmt.Sprintf("vendor_%d", e.VendorID), e)
}

func (p *Producer) OrderStatusUpdate(ctx context.Context, e StatusEvent) error {
	return p.publish(ctx, p.orderTopic, "order_status_update", "customers", e)
}

func (p *Producer) Chat(ctx context.Context, e ChatEvent) error {
	return p.publish(ctx, p.chatTopic, "chat", "broadcast", e)
}

func (p *Producer) UserJoin(ctx context.Context, e UserJoinEvent) error {
	return p.publish(ctx, p.chatTopic, "user_join", "broadcast", e)
}

func (p *Producer) publish(ctx context.Context, topic, event, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event, err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event, err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
