package kafka

import (
	"context"
	"encoding/json"
	"log"

	"github.com/caterquest/caterquest/internal/chat"
	"github.com/segmentio/kafka-go"
)

// RunChatConsumer читает события чата и рассылает их подключенным клиентам.
// Сообщения без валидного JSON пропускаются. Рассылка не скоупится по
// комнатам: все клиенты получают все события.
func RunChatConsumer(ctx context.Context, brokers []string, topic, groupID string, registry *chat.Registry) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("kafka reader close error: %v", err)
		}
	}()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			log.Printf("kafka read error: %v", err)
			return
		}

		if !json.Valid(m.Value) {
			log.Printf("invalid chat message: %s", m.Value)
			continue
		}

		registry.Broadcast(m.Value)
	}
}
