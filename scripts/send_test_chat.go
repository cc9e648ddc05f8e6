// Утилита для ручной проверки потока событий: публикует тестовые сообщения
// чата в Kafka, которые консьюмер раздает подключенным SSE-клиентам.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/caterquest/caterquest/internal/config"
	"github.com/segmentio/kafka-go"
)

func main() {
	count := flag.Int("count", 1, "Number of test chat messages to send")
	room := flag.String("room", "room_1_1", "Chat room name")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.ChatTopic == "" {
		log.Fatal("Kafka brokers or chat topic not configured")
	}

	w := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Topic:    cfg.Kafka.ChatTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("kafka writer close error: %v", err)
		}
	}()

	for i := 0; i < *count; i++ {
		event := map[string]string{
			"room":     *room,
			"username": "test-sender",
			"message":  fmt.Sprintf("test message %d", i+1),
		}

		payload, err := json.Marshal(event)
		if err != nil {
			log.Fatalf("Failed to marshal event: %v", err)
		}

		err = w.WriteMessages(context.Background(),
			kafka.Message{
				Key:   []byte("broadcast"),
				Value: payload,
				Headers: []kafka.Header{
					{Key: "event", Value: []byte("chat")},
				},
			},
		)
		if err != nil {
			log.Fatalf("Failed to send message: %v", err)
		}

		log.Printf("Message %d sent to %s", i+1, *room)
	}
}
