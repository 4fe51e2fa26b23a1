// The worker tails the content.events topic and writes an audit line for
// every mutation of the portfolio document. It is optional; the API server
// works without it.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/minhvu/portfolio-cms/adapters/event"
	"github.com/minhvu/portfolio-cms/internal/config"
)

func main() {
	fmt.Println("Starting Portfolio CMS audit worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("FATAL: KAFKA_BROKERS is required for the audit worker")
	}

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "content-audit-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContentEvents)

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var evt event.ContentEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(consumer, msg)
			continue
		}

		if evt.ID != 0 {
			log.Printf("AUDIT: %s %s (id=%d) at %s", evt.Entity, evt.Action, evt.ID, evt.At.Format("2006-01-02T15:04:05Z07:00"))
		} else {
			log.Printf("AUDIT: %s %s at %s", evt.Entity, evt.Action, evt.At.Format("2006-01-02T15:04:05Z07:00"))
		}

		commitMessage(consumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
