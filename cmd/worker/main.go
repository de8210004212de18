package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/MTahaFarrukh/PortBuilder/adapters/event"
	httpAdapter "github.com/MTahaFarrukh/PortBuilder/adapters/http"
	"github.com/MTahaFarrukh/PortBuilder/adapters/persistence"
	"github.com/MTahaFarrukh/PortBuilder/internal/application/render"
	"github.com/MTahaFarrukh/PortBuilder/internal/config"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/template"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

// The worker consumes profile.events and refreshes the pre-rendered view
// document the public view endpoint serves from Redis.
func main() {
	log.Println("Starting PortBuilder Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	renderer := render.NewRenderer(template.DefaultCatalog())

	profileConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "view-renderer-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer profileConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicProfileEvents)

	ctx := context.Background()
	for {
		msg, err := profileConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ProfileEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(profileConsumer, msg)
			continue
		}

		if payload.Profile == nil || payload.UserID == "" {
			log.Printf("WARN: event without profile or user id, skipping")
			commitMessage(profileConsumer, msg)
			continue
		}

		doc := renderer.Render(payload.Profile, "")
		raw, err := json.Marshal(doc)
		if err != nil {
			log.Printf("ERROR: Failed to marshal rendered view for %s: %v", payload.UserID, err)
			commitMessage(profileConsumer, msg)
			continue
		}

		key := httpAdapter.ViewCacheKeyPrefix + payload.UserID
		if err := redisClient.Set(ctx, key, raw, 0).Err(); err != nil {
			log.Printf("ERROR: Failed to cache rendered view for %s: %v", payload.UserID, err)
			continue
		}

		log.Printf("Refreshed rendered view for user %s [template: %s]", payload.UserID, doc.TemplateID)
		commitMessage(profileConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
