package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/MTahaFarrukh/PortBuilder/internal/config"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
)

const TopicProfileEvents = "profile.events"

const EventProfileSaved = "profile.saved"

// ProfileEventPayload is the message published after a profile document has
// been persisted. The worker consumes it to refresh pre-rendered views.
type ProfileEventPayload struct {
	EventType  string                 `json:"event_type"`
	UserID     string                 `json:"user_id"`
	Profile    *portfolio.UserProfile `json:"profile"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ProfileEventsWriter: profileWriter}, nil
}

// PublishProfileSaved implements the store's Publisher hook.
func (c *KafkaProducerClient) PublishProfileSaved(ctx context.Context, userID string, p *portfolio.UserProfile) error {
	payload := ProfileEventPayload{
		EventType:  EventProfileSaved,
		UserID:     userID,
		Profile:    p,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal profile event: %w", err)
	}

	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(userID),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}
