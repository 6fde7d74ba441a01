package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/tuanhng/me-api/internal/config"
	"github.com/tuanhng/me-api/pkg/logger"
)

const TopicProfileEvents = "profile.events"

type ProfileEvent struct {
	Action    string    `json:"action"` // created | updated | provisioned
	ProfileID int64     `json:"profile_id"`
	At        time.Time `json:"at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka producer successfully.")
	return &KafkaProducerClient{ProfileEventsWriter: writer, logger: log}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, action string, profileID int64) error {
	payload, err := json.Marshal(ProfileEvent{
		Action:    action,
		ProfileID: profileID,
		At:        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal profile event: %w", err)
	}

	return c.ProfileEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(profileID, 10)),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}
