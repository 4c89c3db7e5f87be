package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vitrine/internal/domain/entities"
	"vitrine/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaListingPublisher emits listing.submitted events. Messages are keyed by
// listing id so every event for one listing lands on the same partition.
type KafkaListingPublisher struct {
	writer messageWriter
	topic  string
}

var _ interfaces.IListingEventPublisher = (*KafkaListingPublisher)(nil)

func NewKafkaListingPublisher(brokers []string, topic string) *KafkaListingPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &KafkaListingPublisher{writer: w, topic: topic}
}

func (p *KafkaListingPublisher) PublishSubmitted(ctx context.Context, evt entities.ListingSubmittedEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(evt.ListingID),
		Value: data,
		Time:  evt.SubmittedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.EventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("[events][kafka] write failed topic=%s listing_id=%s err=%v", p.topic, evt.ListingID, err)
		return err
	}
	log.Printf("[events][kafka] published topic=%s event=%s listing_id=%s", p.topic, evt.EventType, evt.ListingID)
	return nil
}

func (p *KafkaListingPublisher) Close() error {
	return p.writer.Close()
}
