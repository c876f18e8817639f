package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

var _ domain.PublisherPort = (*DefaultKafkaPublisher)(nil)

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) PublishOrderStatus(event OrderStatusEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(OrderStatusTopic, domain.Message{Key: []byte(event.StoreID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishSettlement(event SettlementEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(SettlementTopic, domain.Message{Key: []byte(event.StoreID), Value: v})
}
