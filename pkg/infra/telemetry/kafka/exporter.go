package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustPost/pkg/domain/audit"
	"github.com/confluentinc/confluent-kafka-go/kafka"
)

const (
	ExporterName = "kafka"

	flushTimeoutMs = 5000
)

type Config struct {
	Brokers string
	Topic   string
}

// Producer is the subset of *kafka.Producer used by the exporter.
type Producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// Exporter publishes audit entries as JSON to a kafka topic, keyed by target id.
type Exporter struct {
	cfg      Config
	producer Producer
}

func NewKafkaExporter(cfg Config) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewExporterWithProducer(cfg, producer), nil
}

func NewExporterWithProducer(cfg Config, producer Producer) *Exporter {
	return &Exporter{
		cfg:      cfg,
		producer: producer,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Brokers) == "" {
		return errors.New("kafka brokers are required")
	}
	if strings.TrimSpace(c.Topic) == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}

func (p *Exporter) Name() string {
	return ExporterName
}

func (p *Exporter) Export(ctx context.Context, entry *audit.Entry) error {
	if p.producer == nil {
		return errors.New("kafka producer is not initialized")
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.cfg.Topic, Partition: kafka.PartitionAny},
		Key:            []byte(entry.TargetID),
		Value:          data,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(entry.Action)},
		},
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event %T", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", m.TopicPartition.Error)
		}
	}
	return nil
}

func (p *Exporter) Close() {
	if p.producer != nil {
		p.producer.Flush(flushTimeoutMs)
		p.producer.Close()
	}
}
