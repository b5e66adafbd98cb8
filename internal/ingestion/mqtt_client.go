package ingestion

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"load-analytics/internal/logger"
	pkgmqtt "load-analytics/pkg/mqtt"
)

// MessageSource is the subset of the MQTT client used for ingestion
type MessageSource interface {
	Connect() error
	Subscribe(topic string, qos byte, handler pkgmqtt.MessageHandler) error
	Unsubscribe(topics ...string) error
	Disconnect()
}

// MQTTIngestionConfig describes the topic and MQTT connection parameters.
type MQTTIngestionConfig struct {
	ClientConfig *pkgmqtt.Config
	Topic        string
	QoS          byte
}

// MQTTIngestionClient wires MQTT messages into the ingestion processor.
type MQTTIngestionClient struct {
	topic     string
	qos       byte
	client    MessageSource
	processor *Processor
	log       *zap.Logger

	mu      sync.Mutex
	started bool
}

// NewMQTTIngestionClient builds a new MQTT client for ingestion.
func NewMQTTIngestionClient(cfg *MQTTIngestionConfig, processor *Processor) (*MQTTIngestionClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	client := pkgmqtt.NewClient(cfg.ClientConfig, logger.Named("mqtt"))
	return newIngestionClient(cfg.Topic, cfg.QoS, client, processor)
}

func newIngestionClient(topic string, qos byte, client MessageSource, processor *Processor) (*MQTTIngestionClient, error) {
	if processor == nil {
		return nil, errors.New("processor is required")
	}
	if topic == "" {
		return nil, errors.New("no MQTT topic configured for ingestion")
	}

	return &MQTTIngestionClient{
		topic:     topic,
		qos:       qos,
		client:    client,
		processor: processor,
		log:       logger.Named("ingestion.mqtt"),
	}, nil
}

// Start establishes the MQTT connection and subscribes to the leg event topic.
func (c *MQTTIngestionClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	if err := c.client.Subscribe(c.topic, c.qos, c.handleLegEvent); err != nil {
		c.client.Disconnect()
		return fmt.Errorf("subscribe failed for topic %s: %w", c.topic, err)
	}

	c.log.Info("Listening for MQTT messages", zap.String("topic", c.topic))
	c.started = true
	return nil
}

// Stop unsubscribes and disconnects from the broker.
func (c *MQTTIngestionClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	if err := c.client.Unsubscribe(c.topic); err != nil {
		c.log.Warn("Failed to unsubscribe from MQTT topic", zap.String("topic", c.topic), zap.Error(err))
	}

	c.client.Disconnect()
	c.started = false
}

// handleLegEvent decodes a leg event and hands it to the processor.
func (c *MQTTIngestionClient) handleLegEvent(topic string, payload []byte) {
	msg, err := ParseLegEvent(topic, payload)
	if err != nil {
		c.log.Warn("Invalid leg event payload", zap.String("topic", topic), zap.Error(err))
		c.processor.metrics.Update(func(m *IngestMetrics) {
			m.MessagesFailed++
		})
		return
	}

	c.processor.ProcessLegEvent(msg)
}
