package mqtt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("tcp://broker:1883", "load-analytics")

	assert.Equal(t, "tcp://broker:1883", cfg.Broker)
	assert.True(t, cfg.AutoReconnect)
	assert.False(t, cfg.CleanSession)
	assert.Equal(t, time.Minute, cfg.MaxReconnectInterval)
}

func TestNewClient_NotConnected(t *testing.T) {
	c := NewClient(DefaultConfig("tcp://127.0.0.1:1", "test"), nil)

	assert.False(t, c.IsConnected())
}
