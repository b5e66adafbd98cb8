package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 300, cfg.Report.CacheTTLSeconds)
	assert.Equal(t, 5*time.Minute, cfg.Report.CacheTTL())
	assert.Equal(t, "loads/+/events", cfg.MQTT.Topic)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MQTT.Enabled())
}

func TestLoad_Environment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "loads")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REPORT_TIMEZONE", "Africa/Johannesburg")
	t.Setenv("INGESTION_WORKERS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Contains(t, cfg.Database.DSN(), "dbname=loads")
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 8, cfg.Ingestion.Workers)
	assert.Equal(t, "Africa/Johannesburg", cfg.Report.Location().String())
}

func TestReportLocation_Fallback(t *testing.T) {
	assert.Equal(t, time.UTC, (&ReportConfig{}).Location())
	assert.Equal(t, time.UTC, (&ReportConfig{Timezone: "Nowhere/Special"}).Location())
}
