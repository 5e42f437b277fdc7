package cmd

import (
	"log/slog"
	"testing"

	"boutique/internal/adapters/out/persistence"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WithDefaults(t *testing.T) {
	c := Config{}.WithDefaults()

	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, persistence.DialectSQLite, c.Dialect())
	assert.Equal(t, persistence.SQLiteFileDSN("boutique.db"), c.DSN())
	assert.Equal(t, "work-order-status-changed", c.KafkaWorkOrderTopic)
	assert.Empty(t, c.Brokers())
}

func TestConfig_PostgresDSN(t *testing.T) {
	c := Config{
		DBDriver:   "Postgres",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "boutique",
		DBPassword: "secret",
		DBName:     "boutique",
	}.WithDefaults()

	assert.Equal(t, persistence.DialectPostgres, c.Dialect())
	assert.Equal(t, "host=localhost port=5432 user=boutique password=secret dbname=boutique sslmode=disable", c.DSN())
}

func TestConfig_Brokers(t *testing.T) {
	c := Config{KafkaBrokers: "kafka-1:9092, kafka-2:9092,,"}

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Brokers())
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "loud"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{}.SlogLevel())
}
