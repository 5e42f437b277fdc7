package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"boutique/internal/adapters/out/persistence"
)

type Config struct {
	HTTPPort            string
	LogLevel            string
	DBDriver            string
	DBPath              string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	KafkaBrokers        string
	KafkaWorkOrderTopic string
	AlertsSchedule      string
}

const (
	defaultHTTPPort            = "8080"
	defaultDBPath              = "boutique.db"
	defaultKafkaWorkOrderTopic = "work-order-status-changed"
)

// WithDefaults fills the settings that may be left empty.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = defaultHTTPPort
	}
	if c.DBDriver == "" {
		c.DBDriver = string(persistence.DialectSQLite)
	}
	if c.DBPath == "" {
		c.DBPath = defaultDBPath
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.KafkaWorkOrderTopic == "" {
		c.KafkaWorkOrderTopic = defaultKafkaWorkOrderTopic
	}
	return c
}

// Dialect is the configured storage engine.
func (c Config) Dialect() persistence.Dialect {
	return persistence.Dialect(strings.ToLower(c.DBDriver))
}

// DSN builds the connection string of the configured driver.
func (c Config) DSN() string {
	if c.Dialect() == persistence.DialectPostgres {
		return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
	}
	return persistence.SQLiteFileDSN(c.DBPath)
}

// Brokers splits the comma separated broker list. Empty means Kafka is off.
func (c Config) Brokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// SlogLevel parses LogLevel, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
