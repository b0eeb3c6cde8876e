package config

import (
	"os"
	"strings"
	"time"
)

// CatalogCacheTTL bounds staleness of the cached category catalog.
var CatalogCacheTTL = 5 * time.Minute

// Server captures process level configuration.
type Server struct {
	Addr        string
	PostgresDSN string
	Redis       RedisConfig
	Kafka       KafkaConfig
}

// RedisConfig holds go-redis client settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds event publisher settings. Empty Brokers disables the
// Kafka publisher; events then stay in-process only.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("SUPPLIERHUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	topic := os.Getenv("SUPPLIERHUB_KAFKA_TOPIC")
	if topic == "" {
		topic = "supplierhub.events"
	}

	var brokers []string
	if raw := os.Getenv("SUPPLIERHUB_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return Server{
		Addr:        addr,
		PostgresDSN: os.Getenv("SUPPLIERHUB_POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("SUPPLIERHUB_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
	}
}
