package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration for the custodian service.
type Server struct {
	Addr          string
	JWTSigningKey string

	PostgresURL string
	RedisURL    string

	GraphStoreURL  string
	VectorStoreURL string
	MemoryStoreURL string
	KeyServiceURL  string

	KafkaBrokers []string
	AuditTopic   string

	// RetentionSweepSpec is a cron expression; empty disables the sweeper.
	RetentionSweepSpec string
}

// ShutdownTimeout bounds graceful shutdown of the HTTP server and workers.
const ShutdownTimeout = 10 * time.Second

// FromEnv builds a Server config from environment variables so main stays
// lean. A backend URL left empty means that backend is absent in this
// deployment; absence is not a failure.
func FromEnv() Server {
	cfg := Server{
		Addr:               getenv("CUSTODIAN_ADDR", ":8080"),
		JWTSigningKey:      getenv("CUSTODIAN_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		PostgresURL:        os.Getenv("CUSTODIAN_POSTGRES_URL"),
		RedisURL:           os.Getenv("CUSTODIAN_REDIS_URL"),
		GraphStoreURL:      os.Getenv("CUSTODIAN_GRAPH_STORE_URL"),
		VectorStoreURL:     os.Getenv("CUSTODIAN_VECTOR_STORE_URL"),
		MemoryStoreURL:     os.Getenv("CUSTODIAN_MEMORY_STORE_URL"),
		KeyServiceURL:      os.Getenv("CUSTODIAN_KEY_SERVICE_URL"),
		AuditTopic:         getenv("CUSTODIAN_AUDIT_TOPIC", "custodian.audit"),
		RetentionSweepSpec: getenv("CUSTODIAN_RETENTION_SWEEP", "0 3 * * *"),
	}
	if brokers := os.Getenv("CUSTODIAN_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
