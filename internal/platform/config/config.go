package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Server captures process-level configuration. Values come from the
// environment with development-friendly defaults so main stays lean.
type Server struct {
	Addr            string        `env:"VAULT_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `env:"VAULT_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// ActorName identifies uploads and fulfillments when the request carries no
	// identity header. Authentication itself is out of scope for the demo.
	ActorName string `env:"VAULT_ACTOR_NAME" env-default:"Current User"`

	// NotifyBrokers enables the Kafka notification mirror when non-empty.
	NotifyBrokers []string `env:"VAULT_NOTIFY_BROKERS"`
	NotifyTopic   string   `env:"VAULT_NOTIFY_TOPIC" env-default:"vault.notifications"`
}

// FromEnv builds a Server config from environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Server{}, fmt.Errorf("config: read environment: %w", err)
	}
	return cfg, nil
}
