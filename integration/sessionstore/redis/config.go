package redis

import "time"

// Config holds Redis connection settings, loadable via core/config.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	// SessionKey is the Redis key the session is stored under. Processes
	// serving different customers must use distinct keys.
	SessionKey string `env:"REDIS_SESSION_KEY" envDefault:"storefront:session"`

	// SessionTTL bounds how long an untouched session survives. Zero keeps
	// the session until it is cleared.
	SessionTTL time.Duration `env:"REDIS_SESSION_TTL" envDefault:"720h"`
}
