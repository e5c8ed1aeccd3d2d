package storage

import "time"

type Config struct {
	ConnectionString string        `env:"PG_CONN_URL"`                       // ConnectionString is the connection string to the database.
	MaxOpenConns     int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"4"`  // MaxOpenConns is the maximum number of open connections to the database.
	RetryAttempts    int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of retry attempts to connect to the database.
	RetryInterval    time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"2s"` // RetryInterval is the interval between retry attempts.
}
