package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production        bool          `env:"PRODUCTION" envDefault:"false"`
	Port              string        `env:"PORT" envDefault:"80"`
	PostgresUrl       string        `env:"POSTGRES_URL,required"`
	RedisUrl          string        `env:"REDIS_URL" envDefault:"redis:6379"`
	FeedSyncSchedule  string        `env:"FEED_SYNC_SCHEDULE" envDefault:"0 3 * * *"`
	FeedSyncHorizon   time.Duration `env:"FEED_SYNC_HORIZON" envDefault:"17520h"`
	FeedCacheTTL      time.Duration `env:"FEED_CACHE_TTL" envDefault:"24h"`
	ReminderSchedule  string        `env:"REMINDER_SCHEDULE" envDefault:"* * * * *"`
	ReminderLookahead time.Duration `env:"REMINDER_LOOKAHEAD" envDefault:"15m"`
}

var conf config

// Load reads the configuration from the environment. main calls it once on
// startup; packages that only import the getters stay usable without any
// environment set up, which keeps fake-backed tests runnable.
func Load() error {
	if err := env.Parse(&conf); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	return nil
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func FeedSyncSchedule() string {
	return conf.FeedSyncSchedule
}

// FeedSyncHorizon bounds how far into the future holiday rules are expanded
// on import; defaults to two years.
func FeedSyncHorizon() time.Duration {
	return conf.FeedSyncHorizon
}

func FeedCacheTTL() time.Duration {
	return conf.FeedCacheTTL
}

func ReminderSchedule() string {
	return conf.ReminderSchedule
}

func ReminderLookahead() time.Duration {
	return conf.ReminderLookahead
}
