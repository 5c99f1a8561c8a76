package config

import (
	"fmt"

	"github.com/caarlos0/env"
)

const (
	StorageDisk     = "disk"
	StoragePostgres = "postgres"
)

type config struct {
	Production       bool   `env:"PRODUCTION" envDefault:"false"`
	Port             string `env:"PORT" envDefault:"8080"`
	Storage          string `env:"STORAGE" envDefault:"disk"`
	DataDir          string `env:"DATA_DIR" envDefault:"data"`
	PostgresUrl      string `env:"POSTGRES_URL" envDefault:""`
	RedisUrl         string `env:"REDIS_URL" envDefault:"redis:6379"`
	PreferencesKey   string `env:"PREFERENCES_KEY" envDefault:"timeline:preferences"`
	ReminderSchedule string `env:"REMINDER_SCHEDULE" envDefault:"@hourly"`
	SeedFile         string `env:"SEED_FILE" envDefault:""`
	MaxBodySize      int64  `env:"MAX_BODY_SIZE" envDefault:"1048576"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := validate(&conf); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
}

func validate(c *config) error {
	switch c.Storage {
	case StorageDisk:
	case StoragePostgres:
		if c.PostgresUrl == "" {
			return fmt.Errorf("POSTGRES_URL is required for %q storage", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}

	if c.MaxBodySize <= 0 {
		return fmt.Errorf("MAX_BODY_SIZE must be positive")
	}

	return nil
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func Storage() string {
	return conf.Storage
}

func DataDir() string {
	return conf.DataDir
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func PreferencesKey() string {
	return conf.PreferencesKey
}

func ReminderSchedule() string {
	return conf.ReminderSchedule
}

func SeedFile() string {
	return conf.SeedFile
}

func MaxBodySize() int64 {
	return conf.MaxBodySize
}
