package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read once at startup from the environment (and .env, loaded by
// the entry point).
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	GinMode          string        `env:"GIN_MODE" envDefault:"debug"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	UseRemoteStorage bool          `env:"USE_REMOTE_STORAGE" envDefault:"false"`
	SeedDefaultData  bool          `env:"SEED_DEFAULT_DATA" envDefault:"true"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	Local    LocalStorage
	DynamoDB DynamoDB
}

type LocalStorage struct {
	Path string `env:"LOCAL_STORAGE_PATH" envDefault:"./data/gestplataform.json"`
}

// DynamoDB holds the remote backend settings. The static credentials default
// to "local" so DynamoDB Local works out of the box.
type DynamoDB struct {
	Region           string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string        `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string        `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint         string        `env:"DYNAMODB_ENDPOINT"`
	TablePrefix      string        `env:"DYNAMODB_TABLE_PREFIX"`
	TableWaitTimeout time.Duration `env:"DYNAMODB_TABLE_WAIT" envDefault:"30s"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
