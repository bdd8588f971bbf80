package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/customeros/notestack/internal/logger"
	"github.com/customeros/notestack/internal/tracing"
)

type Config struct {
	AppConfig               *AppConfig
	Logger                  *logger.Config
	Tracing                 *tracing.JaegerConfig
	NotestackDatabaseConfig *NotestackDatabaseConfig
	StorageConfig           *StorageConfig
}

func InitConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	return parseConfig()
}

func parseConfig() (*Config, error) {
	config := &Config{
		AppConfig:               &AppConfig{},
		Logger:                  &logger.Config{},
		Tracing:                 &tracing.JaegerConfig{},
		NotestackDatabaseConfig: &NotestackDatabaseConfig{},
		StorageConfig:           &StorageConfig{},
	}

	if err := env.Parse(config); err != nil {
		return nil, errors.Wrap(err, "error loading notestack config")
	}
	if config.AppConfig.MaxPartBytes < 0 {
		return nil, errors.New("MAX_PART_BYTES must not be negative")
	}

	return config, nil
}
