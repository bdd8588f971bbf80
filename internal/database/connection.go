package database

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	DBName          string
	Password        string
	MaxConn         int
	MaxIdleConn     int
	ConnMaxLifetime int
	LogLevel        string
	SSLMode         string
}

func NewConnection(dbConfig *DatabaseConfig) (*gorm.DB, error) {
	if err := validateConfig(dbConfig); err != nil {
		return nil, err
	}

	portInt, err := strconv.Atoi(dbConfig.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port number: %w", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbConfig.Host, portInt, dbConfig.User, dbConfig.Password, dbConfig.DBName, dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(dbConfig.LogLevel)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(orDefault(dbConfig.MaxIdleConn, 10))
	sqlDB.SetMaxOpenConns(orDefault(dbConfig.MaxConn, 100))
	sqlDB.SetConnMaxLifetime(time.Duration(orDefault(dbConfig.ConnMaxLifetime, 60)) * time.Minute)

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToUpper(level) {
	case "SILENT":
		return logger.Silent
	case "ERROR":
		return logger.Error
	case "INFO":
		return logger.Info
	default:
		return logger.Warn
	}
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func validateConfig(config *DatabaseConfig) error {
	switch {
	case config == nil:
		return errors.New("database config is nil")
	case config.Host == "":
		return errors.New("database host config is empty")
	case config.Port == "":
		return errors.New("database port config is empty")
	case config.User == "":
		return errors.New("database user config is empty")
	case config.Password == "":
		return errors.New("database password config is empty")
	case config.DBName == "":
		return errors.New("database name config is empty")
	case config.SSLMode == "":
		return errors.New("database SSLMode config is empty")
	}
	return nil
}
