package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestValidateConfig(t *testing.T) {
	valid := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "notestack",
		Password: "secret",
		DBName:   "notestack",
		SSLMode:  "disable",
	}
	assert.NoError(t, validateConfig(valid))
	assert.EqualError(t, validateConfig(nil), "database config is nil")

	missingHost := *valid
	missingHost.Host = ""
	assert.EqualError(t, validateConfig(&missingHost), "database host config is empty")

	missingSSL := *valid
	missingSSL.SSLMode = ""
	assert.EqualError(t, validateConfig(&missingSSL), "database SSLMode config is empty")
}

func TestNewConnection_InvalidPort(t *testing.T) {
	_, err := NewConnection(&DatabaseConfig{
		Host:     "localhost",
		Port:     "not-a-port",
		User:     "notestack",
		Password: "secret",
		DBName:   "notestack",
		SSLMode:  "disable",
	})
	assert.ErrorContains(t, err, "invalid port number")
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Warn, gormLogLevel("WARN"))
	assert.Equal(t, logger.Info, gormLogLevel("info"))
	assert.Equal(t, logger.Silent, gormLogLevel("silent"))
	assert.Equal(t, logger.Warn, gormLogLevel(""))
}
