package database

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DatabaseConfig struct {
	Host            string `env:"VALIDATION_POSTGRES_HOST"`
	Port            string `env:"VALIDATION_POSTGRES_PORT" envDefault:"5432"`
	User            string `env:"VALIDATION_POSTGRES_USER"`
	DBName          string `env:"VALIDATION_POSTGRES_DB_NAME"`
	Password        string `env:"VALIDATION_POSTGRES_PASSWORD"`
	MaxConn         int    `env:"VALIDATION_POSTGRES_DB_MAX_CONN" envDefault:"50"`
	MaxIdleConn     int    `env:"VALIDATION_POSTGRES_DB_MAX_IDLE_CONN" envDefault:"10"`
	ConnMaxLifetime int    `env:"VALIDATION_POSTGRES_DB_CONN_MAX_LIFETIME" envDefault:"3600"`
	SSLMode         string `env:"VALIDATION_POSTGRES_SSL_MODE" envDefault:"disable"`
}

// Enabled reports whether history persistence was configured at all.
// Without a host the service runs stateless.
func (c *DatabaseConfig) Enabled() bool {
	return c != nil && c.Host != ""
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
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConn)
	sqlDB.SetMaxOpenConns(dbConfig.MaxConn)
	sqlDB.SetConnMaxLifetime(time.Duration(dbConfig.ConnMaxLifetime) * time.Second)

	return db, nil
}

func validateConfig(config *DatabaseConfig) error {
	switch {
	case config == nil:
		return fmt.Errorf("database config is nil")
	case config.Host == "":
		return fmt.Errorf("database host config is empty")
	case config.User == "":
		return fmt.Errorf("database user config is empty")
	case config.DBName == "":
		return fmt.Errorf("database name config is empty")
	default:
		return nil
	}
}
