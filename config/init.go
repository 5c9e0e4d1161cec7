package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/DhanushPillay/MailSpectre/internal/database"
	"github.com/DhanushPillay/MailSpectre/internal/logger"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
	"github.com/DhanushPillay/MailSpectre/internal/tracing"
	"github.com/DhanushPillay/MailSpectre/services/breach"
)

type Config struct {
	AppConfig      *AppConfig
	Logger         *logger.Config
	Tracing        *tracing.JaegerConfig
	DatabaseConfig *database.DatabaseConfig
	BreachConfig   *breach.Config
	RefDataConfig  *refdata.Config
}

func InitConfig() (*Config, error) {
	config := &Config{
		AppConfig:      &AppConfig{},
		Logger:         &logger.Config{},
		Tracing:        &tracing.JaegerConfig{},
		DatabaseConfig: &database.DatabaseConfig{},
		BreachConfig:   &breach.Config{},
		RefDataConfig:  &refdata.Config{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		log.Fatalf("Error loading mailspectre config: %v", err)
	}

	return config, nil
}
