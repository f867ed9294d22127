package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HotelName    string `envconfig:"HOTEL_NAME" default:"Royal Stay"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	DemoLeadDays int    `envconfig:"DEMO_LEAD_DAYS" default:"5"`
	DemoStayDays int    `envconfig:"DEMO_STAY_DAYS" default:"3"`
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	if err := envconfig.Process("royalstay", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	return &cfg, nil
}
