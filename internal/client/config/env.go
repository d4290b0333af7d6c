package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig lists the recognised environment variables. Unset variables
// leave their pointer nil and the current value untouched.
type envConfig struct {
	DataDir        *string        `env:"SITEKEEPER_DATA_DIR"`
	DBFile         *string        `env:"SITEKEEPER_DB_FILE"`
	LogLevel       *string        `env:"SITEKEEPER_LOG_LEVEL"`
	LogBackend     *string        `env:"SITEKEEPER_LOG_BACKEND"`
	GenAIAPIKey    *string        `env:"API_KEY"`
	GenAIModel     *string        `env:"SITEKEEPER_GENAI_MODEL"`
	MapsAPIKey     *string        `env:"MAPS_API_KEY"`
	LocatorURL     *string        `env:"SITEKEEPER_LOCATOR_URL"`
	Latitude       *float64       `env:"SITEKEEPER_LATITUDE"`
	Longitude      *float64       `env:"SITEKEEPER_LONGITUDE"`
	RequestTimeout *time.Duration `env:"SITEKEEPER_REQUEST_TIMEOUT"`
}

func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	setString(&cfg.DataDir, ec.DataDir)
	setString(&cfg.DBFile, ec.DBFile)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.LogBackend, ec.LogBackend)
	setString(&cfg.GenAIAPIKey, ec.GenAIAPIKey)
	setString(&cfg.GenAIModel, ec.GenAIModel)
	setString(&cfg.MapsAPIKey, ec.MapsAPIKey)
	setString(&cfg.LocatorURL, ec.LocatorURL)
	if ec.Latitude != nil && ec.Longitude != nil {
		cfg.Latitude, cfg.Longitude, cfg.HasPosition = *ec.Latitude, *ec.Longitude, true
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
}
