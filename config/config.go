package config

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"net/url"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherMapAPIKey  string
	OpenWeatherMapBaseURL string
	ProviderTimeout       time.Duration

	ZipkinURL string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-form")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("PROVIDER_TIMEOUT", 5*time.Second)
	v.SetDefault("OPENWEATHERMAP_BASE_URL", "http://api.openweathermap.org")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPTimeout:           v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherMapAPIKey:  v.GetString("OPENWEATHERMAP_API_KEY"),
		OpenWeatherMapBaseURL: v.GetString("OPENWEATHERMAP_BASE_URL"),
		ProviderTimeout:       v.GetDuration("PROVIDER_TIMEOUT"),
		ZipkinURL:             v.GetString("ZIPKIN_URL"),
	}

	return config, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error

	if c.OpenWeatherMapAPIKey == "" {
		errs = append(errs, errors.New("OPENWEATHERMAP_API_KEY is required"))
	}
	if c.OpenWeatherMapBaseURL == "" {
		errs = append(errs, errors.New("OPENWEATHERMAP_BASE_URL must not be empty"))
	} else if err := validateBaseURL(c.OpenWeatherMapBaseURL); err != nil {
		errs = append(errs, err)
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", c.HTTPTimeout))
	}
	if c.ProviderTimeout <= 0 {
		errs = append(errs, fmt.Errorf("PROVIDER_TIMEOUT must be positive, got %s", c.ProviderTimeout))
	}

	return errors.Join(errs...)
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("OPENWEATHERMAP_BASE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("OPENWEATHERMAP_BASE_URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("OPENWEATHERMAP_BASE_URL must include a host")
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
