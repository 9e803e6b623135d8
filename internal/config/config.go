package config

import "fmt"

// Config holds application configuration.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Market MarketConfig
	Notify NotifyConfig
	// GinMode is debug, release or test.
	GinMode string
	// Domain is the public host used when building links sent to users.
	Domain string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:  LoadServerConfigFromEnv(),
		Logger:  LoadLoggerConfigFromEnv(),
		Market:  LoadMarketConfigFromEnv(),
		Notify:  LoadNotifyConfigFromEnv(),
		GinMode: GetEnv("GIN_MODE", "release"),
		Domain:  GetEnv("APP_DOMAIN", "localhost:8080"),
	}
}

// Validate validates every section and the top-level settings.
func (c Config) Validate() error {
	sections := []struct {
		name     string
		validate func() error
	}{
		{"server", c.Server.Validate},
		{"logger", c.Logger.Validate},
		{"market", c.Market.Validate},
		{"notify", c.Notify.Validate},
	}
	for _, s := range sections {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%s config validation failed: %w", s.name, err)
		}
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %q (must be debug, release or test)", c.GinMode)
	}

	if c.Domain == "" {
		return fmt.Errorf("APP_DOMAIN must not be empty")
	}
	return nil
}
