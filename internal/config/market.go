package config

import (
	"fmt"
	"time"
)

// MarketConfig holds transfer market configuration.
type MarketConfig struct {
	// InflationMin is the lower (inclusive) bound of the market value multiplier.
	InflationMin float64
	// InflationMax is the upper (exclusive) bound of the market value multiplier.
	InflationMax float64
	// RankLimit is the number of teams returned by the ranking.
	RankLimit int
	// RankCacheTTL is how long a computed ranking is served from memory.
	RankCacheTTL time.Duration
	// LockTimeout bounds how long a sell or buy waits for the player lock.
	LockTimeout time.Duration
}

// LoadMarketConfigFromEnv loads market configuration from environment variables.
func LoadMarketConfigFromEnv() MarketConfig {
	return MarketConfig{
		InflationMin: GetEnvFloat("MARKET_INFLATION_MIN", 1.1),
		InflationMax: GetEnvFloat("MARKET_INFLATION_MAX", 2.0),
		RankLimit:    GetEnvInt("MARKET_RANK_LIMIT", 10),
		RankCacheTTL: GetEnvDuration("MARKET_RANK_CACHE_TTL", 30*time.Second),
		LockTimeout:  GetEnvDuration("MARKET_LOCK_TIMEOUT", 5*time.Second),
	}
}

// Validate validates market configuration.
func (c MarketConfig) Validate() error {
	if c.InflationMin < 1 {
		return fmt.Errorf("InflationMin must be at least 1, got %v", c.InflationMin)
	}
	if c.InflationMax > 2 {
		return fmt.Errorf("InflationMax must be at most 2, got %v", c.InflationMax)
	}
	if c.InflationMin >= c.InflationMax {
		return fmt.Errorf("InflationMin (%v) must be less than InflationMax (%v)", c.InflationMin, c.InflationMax)
	}
	if c.RankLimit <= 0 {
		return fmt.Errorf("RankLimit must be greater than 0")
	}
	if c.RankCacheTTL < 0 {
		return fmt.Errorf("RankCacheTTL must be non-negative")
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("LockTimeout must be greater than 0")
	}
	return nil
}
