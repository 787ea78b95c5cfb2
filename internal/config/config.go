// Package config provides Viper-based configuration loading for the
// Mega Millions simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GameConfig holds lottery game settings.
type GameConfig struct {
	// Jackpot is the advertised top-prize amount in whole dollars.
	Jackpot int64 `mapstructure:"jackpot"`
	// TicketPrice is the cost of one ticket in dollars.
	TicketPrice float64 `mapstructure:"ticket_price"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.Jackpot < 1 {
		errs = append(errs, fmt.Sprintf("game.jackpot must be >= 1, got %d", g.Jackpot))
	}
	if g.TicketPrice <= 0 {
		errs = append(errs, fmt.Sprintf("game.ticket_price must be > 0, got %v", g.TicketPrice))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Default returns the built-in configuration used when no config file is
// given: the official advertised jackpot, $2.00 tickets, and console logging
// at info level.
//
// Postcondition: Default().Validate() == nil.
func Default() Config {
	return Config{
		Game: GameConfig{
			Jackpot:     1_000_000_000,
			TicketPrice: 2.00,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with MEGASIM_ prefix
	v.SetEnvPrefix("MEGASIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.jackpot", 1_000_000_000)
	v.SetDefault("game.ticket_price", 2.00)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
