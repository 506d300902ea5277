package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"headsup-poker/internal/util"
)

// seat kinds
const (
	SeatHuman    = "human"
	SeatStrategy = "strategy"
)

// Config provides configuration for the hand runner and the strategy service
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Color  bool   `yaml:"color"`
	} `yaml:"log"`

	// Hands is the number of hands to play, 0 to play until the input is closed
	Hands    int      `yaml:"hands"`
	RaiseCap int      `yaml:"raiseCap" envconfig:"raise_cap"`
	Seed     int64    `yaml:"seed"`
	Seats    []string `yaml:"seats"`

	Strategy struct {
		URL     string        `yaml:"url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"strategy"`

	Server struct {
		Addr              string `yaml:"addr"`
		RaiseCap          int    `yaml:"raiseCap" envconfig:"raise_cap"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"server"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Log.Color = true
	c.Seats = []string{SeatHuman, SeatStrategy}
	c.Strategy.URL = "http://poker.srv.ualberta.ca/query"
	c.Strategy.Timeout = 10 * time.Second
	c.Server.Addr = ":5000"

	return c
}

// Validate checks the values that cannot be used as configured
func (c Config) Validate() error {
	if len(c.Seats) != 2 {
		return fmt.Errorf("expected two seats, got %d", len(c.Seats))
	}

	for _, seat := range c.Seats {
		if seat != SeatHuman && seat != SeatStrategy {
			return fmt.Errorf("unknown seat %q, expected %s or %s", seat, SeatHuman, SeatStrategy)
		}
	}

	if c.Hands < 0 {
		return errors.New("hands cannot be less than zero")
	}

	if c.RaiseCap < 0 || c.Server.RaiseCap < 0 {
		return errors.New("raise cap cannot be less than zero")
	}

	return nil
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing .env or configuration file is not an error
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	c := DefaultConfig()

	configFile := util.Getenv("HEADSUP_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	if err := envconfig.Process("headsup", &c); err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
