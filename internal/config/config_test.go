package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"headsup-poker/internal/util"
)

func reset() {
	config = Config{}
}

func TestInstance(t *testing.T) {
	defer reset()
	defer util.SetEnv("HEADSUP_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("HEADSUP_STRATEGY_URL", "http://strategy.local/query")()
	defer util.SetEnv("HEADSUP_SERVER_RAISE_CAP", "2")()

	a := assert.New(t)
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.False(cfg.Log.Color)
	a.Equal(10, cfg.Hands)
	a.Equal(4, cfg.RaiseCap)
	a.Equal(int64(42), cfg.Seed)
	a.Equal([]string{SeatStrategy, SeatStrategy}, cfg.Seats)
	a.Equal("http://strategy.local/query", cfg.Strategy.URL)
	a.Equal(3*time.Second, cfg.Strategy.Timeout)
	a.Equal(":8080", cfg.Server.Addr)
	a.Equal(2, cfg.Server.RaiseCap)

	// ensure that it's only loaded once
	_ = os.Setenv("HEADSUP_STRATEGY_URL", "http://other.local/query")
	// ensure we aren't using a pointer
	cfg.Strategy.URL = "bad"
	cfg = Instance()
	a.Equal("http://strategy.local/query", cfg.Strategy.URL)
}

func TestDefaults(t *testing.T) {
	defer reset()
	defer util.SetEnv("HEADSUP_CONFIG_FILE", "testdata/missing.yaml")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Strategy.URL, cfg.Strategy.URL)
	assert.Equal(t, "http://poker.srv.ualberta.ca/query", cfg.Strategy.URL)
	assert.Equal(t, []string{SeatHuman, SeatStrategy}, cfg.Seats)
	assert.True(t, cfg.Log.Color)
	assert.Equal(t, 0, cfg.Hands)
}

func TestLoad_invalid(t *testing.T) {
	defer reset()
	defer util.SetEnv("HEADSUP_CONFIG_FILE", "testdata/bad_seats.yaml")()

	assert.EqualError(t, Load(), `unknown seat "robot", expected human or strategy`)

	defer util.SetEnv("HEADSUP_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("HEADSUP_HANDS", "-1")()
	assert.EqualError(t, Load(), "hands cannot be less than zero")
}

func TestConfig_Validate(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate())

	c.Seats = []string{SeatHuman}
	assert.EqualError(t, c.Validate(), "expected two seats, got 1")

	c = DefaultConfig()
	c.RaiseCap = -1
	assert.EqualError(t, c.Validate(), "raise cap cannot be less than zero")
}
