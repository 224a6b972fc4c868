package main

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Config holds the demo settings. Environment variables override the
// defaults; explicitly set flags override both.
type Config struct {
	Scenario string `config:"ECSDEMO_SCENARIO"`
	Seed     int64  `config:"ECSDEMO_SEED"`
	LogLevel string `config:"ECSDEMO_LOG_LEVEL"`
	Pretty   bool   `config:"ECSDEMO_PRETTY"`
	DebugUI  bool   `config:"ECSDEMO_DEBUG_UI"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Pretty:   true,
	}
}

// LoadConfig applies environment overrides on top of the defaults.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "load config from environment")
	}
	return cfg, nil
}
