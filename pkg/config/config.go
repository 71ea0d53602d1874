// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"

	"github.com/AccelByte/extend-round-scheduler/pkg/constants"
)

type Config struct {
	PairSelectionMaxAttempts int    `env:"PAIR_SELECTION_MAX_ATTEMPTS" envDefault:"20"              envDocs:"number of reshuffled attempts per candidate pool in pair selection (0 means use default from code)"`
	AvoidLastRoundPartners   bool   `env:"AVOID_LAST_ROUND_PARTNERS"   envDefault:"true"            envDocs:"exclude partners of the previous round from the minimal usage pool when possible"`
	ExactMatchupMaxPairs     int    `env:"EXACT_MATCHUP_MAX_PAIRS"     envDefault:"0"               envDocs:"enumerate every matchup arrangement when a round has at most this many teams (0 disables, at most 12)"`
	LogLevel                 string `env:"LOG_LEVEL"                   envDefault:"info"            envDocs:"logrus level"`
	ZipkinEndpoint           string `env:"ZIPKIN_ENDPOINT"             envDefault:""                envDocs:"zipkin collector url, empty disables trace export"`
	ServiceName              string `env:"SERVICE_NAME"                envDefault:"round-scheduler" envDocs:"service name used by the tracer"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no environment is available.
func Default() *Config {
	return &Config{
		PairSelectionMaxAttempts: constants.DefaultPairSelectionMaxAttempts,
		AvoidLastRoundPartners:   true,
		LogLevel:                 "info",
		ServiceName:              "round-scheduler",
	}
}

// MaxAttempts returns the pair selection retry budget, falling back to the default.
func (c *Config) MaxAttempts() int {
	if c == nil || c.PairSelectionMaxAttempts <= 0 {
		return constants.DefaultPairSelectionMaxAttempts
	}
	return c.PairSelectionMaxAttempts
}

// ExactMatchupTeams returns the team limit for exact matchup enumeration, capped at
// constants.MaxExactMatchupTeams. 0 disables it.
func (c *Config) ExactMatchupTeams() int {
	if c == nil || c.ExactMatchupMaxPairs <= 0 {
		return 0
	}
	return min(c.ExactMatchupMaxPairs, constants.MaxExactMatchupTeams)
}
