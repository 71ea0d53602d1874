// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-round-scheduler/pkg/constants"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultPairSelectionMaxAttempts, cfg.PairSelectionMaxAttempts)
	assert.True(t, cfg.AvoidLastRoundPartners)
	assert.Equal(t, 0, cfg.ExactMatchupMaxPairs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "round-scheduler", cfg.ServiceName)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PAIR_SELECTION_MAX_ATTEMPTS", "5")
	t.Setenv("AVOID_LAST_ROUND_PARTNERS", "false")
	t.Setenv("EXACT_MATCHUP_MAX_PAIRS", "8")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxAttempts())
	assert.False(t, cfg.AvoidLastRoundPartners)
	assert.Equal(t, 8, cfg.ExactMatchupMaxPairs)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PAIR_SELECTION_MAX_ATTEMPTS", "many")

	_, err := Load()
	assert.Error(t, err)
}

func TestMaxAttempts(t *testing.T) {
	var nilConfig *Config
	assert.Equal(t, constants.DefaultPairSelectionMaxAttempts, nilConfig.MaxAttempts())
	assert.Equal(t, constants.DefaultPairSelectionMaxAttempts, (&Config{}).MaxAttempts())
	assert.Equal(t, constants.DefaultPairSelectionMaxAttempts, (&Config{PairSelectionMaxAttempts: -3}).MaxAttempts())
	assert.Equal(t, 7, (&Config{PairSelectionMaxAttempts: 7}).MaxAttempts())
}

func TestExactMatchupTeams(t *testing.T) {
	var nilConfig *Config
	assert.Equal(t, 0, nilConfig.ExactMatchupTeams())
	assert.Equal(t, 0, (&Config{ExactMatchupMaxPairs: -1}).ExactMatchupTeams())
	assert.Equal(t, 8, (&Config{ExactMatchupMaxPairs: 8}).ExactMatchupTeams())
	assert.Equal(t, constants.MaxExactMatchupTeams, (&Config{ExactMatchupMaxPairs: 1000}).ExactMatchupTeams())
}
