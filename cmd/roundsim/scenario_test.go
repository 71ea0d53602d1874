// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

func TestParseScenario(t *testing.T) {
	data := heredoc.Doc(`
		mode: WINNERS_COURT
		genderTeams: MIX_PAIRS
		rounds: 4
		seed: 42
		numMatches: 1
		participants:
		  - id: anna
		    gender: FEMALE
		    level: 4.5
		  - id: bob
		    gender: MALE
		    playing: false
		courts:
		  - id: center
		    order: 1
		fixedTeams:
		  - a: anna
		    b: bob
	`)

	scenario, err := parseScenario([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, models.ModeWinnersCourt, scenario.Mode)
	assert.Equal(t, models.GenderTeamsMixPairs, scenario.GenderTeams)
	assert.Equal(t, 4, scenario.Rounds)
	require.NotNil(t, scenario.Seed)
	assert.Equal(t, uint64(42), *scenario.Seed)
	require.NotNil(t, scenario.NumMatches)
	assert.Equal(t, 1, *scenario.NumMatches)
	assert.Equal(t, []models.Participant{
		{PlayerID: "anna", Gender: models.GenderFemale, Playing: true, Level: 4.5},
		{PlayerID: "bob", Gender: models.GenderMale, Playing: false},
	}, scenario.Participants)
	assert.Equal(t, []models.Court{{CourtID: "center", Order: 1}}, scenario.Courts)
	assert.Equal(t, []models.Pair{models.NewPair("anna", "bob")}, scenario.FixedTeams)
	assert.Equal(t, []models.PlayerID{"anna"}, scenario.PlayerIDs())
}

func TestParseScenario_Defaults(t *testing.T) {
	scenario, err := parseScenario([]byte("participants:\n  - id: p1\n"))
	require.NoError(t, err)

	assert.Equal(t, defaultRounds, scenario.Rounds)
	assert.Nil(t, scenario.Seed)
	assert.True(t, scenario.Participants[0].Playing)
}

func TestParseScenario_Invalid(t *testing.T) {
	_, err := parseScenario([]byte("rounds: 3\n"))
	assert.Error(t, err)

	_, err = parseScenario([]byte("rounds: [\n"))
	assert.Error(t, err)
}

func TestScenarioFromFlags(t *testing.T) {
	scenario := scenarioFromFlags(5, 2, 0, true, false)

	assert.Equal(t, defaultRounds, scenario.Rounds)
	assert.Len(t, scenario.Participants, 5)
	assert.Equal(t, []models.Court{{CourtID: "court-1", Order: 1}, {CourtID: "court-2", Order: 2}}, scenario.Courts)
	assert.Equal(t, []models.Pair{models.NewPair("p1", "p2"), models.NewPair("p3", "p4")}, scenario.FixedTeams)

	singles := scenarioFromFlags(4, 1, 3, true, true)
	assert.Equal(t, models.FormatSingles, singles.Format)
	assert.Empty(t, singles.FixedTeams)

	request := singles.Request(nil)
	assert.Equal(t, models.FormatSingles, request.Format)
	assert.Len(t, request.Participants, 4)
	assert.Len(t, request.Courts, 1)
}
