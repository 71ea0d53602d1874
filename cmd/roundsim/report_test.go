// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

func doubles(a1, a2, b1, b2 models.PlayerID) models.Match {
	return models.Match{
		TeamA: []models.PlayerID{a1, a2},
		TeamB: []models.PlayerID{b1, b2},
	}
}

func TestPrinter_FormatMatch(t *testing.T) {
	previous := []models.Round{{Matches: []models.Match{doubles("p1", "p2", "p3", "p4")}}}
	teammates := history.TeammateHistory(previous)
	matchups := history.TeamMatchupHistory(previous)
	opponents := history.OpponentHistory(previous)
	p := NewPrinter(&bytes.Buffer{}, false, true)

	partners := p.formatMatch(1, doubles("p1", "p3", "p2", "p4"), teammates, matchups, opponents)
	assert.Equal(t, "1. p1/p3 - p2/p4 (p1-p4, p2-p3)", partners)

	repeat := doubles("p3", "p4", "p1", "p2")
	repeat.CourtID = "c1"
	line := p.formatMatch(2, repeat, teammates, matchups, opponents)
	assert.Equal(t, "2. [c1] p3/p4 - p1/p2 (p1-p3, p2-p3, p1-p4, p2-p4)", line)
}

func TestPrinter_RoundAndSummary(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrinter(out, false, true)

	first := models.Result{Matches: []models.Match{doubles("p1", "p2", "p3", "p4")}}
	p.Round(1, first, nil)
	p.Round(2, models.Result{Matches: []models.Match{}, Reason: "not_enough_players"}, []models.Round{first.Round()})

	second := models.Result{
		Matches: []models.Match{doubles("p1", "p3", "p2", "p4")},
		Resting: [][]models.PlayerID{{"p5", "p6"}},
		Reason:  "leftover_team",
	}
	p.Round(3, second, []models.Round{first.Round()})
	p.Summary([]models.PlayerID{"p1", "p2", "p3", "p4", "p5", "p6"}, []models.Round{first.Round(), second.Round()})

	text := out.String()
	assert.Contains(t, text, "Round 1\n1. p1/p2 - p3/p4\n")
	assert.Contains(t, text, "Round 2: no matches possible (not_enough_players)")
	assert.Contains(t, text, "resting: p5/p6")
	assert.Contains(t, text, "reason: leftover_team")
	assert.Contains(t, text, "Summary after 2 rounds")
	assert.Contains(t, text, "matches played: min 0, max 2, spread 2")
	assert.Contains(t, text, "partner pairs used: 4, repeated: 0, max 1")
	assert.Contains(t, text, "    p5: 0\n")
}

func TestRun(t *testing.T) {
	out := &bytes.Buffer{}
	opts := &options{players: 8, courts: 2, rounds: 3, seed: 7, noColor: true, metrics: true}

	require.NoError(t, run(context.Background(), out, opts))

	text := out.String()
	assert.Contains(t, text, "Round 1\n")
	assert.Contains(t, text, "Round 3\n")
	assert.Contains(t, text, "[court-1]")
	assert.Contains(t, text, "Summary after 3 rounds")
	assert.Contains(t, text, "matches played: min 3, max 3, spread 0")
	assert.Contains(t, text, "rs_scheduled_matches_total")
}
