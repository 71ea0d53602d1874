// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package history derives usage statistics from the rounds already played in a session.
// Matches with an empty team are placeholders and never counted.
package history

import (
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

// TeammateHistory counts how many matches each pair of players played on the same team.
func TeammateHistory(rounds []models.Round) map[models.PairKey]int {
	counts := make(map[models.PairKey]int)
	for _, round := range rounds {
		for _, match := range round.Matches {
			if !match.HasPlayers() {
				continue
			}
			if key, ok := models.TeamKey(match.TeamA); ok {
				counts[key]++
			}
			if key, ok := models.TeamKey(match.TeamB); ok {
				counts[key]++
			}
		}
	}
	return counts
}

// OpponentHistory counts how many matches each pair of players played on opposite teams.
func OpponentHistory(rounds []models.Round) map[models.PairKey]int {
	counts := make(map[models.PairKey]int)
	for _, round := range rounds {
		for _, match := range round.Matches {
			if !match.HasPlayers() {
				continue
			}
			for _, playerA := range match.TeamA {
				for _, playerB := range match.TeamB {
					counts[models.GetPairKey(playerA, playerB)]++
				}
			}
		}
	}
	return counts
}

// MatchesPlayed counts matches per player. Every given id is present, ids not given are ignored.
func MatchesPlayed(playerIDs []models.PlayerID, rounds []models.Round) map[models.PlayerID]int {
	counts := make(map[models.PlayerID]int, len(playerIDs))
	for _, id := range playerIDs {
		counts[id] = 0
	}
	for _, round := range rounds {
		for _, match := range round.Matches {
			if !match.HasPlayers() {
				continue
			}
			for _, id := range match.Players() {
				if _, ok := counts[id]; ok {
					counts[id]++
				}
			}
		}
	}
	return counts
}

// TeamMatchupHistory counts how often two doubles teams faced each other.
func TeamMatchupHistory(rounds []models.Round) map[models.MatchupKey]int {
	counts := make(map[models.MatchupKey]int)
	for _, round := range rounds {
		for _, match := range round.Matches {
			if !match.HasPlayers() {
				continue
			}
			keyA, okA := models.TeamKey(match.TeamA)
			keyB, okB := models.TeamKey(match.TeamB)
			if okA && okB {
				counts[models.GetMatchupKey(keyA, keyB)]++
			}
		}
	}
	return counts
}

// LastRoundPairKeys returns the teammate pairs of the most recent round.
func LastRoundPairKeys(rounds []models.Round) map[models.PairKey]struct{} {
	keys := make(map[models.PairKey]struct{})
	if len(rounds) == 0 {
		return keys
	}
	for _, match := range rounds[len(rounds)-1].Matches {
		if !match.HasPlayers() {
			continue
		}
		if key, ok := models.TeamKey(match.TeamA); ok {
			keys[key] = struct{}{}
		}
		if key, ok := models.TeamKey(match.TeamB); ok {
			keys[key] = struct{}{}
		}
	}
	return keys
}
