// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package history

import (
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

// Stats is the read-only view of a session history used while generating one round.
type Stats struct {
	teammates    map[models.PairKey]int
	opponents    map[models.PairKey]int
	played       map[models.PlayerID]int
	teamMatchups map[models.MatchupKey]int
	lastRound    map[models.PairKey]struct{}
	rounds       int
}

// Compute derives every statistic from rounds for the given players.
func Compute(playerIDs []models.PlayerID, rounds []models.Round) Stats {
	return Stats{
		teammates:    TeammateHistory(rounds),
		opponents:    OpponentHistory(rounds),
		played:       MatchesPlayed(playerIDs, rounds),
		teamMatchups: TeamMatchupHistory(rounds),
		lastRound:    LastRoundPairKeys(rounds),
		rounds:       len(rounds),
	}
}

// Teammates is how many times the pair played on the same team.
func (s Stats) Teammates(key models.PairKey) int {
	return s.teammates[key]
}

// Opponents is how many times the two players faced each other.
func (s Stats) Opponents(key models.PairKey) int {
	return s.opponents[key]
}

func (s Stats) Played(id models.PlayerID) int {
	return s.played[id]
}

func (s Stats) TeamMatchups(key models.MatchupKey) int {
	return s.teamMatchups[key]
}

func (s Stats) UsedLastRound(key models.PairKey) bool {
	_, ok := s.lastRound[key]
	return ok
}

// HasLastRound is false when the preceding round used no teammate pair at all.
func (s Stats) HasLastRound() bool {
	return len(s.lastRound) > 0
}

func (s Stats) Rounds() int {
	return s.rounds
}

// OpponentScore sums the opponent counts of every cross-team player combination.
func (s Stats) OpponentScore(teamA, teamB []models.PlayerID) int {
	score := 0
	for _, a := range teamA {
		for _, b := range teamB {
			score += s.opponents[models.GetPairKey(a, b)]
		}
	}
	return score
}

// TeamPlayed sums the matches played of every member of the team.
func (s Stats) TeamPlayed(team []models.PlayerID) int {
	total := 0
	for _, id := range team {
		total += s.played[id]
	}
	return total
}

// PlayedCounts returns a copy of the matches played per known player.
func (s Stats) PlayedCounts() map[models.PlayerID]int {
	counts := make(map[models.PlayerID]int, len(s.played))
	for id, n := range s.played {
		counts[id] = n
	}
	return counts
}
