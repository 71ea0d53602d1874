// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"fmt"

	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

// Players returns p1..pN.
func Players(n int) []models.PlayerID {
	players := make([]models.PlayerID, n)
	for i := range players {
		players[i] = models.PlayerID(fmt.Sprintf("p%d", i+1))
	}
	return players
}

// FixedTeams returns n teams (p1,p2), (p3,p4) and so on.
func FixedTeams(n int) []models.Pair {
	players := Players(n * 2)
	teams := make([]models.Pair, n)
	for i := range teams {
		teams[i] = models.NewPair(players[2*i], players[2*i+1])
	}
	return teams
}

// Doubles builds a doubles match from four player ids.
func Doubles(a1, a2, b1, b2 models.PlayerID) models.Match {
	return models.Match{
		TeamA: []models.PlayerID{a1, a2},
		TeamB: []models.PlayerID{b1, b2},
	}
}

// AssertPartition returns an error when a player appears in more than one team of the round
// or twice in the same team.
func AssertPartition(matches []models.Match) error {
	seen := make(map[models.PlayerID]int, len(matches)*4)
	for i, match := range matches {
		for _, id := range match.Players() {
			if prev, ok := seen[id]; ok {
				return fmt.Errorf("player %s appears in match %d and match %d", id, prev, i)
			}
			seen[id] = i
		}
	}
	return nil
}
