// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchup

import (
	"slices"

	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/randsource"
)

// exactMatchups scores every arrangement of an even number of teams and returns
// one of those with the lowest total opponent score.
func (f *Former) exactMatchups(teams [][]models.PlayerID, stats history.Stats) []models.Match {
	n := len(teams)
	scores := make([][]int, n)
	for i := range scores {
		scores[i] = make([]int, n)
		for j := range scores[i] {
			if i != j {
				scores[i][j] = stats.OpponentScore(teams[i], teams[j])
			}
		}
	}

	// one of the tied best arrangements is kept by reservoir sampling
	bestScore := -1
	ties := 0
	var chosen [][2]int
	it := NewMatchingIterator(n)
	for arrangement := it.Next(); arrangement != nil; arrangement = it.Next() {
		total := 0
		for _, m := range arrangement {
			total += scores[m[0]][m[1]]
		}
		switch {
		case bestScore < 0 || total < bestScore:
			bestScore = total
			ties = 1
			chosen = arrangement
		case total == bestScore:
			ties++
			if f.rng.Intn(ties) == 0 {
				chosen = arrangement
			}
		}
	}

	randsource.Shuffle(f.rng, chosen)

	matches := make([]models.Match, 0, len(chosen))
	for _, m := range chosen {
		a, b := m[0], m[1]
		if f.rng.Intn(2) == 1 {
			a, b = b, a
		}
		matches = append(matches, models.Match{
			TeamA: slices.Clone(teams[a]),
			TeamB: slices.Clone(teams[b]),
		})
	}
	return matches
}
