// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"github.com/elliotchance/pie/v2"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/mathutil"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

// AllPossiblePairs returns every pair of the given players in combination order.
// Pairs of an id with itself or with an empty id are left out.
func AllPossiblePairs(players []models.PlayerID) []models.Pair {
	if len(players) < 2 {
		return nil
	}
	combinations := combin.Combinations(len(players), 2)
	pairs := pie.Map(combinations, func(indexes []int) models.Pair {
		return models.NewPair(players[indexes[0]], players[indexes[1]])
	})
	return pie.Filter(pairs, models.Pair.Valid)
}

// CrossPairs returns every pair with one player from each group.
func CrossPairs(groupA, groupB []models.PlayerID) []models.Pair {
	pairs := make([]models.Pair, 0, len(groupA)*len(groupB))
	for _, a := range groupA {
		for _, b := range groupB {
			if a == b || a == "" || b == "" {
				continue
			}
			pairs = append(pairs, models.NewPair(a, b))
		}
	}
	return pairs
}

// MinimalPool returns the pairs sharing the lowest teammate usage.
func MinimalPool(allPairs []models.Pair, stats history.Stats) []models.Pair {
	minCount, ok := minUsage(allPairs, stats)
	if !ok {
		return nil
	}
	return pie.Filter(allPairs, func(p models.Pair) bool {
		return stats.Teammates(p.Key()) == minCount
	})
}

// BuildPool returns the least used pairs, leaving out last round's pairs
// unless that would leave nothing to pick from.
func BuildPool(allPairs []models.Pair, stats history.Stats) []models.Pair {
	minPool := MinimalPool(allPairs, stats)
	if !stats.HasLastRound() {
		return minPool
	}

	filtered := pie.Filter(minPool, func(p models.Pair) bool {
		return !stats.UsedLastRound(p.Key())
	})
	if len(filtered) == 0 {
		return minPool
	}
	return filtered
}

// UsageLevels returns the distinct teammate usage counts of the pairs, ascending.
func UsageLevels(allPairs []models.Pair, stats history.Stats) []int {
	levels := pie.Unique(pie.Map(allPairs, func(p models.Pair) int {
		return stats.Teammates(p.Key())
	}))
	return pie.SortUsing(levels, func(a, b int) bool {
		return a < b
	})
}

// PairsUpToLevel returns the pairs used at most level times.
func PairsUpToLevel(allPairs []models.Pair, stats history.Stats, level int) []models.Pair {
	return pie.Filter(allPairs, func(p models.Pair) bool {
		return stats.Teammates(p.Key()) <= level
	})
}

func minUsage(allPairs []models.Pair, stats history.Stats) (int, bool) {
	return mathutil.MinValue(pie.Map(allPairs, func(p models.Pair) int {
		return stats.Teammates(p.Key())
	}))
}
