// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"

	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/testsetup"
)

func keys(pairs []models.Pair) []models.PairKey {
	result := make([]models.PairKey, len(pairs))
	for i, p := range pairs {
		result[i] = p.Key()
	}
	return result
}

func TestAllPossiblePairs(t *testing.T) {
	tests := []struct {
		name    string
		players []models.PlayerID
		want    []models.PairKey
	}{
		{name: "empty", players: nil, want: []models.PairKey{}},
		{name: "single player", players: testsetup.Players(1), want: []models.PairKey{}},
		{
			name:    "four players",
			players: testsetup.Players(4),
			want:    []models.PairKey{"p1-p2", "p1-p3", "p1-p4", "p2-p3", "p2-p4", "p3-p4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys(AllPossiblePairs(tt.players)))
		})
	}

	assert.Len(t, AllPossiblePairs(testsetup.Players(8)), 28)
}

func TestAllPossiblePairs_SkipsSelfAndEmptyPairs(t *testing.T) {
	pairs := AllPossiblePairs([]models.PlayerID{"p1", "p1", "", "p2"})

	assert.Equal(t, []models.PairKey{"p1-p2", "p1-p2"}, keys(pairs))
	for _, p := range pairs {
		assert.True(t, p.Valid())
	}
	assert.Empty(t, CrossPairs([]models.PlayerID{"p1", ""}, []models.PlayerID{"p1"}))
}

func TestCrossPairs(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	pairs := CrossPairs([]models.PlayerID{"m1", "m2"}, []models.PlayerID{"f1", "f2", "f3"})

	g.Expect(pairs).To(HaveLen(6))
	for _, p := range pairs {
		g.Expect(string(p.A)).To(HavePrefix("m"))
		g.Expect(string(p.B)).To(HavePrefix("f"))
	}
}

func TestBuildPool_LeastUsedPairs(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	players := testsetup.Players(4)
	rounds := []models.Round{{Matches: []models.Match{testsetup.Doubles("p1", "p2", "p3", "p4")}}}
	stats := history.Compute(players, rounds)

	pool := BuildPool(AllPossiblePairs(players), stats)

	g.Expect(keys(pool)).To(ConsistOf(models.PairKey("p1-p3"), models.PairKey("p1-p4"), models.PairKey("p2-p3"), models.PairKey("p2-p4")))
}

func TestBuildPool_ExcludesLastRoundPartners(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	players := testsetup.Players(4)
	rounds := []models.Round{
		{Matches: []models.Match{testsetup.Doubles("p1", "p3", "p2", "p4")}},
		{Matches: []models.Match{testsetup.Doubles("p1", "p4", "p2", "p3")}},
		{Matches: []models.Match{testsetup.Doubles("p1", "p2", "p3", "p4")}},
	}
	stats := history.Compute(players, rounds)
	allPairs := AllPossiblePairs(players)

	g.Expect(MinimalPool(allPairs, stats)).To(HaveLen(6))
	g.Expect(keys(BuildPool(allPairs, stats))).To(ConsistOf(
		models.PairKey("p1-p3"), models.PairKey("p1-p4"), models.PairKey("p2-p3"), models.PairKey("p2-p4")))
}

func TestBuildPool_KeepsPoolWhenFilterEmptiesIt(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	players := []models.PlayerID{"p1", "p2"}
	rounds := []models.Round{{Matches: []models.Match{testsetup.Doubles("p1", "p2", "p3", "p4")}}}
	stats := history.Compute(players, rounds)

	g.Expect(keys(BuildPool(AllPossiblePairs(players), stats))).To(Equal([]models.PairKey{"p1-p2"}))
}

func TestUsageLevelsAndPairsUpToLevel(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	players := testsetup.Players(4)
	rounds := []models.Round{
		{Matches: []models.Match{testsetup.Doubles("p1", "p2", "p3", "p4")}},
		{Matches: []models.Match{testsetup.Doubles("p1", "p2", "p3", "p4")}},
		{Matches: []models.Match{testsetup.Doubles("p1", "p3", "p2", "p4")}},
	}
	stats := history.Compute(players, rounds)
	allPairs := AllPossiblePairs(players)

	g.Expect(UsageLevels(allPairs, stats)).To(Equal([]int{0, 1, 2}))
	g.Expect(PairsUpToLevel(allPairs, stats, 0)).To(HaveLen(2))
	g.Expect(PairsUpToLevel(allPairs, stats, 1)).To(HaveLen(4))
	g.Expect(PairsUpToLevel(allPairs, stats, 2)).To(HaveLen(6))
	g.Expect(UsageLevels(nil, stats)).To(BeEmpty())
}
