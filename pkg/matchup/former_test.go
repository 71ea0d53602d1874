// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchup

import (
	"fmt"
	"slices"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/AccelByte/extend-round-scheduler/pkg/config"
	"github.com/AccelByte/extend-round-scheduler/pkg/constants"
	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/randsource"
	"github.com/AccelByte/extend-round-scheduler/pkg/testsetup"
)

var (
	teamA = []models.PlayerID{"p1", "p2"}
	teamB = []models.PlayerID{"p3", "p4"}
	teamC = []models.PlayerID{"p5", "p6"}
	teamD = []models.PlayerID{"p7", "p8"}
)

func matchupKeys(matches []models.Match) []models.MatchupKey {
	result := make([]models.MatchupKey, 0, len(matches))
	for _, m := range matches {
		keyA, _ := models.TeamKey(m.TeamA)
		keyB, _ := models.TeamKey(m.TeamB)
		result = append(result, models.GetMatchupKey(keyA, keyB))
	}
	return result
}

func newFormer(seed uint64, exactMaxTeams int) *Former {
	cfg := config.Default()
	cfg.ExactMatchupMaxPairs = exactMaxTeams
	return NewFormer(cfg, randsource.New(seed))
}

func TestFormMatchups_FreshTeams(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	teams := [][]models.PlayerID{teamA, teamB, teamC, teamD}
	matches, leftover := newFormer(1, 0).FormMatchups(g.TestScope, teams, history.Compute(testsetup.Players(8), nil))

	g.Expect(matches).To(HaveLen(2))
	g.Expect(leftover).To(BeEmpty())
	g.Expect(testsetup.AssertPartition(matches)).To(Succeed())
}

func TestFormMatchups_OddTeamIsReturned(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	teams := [][]models.PlayerID{teamA, teamB, teamC}
	matches, leftover := newFormer(2, 0).FormMatchups(g.TestScope, teams, history.Compute(testsetup.Players(6), nil))

	g.Expect(matches).To(HaveLen(1))
	g.Expect(leftover).To(HaveLen(1))

	var all []models.PlayerID
	all = append(all, matches[0].Players()...)
	all = append(all, leftover[0]...)
	g.Expect(all).To(ConsistOf(models.PlayerID("p1"), models.PlayerID("p2"), models.PlayerID("p3"),
		models.PlayerID("p4"), models.PlayerID("p5"), models.PlayerID("p6")))
}

func TestFormMatchups_GreedyAvoidsRepeatedOpponents(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	// every cross pairing except A-C and B-D already met
	rounds := []models.Round{
		{Matches: []models.Match{{TeamA: teamA, TeamB: teamB}, {TeamA: teamC, TeamB: teamD}}},
		{Matches: []models.Match{{TeamA: teamA, TeamB: teamD}, {TeamA: teamB, TeamB: teamC}}},
	}
	stats := history.Compute(testsetup.Players(8), rounds)
	teams := [][]models.PlayerID{teamA, teamB, teamC, teamD}

	for seed := uint64(0); seed < 20; seed++ {
		matches, leftover := newFormer(seed, 0).FormMatchups(g.TestScope, teams, stats)

		g.Expect(leftover).To(BeEmpty())
		g.Expect(matchupKeys(matches)).To(ConsistOf(
			models.MatchupKey("p1-p2-vs-p5-p6"),
			models.MatchupKey("p3-p4-vs-p7-p8"),
		))
	}
}

func TestFormMatchups_ExactModeFindsMinimum(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	rounds := []models.Round{
		{Matches: []models.Match{{TeamA: teamA, TeamB: teamB}}},
		{Matches: []models.Match{{TeamA: teamB, TeamB: teamA}}},
	}
	stats := history.Compute(testsetup.Players(8), rounds)
	teams := [][]models.PlayerID{teamA, teamB, teamC, teamD}

	for seed := uint64(0); seed < 20; seed++ {
		matches, leftover := newFormer(seed, 4).FormMatchups(g.TestScope, teams, stats)

		g.Expect(leftover).To(BeEmpty())
		g.Expect(matches).To(HaveLen(2))
		g.Expect(matchupKeys(matches)).NotTo(ContainElement(models.MatchupKey("p1-p2-vs-p3-p4")))
		for _, m := range matches {
			g.Expect(stats.OpponentScore(m.TeamA, m.TeamB)).To(Equal(0))
		}
	}
}

func TestFormMatchups_ExactModeOnlyUpToLimit(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	teams := [][]models.PlayerID{teamA, teamB, teamC, teamD, {"p9", "p10"}, {"p11", "p12"}}
	matches, leftover := newFormer(7, 4).FormMatchups(g.TestScope, teams, history.Compute(testsetup.Players(12), nil))

	g.Expect(matches).To(HaveLen(3))
	g.Expect(leftover).To(BeEmpty())
	g.Expect(testsetup.AssertPartition(matches)).To(Succeed())
}

func TestFormMatchups_ExactModeLimitIsCapped(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	teams := make([][]models.PlayerID, 0, 16)
	players := testsetup.Players(32)
	for i := 0; i < len(players); i += 2 {
		teams = append(teams, []models.PlayerID{players[i], players[i+1]})
	}

	former := newFormer(5, 1000)
	g.Expect(former.exactMaxTeams).To(Equal(constants.MaxExactMatchupTeams))

	matches, leftover := former.FormMatchups(g.TestScope, teams, history.Compute(players, nil))
	g.Expect(matches).To(HaveLen(8))
	g.Expect(leftover).To(BeEmpty())
	g.Expect(testsetup.AssertPartition(matches)).To(Succeed())

	// all arrangements tie on a fresh session
	matches, _ = former.FormMatchups(g.TestScope, teams[:12], history.Compute(players, nil))
	g.Expect(matches).To(HaveLen(6))
	g.Expect(testsetup.AssertPartition(matches)).To(Succeed())
}

func TestFormMatchups_ExactModeSamplesEveryTiedArrangement(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	teams := [][]models.PlayerID{teamA, teamB, teamC, teamD}
	stats := history.Compute(testsetup.Players(8), nil)

	seen := map[string]bool{}
	for seed := uint64(0); seed < 60; seed++ {
		matches, _ := newFormer(seed, 4).FormMatchups(g.TestScope, teams, stats)
		g.Expect(matches).To(HaveLen(2))
		keys := matchupKeys(matches)
		slices.Sort(keys)
		seen[fmt.Sprint(keys)] = true
	}
	g.Expect(seen).To(HaveLen(CountMatchings(4)))
}

func TestFormMatchups_SinglesTeams(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	teams := [][]models.PlayerID{{"p1"}, {"p2"}, {"p3"}, {"p4"}}
	matches, _ := newFormer(3, 0).FormMatchups(g.TestScope, teams, history.Compute(testsetup.Players(4), nil))

	g.Expect(matches).To(HaveLen(2))
	for _, m := range matches {
		g.Expect(m.TeamA).To(HaveLen(1))
		g.Expect(m.TeamB).To(HaveLen(1))
	}
}

func TestFormMatchups_DoesNotAliasInput(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	teams := [][]models.PlayerID{{"p1", "p2"}, {"p3", "p4"}}
	matches, _ := newFormer(4, 0).FormMatchups(g.TestScope, teams, history.Compute(testsetup.Players(4), nil))

	g.Expect(matches).To(HaveLen(1))
	matches[0].TeamA[0] = "changed"
	matches[0].TeamB[0] = "changed"
	g.Expect(teams).To(Equal([][]models.PlayerID{{"p1", "p2"}, {"p3", "p4"}}))
}

func TestFormMatchups_Deterministic(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	teams := [][]models.PlayerID{teamA, teamB, teamC, teamD, {"p9", "p10"}, {"p11", "p12"}}
	stats := history.Compute(testsetup.Players(12), nil)

	first, _ := newFormer(11, 0).FormMatchups(g.TestScope, teams, stats)
	second, _ := newFormer(11, 0).FormMatchups(g.TestScope, teams, stats)

	g.Expect(first).To(Equal(second))
}
