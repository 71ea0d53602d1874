// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchup

import (
	"github.com/elliotchance/pie/v2"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/randsource"
)

type fixedTeamCandidate struct {
	teamA, teamB  int
	balanceScore  int
	opponentScore int
}

// FixedTeamMatchups picks up to numMatches matches between pre-assigned teams.
// Teams that played the least come first, then the pairings that met the least.
// A team never appears twice in the result.
func FixedTeamMatchups(rng randsource.Source, fixedTeams []models.Pair, stats history.Stats, numMatches int) []models.Match {
	if numMatches < 1 || len(fixedTeams) < 2 {
		return []models.Match{}
	}

	candidates := pie.Map(combin.Combinations(len(fixedTeams), 2), func(indexes []int) fixedTeamCandidate {
		teamA := fixedTeams[indexes[0]].Players()
		teamB := fixedTeams[indexes[1]].Players()
		return fixedTeamCandidate{
			teamA:         indexes[0],
			teamB:         indexes[1],
			balanceScore:  stats.TeamPlayed(teamA) + stats.TeamPlayed(teamB),
			opponentScore: stats.OpponentScore(teamA, teamB),
		}
	})

	randsource.Shuffle(rng, candidates)
	candidates = pie.SortStableUsing(candidates, func(a, b fixedTeamCandidate) bool {
		if a.balanceScore != b.balanceScore {
			return a.balanceScore < b.balanceScore
		}
		return a.opponentScore < b.opponentScore
	})

	used := make([]bool, len(fixedTeams))
	matches := make([]models.Match, 0, numMatches)
	for _, c := range candidates {
		if len(matches) >= numMatches {
			break
		}
		if used[c.teamA] || used[c.teamB] {
			continue
		}
		used[c.teamA], used[c.teamB] = true, true
		matches = append(matches, models.Match{
			TeamA: fixedTeams[c.teamA].Players(),
			TeamB: fixedTeams[c.teamB].Players(),
		})
	}

	return matches
}
