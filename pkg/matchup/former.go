// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package matchup puts selected teams against each other.
package matchup

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-round-scheduler/pkg/config"
	"github.com/AccelByte/extend-round-scheduler/pkg/constants"
	"github.com/AccelByte/extend-round-scheduler/pkg/envelope"
	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/randsource"
)

// Former pairs teams into matches with the fewest repeated opponents.
// It is not safe for concurrent use because its random source is not.
type Former struct {
	rng           randsource.Source
	exactMaxTeams int
}

func NewFormer(cfg *config.Config, rng randsource.Source) *Former {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Former{
		rng:           rng,
		exactMaxTeams: cfg.ExactMatchupTeams(),
	}
}

// FormMatchups returns the matches and, for an odd number of teams, the team left without an opponent.
// Teams in the result never share backing arrays with the input.
func (f *Former) FormMatchups(rootScope *envelope.Scope, teams [][]models.PlayerID, stats history.Stats) ([]models.Match, [][]models.PlayerID) {
	scope := rootScope.NewChildScope(constants.FormMatchupsFunction)
	defer scope.Finish()

	logFields := logrus.Fields{
		"num_teams": len(teams),
	}

	var (
		matches  []models.Match
		leftover [][]models.PlayerID
	)
	if f.exactMaxTeams >= len(teams) && len(teams) >= 2 && len(teams)%2 == 0 {
		matches = f.exactMatchups(teams, stats)
		logFields["method"] = "exact"
	} else {
		matches, leftover = f.greedyMatchups(teams, stats)
		logFields["method"] = "greedy"
	}

	total := 0
	for _, match := range matches {
		total += stats.OpponentScore(match.TeamA, match.TeamB)
	}
	logFields["num_matches"] = len(matches)
	logFields["opponent_score"] = total
	logFields["num_leftover"] = len(leftover)
	scope.Log.WithFields(logFields).Debug("matchups formed")

	return matches, leftover
}

func (f *Former) greedyMatchups(teams [][]models.PlayerID, stats history.Stats) ([]models.Match, [][]models.PlayerID) {
	order := make([]int, len(teams))
	for i := range order {
		order[i] = i
	}
	randsource.Shuffle(f.rng, order)

	matched := make([]bool, len(teams))
	matches := make([]models.Match, 0, len(teams)/2)
	var leftover [][]models.PlayerID

	for _, i := range order {
		if matched[i] {
			continue
		}

		bestScore := -1
		var candidates []int
		for _, j := range order {
			if j == i || matched[j] {
				continue
			}
			score := stats.OpponentScore(teams[i], teams[j])
			switch {
			case bestScore < 0 || score < bestScore:
				bestScore = score
				candidates = append(candidates[:0], j)
			case score == bestScore:
				candidates = append(candidates, j)
			}
		}

		if len(candidates) == 0 {
			leftover = append(leftover, slices.Clone(teams[i]))
			matched[i] = true
			continue
		}

		j := randsource.Pick(f.rng, candidates)
		matched[i], matched[j] = true, true
		matches = append(matches, models.Match{
			TeamA: slices.Clone(teams[i]),
			TeamB: slices.Clone(teams[j]),
		})
	}

	return matches, leftover
}
