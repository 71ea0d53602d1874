// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package scheduler

import (
	"time"

	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-round-scheduler/pkg/constants"
	"github.com/AccelByte/extend-round-scheduler/pkg/envelope"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
)

type courtResult struct {
	winners []models.PlayerID
	losers  []models.PlayerID
}

// WinnersCourtRound moves winners one court up and losers one court down.
// The first round seeds the courts by level, best players on the first court.
func (g *Generator) WinnersCourtRound(rootScope *envelope.Scope, participants []models.Participant, previousRounds []models.Round, numMatches int, format models.Format) models.Result {
	scope := rootScope.NewChildScope(constants.WinnersCourtFunction)
	defer scope.Finish()

	mode := constants.ModeWinnersCourt
	startTime := time.Now()
	defer func() {
		g.addElapsed(mode, constants.WinnersCourtFunction, time.Since(startTime))
	}()

	scope.SetAttributes(envelope.ModeTag, mode)
	scope.SetAttributes(envelope.RoundNumberTag, len(previousRounds)+1)

	if numMatches < 1 {
		return g.emptyResult(scope, mode, constants.ReasonNoMatchesRequested)
	}

	teamSize := format.TeamSize()
	if len(previousRounds) == 0 {
		if len(participants) < 2*teamSize {
			return g.emptyResult(scope, mode, constants.ReasonNotEnoughPlayers)
		}
		requested := min(numMatches, len(participants)/(2*teamSize))
		return g.finish(scope, mode, requested, seedCourts(participants, requested, teamSize), nil, logrus.Fields{
			"seeded": true,
		})
	}

	previous := pie.Filter(previousRounds[len(previousRounds)-1].Matches, func(m models.Match) bool {
		return m.HasPlayers()
	})
	if len(previous) == 0 {
		return g.emptyResult(scope, mode, constants.ReasonPreviousRoundEmpty)
	}

	results := pie.Map(previous, func(m models.Match) courtResult {
		winners, losers := m.Winners()
		return courtResult{winners: winners, losers: losers}
	})

	matches := rotateCourts(results)
	requested := min(numMatches, len(matches))
	return g.finish(scope, mode, requested, matches[:requested], nil, logrus.Fields{
		"previous_courts": len(previous),
	})
}

// seedCourts sorts players by level and fills the courts in order. In doubles the
// first and third best play against the second and fourth.
func seedCourts(participants []models.Participant, numMatches int, teamSize int) []models.Match {
	sorted := pie.SortStableUsing(participants, func(a, b models.Participant) bool {
		return a.Level > b.Level
	})

	matches := make([]models.Match, 0, numMatches)
	for i := 0; i < numMatches; i++ {
		group := sorted[i*2*teamSize : (i+1)*2*teamSize]
		if teamSize == 1 {
			matches = append(matches, models.Match{
				TeamA: []models.PlayerID{group[0].PlayerID},
				TeamB: []models.PlayerID{group[1].PlayerID},
			})
			continue
		}
		matches = append(matches, models.Match{
			TeamA: []models.PlayerID{group[0].PlayerID, group[2].PlayerID},
			TeamB: []models.PlayerID{group[1].PlayerID, group[3].PlayerID},
		})
	}
	return matches
}

// rotateCourts builds one match per previous court. Court i receives the players coming
// down from court i-1 (its own winners on the first court) and the players coming up from
// court i+1 (its own losers on the last court).
func rotateCourts(results []courtResult) []models.Match {
	if len(results) == 1 {
		return []models.Match{mixTeams(results[0].winners, results[0].losers)}
	}

	last := len(results) - 1
	matches := make([]models.Match, 0, len(results))
	for i := range results {
		var down, up []models.PlayerID
		if i == 0 {
			down = results[0].winners
		} else {
			down = results[i-1].losers
		}
		if i == last {
			up = results[last].losers
		} else {
			up = results[i+1].winners
		}
		matches = append(matches, mixTeams(down, up))
	}
	return matches
}

// mixTeams splits two arriving doubles teams so each new team has one player of each.
func mixTeams(x, y []models.PlayerID) models.Match {
	if len(x) >= 2 && len(y) >= 2 {
		return models.Match{
			TeamA: []models.PlayerID{x[0], y[0]},
			TeamB: []models.PlayerID{x[1], y[1]},
		}
	}
	return models.Match{
		TeamA: append([]models.PlayerID(nil), x...),
		TeamB: append([]models.PlayerID(nil), y...),
	}
}
