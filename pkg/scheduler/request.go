// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package scheduler

import (
	"fmt"
	"time"

	"github.com/elliotchance/pie/v2"
	"github.com/go-openapi/swag"
	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"
	"gopkg.in/typ.v4/slices"

	"github.com/AccelByte/extend-round-scheduler/pkg/common"
	"github.com/AccelByte/extend-round-scheduler/pkg/constants"
	"github.com/AccelByte/extend-round-scheduler/pkg/envelope"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/pairing"
)

// Schedule validates the request and generates the next round for it.
func (g *Generator) Schedule(rootScope *envelope.Scope, request models.RoundRequest) (models.Result, error) {
	scope := rootScope.NewChildScope(constants.ScheduleFunction)
	defer scope.Finish()

	startTime := time.Now()
	if err := request.Validate(); err != nil {
		scope.Log.WithError(err).WithField("code", models.ValidationErrorCode(err)).Error("invalid round request")
		return models.Result{}, fmt.Errorf("validate round request: %w", err)
	}

	if scope.Log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		scope.Log.Debugf("previous rounds: %s", common.LogJSONFormatter(CopyRounds(request.PreviousRounds)))
	}

	format := request.FormatOrDefault()
	genderTeams := request.GenderTeamsOrDefault()
	eligible := EligibleParticipants(request.Participants, genderTeams)
	playerIDs := pie.Map(eligible, func(p models.Participant) models.PlayerID {
		return p.PlayerID
	})
	courts := SortedCourts(request.Courts)

	logFields := logrus.Fields{
		"mode":             request.ModeOrDefault(),
		"format":           format,
		"gender_teams":     genderTeams,
		"num_participants": len(request.Participants),
		"num_eligible":     len(eligible),
		"num_courts":       len(courts),
		"num_fixed_teams":  len(request.FixedTeams),
		"previous_rounds":  len(request.PreviousRounds),
	}

	var (
		result     models.Result
		mode       string
		numMatches int
	)
	switch {
	case request.ModeOrDefault() == models.ModeWinnersCourt:
		mode = constants.ModeWinnersCourt
		numMatches = NumMatches(request.NumMatches, len(courts), len(eligible)/(2*format.TeamSize()))
		result = g.WinnersCourtRound(scope, eligible, request.PreviousRounds, numMatches, format)
	case len(request.FixedTeams) > 0:
		mode = constants.ModeFixedTeams
		teams := FilterFixedTeams(request.FixedTeams, request.Participants, genderTeams)
		numMatches = NumMatches(request.NumMatches, len(courts), len(teams)/2)
		result = g.GenerateRound(scope, nil, teams, request.PreviousRounds, numMatches)
	case format == models.FormatSingles:
		mode = constants.ModeSingles
		numMatches = NumMatches(request.NumMatches, len(courts), len(playerIDs)/2)
		result = g.GenerateSinglesRound(scope, playerIDs, request.PreviousRounds, numMatches)
	case genderTeams == models.GenderTeamsMixPairs:
		mode = constants.ModeFreePairing
		males, females := splitByGender(eligible)
		numMatches = NumMatches(request.NumMatches, len(courts), min(len(males), len(females))/2)
		result = g.pairedRound(scope, playerIDs, pairing.CrossPairs(males, females), request.PreviousRounds, numMatches)
	default:
		mode = constants.ModeFreePairing
		numMatches = NumMatches(request.NumMatches, len(courts), len(playerIDs)/(2*constants.DoublesTeamSize))
		result = g.GenerateRound(scope, playerIDs, nil, request.PreviousRounds, numMatches)
	}

	g.assignCourtsAndIDs(result.Matches, courts)

	if g.metrics != nil {
		g.metrics.SetSessionPlayers(mode, len(eligible))
		g.metrics.AddGenerateRoundElapsedTimeMs(mode, constants.ScheduleFunction, time.Since(startTime))
	}

	logFields["num_matches_requested"] = numMatches
	logFields["num_matches"] = len(result.Matches)
	logFields["reason"] = result.Reason
	scope.Log.WithFields(logFields).Info("round scheduled")

	return result, nil
}

// EligibleParticipants keeps the playing participants allowed by the gender rule.
func EligibleParticipants(participants []models.Participant, genderTeams models.GenderTeams) []models.Participant {
	return slices.Filter(participants, func(p models.Participant) bool {
		return p.Playing && genderAllowed(p.Gender, genderTeams)
	})
}

func genderAllowed(gender models.Gender, genderTeams models.GenderTeams) bool {
	switch genderTeams {
	case models.GenderTeamsAny, "":
		return true
	case models.GenderTeamsMen:
		return gender == models.GenderMale
	case models.GenderTeamsWomen:
		return gender == models.GenderFemale
	case models.GenderTeamsMixPairs:
		return gender == models.GenderMale || gender == models.GenderFemale
	default:
		return gender != models.GenderPreferNotToSay
	}
}

// FilterFixedTeams keeps the fixed teams allowed by the gender rule whose members are not
// marked as sitting out. Members missing from participants have no known gender.
func FilterFixedTeams(teams []models.Pair, participants []models.Participant, genderTeams models.GenderTeams) []models.Pair {
	byID := make(map[models.PlayerID]models.Participant, len(participants))
	for _, p := range participants {
		byID[p.PlayerID] = p
	}

	return slices.Filter(teams, func(team models.Pair) bool {
		a, okA := byID[team.A]
		b, okB := byID[team.B]
		if (okA && !a.Playing) || (okB && !b.Playing) {
			return false
		}
		if genderTeams == models.GenderTeamsMixPairs {
			return (a.Gender == models.GenderMale && b.Gender == models.GenderFemale) ||
				(a.Gender == models.GenderFemale && b.Gender == models.GenderMale)
		}
		return genderAllowed(a.Gender, genderTeams) && genderAllowed(b.Gender, genderTeams)
	})
}

// NumMatches returns the requested number of matches, or when none was requested, one per
// court (at least one court) limited by what the players can fill.
func NumMatches(requested *int, numCourts int, capacity int) int {
	if requested != nil {
		return min(swag.IntValue(requested), capacity)
	}
	return min(max(numCourts, 1), capacity)
}

// SortedCourts returns the courts by ascending order.
func SortedCourts(courts []models.Court) []models.Court {
	return pie.SortStableUsing(courts, func(a, b models.Court) bool {
		return a.Order < b.Order
	})
}

// CopyRounds deep copies rounds for logging.
func CopyRounds(rounds []models.Round) interface{} {
	copied, err := copystructure.Copy(rounds)
	if err != nil {
		logrus.Warn("failed copy rounds:", err)
		return nil
	}
	return copied
}

func splitByGender(participants []models.Participant) (males, females []models.PlayerID) {
	for _, p := range participants {
		switch p.Gender {
		case models.GenderMale:
			males = append(males, p.PlayerID)
		case models.GenderFemale:
			females = append(females, p.PlayerID)
		}
	}
	return males, females
}

func (g *Generator) assignCourtsAndIDs(matches []models.Match, courts []models.Court) {
	for i := range matches {
		matches[i].MatchID = g.newID()
		if i < len(courts) {
			matches[i].CourtID = courts[i].CourtID
		}
	}
}
