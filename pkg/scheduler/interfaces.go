// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package scheduler generates the next round of a session from the rounds already played.
package scheduler

import (
	"github.com/AccelByte/extend-round-scheduler/pkg/envelope"
	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/pairing"
)

/*
RoundScheduler is a thing that takes the players of a session and the rounds they already played
and produces the matches of the next round. It keeps no state between calls: the caller owns the
round log and appends the returned matches to it as a new round.

Rounds that cannot be filled are not errors. The result then carries fewer matches and a reason.
Only a structurally invalid request makes Schedule return an error.
*/
type RoundScheduler interface {
	// GenerateRound pairs free players into doubles teams, or uses fixedTeams when given,
	// and returns at most numMatches matches.
	GenerateRound(rootScope *envelope.Scope, players []models.PlayerID, fixedTeams []models.Pair, previousRounds []models.Round, numMatches int) models.Result

	// GenerateSinglesRound returns at most numMatches one against one matches.
	GenerateSinglesRound(rootScope *envelope.Scope, players []models.PlayerID, previousRounds []models.Round, numMatches int) models.Result

	// Schedule applies participation and gender rules, works out the number of matches
	// from the courts, dispatches on the mode and assigns courts and match ids.
	Schedule(rootScope *envelope.Scope, request models.RoundRequest) (models.Result, error)
}

// PairSelector picks disjoint teammate pairs for a doubles round.
type PairSelector interface {
	SelectTeamPairs(rootScope *envelope.Scope, allPairs []models.Pair, players []models.PlayerID, stats history.Stats, neededPairs int) pairing.Selection
}

// MatchupFormer puts teams against each other and returns any team left without an opponent.
type MatchupFormer interface {
	FormMatchups(rootScope *envelope.Scope, teams [][]models.PlayerID, stats history.Stats) ([]models.Match, [][]models.PlayerID)
}
