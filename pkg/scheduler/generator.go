// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package scheduler

import (
	"time"

	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-round-scheduler/pkg/config"
	"github.com/AccelByte/extend-round-scheduler/pkg/constants"
	"github.com/AccelByte/extend-round-scheduler/pkg/envelope"
	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/matchup"
	"github.com/AccelByte/extend-round-scheduler/pkg/metrics"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/pairing"
	"github.com/AccelByte/extend-round-scheduler/pkg/randsource"
	"github.com/AccelByte/extend-round-scheduler/pkg/utils"
)

// Generator is the default RoundScheduler.
// It is not safe for concurrent use because its random source is not,
// use one generator per session.
type Generator struct {
	cfg      *config.Config
	metrics  metrics.SchedulerMetrics
	rng      randsource.Source
	selector PairSelector
	former   MatchupFormer
	newID    utils.IDGenerator
}

var _ RoundScheduler = (*Generator)(nil)

type Option func(*Generator)

// WithIDGenerator replaces the ulid match ids, mostly for reproducible output.
func WithIDGenerator(gen utils.IDGenerator) Option {
	return func(g *Generator) {
		g.newID = gen
	}
}

func WithPairSelector(selector PairSelector) Option {
	return func(g *Generator) {
		g.selector = selector
	}
}

func WithMatchupFormer(former MatchupFormer) Option {
	return func(g *Generator) {
		g.former = former
	}
}

func New(cfg *config.Config, m metrics.SchedulerMetrics, rng randsource.Source, opts ...Option) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	if rng == nil {
		rng = randsource.NewTimeSeeded()
	}
	g := &Generator{
		cfg:     cfg,
		metrics: m,
		rng:     rng,
		newID:   utils.NewULIDGenerator(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.selector == nil {
		g.selector = pairing.NewSelector(cfg, rng, m)
	}
	if g.former == nil {
		g.former = matchup.NewFormer(cfg, rng)
	}
	return g
}

// GenerateRound returns the next doubles round. With fixed teams the teams are only
// matched against each other, otherwise players are paired first.
func (g *Generator) GenerateRound(rootScope *envelope.Scope, players []models.PlayerID, fixedTeams []models.Pair, previousRounds []models.Round, numMatches int) models.Result {
	if len(fixedTeams) > 0 {
		return g.fixedTeamRound(rootScope, disjointTeams(fixedTeams), previousRounds, numMatches)
	}
	players = distinctPlayers(players)
	return g.pairedRound(rootScope, players, pairing.AllPossiblePairs(players), previousRounds, numMatches)
}

// distinctPlayers drops empty and repeated ids so a player can never be paired with itself.
func distinctPlayers(players []models.PlayerID) []models.PlayerID {
	return utils.Distinct(pie.Filter(players, func(id models.PlayerID) bool {
		return id != ""
	}))
}

// disjointTeams keeps the valid fixed teams that share no player with an earlier team.
func disjointTeams(teams []models.Pair) []models.Pair {
	used := make(map[models.PlayerID]struct{}, len(teams)*2)
	return pie.Filter(teams, func(team models.Pair) bool {
		if !team.Valid() {
			return false
		}
		_, usedA := used[team.A]
		_, usedB := used[team.B]
		if usedA || usedB {
			return false
		}
		used[team.A] = struct{}{}
		used[team.B] = struct{}{}
		return true
	})
}

// pairedRound selects teammate pairs from allPairs and matches them against each other.
func (g *Generator) pairedRound(rootScope *envelope.Scope, players []models.PlayerID, allPairs []models.Pair, previousRounds []models.Round, numMatches int) models.Result {
	scope := rootScope.NewChildScope(constants.GenerateRoundFunction)
	defer scope.Finish()

	mode := constants.ModeFreePairing
	startTime := time.Now()
	defer func() {
		g.addElapsed(mode, constants.GenerateRoundFunction, time.Since(startTime))
	}()

	scope.SetAttributes(envelope.ModeTag, mode)
	scope.SetAttributes(envelope.NumPlayersTag, len(players))
	scope.SetAttributes(envelope.RoundNumberTag, len(previousRounds)+1)

	if numMatches < 1 {
		return g.emptyResult(scope, mode, constants.ReasonNoMatchesRequested)
	}
	if len(players) < constants.MinPlayersDoubles {
		return g.emptyResult(scope, mode, constants.ReasonNotEnoughPlayers)
	}

	requested := min(numMatches, len(players)/(2*constants.DoublesTeamSize))
	stats := history.Compute(players, previousRounds)
	selection := g.selector.SelectTeamPairs(scope, allPairs, players, stats, requested*2)
	teams := pie.Map(selection.Pairs, func(p models.Pair) []models.PlayerID {
		return p.Players()
	})
	matches, leftover := g.former.FormMatchups(scope, teams, stats)

	return g.finish(scope, mode, requested, matches, leftover, logrus.Fields{
		"stage":    selection.Stage,
		"level":    selection.Level,
		"attempts": selection.Attempts,
	})
}

func (g *Generator) fixedTeamRound(rootScope *envelope.Scope, fixedTeams []models.Pair, previousRounds []models.Round, numMatches int) models.Result {
	scope := rootScope.NewChildScope(constants.FixedTeamMatchupsFunction)
	defer scope.Finish()

	mode := constants.ModeFixedTeams
	startTime := time.Now()
	defer func() {
		g.addElapsed(mode, constants.FixedTeamMatchupsFunction, time.Since(startTime))
	}()

	scope.SetAttributes(envelope.ModeTag, mode)
	scope.SetAttributes(envelope.RoundNumberTag, len(previousRounds)+1)

	if numMatches < 1 {
		return g.emptyResult(scope, mode, constants.ReasonNoMatchesRequested)
	}
	if len(fixedTeams) < constants.MinFixedTeams {
		return g.emptyResult(scope, mode, constants.ReasonNotEnoughTeams)
	}

	requested := min(numMatches, len(fixedTeams)/2)
	players := make([]models.PlayerID, 0, len(fixedTeams)*2)
	for _, team := range fixedTeams {
		players = append(players, team.Players()...)
	}
	stats := history.Compute(players, previousRounds)
	matches := matchup.FixedTeamMatchups(g.rng, fixedTeams, stats, requested)

	return g.finish(scope, mode, requested, matches, nil, logrus.Fields{
		"num_teams": len(fixedTeams),
	})
}

// GenerateSinglesRound puts the players who played the least into one player teams.
func (g *Generator) GenerateSinglesRound(rootScope *envelope.Scope, players []models.PlayerID, previousRounds []models.Round, numMatches int) models.Result {
	scope := rootScope.NewChildScope(constants.GenerateRoundFunction)
	defer scope.Finish()

	mode := constants.ModeSingles
	players = distinctPlayers(players)
	startTime := time.Now()
	defer func() {
		g.addElapsed(mode, constants.GenerateRoundFunction, time.Since(startTime))
	}()

	scope.SetAttributes(envelope.ModeTag, mode)
	scope.SetAttributes(envelope.NumPlayersTag, len(players))

	if numMatches < 1 {
		return g.emptyResult(scope, mode, constants.ReasonNoMatchesRequested)
	}
	if len(players) < constants.MinPlayersSingles {
		return g.emptyResult(scope, mode, constants.ReasonNotEnoughPlayers)
	}

	requested := min(numMatches, len(players)/2)
	stats := history.Compute(players, previousRounds)
	ordered := pie.SortStableUsing(randsource.Shuffled(g.rng, players), func(a, b models.PlayerID) bool {
		return stats.Played(a) < stats.Played(b)
	})
	teams := pie.Map(ordered[:2*requested], func(id models.PlayerID) []models.PlayerID {
		return []models.PlayerID{id}
	})
	matches, leftover := g.former.FormMatchups(scope, teams, stats)

	return g.finish(scope, mode, requested, matches, leftover, logrus.Fields{})
}

func (g *Generator) emptyResult(scope *envelope.Scope, mode string, reason string) models.Result {
	scope.Log.WithFields(logrus.Fields{
		"mode":   mode,
		"reason": reason,
	}).Info("round not scheduled")
	if g.metrics != nil {
		g.metrics.AddNotScheduledReason(mode, reason)
	}
	return models.Result{Matches: []models.Match{}, Reason: reason}
}

func (g *Generator) finish(scope *envelope.Scope, mode string, requested int, matches []models.Match, leftover [][]models.PlayerID, logFields logrus.Fields) models.Result {
	result := models.Result{Matches: matches, Resting: leftover}
	switch {
	case len(leftover) > 0:
		result.Reason = constants.ReasonLeftoverTeam
	case len(matches) < requested:
		result.Reason = constants.ReasonPartialRound
	}
	if result.Matches == nil {
		result.Matches = []models.Match{}
	}

	logFields["mode"] = mode
	logFields["requested_matches"] = requested
	logFields["num_matches"] = len(matches)
	logFields["num_resting"] = len(leftover)
	if result.Reason != "" {
		logFields["reason"] = result.Reason
	}
	scope.SetAttributes(envelope.NumMatchesTag, len(matches))
	scope.Log.WithFields(logFields).Info("round generated")

	if g.metrics != nil {
		g.metrics.AddScheduledMatches(mode, requested, len(matches))
		if result.Reason != "" {
			g.metrics.AddNotScheduledReason(mode, result.Reason)
		}
	}
	return result
}

func (g *Generator) addElapsed(mode, function string, elapsed time.Duration) {
	if g.metrics != nil {
		g.metrics.AddGenerateRoundElapsedTimeMs(mode, function, elapsed)
	}
}
