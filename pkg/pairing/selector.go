// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pairing

import (
	"time"

	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-round-scheduler/pkg/config"
	"github.com/AccelByte/extend-round-scheduler/pkg/constants"
	"github.com/AccelByte/extend-round-scheduler/pkg/envelope"
	"github.com/AccelByte/extend-round-scheduler/pkg/history"
	"github.com/AccelByte/extend-round-scheduler/pkg/metrics"
	"github.com/AccelByte/extend-round-scheduler/pkg/models"
	"github.com/AccelByte/extend-round-scheduler/pkg/randsource"
)

// Selection is the outcome of one pair selection.
type Selection struct {
	Pairs    []models.Pair
	Stage    string
	Level    int
	Attempts int
}

// Selector draws disjoint teammate pairs for a round.
// It is not safe for concurrent use because its random source is not.
type Selector struct {
	rng            randsource.Source
	metrics        metrics.SchedulerMetrics
	pool           *models.Pool
	maxAttempts    int
	avoidLastRound bool
}

func NewSelector(cfg *config.Config, rng randsource.Source, m metrics.SchedulerMetrics) *Selector {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Selector{
		rng:            rng,
		metrics:        m,
		pool:           models.NewPool(),
		maxAttempts:    cfg.MaxAttempts(),
		avoidLastRound: cfg.AvoidLastRoundPartners,
	}
}

// SelectTeamPairs returns up to neededPairs disjoint pairs drawn from allPairs.
// It starts from the least used pairs and only widens to more used ones when
// the narrower candidates cannot fill the round.
func (s *Selector) SelectTeamPairs(rootScope *envelope.Scope, allPairs []models.Pair, players []models.PlayerID, stats history.Stats, neededPairs int) Selection {
	scope := rootScope.NewChildScope(constants.SelectTeamPairsFunction)
	defer scope.Finish()

	startTime := time.Now()
	logFields := logrus.Fields{
		"num_players":  len(players),
		"num_pairs":    len(allPairs),
		"needed_pairs": neededPairs,
		"rounds":       stats.Rounds(),
	}

	best := Selection{Stage: constants.PairSelectionStagePool}
	if neededPairs <= 0 || len(allPairs) == 0 {
		scope.Log.WithFields(logFields).Debug("nothing to select")
		return best
	}

	minCount, _ := minUsage(allPairs, stats)
	best.Level = minCount

	// try runs selection attempts on one candidate pool and reports whether the round is filled.
	try := func(candidates []models.Pair, stage string, level int) bool {
		for attempt := 0; attempt < s.maxAttempts; attempt++ {
			best.Attempts++
			pairs := s.selectFromPool(candidates, players, stats, neededPairs)
			if len(pairs) > len(best.Pairs) {
				best.Pairs = pairs
				best.Stage = stage
				best.Level = level
			}
			if len(best.Pairs) >= neededPairs {
				return true
			}
		}
		if len(players) <= constants.MaxExhaustivePairingPlayers {
			if pairs := s.exhaustiveSelect(candidates, players, neededPairs); pairs != nil {
				scope.AddEvent("exhaustive pair search", map[string]interface{}{"stage": stage, "level": level})
				best.Pairs = pairs
				best.Stage = stage
				best.Level = level
				return true
			}
		}
		scope.Log.WithFields(logrus.Fields{
			"stage":      stage,
			"level":      level,
			"candidates": len(candidates),
			"best":       len(best.Pairs),
		}).Debug("candidate pool could not fill the round")
		return false
	}

	minPool := MinimalPool(allPairs, stats)
	pool := minPool
	if s.avoidLastRound {
		pool = BuildPool(allPairs, stats)
	}

	done := try(pool, constants.PairSelectionStagePool, minCount)
	if !done && len(pool) != len(minPool) {
		done = try(minPool, constants.PairSelectionStageUnfiltered, minCount)
	}
	if !done {
		for _, level := range UsageLevels(allPairs, stats) {
			if level <= minCount {
				continue
			}
			scope.AddEvent("expand usage level", map[string]interface{}{"stage": constants.PairSelectionStageExpanded, "level": level})
			if try(PairsUpToLevel(allPairs, stats, level), constants.PairSelectionStageExpanded, level) {
				break
			}
		}
	}

	logFields["selected_pairs"] = len(best.Pairs)
	logFields["stage"] = best.Stage
	logFields["level"] = best.Level
	logFields["attempts"] = best.Attempts
	logFields["elapsed_ms"] = time.Since(startTime).Milliseconds()
	scope.SetAttributes("stage", best.Stage)
	scope.SetAttributes("attempts", best.Attempts)
	scope.Log.WithFields(logFields).Debug("team pairs selected")

	if s.metrics != nil {
		s.metrics.AddPairSelectionStage(best.Stage, best.Level)
	}

	return best
}

// selectFromPool walks the players, least played first, and gives each unassigned one the
// pool partner that has played the least and been their teammate the least.
func (s *Selector) selectFromPool(pool []models.Pair, players []models.PlayerID, stats history.Stats, neededPairs int) []models.Pair {
	shuffled := append(s.pool.PlayerIDs.Get()[:0], players...)
	defer s.pool.PlayerIDs.Put(shuffled)

	randsource.Shuffle(s.rng, shuffled)
	order := pie.SortStableUsing(shuffled, func(a, b models.PlayerID) bool {
		return stats.Played(a) < stats.Played(b)
	})

	position := make(map[models.PlayerID]int, len(order))
	for i, id := range order {
		position[id] = i
	}

	partners := make(map[models.PlayerID][]models.Pair, len(order))
	for _, p := range pool {
		partners[p.A] = append(partners[p.A], p)
		partners[p.B] = append(partners[p.B], p)
	}

	assigned := s.pool.GetAssigned()
	defer s.pool.Assigned.Put(assigned)

	selected := make([]models.Pair, 0, neededPairs)
	for _, current := range order {
		if len(selected) >= neededPairs {
			break
		}
		if _, ok := assigned[current]; ok {
			continue
		}

		var (
			bestPartner models.PlayerID
			found       bool
		)
		for _, candidate := range partners[current] {
			partner := candidate.Partner(current)
			if _, ok := assigned[partner]; ok {
				continue
			}
			if _, ok := position[partner]; !ok {
				continue
			}
			if !found || s.betterPartner(current, partner, bestPartner, stats, position) {
				bestPartner = partner
				found = true
			}
		}
		if !found {
			continue
		}

		selected = append(selected, models.NewPair(current, bestPartner))
		assigned[current] = struct{}{}
		assigned[bestPartner] = struct{}{}
	}

	return selected
}

func (s *Selector) betterPartner(current, candidate, incumbent models.PlayerID, stats history.Stats, position map[models.PlayerID]int) bool {
	if pc, pi := stats.Played(candidate), stats.Played(incumbent); pc != pi {
		return pc < pi
	}
	uc := stats.Teammates(models.GetPairKey(current, candidate))
	ui := stats.Teammates(models.GetPairKey(current, incumbent))
	if uc != ui {
		return uc < ui
	}
	return position[candidate] < position[incumbent]
}

// exhaustiveSelect backtracks over the pool for neededPairs disjoint pairs among players.
// It returns nil when the pool holds no such set.
func (s *Selector) exhaustiveSelect(pool []models.Pair, players []models.PlayerID, neededPairs int) []models.Pair {
	order := randsource.Shuffled(s.rng, players)

	position := make(map[models.PlayerID]int, len(order))
	for i, id := range order {
		position[id] = i
	}
	partners := make(map[models.PlayerID][]models.PlayerID, len(order))
	for _, p := range pool {
		_, okA := position[p.A]
		_, okB := position[p.B]
		if !okA || !okB {
			continue
		}
		partners[p.A] = append(partners[p.A], p.B)
		partners[p.B] = append(partners[p.B], p.A)
	}
	for _, id := range order {
		randsource.Shuffle(s.rng, partners[id])
	}

	assigned := make(map[models.PlayerID]bool, len(order))
	selected := make([]models.Pair, 0, neededPairs)

	var search func(i, free int) bool
	search = func(i, free int) bool {
		if len(selected) >= neededPairs {
			return true
		}
		// free counts the unassigned players from position i on
		if free < 2*(neededPairs-len(selected)) {
			return false
		}
		current := order[i]
		if assigned[current] {
			return search(i+1, free)
		}
		for _, partner := range partners[current] {
			// players behind i were either paired or left out
			if assigned[partner] || position[partner] < i {
				continue
			}
			assigned[current], assigned[partner] = true, true
			selected = append(selected, models.NewPair(current, partner))
			if search(i+1, free-2) {
				return true
			}
			selected = selected[:len(selected)-1]
			delete(assigned, current)
			delete(assigned, partner)
		}
		return search(i+1, free-1)
	}

	if !search(0, len(order)) {
		return nil
	}
	return selected
}
