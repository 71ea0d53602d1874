// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	sessionPlayers       prometheus.GaugeVec
	generateRoundElapsed prometheus.HistogramVec
	scheduledMatches     prometheus.CounterVec
	unfilledMatches      prometheus.CounterVec
	pairSelectionStage   prometheus.CounterVec
	notScheduledReasons  prometheus.CounterVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	sessionPlayers := factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rs_session_players",
			Help: "Number of eligible players in the last scheduled round",
		}, []string{"mode"})

	//nolint:promlinter
	generateRoundElapsed := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rs_generate_round_elapsed_time_ms",
			Help:    "A histogram of round generation functions elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"mode", "function"})

	scheduledMatches := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rs_scheduled_matches_total",
			Help: "Matches produced by the scheduler",
		}, []string{"mode"})

	unfilledMatches := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rs_unfilled_matches_total",
			Help: "Requested matches the scheduler could not fill",
		}, []string{"mode"})

	pairSelectionStage := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rs_pair_selection_stage_total",
			Help: "Pair selections by the stage and usage level that produced them",
		}, []string{"stage", "level"})

	//nolint:promlinter
	notScheduledReasons := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rs_not_scheduled_reasons",
			Help: "A counter for reasons a round was empty or partial",
		}, []string{"mode", "reason"})

	return prometheusMetrics{
		sessionPlayers:       *sessionPlayers,
		generateRoundElapsed: *generateRoundElapsed,
		scheduledMatches:     *scheduledMatches,
		unfilledMatches:      *unfilledMatches,
		pairSelectionStage:   *pairSelectionStage,
		notScheduledReasons:  *notScheduledReasons,
	}
}

func (metrics prometheusMetrics) SetSessionPlayers(mode string, numPlayers int) {
	metrics.sessionPlayers.With(prometheus.Labels{"mode": mode}).Set(float64(numPlayers))
}

func (metrics prometheusMetrics) AddGenerateRoundElapsedTimeMs(mode, function string, elapsedTime time.Duration) {
	metrics.generateRoundElapsed.With(prometheus.Labels{"mode": mode, "function": function}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddScheduledMatches(mode string, requested int, scheduled int) {
	metrics.scheduledMatches.With(prometheus.Labels{"mode": mode}).Add(float64(scheduled))
	if requested > scheduled {
		metrics.unfilledMatches.With(prometheus.Labels{"mode": mode}).Add(float64(requested - scheduled))
	}
}

func (metrics prometheusMetrics) AddPairSelectionStage(stage string, level int) {
	metrics.pairSelectionStage.With(prometheus.Labels{"stage": stage, "level": strconv.Itoa(level)}).Inc()
}

func (metrics prometheusMetrics) AddNotScheduledReason(mode string, reason string) {
	metrics.notScheduledReasons.With(prometheus.Labels{"mode": mode, "reason": reason}).Add(float64(1))
}
