// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type SchedulerMetrics interface {
	SetSessionPlayers(mode string, numPlayers int)
	AddGenerateRoundElapsedTimeMs(mode, function string, elapsedTime time.Duration)
	AddScheduledMatches(mode string, requested int, scheduled int)
	AddPairSelectionStage(stage string, level int)
	AddNotScheduledReason(mode string, reason string)
}

func NewMetrics(registry *prometheus.Registry) SchedulerMetrics {
	return setupPrometheusMetrics(registry)
}
