// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"time"

	"github.com/AccelByte/extend-round-scheduler/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) SetSessionPlayers(mode string, numPlayers int) {
}

func (s stubMetricsCollection) AddGenerateRoundElapsedTimeMs(mode, function string, elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddScheduledMatches(mode string, requested int, scheduled int) {
}

func (s stubMetricsCollection) AddPairSelectionStage(stage string, level int) {
}

func (s stubMetricsCollection) AddNotScheduledReason(mode string, reason string) {
}

func NewMetrics() metrics.SchedulerMetrics {
	return stubMetricsCollection{}
}
