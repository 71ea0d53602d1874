// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := setupPrometheusMetrics(registry)

	m.SetSessionPlayers("doubles", 8)
	m.AddGenerateRoundElapsedTimeMs("doubles", "GenerateRound", 3*time.Millisecond)
	m.AddScheduledMatches("doubles", 3, 2)
	m.AddPairSelectionStage("pool", 0)
	m.AddPairSelectionStage("pool", 0)
	m.AddNotScheduledReason("doubles", "partial_round")

	assert.Equal(t, float64(8), testutil.ToFloat64(m.sessionPlayers.WithLabelValues("doubles")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.scheduledMatches.WithLabelValues("doubles")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.unfilledMatches.WithLabelValues("doubles")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.pairSelectionStage.WithLabelValues("pool", "0")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.notScheduledReasons.WithLabelValues("doubles", "partial_round")))
}
