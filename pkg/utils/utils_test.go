// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package utils

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Distinct([]string{"b", "a", "b", "c", "a"}))
	assert.Equal(t, []int{}, Distinct([]int(nil)))
}

func TestNewULIDGenerator_Sortable(t *testing.T) {
	gen := NewULIDGenerator()
	a := gen()
	b := gen()
	require.Len(t, a, 26)
	assert.Less(t, a, b)
}

func TestNewSeededULIDGenerator_Deterministic(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	gen1 := NewSeededULIDGenerator(now, rand.New(rand.NewSource(7)))
	gen2 := NewSeededULIDGenerator(now, rand.New(rand.NewSource(7)))

	for i := 0; i < 5; i++ {
		assert.Equal(t, gen1(), gen2())
	}
}

func TestNewSequentialIDGenerator(t *testing.T) {
	gen := NewSequentialIDGenerator("match")
	assert.Equal(t, "match-1", gen())
	assert.Equal(t, "match-2", gen())
}
