// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package randsource holds the randomness used for shuffles and tie-breaks.
// Every generator receives its own Source so seeded runs are reproducible.
package randsource

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform random integers in [0, n).
// Implementations are not required to be safe for concurrent use.
type Source interface {
	Intn(n int) int
}

type pcgSource struct {
	r *rand.Rand
}

// New returns a deterministic Source for the given seed.
func New(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() Source {
	return New(uint64(time.Now().UnixNano()))
}

func (s *pcgSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return s.r.IntN(n)
}

// Shuffle permutes values in place (Fisher-Yates, walking from the tail).
func Shuffle[T any](src Source, values []T) {
	for i := len(values) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// Shuffled returns a shuffled copy of values.
func Shuffled[T any](src Source, values []T) []T {
	result := append(make([]T, 0, len(values)), values...)
	Shuffle(src, result)
	return result
}

// Pick returns a uniformly chosen element of values. values must not be empty.
func Pick[T any](src Source, values []T) T {
	return values[src.Intn(len(values))]
}
