// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package utils

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Distinct returns the values without repeats, keeping the first occurrence of each in order.
func Distinct[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// IDGenerator returns a new unique id on every call.
type IDGenerator func() string

// NewULIDGenerator returns lexically sortable match ids.
func NewULIDGenerator() IDGenerator {
	return func() string {
		return ulid.Make().String()
	}
}

// NewSeededULIDGenerator returns ulids built from a fixed timestamp and the given entropy,
// so a seeded entropy source yields the same ids on every run.
func NewSeededULIDGenerator(t time.Time, entropy io.Reader) IDGenerator {
	var mu sync.Mutex
	monotonic := ulid.Monotonic(entropy, 0)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return ulid.MustNew(ulid.Timestamp(t), monotonic).String()
	}
}

// NewSequentialIDGenerator returns prefix-1, prefix-2 and so on.
func NewSequentialIDGenerator(prefix string) IDGenerator {
	var mu sync.Mutex
	next := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return fmt.Sprintf("%s-%d", prefix, next)
	}
}
