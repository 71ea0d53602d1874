// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package mathutil

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Spread returns the difference between the largest and the smallest value, 0 for no values.
func Spread[K comparable, T Number](values map[K]T) T {
	var lo, hi T
	first := true
	for _, v := range values {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return hi - lo
}

// MinValue returns the smallest value of a non-empty slice and false for an empty one.
func MinValue[T cmp.Ordered](values []T) (T, bool) {
	var lo T
	if len(values) == 0 {
		return lo, false
	}
	lo = values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
	}
	return lo, true
}
