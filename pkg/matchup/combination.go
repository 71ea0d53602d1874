// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package matchup

// MatchingIterator generates every way to split n teams into matches, one at a time.
// The lowest remaining team always opens the next match, so an arrangement never
// comes back with its matches in a different order.
type MatchingIterator struct {
	n       int
	choices []int
	started bool
	done    bool
}

// NewMatchingIterator returns an iterator over the arrangements of n teams. n must be even.
func NewMatchingIterator(n int) *MatchingIterator {
	it := &MatchingIterator{n: n}
	if n < 2 || n%2 != 0 {
		it.done = true
		return it
	}
	it.choices = make([]int, n/2)
	return it
}

// Next returns the next arrangement as index pairs. It returns nil when there are no more arrangements.
func (it *MatchingIterator) Next() [][2]int {
	if it.done {
		return nil
	}

	if it.started {
		// choices is a mixed radix counter, level k picks among n-2k-1 opponents
		i := len(it.choices) - 1
		for ; i >= 0; i-- {
			it.choices[i]++
			if it.choices[i] < it.n-2*i-1 {
				break
			}
			it.choices[i] = 0
		}
		if i < 0 {
			it.done = true
			return nil
		}
	}
	it.started = true

	return it.decode()
}

func (it *MatchingIterator) decode() [][2]int {
	remaining := make([]int, it.n)
	for i := range remaining {
		remaining[i] = i
	}

	matches := make([][2]int, 0, it.n/2)
	for _, choice := range it.choices {
		first := remaining[0]
		second := remaining[1+choice]
		matches = append(matches, [2]int{first, second})

		next := remaining[:0:0]
		for _, idx := range remaining[1:] {
			if idx != second {
				next = append(next, idx)
			}
		}
		remaining = next
	}
	return matches
}

// CountMatchings returns how many arrangements n teams have, (n-1)!! for even n.
func CountMatchings(n int) int {
	if n < 2 || n%2 != 0 {
		return 0
	}
	count := 1
	for k := n - 1; k > 1; k -= 2 {
		count *= k
	}
	return count
}
