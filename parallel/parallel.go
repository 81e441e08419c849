// SPDX-License-Identifier: MIT

// Package parallel runs index-range work as a bounded fork-join group.
//
// Every call partitions [0,n) into contiguous, disjoint ranges, runs one task
// per range on at most `workers` goroutines and returns only after every task
// finished. There is no persistent scheduler, no cancellation and no shared
// state between calls.
//
// Complexity:
//   - Ranges: O(parts) time and space.
//   - For: O(parts) scheduling overhead on top of the work itself.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns Hi-Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// DefaultWorkers returns the worker bound used when callers pass workers<=0.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// Ranges splits [0,n) into at most `parts` contiguous ranges whose sizes
// differ by at most one. Each range holds at least `grain` items unless n
// itself is smaller, in which case a single range is returned.
// Returns nil when n<=0.
func Ranges(n, parts, grain int) []Range {
	if n <= 0 {
		return nil
	}
	if grain < 1 {
		grain = 1
	}
	if parts < 1 {
		parts = 1
	}
	// Never create ranges smaller than the grain.
	if maxParts := n / grain; parts > maxParts {
		parts = maxParts
	}
	if parts < 1 {
		parts = 1
	}

	out := make([]Range, parts)
	base, extra := n/parts, n%parts
	lo := 0
	for p := 0; p < parts; p++ {
		size := base
		if p < extra {
			size++ // first `extra` ranges absorb the remainder
		}
		out[p] = Range{Lo: lo, Hi: lo + size}
		lo += size
	}

	return out
}

// For calls fn once per range of Ranges(n, workers, grain) and blocks until
// all calls returned. With a single range fn runs on the calling goroutine.
// workers<=0 means DefaultWorkers().
func For(n, grain, workers int, fn func(lo, hi int)) {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	ranges := Ranges(n, workers, grain)
	switch len(ranges) {
	case 0:
		return
	case 1:
		fn(ranges[0].Lo, ranges[0].Hi)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range ranges {
		g.Go(func() error {
			fn(r.Lo, r.Hi)
			return nil
		})
	}
	_ = g.Wait() // tasks never fail
}
