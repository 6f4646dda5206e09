// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package batch scores large sets of name pairs concurrently. The matcher
// is stateless, so a fixed pool of workers pulling from one job channel is
// enough; results come back in input order regardless of completion order.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/sdiehl/human-match/internal/core"
	"github.com/sdiehl/human-match/internal/matcher"
)

// Pair is one comparison job. Empty languages are detected from the text.
type Pair struct {
	Name1 string
	Name2 string
	Lang1 core.Language
	Lang2 core.Language
}

// Pool scores pairs across a fixed number of goroutines.
type Pool struct {
	workers int
	matcher *matcher.Matcher
}

// NewPool returns a pool of the given size backed by m. Sizes below one
// default to the number of CPUs.
func NewPool(workers int, m *matcher.Matcher) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers, matcher: m}
}

type job struct {
	index int
	pair  Pair
}

// Run scores every pair and returns the results in input order. A
// canceled context stops dispatching; pairs never dispatched come back as
// zero-confidence results.
func (p *Pool) Run(ctx context.Context, pairs []Pair) []core.MatchResult {
	results := make([]core.MatchResult, len(pairs))
	if len(pairs) == 0 {
		return results
	}

	workers := p.workers
	if workers > len(pairs) {
		workers = len(pairs)
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = p.matcher.Match(j.pair.Name1, j.pair.Name2, j.pair.Lang1, j.pair.Lang2)
			}
		}()
	}

dispatch:
	for i, pair := range pairs {
		select {
		case jobs <- job{index: i, pair: pair}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
