// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdiehl/human-match/internal/core"
	"github.com/sdiehl/human-match/internal/matcher"
)

func TestRunPreservesOrder(t *testing.T) {
	pool := NewPool(4, matcher.New())
	pairs := []Pair{
		{Name1: "John Smith", Name2: "John Smith"},
		{Name1: "John Smith", Name2: "Xavier Quintero"},
		{Name1: "Jean-Pierre Dupont", Name2: "Jean Pierre Dupont"},
		{Name1: "Robert Brown", Name2: "Bob Brown", Lang1: core.English, Lang2: core.English},
	}

	results := pool.Run(context.Background(), pairs)
	assert.Len(t, results, len(pairs))
	assert.Equal(t, 1.0, results[0].Confidence)
	assert.Less(t, results[1].Confidence, results[0].Confidence)
	assert.Equal(t, core.MethodHyphenNormalized, results[2].Method)
	assert.Equal(t, 1.0, results[3].Scores[core.ScoreFirstName])
}

func TestRunMatchesSequentialScores(t *testing.T) {
	m := matcher.New()
	pool := NewPool(8, m)
	pairs := make([]Pair, 50)
	for i := range pairs {
		pairs[i] = Pair{Name1: "Katherine Jones", Name2: "Catherine Jones"}
	}

	results := pool.Run(context.Background(), pairs)
	want := m.Match("Katherine Jones", "Catherine Jones", "", "")
	for i, r := range results {
		assert.Equal(t, want.Confidence, r.Confidence, "pair %d", i)
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(2, matcher.New())
	pairs := make([]Pair, 100)
	for i := range pairs {
		pairs[i] = Pair{Name1: "a", Name2: "b"}
	}

	results := pool.Run(ctx, pairs)
	assert.Len(t, results, len(pairs), "undispatched pairs still occupy result slots")
}

func TestRunEmpty(t *testing.T) {
	pool := NewPool(0, matcher.New())
	assert.Empty(t, pool.Run(context.Background(), nil))
}
