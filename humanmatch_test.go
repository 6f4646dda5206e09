// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package humanmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchDetectsLanguages(t *testing.T) {
	result := Match("Hans Müller", "Hans Mueller")
	assert.Equal(t, German, result.Name1.Language)
	assert.Greater(t, result.Confidence, 0.8)

	exact := Match("John Smith", "John Smith")
	assert.Equal(t, 1.0, exact.Confidence)
	assert.Equal(t, MethodExact, exact.Method)
}

func TestMatchWithLanguages(t *testing.T) {
	result := MatchWithLanguages("Robert Brown", "Bob Brown", English, English)
	assert.Equal(t, 1.0, result.Scores[ScoreFirstName])
	assert.Greater(t, result.Confidence, 0.75)
}

func TestSegmentDetection(t *testing.T) {
	got := Segment("Иван Сергеевич Петров", "")
	assert.Equal(t, Russian, got.Language)
	assert.Equal(t, "Сергеевич", got.Middle)

	explicit := Segment("John Smith", English)
	assert.Equal(t, "John", explicit.First)
	assert.Equal(t, "Smith", explicit.Last)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, Mandarin, DetectLanguage("王小明"))
	assert.Equal(t, Arabic, DetectLanguage("محمد بن سلمان"))
	assert.Equal(t, English, DetectLanguage("John Smith"))
}

func TestDistanceAndPhonetics(t *testing.T) {
	assert.Equal(t, 1.0, Distance("Smith", "smith"))
	assert.Greater(t, Distance("smith", "smyth"), 0.5)
	assert.Less(t, Distance("smith", "smyth"), 1.0)
	assert.Less(t, Distance("abc", "xyz"), 0.5)
	assert.Equal(t, 1.0, DistanceWith("smith", "smith", Levenshtein))
	assert.InDelta(t, 0.75, DistanceWith("abcd", "abce", Levenshtein), 1e-9)
	assert.GreaterOrEqual(t, PhoneticSimilarity("smith", "smyth"), 0.9)
	assert.Equal(t, PhoneticKey("smith", Soundex), PhoneticKey("smyth", Soundex))
	assert.NotEmpty(t, PhoneticKey("Katherine", Metaphone))
	assert.NotEmpty(t, PhoneticKey("Katherine", NYSIIS))
}

func TestExpandDiminutivesFacade(t *testing.T) {
	variants := ExpandDiminutives("Robert", English)
	assert.Contains(t, variants, "bob")
}

func TestConcurrentMatches(t *testing.T) {
	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- Match("Katherine Jones", "Catherine Jones").Confidence
		}()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		assert.Equal(t, first, <-done)
	}
	assert.Greater(t, first, 0.7)
}
