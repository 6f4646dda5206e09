// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonetic

import "testing"

func TestKeySoundAlikesCollide(t *testing.T) {
	tests := []struct {
		name1, name2 string
		algorithm    Algorithm
	}{
		{"smith", "smyth", Soundex},
		{"robert", "rupert", Soundex},
		{"catherine", "katherine", Metaphone},
	}
	for _, tt := range tests {
		k1 := Key(tt.name1, tt.algorithm)
		k2 := Key(tt.name2, tt.algorithm)
		if k1 != k2 {
			t.Errorf("Key(%q, %s) = %q, Key(%q, %s) = %q; want equal",
				tt.name1, tt.algorithm, k1, tt.name2, tt.algorithm, k2)
		}
	}
}

func TestKeyNeverEmpty(t *testing.T) {
	inputs := []string{"smith", "José", "Иван", "龍", "o'brien", "  Anne-Marie  "}
	for _, in := range inputs {
		for _, alg := range []Algorithm{Metaphone, Soundex, NYSIIS, Algorithm("bogus")} {
			if got := Key(in, alg); got == "" {
				t.Errorf("Key(%q, %s) returned empty string", in, alg)
			}
		}
	}
}

func TestKeyEmptyInput(t *testing.T) {
	if got := Key("", Metaphone); got != "" {
		t.Errorf("Key(\"\") = %q, want empty string", got)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name         string
		name1, name2 string
		min, max     float64
	}{
		{"sound-alike surnames", "smith", "smyth", 0.9, 1.01},
		{"unrelated surnames", "smith", "jones", 0.0, 0.7},
		// Identical names hit the accent short-circuit, not a perfect 1.0.
		{"identical", "garcia", "garcia", 0.949, 0.951},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.name1, tt.name2)
			if got < tt.min || got > tt.max {
				t.Errorf("Similarity(%q, %q) = %v, want in [%v, %v]", tt.name1, tt.name2, got, tt.min, tt.max)
			}
		})
	}
}

func TestSimilarityAccentedForms(t *testing.T) {
	if got := Similarity("josé", "jose"); got != accentMatchScore {
		t.Errorf("Similarity(josé, jose) = %v, want %v", got, accentMatchScore)
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"smith", "smyth"},
		{"a", "z"},
		{"Владимир", "Vladimir"},
		{"anne-marie", "annemarie"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}
