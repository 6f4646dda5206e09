// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textdist provides the character-level similarity primitives used
// by the name matcher: normalized string distances and a multi-factor
// statistical comparator for whole names.
package textdist

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Algorithm selects a string distance algorithm. Unknown values fall back
// to Jaro-Winkler, which favors shared prefixes and suits personal names.
type Algorithm string

const (
	JaroWinkler Algorithm = "jaro_winkler"
	Jaro        Algorithm = "jaro"
	Levenshtein Algorithm = "levenshtein"
)

// normalize case-folds and collapses hyphenated/double-spaced forms so that
// "Mary-Jane" and "mary jane" compare equal.
func normalize(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, "-", " ")
	n = strings.ReplaceAll(n, "  ", " ")
	return n
}

// Similarity returns a symmetric similarity score in [0,1] between two
// strings under the given algorithm. Inputs are normalized first; equal
// normalized strings short-circuit to 1.0.
func Similarity(s1, s2 string, algorithm Algorithm) float64 {
	n1 := normalize(s1)
	n2 := normalize(s2)

	if n1 == n2 {
		return 1.0
	}

	switch algorithm {
	case Jaro:
		score, err := edlib.StringsSimilarity(n1, n2, edlib.Jaro)
		if err != nil {
			return 0.0
		}
		return float64(score)
	case Levenshtein:
		return levenshteinSimilarity(n1, n2)
	case JaroWinkler:
		fallthrough
	default:
		score, err := edlib.StringsSimilarity(n1, n2, edlib.JaroWinkler)
		if err != nil {
			return 0.0
		}
		return float64(score)
	}
}

// levenshteinSimilarity converts edit distance to a similarity by
// normalizing against the longer string. Two empty strings are identical.
func levenshteinSimilarity(n1, n2 string) float64 {
	maxLen := max(len([]rune(n1)), len([]rune(n2)))
	if maxLen == 0 {
		return 1.0
	}
	dist := edlib.LevenshteinDistance(n1, n2)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Fixed factor weights for StatisticalSimilarity.
const (
	weightLengthRatio = 0.15
	weightCharOverlap = 0.20
	weightPositional  = 0.25
	weightBigram      = 0.15
	weightEdit        = 0.15
	weightJaroWinkler = 0.10
)

// StatisticalSimilarity fuses six signals into one whole-name similarity.
// Plain edit distance over-rewards short coincidental overlaps and
// under-penalizes length-mismatched pairs; the extra factors compensate.
func StatisticalSimilarity(name1, name2 string) float64 {
	if name1 == "" || name2 == "" {
		return 0.0
	}

	n1 := []rune(strings.ToLower(strings.TrimSpace(name1)))
	n2 := []rune(strings.ToLower(strings.TrimSpace(name2)))

	if string(n1) == string(n2) {
		return 1.0
	}

	len1, len2 := len(n1), len(n2)
	maxLen := max(len1, len2)
	minLen := min(len1, len2)
	if maxLen == 0 {
		return 1.0
	}

	// Longer strings need more in common to count as similar.
	lengthRatio := float64(minLen) / float64(maxLen)
	lengthPenalty := 0.5 + lengthRatio*0.5

	charOverlap := jaccardRunes(n1, n2)

	// Positional matches weighted toward the front of the string.
	positional := 0.0
	for i := 0; i < minLen; i++ {
		if n1[i] == n2[i] {
			positional += 1.0 - float64(i)/float64(max(maxLen, 10))
		}
	}
	if minLen > 0 {
		positional /= float64(minLen)
	}

	bigramOverlap := jaccardBigrams(n1, n2)

	editSimilarity := 1.0 - float64(edlib.LevenshteinDistance(string(n1), string(n2)))/float64(maxLen)

	jwSimilarity := 0.0
	if score, err := edlib.StringsSimilarity(string(n1), string(n2), edlib.JaroWinkler); err == nil {
		jwSimilarity = float64(score)
	}

	combined := weightLengthRatio*lengthPenalty +
		weightCharOverlap*charOverlap +
		weightPositional*positional +
		weightBigram*bigramOverlap +
		weightEdit*editSimilarity +
		weightJaroWinkler*jwSimilarity

	// Short strings with weak character overlap are mostly coincidence.
	if maxLen < 6 && charOverlap < 0.5 {
		combined *= 0.7
	}

	// Very different lengths rarely denote the same name.
	if lengthRatio < 0.6 {
		combined *= 0.5 + lengthRatio*0.5
	}

	return clamp01(combined)
}

func jaccardRunes(n1, n2 []rune) float64 {
	set1 := make(map[rune]struct{}, len(n1))
	for _, r := range n1 {
		set1[r] = struct{}{}
	}
	set2 := make(map[rune]struct{}, len(n2))
	for _, r := range n2 {
		set2[r] = struct{}{}
	}
	return jaccard(set1, set2)
}

func jaccardBigrams(n1, n2 []rune) float64 {
	set1 := bigramSet(n1)
	set2 := bigramSet(n2)
	return jaccardStr(set1, set2)
}

func bigramSet(rs []rune) map[string]struct{} {
	set := make(map[string]struct{}, len(rs))
	for i := 0; i+1 < len(rs); i++ {
		set[string(rs[i:i+2])] = struct{}{}
	}
	return set
}

func jaccard(a, b map[rune]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}
	inter := 0
	for r := range a {
		if _, ok := b[r]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func jaccardStr(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}
	inter := 0
	for s := range a {
		if _, ok := b[s]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
