// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phonetic generates sound-alike keys for names and scores
// phonetic similarity. Keys are computed on an ASCII skeleton so that
// accented and romanized forms of the same name collide.
package phonetic

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/sdiehl/human-match/internal/textdist"
)

// Algorithm selects a phonetic key algorithm.
type Algorithm string

const (
	Metaphone Algorithm = "metaphone"
	Soundex   Algorithm = "soundex"
	NYSIIS    Algorithm = "nysiis"
)

// Tuning constants. The boost values are calibrated against the reference
// corpus and are part of the scoring contract.
const (
	boostThreshold     = 0.88
	boostMultiplier    = 1.02
	rawScoreMultiplier = 0.8

	accentBoostBase       = 0.85
	accentBoostThreshold  = 0.9
	accentBoostMultiplier = 1.5
	accentBoostMax        = 0.95
	accentMatchScore      = 0.95
)

// Key returns the phonetic key of text under the given algorithm. The text
// is transliterated to ASCII and stripped to letters first. Empty results
// degrade to the transliterated or original text; Key never fails.
func Key(text string, algorithm Algorithm) string {
	normalized := textdist.Transliterate(strings.ToLower(strings.TrimSpace(text)))
	clean := letters(normalized)

	if clean == "" {
		if normalized != "" {
			return normalized
		}
		return strings.ToLower(text)
	}

	switch algorithm {
	case Metaphone:
		primary, _ := matchr.DoubleMetaphone(clean)
		if primary == "" {
			return clean
		}
		return primary
	case Soundex:
		if key := matchr.Soundex(clean); key != "" {
			return key
		}
		return clean
	case NYSIIS:
		if key := matchr.NYSIIS(clean); key != "" {
			return key
		}
		return clean
	default:
		return clean
	}
}

// Similarity scores how alike two names sound, in [0,1]. Several independent
// phonetic algorithms are evaluated and the best score kept, since each
// fails on different name classes. A floor of 0.8x the raw orthographic
// score is folded in because phonetic keys alone over-merge distinct names.
func Similarity(name1, name2 string) float64 {
	best := 0.0
	for _, algorithm := range []Algorithm{Metaphone, Soundex} {
		key1 := Key(name1, algorithm)
		key2 := Key(name2, algorithm)
		if score := textdist.Similarity(key1, key2, textdist.JaroWinkler); score > best {
			best = score
		}
	}

	rawScore := textdist.Similarity(name1, name2, textdist.JaroWinkler)

	// Identical transliterated forms are the same name in different dress.
	translit1 := textdist.Transliterate(strings.ToLower(name1))
	translit2 := textdist.Transliterate(strings.ToLower(name2))
	if translit1 == translit2 {
		return accentMatchScore
	}

	translitScore := textdist.Similarity(translit1, translit2, textdist.JaroWinkler)
	if translitScore > accentBoostThreshold {
		boosted := accentBoostBase + (translitScore-accentBoostThreshold)*accentBoostMultiplier
		if boosted > accentBoostMax {
			boosted = accentBoostMax
		}
		if boosted > best {
			best = boosted
		}
	}

	final := best
	if floor := rawScore * rawScoreMultiplier; floor > final {
		final = floor
	}
	if final > boostThreshold {
		final = min(1.0, final*boostMultiplier)
	}

	return final
}

func letters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
