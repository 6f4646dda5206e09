// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package script provides whole-name comparators for the non-Latin-script
// languages. Each comparator bridges script and romanized forms of the same
// name; the matcher selects one through ForLanguages and falls back to the
// generic statistical comparator when no script applies.
package script

import (
	"github.com/sdiehl/human-match/internal/core"
)

// Comparator scores whole-name similarity for one script family.
// Implementations must return values in [0,1] and never fail: unusable
// input degrades to a generic string comparison.
type Comparator interface {
	Similarity(name1, name2 string) float64
}

var comparators = map[core.Language]Comparator{
	core.Arabic:   arabicComparator{},
	core.Russian:  russianComparator{},
	core.Mandarin: hanComparator{},
}

// ForLanguages returns the script comparator selected by either side's
// language tag, or false when both sides are plain Latin-script languages.
// The first argument's language wins when both have script comparators.
func ForLanguages(lang1, lang2 core.Language) (Comparator, bool) {
	if c, ok := comparators[lang1]; ok {
		return c, true
	}
	if c, ok := comparators[lang2]; ok {
		return c, true
	}
	return nil, false
}
