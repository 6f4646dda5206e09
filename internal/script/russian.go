// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"strings"

	"github.com/sdiehl/human-match/internal/langrules"
	"github.com/sdiehl/human-match/internal/textdist"
)

// russianComparator handles Cyrillic and romanized Russian names.
type russianComparator struct{}

func (russianComparator) Similarity(name1, name2 string) float64 {
	cyrillic1 := langrules.IsCyrillicText(name1)
	cyrillic2 := langrules.IsCyrillicText(name2)

	switch {
	case cyrillic1 && cyrillic2:
		norm1 := langrules.NormalizeCyrillicText(name1)
		norm2 := langrules.NormalizeCyrillicText(name2)
		if norm1 == norm2 {
			return 1.0
		}
		return textdist.Similarity(norm1, norm2, textdist.JaroWinkler)

	case cyrillic1 && !cyrillic2:
		return textdist.Similarity(romanizeRussian(name1), strings.ToLower(name2), textdist.JaroWinkler)

	case !cyrillic1 && cyrillic2:
		return textdist.Similarity(strings.ToLower(name1), romanizeRussian(name2), textdist.JaroWinkler)
	}

	// Transliteration schemes differ (Sergey/Sergei); a small lift keeps
	// near-matches from dropping below calibrated thresholds.
	base := textdist.Similarity(name1, name2, textdist.JaroWinkler)
	if base > 0.8 {
		base = min(1.0, base*1.05)
	}
	return base
}

// romanizeRussian maps known names to conventional transliterations and
// transliterates whatever remains.
func romanizeRussian(name string) string {
	return strings.ToLower(textdist.Transliterate(langrules.RomanizeRussianName(name)))
}
