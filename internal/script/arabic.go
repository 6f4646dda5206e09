// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"strings"

	"github.com/sdiehl/human-match/internal/langrules"
	"github.com/sdiehl/human-match/internal/textdist"
)

// arabicComparator handles Arabic-script and romanized Arabic names.
type arabicComparator struct{}

func (arabicComparator) Similarity(name1, name2 string) float64 {
	arabic1 := langrules.IsArabicText(name1)
	arabic2 := langrules.IsArabicText(name2)

	switch {
	case arabic1 && arabic2:
		norm1 := langrules.NormalizeArabicText(name1)
		norm2 := langrules.NormalizeArabicText(name2)
		if norm1 == norm2 {
			return 1.0
		}
		return textdist.Similarity(norm1, norm2, textdist.JaroWinkler)

	case arabic1 && !arabic2:
		return textdist.Similarity(romanizeArabic(name1), strings.ToLower(name2), textdist.JaroWinkler)

	case !arabic1 && arabic2:
		return textdist.Similarity(strings.ToLower(name1), romanizeArabic(name2), textdist.JaroWinkler)
	}

	return textdist.Similarity(name1, name2, textdist.JaroWinkler)
}

// romanizeArabic maps known names to their conventional Latin spellings
// and transliterates whatever remains.
func romanizeArabic(name string) string {
	return strings.ToLower(textdist.Transliterate(langrules.RomanizeArabicName(name)))
}
