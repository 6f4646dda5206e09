// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package langrules

import (
	"regexp"
	"strings"

	"github.com/sdiehl/human-match/internal/core"
)

var arabicRules = &Rules{
	Language: core.Arabic,
	Particles: set(
		"al", "el", "ibn", "bin", "bint", "abu", "um", "abd",
		"عبد", "ابن", "بن", "بنت", "أبو", "أم", "الـ",
	),
	Honorifics: set(
		"mr", "mrs", "miss", "ms", "dr", "prof",
		"sheikh", "shaikh", "sheikha", "imam", "hajj", "hajja",
		"sayyid", "sayyida", "amir", "amira", "malik", "malika",
		"sultan", "sultana",
		"أستاذ", "أستاذة", "دكتور", "دكتورة", "شيخ", "شيخة",
		"سيد", "سيدة", "حاج", "حاجة", "أمير", "أميرة",
		"ملك", "ملكة", "سلطان", "سلطانة",
	),
}

var (
	arabicScript     = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}]`)
	arabicDiacritics = regexp.MustCompile(`[\x{064B}-\x{065F}\x{0670}\x{0640}]`)
	arabicAlefForms  = regexp.MustCompile(`[أإآ]`)
	arabicYehForms   = regexp.MustCompile(`[ىئ]`)
	multiSpace       = regexp.MustCompile(`\s+`)
)

// IsArabicText reports whether text contains Arabic-script characters.
func IsArabicText(text string) bool {
	return arabicScript.MatchString(text)
}

// NormalizeArabicText removes tashkeel and folds letter variants to their
// standard forms so orthographic variants of the same name compare equal.
func NormalizeArabicText(text string) string {
	if text == "" {
		return text
	}
	normalized := arabicDiacritics.ReplaceAllString(text, "")
	normalized = arabicAlefForms.ReplaceAllString(normalized, "ا")
	normalized = strings.ReplaceAll(normalized, "ة", "ه")
	normalized = arabicYehForms.ReplaceAllString(normalized, "ي")
	return multiSpace.ReplaceAllString(strings.TrimSpace(normalized), " ")
}

// arabicRomanizations maps frequent Arabic given names to their usual Latin
// spellings, bridging script/romanized comparisons.
var arabicRomanizations = map[string]string{
	"محمد":      "muhammad",
	"أحمد":      "ahmad",
	"علي":       "ali",
	"عبدالله":   "abdullah",
	"عبدالرحمن": "abdulrahman",
	"عبدالعزيز": "abdulaziz",
	"خالد":      "khalid",
	"سالم":      "salem",
	"عمر":       "omar",
	"يوسف":      "yusuf",
	"إبراهيم":   "ibrahim",
	"حسن":       "hassan",
	"حسين":      "hussein",
	"فاطمة":     "fatima",
	"عائشة":     "aisha",
	"خديجة":     "khadija",
	"مريم":      "mariam",
	"زينب":      "zainab",
	"صفية":      "safiya",
}

// RomanizeArabicName replaces every token with its conventional Latin
// spelling when one is known. The input comes back unchanged when no
// token is known.
func RomanizeArabicName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	changed := false
	for i, token := range fields {
		if roman, ok := arabicRomanizations[token]; ok {
			fields[i] = roman
			changed = true
		}
	}
	if !changed {
		return name
	}
	return strings.Join(fields, " ")
}
