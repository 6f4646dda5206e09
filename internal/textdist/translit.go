// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textdist

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Transliterate folds a string to a plain ASCII skeleton (é→e, ü→u, щ→shch).
// Non-transliterable characters are dropped by the underlying tables.
func Transliterate(s string) string {
	return unidecode.Unidecode(s)
}

// StripDiacritics removes combining marks while keeping the base letters
// (José→Jose). Unlike Transliterate it leaves non-Latin scripts intact.
func StripDiacritics(s string) string {
	result, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return result
}

var umlautExpansions = strings.NewReplacer(
	"ü", "ue",
	"ä", "ae",
	"ö", "oe",
	"ß", "ss",
)

// ExpandGermanUmlauts rewrites umlauts to their digraph forms (Müller→Mueller),
// the conventional ASCII spelling of German names.
func ExpandGermanUmlauts(s string) string {
	return umlautExpansions.Replace(s)
}
