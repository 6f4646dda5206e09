// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package segment splits raw name strings into structured components.
// Honorific stripping and particle-based surname detection are
// parameterized by per-language rule sets, with script-aware dispatch for
// names written in Han, Arabic, or Cyrillic characters.
package segment

import (
	"strings"

	"github.com/sdiehl/human-match/internal/core"
	"github.com/sdiehl/human-match/internal/langrules"
)

// minWordsAfterStripping guards honorific removal: a stripped name must
// keep more than this many words, otherwise the title is likely part of
// the name record and stays.
const minWordsAfterStripping = 2

var nameSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
	"phd": true, "md": true, "esq": true, "dds": true,
}

// Segment parses a raw name into components under one language's rules.
// It never fails: empty or whitespace input yields all-empty components,
// and malformed input degrades to a single-component result.
func Segment(name string, lang core.Language) core.NameComponents {
	components := core.NameComponents{Original: name, Language: lang}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return components
	}

	rules := langrules.ForLanguage(lang)
	cleaned := stripHonorifics(trimmed, rules)

	switch {
	case lang == core.Mandarin && langrules.IsHanText(cleaned):
		segmentHan(cleaned, &components)
	case lang == core.Arabic && langrules.IsArabicText(cleaned):
		segmentWords(strings.Fields(cleaned), rules, &components)
	case lang == core.Russian:
		segmentRussian(cleaned, rules, &components)
	case lang == core.Mandarin:
		segmentRomanizedHan(cleaned, &components)
	default:
		segmentWords(strings.Fields(cleaned), rules, &components)
	}

	return components
}

// stripHonorifics removes leading titles when enough of the name remains.
// A name whose second token is a particle in any language keeps its first
// word: stripping there would destroy titles fused with nobiliary
// particles ("Don de la Vega").
func stripHonorifics(name string, rules *langrules.Rules) string {
	words := strings.Fields(name)
	if len(words) <= minWordsAfterStripping {
		return name
	}

	first := strings.ToLower(strings.ReplaceAll(words[0], ".", ""))
	second := strings.ToLower(words[1])
	if rules.HasHonorific(first) && langrules.AllParticles()[second] {
		return name
	}

	cleaned := words
	for len(cleaned) > minWordsAfterStripping {
		token := strings.ToLower(strings.ReplaceAll(cleaned[0], ".", ""))
		if !rules.HasHonorific(token) {
			break
		}
		cleaned = cleaned[1:]
	}
	for len(cleaned) > minWordsAfterStripping {
		if !langrules.IsCommonHonorific(cleaned[0]) {
			break
		}
		cleaned = cleaned[1:]
	}

	if len(cleaned) < minWordsAfterStripping {
		return name
	}
	return strings.Join(cleaned, " ")
}

// segmentWords is the generic particle-split algorithm. The first token at
// position >0 found in the particle set marks the surname boundary: that
// token and everything after become the surname.
func segmentWords(words []string, rules *langrules.Rules, components *core.NameComponents) {
	words = extractPrefixSuffix(words, rules, components)

	switch len(words) {
	case 0:
		return
	case 1:
		components.First = words[0]
		return
	}

	// A leading particle means the whole remainder is a surname.
	if rules.HasParticle(strings.ToLower(words[0])) {
		components.Last = strings.Join(words, " ")
		return
	}

	for i := 1; i < len(words); i++ {
		if !rules.HasParticle(strings.ToLower(words[i])) {
			continue
		}
		components.Last = strings.Join(words[i:], " ")
		switch i {
		case 1:
			components.First = words[0]
		case 2:
			components.First = words[0]
			components.Middle = words[1]
		default:
			components.First = strings.Join(words[:i-1], " ")
			components.Middle = words[i-1]
		}
		return
	}

	// No particle: default Western convention.
	components.First = words[0]
	components.Last = words[len(words)-1]
	if len(words) > 2 {
		components.Middle = strings.Join(words[1:len(words)-1], " ")
	}
}

// segmentRussian adds patronymic recognition on top of the generic split.
// A patronymic in a two- or three-token name is always the middle component,
// whatever the particle scan would have said.
func segmentRussian(name string, rules *langrules.Rules, components *core.NameComponents) {
	words := strings.Fields(name)

	segmentWords(words, rules, components)

	switch len(words) {
	case 3:
		if langrules.IsPatronymic(words[1]) {
			components.First = words[0]
			components.Middle = words[1]
			components.Last = words[2]
		}
	case 2:
		if langrules.IsPatronymic(words[1]) {
			components.First = words[0]
			components.Middle = words[1]
			components.Last = ""
		}
	}
}

// segmentHan applies the character-count conventions for Han-script names.
// Chinese names put the family name first; compound two-character surnames
// are assumed for four or more characters.
func segmentHan(name string, components *core.NameComponents) {
	chars := langrules.HanChars(name)

	switch {
	case len(chars) == 0:
		return
	case len(chars) == 1:
		components.First = string(chars)
	case len(chars) == 2:
		components.Last = string(chars[0])
		components.First = string(chars[1])
	case len(chars) == 3:
		if langrules.IsHanSurname(chars[0]) {
			components.Last = string(chars[0])
			components.First = string(chars[1:])
		} else {
			components.Last = string(chars[:2])
			components.First = string(chars[2])
		}
	default:
		// Four or more: compound surname, remainder given name.
		components.Last = string(chars[:2])
		components.First = string(chars[2:])
	}
}

// segmentRomanizedHan resolves token order for romanized Chinese names:
// whichever boundary token is a known surname is treated as the family
// name, supporting both Chinese and Western ordering.
func segmentRomanizedHan(name string, components *core.NameComponents) {
	words := strings.Fields(name)

	switch len(words) {
	case 0:
		return
	case 1:
		components.First = words[0]
	case 2:
		switch {
		case langrules.IsRomanizedHanSurname(words[0]):
			components.Last = words[0]
			components.First = words[1]
		default:
			components.First = words[0]
			components.Last = words[1]
		}
	case 3:
		if langrules.IsRomanizedHanSurname(words[0]) {
			components.Last = words[0]
			components.First = strings.Join(words[1:], " ")
		} else {
			components.First = words[0]
			components.Middle = words[1]
			components.Last = words[2]
		}
	default:
		components.First = words[0]
		components.Middle = strings.Join(words[1:len(words)-1], " ")
		components.Last = words[len(words)-1]
	}
}

// extractPrefixSuffix pulls a leading title that survived stripping (short
// names keep theirs) into Prefix and a trailing generational/academic
// suffix into Suffix.
func extractPrefixSuffix(words []string, rules *langrules.Rules, components *core.NameComponents) []string {
	if len(words) > 1 {
		token := strings.ToLower(strings.ReplaceAll(words[0], ".", ""))
		if rules.HasHonorific(token) || langrules.IsCommonHonorific(words[0]) {
			components.Prefix = words[0]
			words = words[1:]
		}
	}
	if len(words) > 1 {
		token := strings.ToLower(strings.TrimSuffix(words[len(words)-1], "."))
		if nameSuffixes[strings.ReplaceAll(token, ",", "")] {
			components.Suffix = words[len(words)-1]
			words = words[:len(words)-1]
		}
	}
	return words
}
