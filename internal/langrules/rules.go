// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package langrules holds the per-language reference data the matcher
// consumes: surname particles, honorifics, and diminutive equivalence
// classes. The data is read-only after load; rule sets for every language
// are registered here and selected through one registry keyed by language
// tag, so the segmentation algorithm itself stays data-agnostic.
package langrules

import (
	"strings"
	"sync"

	"github.com/sdiehl/human-match/internal/core"
)

// Rules is the segmentation rule set for one language: which tokens attach
// to surnames, which leading tokens are titles, and how apostrophes inside
// surnames are treated.
type Rules struct {
	Language   core.Language
	Particles  map[string]bool
	Honorifics map[string]bool

	// KeepApostrophes preserves apostrophes during surname normalization
	// (O'Connor stays intact in English; d'Arcy collapses in French).
	KeepApostrophes bool
}

// HasParticle reports whether token (lowercased by the caller) is a surname
// particle in this language.
func (r *Rules) HasParticle(token string) bool {
	return r.Particles[token]
}

// HasHonorific reports whether token is an honorific. Lookup is tried with
// and without trailing periods, since titles are written both ways.
func (r *Rules) HasHonorific(token string) bool {
	if r.Honorifics[token] {
		return true
	}
	return r.Honorifics[strings.ReplaceAll(token, ".", "")]
}

// NormalizeSurname strips the language's particles from a surname so that
// "von Mueller" and "Mueller" compare as the same family name. If stripping
// would remove everything, the input is kept.
func (r *Rules) NormalizeSurname(surname string) string {
	normalized := strings.ToLower(surname)
	if !r.KeepApostrophes {
		normalized = strings.ReplaceAll(normalized, "'", "")
		normalized = strings.ReplaceAll(normalized, "’", "")
	}

	words := strings.Fields(normalized)
	filtered := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		// Two-token particles ("de la", "de los") drop as a unit.
		if i+1 < len(words) && r.Particles[words[i]+" "+words[i+1]] {
			i++
			continue
		}
		if r.Particles[words[i]] {
			continue
		}
		filtered = append(filtered, words[i])
	}

	if len(filtered) == 0 {
		return normalized
	}
	return strings.Join(filtered, " ")
}

// commonHonorifics apply across all languages when stripping titles.
var commonHonorifics = set("mr", "mrs", "miss", "ms", "dr", "prof", "professor", "sir", "lady")

// honorificAbbreviations are short title prefixes that legitimately explain
// a large raw-length difference between two records of the same person.
var honorificAbbreviations = set("m", "m.", "mme", "dr", "dr.", "prof", "prof.", "herr", "frau", "mlle")

// IsCommonHonorific reports whether token (periods ignored) is one of the
// cross-language titles.
func IsCommonHonorific(token string) bool {
	return commonHonorifics[strings.ReplaceAll(strings.ToLower(token), ".", "")]
}

// IsHonorificAbbreviation reports whether token is a short title prefix for
// the length-penalty exemption.
func IsHonorificAbbreviation(token string) bool {
	return honorificAbbreviations[strings.ReplaceAll(strings.ToLower(token), ".", "")]
}

var registry = map[core.Language]*Rules{
	core.English:    englishRules,
	core.French:     frenchRules,
	core.German:     germanRules,
	core.Italian:    italianRules,
	core.Spanish:    spanishRules,
	core.Portuguese: portugueseRules,
	core.Arabic:     arabicRules,
	core.Russian:    russianRules,
	core.Mandarin:   mandarinRules,
}

// genericRules apply when no language-specific data exists: no particles,
// no honorifics beyond the common set, apostrophes kept.
var genericRules = &Rules{
	Particles:       map[string]bool{},
	Honorifics:      map[string]bool{},
	KeepApostrophes: true,
}

// ForLanguage returns the rule set for a language. Unknown languages get
// a generic rule set so callers degrade instead of failing.
func ForLanguage(lang core.Language) *Rules {
	if r, ok := registry[lang]; ok {
		return r
	}
	return genericRules
}

var (
	allParticlesOnce sync.Once
	allParticles     map[string]bool
)

// AllParticles returns the union of every language's particle set. Used by
// the honorific-stripping guard, which must not care which language a
// nobiliary particle came from.
func AllParticles() map[string]bool {
	allParticlesOnce.Do(func() {
		allParticles = make(map[string]bool, 64)
		for _, r := range registry {
			for p := range r.Particles {
				allParticles[p] = true
			}
		}
	})
	return allParticles
}

func set(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, item := range items {
		m[item] = true
	}
	return m
}
