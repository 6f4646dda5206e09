// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

// Language identifies one of the supported name languages. The set is
// closed: per-language rule tables, detectors, and script comparators are
// all keyed by these values.
type Language string

const (
	English    Language = "en"
	French     Language = "fr"
	German     Language = "de"
	Italian    Language = "it"
	Spanish    Language = "es"
	Portuguese Language = "pt"
	Arabic     Language = "ar"
	Russian    Language = "ru"
	Mandarin   Language = "zh"
)

// Languages lists every supported language. Cross-language diminutive
// fan-out iterates exactly this set.
var Languages = []Language{
	English, French, German, Italian, Spanish,
	Portuguese, Arabic, Russian, Mandarin,
}

// Valid reports whether l is one of the supported language tags.
func (l Language) Valid() bool {
	switch l {
	case English, French, German, Italian, Spanish, Portuguese, Arabic, Russian, Mandarin:
		return true
	}
	return false
}

// NameComponents is the structured form of a personal name. An empty string
// is a meaningful value (component absent), not "unset". Values are never
// mutated after segmentation.
type NameComponents struct {
	First    string   `json:"first"`
	Middle   string   `json:"middle"`
	Last     string   `json:"last"`
	Prefix   string   `json:"prefix"`
	Suffix   string   `json:"suffix"`
	Original string   `json:"original"`
	Language Language `json:"language"`
}

// Component score keys as they appear in MatchResult.Scores.
const (
	ScoreFirstName     = "first_name"
	ScoreLastName      = "last_name"
	ScoreMiddleName    = "middle_name"
	ScorePhonetic      = "phonetic"
	ScoreWholeName     = "whole_name"
	ScoreLengthPenalty = "length_penalty"
	ScoreComposite     = "composite"
)

// Match method tags.
const (
	MethodExact            = "exact_match"
	MethodHyphenNormalized = "hyphen_normalized_match"
	MethodAdvanced         = "advanced_multilingual"
)

// ComponentScores maps score keys to values in [0,1]. Built fresh per match
// call, never cached or shared.
type ComponentScores map[string]float64

// MatchResult is the terminal value of a match operation. Confidence always
// equals the final post-adjustment composite score.
type MatchResult struct {
	Confidence float64         `json:"confidence"`
	Name1      NameComponents  `json:"name1"`
	Name2      NameComponents  `json:"name2"`
	Scores     ComponentScores `json:"scores"`
	Method     string          `json:"method"`
}
