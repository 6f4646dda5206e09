// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package humanmatch scores the confidence that two human names refer to
// the same person, across nine languages and three non-Latin scripts.
//
// The top-level functions cover the common cases:
//
//	result := humanmatch.Match("Dr. Robert Smith", "Bob Smith")
//	if result.Confidence >= 0.85 {
//	    // treat as the same person
//	}
//
// Pass explicit languages with MatchWithLanguages when the caller already
// knows them; otherwise they are detected from the name text. For custom
// calibrations construct a Matcher via NewWithConfig.
package humanmatch

import (
	"github.com/sdiehl/human-match/internal/core"
	"github.com/sdiehl/human-match/internal/detect"
	"github.com/sdiehl/human-match/internal/langrules"
	"github.com/sdiehl/human-match/internal/matcher"
	"github.com/sdiehl/human-match/internal/phonetic"
	"github.com/sdiehl/human-match/internal/segment"
	"github.com/sdiehl/human-match/internal/textdist"
)

// Language identifies one of the supported languages by ISO 639-1 code.
type Language = core.Language

// Supported languages.
const (
	English    = core.English
	French     = core.French
	German     = core.German
	Italian    = core.Italian
	Spanish    = core.Spanish
	Portuguese = core.Portuguese
	Russian    = core.Russian
	Arabic     = core.Arabic
	Mandarin   = core.Mandarin
)

// NameComponents is a name split into its structural parts.
type NameComponents = core.NameComponents

// ComponentScores maps score keys to values in [0,1].
type ComponentScores = core.ComponentScores

// MatchResult is the outcome of a match operation.
type MatchResult = core.MatchResult

// Keys present in MatchResult.Scores.
const (
	ScoreFirstName     = core.ScoreFirstName
	ScoreLastName      = core.ScoreLastName
	ScoreMiddleName    = core.ScoreMiddleName
	ScorePhonetic      = core.ScorePhonetic
	ScoreWholeName     = core.ScoreWholeName
	ScoreLengthPenalty = core.ScoreLengthPenalty
	ScoreComposite     = core.ScoreComposite
)

// Values of MatchResult.Method.
const (
	MethodExact            = core.MethodExact
	MethodHyphenNormalized = core.MethodHyphenNormalized
	MethodAdvanced         = core.MethodAdvanced
)

// Matcher scores name pairs. Safe for concurrent use.
type Matcher = matcher.Matcher

// Config carries the scorer calibration.
type Config = matcher.Config

// New returns a Matcher with the default calibration.
func New() *Matcher { return matcher.New() }

// NewWithConfig returns a Matcher with a custom calibration.
func NewWithConfig(cfg Config) *Matcher { return matcher.NewWithConfig(cfg) }

// DefaultConfig returns the default calibration.
func DefaultConfig() Config { return matcher.DefaultConfig() }

// LoadConfig layers a YAML calibration file over the defaults. A missing
// file yields the defaults without error.
func LoadConfig(path string) (Config, error) { return matcher.LoadConfig(path) }

var (
	defaultMatcher  = matcher.New()
	defaultDetector = detect.NewHeuristic()
)

// Match scores two names with languages detected from the text.
func Match(name1, name2 string) MatchResult {
	return defaultMatcher.Match(name1, name2, "", "")
}

// MatchWithLanguages scores two names with caller-supplied languages.
// Invalid or empty languages are detected from the text.
func MatchWithLanguages(name1, name2 string, lang1, lang2 Language) MatchResult {
	return defaultMatcher.Match(name1, name2, lang1, lang2)
}

// Segment splits a name into components using the rules for lang,
// detecting the language when lang is empty or invalid.
func Segment(name string, lang Language) NameComponents {
	if !lang.Valid() {
		lang = defaultDetector.Detect(name)
	}
	return segment.Segment(name, lang)
}

// DetectLanguage guesses the most likely language of a name, defaulting
// to English when no signal is decisive.
func DetectLanguage(name string) Language {
	return defaultDetector.Detect(name)
}

// DistanceAlgorithm selects the string-similarity algorithm used by
// DistanceWith.
type DistanceAlgorithm = textdist.Algorithm

// Distance algorithms.
const (
	JaroWinkler = textdist.JaroWinkler
	Jaro        = textdist.Jaro
	Levenshtein = textdist.Levenshtein
)

// Distance returns the Jaro-Winkler similarity of two normalized names.
func Distance(name1, name2 string) float64 {
	return textdist.Similarity(name1, name2, textdist.JaroWinkler)
}

// DistanceWith returns the similarity of two normalized names under the
// given algorithm. An unknown algorithm falls back to Jaro-Winkler.
func DistanceWith(name1, name2 string, algorithm DistanceAlgorithm) float64 {
	return textdist.Similarity(name1, name2, algorithm)
}

// PhoneticSimilarity returns the phonetic similarity of two names.
func PhoneticSimilarity(name1, name2 string) float64 {
	return phonetic.Similarity(name1, name2)
}

// PhoneticAlgorithm selects the encoding used by PhoneticKey.
type PhoneticAlgorithm = phonetic.Algorithm

// Phonetic algorithms.
const (
	Metaphone = phonetic.Metaphone
	Soundex   = phonetic.Soundex
	NYSIIS    = phonetic.NYSIIS
)

// PhoneticKey returns the phonetic key of a name under the given algorithm.
// An unknown algorithm yields the cleaned text unencoded.
func PhoneticKey(name string, algorithm PhoneticAlgorithm) string {
	return phonetic.Key(name, algorithm)
}

// ExpandDiminutives returns the known equivalence class of a given name
// in one language, always including the lowercased input itself.
func ExpandDiminutives(name string, lang Language) []string {
	return langrules.ExpandDiminutives(name, lang)
}
