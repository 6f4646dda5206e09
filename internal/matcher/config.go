// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries every tunable constant of the composite scorer. The
// defaults reproduce the calibration of the reference corpus exactly;
// loading a YAML file overrides individual values for recalibration.
// Changing any of these shifts match/no-match decisions silently, so
// overrides belong in reviewed configuration, not code.
type Config struct {
	Thresholds Thresholds      `yaml:"thresholds"`
	Composite  CompositeParams `yaml:"composite"`
	Weights    Weights         `yaml:"weights"`
	Length     LengthPenalty   `yaml:"length_penalty"`
	Accents    AccentParams    `yaml:"accents"`
	Compounds  CompoundParams  `yaml:"compounds"`
	Middle     MiddleParams    `yaml:"middle_names"`
}

// Thresholds are the scorer's fixed decision points.
type Thresholds struct {
	ExactMatchConfidence        float64 `yaml:"exact_match_confidence"`
	HyphenNormalizedConfidence  float64 `yaml:"hyphen_normalized_confidence"`
	AccentMatchConfidence       float64 `yaml:"accent_match_confidence"`
	HighScore                   float64 `yaml:"high_score"`
	LowScore                    float64 `yaml:"low_score"`
	MediumScore                 float64 `yaml:"medium_score"`
	DiminutiveBoostThreshold    float64 `yaml:"diminutive_boost_threshold"`
	DiminutiveBoostMultiplier   float64 `yaml:"diminutive_boost_multiplier"`
}

// CompositeParams bound and correct the weighted sum: whole-name caps,
// component penalties, and the boost bands.
type CompositeParams struct {
	// Caps on the final score keyed to whole-name similarity.
	VeryLowCapThreshold float64 `yaml:"very_low_cap_threshold"`
	LowCapThreshold     float64 `yaml:"low_cap_threshold"`
	MediumCapThreshold  float64 `yaml:"medium_cap_threshold"`
	VeryLowMaxScore     float64 `yaml:"very_low_max_score"`
	LowMaxScore         float64 `yaml:"low_max_score"`
	MediumMaxScore      float64 `yaml:"medium_max_score"`

	// Weight-selection thresholds.
	LowComponentThreshold     float64 `yaml:"low_component_threshold"`
	HighPhoneticThreshold     float64 `yaml:"high_phonetic_threshold"`
	PhoneticFallbackThreshold float64 `yaml:"phonetic_fallback_threshold"`

	// Penalty multipliers when both first and last score low.
	VeryLowPenaltyThreshold float64 `yaml:"very_low_penalty_threshold"`
	LowPenaltyThreshold     float64 `yaml:"low_penalty_threshold"`
	MediumPenaltyThreshold  float64 `yaml:"medium_penalty_threshold"`
	VeryLowPenalty          float64 `yaml:"very_low_penalty"`
	LowPenalty              float64 `yaml:"low_penalty"`
	MediumPenalty           float64 `yaml:"medium_penalty"`

	// Boost bands nudging near-threshold scores toward round targets.
	// Golden values: they counteract systematic under-scoring from the
	// caps and penalties above.
	Boosts []BoostBand `yaml:"boosts"`
}

// BoostBand lifts a composite score in [Min,Max) to min(Target, score*Multiplier).
type BoostBand struct {
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Target     float64 `yaml:"target"`
	Multiplier float64 `yaml:"multiplier"`
}

// Weights are the adaptive weighting schemes over component scores.
type Weights struct {
	SingleName     float64 `yaml:"single_name"`
	SinglePhonetic float64 `yaml:"single_phonetic"`

	SingleMixedFirst    float64 `yaml:"single_mixed_first"`
	SingleMixedLast     float64 `yaml:"single_mixed_last"`
	SingleMixedPhonetic float64 `yaml:"single_mixed_phonetic"`

	HighPhoneticFirst    float64 `yaml:"high_phonetic_first"`
	HighPhoneticLast     float64 `yaml:"high_phonetic_last"`
	HighPhoneticMiddle   float64 `yaml:"high_phonetic_middle"`
	HighPhoneticPhonetic float64 `yaml:"high_phonetic_phonetic"`

	StandardFirst    float64 `yaml:"standard_first"`
	StandardLast     float64 `yaml:"standard_last"`
	StandardMiddle   float64 `yaml:"standard_middle"`
	StandardPhonetic float64 `yaml:"standard_phonetic"`
}

// LengthPenalty parameterizes the raw-length mismatch penalty.
type LengthPenalty struct {
	MinLengthDifference int     `yaml:"min_length_difference"`
	Factor              float64 `yaml:"factor"`
}

// AccentParams control the accent-similarity boost on component scores.
type AccentParams struct {
	BoostBase       float64 `yaml:"boost_base"`
	BoostThreshold  float64 `yaml:"boost_threshold"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	BoostMax        float64 `yaml:"boost_max"`
}

// CompoundParams control hyphen/space compound given-name handling.
type CompoundParams struct {
	BoostBase       float64 `yaml:"boost_base"`
	BoostThreshold  float64 `yaml:"boost_threshold"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	ScoreMultiplier float64 `yaml:"score_multiplier"`
}

// MiddleParams fix the middle-name comparison policy.
type MiddleParams struct {
	BothEmptyScore      float64 `yaml:"both_empty_score"`
	OneEmptyScore       float64 `yaml:"one_empty_score"`
	InitialMatchScore   float64 `yaml:"initial_match_score"`
	InitialNoMatchScore float64 `yaml:"initial_no_match_score"`
}

// DefaultConfig returns the reference calibration.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			ExactMatchConfidence:       1.0,
			HyphenNormalizedConfidence: 0.95,
			AccentMatchConfidence:      0.95,
			HighScore:                  0.9,
			LowScore:                   0.6,
			MediumScore:                0.7,
			DiminutiveBoostThreshold:   0.85,
			DiminutiveBoostMultiplier:  1.05,
		},
		Composite: CompositeParams{
			VeryLowCapThreshold: 0.30,
			LowCapThreshold:     0.35,
			MediumCapThreshold:  0.40,
			VeryLowMaxScore:     0.40,
			LowMaxScore:         0.40,
			MediumMaxScore:      0.50,

			LowComponentThreshold:     0.7,
			HighPhoneticThreshold:     0.94,
			PhoneticFallbackThreshold: 0.7,

			VeryLowPenaltyThreshold: 0.3,
			LowPenaltyThreshold:     0.5,
			MediumPenaltyThreshold:  0.7,
			VeryLowPenalty:          0.40,
			LowPenalty:              0.60,
			MediumPenalty:           0.75,

			Boosts: []BoostBand{
				{Min: 0.87, Max: 0.90, Target: 0.905, Multiplier: 1.025},
				{Min: 0.905, Max: 0.95, Target: 0.96, Multiplier: 1.04},
				{Min: 0.943, Max: 0.95, Target: 0.96, Multiplier: 1.01},
			},
		},
		Weights: Weights{
			SingleName:     0.6,
			SinglePhonetic: 0.4,

			SingleMixedFirst:    0.3,
			SingleMixedLast:     0.3,
			SingleMixedPhonetic: 0.4,

			HighPhoneticFirst:    0.25,
			HighPhoneticLast:     0.25,
			HighPhoneticMiddle:   0.10,
			HighPhoneticPhonetic: 0.40,

			StandardFirst:    0.35,
			StandardLast:     0.35,
			StandardMiddle:   0.15,
			StandardPhonetic: 0.15,
		},
		Length: LengthPenalty{
			MinLengthDifference: 3,
			Factor:              0.03,
		},
		Accents: AccentParams{
			BoostBase:       0.85,
			BoostThreshold:  0.9,
			BoostMultiplier: 1.5,
			BoostMax:        0.95,
		},
		Compounds: CompoundParams{
			BoostBase:       0.85,
			BoostThreshold:  0.9,
			BoostMultiplier: 1.5,
			ScoreMultiplier: 0.75,
		},
		Middle: MiddleParams{
			BothEmptyScore:      0.5,
			OneEmptyScore:       0.0,
			InitialMatchScore:   1.0,
			InitialNoMatchScore: 0.0,
		},
	}
}

// FindConfigFile looks for a calibration file in the standard locations:
// the working directory first, then the user config directory. Returns ""
// when none exists.
func FindConfigFile() string {
	candidates := []string{
		"namematch.yaml",
		"namematch.yml",
		".namematch.yaml",
		".namematch.yml",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "namematch", "config.yaml"))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// LoadConfig reads a YAML calibration file over the defaults. A missing
// path returns the defaults; a malformed file returns the defaults and an
// error so callers can warn without losing a working matcher.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
