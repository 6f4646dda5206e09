// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1.0, cfg.Thresholds.ExactMatchConfidence)
	assert.Equal(t, 0.95, cfg.Thresholds.HyphenNormalizedConfidence)
	assert.Equal(t, 0.35, cfg.Weights.StandardFirst)
	assert.Equal(t, 0.35, cfg.Weights.StandardLast)
	assert.Len(t, cfg.Composite.Boosts, 3)

	standard := cfg.Weights.StandardFirst + cfg.Weights.StandardLast +
		cfg.Weights.StandardMiddle + cfg.Weights.StandardPhonetic
	assert.InDelta(t, 1.0, standard, 1e-9, "standard weights must sum to 1")

	highPhonetic := cfg.Weights.HighPhoneticFirst + cfg.Weights.HighPhoneticLast +
		cfg.Weights.HighPhoneticMiddle + cfg.Weights.HighPhoneticPhonetic
	assert.InDelta(t, 1.0, highPhonetic, 1e-9, "high-phonetic weights must sum to 1")
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	data := []byte("thresholds:\n  hyphen_normalized_confidence: 0.9\nlength_penalty:\n  min_length_difference: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.Thresholds.HyphenNormalizedConfidence)
	assert.Equal(t, 5, cfg.Length.MinLengthDifference)

	// Untouched values keep their defaults.
	assert.Equal(t, 1.0, cfg.Thresholds.ExactMatchConfidence)
	assert.Equal(t, 0.35, cfg.Weights.StandardFirst)
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds: [not a map"), 0o644))

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
