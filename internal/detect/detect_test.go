// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detect

import (
	"testing"

	"github.com/sdiehl/human-match/internal/core"
)

func TestDetectScript(t *testing.T) {
	d := NewHeuristic()
	tests := []struct {
		name string
		want core.Language
	}{
		{"王小明", core.Mandarin},
		{"محمد بن سلمان", core.Arabic},
		{"Иван Петров", core.Russian},
	}
	for _, tt := range tests {
		if got := d.Detect(tt.name); got != tt.want {
			t.Errorf("Detect(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestDetectStrongSignals(t *testing.T) {
	d := NewHeuristic()
	tests := []struct {
		name string
		want core.Language
	}{
		{"Hans Müller", core.German},
		{"João dos Santos", core.Portuguese},
		{"Ivan Sergeevich Petrov", core.Russian},
		{"Mohammed Al-Rashid", core.Arabic},
		{"María García", core.Spanish},
		{"Marco Rossi", core.Italian},
		{"François Dubois", core.French},
	}
	for _, tt := range tests {
		if got := d.Detect(tt.name); got != tt.want {
			t.Errorf("Detect(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestDetectWeakSignalsNeedTwo(t *testing.T) {
	d := NewHeuristic()

	// Two weak German signals: particle plus surname suffix.
	if got := d.Detect("Hans von Bergmann"); got != core.German {
		t.Errorf("Detect(Hans von Bergmann) = %s, want de", got)
	}

	// One weak signal alone is not enough; falls back to English.
	if got := d.Detect("Unknown Berg"); got != core.English {
		t.Errorf("Detect(Unknown Berg) = %s, want en", got)
	}
}

func TestDetectDefaultsToEnglish(t *testing.T) {
	d := NewHeuristic()
	for _, name := range []string{"", "   ", "Zzyzx Qwerty", "John Smith"} {
		if got := d.Detect(name); got != core.English {
			t.Errorf("Detect(%q) = %s, want en", name, got)
		}
	}
}
