// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package langrules

import (
	"testing"

	"github.com/sdiehl/human-match/internal/core"
)

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func TestExpandDiminutivesIncludesInput(t *testing.T) {
	for _, name := range []string{"Robert", "zelda", "  Anne  "} {
		variants := ExpandDiminutives(name, core.English)
		if len(variants) == 0 {
			t.Fatalf("ExpandDiminutives(%q) returned no variants", name)
		}
	}
	if got := ExpandDiminutives("Zelda", core.English); len(got) != 1 || got[0] != "zelda" {
		t.Errorf("unknown name expansion = %v, want [zelda]", got)
	}
}

func TestExpandDiminutivesSymmetric(t *testing.T) {
	tests := []struct {
		lang         core.Language
		name, expect string
	}{
		{core.English, "robert", "bob"},
		{core.English, "bob", "robert"},
		{core.English, "william", "bill"},
		{core.English, "bill", "william"},
		{core.English, "elizabeth", "betty"},
		{core.English, "betty", "elizabeth"},
	}
	for _, tt := range tests {
		variants := ExpandDiminutives(tt.name, tt.lang)
		if !contains(variants, tt.expect) {
			t.Errorf("ExpandDiminutives(%q, %s) = %v, missing %q", tt.name, tt.lang, variants, tt.expect)
		}
	}
}

func TestExpandDiminutivesCaseInsensitive(t *testing.T) {
	upper := ExpandDiminutives("ROBERT", core.English)
	lower := ExpandDiminutives("robert", core.English)
	if len(upper) != len(lower) {
		t.Fatalf("case-sensitive expansion: %v vs %v", upper, lower)
	}
	for i := range upper {
		if upper[i] != lower[i] {
			t.Errorf("variant %d differs: %q vs %q", i, upper[i], lower[i])
		}
	}
}

// A form listed in several equivalence rows maps to the union of all of
// them: "beto" is short for both Roberto and Alberto in Spanish usage.
func TestExpandDiminutivesMergesSharedForms(t *testing.T) {
	variants := ExpandDiminutives("beto", core.Spanish)
	for _, want := range []string{"roberto", "alberto"} {
		if !contains(variants, want) {
			t.Errorf("ExpandDiminutives(beto, es) = %v, missing %q", variants, want)
		}
	}
}

func TestExpandDiminutivesOtherLanguages(t *testing.T) {
	tests := []struct {
		lang         core.Language
		name, expect string
	}{
		{core.Russian, "саша", "александр"},
		{core.French, "alexandre", "alex"},
		{core.German, "wilhelm", "willi"},
	}
	for _, tt := range tests {
		variants := ExpandDiminutives(tt.name, tt.lang)
		if !contains(variants, tt.expect) {
			t.Errorf("ExpandDiminutives(%q, %s) = %v, missing %q", tt.name, tt.lang, variants, tt.expect)
		}
	}
}
