// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segment

import (
	"testing"

	"github.com/sdiehl/human-match/internal/core"
)

func TestSegmentWestern(t *testing.T) {
	tests := []struct {
		name                string
		input               string
		lang                core.Language
		first, middle, last string
	}{
		{"two tokens", "John Smith", core.English, "John", "", "Smith"},
		{"three tokens", "John Michael Smith", core.English, "John", "Michael", "Smith"},
		{"four tokens", "John Michael Andrew Smith", core.English, "John", "Michael Andrew", "Smith"},
		{"single token", "Madonna", core.English, "Madonna", "", ""},
		{"german particle", "Hans von Mueller", core.German, "Hans", "", "von Mueller"},
		{"stacked particles", "Ludwig van der Berg", core.German, "Ludwig", "", "van der Berg"},
		{"spanish particle", "Maria de la Cruz", core.Spanish, "Maria", "", "de la Cruz"},
		{"portuguese particle", "Paulo dos Santos", core.Portuguese, "Paulo", "", "dos Santos"},
		{"particle after middle", "Ana Lucia de Souza", core.Portuguese, "Ana", "Lucia", "de Souza"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.input, tt.lang)
			if got.First != tt.first || got.Middle != tt.middle || got.Last != tt.last {
				t.Errorf("Segment(%q, %s) = first=%q middle=%q last=%q, want first=%q middle=%q last=%q",
					tt.input, tt.lang, got.First, got.Middle, got.Last, tt.first, tt.middle, tt.last)
			}
			if got.Original != tt.input {
				t.Errorf("Original = %q, want %q", got.Original, tt.input)
			}
			if got.Language != tt.lang {
				t.Errorf("Language = %s, want %s", got.Language, tt.lang)
			}
		})
	}
}

func TestSegmentHonorifics(t *testing.T) {
	got := Segment("Dr. John Smith", core.English)
	if got.First != "John" || got.Last != "Smith" {
		t.Errorf("Segment(Dr. John Smith) = first=%q last=%q, want John/Smith", got.First, got.Last)
	}

	// A title fused with a particle survives stripping; it lands in the
	// prefix and the particle chain stays one surname.
	got = Segment("Don de la Vega", core.Spanish)
	if got.Prefix != "Don" || got.First != "" || got.Last != "de la Vega" {
		t.Errorf("Segment(Don de la Vega) = prefix=%q first=%q last=%q, want Don / \"\" / de la Vega",
			got.Prefix, got.First, got.Last)
	}
}

func TestSegmentSuffix(t *testing.T) {
	got := Segment("Mr. John Smith Jr.", core.English)
	if got.First != "John" || got.Last != "Smith" {
		t.Errorf("first=%q last=%q, want John/Smith", got.First, got.Last)
	}
	if got.Suffix != "Jr." {
		t.Errorf("Suffix = %q, want Jr.", got.Suffix)
	}
}

func TestSegmentRussianPatronymic(t *testing.T) {
	got := Segment("Иван Сергеевич Петров", core.Russian)
	if got.First != "Иван" || got.Middle != "Сергеевич" || got.Last != "Петров" {
		t.Errorf("got first=%q middle=%q last=%q", got.First, got.Middle, got.Last)
	}

	// Two tokens ending in a patronymic carry no surname at all.
	got = Segment("Иван Сергеевич", core.Russian)
	if got.First != "Иван" || got.Middle != "Сергеевич" || got.Last != "" {
		t.Errorf("got first=%q middle=%q last=%q, want patronymic as middle", got.First, got.Middle, got.Last)
	}

	got = Segment("Ivan Sergeevich Petrov", core.Russian)
	if got.Middle != "Sergeevich" || got.Last != "Petrov" {
		t.Errorf("romanized patronymic: got middle=%q last=%q", got.Middle, got.Last)
	}
}

func TestSegmentHan(t *testing.T) {
	tests := []struct {
		input       string
		first, last string
	}{
		{"王小明", "小明", "王"},
		{"李雷", "雷", "李"},
		{"王", "王", ""},
		{"司馬相如", "相如", "司馬"},
	}
	for _, tt := range tests {
		got := Segment(tt.input, core.Mandarin)
		if got.First != tt.first || got.Last != tt.last {
			t.Errorf("Segment(%q) = first=%q last=%q, want first=%q last=%q",
				tt.input, got.First, got.Last, tt.first, tt.last)
		}
	}
}

func TestSegmentRomanizedHan(t *testing.T) {
	tests := []struct {
		input       string
		first, last string
	}{
		{"Wang Xiaoming", "Xiaoming", "Wang"},
		{"Xiaoming Wang", "Xiaoming", "Wang"},
		{"Li Mei Lin", "Mei Lin", "Li"},
	}
	for _, tt := range tests {
		got := Segment(tt.input, core.Mandarin)
		if got.First != tt.first || got.Last != tt.last {
			t.Errorf("Segment(%q) = first=%q last=%q, want first=%q last=%q",
				tt.input, got.First, got.Last, tt.first, tt.last)
		}
	}
}

func TestSegmentArabicParticle(t *testing.T) {
	got := Segment("محمد بن سلمان", core.Arabic)
	if got.First != "محمد" || got.Last != "بن سلمان" {
		t.Errorf("got first=%q last=%q", got.First, got.Last)
	}
}

func TestSegmentEmpty(t *testing.T) {
	got := Segment("   ", core.English)
	if got.First != "" || got.Middle != "" || got.Last != "" {
		t.Errorf("blank input produced components: %+v", got)
	}
}
