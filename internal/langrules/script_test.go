// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package langrules

import "testing"

func TestIsArabicText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"محمد", true},
		{"محمد بن سلمان", true},
		{"mohammed", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsArabicText(tt.in); got != tt.want {
			t.Errorf("IsArabicText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeArabicTextFoldsVariants(t *testing.T) {
	// All alef forms collapse to the bare alef.
	forms := []string{"أحمد", "احمد", "إحمد", "آحمد"}
	want := NormalizeArabicText(forms[0])
	for _, f := range forms[1:] {
		if got := NormalizeArabicText(f); got != want {
			t.Errorf("NormalizeArabicText(%q) = %q, want %q", f, got, want)
		}
	}
}

func TestRomanizeArabicName(t *testing.T) {
	if got := RomanizeArabicName("محمد"); got == "محمد" {
		t.Error("RomanizeArabicName(محمد) did not romanize a known name")
	}
	if got := RomanizeArabicName("smith"); got != "smith" {
		t.Errorf("RomanizeArabicName(smith) = %q, want unchanged", got)
	}
}

func TestIsCyrillicText(t *testing.T) {
	if !IsCyrillicText("Владимир") {
		t.Error("IsCyrillicText(Владимир) = false, want true")
	}
	if IsCyrillicText("Vladimir") {
		t.Error("IsCyrillicText(Vladimir) = true, want false")
	}
}

func TestIsPatronymic(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"Сергеевич", true},
		{"Петровна", true},
		{"sergeevich", true},
		{"petrovna", true},
		{"Петров", false},
		{"smith", false},
	}
	for _, tt := range tests {
		if got := IsPatronymic(tt.token); got != tt.want {
			t.Errorf("IsPatronymic(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestHanSurnames(t *testing.T) {
	if !IsHanText("王小明") {
		t.Error("IsHanText(王小明) = false, want true")
	}
	if IsHanText("wang xiaoming") {
		t.Error("IsHanText(wang xiaoming) = true, want false")
	}
	if !IsHanSurname('王') {
		t.Error("IsHanSurname(王) = false, want true")
	}
	if !IsRomanizedHanSurname("wang") {
		t.Error("IsRomanizedHanSurname(wang) = false, want true")
	}
	if IsRomanizedHanSurname("smith") {
		t.Error("IsRomanizedHanSurname(smith) = true, want false")
	}
}

func TestFoldHanSurnameVariant(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"wong", "wang"},
		{"lee", "li"},
		{"smith", "smith"},
	}
	for _, tt := range tests {
		if got := FoldHanSurnameVariant(tt.in); got != tt.want {
			t.Errorf("FoldHanSurnameVariant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
