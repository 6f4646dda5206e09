// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import "testing"

func TestLanguageValid(t *testing.T) {
	for _, lang := range Languages {
		if !lang.Valid() {
			t.Errorf("Language(%q).Valid() = false, want true", lang)
		}
	}
	for _, lang := range []Language{"", "xx", "EN", "english"} {
		if lang.Valid() {
			t.Errorf("Language(%q).Valid() = true, want false", lang)
		}
	}
}
