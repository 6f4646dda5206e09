// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package langrules

import (
	"bufio"
	"bytes"
	"embed"
	"strings"
	"sync"

	"github.com/sdiehl/human-match/internal/core"
)

// Embedded diminutive tables, one file per language tag. Each line is one
// equivalence class of mutually interchangeable given-name forms.
//
//go:embed data/diminutives
var diminutivesFS embed.FS

var (
	diminutivesOnce sync.Once
	diminutiveTable map[core.Language]map[string][]string
)

// loadDiminutives parses every language's table once. Classes are
// pre-merged per token: when a form appears in several lines, its variant
// set is the union of all of them, so a lookup is a single read rather
// than a traversal. Missing or empty files yield empty tables.
func loadDiminutives() {
	diminutiveTable = make(map[core.Language]map[string][]string, len(core.Languages))
	for _, lang := range core.Languages {
		diminutiveTable[lang] = parseDiminutiveFile(lang)
	}
}

func parseDiminutiveFile(lang core.Language) map[string][]string {
	table := make(map[string][]string)

	data, err := diminutivesFS.ReadFile("data/diminutives/" + string(lang))
	if err != nil {
		return table
	}

	merged := make(map[string]map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.Contains(line, ",") {
			continue
		}

		parts := strings.Split(line, ",")
		forms := make([]string, 0, len(parts))
		for _, p := range parts {
			if form := strings.ToLower(strings.TrimSpace(p)); form != "" {
				forms = append(forms, form)
			}
		}
		if len(forms) < 2 {
			continue
		}

		// Every co-listed form is equivalent in both directions.
		for _, form := range forms {
			variants, ok := merged[form]
			if !ok {
				variants = make(map[string]struct{})
				merged[form] = variants
			}
			for _, other := range forms {
				if other != form {
					variants[other] = struct{}{}
				}
			}
		}
	}

	for form, variants := range merged {
		list := make([]string, 0, len(variants))
		for v := range variants {
			list = append(list, v)
		}
		table[form] = list
	}
	return table
}

// ExpandDiminutives returns the equivalence class of a given name in one
// language, always including the (lowercased) input itself.
func ExpandDiminutives(name string, lang core.Language) []string {
	diminutivesOnce.Do(loadDiminutives)

	lower := strings.ToLower(strings.TrimSpace(name))
	table := diminutiveTable[lang]
	if table == nil {
		return []string{lower}
	}

	variants, ok := table[lower]
	if !ok {
		return []string{lower}
	}
	out := make([]string, 0, len(variants)+1)
	out = append(out, lower)
	out = append(out, variants...)
	return out
}
