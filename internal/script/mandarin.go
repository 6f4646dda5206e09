// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"strings"

	"github.com/mozillazg/go-pinyin"

	"github.com/sdiehl/human-match/internal/langrules"
	"github.com/sdiehl/human-match/internal/textdist"
)

// hanComparator handles Chinese names in Han characters or romanized form.
type hanComparator struct{}

func (hanComparator) Similarity(name1, name2 string) float64 {
	han1 := langrules.IsHanText(name1)
	han2 := langrules.IsHanText(name2)

	switch {
	case han1 && han2:
		return hanCharSimilarity(name1, name2)
	case han1 && !han2:
		return textdist.Similarity(toPinyin(name1), strings.ToLower(name2), textdist.JaroWinkler)
	case !han1 && han2:
		return textdist.Similarity(strings.ToLower(name1), toPinyin(name2), textdist.JaroWinkler)
	default:
		norm1 := langrules.FoldHanSurnameVariant(name1)
		norm2 := langrules.FoldHanSurnameVariant(name2)
		return textdist.Similarity(norm1, norm2, textdist.JaroWinkler)
	}
}

// hanCharSimilarity blends character-set Jaccard overlap with sequence
// similarity. Chinese names are short, so set overlap alone over-merges;
// sequence order alone misses swapped character variants.
func hanCharSimilarity(name1, name2 string) float64 {
	if name1 == name2 {
		return 1.0
	}

	chars1 := langrules.HanChars(name1)
	chars2 := langrules.HanChars(name2)
	if len(chars1) == 0 || len(chars2) == 0 {
		return 0.0
	}

	set1 := make(map[rune]struct{}, len(chars1))
	for _, r := range chars1 {
		set1[r] = struct{}{}
	}
	set2 := make(map[rune]struct{}, len(chars2))
	for _, r := range chars2 {
		set2[r] = struct{}{}
	}

	inter := 0
	for r := range set1 {
		if _, ok := set2[r]; ok {
			inter++
		}
	}
	union := len(set1) + len(set2) - inter
	jaccard := 0.0
	if union > 0 {
		jaccard = float64(inter) / float64(union)
	}

	sequence := textdist.Similarity(string(chars1), string(chars2), textdist.JaroWinkler)

	return max(jaccard*0.7+sequence*0.3, sequence)
}

var pinyinArgs = pinyin.NewArgs()

// toPinyin romanizes Han characters, leaving other text unchanged.
func toPinyin(text string) string {
	if !langrules.IsHanText(text) {
		return text
	}
	syllables := pinyin.LazyPinyin(text, pinyinArgs)
	if len(syllables) == 0 {
		return text
	}
	return strings.Join(syllables, "")
}
