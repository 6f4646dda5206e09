// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher scores the likelihood that two person names refer to the
// same individual. It segments both names, compares components with
// language-aware comparators, folds in phonetic and whole-name evidence,
// and combines everything under an adaptively weighted, capped, penalized
// and boosted composite. All numeric behavior comes from Config; the
// defaults are a calibrated contract.
package matcher

import (
	"math"
	"strings"

	"github.com/sdiehl/human-match/internal/core"
	"github.com/sdiehl/human-match/internal/detect"
	"github.com/sdiehl/human-match/internal/langrules"
	"github.com/sdiehl/human-match/internal/phonetic"
	"github.com/sdiehl/human-match/internal/script"
	"github.com/sdiehl/human-match/internal/segment"
	"github.com/sdiehl/human-match/internal/textdist"
)

// Matcher is safe for concurrent use. All state is immutable after
// construction; every Match call builds its own result.
type Matcher struct {
	config   Config
	detector detect.Detector
}

// New returns a Matcher with the default calibration.
func New() *Matcher {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Matcher using the given calibration.
func NewWithConfig(cfg Config) *Matcher {
	return &Matcher{
		config:   cfg,
		detector: detect.NewHeuristic(),
	}
}

// Match scores two names. Pass an empty or invalid Language to have it
// detected from the name text. Confidence is always in [0,1].
func (m *Matcher) Match(name1, name2 string, lang1, lang2 core.Language) core.MatchResult {
	n1 := strings.TrimSpace(name1)
	n2 := strings.TrimSpace(name2)

	if !lang1.Valid() {
		lang1 = m.detector.Detect(n1)
	}
	if !lang2.Valid() {
		lang2 = m.detector.Detect(n2)
	}

	if n1 == "" || n2 == "" {
		return core.MatchResult{
			Name1:  segment.Segment(n1, lang1),
			Name2:  segment.Segment(n2, lang2),
			Scores: zeroScores(),
			Method: core.MethodAdvanced,
		}
	}

	lower1 := strings.ToLower(n1)
	lower2 := strings.ToLower(n2)

	if lower1 == lower2 {
		return core.MatchResult{
			Confidence: m.config.Thresholds.ExactMatchConfidence,
			Name1:      segment.Segment(n1, lang1),
			Name2:      segment.Segment(n2, lang2),
			Scores:     uniformScores(m.config.Thresholds.ExactMatchConfidence),
			Method:     core.MethodExact,
		}
	}

	if hyphenFold(lower1) == hyphenFold(lower2) {
		conf := m.config.Thresholds.HyphenNormalizedConfidence
		scores := uniformScores(conf)
		scores[core.ScoreLengthPenalty] = 1.0
		return core.MatchResult{
			Confidence: conf,
			Name1:      segment.Segment(n1, lang1),
			Name2:      segment.Segment(n2, lang2),
			Scores:     scores,
			Method:     core.MethodHyphenNormalized,
		}
	}

	c1 := segment.Segment(n1, lang1)
	c2 := segment.Segment(n2, lang2)

	// Whole-name and phonetic evidence compare first+last only, so that
	// middle names and prefix remnants cannot depress either signal. The
	// length penalty keeps looking at the raw strings.
	full1 := strings.ToLower(strings.TrimSpace(c1.First + " " + c1.Last))
	full2 := strings.ToLower(strings.TrimSpace(c2.First + " " + c2.Last))

	scores := core.ComponentScores{
		core.ScoreFirstName:     m.compareGivenNames(c1.First, c2.First, lang1, lang2),
		core.ScoreLastName:      m.compareSurnames(c1.Last, c2.Last, lang1, lang2),
		core.ScoreMiddleName:    m.compareMiddleNames(c1.Middle, c2.Middle),
		core.ScorePhonetic:      phonetic.Similarity(full1, full2),
		core.ScoreWholeName:     m.wholeNameSimilarity(full1, full2, lang1, lang2),
		core.ScoreLengthPenalty: m.lengthPenalty(lower1, lower2),
	}

	confidence := m.composite(scores, c1, c2)
	scores[core.ScoreComposite] = confidence

	return core.MatchResult{
		Confidence: confidence,
		Name1:      c1,
		Name2:      c2,
		Scores:     scores,
		Method:     core.MethodAdvanced,
	}
}

// hyphenFold makes "Jean-Pierre" and "Jean Pierre" compare equal.
func hyphenFold(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), " ")
}

func uniformScores(v float64) core.ComponentScores {
	return core.ComponentScores{
		core.ScoreFirstName:     v,
		core.ScoreLastName:      v,
		core.ScoreMiddleName:    v,
		core.ScorePhonetic:      v,
		core.ScoreWholeName:     v,
		core.ScoreLengthPenalty: 1.0,
		core.ScoreComposite:     v,
	}
}

func zeroScores() core.ComponentScores {
	s := uniformScores(0)
	s[core.ScoreLengthPenalty] = 1.0
	return s
}

// compareGivenNames scores first names with diminutive, accent and
// compound awareness. A strong direct score short-circuits the expansions.
func (m *Matcher) compareGivenNames(first1, first2 string, lang1, lang2 core.Language) float64 {
	f1 := strings.ToLower(strings.TrimSpace(first1))
	f2 := strings.ToLower(strings.TrimSpace(first2))
	if f1 == "" || f2 == "" {
		return 0.0
	}
	if f1 == f2 {
		return 1.0
	}

	direct := m.componentSimilarity(f1, f2, lang1, lang2)
	if direct > m.config.Thresholds.HighScore {
		return clamp(direct)
	}

	direct = m.applyAccentEvidence(direct, f1, f2)

	best := direct
	if s := m.compoundScore(f1, f2, lang1, lang2); s > best {
		best = s
	}
	if s := m.diminutiveScore(f1, f2, lang1, lang2, direct); s > best {
		best = s
	}
	return clamp(best)
}

// compareSurnames normalizes particles per language before scoring.
// Romanized Chinese surnames fold regional spellings first so that
// Wong/Wang or Lee/Li compare as the same family name.
func (m *Matcher) compareSurnames(last1, last2 string, lang1, lang2 core.Language) float64 {
	l1 := strings.ToLower(strings.TrimSpace(last1))
	l2 := strings.ToLower(strings.TrimSpace(last2))
	if l1 == "" || l2 == "" {
		return 0.0
	}
	if l1 == l2 {
		return 1.0
	}

	if lang1 == core.Mandarin || lang2 == core.Mandarin {
		l1 = langrules.FoldHanSurnameVariant(l1)
		l2 = langrules.FoldHanSurnameVariant(l2)
		if l1 == l2 {
			return 1.0
		}
	}

	n1 := langrules.ForLanguage(lang1).NormalizeSurname(l1)
	n2 := langrules.ForLanguage(lang2).NormalizeSurname(l2)
	if n1 == n2 {
		return 1.0
	}

	direct := m.componentSimilarity(n1, n2, lang1, lang2)
	direct = m.applyAccentEvidence(direct, n1, n2)
	return clamp(direct)
}

// compareMiddleNames treats absence as weak neutral evidence and an
// initial as matching any full name sharing its letter.
func (m *Matcher) compareMiddleNames(middle1, middle2 string) float64 {
	mid1 := strings.ToLower(strings.TrimSpace(middle1))
	mid2 := strings.ToLower(strings.TrimSpace(middle2))

	switch {
	case mid1 == "" && mid2 == "":
		return m.config.Middle.BothEmptyScore
	case mid1 == "" || mid2 == "":
		return m.config.Middle.OneEmptyScore
	case mid1 == mid2:
		return 1.0
	}

	if isInitial(mid1) || isInitial(mid2) {
		if mid1[0] == mid2[0] {
			return m.config.Middle.InitialMatchScore
		}
		return m.config.Middle.InitialNoMatchScore
	}

	return textdist.Similarity(mid1, mid2, textdist.JaroWinkler)
}

func isInitial(s string) bool {
	return len(s) == 1 || (len(s) == 2 && s[1] == '.')
}

// componentSimilarity routes to a script-specific comparator when either
// language has one, falling back to Jaro-Winkler. A comparator panic on
// unexpected input degrades to the statistical fallback rather than
// failing the match.
func (m *Matcher) componentSimilarity(s1, s2 string, lang1, lang2 core.Language) float64 {
	if cmp, ok := script.ForLanguages(lang1, lang2); ok {
		return safeSimilarity(cmp, s1, s2)
	}
	return textdist.Similarity(s1, s2, textdist.JaroWinkler)
}

func (m *Matcher) wholeNameSimilarity(name1, name2 string, lang1, lang2 core.Language) float64 {
	if cmp, ok := script.ForLanguages(lang1, lang2); ok {
		return safeSimilarity(cmp, name1, name2)
	}
	return textdist.StatisticalSimilarity(name1, name2)
}

func safeSimilarity(cmp script.Comparator, s1, s2 string) (score float64) {
	defer func() {
		if recover() != nil {
			score = textdist.StatisticalSimilarity(s1, s2)
		}
	}()
	return cmp.Similarity(s1, s2)
}

// applyAccentEvidence lifts a score when the names differ only in
// diacritics or German umlaut spelling, or when their unaccented forms
// score far better than the accented ones.
func (m *Matcher) applyAccentEvidence(score float64, s1, s2 string) float64 {
	bare1 := strings.ToLower(textdist.StripDiacritics(s1))
	bare2 := strings.ToLower(textdist.StripDiacritics(s2))
	german1 := textdist.ExpandGermanUmlauts(s1)
	german2 := textdist.ExpandGermanUmlauts(s2)

	if bare1 == bare2 || german1 == german2 || german1 == bare2 || bare1 == german2 {
		if m.config.Thresholds.AccentMatchConfidence > score {
			score = m.config.Thresholds.AccentMatchConfidence
		}
		return score
	}

	bareScore := textdist.Similarity(bare1, bare2, textdist.JaroWinkler)
	if g := textdist.Similarity(german1, german2, textdist.JaroWinkler); g > bareScore {
		bareScore = g
	}
	if bareScore > m.config.Accents.BoostThreshold {
		boosted := m.config.Accents.BoostBase +
			(bareScore-m.config.Accents.BoostThreshold)*m.config.Accents.BoostMultiplier
		if boosted > m.config.Accents.BoostMax {
			boosted = m.config.Accents.BoostMax
		}
		if boosted > score {
			score = boosted
		}
	}
	return score
}

// compoundScore handles hyphenated and spaced given names by scoring the
// best-matching part pair. A strong part match earns a scaled boost; a
// weak one is discounted, since sharing only a fragment is thin evidence.
func (m *Matcher) compoundScore(f1, f2 string, lang1, lang2 core.Language) float64 {
	parts1 := splitCompound(f1)
	parts2 := splitCompound(f2)
	if len(parts1) < 2 && len(parts2) < 2 {
		return 0.0
	}

	best := 0.0
	for _, p1 := range parts1 {
		for _, p2 := range parts2 {
			if s := m.componentSimilarity(p1, p2, lang1, lang2); s > best {
				best = s
			}
		}
	}

	if best > m.config.Compounds.BoostThreshold {
		boosted := m.config.Compounds.BoostBase +
			(best-m.config.Compounds.BoostThreshold)*m.config.Compounds.BoostMultiplier
		return math.Min(1.0, boosted)
	}
	return best * m.config.Compounds.ScoreMultiplier
}

func splitCompound(name string) []string {
	return strings.Fields(strings.ReplaceAll(name, "-", " "))
}

// diminutiveScore compares the diminutive equivalence classes of both
// names. When the languages differ the expansion fans out across every
// supported language, so Aleksandr/Sasha still meets Alexander/Sandy. A
// strong variant match that beats the direct score earns a boost:
// diminutive identity is stronger evidence than string proximity alone.
func (m *Matcher) diminutiveScore(f1, f2 string, lang1, lang2 core.Language, direct float64) float64 {
	variants1 := m.expandVariants(f1, lang1, lang2)
	variants2 := m.expandVariants(f2, lang1, lang2)

	best := 0.0
	for _, v1 := range variants1 {
		for _, v2 := range variants2 {
			if v1 == v2 {
				return 1.0
			}
			if s := textdist.Similarity(v1, v2, textdist.JaroWinkler); s > best {
				best = s
			}
		}
	}

	if best > m.config.Thresholds.DiminutiveBoostThreshold && best > direct {
		return math.Min(1.0, best*m.config.Thresholds.DiminutiveBoostMultiplier)
	}
	return best
}

func (m *Matcher) expandVariants(name string, lang1, lang2 core.Language) []string {
	if lang1 == lang2 {
		return langrules.ExpandDiminutives(name, lang1)
	}
	seen := make(map[string]bool)
	var out []string
	for _, lang := range core.Languages {
		for _, v := range langrules.ExpandDiminutives(name, lang) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// lengthPenalty discounts pairs whose raw lengths differ too much to be
// spelling variants. Abbreviated honorifics are exempt because the
// abbreviation itself accounts for the length gap.
func (m *Matcher) lengthPenalty(name1, name2 string) float64 {
	len1 := len([]rune(name1))
	len2 := len([]rune(name2))
	diff := len1 - len2
	if diff < 0 {
		diff = -diff
	}
	if diff <= m.config.Length.MinLengthDifference {
		return 1.0
	}
	if startsWithHonorificAbbreviation(name1) || startsWithHonorificAbbreviation(name2) {
		return 1.0
	}
	maxLen := len1
	if len2 > maxLen {
		maxLen = len2
	}
	return 1.0 - (float64(diff)/float64(maxLen))*m.config.Length.Factor
}

func startsWithHonorificAbbreviation(name string) bool {
	fields := strings.Fields(name)
	return len(fields) > 0 && langrules.IsHonorificAbbreviation(fields[0])
}

// composite folds the component scores into the final confidence:
// whole-name caps, adaptive weights, low-component penalties, the length
// penalty, then the near-threshold boost bands.
func (m *Matcher) composite(scores core.ComponentScores, c1, c2 core.NameComponents) float64 {
	first := scores[core.ScoreFirstName]
	last := scores[core.ScoreLastName]
	middle := scores[core.ScoreMiddleName]
	phoneticScore := scores[core.ScorePhonetic]
	whole := scores[core.ScoreWholeName]

	cp := m.config.Composite
	w := m.config.Weights

	ceiling := 1.0
	switch {
	case whole < cp.VeryLowCapThreshold && first < m.config.Thresholds.LowScore && last < m.config.Thresholds.LowScore:
		ceiling = cp.VeryLowMaxScore
	case whole < cp.LowCapThreshold:
		ceiling = cp.LowMaxScore
	case whole < cp.MediumCapThreshold && (first < cp.LowComponentThreshold || last < cp.LowComponentThreshold):
		ceiling = cp.MediumMaxScore
	}

	hasFirst1 := strings.TrimSpace(c1.First) != ""
	hasLast1 := strings.TrimSpace(c1.Last) != ""
	hasFirst2 := strings.TrimSpace(c2.First) != ""
	hasLast2 := strings.TrimSpace(c2.Last) != ""

	var score float64
	switch {
	case hasFirst1 != hasLast1 || hasFirst2 != hasLast2:
		// At least one side is a single name. Weight whichever component
		// both sides actually carry; mixed mononyms split the difference.
		switch {
		case hasFirst1 && hasFirst2:
			score = first*w.SingleName + phoneticScore*w.SinglePhonetic
		case hasLast1 && hasLast2:
			score = last*w.SingleName + phoneticScore*w.SinglePhonetic
		default:
			score = first*w.SingleMixedFirst + last*w.SingleMixedLast +
				phoneticScore*w.SingleMixedPhonetic
		}
	case phoneticScore > cp.HighPhoneticThreshold ||
		(first < cp.LowComponentThreshold && last < cp.LowComponentThreshold &&
			phoneticScore > cp.PhoneticFallbackThreshold):
		score = first*w.HighPhoneticFirst + last*w.HighPhoneticLast +
			middle*w.HighPhoneticMiddle + phoneticScore*w.HighPhoneticPhonetic
	default:
		score = first*w.StandardFirst + last*w.StandardLast +
			middle*w.StandardMiddle + phoneticScore*w.StandardPhonetic
	}

	if score > ceiling {
		score = ceiling
	}

	switch {
	case first < cp.VeryLowPenaltyThreshold && last < cp.VeryLowPenaltyThreshold:
		score *= cp.VeryLowPenalty
	case first < cp.LowPenaltyThreshold && last < cp.LowPenaltyThreshold:
		score *= cp.LowPenalty
	case first < cp.MediumPenaltyThreshold && last < cp.MediumPenaltyThreshold:
		score *= cp.MediumPenalty
	}

	score *= scores[core.ScoreLengthPenalty]

	// Bands are evaluated in order against the pre-boost score; a later
	// band overrides an earlier one when their ranges overlap.
	boosted := score
	for _, b := range cp.Boosts {
		if score >= b.Min && score < b.Max {
			boosted = math.Min(b.Target, score*b.Multiplier)
		}
	}

	return clamp(boosted)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
