// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package detect guesses the language of a personal name from orthographic
// signals. Each language's signal set is one value behind the Detector
// interface; the core matcher only consumes the interface, so detection
// heuristics can be swapped without touching scoring.
package detect

import (
	"regexp"
	"strings"

	"github.com/sdiehl/human-match/internal/core"
)

// Detector maps a raw name string to its most likely language.
type Detector interface {
	Detect(name string) core.Language
}

// signals is one language's detection evidence. Script presence alone is
// decisive; strong patterns are near-decisive; weak patterns only count in
// aggregate.
type signals struct {
	language core.Language
	script   *regexp.Regexp
	strong   []*regexp.Regexp
	weak     []*regexp.Regexp
}

func (s *signals) decisive(name string) bool {
	if s.script != nil && s.script.MatchString(name) {
		return true
	}
	for _, re := range s.strong {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

func (s *signals) weakScore(name string) int {
	score := 0
	for _, re := range s.weak {
		if re.MatchString(name) {
			score++
		}
	}
	return score
}

type heuristicDetector struct {
	ordered []*signals
}

// NewHeuristic returns the default rule-based detector. The evaluation
// order matters: script-bearing languages are unambiguous and go first;
// English is the last-resort default since most names work under its rules.
func NewHeuristic() Detector {
	return &heuristicDetector{ordered: []*signals{
		mandarinSignals, arabicSignals, russianSignals,
		germanSignals, portugueseSignals, frenchSignals,
		italianSignals, spanishSignals, englishSignals,
	}}
}

func (d *heuristicDetector) Detect(name string) core.Language {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return core.English
	}

	for _, s := range d.ordered {
		if s.decisive(lower) {
			return s.language
		}
	}

	best := core.English
	bestScore := 0
	for _, s := range d.ordered {
		if score := s.weakScore(lower); score > bestScore {
			best = s.language
			bestScore = score
		}
	}
	if bestScore >= 2 {
		return best
	}
	return core.English
}

var mandarinSignals = &signals{
	language: core.Mandarin,
	script:   regexp.MustCompile(`[\x{4e00}-\x{9fff}\x{3400}-\x{4dbf}]`),
	weak: []*regexp.Regexp{
		regexp.MustCompile(`\b(wang|zhang|liu|chen|huang|zhao|zhou|xu|sun|zhu|guo|gao|liang|zheng|luo|xie|deng|xiao|zeng|cai|peng|yuan|xiong|qiu)\b`),
		regexp.MustCompile(`\b(wong|cheung|leung|kwok|tsang|chiu|yeung|lam|siu|fung)\b`),
	},
}

var arabicSignals = &signals{
	language: core.Arabic,
	script:   regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}]`),
	strong: []*regexp.Regexp{
		regexp.MustCompile(`\b(muhammad|mohamed|mohammed|mohammad|ahmad|ahmed|abdullah|abdallah|yusuf|yousef|ibrahim|hussein|khalid|khaled|mahmoud|fatima|aisha|khadija|zainab|layla|yasmin)\b`),
	},
	weak: []*regexp.Regexp{
		regexp.MustCompile(`\b(al|el|ibn|bin|bint|abu|um|abd)\b`),
		regexp.MustCompile(`(allah|rahman|aziz|malik|hassan|hussein)$`),
	},
}

var russianSignals = &signals{
	language: core.Russian,
	script:   regexp.MustCompile(`[\x{0400}-\x{04FF}\x{0500}-\x{052F}\x{2DE0}-\x{2DFF}\x{A640}-\x{A69F}]`),
	strong: []*regexp.Regexp{
		regexp.MustCompile(`(ovich|evich|ovna|evna|ichna)\b`),
		regexp.MustCompile(`\b(ivanov|petrov|smirnov|kuznetsov|popov|sokolov|lebedev|kozlov|novikov|morozov|volkov|vasiliev|pavlov|semenov|fedorov|mikhailov|ivanova|petrova|smirnova|kuznetsova|popova)\b`),
	},
	weak: []*regexp.Regexp{
		regexp.MustCompile(`\b(aleksandr|aleksey|andrey|dmitriy|evgeniy|konstantin|maksim|mikhail|nikolay|sergey|svetlana|tatyana|yuliya|ekaterina|natasha|katya|sasha|misha|dima)\b`),
		regexp.MustCompile(`(ov|ev|in|sky|skiy|skaya|ova|eva|ina)$`),
	},
}

var germanSignals = &signals{
	language: core.German,
	strong: []*regexp.Regexp{
		regexp.MustCompile(`[ßäöü]`),
	},
	weak: []*regexp.Regexp{
		regexp.MustCompile(`\b(von|zu|zur|vom|zum)\b`),
		regexp.MustCompile(`(bach|berg|burg|feld|hausen|heim|mann|stein)$`),
		regexp.MustCompile(`\b(hans|friedrich|wolfgang|günther|heinrich|klaus|ludwig|kurt|otto|fritz|dieter|jürgen|helmut)\b`),
	},
}

var portugueseSignals = &signals{
	language: core.Portuguese,
	strong: []*regexp.Regexp{
		regexp.MustCompile(`[ãõ]`),
		regexp.MustCompile(`\b(dos|são|joão|gonçalo|conceição)\b`),
	},
	weak: []*regexp.Regexp{
		regexp.MustCompile(`\b(silva|santos|ferreira|pereira|oliveira|rodrigues|fernandes|gonçalves|almeida|ribeiro|carvalho|teixeira|sousa)\b`),
		regexp.MustCompile(`(ção|inho|inha|ões)$`),
	},
}

var frenchSignals = &signals{
	language: core.French,
	strong: []*regexp.Regexp{
		regexp.MustCompile(`[çèêùûîôëïÿ]`),
	},
	weak: []*regexp.Regexp{
		regexp.MustCompile(`\b(du|des|le|la|les|d')\b`),
		regexp.MustCompile(`\b(jean|pierre|françois|michel|jacques|philippe|olivier|laurent|thierry|sébastien|antoine|stéphane|julien|françoise|monique|isabelle|brigitte|véronique|nathalie|hélène)\b`),
		regexp.MustCompile(`(eau|eux|ieux)$`),
	},
}

var italianSignals = &signals{
	language: core.Italian,
	strong: []*regexp.Regexp{
		regexp.MustCompile(`\b(rossi|russo|ferrari|esposito|bianchi|romano|colombo|ricci|marino|greco|giordano|mancini|lombardi|moretti|barbieri|fontana|santoro|rinaldi|caruso)\b`),
	},
	weak: []*regexp.Regexp{
		regexp.MustCompile(`\b(di|del|della|dei|delle|dello|degli|dal|dalla)\b`),
		regexp.MustCompile(`\b(giuseppe|giovanni|francesco|alessandro|lorenzo|matteo|paolo|stefano|vincenzo|pietro|salvatore|francesca|giulia|chiara|valentina)\b`),
		regexp.MustCompile(`(elli|etti|ini|ucci|uzzi|etto|etta)$`),
	},
}

var spanishSignals = &signals{
	language: core.Spanish,
	strong: []*regexp.Regexp{
		regexp.MustCompile(`[ñ]`),
		regexp.MustCompile(`\b(garcía|rodríguez|gonzález|fernández|lópez|martínez|sánchez|pérez|gómez|jiménez|hernández|díaz|álvarez|muñoz|gutiérrez|ramírez)\b`),
	},
	weak: []*regexp.Regexp{
		regexp.MustCompile(`[áéíóú]`),
		regexp.MustCompile(`\b(josé|maría|francisco|juan|manuel|jesús|alejandro|fernando|carmen|dolores|pilar|guadalupe)\b`),
		regexp.MustCompile(`(ez)$`),
	},
}

var englishSignals = &signals{
	language: core.English,
	weak: []*regexp.Regexp{
		regexp.MustCompile(`\b(john|robert|william|james|michael|david|richard|thomas|christopher|daniel|matthew|mary|patricia|jennifer|linda|elizabeth|barbara|susan|jessica|sarah)\b`),
		regexp.MustCompile(`\b(smith|johnson|williams|brown|jones|miller|davis|wilson|anderson|taylor|moore|jackson|martin|thompson|white|harris|clark|lewis|robinson|walker)\b`),
	},
}
