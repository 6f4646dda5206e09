// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package langrules

import (
	"regexp"
	"strings"

	"github.com/sdiehl/human-match/internal/core"
)

var russianRules = &Rules{
	Language: core.Russian,
	Particles: set(
		"де", "ван", "фон", "ла", "ле", "дю",
		"de", "van", "von", "la", "le", "du", "der", "des",
	),
	Honorifics: set(
		"господин", "госпожа", "товарищ", "доктор", "профессор", "академик",
		"генерал", "полковник", "майор", "капитан",
		"князь", "княгиня", "граф", "графиня", "барон", "баронесса",
		"gospodin", "gospozha", "tovarisch", "doktor", "professor", "akademik",
		"general", "polkovnik", "mayor", "kapitan",
		"knyaz", "knyaginya", "graf", "grafinya", "baron", "baronessa",
	),
}

var (
	cyrillicScript      = regexp.MustCompile(`[\x{0400}-\x{04FF}\x{0500}-\x{052F}\x{2DE0}-\x{2DFF}\x{A640}-\x{A69F}]`)
	cyrillicPatronymic  = regexp.MustCompile(`(?i)(ович|евич|ич|овна|евна|ична)$`)
	romanizedPatronymic = regexp.MustCompile(`(?i)(ovich|evich|ich|ovna|evna|ichna)$`)
)

// IsCyrillicText reports whether text contains Cyrillic characters.
func IsCyrillicText(text string) bool {
	return cyrillicScript.MatchString(text)
}

// NormalizeCyrillicText collapses whitespace. Cyrillic has no diacritic
// variants to fold, so this is the whole normalization.
func NormalizeCyrillicText(text string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(text), " ")
}

// IsPatronymic reports whether token carries a Russian patronymic suffix,
// in Cyrillic or romanized form.
func IsPatronymic(token string) bool {
	return cyrillicPatronymic.MatchString(token) || romanizedPatronymic.MatchString(token)
}

// russianRomanizations maps common Russian given names and diminutives to
// their usual Latin transliterations.
var russianRomanizations = map[string]string{
	"александр": "alexander", "алексей": "aleksey", "андрей": "andrey",
	"антон": "anton", "артем": "artem", "борис": "boris",
	"владимир": "vladimir", "дмитрий": "dmitriy", "евгений": "evgeniy",
	"игорь": "igor", "иван": "ivan", "константин": "konstantin",
	"максим": "maksim", "михаил": "mikhail", "николай": "nikolay",
	"олег": "oleg", "павел": "pavel", "петр": "petr",
	"роман": "roman", "сергей": "sergey",
	"анна": "anna", "елена": "elena", "ирина": "irina",
	"мария": "mariya", "наталья": "natalya", "ольга": "olga",
	"светлана": "svetlana", "татьяна": "tatyana", "юлия": "yuliya",
	"екатерина": "ekaterina",
	// Diminutives keep their own transliterations.
	"саша": "sasha", "володя": "volodya", "вова": "vova",
	"дима": "dima", "митя": "mitya", "маша": "masha",
	"катя": "katya", "наташа": "natasha", "серёжа": "seryozha",
	"серёга": "seryoga", "паша": "pasha", "миша": "misha",
	"лена": "lena", "таня": "tanya", "света": "sveta", "юля": "yulya",
}

// RomanizeRussianName replaces every token with a known conventional
// transliteration. Tokens without one are kept, so the result may mix
// scripts; the input comes back unchanged when no token is known.
func RomanizeRussianName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	changed := false
	for i, token := range fields {
		if roman, ok := russianRomanizations[token]; ok {
			fields[i] = roman
			changed = true
		}
	}
	if !changed {
		return name
	}
	return strings.Join(fields, " ")
}
