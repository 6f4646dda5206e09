// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package langrules

import "github.com/sdiehl/human-match/internal/core"

// Rule sets for the Latin-script languages. Particles are the function
// words that attach to surnames; honorifics are stripped from the front of
// a name before segmentation.

var englishRules = &Rules{
	Language:  core.English,
	Particles: set("mc", "mac", "o'", "of", "the"),
	Honorifics: set(
		"mr", "mr.", "mrs", "mrs.", "miss", "ms", "ms.",
		"dr", "dr.", "prof", "prof.", "professor",
		"sir", "lady", "lord", "dame", "rev", "reverend",
		"captain", "colonel", "major", "general",
	),
	// Apostrophes are integral to English surnames (O'Brien).
	KeepApostrophes: true,
}

var frenchRules = &Rules{
	Language:  core.French,
	Particles: set("de", "du", "des", "le", "la", "les", "d'", "di", "da", "del", "della"),
	Honorifics: set(
		"m", "m.", "monsieur", "mme", "madame", "mlle", "mademoiselle",
		"dr", "docteur", "prof", "professeur",
		"général", "colonel", "major", "capitaine",
	),
}

var germanRules = &Rules{
	Language:  core.German,
	Particles: set("von", "zu", "zur", "der", "van", "de", "am", "im", "vom", "zum", "und"),
	Honorifics: set(
		"herr", "frau", "fräulein", "dr", "prof", "professor",
		"general", "oberst", "major", "hauptmann",
	),
}

var italianRules = &Rules{
	Language: core.Italian,
	Particles: set(
		"di", "da", "del", "della", "dei", "delle", "dello", "degli",
		"de", "d'", "dal", "dalla", "dallo", "dalle",
		"san", "santa", "santo",
	),
	Honorifics: set(
		"signore", "signora", "signorina", "sig", "sig.",
		"dott", "dott.", "dottore", "dottoressa",
		"prof", "prof.", "professore", "professoressa",
		"ingegnere", "ing", "ing.", "avvocato", "avv", "avv.",
		"don", "donna", "conte", "contessa", "barone", "baronessa",
		"marchese", "marchesa", "duca", "duchessa",
	),
}

var spanishRules = &Rules{
	Language: core.Spanish,
	Particles: set(
		"de", "del", "de la", "de las", "de los", "y", "e",
		"san", "santa", "santo", "da", "das", "dos", "do",
	),
	Honorifics: set(
		"señor", "señora", "señorita", "sr", "sr.", "sra", "sra.", "srta", "srta.",
		"don", "doña", "doctor", "doctora", "dr", "dr.", "dra", "dra.",
		"profesor", "profesora", "prof", "prof.",
		"ingeniero", "ingeniera", "ing", "ing.",
		"licenciado", "licenciada", "lic", "lic.",
		"arquitecto", "arquitecta", "arq", "arq.",
		"conde", "condesa", "duque", "duquesa",
		"marqués", "marquesa", "barón", "baronesa",
	),
}

var portugueseRules = &Rules{
	Language: core.Portuguese,
	Particles: set(
		"da", "das", "de", "del", "do", "dos", "e", "y",
		"san", "santa", "santo", "são",
	),
	Honorifics: set(
		"sr", "sra", "srta", "dr", "dra",
		"prof", "professor", "professora",
		"eng", "engenheiro", "engenheira",
		"arq", "arquiteto", "arquiteta",
		"adv", "advogado", "advogada",
		"dom", "dona", "frei", "padre", "irmã", "irmão",
		"general", "coronel", "major", "capitão", "tenente", "sargento",
	),
	// Some Portuguese names carry apostrophes (Sant'Ana).
	KeepApostrophes: true,
}
