// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package langrules

import (
	"strings"
	"unicode"

	"github.com/sdiehl/human-match/internal/core"
)

var mandarinRules = &Rules{
	Language:  core.Mandarin,
	Particles: set(),
	Honorifics: set(
		"先生", "女士", "小姐", "太太", "夫人", "老师", "教授", "博士",
		"医生", "护士", "工程师", "律师", "经理", "主任", "董事", "总裁",
		"mister", "mr", "mrs", "miss", "ms", "dr", "prof", "professor",
	),
	KeepApostrophes: true,
}

// hanSurnames holds the most common single-character Chinese family names,
// simplified and traditional. Used to resolve the surname boundary in
// 3-character names.
var hanSurnames = runeSet(
	"王李张刘陈杨黄赵周吴徐孙朱马胡郭林何高梁郑罗宋谢唐韩曹许邓萧冯曾程蔡彭潘袁于董余苏叶吕魏蒋田杜丁沈姜范江傅钟卢汪戴崔任陆廖姚方金邱夏谭韦贾邹石熊孟秦阎薛侯雷白龙段郝孔邵史毛常万顾赖武康贺严尹钱施牛洪龚" +
		"張劉陳楊黃趙週吳孫馬鄭羅謝韓許鄧蕭馮蔡潘於餘蘇葉呂魏蔣範鍾盧陸譚韋賈鄒閻龍萬顧賴賀嚴錢龔",
)

// romanizedHanSurnames holds pinyin and Cantonese/HK romanizations of the
// common family names, used to decide token order in romanized names.
var romanizedHanSurnames = set(
	"wang", "li", "zhang", "liu", "chen", "yang", "huang", "zhao", "zhou", "wu",
	"xu", "sun", "zhu", "ma", "hu", "guo", "lin", "he", "gao", "liang",
	"zheng", "luo", "song", "xie", "tang", "han", "cao", "deng", "xiao", "feng",
	"zeng", "cheng", "cai", "peng", "pan", "yuan", "yu", "dong", "su", "ye",
	"lv", "wei", "jiang", "tian", "du", "ding", "shen", "fan", "fu", "zhong",
	"lu", "dai", "cui", "ren", "liao", "yao", "fang", "jin", "qiu", "xia",
	"tan", "jia", "zou", "shi", "xiong", "meng", "qin", "yan", "xue", "hou",
	"lei", "bai", "long", "duan", "hao", "kong", "shao", "mao", "chang", "wan",
	"gu", "lai", "kang", "yin", "qian", "niu", "hong", "gong",
	// Cantonese and other diaspora romanizations.
	"wong", "lee", "lau", "chan", "yeung", "chiu", "chow", "ng", "tsui", "chu",
	"mah", "woo", "kwok", "lam", "ho", "ko", "leung", "law", "sung", "tse",
	"tong", "hon", "tso", "hui", "siu", "fung", "tsang", "ching", "choy",
	"pang", "poon", "yuen", "tung", "so", "yip", "lui", "wai", "cheung", "tin",
	"to", "ting", "sum", "keung", "kong", "foo", "chung", "lou", "toy", "chui",
	"yam", "luk", "yiu", "fong", "kam", "yau", "har", "tam", "kar", "chau",
	"sek", "hung", "mang", "chun", "yim", "sit", "hau", "pak", "lung", "tuen",
	"see", "mou", "sheung", "man", "koo", "loi", "mo", "hor", "chin", "ngau", "kung",
)

// hanSurnameVariants folds alternative romanizations to their pinyin form
// so "Wong" and "Wang" normalize to the same surname.
var hanSurnameVariants = map[string]string{
	"wong": "wang", "lee": "li", "chang": "zhang", "lau": "liu",
	"chan": "chen", "yeung": "yang", "chiu": "zhao", "chow": "zhou",
	"ng": "wu", "tsui": "xu", "soon": "sun", "chu": "zhu",
	"mah": "ma", "woo": "hu", "kwok": "guo", "lam": "lin",
	"ho": "he", "ko": "gao", "leung": "liang", "cheng": "zheng",
	"law": "luo", "sung": "song", "tse": "xie", "tong": "tang",
	"hon": "han", "tso": "cao", "hui": "xu", "tang": "deng", "siu": "xiao",
}

// IsHanChar reports whether r is a CJK ideograph.
func IsHanChar(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// IsHanText reports whether text contains any CJK ideographs.
func IsHanText(text string) bool {
	for _, r := range text {
		if IsHanChar(r) {
			return true
		}
	}
	return false
}

// HanChars returns the ideographs of text in order, dropping everything else.
func HanChars(text string) []rune {
	var chars []rune
	for _, r := range text {
		if IsHanChar(r) {
			chars = append(chars, r)
		}
	}
	return chars
}

// IsHanSurname reports whether r is a known single-character family name.
func IsHanSurname(r rune) bool {
	return hanSurnames[r]
}

// IsRomanizedHanSurname reports whether token is a known romanized family name.
func IsRomanizedHanSurname(token string) bool {
	return romanizedHanSurnames[strings.ToLower(token)]
}

// FoldHanSurnameVariant maps an alternative romanization to its pinyin form;
// unknown tokens come back lowercased but otherwise unchanged.
func FoldHanSurnameVariant(surname string) string {
	lower := strings.ToLower(surname)
	if folded, ok := hanSurnameVariants[lower]; ok {
		return folded
	}
	return lower
}

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool, len(s)/3)
	for _, r := range s {
		m[r] = true
	}
	return m
}
