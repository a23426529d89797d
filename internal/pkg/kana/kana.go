// Package kana normalises Japanese kana for station name search.
package kana

import "strings"

// HiraganaToKatakana maps every hiragana rune in U+3041..U+3096 to its
// katakana counterpart (offset +0x60). No width folding, no accent folding,
// no case folding: the normalised form is matched against the katakana name
// column only, the raw input against every other localised column.
func HiraganaToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ぁ' && r <= 'ゖ' {
			return r + 0x60
		}
		return r
	}, s)
}
