package kana_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TrainLCD/StationAPI/internal/pkg/kana"
)

func TestHiraganaToKatakana(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hiragana", "しんじゅく", "シンジュク"},
		{"already katakana", "シンジュク", "シンジュク"},
		{"mixed", "しながわシーサイド", "シナガワシーサイド"},
		{"kanji untouched", "新宿", "新宿"},
		{"ascii untouched", "Shinjuku 01", "Shinjuku 01"},
		{"small kana", "きょうと", "キョウト"},
		{"vu", "ゔ", "ヴ"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kana.HiraganaToKatakana(tt.input))
		})
	}
}

func TestHiraganaToKatakana_NoWidthFolding(t *testing.T) {
	// Half-width katakana stays as-is; only the hiragana block is mapped.
	assert.Equal(t, "ｼﾝｼﾞｭｸ", kana.HiraganaToKatakana("ｼﾝｼﾞｭｸ"))
}
