// Package listfield 將有序字串清單（technologies、features、responsibilities 等）
// 以 JSON 陣列存入單一文字欄位。
//
// Decode(Encode(s)) == s 對所有合法 UTF-8 字串成立；非法的 UTF-8 位元組
// 會在 Encode 時被 encoding/json 換成 U+FFFD。HTTP JSON 輸入本身已是合法 UTF-8。
package listfield

import (
	"encoding/json"
	"strings"
)

// Encode 將 items 轉為 JSON 陣列，nil 轉為 "[]"
func Encode(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		// []string 一定能 marshal
		return "[]"
	}
	return string(b)
}

// Decode 解析 Encode 的輸出。空字串、null、格式錯誤或含非字串元素（包含 null）
// 一律回傳空清單，不回報錯誤。
func Decode(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	var raw []*string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == nil {
			return []string{}
		}
		out = append(out, *s)
	}
	return out
}
