package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase normalizes a reference-data name: trims, collapses inner
// whitespace and capitalizes each word ("new  delhi" -> "New Delhi").
// Words starting with a caseless rune (Devanagari names) pass through
// unchanged.
func TitleCase(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + w[size:]
	}
	return strings.Join(words, " ")
}

// NameKey lowercases a name for case-insensitive lookups and unique
// indexes.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SplitNames splits a comma/newline separated bulk input into trimmed,
// non-empty names.
func SplitNames(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
