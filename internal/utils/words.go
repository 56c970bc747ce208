package utils

import (
	"strings"
	"unicode"
)

// CleanWord trims surrounding whitespace from a typed word.
func CleanWord(s string) string {
	return strings.TrimSpace(s)
}

// IsOnlyLetters reports whether every rune of s is a letter or a combining mark.
func IsOnlyLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// ContainsSpace reports inner whitespace, which becomes a letter slot like any other rune.
func ContainsSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
