package arrange

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Multiset is the bag of letters arrangements are drawn from.
// Each index is a distinct slot, so repeated letters stay repeated.
type Multiset []rune

// NewMultiset concatenates the folded runes of every word.
// Bytes that are not valid UTF-8 are dropped.
func NewMultiset(fold func(rune) rune, words ...string) Multiset {
	var letters Multiset
	for _, w := range words {
		for _, r := range normalize(w) {
			if fold != nil {
				r = fold(r)
			}
			letters = append(letters, r)
		}
	}
	return letters
}

// WordLen is the number of letters a word contributes to a multiset.
func WordLen(word string) int {
	return utf8.RuneCountInString(normalize(word))
}

func normalize(w string) string {
	return norm.NFC.String(strings.ToValidUTF8(w, ""))
}

// Sorted returns a sorted copy.
func (m Multiset) Sorted() Multiset {
	sorted := slices.Clone(m)
	slices.Sort(sorted)
	return sorted
}

// String renders the multiset as a list literal, e.g. ['a', 'n'].
func (m Multiset) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, r := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch r {
		case '\'':
			sb.WriteString(`"'"`)
		case '\\':
			sb.WriteString(`'\\'`)
		default:
			sb.WriteByte('\'')
			sb.WriteRune(r)
			sb.WriteByte('\'')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func foldString(s string, fold func(rune) rune) string {
	if fold == nil {
		return normalize(s)
	}
	return strings.Map(fold, normalize(s))
}
