package arrange

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestEnumerateFixed(t *testing.T) {
	testCases := []struct {
		word        string
		expected    []string
		description string
	}{
		{"DUG", []string{"DGU", "DUG", "GDU", "GUD", "UDG", "UGD"}, "distinct letters"},
		{"AAB", []string{"AAB", "ABA", "BAA"}, "repeated letter collapses"},
		{"dug", []string{"DGU", "DUG", "GDU", "GUD", "UDG", "UGD"}, "lower input is upper-cased"},
		{"aa", []string{"AA"}, "all letters equal"},
		{"x", []string{"X"}, "single letter"},
		{"", []string{}, "empty word"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, EnumerateFixed(tc.word))
		})
	}
}

func TestEnumerateFixedEmptyIsNotNil(t *testing.T) {
	got := EnumerateFixed("")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEnumerateVariable(t *testing.T) {
	words, maxLen := EnumerateVariable("as", "an")

	assert.Equal(t, 2, maxLen)
	assert.Equal(t, []string{"a", "aa", "an", "as", "n", "na", "ns", "s", "sa", "sn"}, words)
	for _, w := range words {
		assert.LessOrEqual(t, len(w), 2, "word %q longer than max length", w)
	}
}

func TestEnumerateVariableLowerCases(t *testing.T) {
	words, maxLen := EnumerateVariable("Ab", "C")

	assert.Equal(t, 2, maxLen)
	for _, w := range words {
		assert.Equal(t, strings.ToLower(w), w)
	}
	assert.Contains(t, words, "ca")
	assert.NotContains(t, words, "abc")
}

// checks the invariants that must hold for any pair of non-empty words
func TestEnumerateVariableProperties(t *testing.T) {
	pairs := [][2]string{
		{"as", "an"},
		{"dog", "cat"},
		{"book", "o"},
		{"Zz", "zZ"},
		{"éa", "b"},
		{"abc", "abcd"},
	}

	for _, p := range pairs {
		t.Run(fmt.Sprintf("%s+%s", p[0], p[1]), func(t *testing.T) {
			words, maxLen := EnumerateVariable(p[0], p[1])
			assert.Equal(t, max(utf8.RuneCountInString(p[0]), utf8.RuneCountInString(p[1])), maxLen)

			letters := counts(strings.ToLower(p[0] + p[1]))
			assert.True(t, slices.IsSorted(words), "output not sorted")
			assert.Len(t, uniq(words), len(words), "output has duplicates")

			for _, w := range words {
				n := utf8.RuneCountInString(w)
				assert.GreaterOrEqual(t, n, 1)
				assert.LessOrEqual(t, n, maxLen)
				for r, c := range counts(w) {
					assert.LessOrEqual(t, c, letters[r], "word %q uses %q too often", w, r)
				}
			}
		})
	}
}

func TestEnumerateIdempotent(t *testing.T) {
	first, firstLen := EnumerateVariable("stop", "tops")
	second, secondLen := EnumerateVariable("stop", "tops")
	assert.Equal(t, first, second)
	assert.Equal(t, firstLen, secondLen)

	assert.Equal(t, EnumerateFixed("LETTER"), EnumerateFixed("LETTER"))
}

func TestParallelMatchesSerial(t *testing.T) {
	serial := NewEngine()
	parallel := NewEngine(WithParallel(true))

	for _, words := range [][]string{{"as", "an"}, {"stop", "pots"}, {"abcd", "e"}} {
		req := Request{Mode: ModeCombination, Words: words}
		want, err := serial.Enumerate(req)
		require.NoError(t, err)
		got, err := parallel.Enumerate(req)
		require.NoError(t, err)

		assert.Equal(t, want.Words, got.Words)
		assert.Equal(t, want.Orderings, got.Orderings)
		assert.Equal(t, want.Length, got.Length)
	}
}

func TestEngineValidate(t *testing.T) {
	testCases := []struct {
		req         Request
		expected    error
		description string
	}{
		{Request{Mode: ModeCombination, Words: []string{"a"}}, ErrWordCount, "combination needs two words"},
		{Request{Mode: ModeCombination, Words: []string{"a", ""}}, ErrEmptyWord, "combination rejects empty word"},
		{Request{Mode: ModePermutation, Words: []string{"a", "b"}}, ErrWordCount, "permutation needs one word"},
		{Request{Mode: Mode(7), Words: []string{"a"}}, ErrUnknownMode, "unknown mode"},
		{Request{Mode: ModePermutation, Words: []string{""}}, nil, "permutation accepts empty word"},
	}

	e := NewEngine()
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := e.Enumerate(tc.req)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestEnginePrefix(t *testing.T) {
	e := NewEngine()
	res, err := e.Enumerate(Request{Mode: ModeCombination, Words: []string{"as", "an"}, Prefix: "A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "aa", "an", "as"}, res.Words)
	assert.Equal(t, 16, res.Orderings)

	res, err = e.Enumerate(Request{Mode: ModePermutation, Words: []string{"dug"}, Prefix: "zz"})
	require.NoError(t, err)
	assert.Empty(t, res.Words)
}

func TestEngineCaseFold(t *testing.T) {
	upper := NewEngine(WithCaseFold(FoldUpper))
	res, err := upper.Enumerate(Request{Mode: ModeCombination, Words: []string{"as", "an"}})
	require.NoError(t, err)
	assert.Contains(t, res.Words, "SA")
	assert.Equal(t, "['A', 'A', 'N', 'S']", res.Letters.Sorted().String())

	lower := NewEngine(WithCaseFold(FoldLower))
	res, err = lower.Enumerate(Request{Mode: ModePermutation, Words: []string{"DUG"}})
	require.NoError(t, err)
	assert.Equal(t, "dgu", res.Words[0])
}

func TestOrderingsCount(t *testing.T) {
	letters := []rune("aabcd")
	for k := 0; k <= len(letters)+1; k++ {
		n := 0
		for range Orderings(letters, k) {
			n++
		}
		want := RawOrderings(len(letters), k, k)
		if k == 0 || k > len(letters) {
			assert.Zero(t, n)
			continue
		}
		assert.Equal(t, want.Int64(), int64(n), "k=%d", k)
	}
}

func TestOrderingsStopsEarly(t *testing.T) {
	n := 0
	for range Orderings([]rune("abcdef"), 3) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestRawOrderings(t *testing.T) {
	testCases := []struct {
		n, kmin, kmax int
		expected      string
	}{
		{4, 1, 2, "16"},
		{3, 3, 3, "6"},
		{0, 0, 0, "0"},
		{5, 1, 9, "325"},
		{20, 20, 20, "2432902008176640000"},
		{25, 25, 25, "15511210043330985984000000"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("n%d_k%d-%d", tc.n, tc.kmin, tc.kmax), func(t *testing.T) {
			assert.Equal(t, tc.expected, RawOrderings(tc.n, tc.kmin, tc.kmax).String())
		})
	}
}

func TestMultisetString(t *testing.T) {
	m := NewMultiset(nil, "as", "an")
	assert.Equal(t, "['a', 's', 'a', 'n']", m.String())
	assert.Equal(t, "['a', 'a', 'n', 's']", m.Sorted().String())
	assert.Equal(t, "['a', 's', 'a', 'n']", m.String(), "Sorted must not mutate")

	assert.Equal(t, `["'", '\\']`, Multiset{'\'', '\\'}.String())
	assert.Equal(t, "[]", Multiset(nil).String())
}

func TestWordLenNormalizes(t *testing.T) {
	// e + combining acute composes to a single letter
	assert.Equal(t, 1, WordLen("e\u0301"))
	assert.Equal(t, []string{"\u00c9"}, EnumerateFixed("e\u0301"))
}

func TestInvalidUTF8(t *testing.T) {
	assert.Equal(t, []string{"A"}, EnumerateFixed("a\xff"))
	assert.Equal(t, 1, WordLen("a\xff"))

	_, err := NewEngine().Enumerate(Request{Mode: ModePermutation, Words: []string{"a\xff"}})
	assert.ErrorIs(t, err, ErrInvalidText)
	_, err = NewEngine().Enumerate(Request{Mode: ModeCombination, Words: []string{"as", "\xffn"}})
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestParseSelector(t *testing.T) {
	m, err := ParseSelector("1")
	require.NoError(t, err)
	assert.Equal(t, ModeCombination, m)
	m, err = ParseSelector("2")
	require.NoError(t, err)
	assert.Equal(t, ModePermutation, m)

	for _, s := range []string{"combine", "Permutation", "COMBINATION", "01", "3", ""} {
		_, err := ParseSelector(s)
		assert.ErrorIs(t, err, ErrUnknownMode, s)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"1", " combination ", "Combine"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, ModeCombination, m)
	}
	m, err := ParseMode("2")
	require.NoError(t, err)
	assert.Equal(t, ModePermutation, m)
	assert.Equal(t, "2", m.Selector())

	_, err = ParseMode("3")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseCaseFold(t *testing.T) {
	c, err := ParseCaseFold("")
	require.NoError(t, err)
	assert.Equal(t, FoldByMode, c)

	c, err = ParseCaseFold("UPPER")
	require.NoError(t, err)
	assert.Equal(t, FoldUpper, c)

	_, err = ParseCaseFold("title")
	assert.ErrorIs(t, err, ErrUnknownCase)
}

func BenchmarkEnumerateVariable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EnumerateVariable("stone", "notes")
	}
}

func BenchmarkEnumerateVariableParallel(b *testing.B) {
	e := NewEngine(WithParallel(true))
	req := Request{Mode: ModeCombination, Words: []string{"stone", "notes"}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Enumerate(req); err != nil {
			b.Fatal(err)
		}
	}
}

func counts(s string) map[rune]int {
	c := make(map[rune]int)
	for _, r := range s {
		c[r]++
	}
	return c
}

func uniq(words []string) map[string]bool {
	u := make(map[string]bool, len(words))
	for _, w := range words {
		u[w] = true
	}
	return u
}
