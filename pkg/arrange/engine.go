package arrange

import (
	"fmt"
	"runtime"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Engine enumerates arrangements. The zero value is ready to use and
// runs serially with the per-mode case policy.
type Engine struct {
	fold     CaseFold
	parallel bool
}

// Option customizes an Engine.
type Option func(*Engine)

// WithCaseFold sets the case policy.
func WithCaseFold(c CaseFold) Option {
	return func(e *Engine) {
		e.fold = c
	}
}

// WithParallel spreads the lengths of a combination over goroutines.
// The output is identical to a serial run.
func WithParallel(parallel bool) Option {
	return func(e *Engine) {
		e.parallel = parallel
	}
}

// NewEngine creates an Engine with options applied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// EnumerateVariable returns every distinct arrangement of 1..max(len(word1), len(word2))
// letters drawn from the lower-cased letters of both words, sorted, along with that max length.
// Both words should be non-empty; callers reject empty input first.
func EnumerateVariable(word1, word2 string) ([]string, int) {
	res := defaultEngine.run(Request{Mode: ModeCombination, Words: []string{word1, word2}})
	return res.Words, res.Length
}

// EnumerateFixed returns every distinct full-length arrangement of the upper-cased
// letters of word, sorted. An empty word gives an empty slice.
func EnumerateFixed(word string) []string {
	return defaultEngine.run(Request{Mode: ModePermutation, Words: []string{word}}).Words
}

// Enumerate validates req and runs it.
func (e *Engine) Enumerate(req Request) (Result, error) {
	if err := Validate(req); err != nil {
		return Result{}, err
	}
	return e.run(req), nil
}

// Validate checks the word count and emptiness rules of a request's mode.
func Validate(req Request) error {
	for i, w := range req.Words {
		if !utf8.ValidString(w) {
			return fmt.Errorf("%w: word %d", ErrInvalidText, i+1)
		}
	}
	switch req.Mode {
	case ModeCombination:
		if len(req.Words) != 2 {
			return fmt.Errorf("%w: combination mode takes 2 words, got %d", ErrWordCount, len(req.Words))
		}
		for i, w := range req.Words {
			if w == "" {
				return fmt.Errorf("%w: word %d", ErrEmptyWord, i+1)
			}
		}
	case ModePermutation:
		if len(req.Words) != 1 {
			return fmt.Errorf("%w: permutation mode takes 1 word, got %d", ErrWordCount, len(req.Words))
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(req.Mode))
	}
	return nil
}

// Lengths returns the smallest and largest arrangement lengths for a request.
func Lengths(req Request) (int, int) {
	if req.Mode == ModePermutation {
		n := 0
		if len(req.Words) > 0 {
			n = WordLen(req.Words[0])
		}
		return n, n
	}
	longest := 0
	for _, w := range req.Words {
		longest = max(longest, WordLen(w))
	}
	return 1, longest
}

// Letters returns the folded multiset a request draws from.
func (e *Engine) Letters(req Request) Multiset {
	return NewMultiset(e.fold.runeFolder(req.Mode), req.Words...)
}

func (e *Engine) run(req Request) Result {
	fold := e.fold.runeFolder(req.Mode)
	letters := e.Letters(req)
	minLen, maxLen := Lengths(req)

	set := newResultSet()
	if e.parallel && maxLen > minLen {
		collectParallel(set, letters, minLen, maxLen)
	} else {
		for k := minLen; k <= maxLen; k++ {
			for word := range Orderings(letters, k) {
				set.add(word)
			}
		}
	}
	log.Debugf("Enumerated %s: letters=%d lengths=%d..%d raw=%d unique=%d",
		req.Mode, len(letters), minLen, maxLen, set.seen, set.size)

	return Result{
		Words:     set.sorted(foldString(req.Prefix, fold)),
		Letters:   letters,
		Length:    maxLen,
		Orderings: set.seen,
	}
}

// collectParallel enumerates each length in its own goroutine and merges
// the per-length sets into set once all are done.
func collectParallel(set *resultSet, letters Multiset, minLen, maxLen int) {
	parts := make([][]string, maxLen-minLen+1)
	seen := make([]int, len(parts))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := minLen; k <= maxLen; k++ {
		i := k - minLen
		g.Go(func() error {
			local := make(map[string]struct{})
			for word := range Orderings(letters, k) {
				local[word] = struct{}{}
				seen[i]++
			}
			words := make([]string, 0, len(local))
			for word := range local {
				words = append(words, word)
			}
			parts[i] = words
			return nil
		})
	}
	// workers never return an error
	_ = g.Wait()

	for i, words := range parts {
		for _, word := range words {
			set.insert(word)
		}
		set.seen += seen[i]
	}
}
