// Package cli collects words from the user, runs the enumeration and writes the report.
package cli

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordcombo/internal/utils"
	"github.com/bastiangx/wordcombo/pkg/arrange"
	"github.com/bastiangx/wordcombo/pkg/report"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// ErrUsage marks input the session refuses: a missing word or a bad mode selector.
var ErrUsage = errors.New("usage error")

// Variant selects which tool the session behaves as.
type Variant int

const (
	// VariantModes asks for a mode first, then one or two words.
	VariantModes Variant = iota
	// VariantCombine only does two-word combinations.
	VariantCombine
)

// Options configures a Session.
type Options struct {
	Variant       Variant
	Mode          string // preselected mode from -m or config, skips the mode prompt
	Prefix        string
	OutputFile    string
	WarnOrderings int // warn above this many raw orderings, 0 disables
}

// Summary describes a written report.
type Summary struct {
	Mode  arrange.Mode
	Count int
	Path  string
}

// Session runs a single prompt-enumerate-write cycle.
type Session struct {
	in     LineReader
	out    *log.Logger
	engine arrange.Enumerator
	opts   Options
}

// NewSession creates a session. out receives everything the user should see.
func NewSession(in LineReader, out *log.Logger, engine arrange.Enumerator, opts Options) *Session {
	if opts.OutputFile == "" {
		opts.OutputFile = report.DefaultFile
	}
	return &Session{
		in:     in,
		out:    out,
		engine: engine,
		opts:   opts,
	}
}

// Run prompts for input, enumerates and writes the report.
// A failed report write is shown to the user and yields a nil Summary and a nil error.
func (s *Session) Run() (*Summary, error) {
	s.out.Print("--- Word Combination Generator ---")

	mode := arrange.ModeCombination
	if s.opts.Variant == VariantModes {
		var err error
		if mode, err = s.selectMode(); err != nil {
			return nil, err
		}
	}

	req, err := s.readWords(mode)
	if err != nil {
		return nil, err
	}
	req.Prefix = s.opts.Prefix
	s.warnIfHuge(req)

	res, err := s.engine.Enumerate(req)
	if err != nil {
		s.out.Printf("Error: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	style := report.StyleModes
	noun := "results"
	if s.opts.Variant == VariantCombine {
		style = report.StyleCombine
		noun = "combinations"
	}

	path := s.opts.OutputFile
	if err := report.WriteFile(path, report.New(style, req, res)); err != nil {
		s.out.Printf("Error: Could not write to file '%s'. Details: %v", path, err)
		return nil, nil
	}

	s.out.Print("")
	s.out.Printf("Successfully generated %d unique %s.", len(res.Words), noun)
	s.out.Printf("Results saved to '%s'", utils.AbsPath(path))

	return &Summary{Mode: mode, Count: len(res.Words), Path: path}, nil
}

func (s *Session) selectMode() (arrange.Mode, error) {
	if s.opts.Mode != "" {
		mode, err := arrange.ParseMode(s.opts.Mode)
		if err != nil {
			s.out.Print("Invalid mode selected. Exiting.")
			return 0, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return mode, nil
	}

	s.out.Print("Select Mode:")
	s.out.Print("1: Combination Mode (2 words, variable length up to max length)")
	s.out.Print("2: Permutation Mode (1 word, fixed length)")
	s.out.Print(strings.Repeat("-", 50))

	selector, err := s.ask("Enter mode (1 or 2): ")
	if err != nil {
		return 0, err
	}

	mode, err := arrange.ParseSelector(selector)
	if err != nil {
		s.out.Print("Invalid mode selected. Exiting.")
		return 0, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return mode, nil
}

func (s *Session) readWords(mode arrange.Mode) (arrange.Request, error) {
	req := arrange.Request{Mode: mode}

	if mode == arrange.ModePermutation {
		s.out.Print("")
		s.out.Print("--- Permutation Mode Selected ---")
		word, err := s.askWord("Enter Single Word: ")
		if err != nil {
			return req, err
		}
		if word == "" {
			s.out.Print("Error: A word must be provided in Permutation Mode.")
			return req, fmt.Errorf("%w: missing word", ErrUsage)
		}
		req.Words = []string{word}
		return req, nil
	}

	if s.opts.Variant == VariantModes {
		s.out.Print("")
		s.out.Print("--- Combination Mode Selected ---")
	}
	word1, err := s.askWord("Enter Word 1: ")
	if err != nil {
		return req, err
	}
	word2, err := s.askWord("Enter Word 2: ")
	if err != nil {
		return req, err
	}
	if word1 == "" || word2 == "" {
		if s.opts.Variant == VariantCombine {
			s.out.Print("Error: Both words must be provided to generate combinations.")
		} else {
			s.out.Print("Error: Both words must be provided in Combination Mode.")
		}
		return req, fmt.Errorf("%w: missing word", ErrUsage)
	}
	req.Words = []string{word1, word2}
	return req, nil
}

// ask reads one cleaned answer. No answer at all counts as an empty one.
func (s *Session) ask(prompt string) (string, error) {
	answer, err := s.in.Prompt(prompt)
	if errors.Is(err, io.EOF) {
		log.Debugf("No answer for %q", prompt)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return utils.CleanWord(answer), nil
}

// askWord is ask for a word that will be split into letters.
func (s *Session) askWord(prompt string) (string, error) {
	word, err := s.ask(prompt)
	if err != nil || word == "" || utils.IsOnlyLetters(word) {
		return word, err
	}
	switch {
	case !utf8.ValidString(word):
		log.Warnf("%q is not valid UTF-8", word)
	case utils.ContainsSpace(word):
		log.Warnf("%q has inner whitespace, each space is arranged like a letter", word)
	case utils.ContainsNumbers(word):
		log.Warnf("%q has digits, they are arranged like letters", word)
	default:
		log.Warnf("%q has non-letter characters, they are arranged like letters", word)
	}
	return word, err
}

func (s *Session) warnIfHuge(req arrange.Request) {
	if s.opts.WarnOrderings <= 0 {
		return
	}
	letters := 0
	for _, w := range req.Words {
		letters += arrange.WordLen(w)
	}
	minLen, maxLen := arrange.Lengths(req)
	raw := arrange.RawOrderings(letters, minLen, maxLen)
	if raw.Cmp(big.NewInt(int64(s.opts.WarnOrderings))) > 0 {
		log.Warnf("About to visit %s orderings of %d letters, this can take a long time",
			humanize.BigComma(raw), letters)
	}
}
