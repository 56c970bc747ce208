package arrange

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrUnknownMode = errors.New("unknown mode")
	ErrWordCount   = errors.New("wrong number of words")
	ErrEmptyWord   = errors.New("empty word")
	ErrUnknownCase = errors.New("unknown case fold")
	ErrInvalidText = errors.New("word is not valid UTF-8")
)

// Mode selects between combination and permutation enumeration.
type Mode int

const (
	// ModeCombination uses two words and every length from 1 to the longer word.
	ModeCombination Mode = iota + 1
	// ModePermutation uses one word and only its full length.
	ModePermutation
)

// ParseSelector accepts only the exact prompt values "1" and "2".
func ParseSelector(s string) (Mode, error) {
	for _, m := range []Mode{ModeCombination, ModePermutation} {
		if s == m.Selector() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ParseMode accepts a selector or one of the mode names allowed in
// config files and the -m flag.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "combination", "combine":
		return ModeCombination, nil
	case "2", "permutation", "permute":
		return ModePermutation, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	switch m {
	case ModeCombination:
		return "combination"
	case ModePermutation:
		return "permutation"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Selector is the prompt value for the mode.
func (m Mode) Selector() string {
	return fmt.Sprintf("%d", int(m))
}

// CaseFold is the case policy applied to letters before enumeration.
type CaseFold int

const (
	// FoldByMode lower-cases combinations and upper-cases permutations.
	FoldByMode CaseFold = iota
	FoldLower
	FoldUpper
)

// ParseCaseFold reads the `case` config value.
func ParseCaseFold(s string) (CaseFold, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mode":
		return FoldByMode, nil
	case "lower":
		return FoldLower, nil
	case "upper":
		return FoldUpper, nil
	}
	return FoldByMode, fmt.Errorf("%w: %q", ErrUnknownCase, s)
}

func (c CaseFold) String() string {
	switch c {
	case FoldLower:
		return "lower"
	case FoldUpper:
		return "upper"
	}
	return "mode"
}

// runeFolder returns the per-rune mapping for a mode.
// Per-rune mapping keeps the rune count of a word unchanged.
func (c CaseFold) runeFolder(m Mode) func(rune) rune {
	switch c {
	case FoldLower:
		return unicode.ToLower
	case FoldUpper:
		return unicode.ToUpper
	}
	if m == ModePermutation {
		return unicode.ToUpper
	}
	return unicode.ToLower
}
