package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetMode(t *testing.T) {
	testCases := []struct {
		flagMode    string
		flagSet     bool
		configMode  string
		args        []string
		expected    string
		description string
	}{
		{"", false, "", nil, "", "nothing set"},
		{"", false, "2", nil, "2", "config default skips the prompt"},
		{"", false, "2", []string{"1", "as", "an"}, "", "first argument stays the selector"},
		{"1", true, "2", []string{"as", "an"}, "1", "flag wins over config"},
		{"2", true, "", nil, "2", "flag without arguments"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, presetMode(tc.flagMode, tc.flagSet, tc.configMode, tc.args))
		})
	}
}
