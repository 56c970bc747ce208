package cli

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// LineReader answers prompts. io.EOF means the user gave no answer.
type LineReader interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// ReadlineReader reads answers from the terminal.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader opens a line editor on stdin without a history file.
func NewReadlineReader() (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineReader{rl: rl}, nil
}

// Prompt shows prompt and reads one line. Ctrl-C and Ctrl-D both end
// the answer as io.EOF.
func (r *ReadlineReader) Prompt(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// StaticReader answers prompts from a fixed list, e.g. command line arguments.
type StaticReader struct {
	answers []string
	next    int
}

// NewStaticReader creates a reader that returns answers in order, then io.EOF.
func NewStaticReader(answers ...string) *StaticReader {
	return &StaticReader{answers: answers}
}

func (s *StaticReader) Prompt(string) (string, error) {
	if s.next >= len(s.answers) {
		return "", io.EOF
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

func (s *StaticReader) Close() error {
	return nil
}
