/*
Package report writes enumeration results as a plain-text listing.

A report is a title line, a few header lines describing the source words and
the letters used, a separator, one "N) word" line per arrangement, another
separator and a total line:

	--- Possible Unique Word Combinations/Permutations ---
	Source Word: 'dug'
	Letters Used (Multiset): ['D', 'G', 'U']
	All Permutations Generated at Fixed Length: 3
	--------------------------------------------------
	1) DGU
	...
	6) UGD
	--------------------------------------------------
	Total Unique Results Found: 6

The file is overwritten on every run.
*/
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/wordcombo/pkg/arrange"
	"github.com/charmbracelet/log"
)

// DefaultFile is where reports go unless configured otherwise.
const DefaultFile = "word_combinations.txt"

const separatorWidth = 50

// Style picks the title and total wording of a report.
type Style int

const (
	// StyleModes is used by the tool that offers both modes.
	StyleModes Style = iota
	// StyleCombine is used by the combination-only tool.
	StyleCombine
)

// Report is a fully formatted listing ready to be written.
type Report struct {
	Title      string
	Header     []string
	Results    []string
	TotalLabel string
}

// New builds the report for a finished enumeration.
func New(style Style, req arrange.Request, res arrange.Result) Report {
	r := Report{Results: res.Words}

	switch style {
	case StyleCombine:
		r.Title = "--- Possible Unique Word Combinations ---"
		r.TotalLabel = "Total Unique Combinations Found"
	default:
		r.Title = "--- Possible Unique Word Combinations/Permutations ---"
		r.TotalLabel = "Total Unique Results Found"
	}

	letters := "Letters Used (Multiset): " + res.Letters.Sorted().String()
	if req.Mode == arrange.ModePermutation {
		r.Header = []string{
			fmt.Sprintf("Source Word: '%s'", wordAt(req.Words, 0)),
			letters,
			fmt.Sprintf("All Permutations Generated at Fixed Length: %d", res.Length),
		}
	} else {
		r.Header = []string{
			fmt.Sprintf("Source Words: '%s' and '%s'", wordAt(req.Words, 0), wordAt(req.Words, 1)),
			letters,
			fmt.Sprintf("Combinations Generated up to Length: %d", res.Length),
		}
	}
	if req.Prefix != "" {
		r.Header = append(r.Header, fmt.Sprintf("Filtered by Prefix: '%s'", req.Prefix))
	}
	return r
}

func wordAt(words []string, i int) string {
	if i < len(words) {
		return words[i]
	}
	return ""
}

// Total is the number of listed arrangements.
func (r Report) Total() int {
	return len(r.Results)
}

// WriteTo writes the listing to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	sep := strings.Repeat("-", separatorWidth)

	cw.line(r.Title)
	for _, h := range r.Header {
		cw.line(h)
	}
	cw.line(sep)
	for i, word := range r.Results {
		cw.line(strconv.Itoa(i+1) + ") " + word)
	}
	cw.line(sep)
	cw.line(fmt.Sprintf("%s: %d", r.TotalLabel, r.Total()))

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// WriteFile creates or truncates path and writes the report into it.
func WriteFile(path string, r Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}

	n, err := r.WriteTo(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	log.Debugf("Wrote %d bytes (%d results) to %s", n, r.Total(), path)
	return nil
}

// countingWriter keeps the first error so the listing loop stays flat.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) line(s string) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.WriteString(s + "\n")
	cw.n += int64(n)
	cw.err = err
}
