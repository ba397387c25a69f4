// Package prompt implements the interactive search variant: it asks for a
// target and the bounds of an integer range, builds the range, and reports
// where binary search found the target and how many steps it took.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/searchbench/internal/search"
)

// Prompts shown for each value, in the order they are asked.
const (
	TargetPrompt = "Give a target number: "
	LowPrompt    = "Give a lower number: "
	HighPrompt   = "Give a higher number: "
)

// ErrParse is returned when an answer is not an integer. It is not retried.
var ErrParse = errors.New("invalid integer")

// ErrRangeTooLarge is returned when low..high holds more than MaxRangeLen values.
var ErrRangeTooLarge = errors.New("range too large")

// MaxRangeLen is the largest range that is materialized for a search.
const MaxRangeLen = 100_000_000

// LineReader reads one answer (for testing)
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// Params are the inputs of one interactive search.
type Params struct {
	Target int
	Low    int
	High   int
}

// Normalize swaps the bounds when Low > High.
func (p Params) Normalize() Params {
	if p.Low > p.High {
		p.Low, p.High = p.High, p.Low
	}
	return p
}

// Validate reports ErrRangeTooLarge when the range cannot be built.
func (p Params) Validate() error {
	p = p.Normalize()
	// uint64 subtraction is exact for any ordered pair of ints
	if span := uint64(p.High) - uint64(p.Low); span >= MaxRangeLen {
		return fmt.Errorf("%w: [%d, %d] exceeds %d values", ErrRangeTooLarge, p.Low, p.High, MaxRangeLen)
	}
	return nil
}

// Session asks questions on out and reads answers from in.
type Session struct {
	in  LineReader
	out io.Writer
}

// NewSession wraps r in a buffered reader.
func NewSession(r io.Reader, out io.Writer) *Session {
	return NewSessionWithReader(bufio.NewReader(r), out)
}

// NewSessionWithReader allows injection of a reader for testing.
func NewSessionWithReader(in LineReader, out io.Writer) *Session {
	return &Session{in: in, out: out}
}

// ReadInt prints prompt and parses the next line as an integer.
func (s *Session) ReadInt(prompt string) (int, error) {
	fmt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("failed to read answer: %w", err)
	}

	answer := strings.TrimSpace(line)
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrParse, answer, err)
	}
	return n, nil
}

// Collect fills in the values not supplied by the caller, prompting for each
// nil pointer in target, low, high order. The result is normalized.
func (s *Session) Collect(target, low, high *int) (Params, error) {
	var p Params
	var err error

	fields := []struct {
		given  *int
		dest   *int
		prompt string
	}{
		{target, &p.Target, TargetPrompt},
		{low, &p.Low, LowPrompt},
		{high, &p.High, HighPrompt},
	}

	for _, f := range fields {
		if f.given != nil {
			*f.dest = *f.given
			continue
		}
		if *f.dest, err = s.ReadInt(f.prompt); err != nil {
			return Params{}, err
		}
	}

	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Search runs binary search for p.Target over p.Low..p.High.
func Search(p Params) (search.Result, error) {
	if err := p.Validate(); err != nil {
		return search.Result{}, err
	}
	p = p.Normalize()
	return search.Binary(search.Range(p.Low, p.High), p.Target), nil
}

// Describe formats the outcome of Search as a sentence.
func Describe(p Params, res search.Result) string {
	p = p.Normalize()
	if res.Found() {
		return fmt.Sprintf("Target %d found at index %d in %d step(s).", p.Target, res.Index, res.Steps)
	}
	return fmt.Sprintf("Target %d not found in range [%d, %d] after %d step(s).", p.Target, p.Low, p.High, res.Steps)
}

// Run collects any missing parameters, searches, and prints the outcome.
func (s *Session) Run(target, low, high *int) (search.Result, error) {
	p, err := s.Collect(target, low, high)
	if err != nil {
		return search.Result{}, err
	}

	res, err := Search(p)
	if err != nil {
		return search.Result{}, err
	}
	fmt.Fprintln(s.out, Describe(p, res))
	return res, nil
}
