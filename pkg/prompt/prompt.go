// Package prompt reads and validates interactive answers line by line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when input ends before a valid answer is read.
var ErrNoInput = errors.New("prompt: input closed before a valid answer")

// Prompter writes questions to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Question describes one prompt-until-valid interaction. Message is shown
// first; Retry is shown after every rejected answer. An answer is accepted
// when Parse succeeds and Valid (if set) returns true.
type Question[T any] struct {
	Message string
	Retry   string
	Parse   func(string) (T, error)
	Valid   func(T) bool
}

// Ask loops until q accepts an answer.
func Ask[T any](p *Prompter, q Question[T]) (T, error) {
	var zero T
	message := q.Message
	for {
		if err := p.println(message); err != nil {
			return zero, err
		}
		line, err := p.readLine()
		if err != nil {
			return zero, err
		}
		v, err := q.Parse(line)
		if err == nil && (q.Valid == nil || q.Valid(v)) {
			return v, nil
		}
		if q.Retry != "" {
			message = q.Retry
		}
	}
}

// Line prints message and returns the next line unvalidated.
func (p *Prompter) Line(message string) (string, error) {
	if err := p.println(message); err != nil {
		return "", err
	}
	return p.readLine()
}

// Confirm prints message and reports whether the answer is exactly "y" or "Y".
func (p *Prompter) Confirm(message string) (bool, error) {
	answer, err := p.Line(message)
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "Y", nil
}

func (p *Prompter) println(message string) error {
	if _, err := fmt.Fprintln(p.out, message); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	return nil
}

// readLine returns the next line without its line ending. A final line
// without a newline is still returned; only a read at end of input fails.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
