// Package confirm decides whether a destructive action may go ahead.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Policy answers a yes/no question.
type Policy interface {
	Confirm(prompt string) (bool, error)
}

// AlwaysYes approves every prompt without asking.
type AlwaysYes struct{}

// Confirm implements Policy.
func (AlwaysYes) Confirm(string) (bool, error) { return true, nil }

// AlwaysNo declines every prompt without asking.
type AlwaysNo struct{}

// Confirm implements Policy.
func (AlwaysNo) Confirm(string) (bool, error) { return false, nil }

// Interactive asks on out and reads the answer from in.
//
// An empty answer selects "no". Anything other than y, Y, n or N is
// rejected and the question is asked again. Reaching the end of in is
// treated as an empty answer.
type Interactive struct {
	in         *bufio.Reader
	out        io.Writer
	defaultYes bool
}

// NewInteractive returns a prompt that defaults to "no".
func NewInteractive(in io.Reader, out io.Writer) *Interactive {
	return &Interactive{in: bufio.NewReader(in), out: out}
}

// Confirm implements Policy.
func (p *Interactive) Confirm(prompt string) (bool, error) {
	if prompt == "" {
		prompt = "Confirm"
	}
	if p.defaultYes {
		prompt = fmt.Sprintf("%s [y]|n: ", prompt)
	} else {
		prompt = fmt.Sprintf("%s [n]|y: ", prompt)
	}

	for {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return false, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		eof := err != nil

		switch strings.TrimSpace(line) {
		case "":
			if eof {
				// keep the prompt line terminated when input is closed
				_, _ = io.WriteString(p.out, "\n")
			}
			return p.defaultYes, nil
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}

		if eof {
			return p.defaultYes, nil
		}
		if _, err := io.WriteString(p.out, "please enter y or n.\n"); err != nil {
			return false, fmt.Errorf("failed to write prompt: %w", err)
		}
	}
}
