// Package prompt collects the operator's answers on a line-oriented terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled is returned when input ends or the context is cancelled
// before an answer is given.
var ErrCancelled = errors.New("cancelled")

// Prompter asks questions on Out and reads answers from In.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	lines chan line
}

type line struct {
	text string
	err  error
}

// ProjectName asks for the project name until a non-blank answer is given.
// The answer is returned as typed, without its line ending. A blank answer
// selects def when def is non-empty.
func (p *Prompter) ProjectName(ctx context.Context, def string) (string, error) {
	question := "Project name"
	if def != "" {
		question += fmt.Sprintf(" (%s)", def)
	}

	for {
		fmt.Fprintf(p.Out, "? %s: ", question)
		answer, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(answer) != "" {
			return answer, nil
		}
		if def != "" {
			return def, nil
		}
		fmt.Fprintln(p.Out, "  Project name is required.")
	}
}

// Confirm asks a yes/no question. A blank answer selects def.
func (p *Prompter) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(p.Out, "? %s (%s): ", question, hint)
		answer, err := p.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.Out, "  Please answer y or n.")
	}
}

// readLine waits for the next line or for ctx to be done. The reader
// goroutine is started once and lives as long as In has data.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.lines == nil {
		p.lines = make(chan line)
		go p.scan()
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.Out)
		return "", ErrCancelled
	case l, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.Out)
			return "", ErrCancelled
		}
		if l.err != nil {
			return "", fmt.Errorf("reading input: %w", l.err)
		}
		return l.text, nil
	}
}

func (p *Prompter) scan() {
	defer close(p.lines)
	reader := bufio.NewReader(p.In)
	for {
		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			p.lines <- line{err: err}
			return
		}
		if err != nil && text == "" {
			return
		}
		p.lines <- line{text: strings.TrimRight(text, "\r\n")}
		if err != nil {
			return
		}
	}
}
