// Package console is the terminal front end of a point-of-sale session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"coffeeshop/session"
)

// Prompter implements session.Prompter over a line-oriented terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ session.Prompter = (*Prompter)(nil)

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine reads one line without its line ending. It returns io.EOF once
// the input is exhausted.
func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptText asks a question and returns the raw answer. An empty line
// dismisses the prompt.
func (p *Prompter) PromptText(ctx context.Context, title, question string) (string, bool, error) {
	fmt.Fprintf(p.out, "[%s] %s ", title, question)
	line, err := p.ReadLine(ctx)
	if err != nil {
		return "", false, fmt.Errorf("read answer: %w", err)
	}
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

// PromptYesNo asks until the answer is yes or no. An empty answer is no.
func (p *Prompter) PromptYesNo(ctx context.Context, title, question string) (bool, error) {
	fmt.Fprintf(p.out, "[%s] %s [y/N] ", title, question)
	for {
		line, err := p.ReadLine(ctx)
		if err != nil {
			return false, fmt.Errorf("read answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		fmt.Fprint(p.out, "Please answer y or n: ")
	}
}

// Notify prints a notice on its own line.
func (p *Prompter) Notify(ctx context.Context, notice session.Notice) error {
	_, err := fmt.Fprintf(p.out, "%s %s: %s\n", noticeTag(notice.Level), notice.Title, notice.Message)
	return err
}

func noticeTag(level session.Level) string {
	switch level {
	case session.LevelWarning:
		return "(!)"
	case session.LevelSuccess:
		return "(ok)"
	default:
		return "(i)"
	}
}
