package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/Luna-Breeze/question-answer-system/core"
	"github.com/Luna-Breeze/question-answer-system/core/qa"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	isTerminalFunc   = term.IsTerminal   // mockable

	errInputClosed = core.NewShutdownError("input closed")
	ratingRule     = fmt.Sprintf("min=%d,max=%d", qa.MinRating, qa.MaxRating)
)

type prompter interface {
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

type readlinePrompter struct {
	rl  *readline.Instance
	out io.Writer
}

func newReadlinePrompter(historyFile string) (*readlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "» ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "^D",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &readlinePrompter{rl: rl, out: os.Stdout}, nil
}

func (p *readlinePrompter) ReadLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", errInputClosed
	}
	return core.TrimEOL(line), err
}

// ReadPassword reads without echo when stdin is a terminal.
func (p *readlinePrompter) ReadPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminalFunc(fd) {
		return p.ReadLine(prompt)
	}
	_, _ = io.WriteString(p.out, prompt)
	pwd, err := readPasswordFunc(fd)
	_, _ = io.WriteString(p.out, "\n")
	if err != nil {
		return "", errInputClosed
	}
	return string(pwd), nil
}

func (p *readlinePrompter) Close() error { return p.rl.Close() }

// readChoice reads a menu entry between 1 and max. ok is false on invalid input.
func (sh *shell) readChoice(max int) (choice int, ok bool, err error) {
	line, err := sh.in.ReadLine("Please choose: ")
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(core.CleanString(line))
	if err != nil {
		return 0, false, nil
	}
	if core.Validate.Var(n, "min=1,max="+strconv.Itoa(max)) != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// readRating asks until the answer is a rating between 1 and 10.
func (sh *shell) readRating() (int, error) {
	for {
		line, err := sh.in.ReadLine(fmt.Sprintf("Rate this QA session (%d-%d): ", qa.MinRating, qa.MaxRating))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(core.CleanString(line))
		if err == nil && core.Validate.Var(n, ratingRule) == nil {
			return n, nil
		}
	}
}
