// Package step provides the triggers that advance the emulation in single
// step mode.
package step

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ErrQuit is returned by Wait when the user requested to stop stepping.
var ErrQuit = errors.New("quit requested")

const ctrlC = "\x03"

// Trigger blocks until the next instruction should be executed.
type Trigger interface {
	// Wait returns nil when the next instruction should be executed, ErrQuit
	// when stepping should stop and io.EOF when the input is exhausted.
	Wait(ctx context.Context) error
	// Close releases the input and restores the terminal state.
	Close() error
}

// scanTrigger fires once per token read from its input. Tokens are read by a
// goroutine so that Wait can be cancelled.
type scanTrigger struct {
	scanner *bufio.Scanner
	tokens  chan string
	done    chan struct{}
	err     error // read error, valid after tokens is closed

	start   sync.Once
	stop    sync.Once
	restore func() error
}

// New returns a trigger for the given input. Terminals are switched to raw
// mode and every key press executes one instruction, other inputs execute
// one instruction per line.
func New(file *os.File) (Trigger, error) {
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return NewLineReader(file), nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting terminal to raw mode: %w", err)
	}

	t := newScanTrigger(file, bufio.ScanBytes)
	t.restore = func() error {
		return term.Restore(fd, state)
	}
	return t, nil
}

// NewLineReader returns a trigger that executes one instruction per line read
// from the reader. A line containing q stops stepping.
func NewLineReader(r io.Reader) Trigger {
	return newScanTrigger(r, bufio.ScanLines)
}

func newScanTrigger(r io.Reader, split bufio.SplitFunc) *scanTrigger {
	scanner := bufio.NewScanner(r)
	scanner.Split(split)
	return &scanTrigger{
		scanner: scanner,
		tokens:  make(chan string),
		done:    make(chan struct{}),
	}
}

func (t *scanTrigger) Wait(ctx context.Context) error {
	t.start.Do(func() {
		go t.scan()
	})

	select {
	case <-ctx.Done():
		return ctx.Err()

	case token, ok := <-t.tokens:
		if !ok {
			if t.err != nil {
				return fmt.Errorf("reading step input: %w", t.err)
			}
			return io.EOF
		}
		if isQuit(token) {
			return ErrQuit
		}
		return nil
	}
}

func (t *scanTrigger) Close() error {
	var err error
	t.stop.Do(func() {
		close(t.done)
		if t.restore != nil {
			err = t.restore()
		}
	})
	return err
}

func (t *scanTrigger) scan() {
	defer close(t.tokens)

	for t.scanner.Scan() {
		select {
		case t.tokens <- t.scanner.Text():
		case <-t.done:
			return
		}
	}
	t.err = t.scanner.Err()
}

func isQuit(token string) bool {
	return token == ctrlC || strings.EqualFold(strings.TrimSpace(token), "q")
}
