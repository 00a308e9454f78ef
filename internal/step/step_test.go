package step

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestLineReader(t *testing.T) {
	trigger := NewLineReader(strings.NewReader("\n\nnext\n"))
	defer func() { _ = trigger.Close() }()

	ctx := context.Background()
	for range 3 {
		assert.NoError(t, trigger.Wait(ctx))
	}
	assert.True(t, errors.Is(trigger.Wait(ctx), io.EOF))
}

func TestLineReaderQuit(t *testing.T) {
	for _, input := range []string{"q\n", " Q \n", ctrlC} {
		trigger := NewLineReader(strings.NewReader(input))
		err := trigger.Wait(context.Background())
		assert.True(t, errors.Is(err, ErrQuit))
		assert.NoError(t, trigger.Close())
	}
}

func TestWaitCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer func() { _ = writer.Close() }()

	trigger := NewLineReader(reader)
	defer func() { _ = trigger.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := trigger.Wait(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNewWithoutTerminal(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.txt")
	assert.NoError(t, os.WriteFile(file, []byte("\nq\n"), 0600))

	f, err := os.Open(file)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	trigger, err := New(f)
	assert.NoError(t, err)
	defer func() { _ = trigger.Close() }()

	ctx := context.Background()
	assert.NoError(t, trigger.Wait(ctx))
	assert.True(t, errors.Is(trigger.Wait(ctx), ErrQuit))
}
