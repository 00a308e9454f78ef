package verification

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// mismatchLogger returns a logger for runs that log mismatches at error level,
// which the test logger would treat as a test failure.
func mismatchLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}

func TestCheckBufferEqual(t *testing.T) {
	tests := []struct {
		name        string
		expected    []byte
		memory      []byte
		errContains string
	}{
		{"equal", []byte{1, 2, 3}, []byte{1, 2, 3}, ""},
		{"length", []byte{1, 2}, []byte{1, 2, 3}, "mismatched lengths, 2 != 3"},
		{"content", []byte{1, 2, 3}, []byte{1, 0, 0}, "2 address mismatches"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkBufferEqual(mismatchLogger(), tt.expected, tt.memory)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrMismatch))
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestVerifyMemory(t *testing.T) {
	logger := log.NewTestLogger(t)
	memory := make([]byte, 0x10000)
	memory[0x0004] = 0x87

	file := filepath.Join(t.TempDir(), "dump.bin")
	assert.NoError(t, WriteDump(file, memory))
	assert.NoError(t, VerifyMemory(logger, file, memory))

	memory[0x0005] = 0x01
	err := VerifyMemory(mismatchLogger(), file, memory)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.ErrorContains(t, err, "1 address mismatches")

	err = VerifyMemory(logger, filepath.Join(t.TempDir(), "missing.bin"), memory)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrMismatch))
}

func TestWriteDumpError(t *testing.T) {
	dir := t.TempDir()
	err := WriteDump(filepath.Join(dir, "missing", "dump.bin"), []byte{0})
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(statErr))
}
