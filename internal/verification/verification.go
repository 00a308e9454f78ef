// Package verification compares the final memory map of an emulation run with
// an expected memory dump.
package verification

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// ErrMismatch is returned when the memory map differs from the expected dump.
var ErrMismatch = errors.New("memory mismatch")

// maxLoggedDiffs limits the number of mismatching addresses that are logged.
const maxLoggedDiffs = 10

// VerifyMemory compares the memory map with the dump stored in the expected
// file.
func VerifyMemory(logger *log.Logger, expectedFile string, memory []byte) error {
	expected, err := os.ReadFile(expectedFile)
	if err != nil {
		return fmt.Errorf("reading expected memory dump: %w", err)
	}

	if err := checkBufferEqual(logger, expected, memory); err != nil {
		return fmt.Errorf("comparing with '%s': %w", expectedFile, err)
	}
	return nil
}

// WriteDump writes the memory map to a file.
func WriteDump(outputFile string, memory []byte) error {
	if err := os.WriteFile(outputFile, memory, 0644); err != nil {
		return fmt.Errorf("writing memory dump '%s': %w", outputFile, err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, expected, memory []byte) error {
	if len(expected) != len(memory) {
		return fmt.Errorf("%w: mismatched lengths, %d != %d", ErrMismatch, len(expected), len(memory))
	}

	var diffs uint64
	for i := range expected {
		if expected[i] == memory[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedDiffs {
			logger.Error("Address mismatch",
				log.Hex("address", i),
				log.Hex("expected", expected[i]),
				log.Hex("got", memory[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d address mismatches", ErrMismatch, diffs)
}
