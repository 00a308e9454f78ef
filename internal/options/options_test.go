package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	opts := New()

	assert.Equal(t, AutoBase, opts.ROMBase)
	assert.Equal(t, 0, opts.RAMBase)
	assert.Equal(t, 0, opts.ROMSize)
	assert.Equal(t, uint64(0), opts.MaxInstructions)
	assert.False(t, opts.Step)
}
