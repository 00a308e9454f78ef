package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	ram := []byte{0x01, 0x02, 0x03}
	rom := []byte{0xEA, 0x00, 0x80}

	m, err := New(
		Region{Name: "RAM", Base: 0x0000, Size: len(ram), Data: ram},
		Region{Name: "ROM", Base: 0xFFFD, Size: len(rom), Data: rom},
	)
	assert.NoError(t, err)

	assert.Equal(t, byte(0x01), m.Read(0x0000))
	assert.Equal(t, byte(0x03), m.Read(0x0002))
	assert.Equal(t, byte(0x00), m.Read(0x0003))
	assert.Equal(t, byte(0xEA), m.Read(0xFFFD))
	assert.Equal(t, uint16(0x8000), m.ReadWord(0xFFFE))

	// the map owns a copy of the buffers
	ram[0] = 0xFF
	assert.Equal(t, byte(0x01), m.Read(0x0000))
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		regions []Region
		err     error
	}{
		{
			name: "size mismatch",
			regions: []Region{
				{Name: "RAM", Base: 0x0000, Size: 4, Data: []byte{1, 2}},
			},
			err: ErrRegionSize,
		},
		{
			name: "past end of address space",
			regions: []Region{
				{Name: "ROM", Base: 0xFFFF, Size: 2, Data: []byte{1, 2}},
			},
			err: ErrRegionOutOfBounds,
		},
		{
			name: "overlapping regions",
			regions: []Region{
				{Name: "RAM", Base: 0x0000, Size: 0x0800, Data: make([]byte, 0x0800)},
				{Name: "ROM", Base: 0x07FF, Size: 0x0010, Data: make([]byte, 0x0010)},
			},
			err: ErrRegionOverlap,
		},
		{
			name: "overlap with region fully inside another",
			regions: []Region{
				{Name: "ROM", Base: 0x8000, Size: 0x8000, Data: make([]byte, 0x8000)},
				{Name: "RAM", Base: 0x9000, Size: 0x0100, Data: make([]byte, 0x0100)},
			},
			err: ErrRegionOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.regions...)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestNewAdjacentAndEmptyRegions(t *testing.T) {
	_, err := New(
		Region{Name: "RAM", Base: 0x0000, Size: 0x8000, Data: make([]byte, 0x8000)},
		Region{Name: "ROM", Base: 0x8000, Size: 0x8000, Data: make([]byte, 0x8000)},
		Region{Name: "empty", Base: 0x1000},
	)
	assert.NoError(t, err)
}

func TestReadWrite(t *testing.T) {
	m, err := New()
	assert.NoError(t, err)

	m.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), m.Read(0x1234))

	m.Write(0xFFFF, 0x34)
	m.Write(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), m.ReadWord(0xFFFF))
}

func TestReadWordZeroPage(t *testing.T) {
	m, err := New()
	assert.NoError(t, err)

	m.Write(0x00FF, 0x34)
	m.Write(0x0100, 0x99)
	m.Write(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), m.ReadWordZeroPage(0xFF))
}

func TestReadWordPageWrap(t *testing.T) {
	m, err := New()
	assert.NoError(t, err)

	m.Write(0x02FF, 0x34)
	m.Write(0x0300, 0x99)
	m.Write(0x0200, 0x12)
	assert.Equal(t, uint16(0x1234), m.ReadWordPageWrap(0x02FF))
	assert.Equal(t, uint16(0x9934), m.ReadWord(0x02FF))
}

func TestDump(t *testing.T) {
	m, err := New()
	assert.NoError(t, err)
	m.Write(0x4000, 0x42)

	dump := m.Dump()
	assert.Len(t, dump, Size)
	assert.Equal(t, byte(0x42), dump[0x4000])

	dump[0x4000] = 0
	assert.Equal(t, byte(0x42), m.Read(0x4000))
}
