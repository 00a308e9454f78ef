// Package memory implements the flat 64 KiB address space of the 6502.
package memory

import (
	"errors"
	"fmt"
)

// Size is the number of addressable bytes.
const Size = 0x10000

var (
	// ErrRegionSize is returned when a region's data length differs from its size.
	ErrRegionSize = errors.New("region data does not match declared size")
	// ErrRegionOutOfBounds is returned when a region does not fit into the address space.
	ErrRegionOutOfBounds = errors.New("region exceeds the address space")
	// ErrRegionOverlap is returned when two regions share addresses.
	ErrRegionOverlap = errors.New("regions overlap")
)

// Region describes a buffer that gets placed into the map at construction.
type Region struct {
	Name string
	Base uint16
	Size int
	Data []byte
}

// end returns the first address after the region as an int, so that a region
// ending at 0xFFFF does not wrap.
func (r Region) end() int {
	return int(r.Base) + r.Size
}

// Map is the memory map as seen by the CPU. Every 16 bit address is valid.
type Map struct {
	data [Size]byte
}

// New returns a map populated with the given regions. The region buffers are
// copied and not retained.
func New(regions ...Region) (*Map, error) {
	if err := validate(regions); err != nil {
		return nil, err
	}

	m := &Map{}
	for _, region := range regions {
		copy(m.data[region.Base:region.end()], region.Data)
	}
	return m, nil
}

func validate(regions []Region) error {
	for i, region := range regions {
		if len(region.Data) != region.Size {
			return fmt.Errorf("%w: %s has %d bytes, declared %d", ErrRegionSize,
				region.Name, len(region.Data), region.Size)
		}
		if region.Size < 0 || region.end() > Size {
			return fmt.Errorf("%w: %s at $%04X with size $%X", ErrRegionOutOfBounds,
				region.Name, region.Base, region.Size)
		}
		if region.Size == 0 {
			continue
		}

		for _, other := range regions[:i] {
			if other.Size == 0 {
				continue
			}
			if int(region.Base) < other.end() && int(other.Base) < region.end() {
				return fmt.Errorf("%w: %s and %s", ErrRegionOverlap, other.Name, region.Name)
			}
		}
	}
	return nil
}

// Read returns the byte at the address.
func (m *Map) Read(address uint16) byte {
	return m.data[address]
}

// Write sets the byte at the address.
func (m *Map) Write(address uint16, value byte) {
	m.data[address] = value
}

// ReadWord reads a little endian word. The high byte address wraps around
// at the end of the address space.
func (m *Map) ReadWord(address uint16) uint16 {
	low := uint16(m.data[address])
	high := uint16(m.data[address+1])
	return high<<8 | low
}

// ReadWordZeroPage reads a little endian pointer from page zero. A pointer
// at $FF takes its high byte from $00.
func (m *Map) ReadWordZeroPage(pointer byte) uint16 {
	low := uint16(m.data[pointer])
	high := uint16(m.data[pointer+1])
	return high<<8 | low
}

// ReadWordPageWrap reads a word from a memory address and emulates a 6502 bug
// that caused the low byte to wrap without incrementing the high byte.
func (m *Map) ReadWordPageWrap(address uint16) uint16 {
	low := uint16(m.data[address])
	address = (address & 0xFF00) | uint16(byte(address)+1)
	high := uint16(m.data[address])
	return high<<8 | low
}

// Dump returns a copy of the complete address space.
func (m *Map) Dump() []byte {
	buf := make([]byte, Size)
	copy(buf, m.data[:])
	return buf
}
