// Package loader handles memory image loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/m6502emu/internal/detector"
	"github.com/retroenv/m6502emu/internal/memory"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

// ErrImageTooLarge is returned when an image does not fit into the declared
// region size.
var ErrImageTooLarge = errors.New("image exceeds region size")

// Image is a memory image loaded from disk.
type Image struct {
	File   string
	Format detector.Format
	Data   []byte
	Mapper uint16 // iNES mapper number
}

// Loader handles loading memory images from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads an image file. Raw images are used as is, of iNES cartridges
// only the PRG ROM is used.
func (l *Loader) Load(filename string, format detector.Format) (*Image, error) {
	img := &Image{
		File:   filename,
		Format: format,
	}

	switch format {
	case detector.INES:
		file, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("opening file %s: %w", filename, err)
		}
		defer func() { _ = file.Close() }()

		cart, err := cartridge.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("loading cartridge: %w", err)
		}
		img.Data = cart.PRG
		img.Mapper = cart.Mapper

	default:
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", filename, err)
		}
		img.Data = data
	}

	return img, nil
}

// Region returns a memory region for the image. A size of 0 uses the image
// length, larger sizes pad the image with zeros. A nil image returns a zero
// filled region.
func Region(name string, img *Image, base uint16, size int) (memory.Region, error) {
	var data []byte
	if img != nil {
		data = img.Data
	}

	switch {
	case size < 0:
		return memory.Region{}, fmt.Errorf("invalid %s size %d", name, size)
	case size == 0:
		size = len(data)
	}
	if len(data) > size {
		return memory.Region{}, fmt.Errorf("%w: %s image has %d bytes, region size is %d",
			ErrImageTooLarge, name, len(data), size)
	}

	buf := make([]byte, size)
	copy(buf, data)

	return memory.Region{
		Name: name,
		Base: base,
		Size: size,
		Data: buf,
	}, nil
}

// EndAlignedBase returns the base address that places a region of the given
// size directly below the end of the address space.
func EndAlignedBase(size int) uint16 {
	return uint16(memory.Size - size)
}
