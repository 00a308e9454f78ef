// Package options contains the program options.
package options

// AutoBase selects the default base address of a region.
const AutoBase = -1

// DefaultROMBase is the base address of raw ROM images if none is given.
const DefaultROMBase = 0x8000

// Parameters contains file path options.
type Parameters struct {
	RAM    string `flag:"ram" usage:"RAM image file"`
	ROM    string `flag:"rom" usage:"ROM image file, raw binary or iNES"`
	Output string `flag:"o" usage:"write the final memory map to this file"`
	Verify string `flag:"verify" usage:"compare the final memory map with this file"`
}

// Memory contains the memory layout options. Sizes of 0 use the image length.
type Memory struct {
	RAMBase int `flag:"ram-base" usage:"RAM base address" default:"0"`
	RAMSize int `flag:"ram-size" usage:"RAM size, padded with zeros"`
	ROMBase int `flag:"rom-base" usage:"ROM base address (default: $8000, iNES PRG ends at $FFFF)"`
	ROMSize int `flag:"rom-size" usage:"ROM size, padded with zeros"`
}

// Flags contains behavior options.
type Flags struct {
	Step            bool   `flag:"step" usage:"execute one instruction per key press"`
	MaxInstructions uint64 `flag:"max" usage:"stop after this many instructions (0: unlimited)"`
	Debug           bool   `flag:"debug" usage:"enable debug logging"`
	Quiet           bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Memory
	Flags
}

// New returns program options with the default memory layout.
func New() Program {
	return Program{
		Memory: Memory{
			ROMBase: AutoBase,
		},
	}
}
