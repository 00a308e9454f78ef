// Package cpu emulates the documented instruction set of the MOS 6502.
//
// The emulation is instruction result accurate: every instruction leaves the
// registers, flags and memory as the real processor would, but no bus cycles
// are counted. The CPU exclusively owns its 64 KiB memory map, which is built
// from a RAM and a ROM region at construction.
//
//	c, err := cpu.New(logger, cpu.Config{ROM: rom})
//	if err != nil {
//		return err
//	}
//	err = c.Run(ctx)
package cpu

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/m6502emu/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// Interrupt vector addresses.
const (
	NMIVector   = 0xFFFA
	ResetVector = 0xFFFC
	IRQVector   = 0xFFFE
)

const (
	// HaltOpcode stops the continuous run mode when it is fetched.
	HaltOpcode = 0x00

	stackBase = 0x0100
)

// ErrInstructionLimit is returned by Run when the configured number of
// instructions was executed without reaching the halt opcode.
var ErrInstructionLimit = errors.New("instruction limit reached")

// Config contains the memory regions the CPU is constructed from.
type Config struct {
	RAM memory.Region
	ROM memory.Region
}

// Registers contains all CPU registers.
type Registers struct {
	A  uint8  // accumulator
	X  uint8  // index register X
	Y  uint8  // index register Y
	SP uint8  // stack pointer, offset into page 1
	PC uint16 // program counter
	P  Status // processor status
}

// Tracer is called before an instruction is fetched.
type Tracer func(c *CPU)

// CPU is a 6502 processor with its memory map.
type CPU struct {
	logger *log.Logger
	mem    *memory.Map
	reg    Registers
	tracer Tracer

	limit        uint64
	instructions uint64
	unknown      uint64
}

// New returns a CPU with a memory map built from the configured regions and
// the program counter loaded from the reset vector.
func New(logger *log.Logger, cfg Config) (*CPU, error) {
	cfg.RAM.Name = nameOrDefault(cfg.RAM.Name, "RAM")
	cfg.ROM.Name = nameOrDefault(cfg.ROM.Name, "ROM")

	mem, err := memory.New(cfg.RAM, cfg.ROM)
	if err != nil {
		return nil, fmt.Errorf("building memory map: %w", err)
	}

	c := &CPU{
		logger: logger,
		mem:    mem,
	}
	c.Reset()
	return c, nil
}

func nameOrDefault(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// Reset clears the registers and loads the program counter from the reset
// vector. Memory is not modified.
func (c *CPU) Reset() {
	c.reg = Registers{
		P:  initialStatus,
		PC: c.mem.ReadWord(ResetVector),
	}
}

// SetInstructionLimit sets the maximum number of instructions that Run
// executes, 0 disables the limit.
func (c *CPU) SetInstructionLimit(limit uint64) {
	c.limit = limit
}

// SetTracer sets a function that is called before every fetched opcode,
// nil disables tracing.
func (c *CPU) SetTracer(tracer Tracer) {
	c.tracer = tracer
}

// Registers returns a copy of the register file.
func (c *CPU) Registers() Registers { return c.reg }

// A returns the accumulator.
func (c *CPU) A() uint8 { return c.reg.A }

// X returns the X index register.
func (c *CPU) X() uint8 { return c.reg.X }

// Y returns the Y index register.
func (c *CPU) Y() uint8 { return c.reg.Y }

// SP returns the stack pointer, an offset into page one.
func (c *CPU) SP() uint8 { return c.reg.SP }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.reg.PC }

// Status returns the processor status register.
func (c *CPU) Status() Status { return c.reg.P }

// Read returns the byte at the given address without side effects.
func (c *CPU) Read(address uint16) byte { return c.mem.Read(address) }

// Memory returns a copy of the complete memory map.
func (c *CPU) Memory() []byte {
	return c.mem.Dump()
}

// Instructions returns the number of executed instructions.
func (c *CPU) Instructions() uint64 { return c.instructions }

// UnknownOpcodes returns the number of fetched opcodes that have no handler.
func (c *CPU) UnknownOpcodes() uint64 { return c.unknown }

// Halted returns whether the next opcode is the halt opcode.
func (c *CPU) Halted() bool {
	return c.mem.Read(c.reg.PC) == HaltOpcode
}

// Step fetches and executes a single instruction. It returns false if the
// fetched opcode is not a documented instruction, in which case only the
// program counter is advanced past it.
func (c *CPU) Step() bool {
	if c.tracer != nil {
		c.tracer(c)
	}

	address := c.reg.PC
	opcode := c.fetch()

	ins := opcodes[opcode]
	if ins == nil {
		c.unknown++
		c.logger.Warn("Unknown opcode",
			log.Hex("opcode", opcode),
			log.Hex("address", address))
		return false
	}

	ins.exec(c, opcode)
	c.instructions++
	return true
}

// Run executes instructions until the halt opcode is about to be fetched,
// the context is cancelled or the instruction limit is reached.
func (c *CPU) Run(ctx context.Context) error {
	var executed uint64
	for !c.Halted() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.limit > 0 && executed >= c.limit {
			return fmt.Errorf("%w: %d instructions, PC $%04X", ErrInstructionLimit, executed, c.reg.PC)
		}

		c.Step()
		executed++
	}
	return nil
}

// fetch reads the byte at the program counter and advances it.
func (c *CPU) fetch() byte {
	b := c.mem.Read(c.reg.PC)
	c.reg.PC++
	return b
}

// fetchWord reads the little endian word at the program counter and advances
// it by 2.
func (c *CPU) fetchWord() uint16 {
	low := uint16(c.fetch())
	high := uint16(c.fetch())
	return high<<8 | low
}
