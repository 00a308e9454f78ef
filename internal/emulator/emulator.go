// Package emulator orchestrates an emulation run: loading the images,
// constructing the CPU, running it and reporting the result.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/m6502emu/internal/cpu"
	"github.com/retroenv/m6502emu/internal/detector"
	"github.com/retroenv/m6502emu/internal/disasm"
	"github.com/retroenv/m6502emu/internal/loader"
	"github.com/retroenv/m6502emu/internal/memory"
	"github.com/retroenv/m6502emu/internal/options"
	"github.com/retroenv/m6502emu/internal/step"
	"github.com/retroenv/m6502emu/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

var errNoTrigger = errors.New("step mode requires a step trigger")

// Emulator orchestrates the complete emulation workflow.
type Emulator struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulator.
func New(logger *log.Logger) *Emulator {
	return &Emulator{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the images, runs the program until it halts and writes or
// verifies the final memory map if requested. The trigger is only used in
// step mode. The CPU is returned for inspection even if the run failed.
func (e *Emulator) Execute(ctx context.Context, opts options.Program, trigger step.Trigger) (*cpu.CPU, error) {
	cfg, err := e.loadRegions(opts)
	if err != nil {
		return nil, err
	}

	c, err := cpu.New(e.logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating CPU: %w", err)
	}
	c.SetInstructionLimit(opts.MaxInstructions)

	e.printInfo(cfg, c)

	if opts.Step {
		err = e.runStepped(ctx, c, trigger)
	} else {
		if opts.Debug {
			c.SetTracer(e.trace)
		}
		err = c.Run(ctx)
	}
	e.printResult(c)
	if err != nil {
		return c, fmt.Errorf("running program: %w", err)
	}

	if err := e.writeResult(opts, c); err != nil {
		return c, err
	}
	return c, nil
}

// loadRegions loads the RAM and ROM images and places them in the address
// space.
func (e *Emulator) loadRegions(opts options.Program) (cpu.Config, error) {
	var cfg cpu.Config

	romFormat, err := e.detector.Detect(opts.ROM)
	if err != nil {
		return cfg, fmt.Errorf("detecting ROM format: %w", err)
	}
	rom, err := e.loader.Load(opts.ROM, romFormat)
	if err != nil {
		return cfg, fmt.Errorf("loading ROM: %w", err)
	}
	cfg.ROM, err = loader.Region("ROM", rom, 0, opts.ROMSize)
	if err != nil {
		return cfg, fmt.Errorf("creating ROM region: %w", err)
	}

	switch {
	case opts.ROMBase != options.AutoBase:
		cfg.ROM.Base = uint16(opts.ROMBase)
	case romFormat == detector.INES:
		cfg.ROM.Base = loader.EndAlignedBase(cfg.ROM.Size)
	default:
		cfg.ROM.Base = options.DefaultROMBase
	}

	var ram *loader.Image
	if opts.RAM != "" {
		ram, err = e.loader.Load(opts.RAM, detector.Raw)
		if err != nil {
			return cfg, fmt.Errorf("loading RAM: %w", err)
		}
	}
	cfg.RAM, err = loader.Region("RAM", ram, uint16(opts.RAMBase), opts.RAMSize)
	if err != nil {
		return cfg, fmt.Errorf("creating RAM region: %w", err)
	}

	return cfg, nil
}

// runStepped executes one instruction per trigger event until the program
// halts or the user stops stepping.
func (e *Emulator) runStepped(ctx context.Context, c *cpu.CPU, trigger step.Trigger) error {
	if trigger == nil {
		return errNoTrigger
	}

	for !c.Halted() {
		e.logger.Info("Next instruction",
			log.String("instruction", e.describe(c)),
			log.Stringer("flags", c.Status()))

		err := trigger.Wait(ctx)
		switch {
		case errors.Is(err, step.ErrQuit), errors.Is(err, io.EOF):
			e.logger.Info("Stepping stopped")
			return nil
		case err != nil:
			return fmt.Errorf("waiting for step trigger: %w", err)
		}

		c.Step()
		e.printRegisters("Registers", c)
	}

	e.logger.Info("Program halted", log.Hex("pc", c.PC()))
	return nil
}

// trace logs the instruction that is about to be executed.
func (e *Emulator) trace(c *cpu.CPU) {
	reg := c.Registers()
	e.logger.Debug(e.describe(c),
		log.Hex("a", reg.A),
		log.Hex("x", reg.X),
		log.Hex("y", reg.Y),
		log.Hex("sp", reg.SP),
		log.Stringer("flags", reg.P))
}

// describe returns the address, bytes and disassembly of the instruction at
// the program counter.
func (e *Emulator) describe(c *cpu.CPU) string {
	ins := disasm.Decode(c, c.PC())
	return fmt.Sprintf("$%04X  %-8s  %s", ins.Address, ins.Hex(), ins.String())
}

func (e *Emulator) printInfo(cfg cpu.Config, c *cpu.CPU) {
	for _, region := range []memory.Region{cfg.RAM, cfg.ROM} {
		if region.Size == 0 {
			continue
		}
		e.logger.Info("Memory region",
			log.String("name", region.Name),
			log.Hex("base", region.Base),
			log.Hex("size", region.Size))
	}
	e.logger.Info("Reset", log.Hex("pc", c.PC()))
}

func (e *Emulator) printResult(c *cpu.CPU) {
	e.printRegisters("Execution finished", c)
	e.logger.Info("Statistics",
		log.Int("instructions", int(c.Instructions())),
		log.Int("unknown_opcodes", int(c.UnknownOpcodes())))
}

func (e *Emulator) printRegisters(msg string, c *cpu.CPU) {
	reg := c.Registers()
	e.logger.Info(msg,
		log.Hex("pc", reg.PC),
		log.Hex("a", reg.A),
		log.Hex("x", reg.X),
		log.Hex("y", reg.Y),
		log.Hex("sp", reg.SP),
		log.Stringer("flags", reg.P))
}

// writeResult writes and verifies the final memory map as requested by the
// options.
func (e *Emulator) writeResult(opts options.Program, c *cpu.CPU) error {
	if opts.Output == "" && opts.Verify == "" {
		return nil
	}

	dump := c.Memory()

	if opts.Output != "" {
		if err := verification.WriteDump(opts.Output, dump); err != nil {
			return err
		}
		e.logger.Info("Memory dump written", log.String("file", opts.Output))
	}

	if opts.Verify != "" {
		if err := verification.VerifyMemory(e.logger, opts.Verify, dump); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		e.logger.Info("Verification successful")
	}
	return nil
}
