// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/m6502emu/internal/memory"
	"github.com/retroenv/m6502emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	opts := options.New()
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	args := flags.Args()
	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}
	if len(args) == 1 {
		if opts.ROM != "" {
			return opts, &UsageError{flags: flags, msg: "ROM file given both as -rom and as argument"}
		}
		opts.ROM = args[0]
	}
	if opts.ROM == "" {
		return opts, &UsageError{flags: flags}
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

// Error returns the usage error message, empty if only usage should be shown.
func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage line and the flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: m6502emu [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that at most one positional argument is given and that
// it is the last argument
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{flags: flags, msg: fmt.Sprintf("only one ROM file can be run, got %d", len(args))}
	}
	return nil
}

// validateOptions checks the memory layout options for values outside of the
// address space
func validateOptions(opts options.Program) error {
	if opts.RAMBase < 0 || opts.RAMBase >= memory.Size {
		return fmt.Errorf("RAM base address $%X is outside of the address space", opts.RAMBase)
	}
	if opts.ROMBase != options.AutoBase && (opts.ROMBase < 0 || opts.ROMBase >= memory.Size) {
		return fmt.Errorf("ROM base address $%X is outside of the address space", opts.ROMBase)
	}

	if opts.RAMSize < 0 || opts.RAMSize > memory.Size {
		return fmt.Errorf("RAM size $%X exceeds the address space", opts.RAMSize)
	}
	if opts.ROMSize < 0 || opts.ROMSize > memory.Size {
		return fmt.Errorf("ROM size $%X exceeds the address space", opts.ROMSize)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.RAM, "ram", "", "name of the RAM image file, RAM is zero filled if not given")
	flags.Var((*number)(&opts.RAMBase), "ram-base", "base address of the RAM (decimal, 0x or $ hex)")
	flags.Var((*number)(&opts.RAMSize), "ram-size", "size of the RAM, defaults to the image size")
	flags.StringVar(&opts.ROM, "rom", "", "name of the ROM image file, raw binary or iNES")
	flags.Var((*number)(&opts.ROMBase), "rom-base", "base address of the ROM, defaults to $8000 or the end of the address space for iNES files")
	flags.Var((*number)(&opts.ROMSize), "rom-size", "size of the ROM, defaults to the image size")
	flags.StringVar(&opts.Output, "o", "", "name of the file to write the final memory map to")
	flags.StringVar(&opts.Verify, "verify", "", "name of a memory dump to compare the final memory map with")
	flags.BoolVar(&opts.Step, "step", false, "single step mode, execute one instruction per key press")
	flags.Uint64Var(&opts.MaxInstructions, "max", 0, "maximum number of instructions to execute, 0 for no limit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

// number is a flag value that accepts decimal, 0x prefixed and $ prefixed
// hex numbers
type number int

func (n *number) String() string {
	if n == nil {
		return ""
	}
	if *n < 0 {
		return "auto"
	}
	return fmt.Sprintf("$%04X", int(*n))
}

func (n *number) Set(s string) error {
	value, err := parseNumber(s)
	if err != nil {
		return err
	}
	*n = number(value)
	return nil
}

// parseNumber parses a decimal, 0x prefixed or $ prefixed hex number.
func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	digits := s
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		digits, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits, base = s[2:], 16
	}

	value, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s'", s)
	}
	return int(value), nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("m6502emu", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
