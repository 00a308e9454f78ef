package cpu

import "strings"

// Flag is a single bit of the processor status register.
type Flag uint8

// Processor status register flags.
const (
	FlagCarry     Flag = 1 << iota // C
	FlagZero                       // Z
	FlagInterrupt                  // I, 1 = IRQ disabled
	FlagDecimal                    // D
	FlagBreak                      // B
	FlagUnused                     // -, always 1
	FlagOverflow                   // V
	FlagNegative                   // N
)

// Status is the processor status register. The unused bit is always set.
type Status uint8

// initialStatus is the value of the register after construction.
const initialStatus = Status(FlagUnused)

// NewStatus converts a raw byte, for example pulled from the stack, to a status
// register value.
func NewStatus(value uint8) Status {
	return Status(value) | Status(FlagUnused)
}

// Has returns whether the flag is set.
func (s Status) Has(flag Flag) bool {
	return s&Status(flag) != 0
}

// Set sets or clears the flag.
func (s *Status) Set(flag Flag, on bool) {
	if on {
		*s |= Status(flag)
	} else {
		*s &^= Status(flag)
	}
	*s |= Status(FlagUnused)
}

// Negative reports whether the N flag is set.
func (s Status) Negative() bool { return s.Has(FlagNegative) }

// Overflow reports whether the V flag is set.
func (s Status) Overflow() bool { return s.Has(FlagOverflow) }

// Break reports whether the B flag is set.
func (s Status) Break() bool { return s.Has(FlagBreak) }

// Decimal reports whether the D flag is set.
func (s Status) Decimal() bool { return s.Has(FlagDecimal) }

// InterruptDisable reports whether the I flag is set.
func (s Status) InterruptDisable() bool { return s.Has(FlagInterrupt) }

// Zero reports whether the Z flag is set.
func (s Status) Zero() bool { return s.Has(FlagZero) }

// Carry reports whether the C flag is set.
func (s Status) Carry() bool { return s.Has(FlagCarry) }

// String returns the register as a labelled bit pattern, upper case letters
// for set flags, in the order N V - B D I Z C.
func (s Status) String() string {
	var sb strings.Builder
	for i, c := range "NV-BDIZC" {
		bit := Status(1) << (7 - i)
		switch {
		case c == '-':
			sb.WriteByte('-')
		case s&bit != 0:
			sb.WriteRune(c)
		default:
			sb.WriteRune(c + 'a' - 'A')
		}
	}
	return sb.String()
}
