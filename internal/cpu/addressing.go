package cpu

// Mode is an addressing mode.
type Mode uint8

// Addressing modes.
const (
	Implied Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // ($nn,X)
	IndirectIndexed // ($nn),Y
	Relative
)

var modeNames = [...]string{
	Implied:         "implied",
	Accumulator:     "accumulator",
	Immediate:       "immediate",
	ZeroPage:        "zero-page",
	ZeroPageX:       "zero-page indexed X",
	ZeroPageY:       "zero-page indexed Y",
	Absolute:        "absolute",
	AbsoluteX:       "absolute indexed X",
	AbsoluteY:       "absolute indexed Y",
	Indirect:        "indirect",
	IndexedIndirect: "indexed indirect",
	IndirectIndexed: "indirect indexed",
	Relative:        "relative",
}

// String returns the addressing mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// OperandSize returns the number of bytes following the opcode.
func (m Mode) OperandSize() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 1
	}
}

// Index selects the index register of the partial addressing mode set.
type Index uint8

// Index registers.
const (
	IndexX Index = iota
	IndexY
)

// modeMask extracts the bbb field of an aaabbbcc opcode.
const modeMask = 0x1C

// fullModes is the addressing mode set of the group one instructions
// ADC AND CMP EOR LDA ORA SBC STA.
var fullModes = [8]Mode{
	IndexedIndirect, // 000
	ZeroPage,        // 001
	Immediate,       // 010
	Absolute,        // 011
	IndirectIndexed, // 100
	ZeroPageX,       // 101
	AbsoluteY,       // 110
	AbsoluteX,       // 111
}

// partialModes is the addressing mode set of the group two and three
// instructions. The indexed entries are resolved to the X or Y variant by the
// calling instruction.
var partialModes = [8]Mode{
	Immediate,   // 000
	ZeroPage,    // 001
	Accumulator, // 010
	Absolute,    // 011
	Implied,     // 100, unused
	ZeroPageX,   // 101
	Implied,     // 110, unused
	AbsoluteX,   // 111
}

// fullMode returns the addressing mode of a group one opcode.
func fullMode(opcode byte) Mode {
	return fullModes[(opcode&modeMask)>>2]
}

// partialMode returns the addressing mode of a group two or three opcode.
func partialMode(opcode byte, index Index) Mode {
	mode := partialModes[(opcode&modeMask)>>2]
	if index == IndexY {
		switch mode {
		case ZeroPageX:
			return ZeroPageY
		case AbsoluteX:
			return AbsoluteY
		}
	}
	return mode
}

// operand is the result of resolving an addressing mode.
type operand struct {
	mode    Mode
	address uint16 // effective address, unused for immediate and accumulator
	value   byte   // operand value
}

// resolveFull resolves the operand of a group one instruction.
func (c *CPU) resolveFull(opcode byte) operand {
	return c.resolve(fullMode(opcode))
}

// resolvePartial resolves the operand of a group two or three instruction
// using the given index register for the indexed modes.
func (c *CPU) resolvePartial(opcode byte, index Index) operand {
	return c.resolve(partialMode(opcode, index))
}

// resolve consumes the operand bytes of the mode and computes the effective
// address and the operand value.
func (c *CPU) resolve(mode Mode) operand {
	op := operand{mode: mode}

	switch mode {
	case Implied:
		return op

	case Accumulator:
		op.value = c.reg.A
		return op

	case Immediate:
		op.address = c.reg.PC
		op.value = c.fetch()
		return op

	case ZeroPage:
		op.address = uint16(c.fetch())

	case ZeroPageX:
		op.address = uint16(c.fetch() + c.reg.X)

	case ZeroPageY:
		op.address = uint16(c.fetch() + c.reg.Y)

	case Absolute:
		op.address = c.fetchWord()

	case AbsoluteX:
		op.address = c.fetchWord() + uint16(c.reg.X)

	case AbsoluteY:
		op.address = c.fetchWord() + uint16(c.reg.Y)

	case Indirect:
		op.address = c.mem.ReadWordPageWrap(c.fetchWord())

	case IndexedIndirect:
		op.address = c.mem.ReadWordZeroPage(c.fetch() + c.reg.X)

	case IndirectIndexed:
		op.address = c.mem.ReadWordZeroPage(c.fetch()) + uint16(c.reg.Y)

	case Relative:
		offset := int8(c.fetch())
		op.address = c.reg.PC + uint16(offset)
		return op
	}

	op.value = c.mem.Read(op.address)
	return op
}

// store writes a value to the operand, which is either the accumulator or a
// memory location.
func (c *CPU) store(op operand, value byte) {
	if op.mode == Accumulator {
		c.reg.A = value
		return
	}
	c.mem.Write(op.address, value)
}
