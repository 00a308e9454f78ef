// Package disasm disassembles single 6502 instructions for execution traces.
package disasm

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/cpu6502"
)

// Reader provides read access to the memory the instructions are decoded from.
type Reader interface {
	Read(address uint16) byte
}

// Instruction is a decoded instruction.
type Instruction struct {
	Address    uint16
	Opcodes    []byte // opcode followed by the operand bytes
	Name       string
	Param      string
	Unofficial bool
}

// Size returns the number of bytes of the instruction.
func (i Instruction) Size() int {
	return len(i.Opcodes)
}

// String returns the instruction in assembler syntax.
func (i Instruction) String() string {
	if i.Param == "" {
		return i.Name
	}
	return i.Name + " " + i.Param
}

// Hex returns the instruction bytes as space separated hex values.
func (i Instruction) Hex() string {
	parts := make([]string, len(i.Opcodes))
	for j, b := range i.Opcodes {
		parts[j] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

type paramReaderFunc func(mem Reader, address uint16) (string, []byte)

var paramReader = map[cpu6502.AddressingMode]paramReaderFunc{
	cpu6502.ImpliedAddressing:     paramReaderImplied,
	cpu6502.ImmediateAddressing:   byteParam("#$%02X"),
	cpu6502.AccumulatorAddressing: paramReaderAccumulator,
	cpu6502.AbsoluteAddressing:    wordParam("$%04X"),
	cpu6502.AbsoluteXAddressing:   wordParam("$%04X,X"),
	cpu6502.AbsoluteYAddressing:   wordParam("$%04X,Y"),
	cpu6502.ZeroPageAddressing:    byteParam("$%02X"),
	cpu6502.ZeroPageXAddressing:   byteParam("$%02X,X"),
	cpu6502.ZeroPageYAddressing:   byteParam("$%02X,Y"),
	cpu6502.RelativeAddressing:    paramReaderRelative,
	cpu6502.IndirectAddressing:    wordParam("($%04X)"),
	cpu6502.IndirectXAddressing:   byteParam("($%02X,X)"),
	cpu6502.IndirectYAddressing:   byteParam("($%02X),Y"),
}

// Decode decodes the instruction at the given address. Bytes that do not
// start a known instruction are returned as a single byte data directive.
func Decode(mem Reader, address uint16) Instruction {
	b := mem.Read(address)
	ins := Instruction{
		Address: address,
		Opcodes: make([]byte, 1, cpu6502.MaxOpcodeSize),
	}
	ins.Opcodes[0] = b

	opcode := cpu6502.Opcodes[b]
	fun, ok := paramReader[opcode.Addressing]
	if opcode.Instruction == nil || !ok {
		ins.Name = ".byte"
		ins.Param = fmt.Sprintf("$%02X", b)
		return ins
	}

	param, operands := fun(mem, address)
	ins.Name = opcode.Instruction.Name
	ins.Param = param
	ins.Unofficial = opcode.Instruction.Unofficial
	ins.Opcodes = append(ins.Opcodes, operands...)
	return ins
}

func paramReaderImplied(Reader, uint16) (string, []byte) {
	return "", nil
}

func paramReaderAccumulator(Reader, uint16) (string, []byte) {
	return "a", nil
}

func byteParam(format string) paramReaderFunc {
	return func(mem Reader, address uint16) (string, []byte) {
		b := mem.Read(address + 1)
		return fmt.Sprintf(format, b), []byte{b}
	}
}

func wordParam(format string) paramReaderFunc {
	return func(mem Reader, address uint16) (string, []byte) {
		b1 := mem.Read(address + 1)
		b2 := mem.Read(address + 2)
		w := uint16(b2)<<8 | uint16(b1)
		return fmt.Sprintf(format, w), []byte{b1, b2}
	}
}

// paramReaderRelative prints the branch destination instead of the offset.
func paramReaderRelative(mem Reader, address uint16) (string, []byte) {
	b := mem.Read(address + 1)
	destination := address + 2 + uint16(int8(b))
	return fmt.Sprintf("$%04X", destination), []byte{b}
}
