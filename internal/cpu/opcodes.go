package cpu

// instruction is a documented 6502 instruction.
type instruction struct {
	name    string
	opcodes []byte
	exec    func(c *CPU, opcode byte)
}

// instructions lists all documented instructions with their opcodes.
var instructions = []instruction{
	{name: "adc", opcodes: []byte{0x61, 0x65, 0x69, 0x6D, 0x71, 0x75, 0x79, 0x7D}, exec: (*CPU).adc},
	{name: "and", opcodes: []byte{0x21, 0x25, 0x29, 0x2D, 0x31, 0x35, 0x39, 0x3D}, exec: (*CPU).and},
	{name: "asl", opcodes: []byte{0x06, 0x0A, 0x0E, 0x16, 0x1E}, exec: (*CPU).asl},
	{name: "bcc", opcodes: []byte{0x90}, exec: (*CPU).bcc},
	{name: "bcs", opcodes: []byte{0xB0}, exec: (*CPU).bcs},
	{name: "beq", opcodes: []byte{0xF0}, exec: (*CPU).beq},
	{name: "bit", opcodes: []byte{0x24, 0x2C}, exec: (*CPU).bit},
	{name: "bmi", opcodes: []byte{0x30}, exec: (*CPU).bmi},
	{name: "bne", opcodes: []byte{0xD0}, exec: (*CPU).bne},
	{name: "bpl", opcodes: []byte{0x10}, exec: (*CPU).bpl},
	{name: "brk", opcodes: []byte{0x00}, exec: (*CPU).brk},
	{name: "bvc", opcodes: []byte{0x50}, exec: (*CPU).bvc},
	{name: "bvs", opcodes: []byte{0x70}, exec: (*CPU).bvs},
	{name: "clc", opcodes: []byte{0x18}, exec: (*CPU).clc},
	{name: "cld", opcodes: []byte{0xD8}, exec: (*CPU).cld},
	{name: "cli", opcodes: []byte{0x58}, exec: (*CPU).cli},
	{name: "clv", opcodes: []byte{0xB8}, exec: (*CPU).clv},
	{name: "cmp", opcodes: []byte{0xC1, 0xC5, 0xC9, 0xCD, 0xD1, 0xD5, 0xD9, 0xDD}, exec: (*CPU).cmp},
	{name: "cpx", opcodes: []byte{0xE0, 0xE4, 0xEC}, exec: (*CPU).cpx},
	{name: "cpy", opcodes: []byte{0xC0, 0xC4, 0xCC}, exec: (*CPU).cpy},
	{name: "dec", opcodes: []byte{0xC6, 0xCE, 0xD6, 0xDE}, exec: (*CPU).dec},
	{name: "dex", opcodes: []byte{0xCA}, exec: (*CPU).dex},
	{name: "dey", opcodes: []byte{0x88}, exec: (*CPU).dey},
	{name: "eor", opcodes: []byte{0x41, 0x45, 0x49, 0x4D, 0x51, 0x55, 0x59, 0x5D}, exec: (*CPU).eor},
	{name: "inc", opcodes: []byte{0xE6, 0xEE, 0xF6, 0xFE}, exec: (*CPU).inc},
	{name: "inx", opcodes: []byte{0xE8}, exec: (*CPU).inx},
	{name: "iny", opcodes: []byte{0xC8}, exec: (*CPU).iny},
	{name: "jmp", opcodes: []byte{0x4C, 0x6C}, exec: (*CPU).jmp},
	{name: "jsr", opcodes: []byte{0x20}, exec: (*CPU).jsr},
	{name: "lda", opcodes: []byte{0xA1, 0xA5, 0xA9, 0xAD, 0xB1, 0xB5, 0xB9, 0xBD}, exec: (*CPU).lda},
	{name: "ldx", opcodes: []byte{0xA2, 0xA6, 0xAE, 0xB6, 0xBE}, exec: (*CPU).ldx},
	{name: "ldy", opcodes: []byte{0xA0, 0xA4, 0xAC, 0xB4, 0xBC}, exec: (*CPU).ldy},
	{name: "lsr", opcodes: []byte{0x46, 0x4A, 0x4E, 0x56, 0x5E}, exec: (*CPU).lsr},
	{name: "nop", opcodes: []byte{0xEA}, exec: (*CPU).nop},
	{name: "ora", opcodes: []byte{0x01, 0x05, 0x09, 0x0D, 0x11, 0x15, 0x19, 0x1D}, exec: (*CPU).ora},
	{name: "pha", opcodes: []byte{0x48}, exec: (*CPU).pha},
	{name: "php", opcodes: []byte{0x08}, exec: (*CPU).php},
	{name: "pla", opcodes: []byte{0x68}, exec: (*CPU).pla},
	{name: "plp", opcodes: []byte{0x28}, exec: (*CPU).plp},
	{name: "rol", opcodes: []byte{0x26, 0x2A, 0x2E, 0x36, 0x3E}, exec: (*CPU).rol},
	{name: "ror", opcodes: []byte{0x66, 0x6A, 0x6E, 0x76, 0x7E}, exec: (*CPU).ror},
	{name: "rti", opcodes: []byte{0x40}, exec: (*CPU).rti},
	{name: "rts", opcodes: []byte{0x60}, exec: (*CPU).rts},
	{name: "sbc", opcodes: []byte{0xE1, 0xE5, 0xE9, 0xED, 0xF1, 0xF5, 0xF9, 0xFD}, exec: (*CPU).sbc},
	{name: "sec", opcodes: []byte{0x38}, exec: (*CPU).sec},
	{name: "sed", opcodes: []byte{0xF8}, exec: (*CPU).sed},
	{name: "sei", opcodes: []byte{0x78}, exec: (*CPU).sei},
	{name: "sta", opcodes: []byte{0x81, 0x85, 0x8D, 0x91, 0x95, 0x99, 0x9D}, exec: (*CPU).sta},
	{name: "stx", opcodes: []byte{0x86, 0x8E, 0x96}, exec: (*CPU).stx},
	{name: "sty", opcodes: []byte{0x84, 0x8C, 0x94}, exec: (*CPU).sty},
	{name: "tax", opcodes: []byte{0xAA}, exec: (*CPU).tax},
	{name: "tay", opcodes: []byte{0xA8}, exec: (*CPU).tay},
	{name: "tsx", opcodes: []byte{0xBA}, exec: (*CPU).tsx},
	{name: "txa", opcodes: []byte{0x8A}, exec: (*CPU).txa},
	{name: "txs", opcodes: []byte{0x9A}, exec: (*CPU).txs},
	{name: "tya", opcodes: []byte{0x98}, exec: (*CPU).tya},
}

// opcodes maps every opcode to its instruction, nil for undocumented opcodes.
var opcodes [256]*instruction

func init() {
	for i := range instructions {
		ins := &instructions[i]
		for _, opcode := range ins.opcodes {
			if opcodes[opcode] != nil {
				panic("duplicate opcode " + opcodes[opcode].name + " " + ins.name)
			}
			opcodes[opcode] = ins
		}
	}
}

// Mnemonic returns the lower case mnemonic of a documented opcode.
func Mnemonic(opcode byte) (string, bool) {
	ins := opcodes[opcode]
	if ins == nil {
		return "", false
	}
	return ins.name, true
}
