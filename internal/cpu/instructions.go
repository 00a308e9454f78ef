package cpu

// Load and store

func (c *CPU) lda(opcode byte) {
	c.reg.A = c.resolveFull(opcode).value
	c.setZN(c.reg.A)
}

func (c *CPU) ldx(opcode byte) {
	c.reg.X = c.resolvePartial(opcode, IndexY).value
	c.setZN(c.reg.X)
}

func (c *CPU) ldy(opcode byte) {
	c.reg.Y = c.resolvePartial(opcode, IndexX).value
	c.setZN(c.reg.Y)
}

func (c *CPU) sta(opcode byte) {
	op := c.resolveFull(opcode)
	c.mem.Write(op.address, c.reg.A)
}

func (c *CPU) stx(opcode byte) {
	op := c.resolvePartial(opcode, IndexY)
	c.mem.Write(op.address, c.reg.X)
}

func (c *CPU) sty(opcode byte) {
	op := c.resolvePartial(opcode, IndexX)
	c.mem.Write(op.address, c.reg.Y)
}

// Register transfer

func (c *CPU) tax(byte) {
	c.reg.X = c.reg.A
	c.setZN(c.reg.X)
}

func (c *CPU) tay(byte) {
	c.reg.Y = c.reg.A
	c.setZN(c.reg.Y)
}

func (c *CPU) tsx(byte) {
	c.reg.X = c.reg.SP
	c.setZN(c.reg.X)
}

func (c *CPU) txa(byte) {
	c.reg.A = c.reg.X
	c.setZN(c.reg.A)
}

// txs is the only transfer that does not change flags.
func (c *CPU) txs(byte) {
	c.reg.SP = c.reg.X
}

func (c *CPU) tya(byte) {
	c.reg.A = c.reg.Y
	c.setZN(c.reg.A)
}

// Stack

func (c *CPU) pha(byte) {
	c.push(c.reg.A)
}

func (c *CPU) php(byte) {
	c.push(byte(c.reg.P) | byte(FlagBreak) | byte(FlagUnused))
}

func (c *CPU) pla(byte) {
	c.reg.A = c.pull()
	c.setZN(c.reg.A)
}

func (c *CPU) plp(byte) {
	c.pullStatus()
}

// Logical

func (c *CPU) and(opcode byte) {
	c.reg.A &= c.resolveFull(opcode).value
	c.setZN(c.reg.A)
}

func (c *CPU) eor(opcode byte) {
	c.reg.A ^= c.resolveFull(opcode).value
	c.setZN(c.reg.A)
}

func (c *CPU) ora(opcode byte) {
	c.reg.A |= c.resolveFull(opcode).value
	c.setZN(c.reg.A)
}

func (c *CPU) bit(opcode byte) {
	value := c.resolvePartial(opcode, IndexX).value
	c.reg.P.Set(FlagZero, c.reg.A&value == 0)
	c.reg.P.Set(FlagOverflow, value&0x40 != 0)
	c.reg.P.Set(FlagNegative, value&0x80 != 0)
}

// Arithmetic

func (c *CPU) adc(opcode byte) {
	c.addWithCarry(c.resolveFull(opcode).value)
}

func (c *CPU) sbc(opcode byte) {
	c.addWithCarry(^c.resolveFull(opcode).value)
}

func (c *CPU) cmp(opcode byte) {
	c.compare(c.reg.A, c.resolveFull(opcode).value)
}

func (c *CPU) cpx(opcode byte) {
	c.compare(c.reg.X, c.resolvePartial(opcode, IndexX).value)
}

func (c *CPU) cpy(opcode byte) {
	c.compare(c.reg.Y, c.resolvePartial(opcode, IndexX).value)
}

// Increment and decrement

func (c *CPU) inc(opcode byte) {
	op := c.resolvePartial(opcode, IndexX)
	value := op.value + 1
	c.mem.Write(op.address, value)
	c.setZN(value)
}

func (c *CPU) inx(byte) {
	c.reg.X++
	c.setZN(c.reg.X)
}

func (c *CPU) iny(byte) {
	c.reg.Y++
	c.setZN(c.reg.Y)
}

func (c *CPU) dec(opcode byte) {
	op := c.resolvePartial(opcode, IndexX)
	value := op.value - 1
	c.mem.Write(op.address, value)
	c.setZN(value)
}

func (c *CPU) dex(byte) {
	c.reg.X--
	c.setZN(c.reg.X)
}

func (c *CPU) dey(byte) {
	c.reg.Y--
	c.setZN(c.reg.Y)
}

// Shifts and rotates

func (c *CPU) asl(opcode byte) {
	op := c.resolvePartial(opcode, IndexX)
	c.reg.P.Set(FlagCarry, op.value&0x80 != 0)
	value := op.value << 1
	c.store(op, value)
	c.setZN(value)
}

func (c *CPU) lsr(opcode byte) {
	op := c.resolvePartial(opcode, IndexX)
	c.reg.P.Set(FlagCarry, op.value&0x01 != 0)
	value := op.value >> 1
	c.store(op, value)
	c.setZN(value)
}

func (c *CPU) rol(opcode byte) {
	op := c.resolvePartial(opcode, IndexX)
	value := op.value << 1
	if c.reg.P.Carry() {
		value |= 0x01
	}
	c.reg.P.Set(FlagCarry, op.value&0x80 != 0)
	c.store(op, value)
	c.setZN(value)
}

func (c *CPU) ror(opcode byte) {
	op := c.resolvePartial(opcode, IndexX)
	value := op.value >> 1
	if c.reg.P.Carry() {
		value |= 0x80
	}
	c.reg.P.Set(FlagCarry, op.value&0x01 != 0)
	c.store(op, value)
	c.setZN(value)
}

// Jumps and calls

func (c *CPU) jmp(opcode byte) {
	mode := Absolute
	if opcode == 0x6C {
		mode = Indirect
	}
	c.reg.PC = c.resolve(mode).address
}

// jsr pushes the address of its own last byte, RTS adds 1 to it.
func (c *CPU) jsr(byte) {
	target := c.fetchWord()
	c.pushWord(c.reg.PC - 1)
	c.reg.PC = target
}

func (c *CPU) rts(byte) {
	c.reg.PC = c.pullWord() + 1
}

// brk skips a padding byte, saves the return address and the status with the
// break flag set, and continues at the IRQ handler.
func (c *CPU) brk(byte) {
	c.pushWord(c.reg.PC + 1)
	c.push(byte(c.reg.P) | byte(FlagBreak) | byte(FlagUnused))
	c.reg.P.Set(FlagInterrupt, true)
	c.reg.PC = c.mem.ReadWord(IRQVector)
}

func (c *CPU) rti(byte) {
	c.pullStatus()
	c.reg.PC = c.pullWord()
}

// Branches

// branch consumes the relative offset and takes the branch if the condition
// holds.
func (c *CPU) branch(condition bool) {
	target := c.resolve(Relative).address
	if condition {
		c.reg.PC = target
	}
}

func (c *CPU) bcc(byte) { c.branch(!c.reg.P.Carry()) }
func (c *CPU) bcs(byte) { c.branch(c.reg.P.Carry()) }
func (c *CPU) beq(byte) { c.branch(c.reg.P.Zero()) }
func (c *CPU) bmi(byte) { c.branch(c.reg.P.Negative()) }
func (c *CPU) bne(byte) { c.branch(!c.reg.P.Zero()) }
func (c *CPU) bpl(byte) { c.branch(!c.reg.P.Negative()) }
func (c *CPU) bvc(byte) { c.branch(!c.reg.P.Overflow()) }
func (c *CPU) bvs(byte) { c.branch(c.reg.P.Overflow()) }

// Status flags

func (c *CPU) clc(byte) { c.reg.P.Set(FlagCarry, false) }
func (c *CPU) cld(byte) { c.reg.P.Set(FlagDecimal, false) }
func (c *CPU) cli(byte) { c.reg.P.Set(FlagInterrupt, false) }
func (c *CPU) clv(byte) { c.reg.P.Set(FlagOverflow, false) }
func (c *CPU) sec(byte) { c.reg.P.Set(FlagCarry, true) }
func (c *CPU) sed(byte) { c.reg.P.Set(FlagDecimal, true) }
func (c *CPU) sei(byte) { c.reg.P.Set(FlagInterrupt, true) }

func (c *CPU) nop(byte) {}
