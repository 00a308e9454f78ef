package cpu

// push writes a byte to the stack and decrements the stack pointer. The
// pointer wraps from $00 to $FF and stays in page 1.
func (c *CPU) push(value byte) {
	c.mem.Write(stackBase|uint16(c.reg.SP), value)
	c.reg.SP--
}

// pushWord pushes the high byte first so the word is stored little endian.
func (c *CPU) pushWord(value uint16) {
	c.push(byte(value >> 8))
	c.push(byte(value))
}

// pull increments the stack pointer and reads the byte it points to.
func (c *CPU) pull() byte {
	c.reg.SP++
	return c.mem.Read(stackBase | uint16(c.reg.SP))
}

func (c *CPU) pullWord() uint16 {
	low := uint16(c.pull())
	high := uint16(c.pull())
	return high<<8 | low
}

// pullStatus restores the status register from the stack. The break flag only
// exists on the stack copy and is dropped.
func (c *CPU) pullStatus() {
	p := NewStatus(c.pull())
	p.Set(FlagBreak, false)
	c.reg.P = p
}
