package cpu

// setZN sets the Z and N flags based on the value.
func (c *CPU) setZN(value byte) {
	c.reg.P.Set(FlagZero, value == 0)
	c.reg.P.Set(FlagNegative, value&0x80 != 0)
}

// compare compares two values and updates the Z, N and C flags accordingly,
// the register itself is not modified.
func (c *CPU) compare(register, value byte) {
	c.reg.P.Set(FlagCarry, register >= value)
	c.reg.P.Set(FlagZero, register == value)
	c.reg.P.Set(FlagNegative, (register-value)&0x80 != 0)
}

// addWithCarry adds the value and the carry flag to the accumulator and
// updates the N, V, Z and C flags. Subtraction is an addition of the one's
// complement of the value.
func (c *CPU) addWithCarry(value byte) {
	a := c.reg.A
	sum := uint16(a) + uint16(value)
	if c.reg.P.Carry() {
		sum++
	}
	result := byte(sum)

	c.reg.P.Set(FlagCarry, sum > 0xFF)
	c.reg.P.Set(FlagOverflow, overflow(a, value, result))
	c.reg.A = result
	c.setZN(result)
}

// overflow returns whether both operands share a sign that differs from the
// sign of the result.
func overflow(a, b, result byte) bool {
	return (a^result)&(b^result)&0x80 != 0
}
