package cpu

// rlc rotates value left, with bit 7 copied into both bit 0 and carry.
func (c *CPU) rlc(value uint8, accumulator bool) uint8 {
	carry := value&0x80 != 0
	result := value<<1 | boolBit(carry)
	c.setRotateFlags(result, carry, accumulator)
	return result
}

// rrc rotates value right, with bit 0 copied into both bit 7 and carry.
func (c *CPU) rrc(value uint8, accumulator bool) uint8 {
	carry := value&0x01 != 0
	result := value>>1 | (boolBit(carry) << 7)
	c.setRotateFlags(result, carry, accumulator)
	return result
}

// rl rotates value left through the carry flag.
func (c *CPU) rl(value uint8, accumulator bool) uint8 {
	oldCarry := c.isFlagSet(FlagCarry)
	carry := value&0x80 != 0
	result := value<<1 | boolBit(oldCarry)
	c.setRotateFlags(result, carry, accumulator)
	return result
}

// rr rotates value right through the carry flag.
func (c *CPU) rr(value uint8, accumulator bool) uint8 {
	oldCarry := c.isFlagSet(FlagCarry)
	carry := value&0x01 != 0
	result := value>>1 | (boolBit(oldCarry) << 7)
	c.setRotateFlags(result, carry, accumulator)
	return result
}

// setRotateFlags applies the common N=0,H=0,C=carry update; Z is forced to
// 0 for the accumulator-only forms (RLCA/RRCA/RLA/RRA) and computed from
// the result for every CB-prefixed form.
func (c *CPU) setRotateFlags(result uint8, carry, accumulator bool) {
	z := c.zeroFlag(result)
	if accumulator {
		z = clear
	}
	c.setFlags(z, clear, clear, boolTri(carry))
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
