package cpu

// add8 computes a+b, setting Z/N/H/C per spec.md's ADD row, and returns the
// 8-bit wrapped result.
func (c *CPU) add8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	result := uint8(sum)
	c.setFlags(c.zeroFlag(result), clear,
		boolTri((a&0xF)+(b&0xF) > 0xF),
		boolTri(sum > 0xFF))
	return result
}

// adc8 computes a+b+carry.
func (c *CPU) adc8(a, b uint8) uint8 {
	carry := uint16(0)
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	result := uint8(sum)
	c.setFlags(c.zeroFlag(result), clear,
		boolTri((a&0xF)+(b&0xF)+uint8(carry) > 0xF),
		boolTri(sum > 0xFF))
	return result
}

// sub8 computes a-b, setting Z/N/H/C per the SUB row.
func (c *CPU) sub8(a, b uint8) uint8 {
	result := a - b
	c.setFlags(c.zeroFlag(result), flagSet,
		boolTri(a&0xF < b&0xF),
		boolTri(a < b))
	return result
}

// sbc8 computes a-b-carry.
func (c *CPU) sbc8(a, b uint8) uint8 {
	carry := uint8(0)
	if c.isFlagSet(FlagCarry) {
		carry = 1
	}
	result := a - b - carry
	c.setFlags(c.zeroFlag(result), flagSet,
		boolTri(int(a&0xF) < int(b&0xF)+int(carry)),
		boolTri(int(a) < int(b)+int(carry)))
	return result
}

func (c *CPU) and8(a, b uint8) uint8 {
	result := a & b
	c.setFlags(c.zeroFlag(result), clear, flagSet, clear)
	return result
}

func (c *CPU) or8(a, b uint8) uint8 {
	result := a | b
	c.setFlags(c.zeroFlag(result), clear, clear, clear)
	return result
}

func (c *CPU) xor8(a, b uint8) uint8 {
	result := a ^ b
	c.setFlags(c.zeroFlag(result), clear, clear, clear)
	return result
}

// cp8 compares a against b: same flags as sub8, but discards the result.
func (c *CPU) cp8(a, b uint8) {
	c.sub8(a, b)
}

// inc8 increments value by one. Carry is left untouched.
func (c *CPU) inc8(value uint8) uint8 {
	result := value + 1
	c.setFlags(c.zeroFlag(result), clear, boolTri(value&0xF == 0xF), unchanged)
	return result
}

// dec8 decrements value by one. Carry is left untouched.
func (c *CPU) dec8(value uint8) uint8 {
	result := value - 1
	c.setFlags(c.zeroFlag(result), flagSet, boolTri(value&0xF == 0), unchanged)
	return result
}

// daa adjusts A into packed BCD after an 8-bit add/subtract, reading N/H/C
// to decide which correction to apply.
func (c *CPU) daa() {
	a := c.A
	carry := c.isFlagSet(FlagCarry)

	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}

	c.A = a
	c.setFlags(c.zeroFlag(a), unchanged, clear, boolTri(carry))
}

// cpl complements A (bitwise NOT).
func (c *CPU) cpl() {
	c.A = ^c.A
	c.setFlags(unchanged, flagSet, flagSet, unchanged)
}

// ccf flips the carry flag.
func (c *CPU) ccf() {
	c.setFlags(unchanged, clear, clear, boolTri(!c.isFlagSet(FlagCarry)))
}

// scf sets the carry flag.
func (c *CPU) scf() {
	c.setFlags(unchanged, clear, clear, flagSet)
}
