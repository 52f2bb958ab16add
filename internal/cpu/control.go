package cpu

// condition evaluates one of the four 2-bit condition codes against the
// current flags: 00=NZ, 01=Z, 10=NC, 11=C.
func (c *CPU) condition(cc uint8) bool {
	switch cc & 0x3 {
	case 0:
		return !c.isFlagSet(FlagZero)
	case 1:
		return c.isFlagSet(FlagZero)
	case 2:
		return !c.isFlagSet(FlagCarry)
	case 3:
		return c.isFlagSet(FlagCarry)
	}
	panic("unreachable")
}

// rstTargets maps the 3-bit field of an RST opcode to its fixed vector.
var rstTargets = [8]uint16{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38}
