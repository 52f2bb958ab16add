package cpu

// decodeBlock00 covers 0x00-0x3F: relative jumps, 16-bit loads, 8/16-bit
// INC/DEC, accumulator rotates, DAA/CPL/CCF/SCF, NOP, STOP, JR, the four
// A-through-(BC)/(DE)/(HL+/-) load forms, LD (nn),SP, and LD r,n.
func decodeBlock00(opcode, y, z uint8) instruction {
	switch z {
	case 0:
		return decodeBlock00Z0(opcode, y)
	case 1:
		return decodeBlock00Z1(opcode, y)
	case 2:
		return decodeBlock00Z2(opcode, y)
	case 3:
		return decodeBlock00Z3(opcode, y)
	case 4:
		return decodeIncDec8(opcode, y, true)
	case 5:
		return decodeIncDec8(opcode, y, false)
	case 6:
		return decodeLoadImmediate8(opcode, y)
	case 7:
		return decodeBlock00Z7(opcode, y)
	}
	panic("unreachable")
}

func decodeBlock00Z0(opcode, y uint8) instruction {
	switch y {
	case 0:
		return instruction{name: "NOP", cycles: 4, exec: noExtra}
	case 1:
		return instruction{name: "LD (a16),SP", cycles: 20, exec: func(c *CPU) uint8 {
			addr := c.fetch16()
			c.bus.Write(addr, uint8(c.SP))
			c.bus.Write(addr+1, uint8(c.SP>>8))
			return 0
		}}
	case 2:
		return instruction{name: "STOP", cycles: 4, exec: func(c *CPU) uint8 {
			c.fetch() // STOP is formally a 2-byte opcode; the second byte is ignored
			c.stopMode = true
			return 0
		}}
	case 3:
		return instruction{name: "JR e", cycles: 12, exec: func(c *CPU) uint8 {
			c.jumpRelative()
			return 0
		}}
	default: // 4-7: JR cc,e
		cc := y - 4
		return instruction{name: "JR " + ccName[cc] + ",e", cycles: 8, exec: func(c *CPU) uint8 {
			e := int8(c.fetch())
			if c.condition(cc) {
				c.PC = uint16(int32(c.PC) + int32(e))
				return 4
			}
			return 0
		}}
	}
}

func decodeBlock00Z1(opcode, y uint8) instruction {
	p, q := fieldP(opcode), fieldQ(opcode)
	if q == 0 {
		pairID := PairID(p)
		return instruction{name: "LD " + rpName[p] + ",d16", cycles: 12, exec: func(c *CPU) uint8 {
			v := c.fetch16()
			if pairID == PairSPOrAF {
				c.SP = v
			} else {
				c.pairSet(pairID, v)
			}
			return 0
		}}
	}
	pairID := PairID(p)
	return instruction{name: "ADD HL," + rpName[p], cycles: 8, exec: func(c *CPU) uint8 {
		var v uint16
		if pairID == PairSPOrAF {
			v = c.SP
		} else {
			v = c.pairGet(pairID)
		}
		c.addHL16(v)
		return 0
	}}
}

func decodeBlock00Z2(opcode, y uint8) instruction {
	p, q := fieldP(opcode), fieldQ(opcode)
	addrName := [4]string{"BC", "DE", "HL+", "HL-"}[p]
	if q == 0 {
		return instruction{name: "LD (" + addrName + "),A", cycles: 8, exec: func(c *CPU) uint8 {
			c.bus.Write(hlIndirectAddr(c, p), c.A)
			return 0
		}}
	}
	return instruction{name: "LD A,(" + addrName + ")", cycles: 8, exec: func(c *CPU) uint8 {
		c.A = c.bus.Read(hlIndirectAddr(c, p))
		return 0
	}}
}

// hlIndirectAddr resolves the rp2 address group used by LD (BC/DE/HL+/HL-),A
// and its inverse, applying the HL post-increment/decrement as a side
// effect for p==2 and p==3.
func hlIndirectAddr(c *CPU, p uint8) uint16 {
	switch p {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		addr := c.HL()
		c.SetHL(addr + 1)
		return addr
	case 3:
		addr := c.HL()
		c.SetHL(addr - 1)
		return addr
	}
	panic("unreachable")
}

func decodeBlock00Z3(opcode, y uint8) instruction {
	p, q := fieldP(opcode), fieldQ(opcode)
	pairID := PairID(p)
	if q == 0 {
		return instruction{name: "INC " + rpName[p], cycles: 8, exec: func(c *CPU) uint8 {
			if pairID == PairSPOrAF {
				c.SP++
			} else {
				c.pairSet(pairID, c.pairGet(pairID)+1)
			}
			return 0
		}}
	}
	return instruction{name: "DEC " + rpName[p], cycles: 8, exec: func(c *CPU) uint8 {
		if pairID == PairSPOrAF {
			c.SP--
		} else {
			c.pairSet(pairID, c.pairGet(pairID)-1)
		}
		return 0
	}}
}

func decodeIncDec8(opcode, y uint8, inc bool) instruction {
	reg := RegisterID(y)
	cycles := uint8(4)
	if y == 6 {
		cycles = 12
	}
	name, op := "DEC "+regName[y], (*CPU).dec8
	if inc {
		name, op = "INC "+regName[y], (*CPU).inc8
	}
	return instruction{name: name, cycles: cycles, exec: func(c *CPU) uint8 {
		c.writeRegister(reg, op(c, c.readRegister(reg)))
		return 0
	}}
}

func decodeLoadImmediate8(opcode, y uint8) instruction {
	reg := RegisterID(y)
	cycles := uint8(8)
	if y == 6 {
		cycles = 12
	}
	return instruction{name: "LD " + regName[y] + ",d8", cycles: cycles, exec: func(c *CPU) uint8 {
		c.writeRegister(reg, c.fetch())
		return 0
	}}
}

func decodeBlock00Z7(opcode, y uint8) instruction {
	switch y {
	case 0:
		return instruction{name: "RLCA", cycles: 4, exec: func(c *CPU) uint8 { c.A = c.rlc(c.A, true); return 0 }}
	case 1:
		return instruction{name: "RRCA", cycles: 4, exec: func(c *CPU) uint8 { c.A = c.rrc(c.A, true); return 0 }}
	case 2:
		return instruction{name: "RLA", cycles: 4, exec: func(c *CPU) uint8 { c.A = c.rl(c.A, true); return 0 }}
	case 3:
		return instruction{name: "RRA", cycles: 4, exec: func(c *CPU) uint8 { c.A = c.rr(c.A, true); return 0 }}
	case 4:
		return instruction{name: "DAA", cycles: 4, exec: func(c *CPU) uint8 { c.daa(); return 0 }}
	case 5:
		return instruction{name: "CPL", cycles: 4, exec: func(c *CPU) uint8 { c.cpl(); return 0 }}
	case 6:
		return instruction{name: "SCF", cycles: 4, exec: func(c *CPU) uint8 { c.scf(); return 0 }}
	case 7:
		return instruction{name: "CCF", cycles: 4, exec: func(c *CPU) uint8 { c.ccf(); return 0 }}
	}
	panic("unreachable")
}

// jumpRelative implements the unconditional JR e.
func (c *CPU) jumpRelative() {
	e := int8(c.fetch())
	c.PC = uint16(int32(c.PC) + int32(e))
}
