package cpu

// decodeBlock11 covers 0xC0-0xFF: conditional/unconditional control flow,
// stack operations, high-page loads, immediate-operand ALU, interrupt
// control (DI/EI) and the CB prefix. The opcodes spec.md documents as
// permanently undefined fall out of this block's z=3,4,5 groups.
func decodeBlock11(opcode, y, z uint8) instruction {
	switch z {
	case 0:
		return decodeBlock11Z0(opcode, y)
	case 1:
		return decodeBlock11Z1(opcode, y)
	case 2:
		return decodeBlock11Z2(opcode, y)
	case 3:
		return decodeBlock11Z3(opcode, y)
	case 4:
		return decodeBlock11Z4(opcode, y)
	case 5:
		return decodeBlock11Z5(opcode, y)
	case 6:
		op := aluOps[y]
		return instruction{name: aluName[y] + " d8", cycles: 8, exec: func(c *CPU) uint8 {
			op(c, c.fetch())
			return 0
		}}
	case 7:
		target := rstTargets[y]
		return instruction{name: "RST", cycles: 16, exec: func(c *CPU) uint8 {
			c.push(c.PC)
			c.PC = target
			return 0
		}}
	}
	panic("unreachable")
}

func decodeBlock11Z0(opcode, y uint8) instruction {
	switch {
	case y < 4:
		cc := y
		return instruction{name: "RET " + ccName[cc], cycles: 8, exec: func(c *CPU) uint8 {
			if c.condition(cc) {
				c.PC = c.pop()
				return 12
			}
			return 0
		}}
	case y == 4:
		return instruction{name: "LDH (a8),A", cycles: 12, exec: func(c *CPU) uint8 {
			c.bus.Write(0xFF00+uint16(c.fetch()), c.A)
			return 0
		}}
	case y == 5:
		return instruction{name: "ADD SP,e", cycles: 16, exec: func(c *CPU) uint8 {
			c.SP = c.spPlusSigned(int8(c.fetch()))
			return 0
		}}
	case y == 6:
		return instruction{name: "LDH A,(a8)", cycles: 12, exec: func(c *CPU) uint8 {
			c.A = c.bus.Read(0xFF00 + uint16(c.fetch()))
			return 0
		}}
	default: // y == 7
		return instruction{name: "LD HL,SP+e", cycles: 12, exec: func(c *CPU) uint8 {
			c.SetHL(c.spPlusSigned(int8(c.fetch())))
			return 0
		}}
	}
}

func decodeBlock11Z1(opcode, y uint8) instruction {
	p, q := fieldP(opcode), fieldQ(opcode)
	if q == 0 {
		pairID := PairID(p)
		return instruction{name: "POP " + rp2Name[p], cycles: 12, exec: func(c *CPU) uint8 {
			c.setPairForStack(pairID, c.pop())
			return 0
		}}
	}
	switch p {
	case 0:
		return instruction{name: "RET", cycles: 16, exec: func(c *CPU) uint8 { c.PC = c.pop(); return 0 }}
	case 1:
		return instruction{name: "RETI", cycles: 16, exec: func(c *CPU) uint8 {
			c.PC = c.pop()
			c.IME = true
			c.pendingEnableIME = false
			return 0
		}}
	case 2:
		return instruction{name: "JP HL", cycles: 4, exec: func(c *CPU) uint8 { c.PC = c.HL(); return 0 }}
	default: // p == 3
		return instruction{name: "LD SP,HL", cycles: 8, exec: func(c *CPU) uint8 { c.SP = c.HL(); return 0 }}
	}
}

func decodeBlock11Z2(opcode, y uint8) instruction {
	switch {
	case y < 4:
		cc := y
		return instruction{name: "JP " + ccName[cc] + ",a16", cycles: 12, exec: func(c *CPU) uint8 {
			addr := c.fetch16()
			if c.condition(cc) {
				c.PC = addr
				return 4
			}
			return 0
		}}
	case y == 4:
		return instruction{name: "LD (C),A", cycles: 8, exec: func(c *CPU) uint8 {
			c.bus.Write(0xFF00+uint16(c.C), c.A)
			return 0
		}}
	case y == 5:
		return instruction{name: "LD (a16),A", cycles: 16, exec: func(c *CPU) uint8 {
			c.bus.Write(c.fetch16(), c.A)
			return 0
		}}
	case y == 6:
		return instruction{name: "LD A,(C)", cycles: 8, exec: func(c *CPU) uint8 {
			c.A = c.bus.Read(0xFF00 + uint16(c.C))
			return 0
		}}
	default: // y == 7
		return instruction{name: "LD A,(a16)", cycles: 16, exec: func(c *CPU) uint8 {
			c.A = c.bus.Read(c.fetch16())
			return 0
		}}
	}
}

func decodeBlock11Z3(opcode, y uint8) instruction {
	switch y {
	case 0:
		return instruction{name: "JP a16", cycles: 16, exec: func(c *CPU) uint8 { c.PC = c.fetch16(); return 0 }}
	case 1:
		// 0xCB is intercepted directly in executeOpcode; this slot is
		// never reached through normal dispatch.
		return instruction{name: "PREFIX CB", cycles: 0, exec: noExtra}
	case 6:
		return instruction{name: "DI", cycles: 4, exec: func(c *CPU) uint8 {
			c.IME = false
			c.pendingEnableIME = false
			return 0
		}}
	case 7:
		return instruction{name: "EI", cycles: 4, exec: func(c *CPU) uint8 {
			c.pendingEnableIME = true
			return 0
		}}
	default: // 2,3,4,5 are permanently undefined on DMG
		return disallowedOpcode(opcode, false)
	}
}

func decodeBlock11Z4(opcode, y uint8) instruction {
	if y >= 4 {
		return disallowedOpcode(opcode, false)
	}
	cc := y
	return instruction{name: "CALL " + ccName[cc] + ",a16", cycles: 12, exec: func(c *CPU) uint8 {
		addr := c.fetch16()
		if c.condition(cc) {
			c.push(c.PC)
			c.PC = addr
			return 12
		}
		return 0
	}}
}

func decodeBlock11Z5(opcode, y uint8) instruction {
	p, q := fieldP(opcode), fieldQ(opcode)
	if q == 0 {
		pairID := PairID(p)
		return instruction{name: "PUSH " + rp2Name[p], cycles: 16, exec: func(c *CPU) uint8 {
			c.push(c.pairForStack(pairID))
			return 0
		}}
	}
	if p == 0 {
		return instruction{name: "CALL a16", cycles: 24, exec: func(c *CPU) uint8 {
			addr := c.fetch16()
			c.push(c.PC)
			c.PC = addr
			return 0
		}}
	}
	return disallowedOpcode(opcode, false)
}
