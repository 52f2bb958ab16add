package cpu

// buildCBTable fills cbOpcodes for every CB-prefixed opcode: `00 op r`
// rotate/shift/swap, `01 b r` BIT, `10 b r` RES, `11 b r` SET. There are no
// undefined CB opcodes — all 256 slots are meaningful.
func buildCBTable() {
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		x, y, z := fieldX(opcode), fieldY(opcode), fieldZ(opcode)
		reg := RegisterID(z)

		switch x {
		case 0:
			rotateOp := cbRotateOps[y]
			cycles := uint8(8)
			if z == 6 {
				cycles = 16
			}
			cbOpcodes[opcode] = instruction{
				name:   cbRotateName[y] + " " + regName[z],
				cycles: cycles,
				exec: func(c *CPU) uint8 {
					c.writeRegister(reg, rotateOp(c, c.readRegister(reg)))
					return 0
				},
			}
		case 1:
			bit := y
			cycles := uint8(8)
			if z == 6 {
				cycles = 12
			}
			cbOpcodes[opcode] = instruction{
				name:   "BIT " + bitName(bit) + "," + regName[z],
				cycles: cycles,
				exec: func(c *CPU) uint8 {
					c.testBit(c.readRegister(reg), bit)
					return 0
				},
			}
		case 2:
			bit := y
			cycles := uint8(8)
			if z == 6 {
				cycles = 16
			}
			cbOpcodes[opcode] = instruction{
				name:   "RES " + bitName(bit) + "," + regName[z],
				cycles: cycles,
				exec: func(c *CPU) uint8 {
					c.writeRegister(reg, c.resetBit(c.readRegister(reg), bit))
					return 0
				},
			}
		case 3:
			bit := y
			cycles := uint8(8)
			if z == 6 {
				cycles = 16
			}
			cbOpcodes[opcode] = instruction{
				name:   "SET " + bitName(bit) + "," + regName[z],
				cycles: cycles,
				exec: func(c *CPU) uint8 {
					c.writeRegister(reg, c.setBit(c.readRegister(reg), bit))
					return 0
				},
			}
		}
	}
}

var bitDigits = [8]string{"0", "1", "2", "3", "4", "5", "6", "7"}

func bitName(n uint8) string { return bitDigits[n] }
