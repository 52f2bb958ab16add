package cpu

// This file documents and implements the bit-field split of an opcode byte
// into the xx/yyy/zzz groups spec.md describes. The dispatch tables built
// in table.go are generated from these fields at init time rather than
// re-derived on every fetch, but the field meanings are exactly spec.md's:
//
//	bit:     7 6 5 4 3 2 1 0
//	field:   x x y y y z z z
//
// RegisterID's own constants already line up with the zzz/yyy 3-bit
// register encoding (B=000 ... A=111, 110=indirect-via-HL), so a field
// value can be used directly as a RegisterID.

func fieldX(opcode uint8) uint8 { return opcode >> 6 & 0x3 }
func fieldY(opcode uint8) uint8 { return opcode >> 3 & 0x7 }
func fieldZ(opcode uint8) uint8 { return opcode & 0x7 }
func fieldP(opcode uint8) uint8 { return fieldY(opcode) >> 1 & 0x3 }
func fieldQ(opcode uint8) uint8 { return fieldY(opcode) & 0x1 }

// aluOps lists the eight 8-bit ALU operations in opcode order, used by both
// the 0x80-0xBF block (register operand) and the 0xC6-0xFE block (immediate
// operand).
var aluOps = [8]func(c *CPU, operand uint8){
	func(c *CPU, v uint8) { c.A = c.add8(c.A, v) },
	func(c *CPU, v uint8) { c.A = c.adc8(c.A, v) },
	func(c *CPU, v uint8) { c.A = c.sub8(c.A, v) },
	func(c *CPU, v uint8) { c.A = c.sbc8(c.A, v) },
	func(c *CPU, v uint8) { c.A = c.and8(c.A, v) },
	func(c *CPU, v uint8) { c.A = c.xor8(c.A, v) },
	func(c *CPU, v uint8) { c.A = c.or8(c.A, v) },
	func(c *CPU, v uint8) { c.cp8(c.A, v) },
}

// cbRotateOps lists the eight CB-prefixed rotate/shift/swap operations in
// opcode order.
var cbRotateOps = [8]func(c *CPU, v uint8) uint8{
	func(c *CPU, v uint8) uint8 { return c.rlc(v, false) },
	func(c *CPU, v uint8) uint8 { return c.rrc(v, false) },
	func(c *CPU, v uint8) uint8 { return c.rl(v, false) },
	func(c *CPU, v uint8) uint8 { return c.rr(v, false) },
	func(c *CPU, v uint8) uint8 { return c.sla(v) },
	func(c *CPU, v uint8) uint8 { return c.sra(v) },
	func(c *CPU, v uint8) uint8 { return c.swap(v) },
	func(c *CPU, v uint8) uint8 { return c.srl(v) },
}
