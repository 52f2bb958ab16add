package cpu

import "fmt"

// instruction is one entry of a 256-slot dispatch table: a name for
// diagnostics/disassembly, the instruction's base T-state cost, and the
// function that executes it. exec returns any extra T-states incurred
// beyond cycles — nonzero only for the conditional control-flow
// instructions, when their condition is taken.
type instruction struct {
	name   string
	cycles uint8
	exec   func(c *CPU) uint8
}

// primaryOpcodes and cbOpcodes are the two dispatch tables spec.md's §9
// recommends in place of a nested bit-field switch: O(1) lookup, and
// trivially auditable against a published opcode table since every slot is
// filled explicitly (undefined slots get a nil exec, meaning "undefined",
// from disallowedOpcode).
var primaryOpcodes [256]instruction
var cbOpcodes [256]instruction

var rpName = [4]string{"BC", "DE", "HL", "SP"}
var rp2Name = [4]string{"BC", "DE", "HL", "AF"}
var regName = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
var ccName = [4]string{"NZ", "Z", "NC", "C"}
var aluName = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}
var cbRotateName = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func noExtra(_ *CPU) uint8 { return 0 }

func disallowedOpcode(opcode uint8, cb bool) instruction {
	return instruction{
		name:   fmt.Sprintf("(undefined 0x%02X)", opcode),
		cycles: 0,
		exec:   nil,
	}
}

func init() {
	buildPrimaryTable()
	buildCBTable()
}

func buildPrimaryTable() {
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		x, y, z := fieldX(opcode), fieldY(opcode), fieldZ(opcode)

		switch x {
		case 0:
			primaryOpcodes[opcode] = decodeBlock00(opcode, y, z)
		case 1:
			primaryOpcodes[opcode] = decodeBlock01(opcode, y, z)
		case 2:
			primaryOpcodes[opcode] = decodeBlock10(opcode, y, z)
		case 3:
			primaryOpcodes[opcode] = decodeBlock11(opcode, y, z)
		}
	}
}

// decodeBlock01 covers 0x40-0x7F: 8-bit register-to-register loads, with
// 0x76 (LD (HL),(HL) would be) reassigned to HALT.
func decodeBlock01(opcode, y, z uint8) instruction {
	if y == 6 && z == 6 {
		return instruction{name: "HALT", cycles: 4, exec: func(c *CPU) uint8 {
			c.execHalt()
			return 0
		}}
	}
	dst, src := RegisterID(y), RegisterID(z)
	cycles := uint8(4)
	if y == 6 || z == 6 {
		cycles = 8
	}
	return instruction{
		name:   "LD " + regName[y] + "," + regName[z],
		cycles: cycles,
		exec: func(c *CPU) uint8 {
			c.writeRegister(dst, c.readRegister(src))
			return 0
		},
	}
}

// decodeBlock10 covers 0x80-0xBF: 8-bit ALU with A and a register operand.
func decodeBlock10(opcode, y, z uint8) instruction {
	src := RegisterID(z)
	op := aluOps[y]
	cycles := uint8(4)
	if z == 6 {
		cycles = 8
	}
	return instruction{
		name:   aluName[y] + " " + regName[z],
		cycles: cycles,
		exec: func(c *CPU) uint8 {
			op(c, c.readRegister(src))
			return 0
		},
	}
}

// execHalt implements HALT, including the documented HALT-bug decision
// from SPEC_FULL.md §9: if IME is false and an interrupt is already
// pending the moment HALT executes, the next instruction fetch re-reads
// the same byte instead of stalling.
func (c *CPU) execHalt() {
	if !c.IME && c.bus.InterruptFlag()&c.bus.InterruptEnable()&0x1F != 0 {
		c.haltBug = true
		return
	}
	c.haltMode = true
}
