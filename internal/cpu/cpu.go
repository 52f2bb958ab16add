// Package cpu implements the Sharp LR35902 instruction set: the decoder,
// execution engine and interrupt dispatcher at the heart of a Game Boy
// emulator. It knows nothing about memory mapping, cartridges, or any
// peripheral beyond the minimal Bus contract it is handed at construction.
package cpu

import (
	"fmt"

	"github.com/dmgcore/dmgcore/internal/interrupts"
	"github.com/dmgcore/dmgcore/internal/state"
)

// CPU represents the Game Boy CPU. It is responsible for decoding and
// executing instructions against a Bus, and for dispatching interrupts
// between instructions.
type CPU struct {
	Registers

	SP uint16
	PC uint16
	IME bool

	// pendingEnableIME implements EI's one-instruction-delayed contract:
	// EI sets this rather than IME directly, and handleInterrupt promotes
	// it to IME at the end of EI's own step, after that step's dispatch
	// check. The instruction after EI therefore runs with IME already set
	// (not with the IME from before EI), and no interrupt is dispatched
	// until that instruction has completed.
	pendingEnableIME bool

	haltMode bool
	stopMode bool
	// haltBug is armed when HALT is reached with IME=0 and an interrupt
	// already pending: the next fetch re-reads the same byte.
	haltBug bool

	bus Bus
}

// NewCPU creates a CPU wired to bus, with the documented post-boot-ROM
// register state.
func NewCPU(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Registers.Reset()
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IME = true
	return c
}

// DecodeError is raised when execute_opcode fetches a byte that has no
// defined instruction. Per spec.md this is always fatal — the caller is
// expected to recover() or let the program crash with a diagnostic naming
// PC and the offending opcode, never to silently treat it as a NOP.
type DecodeError struct {
	PC     uint16
	Opcode uint8
	CB     bool
}

func (e *DecodeError) Error() string {
	if e.CB {
		return fmt.Sprintf("cpu: undefined CB opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: undefined opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// Step executes at most one instruction, dispatches at most one interrupt,
// notifies the bus of the cycles consumed, and returns the number of
// T-states that elapsed. This is the only public entry point into the
// core's execution loop.
func (c *CPU) Step(sink VideoSink) uint32 {
	var cycles uint32

	if c.haltMode {
		// HALT consumes a fixed cycle without fetching, for as long as
		// no interrupt is pending.
		cycles = 4
	} else {
		cycles = uint32(c.executeOpcode())
	}

	cycles += uint32(c.handleInterrupt())

	c.bus.CycleFlush(uint8(cycles), sink)
	return cycles
}

// executeOpcode fetches, decodes and runs a single instruction, returning
// its T-state cost including any conditional extra cycles.
func (c *CPU) executeOpcode() uint8 {
	opcode := c.fetch()

	if c.haltBug {
		// The HALT bug re-reads the byte just fetched: back PC up by one,
		// as if this fetch had not advanced it, so the instruction runs
		// with PC still at its own opcode and the next read (an operand
		// fetch, or the next opcode fetch) returns this byte again.
		c.PC--
		c.haltBug = false
	}

	if opcode == 0xCB {
		suffix := c.fetch()
		instr := cbOpcodes[suffix]
		if instr.exec == nil {
			panic(&DecodeError{PC: c.PC - 2, Opcode: suffix, CB: true})
		}
		return instr.cycles + instr.exec(c)
	}

	instr := primaryOpcodes[opcode]
	if instr.exec == nil {
		panic(&DecodeError{PC: c.PC - 1, Opcode: opcode})
	}
	return instr.cycles + instr.exec(c)
}

// handleInterrupt inspects IF & IE between instructions and, if IME is set
// and an interrupt is pending, vectors to it. It always clears halt_mode
// when an interrupt is pending, even if IME is disabled.
//
// EI's one-instruction delay depends on promoting pendingEnableIME *after*
// this step's dispatch check, not before: EI sets pendingEnableIME during
// its own step, so the dispatch check that same step must still see the old
// IME. The promotion only takes effect in time for the *next* step's check,
// which is what gives the instruction immediately after EI a chance to run
// before any pending interrupt is taken.
func (c *CPU) handleInterrupt() uint8 {
	pendingBit := interrupts.Pending(c.bus.InterruptFlag(), c.bus.InterruptEnable())

	if c.haltMode && pendingBit >= 0 {
		c.haltMode = false
	}

	dispatch := c.IME && pendingBit >= 0

	if c.pendingEnableIME {
		c.IME = true
		c.pendingEnableIME = false
	}

	if !dispatch {
		return 0
	}

	c.bus.SetInterruptFlag(c.bus.InterruptFlag() &^ (1 << uint(pendingBit)))
	c.IME = false

	c.SP--
	c.bus.Write(c.SP, uint8(c.PC>>8))
	c.SP--
	c.bus.Write(c.SP, uint8(c.PC))

	c.PC = interrupts.Vectors[pendingBit]

	return 20
}

// fetch reads the byte at PC and advances PC by one, wrapping mod 2^16.
func (c *CPU) fetch() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

// fetch16 reads a little-endian 16-bit immediate, advancing PC by two.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// readRegister resolves an 8-bit RegisterID, dereferencing (HL) through the bus
// when id is RegHLIndirect.
func (c *CPU) readRegister(id RegisterID) uint8 {
	switch id {
	case RegA:
		return c.A
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	case RegHLIndirect:
		return c.bus.Read(c.HL())
	}
	panic(fmt.Sprintf("cpu: invalid register id %d", id))
}

func (c *CPU) writeRegister(id RegisterID, v uint8) {
	switch id {
	case RegA:
		c.A = v
	case RegB:
		c.B = v
	case RegC:
		c.C = v
	case RegD:
		c.D = v
	case RegE:
		c.E = v
	case RegH:
		c.H = v
	case RegL:
		c.L = v
	case RegHLIndirect:
		c.bus.Write(c.HL(), v)
	default:
		panic(fmt.Sprintf("cpu: invalid register id %d", id))
	}
}

var _ state.Stater = (*CPU)(nil)

// Save writes the full architectural state in a fixed field order.
func (c *CPU) Save(s *state.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.IME)
	s.WriteBool(c.pendingEnableIME)
	s.WriteBool(c.haltMode)
	s.WriteBool(c.stopMode)
	s.WriteBool(c.haltBug)
}

// Load restores state written by Save, in the same field order.
func (c *CPU) Load(s *state.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IME = s.ReadBool()
	c.pendingEnableIME = s.ReadBool()
	c.haltMode = s.ReadBool()
	c.stopMode = s.ReadBool()
	c.haltBug = s.ReadBool()
}
