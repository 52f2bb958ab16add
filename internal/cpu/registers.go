package cpu

// Register represents one of the Game Boy's 8-bit registers.
type Register = uint8

// RegisterID is the 3-bit field used by the opcode decoder to select an
// 8-bit register (or, for the value 6, "memory at HL" rather than a real
// register).
type RegisterID uint8

const (
	RegB RegisterID = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegHLIndirect
	RegA
)

// PairID is the 2-bit field used to select a 16-bit register pair. For
// PUSH/POP the Slot3 position means AF instead of SP.
type PairID uint8

const (
	PairBC PairID = iota
	PairDE
	PairHL
	PairSPOrAF
)

// Registers holds the eight 8-bit architectural registers. BC/DE/HL/AF are
// derived views over the halves rather than stored fields, so there is no
// cache to fall out of sync: reading a pair concatenates the current half
// values, writing a pair writes both halves.
type Registers struct {
	A, F Register
	B, C Register
	D, E Register
	H, L Register
}

// Reset restores the register file to its documented post-boot-ROM state.
func (r *Registers) Reset() {
	r.A, r.F = 0x01, 0xB0
	r.B, r.C = 0x00, 0x13
	r.D, r.E = 0x00, 0xD8
	r.H, r.L = 0x01, 0x4D
}

func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// AF reports the F register's low nibble as always zero, matching hardware
// even if something ever poked r.F directly without going through SetAF.
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F&0xF0) }

func (r *Registers) SetBC(v uint16) { r.B, r.C = uint8(v>>8), uint8(v) }
func (r *Registers) SetDE(v uint16) { r.D, r.E = uint8(v>>8), uint8(v) }
func (r *Registers) SetHL(v uint16) { r.H, r.L = uint8(v>>8), uint8(v) }

// SetAF sets A and F from a 16-bit value, forcing F's low nibble to zero
// regardless of the source (this is what POP AF must do).
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v) & 0xF0
}

// pairGet/pairSet resolve a PairID against the BC/DE/HL trio. SP and AF are
// handled by the caller, since which one a PairID=3 means depends on
// context (ALU/LD vs PUSH/POP).
func (r *Registers) pairGet(id PairID) uint16 {
	switch id {
	case PairBC:
		return r.BC()
	case PairDE:
		return r.DE()
	case PairHL:
		return r.HL()
	}
	panic("cpu: pairGet called with PairSPOrAF")
}

func (r *Registers) pairSet(id PairID, v uint16) {
	switch id {
	case PairBC:
		r.SetBC(v)
	case PairDE:
		r.SetDE(v)
	case PairHL:
		r.SetHL(v)
	default:
		panic("cpu: pairSet called with PairSPOrAF")
	}
}
