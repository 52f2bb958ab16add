// Package serial implements the Game Boy's serial port (SB/SC) well enough
// to satisfy software that only cares about the transfer-complete interrupt
// and the loopback behavior of an unconnected link cable: no link partner is
// ever attached, so every transfer simply completes on its own after the
// modeled shift period.
package serial

import (
	"fmt"

	"github.com/dmgcore/dmgcore/internal/state"
)

const (
	DataRegister    = 0xFF01 // SB
	ControlRegister = 0xFF02 // SC
)

// InterruptFlag is the IF bit requested when a transfer completes.
const InterruptFlag = uint8(1 << 3)

// shiftPeriod is the T-state cost of one 8-bit transfer at the internal
// clock (8192 Hz): 4194304 / 8192 = 512 T-states per bit, eight bits.
const shiftPeriod = 512 * 8

// Controller owns SB and SC.
type Controller struct {
	data    uint8
	control uint8

	transferring bool
	remaining    int
}

func NewController() *Controller {
	return &Controller{}
}

func (s *Controller) Read(address uint16) uint8 {
	switch address {
	case DataRegister:
		return s.data
	case ControlRegister:
		return s.control | 0x7E
	}
	panic(fmt.Sprintf("serial: illegal read from address 0x%04X", address))
}

func (s *Controller) Write(address uint16, value uint8) {
	switch address {
	case DataRegister:
		s.data = value
	case ControlRegister:
		s.control = value & 0x81
		if s.control&0x80 != 0 {
			s.transferring = true
			s.remaining = shiftPeriod
		}
	default:
		panic(fmt.Sprintf("serial: illegal write to address 0x%04X", address))
	}
}

// Tick advances an in-progress transfer by cycles T-states, reporting
// whether it just completed and the Serial interrupt should be requested.
func (s *Controller) Tick(cycles uint8) bool {
	if !s.transferring {
		return false
	}
	s.remaining -= int(cycles)
	if s.remaining > 0 {
		return false
	}
	s.transferring = false
	s.control &^= 0x80
	return true
}

var _ state.Stater = (*Controller)(nil)

func (s *Controller) Save(st *state.State) {
	st.Write8(s.data)
	st.Write8(s.control)
	st.WriteBool(s.transferring)
	st.Write32(uint32(s.remaining))
}

func (s *Controller) Load(st *state.State) {
	s.data = st.Read8()
	s.control = st.Read8()
	s.transferring = st.ReadBool()
	s.remaining = int(st.Read32())
}
