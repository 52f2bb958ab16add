// Package timer implements the Game Boy's DIV/TIMA/TMA/TAC timer: a
// free-running 16-bit counter gated through a selectable bit to drive TIMA,
// with the one-T-state-delayed reload-and-interrupt behavior real hardware
// shows on overflow.
package timer

import (
	"fmt"

	"github.com/dmgcore/dmgcore/internal/state"
)

const (
	DividerRegister = 0xFF04
	CounterRegister = 0xFF05
	ModuloRegister  = 0xFF06
	ControlRegister = 0xFF07
)

// InterruptFlag is the IF bit this controller requests on TIMA overflow.
const InterruptFlag = uint8(1 << 2)

// multiplexerBit maps TAC's low two bits to the counter bit whose falling
// edge increments TIMA: 4096 Hz, 262144 Hz, 65536 Hz, 16384 Hz in that
// opcode order.
var multiplexerBit = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Controller owns DIV/TIMA/TMA/TAC and requests the Timer interrupt.
type Controller struct {
	divider uint16
	counter uint8
	modulo  uint8
	control uint8

	fallingEdge bool
	overflowed  bool // TIMA overflowed last Tick; reload is due next Tick
}

// NewController returns a controller with every register at its post-boot
// value of zero.
func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case DividerRegister:
		return uint8(c.divider >> 8)
	case CounterRegister:
		return c.counter
	case ModuloRegister:
		return c.modulo
	case ControlRegister:
		return c.control | 0xF8
	}
	panic(fmt.Sprintf("timer: illegal read from address 0x%04X", address))
}

func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case DividerRegister:
		c.divider = 0
	case CounterRegister:
		if !c.overflowed {
			c.counter = value
		}
	case ModuloRegister:
		c.modulo = value
	case ControlRegister:
		c.control = value & 0x07
	default:
		panic(fmt.Sprintf("timer: illegal write to address 0x%04X", address))
	}
}

// Tick advances the timer by cycles T-states, reporting whether the Timer
// interrupt should be requested as a result.
func (c *Controller) Tick(cycles uint8) bool {
	requestInterrupt := false
	for i := uint8(0); i < cycles; i++ {
		requestInterrupt = c.tickOne() || requestInterrupt
	}
	return requestInterrupt
}

func (c *Controller) tickOne() bool {
	interrupt := false

	if c.overflowed {
		c.counter = c.modulo
		c.overflowed = false
		interrupt = true
	}

	c.divider++

	signal := c.isEnabled() && c.divider&c.selectedBit() != 0
	if !signal && c.fallingEdge {
		c.counter++
		if c.counter == 0x00 {
			c.overflowed = true
		}
	}
	c.fallingEdge = signal

	return interrupt
}

func (c *Controller) isEnabled() bool { return c.control&0x04 != 0 }

func (c *Controller) selectedBit() uint16 { return multiplexerBit[c.control&0x03] }

var _ state.Stater = (*Controller)(nil)

func (c *Controller) Save(s *state.State) {
	s.Write16(c.divider)
	s.Write8(c.counter)
	s.Write8(c.modulo)
	s.Write8(c.control)
	s.WriteBool(c.fallingEdge)
	s.WriteBool(c.overflowed)
}

func (c *Controller) Load(s *state.State) {
	c.divider = s.Read16()
	c.counter = s.Read8()
	c.modulo = s.Read8()
	c.control = s.Read8()
	c.fallingEdge = s.ReadBool()
	c.overflowed = s.ReadBool()
}
