// Package joypad implements the P1 register: two selectable active-low
// input rows (direction, action) and the Joypad interrupt a press raises on
// a high-to-low transition of any currently selected line.
package joypad

import "github.com/dmgcore/dmgcore/internal/state"

const Register = 0xFF00

// InterruptFlag is the IF bit requested on a high-to-low input transition.
const InterruptFlag = uint8(1 << 4)

// Button bit positions within the direction/action bytes passed to
// SetButtons: bit0..bit3.
const (
	Right Button = 1 << iota
	Left
	Up
	Down
)

const (
	A Button = 1 << iota
	B
	Select
	Start
)

type Button = uint8

// Controller owns P1 and the pressed-button state behind it.
type Controller struct {
	selection uint8 // bits 4-5 of P1 as last written, active-low
	direction uint8 // active-high: bit set means pressed
	action    uint8
}

func NewController() *Controller {
	return &Controller{selection: 0x30}
}

func (c *Controller) Read(address uint16) uint8 {
	return 0xC0 | c.selection | c.inputNibble()
}

func (c *Controller) Write(address uint16, value uint8) {
	c.selection = value & 0x30
}

// inputNibble computes P1's low nibble (active-low) for whichever rows are
// currently selected, OR-ing the two rows together if both are selected, as
// real hardware does.
func (c *Controller) inputNibble() uint8 {
	nibble := uint8(0x0F)
	if c.selection&0x10 == 0 { // direction row selected
		nibble &^= c.direction
	}
	if c.selection&0x20 == 0 { // action row selected
		nibble &^= c.action
	}
	return nibble & 0x0F
}

// SetButtons replaces the full pressed-button state and reports whether the
// Joypad interrupt should be requested as a result of the change.
func (c *Controller) SetButtons(direction, action uint8) bool {
	before := c.inputNibble()
	c.direction, c.action = direction, action
	after := c.inputNibble()
	// A bit that was 1 (released) and is now 0 (pressed) on a selected line
	// is a falling edge.
	return before&^after != 0
}

var _ state.Stater = (*Controller)(nil)

func (c *Controller) Save(s *state.State) {
	s.Write8(c.selection)
	s.Write8(c.direction)
	s.Write8(c.action)
}

func (c *Controller) Load(s *state.State) {
	c.selection = s.Read8()
	c.direction = s.Read8()
	c.action = s.Read8()
}
