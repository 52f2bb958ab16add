package joypad

import "testing"

func TestReadReflectsSelectedRowOnly(t *testing.T) {
	c := NewController()
	c.SetButtons(Right|Down, A)
	c.Write(Register, 0x10) // select action row
	if got := c.Read(Register); got&0x0F != 0x0F&^A {
		t.Fatalf("P1 low nibble = %04b, want action row reflected", got&0x0F)
	}

	c.Write(Register, 0x20) // select direction row
	if got := c.Read(Register); got&0x0F != 0x0F&^(Right|Down) {
		t.Fatalf("P1 low nibble = %04b, want direction row reflected", got&0x0F)
	}
}

func TestNoRowSelectedReadsAllHigh(t *testing.T) {
	c := NewController()
	c.SetButtons(Right|Left|Up|Down, A|B|Select|Start)
	c.Write(Register, 0x30)
	if got := c.Read(Register); got&0x0F != 0x0F {
		t.Fatalf("P1 low nibble = %04b, want 1111 when neither row is selected", got&0x0F)
	}
}

func TestPressTriggersInterruptOnlyOnFallingEdge(t *testing.T) {
	c := NewController()
	c.Write(Register, 0x20) // direction row selected
	if c.SetButtons(0, 0) {
		t.Fatalf("no buttons pressed yet, must not request an interrupt")
	}
	if !c.SetButtons(Down, 0) {
		t.Fatalf("pressing Down on the selected row must request an interrupt")
	}
	if c.SetButtons(Down, 0) {
		t.Fatalf("holding Down with no new transition must not request another interrupt")
	}
}

func TestPressOnUnselectedRowDoesNotTriggerInterrupt(t *testing.T) {
	c := NewController()
	c.Write(Register, 0x10) // action row selected, direction deselected
	if c.SetButtons(Down, 0) {
		t.Fatalf("pressing Down while only the action row is selected must not request an interrupt")
	}
}

func TestBothRowsSelectedOrTogether(t *testing.T) {
	c := NewController()
	c.SetButtons(Right, A)
	c.Write(Register, 0x00) // both rows selected
	if got := c.Read(Register); got&0x0F != 0x0F&^(Right|A) {
		t.Fatalf("P1 low nibble = %04b, want both rows ORed together", got&0x0F)
	}
}
