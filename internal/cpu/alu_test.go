package cpu

import "testing"

func TestAdd8Flags(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	result := c.add8(0x3A, 0xC6)
	if result != 0x00 {
		t.Fatalf("result = %02X, want 00", result)
	}
	if c.F != 0xB0 {
		t.Fatalf("F = %02X, want B0 (Z,H,C set)", c.F)
	}
}

func TestAdd8NoFlags(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	result := c.add8(0x10, 0x01)
	if result != 0x11 || c.F != 0x00 {
		t.Fatalf("result=%02X F=%02X, want 11/00", result, c.F)
	}
}

// Sub8 with a larger subtrahend whose low nibble is smaller than the
// minuend's: full borrow (C=1) but no nibble borrow (H=0), matching the
// documented half-carry formula a&0xF < b&0xF.
func TestSub8BorrowNoHalfBorrow(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	result := c.sub8(0x3E, 0x40)
	if result != 0xFE {
		t.Fatalf("result = %02X, want FE", result)
	}
	if c.F != 0x50 {
		t.Fatalf("F = %02X, want 50 (N,C set; H clear since 0xE >= 0x0)", c.F)
	}
}

func TestSub8HalfBorrow(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	result := c.sub8(0x10, 0x01)
	if result != 0x0F {
		t.Fatalf("result = %02X, want 0F", result)
	}
	if c.F != 0x60 {
		t.Fatalf("F = %02X, want 60 (N,H set; no full borrow)", c.F)
	}
}

func TestAdc8IncludesCarryIn(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.setFlag(FlagCarry)
	result := c.adc8(0x0E, 0x01)
	if result != 0x10 {
		t.Fatalf("result = %02X, want 10", result)
	}
	if !c.isFlagSet(FlagHalfCarry) {
		t.Fatalf("H not set: 0xE+0x1+1 carries out of bit 3")
	}
}

func TestSbc8IncludesCarryIn(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.setFlag(FlagCarry)
	result := c.sbc8(0x10, 0x01)
	if result != 0x0E {
		t.Fatalf("result = %02X, want 0E", result)
	}
	if c.isFlagSet(FlagCarry) {
		t.Fatalf("C should be clear: 0x10 >= 0x01+1")
	}
}

func TestAnd8OrXor8(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	if got := c.and8(0xF0, 0x3C); got != 0x30 {
		t.Fatalf("and8 = %02X, want 30", got)
	}
	if !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Fatalf("AND must set H and clear C, got F=%02X", c.F)
	}
	if got := c.or8(0x00, 0x00); got != 0x00 || c.F != 0x80 {
		t.Fatalf("or8(0,0) = %02X F=%02X, want 00/80", got, c.F)
	}
	if got := c.xor8(0xFF, 0xFF); got != 0x00 || c.F != 0x80 {
		t.Fatalf("xor8(FF,FF) = %02X F=%02X, want 00/80", got, c.F)
	}
}

func TestIncDec8LeaveCarryUnchanged(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.setFlag(FlagCarry)
	if got := c.inc8(0xFF); got != 0x00 {
		t.Fatalf("inc8(FF) = %02X, want 00", got)
	}
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagCarry) {
		t.Fatalf("F = %02X, want Z,H,C all set (C preserved)", c.F)
	}
	c.clearFlag(FlagCarry)
	c.setFlag(FlagCarry) // re-set to confirm dec8 also preserves it
	if got := c.dec8(0x01); got != 0x00 {
		t.Fatalf("dec8(1) = %02X, want 00", got)
	}
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagCarry) {
		t.Fatalf("F = %02X, want Z,N,C set after dec8(1)", c.F)
	}
}

func TestDaaAfterAddNibbleOverflow(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.A = c.add8(0x45, 0x38) // binary sum 0x7D; low nibble 0xD > 9 forces +0x06
	c.daa()
	if c.A != 0x83 {
		t.Fatalf("A = %02X, want 83", c.A)
	}
	if c.F != 0x00 {
		t.Fatalf("F = %02X, want 00", c.F)
	}
}

func TestDaaAfterSubtract(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.A = c.sub8(0x50, 0x01) // A=0x4F, N=1 H=1 C=0
	c.daa()
	if c.A != 0x49 {
		t.Fatalf("A = %02X, want 49", c.A)
	}
	if !c.isFlagSet(FlagSubtract) {
		t.Fatalf("N must remain set after DAA on the subtract path")
	}
}

func TestCplCcfScf(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.A = 0x0F
	c.cpl()
	if c.A != 0xF0 || !c.isFlagSet(FlagSubtract) || !c.isFlagSet(FlagHalfCarry) {
		t.Fatalf("cpl: A=%02X F=%02X", c.A, c.F)
	}
	c.F = 0x00
	c.scf()
	if c.F != 0x10 {
		t.Fatalf("scf: F=%02X, want 10", c.F)
	}
	c.ccf()
	if c.F != 0x00 {
		t.Fatalf("ccf: F=%02X, want 00 (carry flipped off)", c.F)
	}
}

func TestAddHL16Flags(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.SetHL(0x0FFF)
	c.addHL16(0x0001)
	if c.HL() != 0x1000 {
		t.Fatalf("HL = %04X, want 1000", c.HL())
	}
	if !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
		t.Fatalf("F = %02X, want H set, C clear", c.F)
	}
}

func TestSpPlusSignedNegativeOffset(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.SP = 0xFFF8
	result := c.spPlusSigned(-8)
	if result != 0xFFF0 {
		t.Fatalf("result = %04X, want FFF0", result)
	}
	if c.isFlagSet(FlagZero) || c.isFlagSet(FlagSubtract) {
		t.Fatalf("Z,N must be cleared, got F=%02X", c.F)
	}
}
