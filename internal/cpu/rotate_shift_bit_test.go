package cpu

import "testing"

func TestRlcAccumulatorFormForcesZeroClear(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	result := c.rlc(0x00, true)
	if result != 0x00 {
		t.Fatalf("result = %02X, want 00", result)
	}
	if c.isFlagSet(FlagZero) {
		t.Fatalf("RLCA must clear Z even when the result is zero")
	}
}

func TestRlcCBFormSetsZeroFromResult(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	result := c.rlc(0x00, false)
	if result != 0x00 || !c.isFlagSet(FlagZero) {
		t.Fatalf("RLC (CB form): result=%02X F=%02X, want Z set", result, c.F)
	}
}

func TestRlThroughCarry(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.setFlag(FlagCarry)
	result := c.rl(0x80, false)
	if result != 0x01 {
		t.Fatalf("result = %02X, want 01 (old carry rotated into bit 0)", result)
	}
	if !c.isFlagSet(FlagCarry) {
		t.Fatalf("new carry must be the old bit 7")
	}
}

func TestRrThroughCarry(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.clearFlag(FlagCarry) // reset state has C set; rotate a clear carry in
	result := c.rr(0x01, false)
	if result != 0x00 || !c.isFlagSet(FlagCarry) || !c.isFlagSet(FlagZero) {
		t.Fatalf("result=%02X F=%02X, want 00 with Z,C set", result, c.F)
	}
}

func TestSlaSraSrl(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	if got := c.sla(0x81); got != 0x02 || !c.isFlagSet(FlagCarry) {
		t.Fatalf("sla(81) = %02X F=%02X", got, c.F)
	}
	if got := c.sra(0x81); got != 0xC0 || !c.isFlagSet(FlagCarry) {
		t.Fatalf("sra(81) = %02X F=%02X, want C0 with bit 7 preserved", got, c.F)
	}
	if got := c.srl(0x01); got != 0x00 || !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagCarry) {
		t.Fatalf("srl(01) = %02X F=%02X", got, c.F)
	}
}

func TestSwapNibbles(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	if got := c.swap(0xA5); got != 0x5A {
		t.Fatalf("swap(A5) = %02X, want 5A", got)
	}
	if c.isFlagSet(FlagCarry) {
		t.Fatalf("SWAP always clears carry")
	}
}

func TestBitOps(t *testing.T) {
	c, _ := newTestCPU(0x0000)
	c.setFlag(FlagCarry)
	c.testBit(0x00, 3)
	if !c.isFlagSet(FlagZero) || !c.isFlagSet(FlagHalfCarry) || !c.isFlagSet(FlagCarry) {
		t.Fatalf("F = %02X, want Z,H set and C preserved", c.F)
	}
	if got := c.setBit(0x00, 5); got != 0x20 {
		t.Fatalf("setBit = %02X, want 20", got)
	}
	if got := c.resetBit(0xFF, 0); got != 0xFE {
		t.Fatalf("resetBit = %02X, want FE", got)
	}
}
