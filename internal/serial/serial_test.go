package serial

import "testing"

func TestTransferCompletesAndRequestsInterrupt(t *testing.T) {
	c := NewController()
	c.Write(DataRegister, 0x42)
	c.Write(ControlRegister, 0x81) // start, internal clock

	requested := false
	for i := 0; i < shiftPeriod; i++ {
		if c.Tick(1) {
			requested = true
			break
		}
	}
	if !requested {
		t.Fatalf("Serial interrupt was never requested")
	}
	if c.Read(ControlRegister)&0x80 != 0 {
		t.Fatalf("SC bit 7 should be cleared once the transfer completes")
	}
	if c.Read(DataRegister) != 0x42 {
		t.Fatalf("SB should still read back the transmitted byte (loopback)")
	}
}

func TestNoTransferInProgressNeverTicks(t *testing.T) {
	c := NewController()
	for i := 0; i < 10000; i++ {
		if c.Tick(1) {
			t.Fatalf("Tick must report false with no transfer started")
		}
	}
}
