package cpu

// VideoSink is the presentation surface a Bus hands its pixel data to once
// per CycleFlush. This repository never implements one — the PPU and video
// presentation are out of scope for the CPU core — but the interface is
// declared so CycleFlush's signature matches what a real peripheral set
// expects to plug into.
type VideoSink interface {
	Present(frame []byte)
}

// Bus is everything the CPU core needs from the rest of the console. The
// memory map, cartridge, timer, and every other peripheral live behind this
// interface; the CPU only ever sees bytes in and bytes out plus the two
// interrupt registers.
type Bus interface {
	// Read returns the byte at addr. Open bus reads return 0xFF.
	Read(addr uint16) uint8
	// Write stores val at addr.
	Write(addr uint16, val uint8)

	// InterruptFlag returns the current value of IF (0xFF0F).
	InterruptFlag() uint8
	// SetInterruptFlag overwrites IF.
	SetInterruptFlag(v uint8)
	// InterruptEnable returns the current value of IE (0xFFFF).
	InterruptEnable() uint8

	// CycleFlush advances every peripheral on the bus by cycles T-states
	// and forwards any completed frame to sink.
	CycleFlush(cycles uint8, sink VideoSink)
}
