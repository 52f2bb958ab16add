package cpu

// testBus is a flat 64KiB memory with bare IF/IE storage, enough to drive
// every CPU-core test without pulling in the real bus/peripheral packages.
type testBus struct {
	mem      [0x10000]uint8
	ifReg    uint8
	ieReg    uint8
	flushed  []uint8
	sinkCall int
}

func newTestBus() *testBus { return &testBus{} }

func (b *testBus) Read(addr uint16) uint8  { return b.mem[addr] }
func (b *testBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func (b *testBus) InterruptFlag() uint8     { return b.ifReg }
func (b *testBus) SetInterruptFlag(v uint8) { b.ifReg = v }
func (b *testBus) InterruptEnable() uint8   { return b.ieReg }

func (b *testBus) CycleFlush(cycles uint8, sink VideoSink) {
	b.flushed = append(b.flushed, cycles)
	b.sinkCall++
}

// newTestCPU returns a CPU wired to a fresh testBus, with PC set to addr so
// callers can place an instruction stream and run it.
func newTestCPU(addr uint16) (*CPU, *testBus) {
	bus := newTestBus()
	c := NewCPU(bus)
	c.PC = addr
	return c, bus
}
