// Package bus implements the Game Boy's 64 KiB address space: cartridge
// ROM, work RAM and its echo, high RAM, the timer/serial/joypad I/O
// registers, and the CPU-visible IF/IE bytes. It is the concrete type
// behind the cpu.Bus interface.
package bus

import (
	"github.com/dmgcore/dmgcore/internal/cartridge"
	"github.com/dmgcore/dmgcore/internal/cpu"
	"github.com/dmgcore/dmgcore/internal/interrupts"
	"github.com/dmgcore/dmgcore/internal/joypad"
	"github.com/dmgcore/dmgcore/internal/serial"
	"github.com/dmgcore/dmgcore/internal/state"
	"github.com/dmgcore/dmgcore/internal/timer"
	"github.com/dmgcore/dmgcore/pkg/log"
)

const (
	wramStart = 0xC000
	wramEnd   = 0xDFFF
	echoStart = 0xE000
	echoEnd   = 0xFDFF
	hramStart = 0xFF80
	hramEnd   = 0xFFFE
)

// Bus wires the cartridge and every peripheral into one flat address space
// and satisfies cpu.Bus.
type Bus struct {
	Cart *cartridge.Cartridge

	Timer  *timer.Controller
	Serial *serial.Controller
	Joypad *joypad.Controller

	wram [wramEnd - wramStart + 1]uint8
	hram [hramEnd - hramStart + 1]uint8

	ifReg uint8
	ieReg uint8

	Log log.Logger
}

// New returns a Bus with a cartridge already loaded and every peripheral
// freshly reset.
func New(cart *cartridge.Cartridge, logger log.Logger) *Bus {
	if logger == nil {
		logger = log.Null()
	}
	return &Bus{
		Cart:   cart,
		Timer:  timer.NewController(),
		Serial: serial.NewController(),
		Joypad: joypad.NewController(),
		Log:    logger,
	}
}

var _ cpu.Bus = (*Bus)(nil)

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x7FFF:
		return b.Cart.Read(addr)
	case addr >= wramStart && addr <= wramEnd:
		return b.wram[addr-wramStart]
	case addr >= echoStart && addr <= echoEnd:
		return b.wram[(addr-echoStart)&0x1FFF]
	case addr >= 0xFE00 && addr <= 0xFE9F:
		return 0xFF // OAM: no PPU in this core
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		return 0xFF // unusable
	case addr == joypad.Register:
		return b.Joypad.Read(addr)
	case addr == serial.DataRegister || addr == serial.ControlRegister:
		return b.Serial.Read(addr)
	case addr == timer.DividerRegister, addr == timer.CounterRegister,
		addr == timer.ModuloRegister, addr == timer.ControlRegister:
		return b.Timer.Read(addr)
	case addr == interrupts.FlagRegister:
		return b.ifReg | 0xE0
	case addr >= 0xFF00 && addr <= 0xFF7F:
		return 0xFF // sound/video registers: out of scope, open bus
	case addr >= hramStart && addr <= hramEnd:
		return b.hram[addr-hramStart]
	case addr == interrupts.EnableRegister:
		return b.ieReg
	}
	b.Log.Errorf("bus: unmapped read from 0x%04X", addr)
	return 0xFF
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= 0x7FFF:
		// ROM-only cartridges are read-only.
	case addr >= wramStart && addr <= wramEnd:
		b.wram[addr-wramStart] = val
	case addr >= echoStart && addr <= echoEnd:
		b.wram[(addr-echoStart)&0x1FFF] = val
	case addr >= 0xFE00 && addr <= 0xFEFF:
		// OAM / unusable: no PPU in this core.
	case addr == joypad.Register:
		b.Joypad.Write(addr, val)
	case addr == serial.DataRegister || addr == serial.ControlRegister:
		b.Serial.Write(addr, val)
	case addr == timer.DividerRegister, addr == timer.CounterRegister,
		addr == timer.ModuloRegister, addr == timer.ControlRegister:
		b.Timer.Write(addr, val)
	case addr == interrupts.FlagRegister:
		b.ifReg = val & interrupts.Mask
	case addr >= 0xFF00 && addr <= 0xFF7F:
		// sound/video registers: out of scope, writes are discarded.
	case addr >= hramStart && addr <= hramEnd:
		b.hram[addr-hramStart] = val
	case addr == interrupts.EnableRegister:
		b.ieReg = val
	default:
		b.Log.Errorf("bus: unmapped write of 0x%02X to 0x%04X", val, addr)
	}
}

func (b *Bus) InterruptFlag() uint8     { return b.ifReg }
func (b *Bus) SetInterruptFlag(v uint8) { b.ifReg = v & interrupts.Mask }
func (b *Bus) InterruptEnable() uint8   { return b.ieReg }

// CycleFlush advances the timer and serial controllers by cycles T-states,
// requesting their interrupts on IF as needed, then forwards to sink (never
// called in this repository, since there is no PPU to produce a frame).
func (b *Bus) CycleFlush(cycles uint8, sink cpu.VideoSink) {
	if b.Timer.Tick(cycles) {
		b.ifReg |= timer.InterruptFlag
	}
	if b.Serial.Tick(cycles) {
		b.ifReg |= serial.InterruptFlag
	}
}

// PressButtons updates the pressed-button state and requests the Joypad
// interrupt on a high-to-low transition, mirroring what a real input
// handler does each frame.
func (b *Bus) PressButtons(direction, action uint8) {
	if b.Joypad.SetButtons(direction, action) {
		b.ifReg |= joypad.InterruptFlag
	}
}

var _ state.Stater = (*Bus)(nil)

func (b *Bus) Save(s *state.State) {
	s.WriteData(b.wram[:])
	s.WriteData(b.hram[:])
	s.Write8(b.ifReg)
	s.Write8(b.ieReg)
	b.Timer.Save(s)
	b.Serial.Save(s)
	b.Joypad.Save(s)
}

func (b *Bus) Load(s *state.State) {
	s.ReadData(b.wram[:])
	s.ReadData(b.hram[:])
	b.ifReg = s.Read8()
	b.ieReg = s.Read8()
	b.Timer.Load(s)
	b.Serial.Load(s)
	b.Joypad.Load(s)
}
