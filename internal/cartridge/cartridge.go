// Package cartridge loads ROM-only Game Boy cartridge images. MBC1-5 and
// every other bank-switching scheme are out of scope for this core; loading
// one fails fast with a descriptive error rather than silently treating it
// as ROM-only and corrupting execution the moment the game banks in.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
)

const (
	headerStart = 0x0100
	headerEnd   = 0x0150
	titleStart  = 0x0134
	titleEnd    = 0x0144
	typeOffset  = 0x0147
	romROMOnly  = 0x00
)

// Cartridge is a loaded, ROM-only cartridge image mapped read-only at
// 0x0000-0x7FFF.
type Cartridge struct {
	rom      []byte
	title    string
	checksum uint64
}

// Load parses raw as a ROM-only cartridge image. It returns an error rather
// than panicking, since a bad file path or a corrupt dump is a user-input
// boundary, not an internal invariant violation.
func Load(raw []byte) (*Cartridge, error) {
	if len(raw) < headerEnd {
		return nil, fmt.Errorf("cartridge: image too short to contain a header: %d bytes", len(raw))
	}

	cartType := raw[typeOffset]
	if cartType != romROMOnly {
		return nil, fmt.Errorf("cartridge: unsupported cartridge type 0x%02X (only ROM-only 0x00 is supported)", cartType)
	}

	return &Cartridge{
		rom:      raw,
		title:    parseTitle(raw),
		checksum: xxhash.Sum64(raw),
	}, nil
}

// Read returns the byte at addr. Addresses outside the loaded image return
// 0xFF, matching open-bus behavior for a cartridge shorter than 32 KiB.
func (c *Cartridge) Read(addr uint16) uint8 {
	if int(addr) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[addr]
}

// Title returns the cartridge's 11-16 byte ASCII title, trimmed of trailing
// NUL padding.
func (c *Cartridge) Title() string { return c.title }

// Checksum is an xxhash64 of the raw ROM bytes, stable across loads of the
// same image and used to derive a save-state filename.
func (c *Cartridge) Checksum() uint64 { return c.checksum }

func parseTitle(raw []byte) string {
	end := titleEnd
	if end > len(raw) {
		end = len(raw)
	}
	title := raw[titleStart:end]
	n := len(title)
	for n > 0 && title[n-1] == 0x00 {
		n--
	}
	return string(title[:n])
}
