package cartridge

import "testing"

func romImage(title string, cartType byte, size int) []byte {
	raw := make([]byte, size)
	copy(raw[titleStart:titleEnd], title)
	raw[typeOffset] = cartType
	return raw
}

func TestLoadROMOnlySucceeds(t *testing.T) {
	raw := romImage("TESTGAME", romROMOnly, 0x8000)
	cart, err := Load(raw)
	if err != nil {
		t.Fatalf("Load returned an unexpected error: %v", err)
	}
	if cart.Title() != "TESTGAME" {
		t.Fatalf("Title() = %q, want TESTGAME", cart.Title())
	}
}

func TestLoadRejectsBankedCartridgeTypes(t *testing.T) {
	raw := romImage("MBC1GAME", 0x01, 0x8000) // MBC1
	if _, err := Load(raw); err == nil {
		t.Fatalf("Load must reject a non-ROM-only cartridge type")
	}
}

func TestLoadRejectsTruncatedHeader(t *testing.T) {
	if _, err := Load(make([]byte, 0x10)); err == nil {
		t.Fatalf("Load must reject an image too short to contain a header")
	}
}

func TestTitleTrimsNulPadding(t *testing.T) {
	raw := romImage("HI", romROMOnly, 0x8000)
	cart, err := Load(raw)
	if err != nil {
		t.Fatalf("Load returned an unexpected error: %v", err)
	}
	if cart.Title() != "HI" {
		t.Fatalf("Title() = %q, want HI with NUL padding trimmed", cart.Title())
	}
}

func TestReadOutOfBoundsReturnsOpenBusValue(t *testing.T) {
	raw := romImage("SMALL", romROMOnly, 0x0200)
	cart, err := Load(raw)
	if err != nil {
		t.Fatalf("Load returned an unexpected error: %v", err)
	}
	if got := cart.Read(0x7FFF); got != 0xFF {
		t.Fatalf("Read(0x7FFF) = %02X, want FF past the end of a short image", got)
	}
}

func TestChecksumStableAcrossLoads(t *testing.T) {
	raw := romImage("STABLE", romROMOnly, 0x8000)
	a, err := Load(raw)
	if err != nil {
		t.Fatalf("Load returned an unexpected error: %v", err)
	}
	b, err := Load(raw)
	if err != nil {
		t.Fatalf("Load returned an unexpected error: %v", err)
	}
	if a.Checksum() != b.Checksum() {
		t.Fatalf("Checksum() differed across two loads of the identical image")
	}
}
