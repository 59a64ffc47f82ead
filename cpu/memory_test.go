package cpu

import "testing"

func TestMemoryWrap(t *testing.T) {
	m := make(Memory, MemoryCapacity)

	m.SetU16(0xfff, 0xabcd)
	if m[0xfff] != 0xab || m[0x000] != 0xcd {
		t.Fatalf("16-bit write did not wrap: %02x %02x", m[0xfff], m[0x000])
	}
	if m.U16(0xfff) != 0xabcd {
		t.Fatalf("16-bit read did not wrap: %04x", m.U16(0xfff))
	}
	if m.U8(0x1fff) != 0xab {
		t.Fatalf("address 1fff does not alias fff")
	}

	m.Write(0xffe, []byte{1, 2, 3, 4})
	p := make([]byte, 4)
	m.Read(0xffe, p)
	for i, want := range []byte{1, 2, 3, 4} {
		if p[i] != want {
			t.Fatalf("byte %d: want %d; have %d", i, want, p[i])
		}
	}
	if m[0x001] != 4 {
		t.Fatalf("block write did not wrap")
	}
}

func TestDisplayPixelWrap(t *testing.T) {
	var d Display

	d.drawRow(-1, -1, 0x80)
	if !d.Pixel(DisplayWidth-1, DisplayHeight-1) {
		t.Fatalf("negative coordinates did not wrap")
	}
	if !d.Pixel(-1, DisplayHeight*2-1) {
		t.Fatalf("Pixel did not wrap its coordinates")
	}

	if !d.drawRow(DisplayWidth-1, DisplayHeight-1, 0x80) {
		t.Fatalf("expected collision when clearing a lit pixel")
	}
	if d != (Display{}) {
		t.Fatalf("expected empty display")
	}
}
