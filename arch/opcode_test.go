package arch

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   int
	}{
		{0x0000, NOP},
		{0x00e0, CLS},
		{0x00ee, RET},
		{0x1234, JP},
		{0x2fff, CALL},
		{0x3a12, SEB},
		{0x4a12, SNEB},
		{0x5ab0, SER},
		{0x6a12, LDB},
		{0x7a12, ADDB},
		{0x8ab0, LDR},
		{0x8ab1, OR},
		{0x8ab2, AND},
		{0x8ab3, XOR},
		{0x8ab4, ADDR},
		{0x8ab5, SUB},
		{0x8ab6, SHR},
		{0x8ab7, SUBN},
		{0x8abe, SHL},
		{0x9ab0, SNER},
		{0xa123, LDI},
		{0xb123, JPV0},
		{0xca12, RND},
		{0xdab5, DRW},
		{0xea9e, SKP},
		{0xeaa1, SKNP},
		{0xfa07, LDXDT},
		{0xfa0a, LDK},
		{0xfa15, LDDTX},
		{0xfa18, LDSTX},
		{0xfa1e, ADDI},
		{0xfa29, LDF},
		{0xfa33, LDBCD},
		{0xfa55, LDMEM},
		{0xfa65, LDREG},
	}

	for _, tt := range tests {
		have, ok := Decode(tt.opcode)
		if !ok {
			t.Fatalf("%04x: expected a valid instruction", tt.opcode)
		}
		if have != tt.want {
			t.Fatalf("%04x: want kind %d; have %d", tt.opcode, tt.want, have)
		}
		if _, ok := Name(have); !ok {
			t.Fatalf("%04x: kind %d has no name", tt.opcode, have)
		}
	}
}

func TestDecodeUnknown(t *testing.T) {
	for _, opcode := range []uint16{
		0x0001, 0x00e1, 0x0123, 0x5ab1, 0x8ab8, 0x8abf, 0x9ab1,
		0xea00, 0xeaa2, 0xfa00, 0xfa08, 0xfaff,
	} {
		if kind, ok := Decode(opcode); ok {
			t.Fatalf("%04x: expected unknown opcode; have kind %d", opcode, kind)
		}
	}
}

func TestOperands(t *testing.T) {
	const opcode = 0xd12f

	if X(opcode) != 0x1 {
		t.Fatalf("X: want 1; have %x", X(opcode))
	}
	if Y(opcode) != 0x2 {
		t.Fatalf("Y: want 2; have %x", Y(opcode))
	}
	if N(opcode) != 0xf {
		t.Fatalf("N: want f; have %x", N(opcode))
	}
	if NN(opcode) != 0x2f {
		t.Fatalf("NN: want 2f; have %x", NN(opcode))
	}
	if NNN(opcode) != 0x12f {
		t.Fatalf("NNN: want 12f; have %x", NNN(opcode))
	}
}

func TestRegisterName(t *testing.T) {
	if RegisterName(0) != "V0" || RegisterName(VF) != "VF" {
		t.Fatalf("unexpected register names %q %q", RegisterName(0), RegisterName(VF))
	}
	if RegisterName(16) != "" {
		t.Fatalf("expected empty name for out of range register")
	}
}
