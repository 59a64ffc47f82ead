// Package arch defines the CHIP-8 instruction set along with
// some related helper functions.
package arch

// Known instruction kinds. Each kind maps to exactly one opcode pattern.
const (
	NOP   = iota // 0000
	CLS          // 00E0
	RET          // 00EE
	JP           // 1NNN
	CALL         // 2NNN
	SEB          // 3XNN
	SNEB         // 4XNN
	SER          // 5XY0
	LDB          // 6XNN
	ADDB         // 7XNN
	LDR          // 8XY0
	OR           // 8XY1
	AND          // 8XY2
	XOR          // 8XY3
	ADDR         // 8XY4
	SUB          // 8XY5
	SHR          // 8XY6
	SUBN         // 8XY7
	SHL          // 8XYE
	SNER         // 9XY0
	LDI          // ANNN
	JPV0         // BNNN
	RND          // CXNN
	DRW          // DXYN
	SKP          // EX9E
	SKNP         // EXA1
	LDXDT        // FX07
	LDK          // FX0A
	LDDTX        // FX15
	LDSTX        // FX18
	ADDI         // FX1E
	LDF          // FX29
	LDBCD        // FX33
	LDMEM        // FX55
	LDREG        // FX65
)

// Decode returns the instruction kind for the given opcode.
// Returns false if the opcode does not match any known pattern.
func Decode(opcode uint16) (int, bool) {
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x0000:
			return NOP, true
		case 0x00e0:
			return CLS, true
		case 0x00ee:
			return RET, true
		}
	case 0x1:
		return JP, true
	case 0x2:
		return CALL, true
	case 0x3:
		return SEB, true
	case 0x4:
		return SNEB, true
	case 0x5:
		if N(opcode) == 0 {
			return SER, true
		}
	case 0x6:
		return LDB, true
	case 0x7:
		return ADDB, true
	case 0x8:
		switch N(opcode) {
		case 0x0:
			return LDR, true
		case 0x1:
			return OR, true
		case 0x2:
			return AND, true
		case 0x3:
			return XOR, true
		case 0x4:
			return ADDR, true
		case 0x5:
			return SUB, true
		case 0x6:
			return SHR, true
		case 0x7:
			return SUBN, true
		case 0xe:
			return SHL, true
		}
	case 0x9:
		if N(opcode) == 0 {
			return SNER, true
		}
	case 0xa:
		return LDI, true
	case 0xb:
		return JPV0, true
	case 0xc:
		return RND, true
	case 0xd:
		return DRW, true
	case 0xe:
		switch NN(opcode) {
		case 0x9e:
			return SKP, true
		case 0xa1:
			return SKNP, true
		}
	case 0xf:
		switch NN(opcode) {
		case 0x07:
			return LDXDT, true
		case 0x0a:
			return LDK, true
		case 0x15:
			return LDDTX, true
		case 0x18:
			return LDSTX, true
		case 0x1e:
			return ADDI, true
		case 0x29:
			return LDF, true
		case 0x33:
			return LDBCD, true
		case 0x55:
			return LDMEM, true
		case 0x65:
			return LDREG, true
		}
	}

	return 0, false
}

// Name returns the mnemonic for the given instruction kind.
// Returns false if the kind is not recognized.
func Name(kind int) (string, bool) {
	switch kind {
	case NOP:
		return "NOP", true
	case CLS:
		return "CLS", true
	case RET:
		return "RET", true
	case JP, JPV0:
		return "JP", true
	case CALL:
		return "CALL", true
	case SEB, SER:
		return "SE", true
	case SNEB, SNER:
		return "SNE", true

	case LDB, LDR, LDI, LDXDT, LDK, LDDTX, LDSTX, LDF, LDBCD, LDMEM, LDREG:
		return "LD", true
	case ADDB, ADDR, ADDI:
		return "ADD", true
	case OR:
		return "OR", true
	case AND:
		return "AND", true
	case XOR:
		return "XOR", true
	case SUB:
		return "SUB", true
	case SHR:
		return "SHR", true
	case SUBN:
		return "SUBN", true
	case SHL:
		return "SHL", true

	case RND:
		return "RND", true
	case DRW:
		return "DRW", true
	case SKP:
		return "SKP", true
	case SKNP:
		return "SKNP", true
	}

	return "", false
}

// X returns the second nibble of the opcode: the VX register index.
func X(opcode uint16) int { return int(opcode>>8) & 0xf }

// Y returns the third nibble of the opcode: the VY register index.
func Y(opcode uint16) int { return int(opcode>>4) & 0xf }

// N returns the lowest nibble of the opcode.
func N(opcode uint16) int { return int(opcode) & 0xf }

// NN returns the low byte of the opcode.
func NN(opcode uint16) byte { return byte(opcode) }

// NNN returns the 12-bit address embedded in the opcode.
func NNN(opcode uint16) uint16 { return opcode & 0x0fff }
