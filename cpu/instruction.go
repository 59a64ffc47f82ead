package cpu

import (
	"github.com/hexaflex/chip8/arch"
)

// Instruction defines decoded instruction data.
type Instruction struct {
	IP     uint16 // Instruction address.
	Opcode uint16 // Raw 16-bit instruction word.
	Kind   int    // Instruction kind, one of the arch constants.
}

// Decode decodes the instruction at the given address.
func (i *Instruction) Decode(m Memory, addr uint16) error {
	i.IP = addr & AddressMask
	i.Opcode = m.U16(addr)

	kind, ok := arch.Decode(i.Opcode)
	if !ok {
		i.Kind = -1
		return NewError(i, ErrUnknownOpcode, "unknown opcode %04x", i.Opcode)
	}

	i.Kind = kind
	return nil
}

// X returns the VX register index operand.
func (i *Instruction) X() int { return arch.X(i.Opcode) }

// Y returns the VY register index operand.
func (i *Instruction) Y() int { return arch.Y(i.Opcode) }

// N returns the 4-bit immediate operand.
func (i *Instruction) N() int { return arch.N(i.Opcode) }

// NN returns the 8-bit immediate operand.
func (i *Instruction) NN() byte { return arch.NN(i.Opcode) }

// NNN returns the 12-bit address operand.
func (i *Instruction) NNN() uint16 { return arch.NNN(i.Opcode) }
