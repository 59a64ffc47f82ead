package cpu

const (
	MemoryCapacity = 0x1000             // Size of the addressable memory space.
	AddressMask    = MemoryCapacity - 1 // Mask applied to every memory address.
	ProgramStart   = 0x200              // Address at which programs are loaded and started.
	ProgramMaxSize = MemoryCapacity - ProgramStart
)

// Memory defines the system's memory bank.
//
// All accessors wrap the address around the 4K address space,
// so reads and writes past 0xfff continue at 0x000.
type Memory []byte

// SetU8 sets the 8-bit value at the given address.
func (m Memory) SetU8(addr uint16, value byte) {
	m[addr&AddressMask] = value
}

// U8 returns the 8-bit value at the given address.
func (m Memory) U8(addr uint16) byte {
	return m[addr&AddressMask]
}

// SetU16 sets the big-endian 16-bit value at the given address.
func (m Memory) SetU16(addr, value uint16) {
	m.SetU8(addr, byte(value>>8))
	m.SetU8(addr+1, byte(value))
}

// U16 returns the big-endian 16-bit value at the given address.
func (m Memory) U16(addr uint16) uint16 {
	return uint16(m.U8(addr))<<8 | uint16(m.U8(addr+1))
}

// Write writes len(p) bytes from p into memory, starting at the given address.
func (m Memory) Write(addr uint16, p []byte) {
	for i, b := range p {
		m.SetU8(addr+uint16(i), b)
	}
}

// Read reads len(p) bytes from memory into p, starting at the given address.
func (m Memory) Read(addr uint16, p []byte) {
	for i := range p {
		p[i] = m.U8(addr + uint16(i))
	}
}

// clear sets all of memory to zero.
func (m Memory) clear() {
	for i := range m {
		m[i] = 0
	}
}
