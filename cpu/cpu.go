// Package cpu implements the CHIP-8 interpreter.
package cpu

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
)

const (
	StackCapacity = 16 // Number of return addresses the call stack can hold.
	KeyCount      = 16 // Number of keys on the hex keypad.
)

// TraceFunc represents a callback handler for debug trace output.
type TraceFunc func(*Instruction)

// CPU implements the runtime.
//
// A CPU is not safe for concurrent use. The host is expected to serialize
// calls to Step, TickTimers and SetKey.
type CPU struct {
	trace   TraceFunc                // Handler for debug trace output.
	memory  Memory                   // System memory.
	display Display                  // Framebuffer.
	instr   Instruction              // Decoded instruction data.
	rng     *rand.Rand               // Random number generator.
	v       [arch.RegisterCount]byte // V0-VF.
	stack   [StackCapacity]uint16    // Return addresses.
	keys    [KeyCount]bool           // Key states, set by the host.
	pc      uint16                   // Program counter.
	i       uint16                   // Index register.
	sp      int                      // Number of entries on the stack.
	dt      byte                     // Delay timer.
	st      byte                     // Sound timer.
	waiting bool                     // Is FX0A stalled waiting for a key?
}

// New creates a new CPU in its reset state.
// Optionally with the given debug trace handler.
func New(trace TraceFunc) *CPU {
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	c := &CPU{
		trace:  trace,
		memory: make(Memory, MemoryCapacity),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	c.Reset()
	return c
}

// Reset clears memory, registers, stack, keys and display, installs the
// font and points the program counter at ProgramStart.
// The random number generator is left as is.
func (c *CPU) Reset() {
	c.memory.clear()
	c.memory.Write(FontAddress, font[:])
	c.display.clear()

	c.v = [arch.RegisterCount]byte{}
	c.stack = [StackCapacity]uint16{}
	c.keys = [KeyCount]bool{}
	c.instr = Instruction{}
	c.pc = ProgramStart
	c.i = 0
	c.sp = 0
	c.dt = 0
	c.st = 0
	c.waiting = false
}

// Seed replaces the random number generator with one seeded by the given value.
func (c *CPU) Seed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Load copies the program into memory at ProgramStart.
// Returns an error if the program does not fit; memory is not modified in that case.
func (c *CPU) Load(program []byte) error {
	if len(program) > ProgramMaxSize {
		return errors.Wrapf(ErrProgramTooLarge, "program is %d bytes; at most %d are available", len(program), ProgramMaxSize)
	}

	copy(c.memory[ProgramStart:], program)
	return nil
}

// SetKey sets the pressed state of the given key.
func (c *CPU) SetKey(key int, pressed bool) error {
	if key < 0 || key >= KeyCount {
		return errors.Wrapf(ErrInvalidKey, "key %d", key)
	}

	c.keys[key] = pressed
	return nil
}

// TickTimers decrements the delay and sound timers. It is meant to be called at 60Hz.
// Returns true when the sound timer reaches zero during this tick.
func (c *CPU) TickTimers() bool {
	if c.dt > 0 {
		c.dt--
	}

	if c.st > 0 {
		c.st--
		return c.st == 0
	}

	return false
}

// Display returns a copy of the framebuffer.
func (c *CPU) Display() Display { return c.display }

// Memory returns the cpu's memory bank.
func (c *CPU) Memory() Memory { return c.memory }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// I returns the index register.
func (c *CPU) I() uint16 { return c.i }

// V returns the value of register Vn.
func (c *CPU) V(n int) byte { return c.v[n&0xf] }

// SP returns the number of return addresses on the stack.
func (c *CPU) SP() int { return c.sp }

// DelayTimer returns the delay timer value.
func (c *CPU) DelayTimer() byte { return c.dt }

// SoundTimer returns the sound timer value.
func (c *CPU) SoundTimer() byte { return c.st }

// Waiting returns true if execution is stalled on FX0A until a key is pressed.
func (c *CPU) Waiting() bool { return c.waiting }

// Step performs a single fetch, decode and execute cycle.
//
// An unknown opcode or a stack fault yields an *Error. The program counter
// has moved past the faulting instruction by then, but nothing else has changed.
func (c *CPU) Step() error {
	instr := &c.instr

	if err := instr.Decode(c.memory, c.pc); err != nil {
		c.pc += 2
		return err
	}

	c.trace(instr)

	// FX0A leaves the program counter on itself until a key is down.
	if instr.Kind == arch.LDK {
		key, ok := c.pressedKey()
		c.waiting = !ok
		if !ok {
			return nil
		}
		c.v[instr.X()] = byte(key)
	}

	c.pc += 2

	v := c.v[:]
	x := instr.X()
	y := instr.Y()

	switch instr.Kind {
	case arch.NOP:
		/* nop */
	case arch.CLS:
		c.display.clear()
	case arch.RET:
		if c.sp == 0 {
			return NewError(instr, ErrStackUnderflow, "return with empty stack")
		}
		c.sp--
		c.pc = c.stack[c.sp]

	case arch.JP:
		c.pc = instr.NNN()
	case arch.CALL:
		if c.sp >= StackCapacity {
			return NewError(instr, ErrStackOverflow, "call depth exceeds %d", StackCapacity)
		}
		c.stack[c.sp] = c.pc
		c.sp++
		c.pc = instr.NNN()
	case arch.JPV0:
		c.pc = uint16(v[0]) + instr.NNN()

	case arch.SEB:
		c.skipIf(v[x] == instr.NN())
	case arch.SNEB:
		c.skipIf(v[x] != instr.NN())
	case arch.SER:
		c.skipIf(v[x] == v[y])
	case arch.SNER:
		c.skipIf(v[x] != v[y])
	case arch.SKP:
		c.skipIf(c.keys[v[x]&0xf])
	case arch.SKNP:
		c.skipIf(!c.keys[v[x]&0xf])

	case arch.LDB:
		v[x] = instr.NN()
	case arch.ADDB:
		v[x] += instr.NN()
	case arch.LDR:
		v[x] = v[y]
	case arch.OR:
		v[x] |= v[y]
	case arch.AND:
		v[x] &= v[y]
	case arch.XOR:
		v[x] ^= v[y]
	case arch.ADDR:
		sum := uint16(v[x]) + uint16(v[y])
		v[x] = byte(sum)
		v[arch.VF] = flag(sum > 0xff)
	case arch.SUB:
		a, b := v[x], v[y]
		v[x] = a - b
		v[arch.VF] = flag(a >= b)
	case arch.SUBN:
		a, b := v[x], v[y]
		v[x] = b - a
		v[arch.VF] = flag(b >= a)
	case arch.SHR:
		a := v[x]
		v[x] = a >> 1
		v[arch.VF] = a & 1
	case arch.SHL:
		a := v[x]
		v[x] = a << 1
		v[arch.VF] = a >> 7

	case arch.LDI:
		c.i = instr.NNN()
	case arch.ADDI:
		c.i += uint16(v[x])
	case arch.LDF:
		c.i = FontAddress + uint16(v[x])*GlyphSize
	case arch.RND:
		v[x] = byte(c.rng.Intn(256)) & instr.NN()
	case arch.DRW:
		c.draw(int(v[x]), int(v[y]), instr.N())

	case arch.LDK:
		/* handled above */
	case arch.LDXDT:
		v[x] = c.dt
	case arch.LDDTX:
		c.dt = v[x]
	case arch.LDSTX:
		c.st = v[x]

	case arch.LDBCD:
		n := v[x]
		c.memory.SetU8(c.i, n/100)
		c.memory.SetU8(c.i+1, (n/10)%10)
		c.memory.SetU8(c.i+2, n%10)
	case arch.LDMEM:
		c.memory.Write(c.i, v[:x+1])
	case arch.LDREG:
		c.memory.Read(c.i, v[:x+1])
	}

	return nil
}

// draw XORs an n-row sprite read from the index register onto the display at (x, y).
// VF is set if any lit pixel was turned off.
func (c *CPU) draw(x, y, n int) {
	var collision bool

	for row := 0; row < n; row++ {
		bits := c.memory.U8(c.i + uint16(row))
		if c.display.drawRow(x, y+row, bits) {
			collision = true
		}
	}

	c.v[arch.VF] = flag(collision)
}

// skipIf skips the next instruction if cond holds.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.pc += 2
	}
}

// pressedKey returns the lowest pressed key, if any.
func (c *CPU) pressedKey() (int, bool) {
	for key, down := range c.keys {
		if down {
			return key, true
		}
	}
	return 0, false
}

// flag returns 1 if v is true and 0 otherwise.
func flag(v bool) byte {
	if v {
		return 1
	}
	return 0
}
