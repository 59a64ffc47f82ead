package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// Known error causes.
var (
	ErrProgramTooLarge = errors.New("program does not fit in memory")
	ErrInvalidKey      = errors.New("invalid key")
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
)

// Error defines a runtime error.
type Error struct {
	*Instruction
	Msg   string
	cause error
}

// NewError creates a new, formatted error message for the given instruction.
// The instruction is copied, so the error remains valid after the next step.
// The error reports cause through errors.Cause.
func NewError(instr *Instruction, cause error, f string, argv ...interface{}) *Error {
	in := *instr
	return &Error{
		Instruction: &in,
		Msg:         fmt.Sprintf(f, argv...),
		cause:       cause,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04x: %s", e.IP, e.Msg)
}

// Cause returns the underlying error cause.
func (e *Error) Cause() error { return e.cause }

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error { return e.cause }
