package arch

import "fmt"

// RegisterCount is the number of general purpose V registers.
const RegisterCount = 16

// VF is the register index used as flag output by arithmetic and draw instructions.
const VF = 0xf

// RegisterName returns the name associated with the given register index.
// Returns "" if the index is not recognized.
func RegisterName(n int) string {
	if n < 0 || n >= RegisterCount {
		return ""
	}
	return fmt.Sprintf("V%X", n)
}
