package devices

import "strings"

// ErrorSet defines a list of one or more errors and is itself an error.
type ErrorSet []error

// Len returns the number of errors in the set.
func (e ErrorSet) Len() int {
	return len(e)
}

// Append adds the given errors to the set.
func (e *ErrorSet) Append(args ...error) {
	*e = append(*e, args...)
}

// Err returns nil if the set is empty, and the set itself otherwise.
func (e ErrorSet) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error joins the messages of all errors in the set, one per line.
func (e ErrorSet) Error() string {
	var sb strings.Builder
	for _, err := range e {
		sb.WriteString(err.Error() + "\n")
	}
	return sb.String()
}
