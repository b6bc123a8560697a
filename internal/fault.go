package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies faults.
type Kind int

// Fault kinds. Both are fatal to the running program.
const (
	// ContractViolation is a caller-supplied argument outside the domain of
	// a primitive, like an out-of-range substring.
	ContractViolation Kind = iota + 1
	// ResourceExhaustion is an allocation that cannot be satisfied.
	ResourceExhaustion
)

var kindNames = [...]string{"", "contract violation", "resource exhaustion"}

// String returns a string representation of the Kind.
func (k Kind) String() string {
	if k < ContractViolation || k > ResourceExhaustion {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// Fault is the error produced by a primitive that cannot complete. A fault is
// never recoverable by the program that caused it; Runtime converts it into
// a diagnostic and process termination.
type Fault struct {
	// Kind is the fault class.
	Kind Kind
	// Op is the name of the primitive that faulted, as listed in
	// Primitives.
	Op string
	// Args are the offending arguments. For string primitives, the first is
	// the length of the string operand.
	Args []int
}

// faultFormats gives the argument layout of diagnostics for primitives whose
// arguments are not simply listed in order.
var faultFormats = map[string]string{
	"substring": "substring([%d],%d,%d)",
}

// Error returns the diagnostic for the fault, e.g.
// "substring([2],0,5) out of range".
func (f *Fault) Error() string {
	var b strings.Builder
	if format, ok := faultFormats[f.Op]; ok && strings.Count(format, "%d") == len(f.Args) {
		args := make([]interface{}, len(f.Args))
		for i, a := range f.Args {
			args[i] = a
		}
		fmt.Fprintf(&b, format, args...)
	} else {
		b.WriteString(f.Op)
		b.WriteByte('(')
		for i, a := range f.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(a))
		}
		b.WriteByte(')')
	}
	switch f.Kind {
	case ContractViolation:
		b.WriteString(" out of range")
	case ResourceExhaustion:
		b.WriteString(" out of memory")
	default:
		b.WriteString(": ")
		b.WriteString(f.Kind.String())
	}
	return b.String()
}
