// Package programs holds Tiger programs compiled by hand against the runtime.
// They exercise the primitives the way generated code does and serve as
// end-to-end tests and demonstrations.
package programs

import "github.com/zephyrtronium/tigerrt"

// Names lists the programs Named knows.
func Names() []string {
	return []string{"merge", "queens"}
}

// Named returns the program with the given name. n is the board size for
// queens and is ignored otherwise.
func Named(name string, n int) (tigerrt.Program, bool) {
	switch name {
	case "merge":
		return Merge, true
	case "queens":
		if n <= 0 {
			return nil, false
		}
		return Queens(n), true
	}
	return nil, false
}
