// Package testutils provides utilities for testing Tiger runtime code in Go.
package testutils

import (
	"bytes"
	"io/ioutil"
	"strings"
	"sync"
	"testing"

	"github.com/zephyrtronium/tigerrt"
)

// testRT is the runtime used for tests that don't need their own streams.
var testRT *tigerrt.Runtime

var testRTInit sync.Once

// RT returns a runtime for testing. The runtime is shared by all tests that
// use this package; its input is empty and its output is discarded.
func RT() *tigerrt.Runtime {
	testRTInit.Do(ResetRT)
	return testRT
}

// ResetRT reinitializes the runtime returned by RT. It is not safe to call
// this in parallel tests.
func ResetRT() {
	testRT = tigerrt.New(tigerrt.DefaultConfig(), strings.NewReader(""), ioutil.Discard, ioutil.Discard)
}

// Harness is a runtime over in-memory streams.
type Harness struct {
	RT *tigerrt.Runtime
	// Out and Err receive the runtime's standard output and error.
	Out, Err bytes.Buffer
}

// NewHarness creates a runtime with the default configuration whose standard
// input is the given text.
func NewHarness(input string) *Harness {
	return NewHarnessConfig(tigerrt.DefaultConfig(), input)
}

// NewHarnessConfig creates a runtime with the given configuration whose
// standard input is the given text.
func NewHarnessConfig(cfg tigerrt.Config, input string) *Harness {
	h := Harness{}
	h.RT = tigerrt.New(cfg, strings.NewReader(input), &h.Out, &h.Err)
	return &h
}

// exited is the panic value used by CatchExit's exit hook.
type exited int

// CatchExit calls f, intercepting any termination of the program. If f
// terminates the program, CatchExit returns its status and true. Otherwise it
// returns 0 and false.
func CatchExit(rt *tigerrt.Runtime, f func()) (code int, ok bool) {
	hook := rt.ExitHook
	rt.ExitHook = func(c int) { panic(exited(c)) }
	defer func() {
		rt.ExitHook = hook
		if r := recover(); r != nil {
			c, isExit := r.(exited)
			if !isExit {
				panic(r)
			}
			code, ok = int(c), true
		}
	}()
	f()
	return 0, false
}

// A ProgramTestCase is a test case running a program against some input and
// checking the outcome.
type ProgramTestCase struct {
	// Input is the program's standard input.
	Input string
	// Program is the program to run.
	Program tigerrt.Program
	// Pass is a predicate on the program's standard output, standard error,
	// and exit status. If Pass returns false, the test fails.
	Pass func(out, errs string, status int) bool
}

// TestFunc returns a test function for the test case. Each run uses a fresh
// harness.
func (c ProgramTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		h := NewHarness(c.Input)
		status := tigerrt.Run(h.RT, c.Program)
		if !c.Pass(h.Out.String(), h.Err.String(), status) {
			t.Errorf("%s produced wrong result for input %q: status %d\nstdout:\n%s\nstderr:\n%s", name, c.Input, status, h.Out.String(), h.Err.String())
		}
	}
}

// PassOutput returns a Pass function for a ProgramTestCase that predicates on
// the program exiting with status 0, writing exactly want to standard output,
// and writing nothing to standard error.
func PassOutput(want string) func(string, string, int) bool {
	return func(out, errs string, status int) bool {
		return status == 0 && out == want && errs == ""
	}
}

// PassStatus returns a Pass function for a ProgramTestCase that predicates
// only on the exit status.
func PassStatus(want int) func(string, string, int) bool {
	return func(out, errs string, status int) bool {
		return status == want
	}
}

// PassFault returns a Pass function for a ProgramTestCase that returns true
// iff the program was terminated by a fault whose diagnostic is diag.
func PassFault(diag string) func(string, string, int) bool {
	return func(out, errs string, status int) bool {
		return status == 1 && errs == diag+"\n"
	}
}

// CheckString is a testing helper to check that a runtime string has exactly
// the contents we expect.
func CheckString(t testing.TB, got *tigerrt.String, want string) {
	t.Helper()
	if got == nil {
		t.Fatalf("got nil string, want %q", want)
	}
	if b := got.Bytes(); string(b) != want {
		t.Errorf("wrong string: want %q, have %q", want, b)
	}
}
