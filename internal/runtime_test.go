package internal_test

import (
	"testing"

	"github.com/zephyrtronium/tigerrt/internal"
	"github.com/zephyrtronium/tigerrt/testutils"
)

// TestRunStatus tests that a program's result is its exit status and that
// its output is flushed.
func TestRunStatus(t *testing.T) {
	h := testutils.NewHarness("")
	status := internal.Run(h.RT, func(rt *internal.Runtime) int {
		rt.Print(rt.Literal("bye"))
		return 7
	})
	if status != 7 {
		t.Errorf("wrong status %d", status)
	}
	if h.Out.String() != "bye" {
		t.Errorf("output not flushed: %q", h.Out.String())
	}
}

// TestRunExit tests that Exit unwinds the program with its status.
func TestRunExit(t *testing.T) {
	h := testutils.NewHarness("")
	reached := false
	status := internal.Run(h.RT, func(rt *internal.Runtime) int {
		rt.Print(rt.Literal("partial"))
		rt.Exit(3)
		reached = true
		return 0
	})
	if status != 3 {
		t.Errorf("wrong status %d", status)
	}
	if reached {
		t.Error("program continued after exit")
	}
	if h.Out.String() != "partial" {
		t.Errorf("output not flushed on exit: %q", h.Out.String())
	}
}

// TestRunRestoresHook tests that Run leaves the exit hook as it found it and
// passes through panics that aren't exits.
func TestRunRestoresHook(t *testing.T) {
	h := testutils.NewHarness("")
	called := -1
	h.RT.ExitHook = func(code int) { called = code }
	internal.Run(h.RT, func(rt *internal.Runtime) int { return 0 })
	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("wrong panic %v", r)
			}
		}()
		internal.Run(h.RT, func(rt *internal.Runtime) int { panic("boom") })
	}()
	h.RT.ExitHook(4)
	if called != 4 {
		t.Errorf("exit hook not restored: called with %d", called)
	}
}

// TestCatchExitRecovered tests that CatchExit reports no exit when f recovers
// from its own termination.
func TestCatchExitRecovered(t *testing.T) {
	h := testutils.NewHarness("")
	code, ok := testutils.CatchExit(h.RT, func() {
		defer func() { recover() }()
		h.RT.Exit(5)
	})
	if ok || code != 0 {
		t.Errorf("CatchExit intercepted a recovered exit: %d", code)
	}
}

// TestFatal tests that faults flush output, write a diagnostic, and terminate
// with status 1.
func TestFatal(t *testing.T) {
	cases := map[string]testutils.ProgramTestCase{
		"substring": {
			Program: func(rt *internal.Runtime) int {
				rt.Print(rt.Literal("before"))
				rt.Substring(rt.Literal("hi"), 0, 5)
				rt.Print(rt.Literal("after"))
				return 0
			},
			Pass: func(out, errs string, status int) bool {
				return status == 1 && out == "before" && errs == "substring([2],0,5) out of range\n"
			},
		},
		"chr": {
			Program: func(rt *internal.Runtime) int {
				rt.Chr(256)
				return 0
			},
			Pass: testutils.PassFault("chr(256) out of range"),
		},
		"chrNeg": {
			Program: func(rt *internal.Runtime) int {
				rt.Chr(-1)
				return 0
			},
			Pass: testutils.PassFault("chr(-1) out of range"),
		},
		"initArray": {
			Program: func(rt *internal.Runtime) int {
				rt.InitArray(-1, 0)
				return 0
			},
			Pass: testutils.PassFault("init_array(-1,0) out of memory"),
		},
		"allocRecord": {
			Program: func(rt *internal.Runtime) int {
				rt.AllocRecord(-1)
				return 0
			},
			Pass: testutils.PassFault("alloc_record(-1) out of memory"),
		},
		"valid": {
			Program: func(rt *internal.Runtime) int {
				rt.Print(rt.Chr(65))
				rt.Print(rt.Substring(rt.Literal("hello"), 1, 3))
				return 0
			},
			Pass: testutils.PassOutput("Aell"),
		},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc(name))
	}
}

// TestFatalHeapLimit tests that the configured heap limit applies to
// runtime allocations.
func TestFatalHeapLimit(t *testing.T) {
	cfg := internal.DefaultConfig()
	cfg.Heap.Limit = 10 * internal.WordSize
	h := testutils.NewHarnessConfig(cfg, "")
	status := internal.Run(h.RT, func(rt *internal.Runtime) int {
		rt.InitArray(10, 0)
		rt.AllocRecord(1)
		return 0
	})
	if status != 1 || h.Err.String() != "alloc_record(1) out of memory\n" {
		t.Errorf("wrong result: status %d, stderr %q", status, h.Err.String())
	}
}

// TestCatchExit tests intercepting faults outside Run.
func TestCatchExit(t *testing.T) {
	h := testutils.NewHarness("")
	code, ok := testutils.CatchExit(h.RT, func() { h.RT.Chr(300) })
	if !ok || code != 1 {
		t.Errorf("fault not intercepted: %d, %t", code, ok)
	}
	code, ok = testutils.CatchExit(h.RT, func() { h.RT.Chr(30) })
	if ok {
		t.Errorf("valid chr intercepted with status %d", code)
	}
}

// TestExitHookReturns tests that primitives don't continue if the exit hook
// returns.
func TestExitHookReturns(t *testing.T) {
	h := testutils.NewHarness("")
	h.RT.ExitHook = func(int) {}
	defer func() {
		if r := recover(); r == nil {
			t.Error("no panic after exit hook returned")
		}
	}()
	h.RT.Substring(h.RT.Literal("x"), 2, 2)
}

// TestRuntimePrimitives tests the runtime's string primitives against the
// standalone operations.
func TestRuntimePrimitives(t *testing.T) {
	rt := testutils.RT()
	ab, cd := rt.Literal("ab"), rt.Literal("cd")
	abcd := rt.Concat(ab, cd)
	testutils.CheckString(t, abcd, "abcd")
	if rt.Size(abcd) != 4 {
		t.Errorf("size = %d", rt.Size(abcd))
	}
	if rt.StringCompare(ab, abcd) != -1 || rt.StringCompare(abcd, ab) != 1 {
		t.Error("wrong ordering")
	}
	if !rt.StringEqual(rt.Substring(abcd, 0, 2), ab) {
		t.Error("substring of concat not equal to prefix")
	}
	if rt.Literal("") != rt.Chars.Empty {
		t.Error("empty literal is not the canonical empty string")
	}
	if rt.Ord(rt.Literal("")) != -1 || rt.Ord(rt.Chr(200)) != 200 {
		t.Error("wrong ord")
	}
	if rt.Not(0) != 1 || rt.Not(5) != 0 {
		t.Error("wrong not")
	}
	if l := rt.Literal("x"); l == rt.Chr('x') {
		t.Error("literal shares the cached string")
	}
}

// TestRuntimeConsole tests reading and writing through a runtime.
func TestRuntimeConsole(t *testing.T) {
	h := testutils.NewHarness("ok")
	rt := h.RT
	for _, want := range []byte("ok") {
		if s := rt.Getchar(); s != rt.Chr(int(want)) {
			t.Errorf("wrong byte %q, want %q", s, want)
		}
	}
	for i := 0; i < 3; i++ {
		if s := rt.Getchar(); s != rt.Chars.Empty {
			t.Errorf("read past end gave %q", s)
		}
	}
	rt.Print(rt.Literal("done"))
	rt.Flush()
	if h.Out.String() != "done" {
		t.Errorf("wrong output %q", h.Out.String())
	}
}
