package internal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("tigerrt")

// Program is the entry point of a compiled Tiger program. Its result becomes
// the process exit status.
type Program func(rt *Runtime) int

// Runtime is the set of primitives that compiled Tiger code calls. Each
// primitive either completes or terminates the program; none return errors.
//
// A Runtime is owned by the goroutine running the program. Only its Chars
// cache is shared.
type Runtime struct {
	// Chars is the character cache. Every runtime in a process uses the
	// cache returned by Chars, so cached strings are identical across
	// runtimes.
	Chars *Cache
	// Heap allocates arrays and records.
	Heap *Heap
	// Console is the program's standard input and output.
	Console *Console
	// Stderr receives fatal diagnostics.
	Stderr io.Writer
	// ExitHook terminates the program with a status. It must not return;
	// if it does, the primitive that called it panics.
	ExitHook func(code int)
}

// New creates a runtime with the given configuration and standard streams.
// The configuration should already be validated.
func New(cfg Config, stdin io.Reader, stdout, stderr io.Writer) *Runtime {
	rt := Runtime{
		Chars:    Chars(),
		Heap:     &Heap{Limit: cfg.Heap.Limit},
		Console:  NewConsole(stdin, stdout, cfg.Console.Buffer, cfg.FlushMode()),
		Stderr:   stderr,
		ExitHook: os.Exit,
	}
	log.Debugf("runtime ready: heap limit %d, flush mode %v", cfg.Heap.Limit, cfg.FlushMode())
	return &rt
}

// exitStatus is the panic value Run's exit hook uses to unwind the program.
type exitStatus int

// Run runs prog on rt and returns its exit status. Exit and fatal faults
// inside prog unwind back to Run instead of terminating the process, and
// their status is returned. Output is flushed before Run returns.
func Run(rt *Runtime, prog Program) (status int) {
	hook := rt.ExitHook
	rt.ExitHook = func(code int) { panic(exitStatus(code)) }
	defer func() {
		rt.ExitHook = hook
		if r := recover(); r != nil {
			code, ok := r.(exitStatus)
			if !ok {
				panic(r)
			}
			status = int(code)
		}
		log.Debugf("program exited with status %d", status)
	}()
	status = prog(rt)
	rt.Flush()
	return status
}

// Fatal reports err on the runtime's error stream and terminates the program
// with status 1. Pending output is flushed first.
func (rt *Runtime) Fatal(err error) {
	var f *Fault
	if errors.As(err, &f) {
		log.Debugf("fatal %v in %s", f.Kind, f.Op)
	}
	rt.Flush()
	fmt.Fprintln(rt.Stderr, err)
	rt.terminate(1)
}

// Exit flushes output and terminates the program with the given status.
func (rt *Runtime) Exit(code int) {
	rt.Flush()
	rt.terminate(code)
}

func (rt *Runtime) terminate(code int) {
	rt.ExitHook(code)
	panic("tigerrt: exit hook returned")
}

// Literal returns a string with the contents of s, for string constants in
// compiled code. The empty literal is the canonical empty string.
func (rt *Runtime) Literal(s string) *String {
	if s == "" {
		return rt.Chars.Empty
	}
	return NewStringOf(s)
}

// InitArray allocates an array of size words, each holding init.
func (rt *Runtime) InitArray(size, init int) *Block {
	b, err := rt.Heap.InitArray(size, init)
	if err != nil {
		rt.Fatal(err)
	}
	return b
}

// AllocRecord allocates a zeroed record of size bytes.
func (rt *Runtime) AllocRecord(size int) *Block {
	b, err := rt.Heap.AllocRecord(size)
	if err != nil {
		rt.Fatal(err)
	}
	return b
}

// StringEqual reports whether s and t have the same contents.
func (rt *Runtime) StringEqual(s, t *String) bool {
	return StringEqual(s, t)
}

// StringCompare orders s and t, returning -1, 0, or 1.
func (rt *Runtime) StringCompare(s, t *String) int {
	return StringCompare(s, t)
}

// Concat returns the concatenation of a and b.
func (rt *Runtime) Concat(a, b *String) *String {
	return Concat(a, b)
}

// Substring returns n bytes of s starting at first. The program terminates if
// the range is not within s.
func (rt *Runtime) Substring(s *String, first, n int) *String {
	r, err := rt.Chars.Substring(s, first, n)
	if err != nil {
		rt.Fatal(err)
	}
	return r
}

// Size returns the length of s.
func (rt *Runtime) Size(s *String) int {
	return Size(s)
}

// Ord returns the first byte of s, or -1 if s is empty.
func (rt *Runtime) Ord(s *String) int {
	return Ord(s)
}

// Chr returns the single-byte string for i. The program terminates if i is
// outside 0..255.
func (rt *Runtime) Chr(i int) *String {
	r, err := rt.Chars.Chr(i)
	if err != nil {
		rt.Fatal(err)
	}
	return r
}

// Not returns 1 if i is 0 and 0 otherwise.
func (rt *Runtime) Not(i int) int {
	return Not(i)
}

// Getchar reads one byte from standard input, returning the empty string at
// the end of input.
func (rt *Runtime) Getchar() *String {
	return rt.Console.Getchar(rt.Chars)
}

// Print writes s to standard output.
func (rt *Runtime) Print(s *String) {
	rt.Console.Print(s)
}

// Flush writes buffered output. Write errors are logged; the program
// continues.
func (rt *Runtime) Flush() {
	if err := rt.Console.Flush(); err != nil {
		log.Errorf("flushing output: %v", err)
	}
}
