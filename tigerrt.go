package tigerrt

import (
	"io"
	"os"

	"github.com/zephyrtronium/tigerrt/internal"
)

type (
	// Runtime is the set of primitives that compiled code calls.
	Runtime = internal.Runtime
	// Program is the entry point of a compiled program.
	Program = internal.Program
	// String is an immutable byte string.
	String = internal.String
	// Cache holds the shared single-byte strings and the empty string.
	Cache = internal.Cache
	// Block is the storage of an array or record.
	Block = internal.Block
	// Word is one word of block storage.
	Word = internal.Word
	// Heap allocates blocks.
	Heap = internal.Heap
	// HeapStats describes a heap's allocations.
	HeapStats = internal.HeapStats
	// Console is buffered byte I/O over runtime strings.
	Console = internal.Console
	// Fault is a fatal primitive failure.
	Fault = internal.Fault
	// Kind classifies faults.
	Kind = internal.Kind
	// Config holds runtime settings.
	Config = internal.Config
	// FlushMode controls automatic output flushing.
	FlushMode = internal.FlushMode
	// Primitive describes one primitive of the calling convention.
	Primitive = internal.Primitive
	// Manifest is the YAML document describing the calling convention.
	Manifest = internal.Manifest
)

// Fault kinds.
const (
	ContractViolation  = internal.ContractViolation
	ResourceExhaustion = internal.ResourceExhaustion
)

// Flush modes.
const (
	FlushAuto  = internal.FlushAuto
	FlushLine  = internal.FlushLine
	FlushNever = internal.FlushNever
)

// WordSize is the size in bytes of one block word.
const WordSize = internal.WordSize

// Chars returns the process-wide character cache, building it on first use.
func Chars() *Cache {
	return internal.Chars()
}

// NewString creates a string holding a copy of b.
func NewString(b []byte) *String {
	return internal.NewString(b)
}

// NewStringOf creates a string holding the bytes of s.
func NewStringOf(s string) *String {
	return internal.NewStringOf(s)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	return internal.LoadConfig(path)
}

// New creates a runtime with the given configuration and standard streams.
func New(cfg Config, stdin io.Reader, stdout, stderr io.Writer) *Runtime {
	return internal.New(cfg, stdin, stdout, stderr)
}

// Run runs prog on rt and returns its exit status, including the status of
// an Exit or fault inside prog.
func Run(rt *Runtime, prog Program) int {
	return internal.Run(rt, prog)
}

// WriteManifest writes the primitive table as YAML.
func WriteManifest(w io.Writer) error {
	return internal.WriteManifest(w)
}

// Main runs prog with the default configuration over the process's standard
// streams and exits with its status. The character cache is built before prog
// starts.
func Main(prog Program) {
	MainConfig(DefaultConfig(), prog)
}

// MainConfig is like Main but uses the given configuration.
func MainConfig(cfg Config, prog Program) {
	os.Exit(run(cfg, os.Stdin, os.Stdout, os.Stderr, prog))
}

// run builds the character cache, then runs prog on a new runtime over the
// given streams and returns its exit status.
func run(cfg Config, stdin io.Reader, stdout, stderr io.Writer, prog Program) int {
	internal.Chars()
	rt := New(cfg, stdin, stdout, stderr)
	return Run(rt, prog)
}
