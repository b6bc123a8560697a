/*
Package tigerrt implements the runtime support library for compiled Tiger
programs.

Tiger is the small, statically typed language of Appel's "Modern Compiler
Implementation". A Tiger compiler translates programs into code that handles
integers and control flow itself, but relies on a runtime for everything it
cannot express inline: allocating arrays and records, operating on strings,
and reading and writing the console. This package is that runtime.

A compiled program is a Program, a function taking a *Runtime and returning
an exit status. The simplest host is

	func main() {
		tigerrt.Main(program)
	}

which builds a runtime over the standard streams, runs the program, and exits
with its status.

Strings

Tiger strings are immutable sequences of raw bytes. They carry no encoding,
and zero bytes are ordinary content. The runtime represents them as *String.

Several operations share strings instead of copying them. Concatenating with
an empty string returns the other operand itself, and every single-byte string
produced by Chr, Substring, or Getchar is one of 256 process-wide singletons
held in the character cache. Programs must compare strings with StringEqual or
StringCompare; whether two equal strings are also the same pointer is an
implementation detail.

Arrays and records

InitArray and AllocRecord return a *Block, a run of words with no type
information attached. Each word can hold an integer or a reference, and the
compiled code alone decides which offsets hold which. Records are zeroed on
allocation, so reference fields start out nil, and array elements start out
holding the initial value. Nothing is ever freed explicitly.

Faults

Primitives called with arguments outside their domain, like Substring past
the end of a string or Chr of 256, and allocations that cannot be satisfied,
are faults. A fault is never returned to the program: the runtime flushes
output, writes a diagnostic to standard error, and terminates the program
with status 1. Run converts that termination into a returned status, which
makes runtimes embeddable and testable.

Configuration

A runtime can be configured with a TOML file:

	[heap]
	limit = 1048576   # bytes of arrays and records; 0 is unlimited
	[console]
	buffer = 4096
	flush = "auto"    # auto, line, or never
	[log]
	verbosity = 1

The heap limit counts WordSize bytes for each word of an array or record,
matching the sizes compiled code passes to AllocRecord. The memory the Go
runtime uses to hold those words is several times larger. See LoadConfig.
*/
package tigerrt
