package internal

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Primitive describes one entry of the calling convention between compiled
// code and the runtime.
type Primitive struct {
	// Name is the primitive's name as compiled code refers to it.
	Name string `yaml:"name"`
	// Method is the name of the Runtime method implementing it.
	Method string `yaml:"method"`
	// Params are the Tiger types of the parameters, in order.
	Params []string `yaml:"params,flow"`
	// Result is the Tiger type of the result, or empty if there is none.
	Result string `yaml:"result,omitempty"`
	// Fatal describes the conditions under which the primitive terminates
	// the program, if any.
	Fatal string `yaml:"fatal,omitempty"`
}

// Primitives lists every primitive the runtime provides. The list is sorted
// by Name.
var Primitives = []Primitive{
	{Name: "alloc_record", Method: "AllocRecord", Params: []string{"int"}, Result: "record", Fatal: "allocation failure"},
	{Name: "chr", Method: "Chr", Params: []string{"int"}, Result: "string", Fatal: "value outside 0..255"},
	{Name: "concat", Method: "Concat", Params: []string{"string", "string"}, Result: "string"},
	{Name: "exit", Method: "Exit", Params: []string{"int"}},
	{Name: "flush", Method: "Flush", Params: []string{}},
	{Name: "init_array", Method: "InitArray", Params: []string{"int", "int"}, Result: "array", Fatal: "allocation failure"},
	{Name: "not", Method: "Not", Params: []string{"int"}, Result: "int"},
	{Name: "ord", Method: "Ord", Params: []string{"string"}, Result: "int"},
	{Name: "print", Method: "Print", Params: []string{"string"}},
	{Name: "read_char", Method: "Getchar", Params: []string{}, Result: "string"},
	{Name: "size", Method: "Size", Params: []string{"string"}, Result: "int"},
	{Name: "string_compare", Method: "StringCompare", Params: []string{"string", "string"}, Result: "int"},
	{Name: "string_equal", Method: "StringEqual", Params: []string{"string", "string"}, Result: "int"},
	{Name: "substring", Method: "Substring", Params: []string{"string", "int", "int"}, Result: "string", Fatal: "offset or length out of range"},
}

// LookupPrimitive returns the primitive with the given name.
func LookupPrimitive(name string) (Primitive, bool) {
	for _, p := range Primitives {
		if p.Name == name {
			return p, true
		}
	}
	return Primitive{}, false
}

// Manifest is the document WriteManifest produces.
type Manifest struct {
	// WordSize is the size in bytes of array elements and record fields.
	WordSize int `yaml:"wordSize"`
	// Primitives is the primitive table.
	Primitives []Primitive `yaml:"primitives"`
}

// WriteManifest writes the primitive table as YAML, for compiler back ends
// that generate calls into the runtime.
func WriteManifest(w io.Writer) error {
	b, err := yaml.Marshal(Manifest{WordSize: WordSize, Primitives: Primitives})
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decoding manifest: %w", err)
	}
	return m, nil
}
