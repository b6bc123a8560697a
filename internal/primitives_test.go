package internal_test

import (
	"bytes"
	"reflect"
	"sort"
	"testing"

	"github.com/zephyrtronium/tigerrt/internal"
)

// TestPrimitivesImplemented tests that every primitive names a Runtime method
// whose parameter count matches the primitive's.
func TestPrimitivesImplemented(t *testing.T) {
	rt := reflect.TypeOf((*internal.Runtime)(nil))
	for _, p := range internal.Primitives {
		t.Run(p.Name, func(t *testing.T) {
			m, ok := rt.MethodByName(p.Method)
			if !ok {
				t.Fatalf("Runtime has no method %s", p.Method)
			}
			// The receiver is the first input.
			if n := m.Type.NumIn() - 1; n != len(p.Params) {
				t.Errorf("%s takes %d arguments, primitive lists %d", p.Method, n, len(p.Params))
			}
			if has := m.Type.NumOut() > 0; has != (p.Result != "") {
				t.Errorf("%s has %d results, primitive result is %q", p.Method, m.Type.NumOut(), p.Result)
			}
		})
	}
}

// TestPrimitivesSorted tests that the primitive table is sorted and has no
// duplicates.
func TestPrimitivesSorted(t *testing.T) {
	names := make([]string, len(internal.Primitives))
	for i, p := range internal.Primitives {
		names[i] = p.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("primitives not sorted: %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			t.Errorf("duplicate primitive %s", names[i])
		}
	}
}

// TestLookupPrimitive tests finding primitives by name.
func TestLookupPrimitive(t *testing.T) {
	for _, name := range []string{"init_array", "alloc_record", "string_equal", "string_compare", "concat", "substring", "size", "ord", "chr", "read_char", "print", "flush"} {
		if _, ok := internal.LookupPrimitive(name); !ok {
			t.Errorf("no primitive %s", name)
		}
	}
	if p, ok := internal.LookupPrimitive("malloc"); ok {
		t.Errorf("found nonexistent primitive: %+v", p)
	}
	if p, _ := internal.LookupPrimitive("substring"); p.Fatal == "" {
		t.Error("substring not marked fatal")
	}
	if p, _ := internal.LookupPrimitive("concat"); p.Fatal != "" {
		t.Errorf("concat marked fatal: %q", p.Fatal)
	}
}

// TestManifest tests that the manifest describes the primitive table.
func TestManifest(t *testing.T) {
	var buf bytes.Buffer
	if err := internal.WriteManifest(&buf); err != nil {
		t.Fatal(err)
	}
	m, err := internal.ReadManifest(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if m.WordSize != internal.WordSize {
		t.Errorf("wrong word size %d", m.WordSize)
	}
	if len(m.Primitives) != len(internal.Primitives) {
		t.Fatalf("manifest has %d primitives, want %d", len(m.Primitives), len(internal.Primitives))
	}
	for i, p := range m.Primitives {
		want := internal.Primitives[i]
		if p.Name != want.Name || p.Method != want.Method || p.Result != want.Result || p.Fatal != want.Fatal {
			t.Errorf("primitive %d: want %+v, have %+v", i, want, p)
		}
		if len(p.Params) != len(want.Params) {
			t.Errorf("primitive %s: want params %v, have %v", want.Name, want.Params, p.Params)
		}
	}
}
