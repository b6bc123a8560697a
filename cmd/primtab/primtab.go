// Command primtab lists the primitive methods of the runtime as YAML flow
// entries. With -check, it instead compares them against a manifest written
// by tigerrt -manifest and exits with status 1 if they differ.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"

	"github.com/zephyrtronium/tigerrt/internal"
)

func main() {
	var match, ignore string
	var rtpkg, check string
	flag.StringVar(&match, "match", ".", "include only methods matching this regular expression")
	flag.StringVar(&ignore, "ignore", "^(Fatal|Literal)$", "exclude methods matching this regular expression")
	flag.StringVar(&rtpkg, "pkg", "github.com/zephyrtronium/tigerrt/internal", "import path for the package defining Runtime")
	flag.StringVar(&check, "check", "", "compare against the manifest in this file (- for standard input)")
	flag.Parse()
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	rt, err := loadRuntime(rtpkg)
	if err != nil {
		fail(err)
	}
	entries := resolve(find(rt, mre, ire), internal.Primitives)

	if check == "" {
		for _, e := range entries {
			fmt.Println(e)
		}
		return
	}
	m, err := readManifest(check)
	if err != nil {
		fail(err)
	}
	if diffs := compare(entries, m.Primitives); len(diffs) > 0 {
		for _, d := range diffs {
			fmt.Fprintln(os.Stderr, d)
		}
		os.Exit(1)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func readManifest(path string) (internal.Manifest, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return internal.Manifest{}, err
		}
		defer f.Close()
		r = f
	}
	return internal.ReadManifest(r)
}

// loadRuntime loads the named package and returns its Runtime type.
func loadRuntime(path string) (*types.Named, error) {
	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedTypes | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, path)
	if err != nil {
		return nil, fmt.Errorf("error loading packages: %w", err)
	}
	if len(pkgs) == 0 || pkgs[0].Types == nil {
		return nil, fmt.Errorf("no package %s", path)
	}
	pkg := pkgs[0].Types
	r := pkg.Scope().Lookup("Runtime")
	if r == nil {
		return nil, fmt.Errorf("%s has no definition of Runtime", pkg.Name())
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s has incorrect definition of Runtime: %v", pkg.Name(), r)
	}
	n, ok := t.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s defines Runtime as an alias: %v", pkg.Name(), r)
	}
	return n, nil
}

// entry is one primitive as seen from its Go method.
type entry struct {
	Name   string
	Method string
	Params []string
	Result string
}

func (e entry) String() string {
	s := fmt.Sprintf("- {name: %s, method: %s, params: [%s]", e.Name, e.Method, strings.Join(e.Params, ", "))
	if e.Result != "" {
		s += ", result: " + e.Result
	}
	return s + "}"
}

// find lists the exported methods of *rt matching mre and not ire, sorted by
// method name. Names are derived from the method names and types from the
// Go signatures.
func find(rt *types.Named, mre, ire *regexp.Regexp) []entry {
	ch := make(chan entry, 8)
	go func() {
		defer close(ch)
		ms := types.NewMethodSet(types.NewPointer(rt))
		for i := 0; i < ms.Len(); i++ {
			f := ms.At(i).Obj()
			name := f.Name()
			if !f.Exported() || !mre.MatchString(name) || ire.MatchString(name) {
				continue
			}
			sig := f.Type().(*types.Signature)
			e := entry{Name: snake(name), Method: name, Params: tigerTypes(sig.Params())}
			if r := tigerTypes(sig.Results()); len(r) > 0 {
				e.Result = strings.Join(r, ", ")
			}
			ch <- e
		}
	}()
	r := []entry{}
	for e := range ch {
		r = append(r, e)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Method < r[j].Method })
	return r
}

// resolve names each entry as the primitive table does for its method, and
// narrows block types to the array or record the table gives in their place.
// Entries for methods not in the table are left as they are.
func resolve(entries []entry, prims []internal.Primitive) []entry {
	byMethod := make(map[string]internal.Primitive, len(prims))
	for _, p := range prims {
		byMethod[p.Method] = p
	}
	r := make([]entry, len(entries))
	for i, e := range entries {
		p, ok := byMethod[e.Method]
		if !ok {
			r[i] = e
			continue
		}
		e.Name = p.Name
		params := make([]string, len(e.Params))
		for k, t := range e.Params {
			if k < len(p.Params) {
				t = narrow(t, p.Params[k])
			}
			params[k] = t
		}
		e.Params = params
		e.Result = narrow(e.Result, p.Result)
		r[i] = e
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}

// narrow returns want if it is a block kind and have is a block, otherwise
// have.
func narrow(have, want string) string {
	if have == "block" && (want == "array" || want == "record") {
		return want
	}
	return have
}

// compare reports every difference between the entries and the primitives
// of a manifest.
func compare(entries []entry, prims []internal.Primitive) []string {
	var diffs []string
	seen := make(map[string]bool, len(prims))
	for _, p := range prims {
		seen[p.Name] = true
	}
	have := make(map[string]bool, len(entries))
	for _, e := range entries {
		have[e.Name] = true
		if !seen[e.Name] {
			diffs = append(diffs, fmt.Sprintf("%s: method %s is not in the manifest", e.Name, e.Method))
		}
	}
	for _, p := range prims {
		if !have[p.Name] {
			diffs = append(diffs, fmt.Sprintf("%s: no runtime method %s", p.Name, p.Method))
			continue
		}
		want := entry{Name: p.Name, Method: p.Method, Params: p.Params, Result: p.Result}
		for _, e := range entries {
			if e.Name == p.Name && e.String() != want.String() {
				diffs = append(diffs, fmt.Sprintf("%s: runtime has %v, manifest has %v", p.Name, e, want))
			}
		}
	}
	return diffs
}

// tigerTypes names the Tiger types of a tuple.
func tigerTypes(t *types.Tuple) []string {
	r := make([]string, t.Len())
	for i := range r {
		r[i] = tigerType(t.At(i).Type())
	}
	return r
}

func tigerType(t types.Type) string {
	if p, ok := t.(*types.Pointer); ok {
		if n, ok := p.Elem().(*types.Named); ok {
			switch n.Obj().Name() {
			case "String":
				return "string"
			case "Block":
				return "block"
			}
		}
	}
	if b, ok := t.Underlying().(*types.Basic); ok {
		if b.Info()&(types.IsInteger|types.IsBoolean) != 0 {
			return "int"
		}
	}
	return t.String()
}

// snake converts a method name to the primitive naming convention.
func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
