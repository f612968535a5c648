package gen

import (
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"path/filepath"
	"slices"
	"strings"

	"github.com/unkn0wn-root/zerohex/shape"
)

// DefaultOutput is the file name the CLI writes when -output is not set.
const DefaultOutput = "zerohex_gen.go"

// Load parses the non-test Go files in dir that match the current build
// context and returns the package name and
// a descriptor for each requested type, in the order of names. Files whose
// base name is in exclude are skipped; pass the output file so that stale
// generated code is never read back.
func Load(dir string, names []string, exclude ...string) (string, []shape.TypeDescriptor, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return "", nil, err
	}

	fset := token.NewFileSet()
	pkg := ""
	specs := make(map[string]*ast.TypeSpec)
	for _, p := range paths {
		base := filepath.Base(p)
		if strings.HasSuffix(base, "_test.go") || slices.Contains(exclude, base) {
			continue
		}
		// Honor //go:build lines and _GOOS/_GOARCH suffixes as go build would.
		match, err := build.Default.MatchFile(dir, base)
		if err != nil {
			return "", nil, err
		}
		if !match {
			continue
		}
		f, err := parser.ParseFile(fset, p, nil, parser.SkipObjectResolution)
		if err != nil {
			return "", nil, err
		}
		switch {
		case pkg == "":
			pkg = f.Name.Name
		case pkg != f.Name.Name:
			return "", nil, fmt.Errorf("zerohex: %s: multiple packages (%s, %s)", dir, pkg, f.Name.Name)
		}
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, s := range gd.Specs {
				ts := s.(*ast.TypeSpec)
				specs[ts.Name.Name] = ts
			}
		}
	}
	if pkg == "" {
		return "", nil, fmt.Errorf("zerohex: %s: no Go files", dir)
	}

	ds := make([]shape.TypeDescriptor, 0, len(names))
	for _, name := range names {
		ts, ok := specs[name]
		if !ok {
			return "", nil, fmt.Errorf("zerohex: type %s not found in package %s", name, pkg)
		}
		ds = append(ds, shape.FromSpec(ts))
	}
	return pkg, ds, nil
}
