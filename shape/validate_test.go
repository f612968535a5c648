package shape

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"
	"testing"
)

func TestValidateAcceptsByteArrays(t *testing.T) {
	cases := []struct {
		d    TypeDescriptor
		want int
	}{
		{Tuple("Address", ArrayOf("20", Named("byte"))), 20},
		{Tuple("Hash", ArrayOf("32", Named("uint8"))), 32},
		{Tuple("Empty", ArrayOf("0", Named("byte"))), 0},
		{Tuple("Hex", ArrayOf("0x14", Named("byte"))), 20},
		{Tuple("Big", ArrayOf("1_024", Named("byte"))), 1024},
	}
	for _, tc := range cases {
		n, err := Validate(tc.d)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.d, err)
		}
		if n != tc.want {
			t.Fatalf("%s: n=%d want %d", tc.d, n, tc.want)
		}
	}
}

func TestValidateRejectsIneligibleShapes(t *testing.T) {
	byteArr := ArrayOf("20", Named("byte"))
	cases := []struct {
		name   string
		d      TypeDescriptor
		reason string
	}{
		{"no fields", TypeDescriptor{Name: "Unit"}, "has 0 fields"},
		{"two fields", Tuple("Pair", byteArr, byteArr), "has 2 fields"},
		{"named field", TypeDescriptor{Name: "Named", Fields: []Field{{Name: "Raw", Type: byteArr}}}, `field "Raw" is named`},
		{"slice", Tuple("Var", SliceOf(Named("byte"))), "variable-length"},
		{"ident", Tuple("Alias", Named("string")), "not an array"},
		{"wide element", Tuple("Words", ArrayOf("4", Named("uint32"))), "element uint32 is not byte"},
		{"nested array", Tuple("Grid", ArrayOf("2", ArrayOf("2", Named("byte")))), "element [2]byte is not byte"},
		{"nil element", Tuple("Broken", TypeExpr{Kind: Array, Len: "4"}), "element ? is not byte"},
		{"const length", Tuple("Key", ArrayOf("KeyLen", Named("byte"))), `length "KeyLen" is not an integer literal`},
		{"ellipsis", Tuple("Auto", ArrayOf("...", Named("byte"))), "not an integer literal"},
		{"expression", Tuple("Sum", ArrayOf("10 + 10", Named("byte"))), "not an integer literal"},
		{"negative", Tuple("Neg", ArrayOf("-1", Named("byte"))), "not an integer literal"},
		{"float", Tuple("Float", ArrayOf("2.0", Named("byte"))), "not an integer literal"},
		{"too large", Tuple("Huge", ArrayOf("99999999999", Named("byte"))), "not an integer literal"},
	}
	for _, tc := range cases {
		n, err := Validate(tc.d)
		if err == nil {
			t.Fatalf("%s: expected error, got n=%d", tc.name, n)
		}
		if !errors.Is(err, ErrIneligible) {
			t.Fatalf("%s: error %v does not match ErrIneligible", tc.name, err)
		}
		var se *ShapeError
		if !errors.As(err, &se) || se.Type != tc.d.Name {
			t.Fatalf("%s: want *ShapeError for %q, got %#v", tc.name, tc.d.Name, err)
		}
		if !strings.Contains(err.Error(), tc.reason) {
			t.Fatalf("%s: message %q does not mention %q", tc.name, err.Error(), tc.reason)
		}
	}
}

func TestValidateDoesNotMutateDescriptor(t *testing.T) {
	d := Tuple("Address", ArrayOf("20", Named("byte")))
	before := d.String()
	if _, err := Validate(d); err != nil {
		t.Fatal(err)
	}
	if d.String() != before || d.Fields[0].Type.Elem.Name != "byte" {
		t.Fatalf("descriptor changed: %s -> %s", before, d.String())
	}
}

type (
	reflAddress [20]byte
	reflWords   [4]uint32
	myByte      uint8
	reflMine    [4]myByte
	reflStruct  struct{ Raw [20]byte }
	reflSlice   []byte
)

func TestOfReflectTypes(t *testing.T) {
	ok := []struct {
		typ  reflect.Type
		want int
	}{
		{reflect.TypeOf(reflAddress{}), 20},
		{reflect.TypeOf([8]byte{}), 8},
		{reflect.TypeOf([0]uint8{}), 0},
	}
	for _, tc := range ok {
		n, err := Validate(Of(tc.typ))
		if err != nil || n != tc.want {
			t.Fatalf("%v: n=%d err=%v want %d", tc.typ, n, err, tc.want)
		}
	}

	bad := []reflect.Type{
		reflect.TypeOf(reflWords{}),
		reflect.TypeOf(reflMine{}),
		reflect.TypeOf(reflStruct{}),
		reflect.TypeOf(reflSlice{}),
		reflect.TypeOf(""),
		nil,
	}
	for _, typ := range bad {
		if _, err := Validate(Of(typ)); !errors.Is(err, ErrIneligible) {
			t.Fatalf("%v: expected ErrIneligible, got %v", typ, err)
		}
	}

	if got := Of(reflect.TypeOf(reflAddress{})).Name; got != "reflAddress" {
		t.Fatalf("name=%q", got)
	}
}

const src = `package p

const KeyLen = 32

type (
	Address [20]byte
	Hash    [0x20]uint8
	Paren   ([4]byte)
	Key     [KeyLen]byte
	Auto    [...]byte
	Words   [4]uint32
	Bytes   []byte
	Pair    struct{ A, B [4]byte }
	Ptr     *[4]byte
)
`

func parseSpecs(t *testing.T) map[string]*ast.TypeSpec {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "p.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := make(map[string]*ast.TypeSpec)
	ast.Inspect(f, func(n ast.Node) bool {
		if ts, ok := n.(*ast.TypeSpec); ok {
			out[ts.Name.Name] = ts
		}
		return true
	})
	return out
}

func TestFromSpec(t *testing.T) {
	specs := parseSpecs(t)

	for name, want := range map[string]int{"Address": 20, "Hash": 32, "Paren": 4} {
		n, err := Validate(FromSpec(specs[name]))
		if err != nil || n != want {
			t.Fatalf("%s: n=%d err=%v want %d", name, n, err, want)
		}
	}

	for name, reason := range map[string]string{
		"Key":   `"KeyLen"`,
		"Auto":  `"..."`,
		"Words": "uint32",
		"Bytes": "variable-length",
		"Pair":  "has 2 fields",
		"Ptr":   "*[4]byte",
	} {
		_, err := Validate(FromSpec(specs[name]))
		if err == nil || !strings.Contains(err.Error(), reason) {
			t.Fatalf("%s: err=%v, want mention of %s", name, err, reason)
		}
	}
}
