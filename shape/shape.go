// Package shape decides whether a type can carry a fixed-length hex codec.
//
// A type is eligible when it has exactly one positional field whose type is
// an array of bytes with an integer-literal length N:
//
//	type Address [20]byte // eligible, N = 20
//	type Words [4]uint32  // element is not a byte
//	type Key [KeyLen]byte // length is not a literal
//	type Pair struct{ A, B [4]byte }
//
// Descriptors can be written by hand, built from a reflect.Type with Of, or
// built from Go source with FromSpec. Validate never modifies a descriptor.
package shape

import "strings"

// ExprKind classifies a TypeExpr.
type ExprKind uint8

const (
	Other ExprKind = iota
	Ident
	Array
	Slice
	Struct
)

func (k ExprKind) String() string {
	switch k {
	case Ident:
		return "ident"
	case Array:
		return "array"
	case Slice:
		return "slice"
	case Struct:
		return "struct"
	default:
		return "other"
	}
}

// TypeExpr is a minimal view of a field's declared type.
type TypeExpr struct {
	Kind ExprKind
	Name string    // Ident: the identifier, e.g. "byte"; Other: a printable form
	Elem *TypeExpr // Array, Slice
	Len  string    // Array: source text of the length expression
}

func (e TypeExpr) String() string {
	switch e.Kind {
	case Ident:
		return e.Name
	case Array:
		return "[" + e.Len + "]" + e.elem()
	case Slice:
		return "[]" + e.elem()
	case Struct:
		return "struct{...}"
	default:
		if e.Name != "" {
			return e.Name
		}
		return "?"
	}
}

func (e TypeExpr) elem() string {
	if e.Elem == nil {
		return "?"
	}
	return e.Elem.String()
}

// Field is one field of a candidate type. An empty Name marks a positional field.
type Field struct {
	Name string
	Type TypeExpr
}

// TypeDescriptor is the candidate type under inspection.
type TypeDescriptor struct {
	Name   string
	Fields []Field
}

func (d TypeDescriptor) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteByte('(')
	for i, f := range d.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		if f.Name != "" {
			b.WriteString(f.Name)
			b.WriteByte(' ')
		}
		b.WriteString(f.Type.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Named returns an identifier expression.
func Named(name string) TypeExpr { return TypeExpr{Kind: Ident, Name: name} }

// ArrayOf returns an array expression with the given length text.
func ArrayOf(length string, elem TypeExpr) TypeExpr {
	return TypeExpr{Kind: Array, Len: length, Elem: &elem}
}

// SliceOf returns a slice expression.
func SliceOf(elem TypeExpr) TypeExpr { return TypeExpr{Kind: Slice, Elem: &elem} }

// Tuple describes a type whose fields are all positional.
func Tuple(name string, types ...TypeExpr) TypeDescriptor {
	fs := make([]Field, len(types))
	for i, t := range types {
		fs[i] = Field{Type: t}
	}
	return TypeDescriptor{Name: name, Fields: fs}
}
