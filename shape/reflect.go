package shape

import (
	"reflect"
	"strconv"
)

var uint8Type = reflect.TypeOf(uint8(0))

// Of describes a runtime type. An array type becomes a single positional
// field; struct fields are always named in Go, so structs never qualify.
func Of(t reflect.Type) TypeDescriptor {
	if t == nil {
		return TypeDescriptor{Name: "<nil>"}
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}

	if t.Kind() == reflect.Struct {
		fs := make([]Field, t.NumField())
		for i := range fs {
			sf := t.Field(i)
			fs[i] = Field{Name: sf.Name, Type: exprOf(sf.Type)}
		}
		return TypeDescriptor{Name: name, Fields: fs}
	}
	return TypeDescriptor{Name: name, Fields: []Field{{Type: exprOf(t)}}}
}

func exprOf(t reflect.Type) TypeExpr {
	switch t.Kind() {
	case reflect.Array:
		return ArrayOf(strconv.Itoa(t.Len()), elemOf(t.Elem()))
	case reflect.Slice:
		return SliceOf(elemOf(t.Elem()))
	case reflect.Struct:
		return TypeExpr{Kind: Struct}
	default:
		return TypeExpr{Kind: Other, Name: t.String()}
	}
}

// elemOf keeps only the predeclared uint8 as "uint8"; a named byte type
// keeps its own name and fails validation.
func elemOf(t reflect.Type) TypeExpr {
	if t == uint8Type {
		return Named("uint8")
	}
	if t.Name() != "" {
		return Named(t.String())
	}
	return exprOf(t)
}
