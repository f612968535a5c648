package shape

import (
	"go/ast"
	"go/token"
	"go/types"
)

// FromSpec describes a type declared in Go source. The array length is
// kept as written, so constant names and "..." fail validation. Aliases and
// generic types cannot take the generated methods and never qualify.
func FromSpec(spec *ast.TypeSpec) TypeDescriptor {
	name := spec.Name.Name
	switch {
	case spec.Assign.IsValid():
		return Tuple(name, TypeExpr{Kind: Other, Name: "alias of " + types.ExprString(spec.Type)})
	case spec.TypeParams != nil:
		return Tuple(name, TypeExpr{Kind: Other, Name: "generic " + types.ExprString(spec.Type)})
	}
	if st, ok := spec.Type.(*ast.StructType); ok {
		var fs []Field
		for _, f := range st.Fields.List {
			t := exprFromAST(f.Type)
			if len(f.Names) == 0 {
				// embedded fields are named after their type
				fs = append(fs, Field{Name: types.ExprString(f.Type), Type: t})
				continue
			}
			for _, n := range f.Names {
				fs = append(fs, Field{Name: n.Name, Type: t})
			}
		}
		return TypeDescriptor{Name: name, Fields: fs}
	}
	return TypeDescriptor{Name: name, Fields: []Field{{Type: exprFromAST(spec.Type)}}}
}

func exprFromAST(e ast.Expr) TypeExpr {
	switch x := e.(type) {
	case *ast.ParenExpr:
		return exprFromAST(x.X)
	case *ast.Ident:
		return Named(x.Name)
	case *ast.ArrayType:
		elem := exprFromAST(x.Elt)
		if x.Len == nil {
			return SliceOf(elem)
		}
		return ArrayOf(lenText(x.Len), elem)
	case *ast.StructType:
		return TypeExpr{Kind: Struct}
	default:
		return TypeExpr{Kind: Other, Name: types.ExprString(e)}
	}
}

func lenText(e ast.Expr) string {
	if lit, ok := e.(*ast.BasicLit); ok && lit.Kind == token.INT {
		return lit.Value
	}
	return types.ExprString(e)
}
