package ast

import "testing"

func TestTypeEnvBuiltinFallback(t *testing.T) {
	env := NewTypeEnv()
	typ, ok := env.Lookup("int")
	if !ok || typ.Shape != ShapePrimitive {
		t.Fatalf("expected 'int' to resolve to a builtin primitive, got %v, %v", typ, ok)
	}
}

func TestTypeEnvShadowing(t *testing.T) {
	env := NewTypeEnv()
	outer := &TypeAnnotation{Name: "Point", Shape: ShapeUserDefined}
	env.Declare("T", outer)

	env.Push()
	inner := &TypeAnnotation{Name: "Vector", Shape: ShapeUserDefined}
	env.Declare("T", inner)
	if got, _ := env.Lookup("T"); got != inner {
		t.Fatal("expected inner scope declaration to shadow outer")
	}
	env.Pop()
	if got, _ := env.Lookup("T"); got != outer {
		t.Fatal("expected outer declaration to be visible again after Pop")
	}
}

func TestTypeEnvUnknownNameMisses(t *testing.T) {
	env := NewTypeEnv()
	if _, ok := env.Lookup("NoSuchType"); ok {
		t.Fatal("expected lookup of an undeclared name to fail")
	}
}

func TestExprResolvedTypeRoundTrip(t *testing.T) {
	lit := &LiteralExpr{Kind: LiteralInt, Text: "42"}
	intType := Builtin("int")
	lit.SetResolvedType(intType)
	if lit.ResolvedType() != intType {
		t.Fatal("expected SetResolvedType/ResolvedType to round-trip")
	}
}
