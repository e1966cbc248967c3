// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package hindley

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/wdamron/hindley/ast"
	. "github.com/wdamron/hindley/construct"
	"github.com/wdamron/hindley/types"
)

func factorial() ast.Expr {
	n := Var("n")
	return Fix(Lam([]string{"fact", "n"},
		If(App(Prim(ast.Eql), n, Int(0)),
			Int(1),
			App(Prim(ast.Mul), n, App(Var("fact"), App(Prim(ast.Sub), n, Int(1)))))))
}

var inferCases = []struct {
	name string
	expr ast.Expr
}{
	{"int", Int(42)},
	{"bool", Bool(true)},
	{"id", Lam([]string{"x"}, Var("x"))},
	{"const", Lam([]string{"x", "y"}, Var("x"))},
	{"apply", Lam([]string{"f", "x"}, App(Var("f"), Var("x")))},
	{"compose", Lam([]string{"f", "g", "x"}, App(Var("f"), App(Var("g"), Var("x"))))},
	{"twice", Lam([]string{"f", "x"}, App(Var("f"), App(Var("f"), Var("x"))))},
	{"add", App(Prim(ast.Add), Int(4), Int(9))},
	{"add-partial", App(Prim(ast.Add), Int(4))},
	{"let-id-id", Let("id", Lam([]string{"x"}, Var("x")), App(Var("id"), Var("id")))},
	{"let-poly-pair", Let("f", Lam([]string{"x"}, Var("x")), App(Prim(ast.Pair), App(Var("f"), Int(1)), App(Var("f"), Bool(true))))},
	{"let-captures-lambda-param", Lam([]string{"y"}, Let("f", Lam([]string{"x"}, Var("y")), App(Var("f"), Int(1))))},
	{"map", Prim(ast.Map)},
	{"map-eq", App(Prim(ast.Map), Lam([]string{"x"}, App(Prim(ast.Eql), Var("x"), Int(1))), List(Int(1), Int(2)))},
	{"foldl", Prim(ast.Foldl)},
	{"sum", App(Prim(ast.Foldl), Prim(ast.Add), Int(0), List(Int(1), Int(2), Int(3)))},
	{"pair", App(Prim(ast.Pair), Int(1), Bool(true))},
	{"fst", App(Prim(ast.Fst), App(Prim(ast.Pair), Int(1), Bool(true)))},
	{"swap", Lam([]string{"p"}, App(Prim(ast.Pair), App(Prim(ast.Snd), Var("p")), App(Prim(ast.Fst), Var("p"))))},
	{"nil", Prim(ast.Nil)},
	{"cons", App(Prim(ast.Cons), Int(1), Prim(ast.Nil))},
	{"null", App(Prim(ast.Null), List(Bool(true)))},
	{"empty-list", List()},
	{"nested-list", List(List(Int(1)), List())},
	{"factorial", factorial()},
	{"fix-id", Fix(Lam([]string{"x"}, Var("x")))},
}

func TestInferGolden(t *testing.T) {
	var sb strings.Builder
	for _, c := range inferCases {
		sc, err := Infer(NewTypeEnv(), c.expr)
		require.NoError(t, err, c.name)
		sb.WriteString(c.name + " :: " + sc.String() + "\n")
	}
	golden.Assert(t, sb.String(), "infer.golden")
}

func TestLiterals(t *testing.T) {
	ti := NewContext()
	typ, cs, err := ti.Constraints(NewTypeEnv(), Int(7))
	require.NoError(t, err)
	assert.Empty(t, cs)
	assert.True(t, types.Equal(types.Int(), typ))

	typ, cs, err = ti.Constraints(NewTypeEnv(), Bool(false))
	require.NoError(t, err)
	assert.Empty(t, cs)
	assert.True(t, types.Equal(types.Bool(), typ))
	assert.Equal(t, 0, ti.VarCount())
}

func TestUnboundVariable(t *testing.T) {
	_, err := Infer(NewTypeEnv(), Lam([]string{"x"}, App(Var("x"), Var("y"))))
	require.Error(t, err)
	var unbound *UnboundVariable
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "y", unbound.Name)
	assert.Equal(t, KindUnboundVariable, unbound.Kind())
	assert.Equal(t, "Variable y not found", err.Error())
}

func TestOccursCheck(t *testing.T) {
	a := TVar("a")
	s, err := Unify(a, a)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	for _, typ := range []types.Type{TList(a), TArrow(TInt(), a), TPair(TBool(), TList(a))} {
		_, err := Unify(a, typ)
		var inf *InfiniteType
		require.ErrorAs(t, err, &inf)
		assert.Equal(t, a, inf.Var)

		_, err = Unify(typ, a)
		require.ErrorAs(t, err, &inf)
	}

	_, err = Infer(NewTypeEnv(), Lam([]string{"x"}, App(Var("x"), Var("x"))))
	te, ok := AsTypeError(err)
	require.True(t, ok)
	assert.Equal(t, KindInfiniteType, te.Kind())
}

func TestUnify(t *testing.T) {
	a, b := TVar("a"), TVar("b")
	s, err := Unify(TArrow(a, TList(b)), TArrow(TInt(), TList(TBool())))
	require.NoError(t, err)
	assert.Equal(t, "Int", types.TypeString(types.Apply(s, a)))
	assert.Equal(t, "Bool", types.TypeString(types.Apply(s, b)))

	// later components see earlier bindings
	s, err = Unify(TPair(a, a), TPair(TInt(), b))
	require.NoError(t, err)
	assert.Equal(t, "(Int, Int)", types.TypeString(types.Apply(s, TPair(a, b))))

	_, err = Unify(TInt(), TBool())
	var fail *UnificationFail
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, "Cannot unify Int with Bool", fail.Error())

	_, err = Unify(TList(a), TPair(a, b))
	require.ErrorAs(t, err, &fail)
	_, err = Unify(TArrow(a, b), TInt())
	require.ErrorAs(t, err, &fail)
}

func TestUnifyManyMismatch(t *testing.T) {
	_, err := unifyMany([]types.Type{TInt()}, []types.Type{TInt(), TBool()})
	var mismatch *UnificationMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, KindUnificationMismatch, mismatch.Kind())
	assert.Len(t, mismatch.Right, 2)
}

func TestLetPolymorphism(t *testing.T) {
	id := Lam([]string{"x"}, Var("x"))
	useTwice := App(Prim(ast.Pair), App(Var("f"), Int(1)), App(Var("f"), Bool(true)))

	sc, err := Infer(NewTypeEnv(), Let("f", id, useTwice))
	require.NoError(t, err)
	assert.Equal(t, "(Int, Bool)", sc.String())

	// the same function bound by a lambda is monomorphic
	_, err = Infer(NewTypeEnv(), App(Lam([]string{"f"}, useTwice), id))
	var fail *UnificationFail
	require.ErrorAs(t, err, &fail)
}

func TestPrimitiveApplication(t *testing.T) {
	sc, err := Infer(NewTypeEnv(), App(Prim(ast.Add), Int(4), Int(9)))
	require.NoError(t, err)
	assert.Equal(t, "Int", sc.String())

	_, err = Infer(NewTypeEnv(), App(Prim(ast.Add), Bool(true)))
	var fail *UnificationFail
	require.ErrorAs(t, err, &fail)
	assert.True(t, types.Equal(types.Int(), fail.Left))
	assert.True(t, types.Equal(types.Bool(), fail.Right))
}

func TestPrimitivesMintFreshVars(t *testing.T) {
	// each use of map gets its own variables, so the two uses do not unify
	expr := App(Prim(ast.Pair),
		App(Prim(ast.Map), Lam([]string{"x"}, App(Prim(ast.Eql), Var("x"), Int(0))), List(Int(1))),
		App(Prim(ast.Map), Prim(ast.Null), List(List(Bool(true)))))
	sc, err := Infer(NewTypeEnv(), expr)
	require.NoError(t, err)
	assert.Equal(t, "([Bool], [Bool])", sc.String())
}

func TestConditional(t *testing.T) {
	_, err := Infer(NewTypeEnv(), If(Bool(true), Int(1), Bool(true)))
	var fail *UnificationFail
	require.ErrorAs(t, err, &fail)
	assert.True(t, types.Equal(types.Int(), fail.Left))
	assert.True(t, types.Equal(types.Bool(), fail.Right))

	_, err = Infer(NewTypeEnv(), If(Int(1), Int(1), Int(2)))
	require.ErrorAs(t, err, &fail)

	sc, err := Infer(NewTypeEnv(), If(Bool(true), Lam([]string{"x"}, Var("x")), Lam([]string{"y"}, App(Prim(ast.Add), Var("y"), Int(1)))))
	require.NoError(t, err)
	assert.Equal(t, "Int -> Int", sc.String())
}

func TestConditionalWithFix(t *testing.T) {
	expr := If(Bool(true), Lam([]string{"x"}, Var("x")), Fix(Prim(ast.Add)))
	typ, cs, err := NewContext().Constraints(NewTypeEnv(), expr)
	require.NoError(t, err)
	assert.Equal(t, "t1 -> t1", typ.String())
	require.Len(t, cs, 3)
	assert.Equal(t, "Int -> Int -> Int ~ t2 -> t2", cs[0].String())
	assert.Equal(t, "Bool ~ Bool", cs[1].String())
	assert.Equal(t, "t1 -> t1 ~ t2", cs[2].String())

	// fix + requires Int ~ Int -> Int
	_, err = Infer(NewTypeEnv(), expr)
	var fail *UnificationFail
	require.ErrorAs(t, err, &fail)
}

func TestFreshNames(t *testing.T) {
	ti := NewContext()
	typ, _, err := ti.Constraints(NewTypeEnv(), Lam([]string{"x", "y"}, Var("x")))
	require.NoError(t, err)
	assert.Equal(t, "t1 -> t2 -> t1", typ.String())

	typ, _, err = ti.Constraints(NewTypeEnv(), Lam([]string{"x"}, Var("x")))
	require.NoError(t, err)
	assert.Equal(t, "t3 -> t3", typ.String())

	ti.Reset()
	typ, _, err = ti.Constraints(NewTypeEnv(), Lam([]string{"x"}, Var("x")))
	require.NoError(t, err)
	assert.Equal(t, "t1 -> t1", typ.String())
}

func TestExplain(t *testing.T) {
	inf, err := Explain(NewTypeEnv(), App(Prim(ast.Add), Int(4), Int(9)))
	require.NoError(t, err)
	assert.Equal(t, "t2", inf.Type.String())
	require.Len(t, inf.Constraints, 2)
	assert.Equal(t, "Int -> Int -> Int ~ Int -> t1", inf.Constraints[0].String())
	assert.Equal(t, "t1 ~ Int -> t2", inf.Constraints[1].String())
	assert.Equal(t, "Int", types.Apply(inf.Subst, inf.Type).String())
	assert.Equal(t, "Int", inf.Scheme.String())
}

func TestLetConstraintsReachOuterSolve(t *testing.T) {
	// let x = (+ 1) in x
	inf, err := Explain(NewTypeEnv(), Let("x", App(Prim(ast.Add), Int(1)), Var("x")))
	require.NoError(t, err)
	require.Len(t, inf.Constraints, 1)
	assert.Equal(t, "Int -> Int -> Int ~ Int -> t1", inf.Constraints[0].String())
	assert.Equal(t, "Int -> Int", inf.Scheme.String())
}

func TestGeneralize(t *testing.T) {
	a, b := TVar("a"), TVar("b")
	env := NewTypeEnv().DeclareMono("x", a)
	sc := Generalize(env, TArrow(b, a, b))
	assert.Equal(t, []types.Var{b}, sc.Vars)

	ti := NewContext()
	typ := ti.Instantiate(sc)
	assert.Equal(t, "t1 -> a -> t1", typ.String())
}

func TestNormalize(t *testing.T) {
	x, y := TVar("x"), TVar("y")
	p, q := TVar("t7"), TVar("t3")
	s1 := Normalize(types.Forall([]types.Var{x, y}, TArrow(y, x, y)))
	s2 := Normalize(types.Forall([]types.Var{q, p}, TArrow(p, q, p)))
	assert.Equal(t, "forall a b. a -> b -> a", s1.String())
	assert.Equal(t, s1.String(), s2.String())
	assert.Equal(t, s1.String(), Normalize(s1).String())

	// quantified variables which do not occur are dropped
	assert.Equal(t, "forall a. [a]", Normalize(types.Forall([]types.Var{x, y}, TList(y))).String())

	assert.Panics(t, func() { Normalize(types.Forall([]types.Var{x}, TArrow(x, y))) })
}

func TestCloseOverIdempotent(t *testing.T) {
	for _, c := range inferCases {
		ti := NewContext()
		inf, err := ti.Explain(NewTypeEnv(), c.expr)
		require.NoError(t, err, c.name)
		solved := types.Apply(inf.Subst, inf.Type)
		once := CloseOver(solved)
		assert.Equal(t, once.String(), Normalize(once).String(), c.name)
		assert.Equal(t, once.String(), CloseOver(once.Body).String(), c.name)
	}
}

func TestVarNames(t *testing.T) {
	assert.Equal(t, "a", varName(0))
	assert.Equal(t, "z", varName(25))
	assert.Equal(t, "a1", varName(26))
	assert.Equal(t, "b1", varName(27))
	assert.Equal(t, "a2", varName(52))
}

func TestSolveOrder(t *testing.T) {
	a, b := TVar("a"), TVar("b")
	// the last constraint is solved first, binding a to b before b is bound to Int
	s, err := Solve([]Constraint{{b, TInt()}, {a, b}})
	require.NoError(t, err)
	assert.Equal(t, "Int", types.Apply(s, a).String())
	assert.Equal(t, "Int", types.Apply(s, b).String())

	_, err = Solve([]Constraint{{a, TInt()}, {a, TBool()}})
	var fail *UnificationFail
	require.ErrorAs(t, err, &fail)
	assert.True(t, types.Equal(types.Bool(), fail.Left))
	assert.True(t, types.Equal(types.Int(), fail.Right))

	s, err = Solve(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestTypeEnv(t *testing.T) {
	a := TVar("a")
	env := NewTypeEnv().DeclareMono("x", a)
	extended := env.Extend("y", types.Mono(TInt()))
	assert.Equal(t, 1, env.Len())
	assert.Equal(t, []string{"x", "y"}, extended.Names())

	shadowed := extended.Extend("x", types.Mono(TBool()))
	sc, ok := shadowed.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "Bool", sc.String())
	sc, _ = extended.Lookup("x")
	assert.Equal(t, "a", sc.String())

	applied := extended.Apply(types.SingletonSubst(a, TList(TInt())))
	sc, _ = applied.Lookup("x")
	assert.Equal(t, "[Int]", sc.String())
	assert.Equal(t, 0, applied.FreeVars().Len())
	assert.Equal(t, []types.Var{a}, extended.FreeVars().Sorted())

	_, ok = extended.Remove("y").Lookup("y")
	assert.False(t, ok)

	var zero TypeEnv
	assert.Equal(t, 0, zero.Len())
	poly := zero.Declare("id", TArrow(a, a))
	sc, _ = poly.Lookup("id")
	assert.Equal(t, "forall a. a -> a", sc.String())
}

func TestPrograms(t *testing.T) {
	prog := Program(
		App(Var("k"), App(Var("id"), Int(1)), Bool(true)),
		Def("id", Lam([]string{"x"}, Var("x"))),
		Def("k", Lam([]string{"x", "y"}, Var("x"))),
		Def("fact", factorial()),
	)
	env, sc, err := InferProgram(NewTypeEnv(), prog)
	require.NoError(t, err)
	assert.Equal(t, "Int", sc.String())
	assert.Equal(t, []string{"fact", "id", "k"}, env.Names())
	idScheme, _ := env.Lookup("id")
	assert.Equal(t, "forall a. a -> a", idScheme.String())

	env, sc, err = InferProgram(NewTypeEnv(), Program(nil, Def("one", Int(1))))
	require.NoError(t, err)
	assert.Nil(t, sc)
	assert.Equal(t, 1, env.Len())

	_, err = InferDefinitions(NewTypeEnv(), []ast.Defn{
		Def("ok", Int(1)),
		Def("bad", App(Prim(ast.Add), Bool(true))),
		Def("never", Var("missing")),
	})
	require.Error(t, err)
	assert.Equal(t, "definition bad: Cannot unify Int with Bool", err.Error())
	te, ok := AsTypeError(err)
	require.True(t, ok)
	assert.Equal(t, KindUnificationFail, te.Kind())

	_, _, err = InferProgram(NewTypeEnv(), Program(If(Bool(true), Int(1), Bool(false))))
	assert.EqualError(t, err, "program body: Cannot unify Int with Bool")
	_, ok = AsTypeError(err)
	assert.True(t, ok)
}

func TestFoldDefinitions(t *testing.T) {
	var seen []string
	env, err := NewContext().FoldDefinitions(NewTypeEnv(), []ast.Defn{
		Def("id", Lam([]string{"x"}, Var("x"))),
		Def("one", App(Var("id"), Int(1))),
	}, func(name string, sc *types.Scheme) {
		seen = append(seen, name+" :: "+sc.String())
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"id :: forall a. a -> a", "one :: Int"}, seen)
	assert.Equal(t, 2, env.Len())

	seen = nil
	_, err = NewContext().FoldDefinitions(NewTypeEnv(), []ast.Defn{
		Def("ok", Int(1)),
		Def("bad", Var("missing")),
	}, func(name string, sc *types.Scheme) { seen = append(seen, name) })
	assert.EqualError(t, err, "definition bad: Variable missing not found")
	assert.Equal(t, []string{"ok"}, seen)
}

func TestAmbiguousIsReserved(t *testing.T) {
	err := &Ambiguous{Constraints: []Constraint{{TVar("a"), TInt()}}}
	assert.Equal(t, KindAmbiguous, err.Kind())
	assert.Equal(t, "Ambiguous constraints: a ~ Int", err.Error())
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	ti := NewContext()
	ti.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	_, err := ti.Infer(NewTypeEnv(), Let("id", Lam([]string{"x"}, Var("x")), App(Var("id"), Int(1))))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "msg=infer")
	assert.Contains(t, out, "msg=generalize")
	assert.Contains(t, out, "msg=solve")
	assert.Contains(t, out, `scheme="forall t1. t1 -> t1"`)

	buf.Reset()
	ti.SetLogger(nil)
	_, err = ti.Infer(NewTypeEnv(), Int(1))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
