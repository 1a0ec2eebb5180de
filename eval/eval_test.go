package eval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/builtins"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/internal/parsetree"
	"github.com/lispy-lang/lispy/reader"
)

// evalSource parses and evaluates a single top-level expression against a
// fresh root environment with the full standard library bound, mirroring
// the end-to-end scenarios in spec §8.
func evalSource(t *testing.T, src string) lispy.Value {
	t.Helper()
	env := lispy.NewEnv(nil)
	env.SetOutput(&strings.Builder{})
	builtins.Register(env)

	n, err := parsetree.New(strings.NewReader(src)).ParseOne()
	require.NoError(t, err)
	return eval.Eval(env, reader.Read(n))
}

func TestArithmeticSum(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(+ 1 2 3)")
	n, ok := lispy.GetInt(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, lispy.Int(6), n)
}

func TestEvalHeadOfNestedSExprs(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(eval (head {(+ 1 2) (+ 10 20)}))")
	n, ok := lispy.GetInt(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, lispy.Int(3), n)
}

func TestDefThenLookup(t *testing.T) {
	t.Parallel()
	env := lispy.NewEnv(nil)
	env.SetOutput(&strings.Builder{})
	builtins.Register(env)

	parseAndEval := func(src string) lispy.Value {
		n, err := parsetree.New(strings.NewReader(src)).ParseOne()
		require.NoError(t, err)
		return eval.Eval(env, reader.Read(n))
	}
	parseAndEval("(def {x} 100)")
	v := parseAndEval("x")
	n, ok := lispy.GetInt(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, lispy.Int(100), n)
}

func TestVariadicFormals(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "((\\ {x & xs} {xs}) 1 2 3 4)")
	q, ok := lispy.GetQExpr(v)
	require.True(t, ok, "got %v", v)
	require.Len(t, q.Items, 3)
	for i, want := range []int64{2, 3, 4} {
		n, ok := lispy.GetInt(q.Items[i])
		require.True(t, ok)
		assert.Equal(t, lispy.Int(want), n)
	}
}

func TestIfEvaluatesOnlySelectedBranch(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(if (== 1 1) {+ 1 2} {+ 10 20})")
	n, ok := lispy.GetInt(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, lispy.Int(3), n)
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(/ 5 0)")
	e, ok := lispy.GetErr(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, "Error: Division By Zero!", e.String())
}

func TestFloatArithmeticPrintsSixDigits(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(+ 1.5 2.25)")
	f, ok := lispy.GetFloat(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, "3.750000", f.String())
}

func TestRoundingBuiltins(t *testing.T) {
	t.Parallel()
	assertInt := func(src string, want int64) {
		v := evalSource(t, src)
		n, ok := lispy.GetInt(v)
		require.True(t, ok, "got %v for %q", v, src)
		assert.Equal(t, lispy.Int(want), n)
	}
	assertInt("(ceil 1.2)", 2)
	assertInt("(floor 1.8)", 1)
	assertInt("(round 1.5)", 2)
}

func TestTypeOfQExpr(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(typeof {1 2 3})")
	s, ok := lispy.GetStr(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, "Q-Expression", s.GoString())
}

func TestHeadOfEmptyList(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(head {})")
	e, ok := lispy.GetErr(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, "Error: Function 'head' passed {}!", e.String())
}

func TestErrorPropagatesThroughSExpr(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(+ 1 (error \"boom\") 2)")
	e, ok := lispy.GetErr(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, "boom", e.Message())
}

func TestPartialApplicationPrintsAsLambda(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "((\\ {x y} {+ x y}) 3)")
	f, ok := lispy.GetFun(v)
	require.True(t, ok, "got %v", v)
	assert.False(t, f.IsBuiltin())
	assert.Equal(t, "(\\ {y} {+ x y})", f.String())
}

func TestPartialApplicationCompletesOnSecondCall(t *testing.T) {
	t.Parallel()
	env := lispy.NewEnv(nil)
	env.SetOutput(&strings.Builder{})
	builtins.Register(env)

	n1, err := parsetree.New(strings.NewReader("(def {add} (\\ {x y} {+ x y}))")).ParseOne()
	require.NoError(t, err)
	eval.Eval(env, reader.Read(n1))

	n2, err := parsetree.New(strings.NewReader("(def {add3} (add 3))")).ParseOne()
	require.NoError(t, err)
	eval.Eval(env, reader.Read(n2))

	n3, err := parsetree.New(strings.NewReader("(add3 4)")).ParseOne()
	require.NoError(t, err)
	v := eval.Eval(env, reader.Read(n3))

	n, ok := lispy.GetInt(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, lispy.Int(7), n)
}

func TestTooManyArguments(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "((\\ {x} {x}) 1 2)")
	e, ok := lispy.GetErr(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, "Error: Function passed too many arguments. Got 2, Expected 1.", e.String())
}

func TestCallingNonFunction(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "(1 2 3)")
	e, ok := lispy.GetErr(v)
	require.True(t, ok, "got %v", v)
	assert.Contains(t, e.Message(), "incorrect type")
}

func TestUnboundSymbol(t *testing.T) {
	t.Parallel()
	v := evalSource(t, "nope")
	e, ok := lispy.GetErr(v)
	require.True(t, ok, "got %v", v)
	assert.Equal(t, "Error: Unbound symbol 'nope'", e.String())
}
