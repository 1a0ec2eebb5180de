package builtins_test

import (
	"strings"
	"testing"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/builtins"
)

func rootEnv() *lispy.Env {
	env := lispy.NewEnv(nil)
	env.SetOutput(&strings.Builder{})
	builtins.Register(env)
	return env
}

func TestRegisterBindsEveryName(t *testing.T) {
	t.Parallel()

	env := rootEnv()
	names := []string{
		"list", "head", "tail", "eval", "join",
		"+", "-", "*", "/",
		"def", "=", "\\", "if",
		"==", "!=", "<", ">", "<=", ">=",
		"load", "error", "print",
		"inttofloat", "floattoint", "ceil", "floor", "round",
		"typeof", "quit",
	}
	for _, name := range names {
		v := env.Get(lispy.MakeSym(name))
		if _, ok := lispy.GetFun(v); !ok {
			t.Errorf("builtin %q not bound, got %v", name, v)
		}
	}
}

func TestListRetagsArguments(t *testing.T) {
	t.Parallel()
	got := builtins.List(nil, []lispy.Value{lispy.MakeInt(1), lispy.MakeInt(2)})
	q, ok := lispy.GetQExpr(got)
	if !ok || len(q.Items) != 2 {
		t.Errorf("got %v, want QExpr(1 2)", got)
	}
}

func TestHeadWrongType(t *testing.T) {
	t.Parallel()
	got := builtins.Head(nil, []lispy.Value{lispy.MakeInt(1)})
	e, ok := lispy.GetErr(got)
	if !ok {
		t.Fatalf("got %v, want Err", got)
	}
	want := "Function 'head' passed incorrect type for argument 0. Got Number, Expected Q-Expression."
	if e.Message() != want {
		t.Errorf("got %q, want %q", e.Message(), want)
	}
}

func TestJoinTypeErrorHasNoTrailingPeriod(t *testing.T) {
	t.Parallel()
	got := builtins.Join(nil, []lispy.Value{lispy.MakeQExpr(), lispy.MakeInt(1)})
	e, ok := lispy.GetErr(got)
	if !ok {
		t.Fatalf("got %v, want Err", got)
	}
	if strings.HasSuffix(e.Message(), ".") {
		t.Errorf("join type error should not end with a period, got %q", e.Message())
	}
}

func TestOrdIntReturnsInt(t *testing.T) {
	t.Parallel()
	got := builtins.Lt(nil, []lispy.Value{lispy.MakeInt(1), lispy.MakeInt(2)})
	if _, ok := lispy.GetInt(got); !ok {
		t.Errorf("< on ints should return an Int, got %v (%T)", got, got)
	}
}

func TestOrdFloatReturnsFloat(t *testing.T) {
	t.Parallel()
	got := builtins.Lt(nil, []lispy.Value{lispy.MakeFloat(1), lispy.MakeFloat(2)})
	if _, ok := lispy.GetFloat(got); !ok {
		t.Errorf("< on floats should return a Float (spec §9 open question, preserved bug-for-bug), got %v (%T)", got, got)
	}
}

func TestLeFloatUsesTolerance(t *testing.T) {
	t.Parallel()
	got := builtins.Le(nil, []lispy.Value{lispy.MakeFloat(1.0), lispy.MakeFloat(1.0 + 1e-10)})
	f, ok := lispy.GetFloat(got)
	if !ok || f != 1 {
		t.Errorf("<= within tolerance should be true, got %v", got)
	}
}

func TestDefRejectsDuplicateSymbols(t *testing.T) {
	t.Parallel()
	env := rootEnv()
	got := builtins.Def(env, []lispy.Value{
		lispy.MakeQExpr(lispy.MakeSym("x"), lispy.MakeSym("x")),
		lispy.MakeInt(1), lispy.MakeInt(2),
	})
	if _, ok := lispy.GetErr(got); !ok {
		t.Errorf("def with duplicate symbols should error, got %v", got)
	}
}

func TestLambdaRejectsDuplicateFormals(t *testing.T) {
	t.Parallel()
	got := builtins.Lambda(nil, []lispy.Value{
		lispy.MakeQExpr(lispy.MakeSym("x"), lispy.MakeSym("x")),
		lispy.MakeQExpr(),
	})
	if _, ok := lispy.GetErr(got); !ok {
		t.Errorf("lambda with duplicate formals should error, got %v", got)
	}
}

func TestPrintWritesToEnvOutput(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	env := lispy.NewEnv(nil)
	env.SetOutput(&sb)

	builtins.Print(env, []lispy.Value{lispy.MakeInt(1), lispy.MakeStr("hi")})
	if want := "1 \"hi\"\n"; sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestErrorBuiltinDoesNotRaise(t *testing.T) {
	t.Parallel()
	got := builtins.Error(nil, []lispy.Value{lispy.MakeStr("boom")})
	e, ok := lispy.GetErr(got)
	if !ok || e.Message() != "boom" {
		t.Errorf("got %v, want Err(boom)", got)
	}
}

func TestIntToFloatIdempotent(t *testing.T) {
	t.Parallel()
	got := builtins.IntToFloat(nil, []lispy.Value{lispy.MakeFloat(2.5)})
	f, ok := lispy.GetFloat(got)
	if !ok || f != 2.5 {
		t.Errorf("got %v, want Float(2.5) unchanged", got)
	}
}

func TestFloatToIntTruncatesTowardZero(t *testing.T) {
	t.Parallel()
	got := builtins.FloatToInt(nil, []lispy.Value{lispy.MakeFloat(-1.8)})
	n, ok := lispy.GetInt(got)
	if !ok || n != -1 {
		t.Errorf("got %v, want Int(-1)", got)
	}
}
