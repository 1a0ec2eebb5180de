package lispy

import (
	"io"
	"reflect"
)

// BuiltinFunc is the shape every primitive function implements: given the
// calling environment and an already-evaluated argument list, it returns a
// result Value (which may itself be an Err).
type BuiltinFunc func(env *Env, args []Value) Value

// Fun is the function value. It has two shapes sharing one tag: a Builtin,
// an opaque host callable, and a Lambda, a triple of formals, body, and a
// captured environment (spec §3.2).
type Fun struct {
	// Name is the name the builtin was registered under. It is informational
	// only: diagnostics use each builtin's own literal name, and Equal
	// ignores it. Empty for a lambda.
	Name string

	builtin BuiltinFunc

	// Lambda fields. Formals is a QExpr of Sym; Body is a QExpr evaluated
	// as an SExpr at call time; Env is the lambda's own captured
	// environment, which starts with no parent and has one spliced in for
	// the extent of each call.
	Formals QExpr
	Body    QExpr
	Env     *Env
}

// MakeBuiltin wraps a host function as a Fun value.
func MakeBuiltin(name string, fn BuiltinFunc) Fun {
	return Fun{Name: name, builtin: fn}
}

// MakeLambda constructs a lambda Fun with a fresh, empty captured
// environment, per the \ builtin (spec §4.5).
func MakeLambda(formals, body QExpr) Fun {
	return Fun{Formals: formals, Body: body, Env: NewEnv(nil)}
}

// IsBuiltin reports whether f wraps a host function rather than a lambda.
func (f Fun) IsBuiltin() bool { return f.builtin != nil }

// Builtin returns the wrapped host function and whether f is a builtin.
func (f Fun) Builtin() (BuiltinFunc, bool) { return f.builtin, f.builtin != nil }

func (Fun) IsNil() bool { return false }

// Copy copies the pointer for a builtin (it has no mutable state) and
// recurses into formals, body, and captured env for a lambda, per spec
// §4.1.
func (f Fun) Copy() Value {
	if f.IsBuiltin() {
		return f
	}
	return Fun{
		Formals: f.Formals.Copy().(QExpr),
		Body:    f.Body.Copy().(QExpr),
		Env:     f.Env.Copy(),
	}
}

// Equal compares lambdas structurally by formals and body, ignoring the
// captured environment; two builtins are equal iff they wrap the same
// underlying function; a builtin and a lambda are never equal.
func (f Fun) Equal(other Value) bool {
	o, ok := other.(Fun)
	if !ok {
		return false
	}
	if f.IsBuiltin() != o.IsBuiltin() {
		return false
	}
	if f.IsBuiltin() {
		return reflect.ValueOf(f.builtin).Pointer() == reflect.ValueOf(o.builtin).Pointer()
	}
	return f.Formals.Equal(o.Formals) && f.Body.Equal(o.Body)
}

func (f Fun) String() string {
	if f.IsBuiltin() {
		return "<function>"
	}
	return "(\\ " + f.Formals.String() + " " + f.Body.String() + ")"
}

func (f Fun) Print(w io.Writer) (int, error) { return io.WriteString(w, f.String()) }

// GetFun returns v as a Fun, if possible.
func GetFun(v Value) (Fun, bool) {
	if IsNil(v) {
		return Fun{}, false
	}
	f, ok := v.(Fun)
	return f, ok
}
