// Package lispy provides the value model and environment for the Lispy
// interpreter: the tagged union of runtime values, their deep-copy,
// equality, and printing contracts, and the lexically scoped environment
// that binds symbols to values.
package lispy

import (
	"fmt"
	"io"
)

// Value is the generic runtime value all Lispy data must implement. There
// are exactly eight concrete implementations: Int, Float, Err, Sym, Str,
// Fun, SExpr, QExpr.
type Value interface {
	fmt.Stringer

	// IsNil reports whether the concrete value is the nil value. No
	// constructor in this package ever produces one; it exists so that a
	// Value held in a plain Go variable can be compared against a zero
	// value without a type assertion.
	IsNil() bool

	// Copy returns a deep copy owned independently of the receiver, so that
	// storing a value in an Env, in a list, or inside a lambda's captured
	// environment never aliases the caller's copy.
	Copy() Value

	// Equal reports structural equality per the rules in Equal.
	Equal(Value) bool
}

// IsNil reports whether v is nil or the nil Value.
func IsNil(v Value) bool { return v == nil || v.IsNil() }

// Printable is implemented by values whose printed form differs from
// String().
type Printable interface {
	Print(io.Writer) (int, error)
}

// Print writes the printed representation of v to w, per spec §4.1: integers
// in base-10, floats in default fractional form, strings escaped and
// quoted, errors as "Error: <msg>", S-expressions inside parentheses,
// Q-expressions inside braces, elements single-space separated.
func Print(w io.Writer, v Value) (int, error) {
	if p, ok := v.(Printable); ok {
		return p.Print(w)
	}
	return io.WriteString(w, v.String())
}

// Equal reports whether x and y are structurally equal per spec §4.1: false
// if their tags differ; Int/Str/Sym/Err compare by value; Float uses the
// FloatTolerance; lists compare element-wise; lambdas compare by formals
// and body only (captured env ignored); two builtins are equal iff they
// share the same underlying function; a builtin and a lambda are never
// equal.
func Equal(x, y Value) bool {
	if IsNil(x) || IsNil(y) {
		return IsNil(x) && IsNil(y)
	}
	return x.Equal(y)
}
