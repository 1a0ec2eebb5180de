package builtins

import (
	"github.com/lispy-lang/lispy"
	"t73f.de/r/zero/set"
)

// Lambda constructs a lambda Fun from a QExpr of formals and a QExpr body
// (the "\" builtin). Every formal must be a Sym, and duplicate formal names
// (including a repeated "&") are rejected the same way def/= reject
// duplicate binding symbols. Where "&" stands in the list, and how many
// symbols follow it, is not checked here; eval.Call checks that at call
// time.
func Lambda(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("\\", args, 2); errv != nil {
		return errv
	}
	formals, errv := asQExpr("\\", args, 0)
	if errv != nil {
		return errv
	}
	body, errv := asQExpr("\\", args, 1)
	if errv != nil {
		return errv
	}
	names := make([]lispy.Sym, len(formals.Items))
	for i, item := range formals.Items {
		sym, ok := lispy.GetSym(item)
		if !ok {
			return typeErr("\\", i, item, "Symbol")
		}
		names[i] = sym
	}
	if set.New(names...).Length() != len(names) {
		return lispy.MakeErr("Function '\\' passed duplicate symbol in formals list!")
	}
	return lispy.MakeLambda(formals, body)
}
