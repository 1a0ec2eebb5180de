package builtins

import (
	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval"
)

// If checks its already-evaluated condition c (an Int) and retags+evaluates
// the then-branch (c non-zero) or the
// else-branch QExpr as an SExpr. The unselected branch is never evaluated.
func If(env *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("if", args, 3); errv != nil {
		return errv
	}
	cond, errv := asInt("if", args, 0)
	if errv != nil {
		return errv
	}
	thenBranch, errv := asQExpr("if", args, 1)
	if errv != nil {
		return errv
	}
	elseBranch, errv := asQExpr("if", args, 2)
	if errv != nil {
		return errv
	}
	if cond != 0 {
		return eval.Eval(env, thenBranch.ToSExpr())
	}
	return eval.Eval(env, elseBranch.ToSExpr())
}
