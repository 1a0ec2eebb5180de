package builtins

import (
	"fmt"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval"
)

// joinTypeErrMsg reproduces join's type-error text exactly: unlike every
// other type error, it has no trailing period (original_source's
// builtin_join builds its LASSERT format string without one).
func joinTypeErrMsg(idx int, got string) string {
	return fmt.Sprintf("Function 'join' passed incorrect type for argument %d. Got %s, Expected Q-Expression", idx, got)
}

// List retags its arguments as a QExpr, the one builtin that returns its
// input list rather than deleting it (spec §5).
func List(_ *lispy.Env, args []lispy.Value) lispy.Value {
	return lispy.MakeQExpr(args...)
}

// Head returns a single-element QExpr containing the first element of its
// one QExpr argument.
func Head(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("head", args, 1); errv != nil {
		return errv
	}
	q, errv := asQExpr("head", args, 0)
	if errv != nil {
		return errv
	}
	if len(q.Items) == 0 {
		return lispy.EmptyListError{Func: "head"}.AsErr()
	}
	return lispy.MakeQExpr(q.Items[0])
}

// Tail returns its one QExpr argument minus its first element.
func Tail(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("tail", args, 1); errv != nil {
		return errv
	}
	q, errv := asQExpr("tail", args, 0)
	if errv != nil {
		return errv
	}
	if len(q.Items) == 0 {
		return lispy.EmptyListError{Func: "tail"}.AsErr()
	}
	return lispy.MakeQExpr(q.Items[1:]...)
}

// Join concatenates any number of QExpr arguments, in order.
func Join(_ *lispy.Env, args []lispy.Value) lispy.Value {
	for i, a := range args {
		if _, ok := lispy.GetQExpr(a); !ok {
			return lispy.MakeErr(joinTypeErrMsg(i, lispy.TypeName(a)))
		}
	}
	var joined []lispy.Value
	for _, a := range args {
		q, _ := lispy.GetQExpr(a)
		joined = append(joined, q.Items...)
	}
	return lispy.MakeQExpr(joined...)
}

// Eval retags its one QExpr argument as an SExpr and evaluates it.
func Eval(env *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("eval", args, 1); errv != nil {
		return errv
	}
	q, errv := asQExpr("eval", args, 0)
	if errv != nil {
		return errv
	}
	return eval.Eval(env, q.ToSExpr())
}
