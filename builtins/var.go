package builtins

import (
	"github.com/lispy-lang/lispy"
	"t73f.de/r/zero/set"
)

// symbolsAndValues validates the precondition def and = share: args[0] must
// be a QExpr of distinct Syms, and its length must match the number of
// remaining arguments.
func symbolsAndValues(name string, args []lispy.Value) ([]lispy.Sym, []lispy.Value, lispy.Value) {
	if errv := argCountMin(name, args, 1); errv != nil {
		return nil, nil, errv
	}
	q, errv := asQExpr(name, args, 0)
	if errv != nil {
		return nil, nil, errv
	}
	syms := make([]lispy.Sym, len(q.Items))
	for i, item := range q.Items {
		sym, ok := lispy.GetSym(item)
		if !ok {
			return nil, nil, typeErr(name, i, item, "Symbol")
		}
		syms[i] = sym
	}
	if set.New(syms...).Length() != len(syms) {
		return nil, nil, lispy.MakeErr("Function '" + name + "' passed duplicate symbol in binding list!")
	}
	vals := args[1:]
	if len(syms) != len(vals) {
		return nil, nil, lispy.ArityError{Func: name, Got: len(vals), Expected: len(syms)}.AsErr()
	}
	return syms, vals, nil
}

// Def binds each symbol in its QExpr first argument to the corresponding
// remaining argument in the root environment.
func Def(env *lispy.Env, args []lispy.Value) lispy.Value {
	syms, vals, errv := symbolsAndValues("def", args)
	if errv != nil {
		return errv
	}
	for i, sym := range syms {
		env.Def(sym, vals[i])
	}
	return lispy.MakeSExpr()
}

// Put binds each symbol in its QExpr first argument to the corresponding
// remaining argument in the local environment. It implements the "="
// builtin.
func Put(env *lispy.Env, args []lispy.Value) lispy.Value {
	syms, vals, errv := symbolsAndValues("=", args)
	if errv != nil {
		return errv
	}
	for i, sym := range syms {
		env.Put(sym, vals[i])
	}
	return lispy.MakeSExpr()
}
