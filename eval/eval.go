// Package eval implements the tree-walking evaluator: symbol resolution,
// S-expression reduction, call dispatch for both builtins and user
// lambdas, and partial application (spec §4.4).
package eval

import (
	"fmt"

	"github.com/lispy-lang/lispy"
)

// Eval evaluates v against env. A Sym resolves through env; an SExpr
// reduces per the rules below; every other tag evaluates to itself.
func Eval(env *lispy.Env, v lispy.Value) lispy.Value {
	switch val := v.(type) {
	case lispy.Sym:
		return env.Get(val)
	case lispy.SExpr:
		return evalSExpr(env, val)
	default:
		return v
	}
}

func evalSExpr(env *lispy.Env, s lispy.SExpr) lispy.Value {
	// Per spec §4.4, every child is evaluated in order before any error
	// check: an evaluated child's side effects (print, load, quit) run
	// even when a later sibling in the same S-expression turns out to be
	// an Err.
	items := make([]lispy.Value, len(s.Items))
	for i, child := range s.Items {
		items[i] = Eval(env, child)
	}
	for _, v := range items {
		if e, ok := v.(lispy.Err); ok {
			return e
		}
	}

	switch len(items) {
	case 0:
		return lispy.MakeSExpr()
	case 1:
		return items[0]
	}

	f, ok := items[0].(lispy.Fun)
	if !ok {
		return lispy.MakeErr(fmt.Sprintf(
			"S-Expression starts with incorrect type. Got %s, Expected Function.",
			lispy.TypeName(items[0])))
	}
	return Call(env, f, items[1:])
}

// Call dispatches a call to f with the already-evaluated args, per spec
// §4.4. A builtin is invoked directly. A lambda consumes args against its
// formals, binding one at a time; a formal name "&" packages every
// remaining argument into a QExpr bound to the symbol that follows it. A
// lambda that ends up fully bound has its captured environment's parent
// spliced to the caller's env for the extent of the call, and its body is
// evaluated as an SExpr; a lambda left partially bound is returned as a
// deep copy carrying the bindings made so far.
func Call(env *lispy.Env, f lispy.Fun, args []lispy.Value) lispy.Value {
	if builtin, ok := f.Builtin(); ok {
		return builtin(env, args)
	}

	given, total := len(args), len(f.Formals.Items)
	formals := append([]lispy.Value(nil), f.Formals.Items...)
	lambdaEnv := f.Env

	for len(args) > 0 {
		if len(formals) == 0 {
			return lispy.TooManyArgsError{Got: given, Expected: total}.AsErr()
		}
		sym, ok := lispy.GetSym(formals[0])
		if !ok {
			return lispy.MakeErr("lambda formal is not a symbol")
		}
		formals = formals[1:]

		if sym.Name() == lispy.AmpSymbol {
			if len(formals) != 1 {
				return lispy.AmpFormatError{}.AsErr()
			}
			restSym, ok := lispy.GetSym(formals[0])
			if !ok {
				return lispy.MakeErr("lambda formal is not a symbol")
			}
			lambdaEnv.Put(restSym, lispy.MakeQExpr(args...))
			formals = nil
			args = nil
			break
		}

		lambdaEnv.Put(sym, args[0])
		args = args[1:]
	}

	if len(formals) > 0 {
		if first, ok := lispy.GetSym(formals[0]); ok && first.Name() == lispy.AmpSymbol {
			if len(formals) != 2 {
				return lispy.AmpFormatError{}.AsErr()
			}
			restSym, ok := lispy.GetSym(formals[1])
			if !ok {
				return lispy.MakeErr("lambda formal is not a symbol")
			}
			lambdaEnv.Put(restSym, lispy.MakeQExpr())
			formals = nil
		}
	}

	if len(formals) == 0 {
		lambdaEnv.SetParent(env)
		return Eval(lambdaEnv, f.Body.ToSExpr())
	}

	partial := lispy.Fun{Formals: lispy.MakeQExpr(formals...), Body: f.Body, Env: lambdaEnv}
	return partial.Copy()
}
