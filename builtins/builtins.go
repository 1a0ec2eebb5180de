// Package builtins implements Lispy's standard function library (spec
// §4.5): one file per concern, mirroring the teacher's builtins/<concern>
// package layout, plus a shared set of argument-checking helpers modeled on
// that teacher's own builtins.go.
package builtins

import "github.com/lispy-lang/lispy"

// argCount returns an ArityError Value if args doesn't have exactly want
// elements, or nil if it does.
func argCount(name string, args []lispy.Value, want int) lispy.Value {
	if len(args) != want {
		return lispy.ArityError{Func: name, Got: len(args), Expected: want}.AsErr()
	}
	return nil
}

// argCountMin returns an ArityError Value if args has fewer than min
// elements, or nil if it has enough.
func argCountMin(name string, args []lispy.Value, min int) lispy.Value {
	if len(args) < min {
		return lispy.ArityError{Func: name, Got: len(args), Expected: min}.AsErr()
	}
	return nil
}

func asQExpr(name string, args []lispy.Value, idx int) (lispy.QExpr, lispy.Value) {
	q, ok := lispy.GetQExpr(args[idx])
	if !ok {
		return lispy.QExpr{}, typeErr(name, idx, args[idx], "Q-Expression")
	}
	return q, nil
}

func asInt(name string, args []lispy.Value, idx int) (lispy.Int, lispy.Value) {
	n, ok := lispy.GetInt(args[idx])
	if !ok {
		return 0, typeErr(name, idx, args[idx], "Number")
	}
	return n, nil
}

func asFloat(name string, args []lispy.Value, idx int) (lispy.Float, lispy.Value) {
	f, ok := lispy.GetFloat(args[idx])
	if !ok {
		return 0, typeErr(name, idx, args[idx], "Double")
	}
	return f, nil
}

func asStr(name string, args []lispy.Value, idx int) (lispy.Str, lispy.Value) {
	s, ok := lispy.GetStr(args[idx])
	if !ok {
		return lispy.Str{}, typeErr(name, idx, args[idx], "String")
	}
	return s, nil
}

func asSym(name string, args []lispy.Value, idx int) (lispy.Sym, lispy.Value) {
	s, ok := lispy.GetSym(args[idx])
	if !ok {
		return "", typeErr(name, idx, args[idx], "Symbol")
	}
	return s, nil
}

func typeErr(name string, idx int, got lispy.Value, expected string) lispy.Value {
	return lispy.TypeError{Func: name, ArgIndex: idx, Got: lispy.TypeName(got), Expected: expected}.AsErr()
}
