package builtins

import "github.com/lispy-lang/lispy"

// ordOp builds the <, >, <=, >= builtin for the given operator. Both
// arguments must share the same numeric tag. The Int form always returns an
// Int 0/1. The Float form returns a Float 0.0/1.0, reproducing the original
// interpreter's divergence between builtin_ord on ints vs. doubles (spec §9
// Open Question: preserved bug-for-bug rather than normalized, see
// DESIGN.md). <= and >= on floats use FloatTolerance; < and > are strict.
func ordOp(op string) lispy.BuiltinFunc {
	return func(_ *lispy.Env, args []lispy.Value) lispy.Value {
		if errv := argCount(op, args, 2); errv != nil {
			return errv
		}
		if _, ok := lispy.GetFloat(args[0]); ok {
			return ordFloat(op, args)
		}
		return ordInt(op, args)
	}
}

func ordInt(op string, args []lispy.Value) lispy.Value {
	x, errv := asInt(op, args, 0)
	if errv != nil {
		return errv
	}
	y, errv := asInt(op, args, 1)
	if errv != nil {
		return errv
	}
	var result bool
	switch op {
	case "<":
		result = x < y
	case ">":
		result = x > y
	case "<=":
		result = x <= y
	case ">=":
		result = x >= y
	}
	return boolToInt(result)
}

func ordFloat(op string, args []lispy.Value) lispy.Value {
	x, errv := asFloat(op, args, 0)
	if errv != nil {
		return errv
	}
	y, errv := asFloat(op, args, 1)
	if errv != nil {
		return errv
	}
	var result bool
	switch op {
	case "<":
		result = x < y
	case ">":
		result = x > y
	case "<=":
		result = x <= y || withinTolerance(x, y)
	case ">=":
		result = x >= y || withinTolerance(x, y)
	}
	return boolToFloat(result)
}

func withinTolerance(x, y lispy.Float) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d <= lispy.FloatTolerance
}

func boolToInt(b bool) lispy.Int {
	if b {
		return lispy.MakeInt(1)
	}
	return lispy.MakeInt(0)
}

func boolToFloat(b bool) lispy.Float {
	if b {
		return lispy.MakeFloat(1)
	}
	return lispy.MakeFloat(0)
}

// Lt, Gt, Le, Ge implement <, >, <=, >=.
func Lt(env *lispy.Env, args []lispy.Value) lispy.Value { return ordOp("<")(env, args) }
func Gt(env *lispy.Env, args []lispy.Value) lispy.Value { return ordOp(">")(env, args) }
func Le(env *lispy.Env, args []lispy.Value) lispy.Value { return ordOp("<=")(env, args) }
func Ge(env *lispy.Env, args []lispy.Value) lispy.Value { return ordOp(">=")(env, args) }

// Eq implements "==": structural equality over any two values, returned as
// an Int 0/1.
func Eq(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("==", args, 2); errv != nil {
		return errv
	}
	return boolToInt(lispy.Equal(args[0], args[1]))
}

// Ne implements "!=".
func Ne(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("!=", args, 2); errv != nil {
		return errv
	}
	return boolToInt(!lispy.Equal(args[0], args[1]))
}
