package builtins

import (
	"math"

	"github.com/lispy-lang/lispy"
)

// IntToFloat converts an Int to a Float; it is idempotent on a Float
// argument.
func IntToFloat(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("inttofloat", args, 1); errv != nil {
		return errv
	}
	if f, ok := lispy.GetFloat(args[0]); ok {
		return f
	}
	n, ok := lispy.GetInt(args[0])
	if !ok {
		return typeErr("inttofloat", 0, args[0], "Number")
	}
	return lispy.MakeFloat(float64(n))
}

// FloatToInt truncates a Float toward zero into an Int; it is idempotent on
// an Int argument.
func FloatToInt(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("floattoint", args, 1); errv != nil {
		return errv
	}
	if n, ok := lispy.GetInt(args[0]); ok {
		return n
	}
	f, ok := lispy.GetFloat(args[0])
	if !ok {
		return typeErr("floattoint", 0, args[0], "Double")
	}
	return lispy.MakeInt(int64(f))
}

// roundOp builds ceil/floor/round, each of which requires a Float argument
// and returns an Int.
func roundOp(name string, fn func(float64) float64) lispy.BuiltinFunc {
	return func(_ *lispy.Env, args []lispy.Value) lispy.Value {
		if errv := argCount(name, args, 1); errv != nil {
			return errv
		}
		f, errv := asFloat(name, args, 0)
		if errv != nil {
			return errv
		}
		return lispy.MakeInt(int64(fn(float64(f))))
	}
}

// Ceil, Floor, Round implement the ceil/floor/round builtins.
func Ceil(env *lispy.Env, args []lispy.Value) lispy.Value  { return roundOp("ceil", math.Ceil)(env, args) }
func Floor(env *lispy.Env, args []lispy.Value) lispy.Value { return roundOp("floor", math.Floor)(env, args) }
func Round(env *lispy.Env, args []lispy.Value) lispy.Value { return roundOp("round", math.Round)(env, args) }
