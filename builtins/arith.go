package builtins

import "github.com/lispy-lang/lispy"

// arithOp builds the +, -, *, / builtin for the given operator symbol. All
// arguments must share the same numeric tag, inferred from the first
// argument; unary "-" negates. Integer division truncates toward zero and
// division by zero yields an Err; float division follows IEEE-754.
func arithOp(op string) lispy.BuiltinFunc {
	return func(_ *lispy.Env, args []lispy.Value) lispy.Value {
		if errv := argCountMin(op, args, 1); errv != nil {
			return errv
		}
		if _, ok := lispy.GetFloat(args[0]); ok {
			return arithFloat(op, args)
		}
		return arithInt(op, args)
	}
}

func arithInt(op string, args []lispy.Value) lispy.Value {
	want := "Number"
	for i, a := range args {
		if _, ok := lispy.GetInt(a); !ok {
			return typeErr(op, i, a, want)
		}
	}
	x, _ := lispy.GetInt(args[0])
	rest := args[1:]
	if op == "-" && len(rest) == 0 {
		return -x
	}
	for _, a := range rest {
		y, _ := lispy.GetInt(a)
		switch op {
		case "+":
			x += y
		case "-":
			x -= y
		case "*":
			x *= y
		case "/":
			if y == 0 {
				return lispy.DivisionByZeroError{}.AsErr()
			}
			x /= y
		}
	}
	return x
}

func arithFloat(op string, args []lispy.Value) lispy.Value {
	want := "Double"
	for i, a := range args {
		if _, ok := lispy.GetFloat(a); !ok {
			return typeErr(op, i, a, want)
		}
	}
	x, _ := lispy.GetFloat(args[0])
	rest := args[1:]
	if op == "-" && len(rest) == 0 {
		return -x
	}
	for _, a := range rest {
		y, _ := lispy.GetFloat(a)
		switch op {
		case "+":
			x += y
		case "-":
			x -= y
		case "*":
			x *= y
		case "/":
			x /= y
		}
	}
	return x
}

// Add implements the + builtin.
func Add(env *lispy.Env, args []lispy.Value) lispy.Value { return arithOp("+")(env, args) }

// Sub implements the - builtin, including unary negation.
func Sub(env *lispy.Env, args []lispy.Value) lispy.Value { return arithOp("-")(env, args) }

// Mul implements the * builtin.
func Mul(env *lispy.Env, args []lispy.Value) lispy.Value { return arithOp("*")(env, args) }

// Div implements the / builtin.
func Div(env *lispy.Env, args []lispy.Value) lispy.Value { return arithOp("/")(env, args) }
