package builtins

import "github.com/lispy-lang/lispy"

// TypeOf returns the name of v's tag as a Str, per spec §4.5.
func TypeOf(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("typeof", args, 1); errv != nil {
		return errv
	}
	return lispy.MakeStr(lispy.TypeName(args[0]))
}
