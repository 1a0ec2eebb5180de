package builtins

import (
	"os"

	"github.com/lispy-lang/lispy"
)

// Exit is called by Quit instead of os.Exit directly, so tests can swap it
// out rather than terminating the test binary.
var Exit = os.Exit

// Quit terminates the interpreter with the given exit status. n must be an
// Int; on success Quit does not return to its caller.
func Quit(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("quit", args, 1); errv != nil {
		return errv
	}
	n, errv := asInt("quit", args, 0)
	if errv != nil {
		return errv
	}
	Exit(int(n))
	return lispy.MakeSExpr()
}
