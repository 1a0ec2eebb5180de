package builtins

import (
	"fmt"
	"os"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/eval"
	"github.com/lispy-lang/lispy/internal/parsetree"
	"github.com/lispy-lang/lispy/reader"
)

// Print writes each argument to env's configured output, space-separated,
// followed by a newline.
func Print(env *lispy.Env, args []lispy.Value) lispy.Value {
	w := env.Output()
	for i, v := range args {
		if i > 0 {
			_, _ = fmt.Fprint(w, " ")
		}
		_, _ = lispy.Print(w, v)
	}
	_, _ = fmt.Fprintln(w)
	return lispy.MakeSExpr()
}

// Error returns an Err carrying the given string. It does not raise; the
// caller decides what to do with the returned value like any other Err.
func Error(_ *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("error", args, 1); errv != nil {
		return errv
	}
	s, errv := asStr("error", args, 0)
	if errv != nil {
		return errv
	}
	return lispy.MakeErr(s.GoString())
}

// Load parses path, evaluates every top-level expression it contains in
// order against env, and prints any Err result to env's configured output.
// On parse failure it returns an Err wrapping the underlying message
// instead of evaluating anything.
func Load(env *lispy.Env, args []lispy.Value) lispy.Value {
	if errv := argCount("load", args, 1); errv != nil {
		return errv
	}
	path, errv := asStr("load", args, 0)
	if errv != nil {
		return errv
	}
	f, err := os.Open(path.GoString())
	if err != nil {
		return lispy.MakeErr("Could not load Library: " + err.Error())
	}
	defer f.Close()

	root, err := parsetree.New(f).ParseProgram()
	if err != nil {
		return lispy.MakeErr("Could not load Library: " + err.Error())
	}

	expr := reader.Read(root)
	top, ok := lispy.GetSExpr(expr)
	if !ok {
		return lispy.MakeErr("Could not load Library: malformed program")
	}
	for _, form := range top.Items {
		result := eval.Eval(env, form)
		if e, ok := lispy.GetErr(result); ok {
			_, _ = lispy.Print(env.Output(), e)
			_, _ = fmt.Fprintln(env.Output())
		}
	}
	return lispy.MakeSExpr()
}
