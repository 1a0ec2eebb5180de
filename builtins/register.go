package builtins

import "github.com/lispy-lang/lispy"

// registry pairs each bound name with its implementation, in the order
// spec §4.6 lists them.
var registry = []struct {
	name string
	fn   lispy.BuiltinFunc
}{
	{"list", List},
	{"head", Head},
	{"tail", Tail},
	{"eval", Eval},
	{"join", Join},
	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},
	{"def", Def},
	{"=", Put},
	{"\\", Lambda},
	{"if", If},
	{"==", Eq},
	{"!=", Ne},
	{"<", Lt},
	{">", Gt},
	{"<=", Le},
	{">=", Ge},
	{"load", Load},
	{"error", Error},
	{"print", Print},
	{"inttofloat", IntToFloat},
	{"floattoint", FloatToInt},
	{"ceil", Ceil},
	{"floor", Floor},
	{"round", Round},
	{"typeof", TypeOf},
	{"quit", Quit},
}

// Register binds every builtin in the standard library into env, which
// should be a fresh root Env (spec §4.6). It is the one place that knows
// the full set of builtin names.
func Register(env *lispy.Env) {
	for _, b := range registry {
		env.Def(lispy.MakeSym(b.name), lispy.MakeBuiltin(b.name, b.fn))
	}
}
