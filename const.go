package lispy

// FloatTolerance is the absolute tolerance used by Equal on Float values and
// by the <= and >= float builtins. Spec §9 requires a single constant used
// consistently by both.
const FloatTolerance = 1e-9

// AmpSymbol is the reserved symbol that marks a variadic formal parameter.
// It is only special when it appears in a lambda's formals list; elsewhere
// it is an ordinary Sym.
const AmpSymbol = "&"
