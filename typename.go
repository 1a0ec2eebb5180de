package lispy

// TypeName returns the display name for v's tag, exactly as the typeof
// builtin and type-error diagnostics use it (spec §4.5).
func TypeName(v Value) string {
	switch v.(type) {
	case Fun:
		return "Function"
	case Int:
		return "Number"
	case Float:
		return "Double"
	case Err:
		return "Error"
	case Sym:
		return "Symbol"
	case Str:
		return "String"
	case SExpr:
		return "S-Expression"
	case QExpr:
		return "Q-Expression"
	default:
		return "Unknown"
	}
}
