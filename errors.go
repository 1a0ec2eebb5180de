package lispy

import "fmt"

// These typed errors format to exactly the diagnostic text spec §7
// specifies. Each also converts to a first-class Err value via AsErr, since
// the evaluator never panics or returns a bare Go error to the user: every
// user-visible failure is an Err value flowing through normal evaluation.

// UnboundSymbolError reports a lookup miss walking an Env's parent chain to
// the root.
type UnboundSymbolError struct{ Name string }

func (e UnboundSymbolError) Error() string { return fmt.Sprintf("Unbound symbol '%s'", e.Name) }

// AsErr converts e to a first-class Err value.
func (e UnboundSymbolError) AsErr() Err { return MakeErr(e.Error()) }

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Func          string
	Got, Expected int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		e.Func, e.Got, e.Expected)
}

func (e ArityError) AsErr() Err { return MakeErr(e.Error()) }

// TooManyArgsError reports a lambda call exhausting its formals list.
type TooManyArgsError struct{ Got, Expected int }

func (e TooManyArgsError) Error() string {
	return fmt.Sprintf("Function passed too many arguments. Got %d, Expected %d.", e.Got, e.Expected)
}

func (e TooManyArgsError) AsErr() Err { return MakeErr(e.Error()) }

// AmpFormatError reports '&' in a formals list not followed by exactly one
// symbol.
type AmpFormatError struct{}

func (AmpFormatError) Error() string {
	return "Function format invalid. Symbol '&' not followed by single symbol."
}

func (e AmpFormatError) AsErr() Err { return MakeErr(e.Error()) }

// TypeError reports an argument of the wrong Value tag.
type TypeError struct {
	Func          string
	ArgIndex      int
	Got, Expected string
}

func (e TypeError) Error() string {
	return fmt.Sprintf("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
		e.Func, e.ArgIndex, e.Got, e.Expected)
}

func (e TypeError) AsErr() Err { return MakeErr(e.Error()) }

// EmptyListError reports head/tail called on an empty QExpr.
type EmptyListError struct{ Func string }

func (e EmptyListError) Error() string { return fmt.Sprintf("Function '%s' passed {}!", e.Func) }

func (e EmptyListError) AsErr() Err { return MakeErr(e.Error()) }

// DivisionByZeroError reports integer division by zero.
type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string { return "Division By Zero!" }

func (e DivisionByZeroError) AsErr() Err { return MakeErr(e.Error()) }

// InvalidNumberError reports a number or double literal that fails to parse
// (spec §4.2).
type InvalidNumberError struct{}

func (InvalidNumberError) Error() string { return "invalid number" }

func (e InvalidNumberError) AsErr() Err { return MakeErr(e.Error()) }
