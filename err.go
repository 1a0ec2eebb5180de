package lispy

import (
	"fmt"
	"io"
)

// Err is a first-class error value. It carries a formatted diagnostic
// message and surfaces through S-expression reduction like any other value;
// it is never recovered automatically (spec §7).
type Err struct{ msg string }

// MakeErr creates an Err from a literal message. The message is taken as
// data, never as a format string (spec §9): callers that need
// interpolation must build the final string themselves before calling
// MakeErr.
func MakeErr(msg string) Err { return Err{msg} }

// Errf builds an Err from a format string and arguments, the one place in
// this package where formatting is appropriate, since the format string is
// always a package constant, never user-supplied data.
func Errf(format string, args ...any) Err {
	return Err{fmt.Sprintf(format, args...)}
}

// Message returns the carried diagnostic text.
func (e Err) Message() string { return e.msg }

func (Err) IsNil() bool   { return false }
func (e Err) Copy() Value { return e }

func (e Err) Equal(other Value) bool {
	o, ok := other.(Err)
	return ok && e.msg == o.msg
}

func (e Err) String() string { return "Error: " + e.msg }

func (e Err) Print(w io.Writer) (int, error) { return io.WriteString(w, e.String()) }

// GetErr returns v as an Err, if possible.
func GetErr(v Value) (Err, bool) {
	if IsNil(v) {
		return Err{}, false
	}
	e, ok := v.(Err)
	return e, ok
}
