package lispy

import (
	"io"
	"strconv"
)

// Int is a 64-bit signed integer value.
type Int int64

// MakeInt creates an Int from a Go int64.
func MakeInt(n int64) Int { return Int(n) }

func (Int) IsNil() bool  { return false }
func (n Int) Copy() Value { return n }

func (n Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && n == o
}

func (n Int) String() string { return strconv.FormatInt(int64(n), 10) }

func (n Int) Print(w io.Writer) (int, error) { return io.WriteString(w, n.String()) }

// GetInt returns v as an Int, if possible.
func GetInt(v Value) (Int, bool) {
	if IsNil(v) {
		return 0, false
	}
	n, ok := v.(Int)
	return n, ok
}
