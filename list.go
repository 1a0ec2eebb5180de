package lispy

import (
	"io"
	"strings"
)

// SExpr is an evaluable, ordered list of values.
type SExpr struct{ Items []Value }

// QExpr is a quoted, ordered list of values; it is never auto-evaluated.
type QExpr struct{ Items []Value }

// MakeSExpr builds an SExpr from the given values, taking ownership of the
// slice (callers that still need their own copy must Copy it first).
func MakeSExpr(vs ...Value) SExpr { return SExpr{Items: vs} }

// MakeQExpr builds a QExpr from the given values.
func MakeQExpr(vs ...Value) QExpr { return QExpr{Items: vs} }

// ToQExpr retags an SExpr as a QExpr without copying its elements.
func (s SExpr) ToQExpr() QExpr { return QExpr{Items: s.Items} }

// ToSExpr retags a QExpr as an SExpr without copying its elements.
func (q QExpr) ToSExpr() SExpr { return SExpr{Items: q.Items} }

func (s SExpr) IsNil() bool { return false }
func (q QExpr) IsNil() bool { return false }

func (s SExpr) Copy() Value { return SExpr{Items: copyValues(s.Items)} }
func (q QExpr) Copy() Value { return QExpr{Items: copyValues(q.Items)} }

func copyValues(vs []Value) []Value {
	if vs == nil {
		return nil
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = v.Copy()
	}
	return out
}

func (s SExpr) Equal(other Value) bool {
	o, ok := other.(SExpr)
	return ok && equalItems(s.Items, o.Items)
}

func (q QExpr) Equal(other Value) bool {
	o, ok := other.(QExpr)
	return ok && equalItems(q.Items, o.Items)
}

func equalItems(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (s SExpr) String() string { return bracketString('(', s.Items, ')') }
func (q QExpr) String() string { return bracketString('{', q.Items, '}') }

func (s SExpr) Print(w io.Writer) (int, error) { return printBracketed(w, '(', s.Items, ')') }
func (q QExpr) Print(w io.Writer) (int, error) { return printBracketed(w, '{', q.Items, '}') }

func bracketString(open byte, items []Value, close byte) string {
	var sb strings.Builder
	_, _ = printBracketed(&sb, open, items, close)
	return sb.String()
}

func printBracketed(w io.Writer, open byte, items []Value, close byte) (int, error) {
	total := 0
	n, err := w.Write([]byte{open})
	total += n
	if err != nil {
		return total, err
	}
	for i, v := range items {
		if i > 0 {
			n, err = io.WriteString(w, " ")
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err = Print(w, v)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = w.Write([]byte{close})
	total += n
	return total, err
}

// GetSExpr returns v as an SExpr, if possible.
func GetSExpr(v Value) (SExpr, bool) {
	if IsNil(v) {
		return SExpr{}, false
	}
	s, ok := v.(SExpr)
	return s, ok
}

// GetQExpr returns v as a QExpr, if possible.
func GetQExpr(v Value) (QExpr, bool) {
	if IsNil(v) {
		return QExpr{}, false
	}
	q, ok := v.(QExpr)
	return q, ok
}
