// Package reader converts a parsed expression tree into a Value (spec
// §4.2). It is the one place tag substrings decide what kind of Value a
// node becomes; everything downstream works only in terms of Value.
package reader

import (
	"strconv"
	"strings"

	"github.com/lispy-lang/lispy"
	"github.com/lispy-lang/lispy/internal/parsetree"
)

// Read converts a single parse-tree node into a Value, dispatching on
// substrings of its tag exactly as spec §4.2 specifies.
func Read(n *parsetree.Node) lispy.Value {
	tag := n.Tag
	switch {
	case strings.Contains(tag, "number"):
		return readNumber(n.Contents)
	case strings.Contains(tag, "double"):
		return readDouble(n.Contents)
	case strings.Contains(tag, "string"):
		return readString(n.Contents)
	case strings.Contains(tag, "symbol"):
		return lispy.MakeSym(n.Contents)
	case tag == parsetree.TagRoot || strings.Contains(tag, "sexpr"):
		return lispy.MakeSExpr(readChildren(n)...)
	case strings.Contains(tag, "qexpr"):
		return lispy.MakeQExpr(readChildren(n)...)
	default:
		return lispy.Errf("unrecognized parse-tree tag %q", tag)
	}
}

func readNumber(contents string) lispy.Value {
	n, err := strconv.ParseInt(contents, 10, 64)
	if err != nil {
		return lispy.InvalidNumberError{}.AsErr()
	}
	return lispy.MakeInt(n)
}

func readDouble(contents string) lispy.Value {
	f, err := strconv.ParseFloat(contents, 64)
	if err != nil {
		return lispy.InvalidNumberError{}.AsErr()
	}
	return lispy.MakeFloat(f)
}

// readString strips the surrounding quotes and processes the escape
// sequences spec §6.2 names: \n \t \r \" \\.
func readString(contents string) lispy.Value {
	inner := contents
	if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
		inner = inner[1 : len(inner)-1]
	}
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(inner[i])
			}
			continue
		}
		sb.WriteByte(c)
	}
	return lispy.MakeStr(sb.String())
}

// readChildren filters out literal bracket tokens and comment nodes,
// recursively reading everything else, per spec §4.2's sexpr/qexpr rule.
func readChildren(n *parsetree.Node) []lispy.Value {
	var vs []lispy.Value
	for _, c := range n.Children {
		if c.Tag == parsetree.TagBracket || strings.Contains(c.Tag, "comment") {
			continue
		}
		vs = append(vs, Read(c))
	}
	return vs
}
