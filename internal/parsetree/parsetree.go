// Package parsetree implements a small recursive-descent parser over the
// Lispy grammar (spec §6.2), producing the tag/contents/children node shape
// spec §6.1 describes as the contract between an external parser and the
// reader package. It deliberately emits literal bracket tokens and comment
// nodes as real children rather than filtering them during parsing: that
// filtering is the reader's job (spec §4.2), not the parser's.
package parsetree

import (
	"fmt"
	"io"

	"github.com/lispy-lang/lispy/internal/token"
)

// Node is one node of a parsed expression tree.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// Tags used for Node.Tag. Number, Double, Symbol, String, and Comment carry
// their raw source text in Contents; SExpr/QExpr/Root carry their elements
// as Children; Bracket nodes are the literal token markers the reader
// filters out.
const (
	TagNumber  = "number"
	TagDouble  = "double"
	TagSymbol  = "symbol"
	TagString  = "string"
	TagComment = "comment"
	TagSExpr   = "sexpr"
	TagQExpr   = "qexpr"
	TagRoot    = ">"
	TagBracket = "regex"
)

// Error reports a syntax error with position information.
type Error struct {
	Msg       string
	Line, Col int
}

func (e *Error) Error() string { return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg) }

// Parser consumes a token.Lexer and builds a Node tree.
type Parser struct {
	lx   *token.Lexer
	peek *token.Token
}

// New creates a Parser reading tokens from r.
func New(r io.Reader) *Parser {
	return &Parser{lx: token.New(r)}
}

func (p *Parser) next() (token.Token, error) {
	if p.peek != nil {
		t := *p.peek
		p.peek = nil
		return t, nil
	}
	return p.lx.Next()
}

func (p *Parser) peekTok() (token.Token, error) {
	if p.peek == nil {
		t, err := p.lx.Next()
		if err != nil {
			return token.Token{}, err
		}
		p.peek = &t
	}
	return *p.peek, nil
}

// ParseProgram reads every top-level expression until end of input and
// returns them as children of a single Root node (tag ">" per spec §6.1).
func (p *Parser) ParseProgram() (*Node, error) {
	root := &Node{Tag: TagRoot}
	for {
		t, err := p.peekTok()
		if err != nil {
			return nil, err
		}
		if t.Kind == token.EOF {
			return root, nil
		}
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, n)
	}
}

// ParseOne reads a single top-level expression. It returns io.EOF if there
// is nothing left to read.
func (p *Parser) ParseOne() (*Node, error) {
	t, err := p.peekTok()
	if err != nil {
		return nil, err
	}
	if t.Kind == token.EOF {
		return nil, io.EOF
	}
	return p.parseExpr()
}

func (p *Parser) parseExpr() (*Node, error) {
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case token.Number:
		return &Node{Tag: TagNumber, Contents: t.Text}, nil
	case token.Double:
		return &Node{Tag: TagDouble, Contents: t.Text}, nil
	case token.Symbol:
		return &Node{Tag: TagSymbol, Contents: t.Text}, nil
	case token.String:
		return &Node{Tag: TagString, Contents: t.Text}, nil
	case token.Comment:
		// A comment standing where an expression was expected is returned as
		// a real node: ParseProgram keeps it as a child of the root, and the
		// reader is what filters it out.
		return &Node{Tag: TagComment, Contents: t.Text}, nil
	case token.LParen:
		return p.parseList(TagSExpr, token.RParen, "(", ")")
	case token.LBrace:
		return p.parseList(TagQExpr, token.RBrace, "{", "}")
	case token.RParen, token.RBrace:
		return nil, &Error{Msg: "unexpected closing bracket", Line: t.Line, Col: t.Col}
	default:
		return nil, &Error{Msg: "unexpected end of input", Line: t.Line, Col: t.Col}
	}
}

func (p *Parser) parseList(tag string, closeKind token.Kind, openLit, closeLit string) (*Node, error) {
	n := &Node{Tag: tag}
	n.Children = append(n.Children, &Node{Tag: TagBracket, Contents: openLit})
	for {
		t, err := p.peekTok()
		if err != nil {
			return nil, err
		}
		if t.Kind == closeKind {
			_, _ = p.next()
			n.Children = append(n.Children, &Node{Tag: TagBracket, Contents: closeLit})
			return n, nil
		}
		if t.Kind == token.EOF {
			return nil, &Error{Msg: "unexpected end of input inside list", Line: t.Line, Col: t.Col}
		}
		if t.Kind == token.Comment {
			_, _ = p.next()
			n.Children = append(n.Children, &Node{Tag: TagComment, Contents: t.Text})
			continue
		}
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
}
