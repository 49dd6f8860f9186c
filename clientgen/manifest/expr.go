package manifest

import (
	"strings"
	"unicode"

	"github.com/developerxd/webapiclientgen/errors"
)

// ExprKind tags an Expr.
type ExprKind int

const (
	ExprNamed ExprKind = iota
	ExprTuple
	ExprNullable
	ExprArray
)

// Expr is a parsed type expression.
type Expr struct {
	Kind ExprKind
	// Name and Args describe named (possibly generic) types.
	Name string
	// Args holds generic arguments or tuple components.
	Args []*Expr
	// Elem and Rank describe nullable and array wrappers.
	Elem *Expr
	Rank int
}

// String renders e in canonical form.
func (e *Expr) String() string {
	switch e.Kind {
	case ExprTuple:
		return "(" + joinExprs(e.Args) + ")"
	case ExprNullable:
		return e.Elem.String() + "?"
	case ExprArray:
		return e.Elem.String() + "[" + strings.Repeat(",", e.Rank-1) + "]"
	}
	if len(e.Args) > 0 {
		return e.Name + "<" + joinExprs(e.Args) + ">"
	}
	return e.Name
}

func joinExprs(es []*Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// ParseExpr parses a type expression:
//
//	type    = primary { "?" | "[" { "," } "]" }
//	primary = name [ "<" type { "," type } ">" ] | "(" type "," type { "," type } ")"
//	name    = letters, digits, "_", "." and "`"
func ParseExpr(s string) (*Expr, error) {
	p := &exprParser{src: s}
	e, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return e, nil
}

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.ErrInvalidInput, "type expression %q at offset %d: "+format,
		append([]interface{}{p.src, p.pos}, args...)...)
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", string(c))
	}
	p.pos++
	return nil
}

func (p *exprParser) parseType() (*Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case '?':
			p.pos++
			e = &Expr{Kind: ExprNullable, Elem: e}
		case '[':
			p.pos++
			rank := 1
			for p.peek() == ',' {
				p.pos++
				rank++
			}
			if err := p.expect(']'); err != nil {
				return nil, err
			}
			e = &Expr{Kind: ExprArray, Elem: e, Rank: rank}
		default:
			return e, nil
		}
	}
}

func (p *exprParser) parsePrimary() (*Expr, error) {
	if p.peek() == '(' {
		p.pos++
		items, err := p.parseList(')')
		if err != nil {
			return nil, err
		}
		if len(items) < 2 {
			return nil, p.errorf("a tuple needs at least two components")
		}
		return &Expr{Kind: ExprTuple, Args: items}, nil
	}

	name := p.parseName()
	if name == "" {
		if p.pos >= len(p.src) {
			return nil, p.errorf("missing type name")
		}
		return nil, p.errorf("unexpected %q", string(p.src[p.pos]))
	}
	e := &Expr{Kind: ExprNamed, Name: name}
	if p.peek() == '<' {
		p.pos++
		args, err := p.parseList('>')
		if err != nil {
			return nil, err
		}
		e.Args = args
	}
	return e, nil
}

// parseList reads "type {, type} close" after the opening bracket.
func (p *exprParser) parseList(closing byte) ([]*Expr, error) {
	var items []*Expr
	for {
		item, err := p.parseType()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		switch p.peek() {
		case ',':
			p.pos++
		case closing:
			p.pos++
			return items, nil
		default:
			return nil, p.errorf("expected ',' or %q", string(closing))
		}
	}
}

func (p *exprParser) parseName() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := rune(p.src[p.pos])
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.' || c == '`' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}
