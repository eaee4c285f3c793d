package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse parses one column expression. Grammar (simple, phase 1):
//
//	expr    = list | call | scalar
//	list    = "[" [ expr { "," expr } ] "]"
//	call    = ident "(" [ expr { "," expr } ] ")"
//	scalar  = integer | float | string | "true" | "false" | "null"
//
// Strings use single or double quotes without escapes.
func Parse(input string) (Expr, error) {
	p := &parser{in: input}
	p.skipSpace()
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("expr: trailing input at %d: %q", p.pos, p.rest())
	}
	return e, nil
}

type parser struct {
	in  string
	pos int
}

func (p *parser) eof() bool    { return p.pos >= len(p.in) }
func (p *parser) rest() string { return p.in[p.pos:] }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.in[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t' || p.in[p.pos] == '\n' || p.in[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) expect(c byte) error {
	if p.peek() != c {
		return fmt.Errorf("expr: expected %q at %d, got %q", string(c), p.pos, p.rest())
	}
	p.pos++
	return nil
}

func (p *parser) parseExpr() (Expr, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '[':
		return p.parseList()
	case c == '"' || c == '\'':
		return p.parseString()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == '_' || unicode.IsLetter(rune(c)):
		return p.parseIdentOrCall()
	default:
		return nil, fmt.Errorf("expr: unexpected character at %d: %q", p.pos, p.rest())
	}
}

func (p *parser) parseList() (Expr, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	lit := &ListLit{}
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return lit, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		lit.Elems = append(lit.Elems, e)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return lit, nil
	}
}

func (p *parser) parseString() (Expr, error) {
	quote := p.peek()
	p.pos++
	end := strings.IndexByte(p.in[p.pos:], quote)
	if end < 0 {
		return nil, fmt.Errorf("expr: unterminated string at %d", p.pos-1)
	}
	s := p.in[p.pos : p.pos+end]
	p.pos += end + 1
	return &StringLit{Value: s}, nil
}

func (p *parser) parseNumber() (Expr, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	isFloat := false
	for !p.eof() {
		c := p.in[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' || ((c == '+' || c == '-') && isFloat) {
			isFloat = true
			p.pos++
			continue
		}
		break
	}
	tok := p.in[start:p.pos]
	if !isFloat {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expr: bad integer %q at %d", tok, start)
		}
		return &IntLit{Value: v}, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, fmt.Errorf("expr: bad number %q at %d", tok, start)
	}
	return &FloatLit{Value: v}, nil
}

func (p *parser) parseIdentOrCall() (Expr, error) {
	start := p.pos
	for !p.eof() {
		c := rune(p.in[p.pos])
		if c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) {
			p.pos++
			continue
		}
		break
	}
	id := p.in[start:p.pos]

	switch id {
	case "null":
		return &NullLit{}, nil
	case "true":
		return &BoolLit{Value: true}, nil
	case "false":
		return &BoolLit{Value: false}, nil
	}

	p.skipSpace()
	if p.peek() != '(' {
		return nil, fmt.Errorf("expr: unknown identifier %q at %d", id, start)
	}
	p.pos++

	call := &CallExpr{Name: id}
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return call, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, e)
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return call, nil
	}
}
