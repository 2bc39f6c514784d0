package answer

import (
	"math"
	"strconv"
	"strings"
)

// Evaluate computes a single-variable arithmetic expression at x.
//
// The grammar is deliberately small: decimal numbers, the variable x (either
// case), + - * / ^, unary minus, parentheses and sqrt(...). The glyphs ² and ³
// are read as ^2 and ^3. Adjacency is multiplication where a product is
// unambiguous: 2x, 2(x+1), (x+1)(x-1), x(x+1), (x+1)2 and (x+1)x.
// Exponentiation binds tighter than unary minus and is right-associative.
//
// Nesting is limited to 63 levels, counting parentheses, sqrt groups,
// exponents and stacked signs together; deeper input is rejected.
//
// The boolean is false when the input does not parse, is nested too deeply
// or the result is not a finite number. Evaluate never panics.
func Evaluate(expr string, x float64) (float64, bool) {
	expr = strings.NewReplacer("²", "^2", "³", "^3").Replace(expr)

	toks, ok := tokenize(expr)
	if !ok || len(toks) == 0 {
		return 0, false
	}

	p := &evaluator{toks: toks, x: x}
	v, ok := p.parseExpr()
	if !ok || p.pos != len(p.toks) {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokVar
	tokSqrt
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	op   byte
	num  float64
}

// tokenize rejects any identifier other than x and sqrt, which keeps the
// evaluator closed over arithmetic.
func tokenize(s string) ([]token, bool) {
	var toks []token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				i++
			}
			n, err := strconv.ParseFloat(s[start:i], 64)
			if err != nil {
				return nil, false
			}
			toks = append(toks, token{kind: tokNumber, num: n})
		case isLetter(c):
			start := i
			for i < len(s) && isLetter(s[i]) {
				i++
			}
			switch strings.ToLower(s[start:i]) {
			case "x":
				toks = append(toks, token{kind: tokVar})
			case "sqrt":
				toks = append(toks, token{kind: tokSqrt})
			default:
				return nil, false
			}
		case strings.IndexByte("+-*/^", c) >= 0:
			toks = append(toks, token{kind: tokOp, op: c})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		default:
			return nil, false
		}
	}
	return toks, true
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { c |= 0x20; return c >= 'a' && c <= 'z' }

// maxDepth bounds recursion on deeply nested input. The top-level
// expression takes one level.
const maxDepth = 64

type evaluator struct {
	toks  []token
	pos   int
	depth int
	x     float64
}

func (p *evaluator) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *evaluator) peekOp(ops string) (byte, bool) {
	t, ok := p.peek()
	if !ok || t.kind != tokOp || strings.IndexByte(ops, t.op) < 0 {
		return 0, false
	}
	return t.op, true
}

// expr := term (('+' | '-') term)*
func (p *evaluator) parseExpr() (float64, bool) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return 0, false
	}

	v, ok := p.parseTerm()
	if !ok {
		return 0, false
	}
	for {
		op, ok := p.peekOp("+-")
		if !ok {
			return v, true
		}
		p.pos++
		rhs, ok := p.parseTerm()
		if !ok {
			return 0, false
		}
		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

// term := unary (('*' | '/') unary | <adjacent> power)*
func (p *evaluator) parseTerm() (float64, bool) {
	v, ok := p.parseUnary()
	if !ok {
		return 0, false
	}
	for {
		if op, ok := p.peekOp("*/"); ok {
			p.pos++
			rhs, ok := p.parseUnary()
			if !ok {
				return 0, false
			}
			if op == '*' {
				v *= rhs
			} else {
				v /= rhs
			}
			continue
		}
		if !p.implicitProduct() {
			return v, true
		}
		rhs, ok := p.parsePower()
		if !ok {
			return 0, false
		}
		v *= rhs
	}
}

// implicitProduct reports whether the next token starts an operand that
// multiplies the previous one by adjacency.
func (p *evaluator) implicitProduct() bool {
	next, ok := p.peek()
	if !ok || p.pos == 0 {
		return false
	}
	prev := p.toks[p.pos-1]
	switch prev.kind {
	case tokNumber:
		return next.kind == tokVar || next.kind == tokSqrt || next.kind == tokLParen
	case tokRParen:
		return next.kind == tokNumber || next.kind == tokVar || next.kind == tokSqrt || next.kind == tokLParen
	case tokVar:
		return next.kind == tokLParen
	}
	return false
}

// unary := ('-' | '+') unary | power
func (p *evaluator) parseUnary() (float64, bool) {
	if op, ok := p.peekOp("+-"); ok {
		p.pos++
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > maxDepth {
			return 0, false
		}
		v, ok := p.parseUnary()
		if !ok {
			return 0, false
		}
		if op == '-' {
			return -v, true
		}
		return v, true
	}
	return p.parsePower()
}

// power := primary ('^' unary)?
func (p *evaluator) parsePower() (float64, bool) {
	base, ok := p.parsePrimary()
	if !ok {
		return 0, false
	}
	if _, ok := p.peekOp("^"); !ok {
		return base, true
	}
	p.pos++

	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return 0, false
	}
	exp, ok := p.parseUnary()
	if !ok {
		return 0, false
	}
	return math.Pow(base, exp), true
}

// primary := number | x | sqrt '(' expr ')' | '(' expr ')'
func (p *evaluator) parsePrimary() (float64, bool) {
	t, ok := p.peek()
	if !ok {
		return 0, false
	}
	switch t.kind {
	case tokNumber:
		p.pos++
		return t.num, true
	case tokVar:
		p.pos++
		return p.x, true
	case tokSqrt:
		p.pos++
		if next, ok := p.peek(); !ok || next.kind != tokLParen {
			return 0, false
		}
		v, ok := p.parseGroup()
		if !ok {
			return 0, false
		}
		return math.Sqrt(v), true
	case tokLParen:
		return p.parseGroup()
	}
	return 0, false
}

func (p *evaluator) parseGroup() (float64, bool) {
	p.pos++ // (
	v, ok := p.parseExpr()
	if !ok {
		return 0, false
	}
	if t, ok := p.peek(); !ok || t.kind != tokRParen {
		return 0, false
	}
	p.pos++
	return v, true
}
