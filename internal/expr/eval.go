// Package expr evaluates integer infix expressions for the calc CLI.
//
// The grammar covers the four basic operators with standard precedence,
// parentheses, and unary minus:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | primary
//	primary = number | "(" expr ")"
//
// Arithmetic is delegated to the internal/calc kernel, so evaluation
// shares its int64 wraparound and divide-by-zero semantics.
package expr

import (
	"golang.org/x/text/unicode/norm"

	"github.com/buildlab/calc/internal/calc"
)

// Eval evaluates an infix expression and returns its int64 value.
//
// Input is NFC-normalized before scanning so visually identical inputs
// tokenize identically. All failures are returned as *Error with a code
// and rune position; divide-by-zero additionally wraps
// calc.ErrDivideByZero for errors.Is matching.
func Eval(input string) (int64, error) {
	tokens, err := scan(norm.NFC.String(input))
	if err != nil {
		return 0, err
	}

	p := &parser{tokens: tokens}
	val, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	if tok := p.peek(); tok.kind != tokEnd {
		return 0, errAt(ErrCodeUnexpectedToken, tok.pos, "unexpected %s after expression", tok.kind)
	}
	return val, nil
}

// parser evaluates tokens directly during the descent. The grammar is
// small enough that building an AST would add nothing.
type parser struct {
	tokens []token
	idx    int
}

func (p *parser) peek() token {
	return p.tokens[p.idx]
}

func (p *parser) next() token {
	tok := p.tokens[p.idx]
	if tok.kind != tokEnd {
		p.idx++
	}
	return tok
}

// parseExpr handles the lowest precedence level: addition and subtraction.
func (p *parser) parseExpr() (int64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left = calc.Add(left, right)
		case tokMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left = calc.Subtract(left, right)
		default:
			return left, nil
		}
	}
}

// parseTerm handles multiplication and division.
func (p *parser) parseTerm() (int64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left = calc.Multiply(left, right)
		case tokSlash:
			op := p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			quot, err := calc.Divide(left, right)
			if err != nil {
				return 0, &Error{
					Code:    ErrCodeDivideByZero,
					Message: "division by zero",
					Pos:     op.pos,
					Err:     err,
				}
			}
			left = quot
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (int64, error) {
	if p.peek().kind == tokMinus {
		p.next()
		val, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return calc.Subtract(0, val), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (int64, error) {
	tok := p.next()

	switch tok.kind {
	case tokNumber:
		return tok.val, nil

	case tokLParen:
		val, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		closing := p.next()
		if closing.kind != tokRParen {
			return 0, errAt(ErrCodeUnbalancedParen, closing.pos, "expected ')', found %s", closing.kind)
		}
		return val, nil

	case tokEnd:
		return 0, errAt(ErrCodeUnexpectedEnd, tok.pos, "expression ended unexpectedly")

	default:
		return 0, errAt(ErrCodeUnexpectedToken, tok.pos, "unexpected %s", tok.kind)
	}
}
