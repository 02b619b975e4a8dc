package expr

import (
	"strconv"
	"unicode"
)

// tokenKind identifies a lexical token class.
type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEnd
)

func (k tokenKind) String() string {
	switch k {
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokEnd:
		return "end of expression"
	}
	return "unknown"
}

// token is a single lexical token with its rune offset in the input.
type token struct {
	kind tokenKind
	pos  int
	val  int64 // set for tokNumber only
}

// scan tokenizes a normalized expression string.
// Whitespace separates tokens and is otherwise ignored.
// The returned slice always ends with a tokEnd sentinel.
func scan(input string) ([]token, error) {
	runes := []rune(input)
	var tokens []token

	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			val, err := strconv.ParseInt(string(runes[start:i]), 10, 64)
			if err != nil {
				return nil, errAt(ErrCodeNumberRange, start, "number %q does not fit in int64", string(runes[start:i]))
			}
			tokens = append(tokens, token{kind: tokNumber, pos: start, val: val})

		default:
			kind, ok := operatorKind(r)
			if !ok {
				return nil, errAt(ErrCodeUnexpectedChar, i, "unexpected character %q", string(r))
			}
			tokens = append(tokens, token{kind: kind, pos: i})
			i++
		}
	}

	tokens = append(tokens, token{kind: tokEnd, pos: len(runes)})
	return tokens, nil
}

func operatorKind(r rune) (tokenKind, bool) {
	switch r {
	case '+':
		return tokPlus, true
	case '-':
		return tokMinus, true
	case '*':
		return tokStar, true
	case '/':
		return tokSlash, true
	case '(':
		return tokLParen, true
	case ')':
		return tokRParen, true
	}
	return 0, false
}
