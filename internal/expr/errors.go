package expr

import "fmt"

// ErrorCode categorizes expression errors.
type ErrorCode string

const (
	// ErrCodeUnexpectedChar indicates a character outside the expression grammar.
	ErrCodeUnexpectedChar ErrorCode = "UNEXPECTED_CHAR"

	// ErrCodeUnexpectedToken indicates a token in an invalid position.
	ErrCodeUnexpectedToken ErrorCode = "UNEXPECTED_TOKEN"

	// ErrCodeUnexpectedEnd indicates the expression ended mid-production.
	ErrCodeUnexpectedEnd ErrorCode = "UNEXPECTED_END"

	// ErrCodeUnbalancedParen indicates a missing closing parenthesis.
	ErrCodeUnbalancedParen ErrorCode = "UNBALANCED_PAREN"

	// ErrCodeNumberRange indicates a literal outside the int64 range.
	ErrCodeNumberRange ErrorCode = "NUMBER_RANGE"

	// ErrCodeDivideByZero indicates a zero divisor during evaluation.
	ErrCodeDivideByZero ErrorCode = "DIVIDE_BY_ZERO"
)

// Error represents a scan, parse, or evaluation failure.
//
// Pos is a zero-based rune offset into the normalized input, pointing at
// the character or token that triggered the failure.
type Error struct {
	Code    ErrorCode
	Message string
	Pos     int
	Err     error // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d: %s", e.Code, e.Pos, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As matching.
func (e *Error) Unwrap() error {
	return e.Err
}

func errAt(code ErrorCode, pos int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Pos: pos}
}
