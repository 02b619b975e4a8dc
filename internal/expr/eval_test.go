package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildlab/calc/internal/calc"
)

func TestEval_Basic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"single number", "42", 42},
		{"addition", "2 + 3", 5},
		{"multiplication", "4 * 5", 20},
		{"subtraction", "10 - 4", 6},
		{"division", "20 / 5", 4},
		{"precedence mul over add", "2 + 3 * 4", 14},
		{"precedence div over sub", "10 - 6 / 2", 7},
		{"left associative subtraction", "10 - 4 - 3", 3},
		{"left associative division", "100 / 5 / 2", 10},
		{"parentheses override precedence", "(2 + 3) * 4", 20},
		{"nested parentheses", "((1 + 2) * (3 + 4))", 21},
		{"unary minus", "-5", -5},
		{"unary minus in expression", "2 * -3", -6},
		{"double unary minus", "--5", 5},
		{"truncating division", "7 / 2", 3},
		{"whitespace insensitive", "  2+3 ", 5},
		{"no whitespace", "2*3+4", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode ErrorCode
		wantPos  int
	}{
		{"empty input", "", ErrCodeUnexpectedEnd, 0},
		{"only whitespace", "   ", ErrCodeUnexpectedEnd, 3},
		{"unknown character", "2 + x", ErrCodeUnexpectedChar, 4},
		{"trailing operator", "2 +", ErrCodeUnexpectedEnd, 3},
		{"leading operator", "* 2", ErrCodeUnexpectedToken, 0},
		{"missing close paren", "(2 + 3", ErrCodeUnbalancedParen, 6},
		{"stray close paren", "2)", ErrCodeUnexpectedToken, 1},
		{"adjacent numbers", "2 3", ErrCodeUnexpectedToken, 2},
		{"number overflow", "99999999999999999999", ErrCodeNumberRange, 0},
		{"divide by zero", "1 / 0", ErrCodeDivideByZero, 2},
		{"divide by zero subexpression", "5 / (3 - 3)", ErrCodeDivideByZero, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.input)
			require.Error(t, err)

			var exprErr *Error
			require.True(t, errors.As(err, &exprErr), "error should be *expr.Error, got %T", err)
			assert.Equal(t, tt.wantCode, exprErr.Code)
			assert.Equal(t, tt.wantPos, exprErr.Pos)
		})
	}
}

func TestEval_DivideByZeroWrapsKernelError(t *testing.T) {
	_, err := Eval("1 / 0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calc.ErrDivideByZero))
}

func TestEval_ErrorMessageIncludesPosition(t *testing.T) {
	_, err := Eval("2 + x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 4")
}
