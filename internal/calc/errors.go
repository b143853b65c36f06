package calc

import (
	"errors"
	"fmt"
)

// Domain errors. Each failed operation returns one of these wrapped in an
// *OpError, alongside the legacy sentinel value.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrNegativeInput   = errors.New("negative input")
	ErrInputTooLarge   = errors.New("input too large")
	ErrPercentOfZero   = errors.New("percentage of zero whole")
	ErrZeroRoot        = errors.New("zero root")
	ErrModulusByZero   = errors.New("modulus by zero")
)

// Input errors returned by ParseOperand. These are never recorded in history.
var (
	ErrNotANumber   = errors.New("not a number")
	ErrNotAnInteger = errors.New("not an integer")
)

// historyText is what a failed operation records in place of its result.
var historyText = map[error]string{
	ErrDivisionByZero:  "Error: Division by zero",
	ErrInvalidOperator: "Error: Invalid operator",
	ErrNegativeInput:   "Error: negative input",
	ErrInputTooLarge:   "Error: input too large",
	ErrPercentOfZero:   "Error: divide by zero",
	ErrZeroRoot:        "Error: zero root",
	ErrModulusByZero:   "Error: modulus by zero",
}

// OpError records which operation failed and why.
type OpError struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying domain error for errors.Is.
func (e *OpError) Unwrap() error {
	return e.Err
}

// HistoryText returns the text recorded in history for err, e.g.
// "Error: Division by zero". Unknown errors render as "Error: <msg>".
func HistoryText(err error) string {
	for sentinel, text := range historyText {
		if errors.Is(err, sentinel) {
			return text
		}
	}
	return "Error: " + err.Error()
}
