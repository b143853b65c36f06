// Package calc implements the arithmetic engine and the session history log.
//
// Every operation records exactly one history entry, whether it succeeds or
// fails. Failures are returned as an *OpError wrapping one of the sentinel
// errors in this package; the returned value then carries the legacy
// sentinel (NaN for real operations, -1 for factorial, 0 for modulus).
package calc

import (
	"io"
	"math"
	"math/big"

	"github.com/sirupsen/logrus"
)

// DefaultFactorialLimit is the largest n accepted by Factorial unless
// overridden with WithFactorialLimit.
const DefaultFactorialLimit = 5000

// Calculator is one calculator session: the engine plus its history.
type Calculator struct {
	history        *History
	factorialLimit int
	sessionID      string
	log            logrus.FieldLogger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithFactorialLimit sets the largest input accepted by Factorial.
func WithFactorialLimit(n int) Option {
	return func(c *Calculator) {
		if n >= 0 {
			c.factorialLimit = n
		}
	}
}

// WithLogger sets the logger that receives a debug line per recorded entry.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSessionID tags log lines with a session identifier.
func WithSessionID(id string) Option {
	return func(c *Calculator) {
		c.sessionID = id
	}
}

// New creates a calculator session with an empty history.
func New(opts ...Option) *Calculator {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Calculator{
		history:        NewHistory(),
		factorialLimit: DefaultFactorialLimit,
		log:            discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// History returns a copy of the recorded entries, oldest first.
func (c *Calculator) History() []string {
	return c.history.Snapshot()
}

// ClearHistory empties the history.
func (c *Calculator) ClearHistory() {
	n := c.history.Len()
	c.history.Clear()
	c.log.WithFields(logrus.Fields{"session": c.sessionID, "dropped": n}).Debug("history cleared")
}

// SessionID returns the identifier set with WithSessionID.
func (c *Calculator) SessionID() string {
	return c.sessionID
}

func (c *Calculator) record(kind Kind, line string, err error) {
	c.history.Append(line)
	c.log.WithFields(logrus.Fields{
		"session": c.sessionID,
		"kind":    kind.String(),
		"failed":  err != nil,
	}).Debug(line)
}

// fail records a failed operation and returns the wrapped error.
func (c *Calculator) fail(kind Kind, op, a, b string, err error) error {
	c.record(kind, entry(kind, op, a, b, HistoryText(err)), err)
	return &OpError{Kind: kind, Err: err}
}

// AddReal returns a+b.
func (c *Calculator) AddReal(a, b float64) float64 {
	res := a + b
	c.record(KindAdd, entry(KindAdd, "+", formatOperand(a), formatOperand(b), formatResult(KindAdd, res)), nil)
	return res
}

// AddInteger adds in 64 bits so the sum of two int32 values never
// overflows, then widens to float64.
func (c *Calculator) AddInteger(a, b int32) float64 {
	res := int64(a) + int64(b)
	c.record(KindAddInteger, entry(KindAddInteger, "+", formatInt(int64(a)), formatInt(int64(b)), formatInt(res)), nil)
	return float64(res)
}

// Binary applies one of + - * / to a and b. Division by zero and unknown
// operators return NaN and an error.
func (c *Calculator) Binary(a, b float64, op rune) (float64, error) {
	sa, sb, sop := formatOperand(a), formatOperand(b), string(op)

	kind, ok := KindForSymbol(op)
	if !ok {
		return math.NaN(), c.fail(KindInvalid, sop, sa, sb, ErrInvalidOperator)
	}

	var res float64
	switch kind {
	case KindAdd:
		res = a + b
	case KindSubtract:
		res = a - b
	case KindMultiply:
		res = a * b
	case KindDivide:
		if b == 0 {
			return math.NaN(), c.fail(kind, sop, sa, sb, ErrDivisionByZero)
		}
		res = a / b
	}

	c.record(kind, entry(kind, sop, sa, sb, formatResult(kind, res)), nil)
	return res, nil
}

// Square returns a*a.
func (c *Calculator) Square(a float64) float64 {
	res := a * a
	c.record(KindSquare, entry(KindSquare, "", formatOperand(a), "", formatResult(KindSquare, res)), nil)
	return res
}

// Power returns base^exponent with math.Pow semantics; a negative base with
// a fractional exponent yields NaN without an error.
func (c *Calculator) Power(base, exponent float64) float64 {
	res := math.Pow(base, exponent)
	c.record(KindPower, entry(KindPower, "", formatOperand(base), formatOperand(exponent), formatResult(KindPower, res)), nil)
	return res
}

// Factorial returns n! exactly. Negative n and n above the configured limit
// return -1 and an error.
func (c *Calculator) Factorial(n int) (*big.Int, error) {
	sn := formatInt(int64(n))
	if n < 0 {
		return big.NewInt(-1), c.fail(KindFactorial, "", sn, "", ErrNegativeInput)
	}
	if n > c.factorialLimit {
		return big.NewInt(-1), c.fail(KindFactorial, "", sn, "", ErrInputTooLarge)
	}

	res := new(big.Int).MulRange(1, int64(n))
	c.record(KindFactorial, entry(KindFactorial, "", sn, "", res.String()), nil)
	return res, nil
}

// Percentage returns part as a percentage of whole.
func (c *Calculator) Percentage(part, whole float64) (float64, error) {
	sp, sw := formatOperand(part), formatOperand(whole)
	if whole == 0 {
		return math.NaN(), c.fail(KindPercentage, "", sp, sw, ErrPercentOfZero)
	}
	res := (part / whole) * 100
	c.record(KindPercentage, entry(KindPercentage, "", sp, sw, formatResult(KindPercentage, res)), nil)
	return res, nil
}

// Root returns the n-th root of value as value^(1/n). An even root of a
// negative value yields NaN without an error.
func (c *Calculator) Root(value, n float64) (float64, error) {
	sv, sn := formatOperand(value), formatOperand(n)
	if n == 0 {
		return math.NaN(), c.fail(KindRoot, "", sv, sn, ErrZeroRoot)
	}
	res := math.Pow(value, 1/n)
	c.record(KindRoot, entry(KindRoot, "", sv, sn, formatResult(KindRoot, res)), nil)
	return res, nil
}

// Modulus returns the truncated remainder a % b. A zero divisor returns 0
// and ErrModulusByZero; check the error, not the value.
func (c *Calculator) Modulus(a, b int) (int, error) {
	sa, sb := formatInt(int64(a)), formatInt(int64(b))
	if b == 0 {
		return 0, c.fail(KindModulus, "", sa, sb, ErrModulusByZero)
	}
	res := a % b
	c.record(KindModulus, entry(KindModulus, "", sa, sb, formatInt(int64(res))), nil)
	return res, nil
}
