package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operand describes one input an operation asks for.
type Operand struct {
	Prompt  string
	Integer bool
}

// Operation is a menu entry for an advanced operation.
type Operation struct {
	Key      string // menu key, "a".."f"
	Name     string
	Kind     Kind
	Operands []Operand
}

// Operations lists the advanced operations in menu order.
var Operations = []Operation{
	{Key: "a", Name: "Power (a^b)", Kind: KindPower, Operands: []Operand{{Prompt: "Enter base"}, {Prompt: "Enter exponent"}}},
	{Key: "b", Name: "Square (x^2)", Kind: KindSquare, Operands: []Operand{{Prompt: "Enter number"}}},
	{Key: "c", Name: "Root (n-th root)", Kind: KindRoot, Operands: []Operand{{Prompt: "Enter value"}, {Prompt: "Enter n (nth root)"}}},
	{Key: "d", Name: "Percentage (part of whole)", Kind: KindPercentage, Operands: []Operand{{Prompt: "Enter part"}, {Prompt: "Enter whole"}}},
	{Key: "e", Name: "Modulus (int % int)", Kind: KindModulus, Operands: []Operand{{Prompt: "Enter integer a", Integer: true}, {Prompt: "Enter integer b", Integer: true}}},
	{Key: "f", Name: "Factorial (int)", Kind: KindFactorial, Operands: []Operand{{Prompt: "Enter non-negative integer", Integer: true}}},
}

// LookupOperation finds an advanced operation by its menu key.
func LookupOperation(key string) (Operation, bool) {
	for _, op := range Operations {
		if op.Key == key {
			return op, true
		}
	}
	return Operation{}, false
}

// ParseOperand parses user input. Integer operands must fit in 32 bits.
func ParseOperand(s string, integer bool) (float64, error) {
	s = strings.TrimSpace(s)
	if integer {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrNotAnInteger)
		}
		return float64(n), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	return v, nil
}

// Outcome is the result of Apply: the recorded history line and the
// operation's error, if any.
type Outcome struct {
	Kind Kind
	Line string
	Err  error
}

// Failed reports whether the operation hit a domain error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Apply runs the operation tagged kind on args. Integer kinds truncate their
// arguments. Apply panics if args is shorter than the operation needs.
func (c *Calculator) Apply(kind Kind, args ...float64) Outcome {
	var err error
	switch kind {
	case KindAdd:
		c.AddReal(args[0], args[1])
	case KindAddInteger:
		c.AddInteger(int32(args[0]), int32(args[1]))
	case KindSubtract:
		_, err = c.Binary(args[0], args[1], '-')
	case KindMultiply:
		_, err = c.Binary(args[0], args[1], '*')
	case KindDivide:
		_, err = c.Binary(args[0], args[1], '/')
	case KindSquare:
		c.Square(args[0])
	case KindPower:
		c.Power(args[0], args[1])
	case KindFactorial:
		_, err = c.Factorial(int(args[0]))
	case KindPercentage:
		_, err = c.Percentage(args[0], args[1])
	case KindRoot:
		_, err = c.Root(args[0], args[1])
	case KindModulus:
		_, err = c.Modulus(int(args[0]), int(args[1]))
	default:
		err = c.fail(KindInvalid, "?", formatOperand(args[0]), formatOperand(args[1]), ErrInvalidOperator)
	}
	return Outcome{Kind: kind, Line: c.lastEntry(), Err: err}
}

// ApplySymbol runs Binary with a user-supplied operator symbol.
func (c *Calculator) ApplySymbol(a, b float64, op rune) Outcome {
	kind, ok := KindForSymbol(op)
	if !ok {
		kind = KindInvalid
	}
	_, err := c.Binary(a, b, op)
	return Outcome{Kind: kind, Line: c.lastEntry(), Err: err}
}

func (c *Calculator) lastEntry() string {
	if n := len(c.history.entries); n > 0 {
		return c.history.entries[n-1]
	}
	return ""
}
