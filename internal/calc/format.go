package calc

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags an operation. It selects the history template and the
// precision used to render the result.
type Kind int

const (
	KindAdd Kind = iota
	KindAddInteger
	KindSubtract
	KindMultiply
	KindDivide
	KindInvalid
	KindSquare
	KindPower
	KindFactorial
	KindPercentage
	KindRoot
	KindModulus
)

var kindNames = map[Kind]string{
	KindAdd:        "add",
	KindAddInteger: "add-int",
	KindSubtract:   "subtract",
	KindMultiply:   "multiply",
	KindDivide:     "divide",
	KindInvalid:    "invalid",
	KindSquare:     "square",
	KindPower:      "power",
	KindFactorial:  "factorial",
	KindPercentage: "percentage",
	KindRoot:       "root",
	KindModulus:    "modulus",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

var symbolKinds = map[rune]Kind{
	'+': KindAdd,
	'-': KindSubtract,
	'*': KindMultiply,
	'/': KindDivide,
}

// KindForSymbol maps a basic operator symbol to its Kind.
func KindForSymbol(op rune) (Kind, bool) {
	k, ok := symbolKinds[op]
	return k, ok
}

// Significant digits used when rendering real numbers.
const (
	defaultPrecision  = 6
	extendedPrecision = 12
	percentPrecision  = 8
)

// resultPrecision lists the kinds whose fractional results would visibly
// truncate at the default precision.
var resultPrecision = map[Kind]int{
	KindDivide:     extendedPrecision,
	KindPower:      extendedPrecision,
	KindRoot:       extendedPrecision,
	KindPercentage: percentPrecision,
}

// template renders a history entry from rendered operands and outcome.
type template func(op string, a, b, result string) string

func binaryTemplate(op, a, b, result string) string {
	return a + " " + op + " " + b + " = " + result
}

var templates = map[Kind]template{
	KindAddInteger: func(_, a, b, result string) string {
		return a + " + " + b + " = " + result + " (int)"
	},
	KindSquare: func(_, a, _, result string) string {
		return "square(" + a + ") = " + result
	},
	KindPower: func(_, a, b, result string) string {
		return a + " ^ " + b + " = " + result
	},
	KindFactorial: func(_, a, _, result string) string {
		return "factorial(" + a + ") = " + result
	},
	KindPercentage: func(_, a, b, result string) string {
		return "percentage: " + a + " of " + b + " = " + result
	},
	KindRoot: func(_, a, b, result string) string {
		return b + "-th root of " + a + " = " + result
	},
	KindModulus: func(_, a, b, result string) string {
		return a + " % " + b + " = " + result
	},
}

// entry renders one history line. Kinds without a dedicated template use
// the "A <op> B = R" form.
func entry(kind Kind, op, a, b, result string) string {
	if t, ok := templates[kind]; ok {
		return t(op, a, b, result)
	}
	return binaryTemplate(op, a, b, result)
}

// formatOperand renders an operand with the default precision.
func formatOperand(v float64) string {
	return strconv.FormatFloat(v, 'g', defaultPrecision, 64)
}

// formatResult renders a real result for kind. Integral values keep a
// trailing ".0" so they read as reals.
func formatResult(kind Kind, v float64) string {
	prec, ok := resultPrecision[kind]
	if !ok {
		prec = defaultPrecision
	}
	s := strconv.FormatFloat(v, 'g', prec, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	if kind == KindPercentage {
		s += "%"
	}
	return s
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
