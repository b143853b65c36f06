package calc

import (
	"errors"
	"testing"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		integer bool
		want    float64
		wantErr error
	}{
		{name: "real", in: "2.5", want: 2.5},
		{name: "padded real", in: "  -4 \n", want: -4},
		{name: "exponent", in: "1e3", want: 1000},
		{name: "word", in: "abc", wantErr: ErrNotANumber},
		{name: "nan rejected", in: "NaN", wantErr: ErrNotANumber},
		{name: "inf rejected", in: "+Inf", wantErr: ErrNotANumber},
		{name: "integer", in: "42", integer: true, want: 42},
		{name: "integer rejects fraction", in: "4.2", integer: true, wantErr: ErrNotAnInteger},
		{name: "integer out of range", in: "3000000000", integer: true, wantErr: ErrNotAnInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperand(tt.in, tt.integer)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseOperand(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOperand(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOperand(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		kind    Kind
		args    []float64
		line    string
		wantErr error
	}{
		{KindAdd, []float64{1, 2}, "1 + 2 = 3.0", nil},
		{KindAddInteger, []float64{1, 2}, "1 + 2 = 3 (int)", nil},
		{KindSubtract, []float64{1, 2}, "1 - 2 = -1.0", nil},
		{KindMultiply, []float64{3, 2}, "3 * 2 = 6.0", nil},
		{KindDivide, []float64{3, 0}, "3 / 0 = Error: Division by zero", ErrDivisionByZero},
		{KindSquare, []float64{4}, "square(4) = 16.0", nil},
		{KindPower, []float64{2, 0.5}, "2 ^ 0.5 = 1.41421356237", nil},
		{KindFactorial, []float64{5}, "factorial(5) = 120", nil},
		{KindPercentage, []float64{50, 200}, "percentage: 50 of 200 = 25.0%", nil},
		{KindRoot, []float64{16, 0}, "0-th root of 16 = Error: zero root", ErrZeroRoot},
		{KindModulus, []float64{10, 3}, "10 % 3 = 1", nil},
		{KindInvalid, []float64{1, 2}, "1 ? 2 = Error: Invalid operator", ErrInvalidOperator},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			c := New()
			out := c.Apply(tt.kind, tt.args...)
			if out.Line != tt.line {
				t.Errorf("Apply(%s).Line = %q, want %q", tt.kind, out.Line, tt.line)
			}
			if !errors.Is(out.Err, tt.wantErr) {
				t.Errorf("Apply(%s).Err = %v, want %v", tt.kind, out.Err, tt.wantErr)
			}
			if out.Failed() != (tt.wantErr != nil) {
				t.Errorf("Apply(%s).Failed() = %v", tt.kind, out.Failed())
			}
		})
	}
}

func TestLookupOperation(t *testing.T) {
	op, ok := LookupOperation("e")
	if !ok || op.Kind != KindModulus || !op.Operands[0].Integer {
		t.Errorf("LookupOperation(e) = %+v, %v", op, ok)
	}
	if _, ok := LookupOperation("z"); ok {
		t.Error("LookupOperation(z) should not be found")
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := error(&OpError{Kind: KindDivide, Err: ErrDivisionByZero})
	if got := err.Error(); got != "divide: division by zero" {
		t.Errorf("Error() = %q", got)
	}
	if got := HistoryText(err); got != "Error: Division by zero" {
		t.Errorf("HistoryText = %q", got)
	}
	if got := HistoryText(errors.New("boom")); got != "Error: boom" {
		t.Errorf("HistoryText(unknown) = %q", got)
	}
}

func TestApplySymbol(t *testing.T) {
	c := New()
	out := c.ApplySymbol(7, 2, '%')
	if out.Kind != KindInvalid || !errors.Is(out.Err, ErrInvalidOperator) {
		t.Errorf("ApplySymbol('%%') = %+v", out)
	}
	if out.Line != "7 % 2 = Error: Invalid operator" {
		t.Errorf("Line = %q", out.Line)
	}

	out = c.ApplySymbol(7, 2, '*')
	if out.Kind != KindMultiply || out.Err != nil || out.Line != "7 * 2 = 14.0" {
		t.Errorf("ApplySymbol('*') = %+v", out)
	}
}
