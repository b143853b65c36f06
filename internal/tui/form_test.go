package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/watchfire-io/abacus/internal/calc"
)

func TestOperandFormSubmit(t *testing.T) {
	root, _ := calc.LookupOperation("c")
	mod, _ := calc.LookupOperation("e")

	tests := []struct {
		name    string
		form    *OperandForm
		values  []string
		line    string
		wantErr error
	}{
		{"basic", NewBasicForm(), []string{"6", "7", "*"}, "6 * 7 = 42.0", nil},
		{"basic empty operator", NewBasicForm(), []string{"1", "2", ""}, "1 ? 2 = Error: Invalid operator", calc.ErrInvalidOperator},
		{"root", NewOperationForm(root), []string{"27", "3"}, "3-th root of 27 = 3.0", nil},
		{"modulus by zero", NewOperationForm(mod), []string{"5", "0"}, "5 % 0 = Error: modulus by zero", calc.ErrModulusByZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, v := range tt.values {
				tt.form.SetValue(i, v)
			}
			out, err := tt.form.Submit(calc.New())
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if out.Line != tt.line {
				t.Errorf("line = %q, want %q", out.Line, tt.line)
			}
			if !errors.Is(out.Err, tt.wantErr) {
				t.Errorf("err = %v, want %v", out.Err, tt.wantErr)
			}
		})
	}
}

func TestOperandFormRejectsInvalidInput(t *testing.T) {
	mod, _ := calc.LookupOperation("e")
	f := NewOperationForm(mod)
	f.SetValue(0, "4")
	f.SetValue(1, "2.5")

	c := calc.New()
	_, err := f.Submit(c)
	if err == nil || !strings.Contains(err.Error(), "an integer") {
		t.Fatalf("err = %v, want integer complaint", err)
	}
	if f.focusIndex != 1 {
		t.Errorf("focus = %d, want offending field 1", f.focusIndex)
	}
	if len(c.History()) != 0 {
		t.Errorf("history = %v, want empty", c.History())
	}
}
