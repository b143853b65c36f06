package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/abacus/internal/calc"
)

// formField is one operand (or operator) input.
type formField struct {
	label   string
	integer bool
	input   textinput.Model
}

// OperandForm collects the inputs for one operation.
type OperandForm struct {
	title      string
	basic      bool      // inputs are a, b, operator
	kind       calc.Kind // for advanced operations
	fields     []formField
	focusIndex int
}

func newField(label, placeholder string, charLimit int) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Width = 24
	ti.Prompt = "› "
	return formField{label: label, input: ti}
}

// NewBasicForm creates the form for + - * /.
func NewBasicForm() *OperandForm {
	f := &OperandForm{
		title: "Basic Operations",
		basic: true,
		fields: []formField{
			newField("Enter first number", "0", 64),
			newField("Enter second number", "0", 64),
			newField("Enter operator (+ - * /)", "+", 1),
		},
	}
	f.fields[0].input.Focus()
	return f
}

// NewOperationForm creates the form for an advanced operation.
func NewOperationForm(op calc.Operation) *OperandForm {
	f := &OperandForm{title: op.Name, kind: op.Kind}
	for _, operand := range op.Operands {
		field := newField(operand.Prompt, "0", 64)
		field.integer = operand.Integer
		f.fields = append(f.fields, field)
	}
	f.fields[0].input.Focus()
	return f
}

// FocusNext moves to the next field.
func (f *OperandForm) FocusNext() {
	f.focus((f.focusIndex + 1) % len(f.fields))
}

// FocusPrev moves to the previous field.
func (f *OperandForm) FocusPrev() {
	f.focus((f.focusIndex - 1 + len(f.fields)) % len(f.fields))
}

// OnLastField reports whether the last field has focus.
func (f *OperandForm) OnLastField() bool {
	return f.focusIndex == len(f.fields)-1
}

func (f *OperandForm) focus(i int) {
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	f.focusIndex = i
	f.fields[i].input.Focus()
}

// Update forwards a key to the focused input.
func (f *OperandForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focusIndex].input, cmd = f.fields[f.focusIndex].input.Update(msg)
	return cmd
}

// SetValue fills field i.
func (f *OperandForm) SetValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

// Submit parses the inputs and runs the operation. A parse error focuses
// the offending field and nothing is recorded.
func (f *OperandForm) Submit(c *calc.Calculator) (calc.Outcome, error) {
	numbers := f.fields
	if f.basic {
		numbers = f.fields[:2]
	}

	args := make([]float64, 0, len(numbers))
	for i, field := range numbers {
		v, err := calc.ParseOperand(field.input.Value(), field.integer)
		if err != nil {
			f.focus(i)
			want := "a number"
			if field.integer {
				want = "an integer"
			}
			return calc.Outcome{}, fmt.Errorf("invalid input for %q: please enter %s", field.label, want)
		}
		args = append(args, v)
	}

	if f.basic {
		op := []rune(strings.TrimSpace(f.fields[2].input.Value()))
		r := '?'
		if len(op) > 0 {
			r = op[0]
		}
		return c.ApplySymbol(args[0], args[1], r), nil
	}
	return c.Apply(f.kind, args...), nil
}

// View renders the form.
func (f *OperandForm) View(st styles) string {
	var b strings.Builder
	b.WriteString(st.title.Render("-- "+f.title+" --") + "\n\n")
	for i, field := range f.fields {
		label := st.label.Render(field.label)
		if i == f.focusIndex {
			label = st.label.Foreground(st.accent).Render(field.label)
		}
		b.WriteString(label + field.input.View() + "\n")
	}
	return b.String()
}
