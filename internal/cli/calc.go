package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/abacus/internal/calc"
)

var addIntFlag bool

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Add two numbers",
	Long: `Add two numbers.

With --int both operands must be 32-bit integers and the sum is exact.
Negative operands go after --, e.g. abacus add -- -3 5.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addIntFlag {
			return runOneShot(cmd, calc.KindAddInteger, true, args)
		}
		return runOneShot(cmd, calc.KindAdd, false, args)
	},
}

var opCmd = &cobra.Command{
	Use:   "op A OPERATOR B",
	Short: "Apply + - * or / to two numbers",
	Long: `Apply a basic operator to two numbers, exactly as the interactive menu
does. An unknown operator is recorded as an invalid operation.`,
	Args: cobra.ExactArgs(3),
	RunE: runOp,
}

func init() {
	addCmd.Flags().BoolVar(&addIntFlag, "int", false, "Integer addition")
}

// oneShot describes a single-calculation subcommand.
type oneShot struct {
	use     string
	short   string
	kind    calc.Kind
	integer bool
	nargs   int
}

var oneShots = []oneShot{
	{"div A B", "Divide A by B", calc.KindDivide, false, 2},
	{"factorial N", "Factorial of a non-negative integer", calc.KindFactorial, true, 1},
	{"mod A B", "Remainder of integer A divided by integer B", calc.KindModulus, true, 2},
	{"mul A B", "Multiply two numbers", calc.KindMultiply, false, 2},
	{"percent PART WHOLE", "PART as a percentage of WHOLE", calc.KindPercentage, false, 2},
	{"power BASE EXPONENT", "BASE raised to EXPONENT", calc.KindPower, false, 2},
	{"root X N", "N-th root of X", calc.KindRoot, false, 2},
	{"square X", "Square a number", calc.KindSquare, false, 1},
	{"sub A B", "Subtract B from A", calc.KindSubtract, false, 2},
}

func oneShotCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(oneShots))
	for _, o := range oneShots {
		o := o
		cmds = append(cmds, &cobra.Command{
			Use:   o.use,
			Short: o.short,
			Args:  cobra.ExactArgs(o.nargs),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOneShot(cmd, o.kind, o.integer, args)
			},
		})
	}
	return cmds
}

func runOneShot(cmd *cobra.Command, kind calc.Kind, integer bool, args []string) error {
	vals, err := parseOperands(args, integer)
	if err != nil {
		return err
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	return printOutcome(cmd, sess.calc.Apply(kind, vals...))
}

func runOp(cmd *cobra.Command, args []string) error {
	vals, err := parseOperands([]string{args[0], args[2]}, false)
	if err != nil {
		return err
	}

	op := '?'
	if r := []rune(strings.TrimSpace(args[1])); len(r) == 1 {
		op = r[0]
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	return printOutcome(cmd, sess.calc.ApplySymbol(vals[0], vals[1], op))
}

func parseOperands(args []string, integer bool) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, arg := range args {
		v, err := calc.ParseOperand(arg, integer)
		if err != nil {
			return nil, fmt.Errorf("invalid operand: %w", err)
		}
		vals[i] = v
	}
	return vals, nil
}

// printOutcome prints the recorded history line. A failed operation prints in
// the error style and makes the command exit non-zero.
func printOutcome(cmd *cobra.Command, out calc.Outcome) error {
	w := cmd.OutOrStdout()
	if out.Failed() {
		fmt.Fprintln(w, styleError.Render(out.Line))
		return reportedError{err: out.Err}
	}
	fmt.Fprintln(w, styleValue.Render(out.Line))
	return nil
}
