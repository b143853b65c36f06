// Package shell implements the line-oriented menu used when abacus is not
// attached to a terminal, or when --plain is given.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/watchfire-io/abacus/internal/calc"
	"github.com/watchfire-io/abacus/internal/models"
)

// Title is printed when no banner file is configured or it can't be read.
const Title = "=== ABACUS INTERACTIVE CALCULATOR ==="

// Options configures a Shell.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Calc     *calc.Calculator
	Settings *models.Settings
	// Save persists settings changed from the Settings menu. May be nil.
	Save func(*models.Settings) error
	// Banner is printed once at start instead of Title when non-empty.
	Banner string
	// Sleep paces the processing animation. Defaults to time.Sleep.
	Sleep func(time.Duration)
	Log   logrus.FieldLogger
}

// Shell is one interactive line-mode session.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	calc     *calc.Calculator
	settings *models.Settings
	save     func(*models.Settings) error
	banner   string
	sleep    func(time.Duration)
	log      logrus.FieldLogger
}

// New creates a shell from opts.
func New(opts Options) *Shell {
	s := &Shell{
		in:       bufio.NewScanner(opts.In),
		out:      opts.Out,
		calc:     opts.Calc,
		settings: opts.Settings,
		save:     opts.Save,
		banner:   opts.Banner,
		sleep:    opts.Sleep,
		log:      opts.Log,
	}
	if s.calc == nil {
		s.calc = calc.New()
	}
	if s.settings == nil {
		s.settings = models.NewSettings()
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	return s
}

// Run drives the menu until the user exits or input ends.
func (s *Shell) Run() error {
	s.showBanner()

	for {
		s.printMainMenu()
		choice, err := s.readInt()
		if err != nil {
			return s.finish(err)
		}

		var stop bool
		switch choice {
		case 1:
			err = s.basic()
		case 2:
			err = s.advanced()
		case 3:
			s.showHistory()
		case 4:
			err = s.clearHistory()
		case 5:
			err = s.chooseTheme()
		case 6:
			stop, err = s.confirmExit()
		default:
			s.println("Invalid choice.")
		}
		if err != nil {
			return s.finish(err)
		}
		if stop {
			return nil
		}
	}
}

func (s *Shell) finish(err error) error {
	if err == io.EOF {
		s.println("")
		return nil
	}
	return err
}

func (s *Shell) showBanner() {
	if strings.TrimSpace(s.banner) == "" {
		s.println(Title)
		return
	}
	fmt.Fprint(s.out, strings.TrimRight(s.banner, "\n")+"\n")
}

func (s *Shell) printHeader() {
	s.println("")
	s.println("╔════════════════════════════════════════════════════════╗")
	s.println("║                  ABACUS CALCULATOR                     ║")
	s.println("╠════════════════════════════════════════════════════════╣")
}

func (s *Shell) printFooter() {
	s.println("╚════════════════════════════════════════════════════════╝")
}

func (s *Shell) printMainMenu() {
	s.printHeader()
	s.println("  1) Basic Operations ( + - * / )")
	s.println("  2) Advanced Operations (power, square, root, percentage, modulus, factorial)")
	s.println("  3) View History")
	s.println("  4) Clear History")
	s.println("  5) Settings (Theme)")
	s.println("  6) Exit")
	s.printFooter()
	s.prompt("Enter choice: ")
}

func (s *Shell) basic() error {
	s.println("-- Basic Operations --")
	s.prompt("Enter first number: ")
	a, err := s.readNumber()
	if err != nil {
		return err
	}
	s.prompt("Enter second number: ")
	b, err := s.readNumber()
	if err != nil {
		return err
	}
	s.prompt("Enter operator (+ - * /): ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	op, ok := firstRune(line)
	if !ok {
		op = '?'
	}

	s.processing()
	s.printOutcome(s.calc.ApplySymbol(a, b, op), "Error (see history for details)")
	return nil
}

func (s *Shell) advanced() error {
	s.println("-- Advanced Operations --")
	for _, op := range calc.Operations {
		s.println(fmt.Sprintf("  %s) %s", op.Key, op.Name))
	}
	s.prompt("Choose option: ")
	line, err := s.readLine()
	if err != nil {
		return err
	}

	op, ok := calc.LookupOperation(strings.ToLower(strings.TrimSpace(line)))
	if !ok {
		s.println("Invalid option. Returning to main menu.")
		return nil
	}

	args := make([]float64, 0, len(op.Operands))
	for _, operand := range op.Operands {
		s.prompt(operand.Prompt + ": ")
		var v float64
		if operand.Integer {
			var n int
			n, err = s.readInt()
			v = float64(n)
		} else {
			v, err = s.readNumber()
		}
		if err != nil {
			return err
		}
		args = append(args, v)
	}

	s.processing()
	out := s.calc.Apply(op.Kind, args...)
	s.printOutcome(out, calcErrorText(out.Err))
	return nil
}

func (s *Shell) printOutcome(out calc.Outcome, failure string) {
	if out.Failed() {
		s.println("\nResult: " + failure)
		return
	}
	s.println("\nResult: " + out.Line)
}

func (s *Shell) showHistory() {
	s.println("-- Operation History --")
	s.println("")
	hist := s.calc.History()
	if len(hist) == 0 {
		s.println("(No history yet)")
		return
	}
	for i, line := range hist {
		s.println(fmt.Sprintf("%3d) %s", i+1, line))
	}
}

func (s *Shell) clearHistory() error {
	ok, err := s.confirm("Are you sure you want to clear history? (y/n): ")
	if err != nil {
		return err
	}
	if !ok {
		s.println("Operation cancelled.")
		return nil
	}
	s.calc.ClearHistory()
	s.println("History cleared.")
	return nil
}

func (s *Shell) chooseTheme() error {
	s.println("-- Settings: Theme --")
	for i, name := range models.Themes {
		s.println(fmt.Sprintf("%d) %s", i+1, themeLabel(name)))
	}
	s.prompt(fmt.Sprintf("Choose theme (1-%d): ", len(models.Themes)))
	n, err := s.readInt()
	if err != nil {
		return err
	}
	if n < 1 || n > len(models.Themes) {
		s.println("Invalid theme.")
		return nil
	}

	theme := models.Themes[n-1]
	s.settings.Appearance.Theme = theme
	if s.save != nil {
		if err := s.save(s.settings); err != nil {
			s.log.WithError(err).Warn("failed to save settings")
			s.println("Failed to save settings: " + err.Error())
			return nil
		}
	}
	s.println(fmt.Sprintf("Theme set to %s. It applies to the full-screen UI.", theme))
	return nil
}

func (s *Shell) confirmExit() (bool, error) {
	ok, err := s.confirm("Are you sure you want to exit? (y/n): ")
	if err != nil {
		return false, err
	}
	if ok {
		s.println("Goodbye!")
	}
	return ok, nil
}

func (s *Shell) confirm(question string) (bool, error) {
	s.prompt(question)
	line, err := s.readLine()
	if err != nil {
		return false, err
	}
	r, _ := firstRune(line)
	return r == 'y' || r == 'Y', nil
}

// processing prints the "Processing......" animation when enabled.
func (s *Shell) processing() {
	if !s.settings.Appearance.Animation {
		return
	}
	fmt.Fprint(s.out, "Processing")
	for i := 0; i < 6; i++ {
		fmt.Fprint(s.out, ".")
		s.sleep(120 * time.Millisecond)
	}
	fmt.Fprintln(s.out)
}

// readLine returns the next input line or io.EOF.
func (s *Shell) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// readNumber reads lines until one parses as a real number.
func (s *Shell) readNumber() (float64, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		v, err := calc.ParseOperand(line, false)
		if err == nil {
			return v, nil
		}
		s.prompt("Invalid input. Please enter a number: ")
	}
}

// readInt reads lines until one parses as a 32-bit integer.
func (s *Shell) readInt() (int, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		v, err := calc.ParseOperand(line, true)
		if err == nil {
			return int(v), nil
		}
		s.prompt("Invalid input. Please enter an integer: ")
	}
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) prompt(text string) {
	fmt.Fprint(s.out, text)
}

func firstRune(line string) (rune, bool) {
	line = strings.TrimSpace(line)
	for _, r := range line {
		return r, true
	}
	return 0, false
}

func themeLabel(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

// calcErrorText renders a domain error for the result line, e.g.
// "Error (zero root)".
func calcErrorText(err error) string {
	if err == nil {
		return ""
	}
	return "Error (" + strings.TrimPrefix(calc.HistoryText(err), "Error: ") + ")"
}
