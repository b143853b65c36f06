package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/abacus/internal/calc"
	"github.com/watchfire-io/abacus/internal/models"
)

func newTestModel(animation bool) (Model, *calc.Calculator) {
	c := calc.New()
	s := models.NewSettings()
	s.Appearance.Animation = animation
	m := NewModel(Options{Calc: c, Settings: s})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

// press feeds msgs through Update, returning the final model and last command.
func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestBasicOperationFlow(t *testing.T) {
	m, c := newTestModel(false)

	m, _ = press(t, m, runes("1"))
	if m.screen != screenForm || m.form == nil || !m.form.basic {
		t.Fatalf("screen = %d, want basic form", m.screen)
	}

	m, _ = press(t, m, runes("2.5"), enter, runes("3.5"), enter, runes("+"), enter)
	if m.result == nil {
		t.Fatal("no result after submit")
	}
	if m.result.Line != "2.5 + 3.5 = 6.0" {
		t.Errorf("result = %q", m.result.Line)
	}
	if h := c.History(); len(h) != 1 {
		t.Errorf("history = %v", h)
	}
	if !strings.Contains(m.View(), "Result: 2.5 + 3.5 = 6.0") {
		t.Error("view does not show result")
	}

	m, _ = press(t, m, enter)
	if m.screen != screenMenu || m.form != nil {
		t.Errorf("after dismiss screen = %d, form = %v", m.screen, m.form)
	}
}

func TestInvalidOperandNotRecorded(t *testing.T) {
	m, c := newTestModel(false)

	m, cmd := press(t, m, runes("1"), runes("abc"), enter, runes("1"), enter, runes("+"), enter)
	if m.err == nil {
		t.Fatal("expected input error")
	}
	if cmd == nil {
		t.Error("expected clear-error command")
	}
	if m.form.focusIndex != 0 {
		t.Errorf("focus = %d, want first field", m.form.focusIndex)
	}
	if len(c.History()) != 0 {
		t.Errorf("history = %v, want empty", c.History())
	}
}

func TestAdvancedOperationWithAnimation(t *testing.T) {
	m, c := newTestModel(true)

	m, _ = press(t, m, runes("2"), runes("f"))
	if m.screen != screenForm || m.form.kind != calc.KindFactorial {
		t.Fatalf("screen = %d, want factorial form", m.screen)
	}

	m, cmd := press(t, m, runes("5"), enter)
	if m.pending == nil || cmd == nil {
		t.Fatal("expected processing animation")
	}
	for i := 0; i < processingSteps; i++ {
		m, _ = press(t, m, processingTickMsg{})
	}
	if m.pending != nil || m.result == nil {
		t.Fatal("animation did not finish")
	}
	if m.result.Line != "factorial(5) = 120" {
		t.Errorf("result = %q", m.result.Line)
	}

	m, _ = press(t, m, enter)
	if m.screen != screenAdvanced {
		t.Errorf("screen = %d, want advanced menu", m.screen)
	}
	if len(c.History()) != 1 {
		t.Errorf("history = %v", c.History())
	}
}

func TestDomainErrorShown(t *testing.T) {
	m, _ := newTestModel(false)
	m, _ = press(t, m, runes("2"), runes("e"), runes("5"), enter, runes("0"), enter)

	if m.result == nil || !errors.Is(m.result.Err, calc.ErrModulusByZero) {
		t.Fatalf("result = %+v", m.result)
	}
	if !strings.Contains(m.View(), "Result: Error: modulus by zero") {
		t.Error("view does not show error")
	}
}

func TestClearHistoryConfirm(t *testing.T) {
	m, c := newTestModel(false)
	c.AddReal(1, 1)

	m, _ = press(t, m, runes("4"))
	if m.confirmMode != confirmClear {
		t.Fatalf("confirmMode = %d", m.confirmMode)
	}
	if !strings.Contains(m.View(), "clear history? (y/n)") {
		t.Error("confirm bar not shown")
	}

	m, _ = press(t, m, runes("n"))
	if len(c.History()) != 1 || m.notice != "Operation cancelled." {
		t.Errorf("after n: history = %v, notice = %q", c.History(), m.notice)
	}

	m, _ = press(t, m, runes("4"), runes("y"))
	if len(c.History()) != 0 || m.notice != "History cleared." {
		t.Errorf("after y: history = %v, notice = %q", c.History(), m.notice)
	}
}

func TestHistoryScreen(t *testing.T) {
	m, c := newTestModel(false)
	c.AddReal(1, 2)
	_, _ = c.Modulus(10, 3)

	m, _ = press(t, m, runes("3"))
	if m.screen != screenHistory {
		t.Fatalf("screen = %d", m.screen)
	}
	view := m.View()
	for _, want := range []string{"1) 1 + 2 = 3.0", "2) 10 % 3 = 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("history view missing %q", want)
		}
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %d, want menu", m.screen)
	}
}

func TestThemeSelectionSaves(t *testing.T) {
	var saved *models.Settings
	s := models.NewSettings()
	m := NewModel(Options{
		Settings: s,
		Save: func(s *models.Settings) error {
			saved = s
			return nil
		},
	})

	m, cmd := press(t, m, runes("5"), runes("j"), enter)
	if m.settings.Appearance.Theme != models.ThemeGreen {
		t.Errorf("theme = %q, want green", m.settings.Appearance.Theme)
	}
	if m.styles.accent != colorGreen {
		t.Error("styles not re-themed")
	}
	if cmd == nil {
		t.Fatal("expected save command")
	}
	if _, ok := cmd().(SettingsSavedMsg); !ok {
		t.Error("save command did not report success")
	}
	if saved == nil || saved.Appearance.Theme != models.ThemeGreen {
		t.Errorf("saved = %+v", saved)
	}
}

func TestSettingsReload(t *testing.T) {
	m, _ := newTestModel(false)
	s := models.NewSettings()
	s.Appearance.Theme = models.ThemeYellow

	m, _ = press(t, m, SettingsReloadedMsg{Settings: s})
	if m.styles.accent != colorYellow || m.settings != s {
		t.Error("reloaded settings not applied")
	}
}

func TestQuitConfirm(t *testing.T) {
	m, _ := newTestModel(false)

	m, _ = press(t, m, runes("6"))
	if m.confirmMode != confirmQuit {
		t.Fatalf("confirmMode = %d", m.confirmMode)
	}
	_, cmd := press(t, m, runes("y"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(false)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlH})
	if m.activeOverlay != overlayHelp {
		t.Fatal("help overlay not open")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help overlay not rendered")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.activeOverlay != overlayNone {
		t.Error("help overlay not closed")
	}
}

func TestHistoryScrollKeys(t *testing.T) {
	m, c := newTestModel(false)
	for i := 0; i < 60; i++ {
		c.AddReal(float64(i), 1)
	}

	m, _ = press(t, m, runes("3"))
	bottom := m.history.YOffset
	if bottom == 0 {
		t.Fatal("history opened at the top, want bottom")
	}

	steps := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"line up", runes("k"), bottom - 1},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, 0},
		{"line down", tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, bottom},
	}
	for _, step := range steps {
		m, _ = press(t, m, step.msg)
		if m.history.YOffset != step.want {
			t.Errorf("after %s: offset = %d, want %d", step.name, m.history.YOffset, step.want)
		}
	}
}

func TestCtrlHInFormDeletes(t *testing.T) {
	m, _ := newTestModel(false)
	m, _ = press(t, m, runes("1"), runes("12"), tea.KeyMsg{Type: tea.KeyCtrlH})

	if m.activeOverlay != overlayNone {
		t.Fatal("ctrl+h opened help while editing an operand")
	}
	if got := m.form.fields[0].input.Value(); got != "1" {
		t.Errorf("operand = %q, want %q", got, "1")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if m.activeOverlay != overlayHelp {
		t.Error("F1 did not open help in a form")
	}
}
