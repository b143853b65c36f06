package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/watchfire-io/abacus/internal/calc"
	"github.com/watchfire-io/abacus/internal/config"
	"github.com/watchfire-io/abacus/internal/models"
)

// Screens.
const (
	screenMenu = iota
	screenAdvanced
	screenForm
	screenHistory
	screenTheme
)

// processingSteps is the number of dots in the "Processing" animation.
const processingSteps = 6

type menuItem struct {
	key   string
	label string
}

var mainMenu = []menuItem{
	{"1", "Basic Operations ( + - * / )"},
	{"2", "Advanced Operations"},
	{"3", "View History"},
	{"4", "Clear History"},
	{"5", "Settings (Theme)"},
	{"6", "Exit"},
}

// Model is the root Bubbletea model for the TUI.
type Model struct {
	calc     *calc.Calculator
	settings *models.Settings
	save     func(*models.Settings) error
	log      logrus.FieldLogger
	styles   styles

	// UI state
	screen        int
	returnTo      int // screen shown when a form is dismissed
	menuCursor    int
	advCursor     int
	themeCursor   int
	activeOverlay int
	confirmMode   int
	width         int
	height        int

	form    *OperandForm
	history viewport.Model

	// Result display
	pending    *calc.Outcome
	processing int
	result     *calc.Outcome

	// Status display
	err    error
	notice string
}

// NewModel creates the initial TUI model.
func NewModel(opts Options) Model {
	if opts.Calc == nil {
		opts.Calc = calc.New()
	}
	if opts.Settings == nil {
		opts.Settings = models.NewSettings()
	}
	if opts.Log == nil {
		opts.Log = config.DiscardLogger()
	}
	return Model{
		calc:     opts.Calc,
		settings: opts.Settings,
		save:     opts.Save,
		log:      opts.Log,
		styles:   newStyles(opts.Settings.Appearance.Theme),
		history:  viewport.New(60, 10),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Processing animation ───────────────────────────────────────
	case processingTickMsg:
		if m.pending == nil {
			return m, nil
		}
		m.processing++
		if m.processing < processingSteps {
			return m, processingTick()
		}
		m.result = m.pending
		m.pending = nil
		return m, nil

	// ── Settings ───────────────────────────────────────────────────
	case SettingsReloadedMsg:
		m.applySettings(msg.Settings)
		return m, nil

	case SettingsSavedMsg:
		m.notice = "Saved"
		return m, clearNoticeAfter(3 * time.Second)

	// ── Status ─────────────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirm mode captures everything
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	if m.activeOverlay == overlayHelp {
		if key.Matches(msg, menuKeys.Back) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.doQuit()
	case m.editing() && key.Matches(msg, formKeys.Help):
		m.activeOverlay = overlayHelp
		return nil
	case !m.editing() && key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return nil
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenAdvanced:
		return m.handleAdvancedKey(msg)
	case screenForm:
		return m.handleFormKey(msg)
	case screenHistory:
		return m.handleHistoryKey(msg)
	case screenTheme:
		return m.handleThemeKey(msg)
	}
	return nil
}

// editing reports whether an operand field has focus. Many terminals send
// ctrl+h for Backspace, so only F1 opens help there.
func (m *Model) editing() bool {
	return m.screen == screenForm && m.form != nil && m.result == nil && m.pending == nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, menuKeys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, menuKeys.Down):
		if m.menuCursor < len(mainMenu)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, menuKeys.Select):
		return m.activateMenu(m.menuCursor)
	default:
		for i, item := range mainMenu {
			if msg.String() == item.key {
				m.menuCursor = i
				return m.activateMenu(i)
			}
		}
	}
	return nil
}

func (m *Model) activateMenu(i int) tea.Cmd {
	switch i {
	case 0:
		m.openForm(NewBasicForm(), screenMenu)
	case 1:
		m.screen = screenAdvanced
	case 2:
		m.openHistory()
	case 3:
		m.confirmMode = confirmClear
	case 4:
		m.screen = screenTheme
		m.themeCursor = 0
		for j, name := range models.Themes {
			if name == m.settings.Appearance.Theme {
				m.themeCursor = j
			}
		}
	case 5:
		m.confirmMode = confirmQuit
	}
	return nil
}

func (m *Model) handleAdvancedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, menuKeys.Up):
		if m.advCursor > 0 {
			m.advCursor--
		}
	case key.Matches(msg, menuKeys.Down):
		if m.advCursor < len(calc.Operations)-1 {
			m.advCursor++
		}
	case key.Matches(msg, menuKeys.Select):
		m.openForm(NewOperationForm(calc.Operations[m.advCursor]), screenAdvanced)
	case key.Matches(msg, menuKeys.Back):
		m.screen = screenMenu
	default:
		for i, op := range calc.Operations {
			if msg.String() == op.Key {
				m.advCursor = i
				m.openForm(NewOperationForm(op), screenAdvanced)
				return nil
			}
		}
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.form == nil || m.pending != nil {
		return nil
	}

	// A shown result waits for Enter or Esc.
	if m.result != nil {
		if key.Matches(msg, formKeys.Submit) || key.Matches(msg, formKeys.Cancel) {
			m.closeForm()
		}
		return nil
	}

	switch {
	case key.Matches(msg, formKeys.Cancel):
		m.closeForm()
		return nil
	case key.Matches(msg, formKeys.Submit):
		if !m.form.OnLastField() {
			m.form.FocusNext()
			return nil
		}
		return m.submitForm()
	case key.Matches(msg, formKeys.Next):
		m.form.FocusNext()
		return nil
	case key.Matches(msg, formKeys.Prev):
		m.form.FocusPrev()
		return nil
	}

	return m.form.Update(msg)
}

func (m *Model) submitForm() tea.Cmd {
	out, err := m.form.Submit(m.calc)
	if err != nil {
		m.err = err
		return clearErrorAfter(3 * time.Second)
	}
	m.err = nil
	if m.settings.Appearance.Animation {
		m.pending = &out
		m.processing = 0
		return processingTick()
	}
	m.result = &out
	return nil
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, historyKeys.Back):
		m.screen = screenMenu
		return nil
	case key.Matches(msg, historyKeys.Clear):
		m.confirmMode = confirmClear
		return nil
	case key.Matches(msg, historyKeys.Up):
		m.history.LineUp(1)
		return nil
	case key.Matches(msg, historyKeys.Down):
		m.history.LineDown(1)
		return nil
	case key.Matches(msg, historyKeys.PageUp):
		m.history.ViewUp()
		return nil
	case key.Matches(msg, historyKeys.PageDown):
		m.history.ViewDown()
		return nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return cmd
}

func (m *Model) handleThemeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, menuKeys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case key.Matches(msg, menuKeys.Down):
		if m.themeCursor < len(models.Themes)-1 {
			m.themeCursor++
		}
	case key.Matches(msg, menuKeys.Back):
		m.screen = screenMenu
	case key.Matches(msg, menuKeys.Select):
		return m.setTheme(models.Themes[m.themeCursor])
	default:
		for i, name := range models.Themes {
			if msg.String() == fmt.Sprint(i+1) {
				m.themeCursor = i
				return m.setTheme(name)
			}
		}
	}
	return nil
}

func (m *Model) setTheme(name string) tea.Cmd {
	m.settings.Appearance.Theme = name
	m.styles = newStyles(name)
	m.screen = screenMenu
	m.log.WithField("theme", name).Debug("theme changed")
	if m.save == nil {
		m.notice = "Theme set to " + name + "."
		return clearNoticeAfter(3 * time.Second)
	}
	return saveSettingsCmd(m.save, m.settings)
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		switch m.confirmMode {
		case confirmClear:
			m.confirmMode = confirmNone
			m.calc.ClearHistory()
			m.refreshHistory()
			m.notice = "History cleared."
			return clearNoticeAfter(3 * time.Second)
		case confirmQuit:
			m.confirmMode = confirmNone
			return m.doQuit()
		}
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		if m.confirmMode == confirmClear {
			m.notice = "Operation cancelled."
		}
		m.confirmMode = confirmNone
		return clearNoticeAfter(3 * time.Second)
	}
	return nil
}

// doQuit performs clean shutdown.
func (m *Model) doQuit() tea.Cmd {
	m.log.WithField("entries", len(m.calc.History())).Debug("session ended")
	return tea.Quit
}

// ── Screen helpers ───────────────────────────────────────────────

func (m *Model) openForm(f *OperandForm, returnTo int) {
	m.form = f
	m.returnTo = returnTo
	m.result = nil
	m.pending = nil
	m.screen = screenForm
}

func (m *Model) closeForm() {
	m.form = nil
	m.result = nil
	m.screen = m.returnTo
}

func (m *Model) openHistory() {
	m.refreshHistory()
	m.history.GotoBottom()
	m.screen = screenHistory
}

func (m *Model) refreshHistory() {
	m.history.SetContent(renderHistoryLines(m.calc.History()))
}

func (m *Model) applySettings(s *models.Settings) {
	if s == nil {
		return
	}
	m.settings = s
	m.styles = newStyles(s.Appearance.Theme)
	m.log.WithField("theme", s.Appearance.Theme).Debug("settings reloaded")
}

func (m *Model) updateDimensions() {
	w, h := m.bodySize()
	m.history.Width = w
	m.history.Height = h - 2 // title line + blank
	if m.history.Height < 1 {
		m.history.Height = 1
	}
}

// bodySize returns the inner size of the bordered body box.
func (m *Model) bodySize() (width, height int) {
	width = m.width - 4 // border + padding
	if width < 20 {
		width = 20
	}
	height = m.height - 4 // header, status bar, top and bottom border
	if height < 3 {
		height = 3
	}
	return width, height
}

func renderHistoryLines(hist []string) string {
	if len(hist) == 0 {
		return "(No history yet)"
	}
	lines := make([]string, len(hist))
	for i, line := range hist {
		lines[i] = fmt.Sprintf("%3d) %s", i+1, line)
	}
	return strings.Join(lines, "\n")
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	header := renderHeader(m.styles, m.screenTitle(), m.calc.SessionID(), len(m.calc.History()), width)

	innerWidth, innerHeight := m.bodySize()
	box := m.styles.box.Width(innerWidth + 2)
	if m.height > 0 {
		box = box.Height(innerHeight)
	}
	body := box.Render(truncateContent(m.renderBody(), innerWidth, innerHeight))

	statusBar := renderStatusBar(&m, width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)

	if m.activeOverlay == overlayHelp {
		height := m.height
		if height == 0 {
			height = lipgloss.Height(view)
		}
		view = renderOverlay(view, renderHelp(width), width, height)
	}
	return view
}

func (m Model) screenTitle() string {
	switch m.screen {
	case screenAdvanced:
		return "Advanced Operations"
	case screenForm:
		if m.form != nil {
			return m.form.title
		}
	case screenHistory:
		return "History"
	case screenTheme:
		return "Settings"
	}
	return "Menu"
}

func (m Model) renderBody() string {
	switch m.screen {
	case screenAdvanced:
		items := make([]menuItem, len(calc.Operations))
		for i, op := range calc.Operations {
			items[i] = menuItem{key: op.Key, label: op.Name}
		}
		return m.styles.title.Render("-- Advanced Operations --") + "\n\n" + m.renderList(items, m.advCursor)

	case screenForm:
		return m.renderForm()

	case screenHistory:
		return m.styles.title.Render("-- Operation History --") + "\n\n" + m.history.View()

	case screenTheme:
		items := make([]menuItem, len(models.Themes))
		for i, name := range models.Themes {
			label := strings.ToUpper(name[:1]) + name[1:]
			if name == m.settings.Appearance.Theme {
				label += " ●"
			}
			items[i] = menuItem{key: fmt.Sprint(i + 1), label: label}
		}
		return m.styles.title.Render("-- Settings: Theme --") + "\n\n" + m.renderList(items, m.themeCursor)
	}

	return m.styles.title.Render("✨ ABACUS INTERACTIVE CALCULATOR ✨") + "\n\n" + m.renderList(mainMenu, m.menuCursor)
}

func (m Model) renderList(items []menuItem, cursor int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		text := fmt.Sprintf(" %s) %s ", item.key, item.label)
		if i == cursor {
			lines[i] = m.styles.selectedItem.Render("›" + text)
		} else {
			lines[i] = itemStyle.Render(" " + text)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderForm() string {
	if m.form == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.form.View(m.styles))

	switch {
	case m.pending != nil:
		b.WriteString("\nProcessing" + strings.Repeat(".", m.processing))
	case m.result != nil:
		b.WriteString("\n")
		if m.result.Failed() {
			b.WriteString(errorResultStyle.Render("Result: "+calc.HistoryText(m.result.Err)) + "\n")
			b.WriteString(dimStyle.Render(m.result.Line) + "\n")
		} else {
			b.WriteString(m.styles.result.Render("Result: "+m.result.Line) + "\n")
		}
		b.WriteString("\n" + dimStyle.Render("Press Enter to return to menu..."))
	}
	return b.String()
}
