// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     tui
// Description: Terminal browser for the tool catalog
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package tui is a bubbletea front end: pick a tool from a filterable list,
// fill in its parameters and read the result, or browse the history.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mRW/internal/client"
	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/tools"
)

// View represents the screens of the browser
type View int

const (
	ViewTools View = iota
	ViewForm
	ViewHistory
)

const (
	calcTimeout  = 30 * time.Second
	historyLimit = 50
)

// toolItem adapts a catalog entry to the list
type toolItem struct {
	tool *tools.Tool
}

func (i toolItem) Title() string       { return i.tool.Icon + " " + i.tool.Name }
func (i toolItem) Description() string { return i.tool.Path + "  " + i.tool.Description }
func (i toolItem) FilterValue() string {
	return i.tool.Name + " " + i.tool.ID + " " + i.tool.Description
}

// Model is the main TUI model
type Model struct {
	calc client.Calculator

	view    View
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	list     list.Model
	spinner  spinner.Model
	viewport viewport.Model

	// Form state
	tool   *tools.Tool
	inputs []textinput.Model
	focus  int
	result *tools.Result

	entries []*history.Entry
}

// NewModel creates the browser over calc
func NewModel(calc client.Calculator) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "meinRECHENWERK"
	l.Styles.Title = l.Styles.Title.Background(colorPrimary)
	l.SetStatusBarItemName("Werkzeug", "Werkzeuge")
	l.DisableQuitKeybindings()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		calc:     calc,
		view:     ViewTools,
		list:     l,
		spinner:  sp,
		viewport: viewport.New(0, 0),
	}
}

// Init loads the catalog
func (m Model) Init() tea.Cmd {
	return m.loadTools()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.SetSize(msg.Width, msg.Height-2)
		m.resizeViewport()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case ViewTools:
			return m.updateTools(msg)
		case ViewForm:
			return m.updateForm(msg)
		case ViewHistory:
			return m.updateHistory(msg)
		}

	case toolsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.tools))
		for i, t := range msg.tools {
			items[i] = toolItem{tool: t}
		}
		cmd = m.list.SetItems(items)
		return m, cmd

	case resultMsg:
		m.loading = false
		m.result, m.err = msg.result, msg.err
		m.resizeViewport()
		m.viewport.SetContent(m.renderResult())
		m.viewport.GotoTop()
		return m, nil

	case historyMsg:
		m.loading = false
		m.entries, m.err = msg.entries, msg.err
		m.resizeViewport()
		m.viewport.SetContent(m.renderEntries())
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.view == ViewTools {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateTools(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.list.FilterState() == list.Filtering {
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		if item, ok := m.list.SelectedItem().(toolItem); ok {
			cmd = m.openTool(item.tool)
			return m, cmd
		}
		return m, nil
	case "tab":
		return m.openHistory()
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = ViewTools
		m.err = nil
		return m, nil
	case "tab", "down":
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case "ctrl+r":
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.result, m.err = nil, nil
		m.viewport.SetContent("")
		return m, nil
	case "enter":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.calculate(m.tool.ID, m.params()))
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab", "q":
		m.view = ViewTools
		m.err = nil
		return m, nil
	case "ctrl+r":
		return m.openHistory()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openTool builds one input per parameter and switches to the form
func (m *Model) openTool(t *tools.Tool) tea.Cmd {
	m.view = ViewForm
	m.tool = t
	m.result = nil
	m.err = nil
	m.inputs = make([]textinput.Model, len(t.Params))
	for i, p := range t.Params {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 40
		switch {
		case len(p.Choices) > 0:
			in.Placeholder = strings.Join(p.Choices, " | ")
		case p.Default != "":
			in.Placeholder = p.Default
		default:
			in.Placeholder = kindHint(p.Kind)
		}
		m.inputs[i] = in
	}
	m.viewport.SetContent("")
	return m.setFocus(0)
}

func (m *Model) openHistory() (tea.Model, tea.Cmd) {
	m.view = ViewHistory
	m.loading = true
	cmd := tea.Batch(m.spinner.Tick, m.loadHistory())
	return *m, cmd
}

// setFocus moves the focus to input i, wrapping around
func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	if n == 0 {
		return nil
	}
	m.focus = (i%n + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

// params collects the non-empty inputs; empty ones fall back to defaults
func (m *Model) params() tools.Params {
	p := tools.Params{}
	for i, def := range m.tool.Params {
		if v := strings.TrimSpace(m.inputs[i].Value()); v != "" {
			p[def.Name] = v
		}
	}
	return p
}

func (m *Model) resizeViewport() {
	h := m.height - 6
	if m.view == ViewForm {
		h -= 2*len(m.inputs) + 4
	}
	if h < 3 {
		h = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

func kindHint(k tools.ParamKind) string {
	switch k {
	case tools.KindNumber:
		return "Zahl"
	case tools.KindInteger:
		return "Ganzzahl"
	case tools.KindDate:
		return "JJJJ-MM-TT"
	case tools.KindList:
		return "Werte, durch Komma getrennt"
	default:
		return "Text"
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder
	switch m.view {
	case ViewTools:
		s.WriteString(m.list.View())
		if m.err != nil {
			s.WriteString("\n" + RenderError(m.err.Error()))
		}
	case ViewForm:
		s.WriteString(m.renderForm())
	case ViewHistory:
		s.WriteString(m.renderHistory())
	}
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderForm() string {
	var s strings.Builder
	s.WriteString(TitleStyle.Render(m.tool.Icon + " " + m.tool.Name))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(m.tool.Description))
	s.WriteString("\n\n")

	for i, p := range m.tool.Params {
		label := p.Label
		if p.Required {
			label += " *"
		}
		style := LabelStyle
		if i == m.focus {
			style = FocusedLabelStyle
		}
		s.WriteString(style.Render(label))
		s.WriteString(m.inputs[i].View())
		s.WriteString("\n")
		if i == m.focus && p.Help != "" {
			s.WriteString(SubtitleStyle.Render(strings.Repeat(" ", labelWidth) + p.Help))
			s.WriteString("\n")
		}
	}
	s.WriteString("\n")

	switch {
	case m.loading:
		s.WriteString(m.spinner.View() + " Berechne...")
	case m.err != nil:
		s.WriteString(RenderError(m.err.Error()))
	case m.result != nil:
		s.WriteString(m.viewport.View())
	}
	return s.String()
}

func (m Model) renderResult() string {
	if m.result == nil {
		return ""
	}
	var s strings.Builder
	s.WriteString(SummaryStyle.Render(m.result.Summary))
	s.WriteString("\n\n")
	for _, f := range m.result.Fields {
		s.WriteString(LabelStyle.Render(f.Label))
		s.WriteString(ValueStyle.Render(tools.FormatValue(f.Value)))
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) renderHistory() string {
	var s strings.Builder
	s.WriteString(TitleStyle.Render("Verlauf"))
	s.WriteString("\n\n")
	switch {
	case m.loading:
		s.WriteString(m.spinner.View() + " Lade Verlauf...")
	case m.err != nil:
		s.WriteString(RenderError(m.err.Error()))
	default:
		s.WriteString(m.viewport.View())
	}
	return s.String()
}

func (m Model) renderEntries() string {
	if len(m.entries) == 0 {
		return "Noch keine Berechnungen."
	}
	var s strings.Builder
	for _, e := range m.entries {
		s.WriteString(TimestampStyle.Render(e.Timestamp.Local().Format("02.01.2006 15:04")))
		s.WriteString("  ")
		s.WriteString(LabelStyle.Render(e.Name))
		s.WriteString(ValueStyle.Render(e.Result))
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) renderFooter() string {
	var help string
	switch m.view {
	case ViewTools:
		help = "Enter: Öffnen • /: Filtern • Tab: Verlauf • q: Beenden"
	case ViewForm:
		help = "Enter: Berechnen • Tab/↓: Nächstes Feld • Ctrl+R: Leeren • Esc: Zurück"
	case ViewHistory:
		help = "↑/↓: Blättern • Ctrl+R: Aktualisieren • Esc: Zurück"
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

// Message types for async operations
type toolsLoadedMsg struct {
	tools []*tools.Tool
	err   error
}

type resultMsg struct {
	result *tools.Result
	err    error
}

type historyMsg struct {
	entries []*history.Entry
	err     error
}

func (m Model) loadTools() tea.Cmd {
	calc := m.calc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), calcTimeout)
		defer cancel()
		list, _, err := calc.Tools(ctx, "", "")
		return toolsLoadedMsg{tools: list, err: err}
	}
}

func (m Model) calculate(tool string, params tools.Params) tea.Cmd {
	calc := m.calc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), calcTimeout)
		defer cancel()
		res, err := calc.Calculate(ctx, tool, params)
		return resultMsg{result: res, err: err}
	}
}

func (m Model) loadHistory() tea.Cmd {
	calc := m.calc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), calcTimeout)
		defer cancel()
		entries, err := calc.History(ctx, history.Filter{Limit: historyLimit})
		if err != nil {
			return historyMsg{err: fmt.Errorf("Verlauf nicht verfügbar: %w", err)}
		}
		return historyMsg{entries: entries}
	}
}

// Run starts the browser full-screen and blocks until it quits
func Run(calc client.Calculator) error {
	_, err := tea.NewProgram(NewModel(calc), tea.WithAltScreen()).Run()
	return err
}
