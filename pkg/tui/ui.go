// Package tui renders the schedule request form in the terminal: the
// credential and date fields, the schedule-type toggle, and the transient
// status line at the bottom.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Szafranee/GrafikPlusWeb/pkg/form"
	"github.com/Szafranee/GrafikPlusWeb/pkg/prefs"
)

// Focusable fields, in tab order. The schedule-type toggle sits between
// the date fields and the filename.
const (
	fieldUsername = iota
	fieldPassword
	fieldStartDate
	fieldEndDate
	fieldType
	fieldFilename
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Login",
	"Hasło",
	"Data od",
	"Data do",
	"Typ grafiku",
	"Nazwa pliku",
}

// Options wires the form UI to its collaborators.
type Options struct {
	State *form.State
	Theme *prefs.ThemeController

	// Submit runs one submission cycle. The outcome arrives through the
	// state's update channel, not through Submit's error.
	Submit func(ctx context.Context) error

	// Watch, when set, delivers on-disk preference changes so edits made
	// by another process (for example `grafikplus theme toggle`) restyle
	// a running UI.
	Watch <-chan prefs.Event
}

// Model is the Bubble Tea model for the form.
type Model struct {
	state  *form.State
	themes *prefs.ThemeController
	submit func(ctx context.Context) error

	updates <-chan form.Update
	watch   <-chan prefs.Event

	inputs       [fieldCount]textinput.Model
	focus        int
	scheduleType form.ScheduleType

	snap form.Snapshot

	styles     Styles
	termWidth  int
	termHeight int
}

type formUpdateMsg form.Update

type submitDoneMsg struct{ err error }

type prefsEventMsg prefs.Event

// New builds the form model seeded from the current state snapshot.
func New(opts Options) Model {
	snap := opts.State.Snapshot()

	m := Model{
		state:        opts.State,
		themes:       opts.Theme,
		submit:       opts.Submit,
		updates:      opts.State.Subscribe(),
		watch:        opts.Watch,
		focus:        fieldUsername,
		scheduleType: snap.Type,
		snap:         snap,
	}

	seeds := [fieldCount]string{
		fieldUsername:  snap.Username,
		fieldStartDate: snap.StartDate,
		fieldEndDate:   snap.EndDate,
		fieldFilename:  snap.Filename,
	}
	placeholders := [fieldCount]string{
		fieldUsername:  "login",
		fieldPassword:  "hasło",
		fieldStartDate: snap.MinDate,
		fieldEndDate:   snap.MaxDate,
		fieldFilename:  form.DefaultFilename,
	}

	for i := 0; i < fieldCount; i++ {
		if i == fieldType {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.Prompt = ""
		ti.SetValue(seeds[i])
		if i == fieldPassword {
			ti.EchoMode = textinput.EchoPassword
		}
		m.inputs[i] = ti
	}
	m.inputs[fieldUsername].Focus()

	m.styles = LightStyles()
	if opts.Theme != nil && opts.Theme.Dark() {
		m.styles = DarkStyles()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForUpdate(m.updates), textinput.Blink}
	if m.watch != nil {
		cmds = append(cmds, waitForPrefs(m.watch))
	}
	return tea.Batch(cmds...)
}

// waitForUpdate bridges the form's observer channel into the Tea loop.
func waitForUpdate(ch <-chan form.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return formUpdateMsg(u)
	}
}

// waitForPrefs bridges the preference watcher into the Tea loop.
func waitForPrefs(ch <-chan prefs.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return prefsEventMsg(e)
	}
}

func (m *Model) submitCmd() tea.Cmd {
	submit := m.submit
	return func() tea.Msg {
		return submitDoneMsg{err: submit(context.Background())}
	}
}

// pushFields copies the edited inputs into the form state before a
// submission; the state snapshot is what actually goes on the wire.
func (m *Model) pushFields() {
	m.state.SetCredentials(m.inputs[fieldUsername].Value(), m.inputs[fieldPassword].Value())
	m.state.SetRange(
		strings.TrimSpace(m.inputs[fieldStartDate].Value()),
		strings.TrimSpace(m.inputs[fieldEndDate].Value()),
	)
	m.state.SetType(m.scheduleType)
	m.state.SetFilename(strings.TrimSpace(m.inputs[fieldFilename].Value()))
}

// applyTheme restyles the view from the controller's current theme.
func (m *Model) applyTheme() {
	if m.themes != nil && m.themes.Dark() {
		m.styles = DarkStyles()
		return
	}
	m.styles = LightStyles()
}

func (m *Model) setFocus(i int) tea.Cmd {
	for f := 0; f < fieldCount; f++ {
		if f == fieldType {
			continue
		}
		m.inputs[f].Blur()
	}
	m.focus = i
	if i == fieldType {
		return nil
	}
	return m.inputs[i].Focus()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case formUpdateMsg:
		m.snap = msg.Snapshot
		// The scroll hint is satisfied by rendering: the status line is
		// pinned to the footer, always in view.
		return m, waitForUpdate(m.updates)

	case prefsEventMsg:
		if msg.Key == prefs.KeyTheme && m.themes != nil {
			m.themes.Reload()
			m.applyTheme()
		}
		return m, waitForPrefs(m.watch)

	case submitDoneMsg:
		// The outcome already reached the status line via the state's
		// update channel; the error itself was logged by the runner.
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+t":
			if m.themes != nil {
				m.themes.Toggle()
				m.applyTheme()
			}
			return m, nil

		case "tab", "down":
			cmds = append(cmds, m.setFocus((m.focus+1)%fieldCount))
			return m, tea.Batch(cmds...)

		case "shift+tab", "up":
			cmds = append(cmds, m.setFocus((m.focus+fieldCount-1)%fieldCount))
			return m, tea.Batch(cmds...)

		case "enter":
			m.pushFields()
			return m, m.submitCmd()

		case "space", "left", "right":
			if m.focus == fieldType {
				if m.scheduleType == form.Personal {
					m.scheduleType = form.General
				} else {
					m.scheduleType = form.Personal
				}
				return m, nil
			}
		}
	}

	if m.focus != fieldType {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) typeLabel() string {
	if m.scheduleType == form.Personal {
		return "osobisty"
	}
	return "ogólny"
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("GrafikPlus"))
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render(
		fmt.Sprintf("Zakres dat: %s – %s", m.snap.MinDate, m.snap.MaxDate)))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := m.styles.Label.Render(fieldLabels[i])
		cursor := "  "
		if i == m.focus {
			label = m.styles.Focused.Render(fieldLabels[i])
			cursor = "> "
		}

		value := ""
		if i == fieldType {
			value = m.typeLabel()
		} else {
			value = m.inputs[i].View()
		}
		b.WriteString(fmt.Sprintf("%s%-12s %s\n", cursor, label, value))
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"tab: pole • spacja: typ grafiku • enter: pobierz • ctrl+t: motyw • esc: wyjście"))

	return b.String()
}

// statusLine renders the transient message styled by its state.
func (m Model) statusLine() string {
	if m.snap.Message == "" {
		return ""
	}

	style := m.styles.Hint
	switch m.snap.Status {
	case form.StatusBusy:
		style = m.styles.Busy
	case form.StatusSuccess:
		style = m.styles.Success
	case form.StatusError:
		style = m.styles.Error
	}

	msg := m.snap.Message
	if m.termWidth > 0 {
		msg = wordwrap.String(msg, m.termWidth-2)
	}
	return style.Render(msg)
}

// Run launches the form UI and blocks until the user quits. Closing the
// state on exit ends the subscription bridge started by Init.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	opts.State.Close()
	return err
}
