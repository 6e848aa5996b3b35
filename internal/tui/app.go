package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/akyairhashvil/jot/internal/config"
	"github.com/akyairhashvil/jot/internal/limit"
	"github.com/akyairhashvil/jot/internal/models"
	"github.com/akyairhashvil/jot/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// editStats is shared by every copy of AppModel so the binding listener can
// update it in place.
type editStats struct {
	edits    int
	rejected int
	clearing bool
}

// AppModel hosts a LimitedInput, saves submitted text as notes and lists
// the most recent ones.
type AppModel struct {
	ctx   context.Context
	db    NoteStore
	input LimitedInput
	notes []models.Note
	stats *editStats

	width  int
	height int

	Message       string
	statusMessage string
	statusIsError bool
}

// NewAppModel wires input to db. db may be nil, in which case notes are kept
// in memory for the session only.
func NewAppModel(ctx context.Context, db NoteStore, input LimitedInput) AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	m := AppModel{
		ctx:   ctx,
		db:    db,
		stats: &editStats{},
	}
	m.setInput(input)
	if db != nil {
		if name, ok := db.GetSetting(ctx, config.SettingTheme); ok {
			SetTheme(name)
		}
	}
	m.refreshNotes()
	return m
}

func (m *AppModel) setInput(input LimitedInput) {
	stats := m.stats
	input.Subscribe(func(s limit.State) {
		if stats.clearing {
			return
		}
		stats.edits++
		if s.LimitReached {
			stats.rejected++
		}
	})
	input.Focus()
	m.input = input
}

// clearInput empties the input without counting it as an edit.
func (m *AppModel) clearInput() {
	m.stats.clearing = true
	m.input.Clear()
	m.stats.clearing = false
}

func (m AppModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := config.InputWidth
		if avail := msg.Width - 8; avail < w {
			w = avail
		}
		m.input.SetWidth(w)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		case "ctrl+l":
			m.clearInput()
			m.clearStatus()
			return m, nil
		case "ctrl+t":
			m.cycleTheme()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AppModel) submit() {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.setStatusError("Nothing to save")
		return
	}
	kind := m.input.Kind()
	note := models.Note{
		Content: text,
		Unit:    unitFor(kind),
		Count:   limit.UnitCount(kind, text),
		Max:     kind.Max(),
	}
	if m.db == nil {
		note.ID = int64(len(m.notes) + 1)
		m.notes = append([]models.Note{note}, m.notes...)
	} else {
		id, err := m.db.AddNote(m.ctx, note)
		if err != nil {
			util.LogError("save note", err)
			m.setStatusError(fmt.Sprintf("Error saving note: %v", err))
			return
		}
		note.ID = id
		m.refreshNotes()
	}
	m.clearInput()
	m.clearStatus()
	m.Message = fmt.Sprintf("Saved note #%d", note.ID)
}

func (m *AppModel) refreshNotes() {
	if m.db == nil {
		return
	}
	notes, err := m.db.ListNotes(m.ctx, config.MaxVisibleNotes)
	if err != nil {
		util.LogError("list notes", err)
		m.setStatusError(fmt.Sprintf("Error loading notes: %v", err))
		return
	}
	m.notes = notes
}

func (m *AppModel) cycleTheme() {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	next := names[0]
	for i, name := range names {
		if Themes[name].Name == CurrentTheme.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	SetTheme(next)
	m.Message = "Theme: " + CurrentTheme.Name
	if m.db != nil {
		if err := m.db.SetSetting(m.ctx, config.SettingTheme, next); err != nil {
			util.LogError("save theme", err)
			m.setStatusError(fmt.Sprintf("Error saving theme: %v", err))
		}
	}
}

func (m *AppModel) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
	m.Message = ""
}

func (m *AppModel) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

// Notes returns the notes currently listed, newest first.
func (m AppModel) Notes() []models.Note { return m.notes }

// Input exposes the hosted widget.
func (m AppModel) Input() LimitedInput { return m.input }

func unitFor(kind limit.Kind) models.Unit {
	switch kind.(type) {
	case limit.ByWord:
		return models.UnitWords
	case limit.ByCharacter:
		return models.UnitCharacters
	}
	return models.UnitCharacters
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m AppModel) View() string {
	width := m.input.Width()
	var b strings.Builder

	kind := m.input.Kind()
	title := fmt.Sprintf("jot v%s", versionLabel())
	b.WriteString(CurrentTheme.Header.Render(title))
	b.WriteString("  ")
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("limit: %d %s", kind.Max(), kind.Unit())))
	b.WriteString("\n\n")

	b.WriteString(CurrentTheme.Input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(m.renderNotes(width))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return CurrentTheme.Base.Render(b.String())
}

func (m AppModel) renderStatus() string {
	switch {
	case m.input.LimitReached():
		return CurrentTheme.Critical.Render(fmt.Sprintf("Limit reached: %d %s maximum", m.input.Kind().Max(), m.input.Kind().Unit()))
	case m.statusMessage != "":
		if m.statusIsError {
			return CurrentTheme.Error.Render(m.statusMessage)
		}
		return CurrentTheme.Dim.Render(m.statusMessage)
	case m.Message != "":
		return CurrentTheme.Focused.Render(m.Message)
	}
	return ""
}

func (m AppModel) renderNotes(width int) string {
	if len(m.notes) == 0 {
		return CurrentTheme.Dim.Render("No notes yet.")
	}
	lines := make([]string, 0, len(m.notes))
	for i, n := range m.notes {
		if i >= config.MaxVisibleNotes {
			break
		}
		meta := fmt.Sprintf(" %d/%d", n.Count, n.Max)
		body := truncateLabel("• "+n.Content, width-ansi.StringWidth(meta))
		lines = append(lines, CurrentTheme.Note.Render(body)+CurrentTheme.Dim.Render(meta))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m AppModel) renderFooter() string {
	help := "[enter]Save [ctrl+l]Clear [ctrl+t]Theme [esc]Quit"
	stats := fmt.Sprintf("edits %d  rejected %d", m.stats.edits, m.stats.rejected)
	return CurrentTheme.Dim.Render(help) + "\n" + CurrentTheme.Dim.Render(stats)
}
