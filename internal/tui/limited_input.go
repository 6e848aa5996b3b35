package tui

import (
	"strconv"
	"strings"

	"github.com/akyairhashvil/jot/internal/config"
	"github.com/akyairhashvil/jot/internal/limit"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// LimitedInput is a single-line editor bound to a limit.Binding. Edits that
// would push the text over the limit are reverted before they are shown.
type LimitedInput struct {
	input          textinput.Model
	binding        *limit.Binding
	placeholder    string
	hasPlaceholder bool // placeholder was supplied by the caller, even if empty
	notifier       limit.Notifier
	width          int
}

// NewDefaultLimitedInput returns an input limited to the default number of
// characters with a synthesized placeholder.
func NewDefaultLimitedInput() LimitedInput {
	return NewLimitedInput("", limit.ByCharacter{N: config.DefaultCharacterLimit}, nil)
}

// NewLimitedInput builds an input for kind. An empty placeholder is replaced
// by "<max> characters maximum" or "<max> words maximum".
func NewLimitedInput(placeholder string, kind limit.Kind, notifier limit.Notifier) LimitedInput {
	if notifier == nil {
		notifier = limit.NopNotifier{}
	}
	m := LimitedInput{
		placeholder:    placeholder,
		hasPlaceholder: placeholder != "",
		notifier:       notifier,
		width:          config.InputWidth,
	}
	return m.bind(kind)
}

// WithPlaceholder returns a copy showing text while empty. Unlike the
// constructor argument, an empty text is kept as given.
func (m LimitedInput) WithPlaceholder(text string) LimitedInput {
	m.placeholder = text
	m.hasPlaceholder = true
	m.input.Placeholder = m.Placeholder()
	return m
}

// WithCharacterLimit returns a copy bound to a fresh character limit.
// Text entered so far and any explicit placeholder are discarded.
func (m LimitedInput) WithCharacterLimit(max int) LimitedInput {
	return m.WithLimit(limit.ByCharacter{N: max})
}

// WithLimit returns a copy bound to a fresh binding for kind.
// Text entered so far and any explicit placeholder are discarded.
func (m LimitedInput) WithLimit(kind limit.Kind) LimitedInput {
	m.placeholder = ""
	m.hasPlaceholder = false
	return m.bind(kind)
}

func (m LimitedInput) bind(kind limit.Kind) LimitedInput {
	m.binding = limit.NewKindBinding(kind, limit.WithNotifier(m.notifier))

	focused := m.input.Focused()
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Placeholder = m.Placeholder()
	ti.Width = m.editorWidth()
	if focused {
		ti.Focus()
	}
	m.input = ti
	return m
}

func (m LimitedInput) editorWidth() int {
	w := m.width - ansi.StringWidth("> ") - 1
	if w < 1 {
		return 1
	}
	return w
}

func (m LimitedInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the editor and proposes any resulting change to the
// binding. A rejected value is replaced by the last accepted text with the
// cursor put back where it was.
func (m LimitedInput) Update(msg tea.Msg) (LimitedInput, tea.Cmd) {
	prevPos := m.input.Position()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	value := m.input.Value()
	if value == m.binding.Text() {
		return m, cmd
	}
	if !m.binding.Propose(value) {
		m.input.SetValue(m.binding.Text())
		m.input.SetCursor(prevPos)
	}
	return m, cmd
}

// SetValue proposes value as if it had been typed.
func (m *LimitedInput) SetValue(value string) bool {
	accepted := m.binding.Propose(value)
	if accepted {
		m.input.SetValue(value)
	}
	return accepted
}

// Clear empties the input. The empty string is always within a non-negative
// limit and never counts as a crossing otherwise.
func (m *LimitedInput) Clear() {
	m.binding.Propose("")
	m.input.SetValue(m.binding.Text())
}

func (m *LimitedInput) Focus() tea.Cmd { return m.input.Focus() }
func (m *LimitedInput) Blur() { m.input.Blur() }
func (m LimitedInput) Focused() bool { return m.input.Focused() }

// SetWidth sets the total width of the widget in cells.
func (m *LimitedInput) SetWidth(w int) {
	if w < config.MinInputWidth {
		w = config.MinInputWidth
	}
	m.width = w
	m.input.Width = m.editorWidth()
}

func (m LimitedInput) Width() int { return m.width }
func (m LimitedInput) Value() string { return m.binding.Text() }
func (m LimitedInput) LimitReached() bool { return m.binding.LimitReached() }
func (m LimitedInput) Kind() limit.Kind { return m.binding.Kind() }
func (m LimitedInput) Binding() *limit.Binding { return m.binding }

// Subscribe registers fn for binding changes.
func (m LimitedInput) Subscribe(fn limit.Listener) func() {
	return m.binding.Subscribe(fn)
}

func (m LimitedInput) Remaining() int {
	return Remaining(m.binding.Kind(), m.binding.Text())
}

func (m LimitedInput) Placeholder() string {
	if m.hasPlaceholder {
		return m.placeholder
	}
	return PlaceholderText("", m.binding.Kind())
}

func (m LimitedInput) Level() Level {
	return Indicator(m.binding.Count(), m.binding.Kind().Max())
}

func (m LimitedInput) View() string {
	editor := m.input.View()
	divider := CurrentTheme.Divider.Render(strings.Repeat(config.DividerRune, m.width))

	label := strconv.Itoa(m.Remaining())
	if ansi.StringWidth(label) > m.width {
		label = ansi.Truncate(label, m.width, config.TruncationSuffix)
	}
	counter := lipgloss.PlaceHorizontal(m.width, lipgloss.Right, CurrentTheme.IndicatorStyle(m.Level()).Render(label))

	return lipgloss.JoinVertical(lipgloss.Left, editor, divider, counter)
}
