package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akyairhashvil/jot/internal/limit"
	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(t *testing.T, m LimitedInput, s string) LimitedInput {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func focusedInput(kind limit.Kind) LimitedInput {
	m := NewLimitedInput("", kind, nil)
	m.Focus()
	return m
}

func TestLimitedInputAcceptsUpToLimit(t *testing.T) {
	m := focusedInput(limit.ByCharacter{N: 5})
	m = typeRunes(t, m, "hello")

	if m.Value() != "hello" || m.LimitReached() {
		t.Fatalf("unexpected state value=%q reached=%v", m.Value(), m.LimitReached())
	}
	if m.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", m.Remaining())
	}
	if m.Level() != LevelCritical {
		t.Fatalf("Level() = %s, want critical", m.Level())
	}
}

func TestLimitedInputRejectsCrossing(t *testing.T) {
	m := focusedInput(limit.ByCharacter{N: 5})
	m = typeRunes(t, m, "hello!")

	if m.Value() != "hello" {
		t.Fatalf("Value() = %q, want hello", m.Value())
	}
	if !m.LimitReached() {
		t.Fatalf("expected LimitReached after overflow")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Value() != "hell" || m.LimitReached() {
		t.Fatalf("unexpected state after backspace value=%q reached=%v", m.Value(), m.LimitReached())
	}
}

func TestLimitedInputRestoresCursor(t *testing.T) {
	m := focusedInput(limit.ByCharacter{N: 3})
	m = typeRunes(t, m, "abc")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.input.Position() != 2 {
		t.Fatalf("expected cursor at 2, got %d", m.input.Position())
	}
	m = typeRunes(t, m, "x")

	if m.Value() != "abc" {
		t.Fatalf("Value() = %q, want abc", m.Value())
	}
	if m.input.Value() != "abc" {
		t.Fatalf("editor value = %q, want abc", m.input.Value())
	}
	if m.input.Position() != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", m.input.Position())
	}
}

func TestLimitedInputWordLimit(t *testing.T) {
	m := focusedInput(limit.ByWord{N: 2})
	m = typeRunes(t, m, "one two ")
	if m.Value() != "one two " || m.LimitReached() {
		t.Fatalf("unexpected state value=%q reached=%v", m.Value(), m.LimitReached())
	}
	m = typeRunes(t, m, "t")
	if m.Value() != "one two " || !m.LimitReached() {
		t.Fatalf("expected third word to be rejected, value=%q", m.Value())
	}
}

func TestLimitedInputPasteOverLimit(t *testing.T) {
	m := focusedInput(limit.ByWord{N: 2})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one two three"), Paste: true})
	if m.Value() != "" || !m.LimitReached() {
		t.Fatalf("expected paste to be rejected, value=%q reached=%v", m.Value(), m.LimitReached())
	}
}

func TestLimitedInputIgnoresKeysWhenBlurred(t *testing.T) {
	m := NewLimitedInput("", limit.ByCharacter{N: 5}, nil)
	m = typeRunes(t, m, "abc")
	if m.Value() != "" {
		t.Fatalf("blurred input should not accept text, got %q", m.Value())
	}
}

func TestLimitedInputColorTransitions(t *testing.T) {
	m := focusedInput(limit.ByCharacter{N: 10})
	m = typeRunes(t, m, "abc")
	if m.Level() != LevelNeutral {
		t.Fatalf("Level() = %s after abc, want neutral", m.Level())
	}
	m = typeRunes(t, m, "de")
	if m.Level() != LevelWarning {
		t.Fatalf("Level() = %s after abcde, want warning", m.Level())
	}
}

func TestLimitedInputModifierStartsFreshBinding(t *testing.T) {
	m := NewLimitedInput("Say something", limit.ByCharacter{N: 5}, nil)
	m.Focus()
	m = typeRunes(t, m, "hey")
	old := m.Binding()

	next := m.WithLimit(limit.ByWord{N: 3})
	if next.Value() != "" || next.input.Value() != "" {
		t.Fatalf("expected modifier to discard text, got %q", next.Value())
	}
	if next.Binding() == old {
		t.Fatalf("expected a new binding")
	}
	if _, ok := next.Kind().(limit.ByWord); !ok {
		t.Fatalf("expected ByWord kind, got %#v", next.Kind())
	}
	if next.Placeholder() != "3 words maximum" {
		t.Fatalf("explicit placeholder should be replaced, got %q", next.Placeholder())
	}
	if !next.Focused() {
		t.Fatalf("expected focus to carry over")
	}
	if m.Value() != "hey" {
		t.Fatalf("original input must be untouched, got %q", m.Value())
	}

	chars := next.WithCharacterLimit(8)
	if k, ok := chars.Kind().(limit.ByCharacter); !ok || k.N != 8 {
		t.Fatalf("expected ByCharacter{8}, got %#v", chars.Kind())
	}

	ten := m.WithCharacterLimit(10)
	if ten.Placeholder() != "10 characters maximum" || ten.input.Placeholder != "10 characters maximum" {
		t.Fatalf("expected generated placeholder, got %q", ten.Placeholder())
	}
}

func TestLimitedInputExplicitEmptyPlaceholder(t *testing.T) {
	m := NewLimitedInput("", limit.ByWord{N: 4}, nil)
	if m.Placeholder() != "4 words maximum" {
		t.Fatalf("Placeholder() = %q", m.Placeholder())
	}
	m = m.WithPlaceholder("")
	if m.Placeholder() != "" || m.input.Placeholder != "" {
		t.Fatalf("explicit empty placeholder must be kept, got %q", m.Placeholder())
	}
	m = m.WithPlaceholder("type here")
	if m.input.Placeholder != "type here" {
		t.Fatalf("editor placeholder = %q", m.input.Placeholder)
	}
}

func TestLimitedInputDefaults(t *testing.T) {
	m := NewDefaultLimitedInput()
	if m.Kind().Max() != 5 {
		t.Fatalf("default max = %d, want 5", m.Kind().Max())
	}
	if m.Placeholder() != "5 characters maximum" {
		t.Fatalf("Placeholder() = %q", m.Placeholder())
	}
	if m.input.Placeholder != m.Placeholder() {
		t.Fatalf("editor placeholder %q does not match %q", m.input.Placeholder, m.Placeholder())
	}
	if m.input.CharLimit != 0 {
		t.Fatalf("editor CharLimit must be disabled, got %d", m.input.CharLimit)
	}
}

func TestLimitedInputSetValueAndClear(t *testing.T) {
	m := NewLimitedInput("", limit.ByCharacter{N: 4}, nil)
	if !m.SetValue("abcd") {
		t.Fatalf("expected abcd to be accepted")
	}
	if m.SetValue("abcde") {
		t.Fatalf("expected abcde to be rejected")
	}
	if m.input.Value() != "abcd" {
		t.Fatalf("editor value = %q, want abcd", m.input.Value())
	}
	m.Clear()
	if m.Value() != "" || m.input.Value() != "" || m.LimitReached() {
		t.Fatalf("expected cleared input, got %q", m.Value())
	}
}

func TestLimitedInputRingsBellOnViolation(t *testing.T) {
	var buf bytes.Buffer
	m := NewLimitedInput("", limit.ByCharacter{N: 2}, NewBellNotifier(&buf))
	m.Focus()
	m = typeRunes(t, m, "abcd")
	if buf.String() != "\a\a" {
		t.Fatalf("expected two bells, got %q", buf.String())
	}
}

func TestLimitedInputSubscribe(t *testing.T) {
	m := focusedInput(limit.ByCharacter{N: 1})
	var states []limit.State
	m.Subscribe(func(s limit.State) { states = append(states, s) })
	m = typeRunes(t, m, "ab")
	if len(states) != 2 || states[0].Text != "a" || !states[1].LimitReached {
		t.Fatalf("unexpected notifications %+v", states)
	}
}

func TestLimitedInputView(t *testing.T) {
	m := NewLimitedInput("", limit.ByWord{N: 3}, nil)
	m.SetWidth(30)
	view := m.View()
	if !strings.Contains(view, "words maximum") {
		t.Fatalf("expected placeholder in view, got %q", view)
	}
	if !strings.Contains(view, strings.Repeat("─", 30)) {
		t.Fatalf("expected divider in view")
	}
	lines := strings.Split(view, "\n")
	if got := strings.TrimSpace(lines[len(lines)-1]); !strings.Contains(got, "3") {
		t.Fatalf("expected remaining count 3 on last line, got %q", got)
	}
}

func TestLimitedInputSetWidthClamps(t *testing.T) {
	m := NewDefaultLimitedInput()
	m.SetWidth(2)
	if m.Width() != 10 {
		t.Fatalf("Width() = %d, want clamp to 10", m.Width())
	}
	if m.input.Width < 1 {
		t.Fatalf("editor width must stay positive")
	}
}
