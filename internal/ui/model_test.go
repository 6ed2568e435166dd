package ui

import (
	"errors"
	"strings"
	"testing"

	"numcheck/internal/classifier"

	tea "github.com/charmbracelet/bubbletea"
)

func submit(t *testing.T, value string) *Model {
	t.Helper()
	m := InitialModel()
	m.input.SetValue(value)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("submitting %q returned no command, want tea.Quit", value)
	}
	return &m
}

func TestSubmit_Classifies(t *testing.T) {
	cases := []struct {
		input string
		class classifier.Class
		msg   string
	}{
		{"15", classifier.Above, "Your number is above 10"},
		{"10", classifier.NotAbove, "Your number is less than or equal to 10"},
		{"-100", classifier.NotAbove, "Your number is less than or equal to 10"},
	}
	for _, c := range cases {
		m := submit(t, c.input)
		res, ok := m.Result()
		if !ok {
			t.Fatalf("%q: no result, err=%v", c.input, m.Err())
		}
		if res.Class != c.class {
			t.Errorf("%q: class = %s, want %s", c.input, res.Class, c.class)
		}
		if !strings.Contains(m.View(), c.msg) {
			t.Errorf("%q: view missing %q:\n%s", c.input, c.msg, m.View())
		}
	}
}

func TestSubmit_ParseErrorEndsSession(t *testing.T) {
	m := submit(t, "abc")
	if _, ok := m.Result(); ok {
		t.Fatal("expected no result for malformed input")
	}
	if !classifier.IsParseError(m.Err()) {
		t.Errorf("Err() = %v, want ParseError", m.Err())
	}
	view := m.View()
	if strings.Contains(view, "Your number is") {
		t.Errorf("view shows a classification for malformed input:\n%s", view)
	}
	if strings.Contains(view, "Error:") {
		t.Errorf("error belongs on stderr, not in the view:\n%s", view)
	}
}

func TestLineFeedSubmits(t *testing.T) {
	m := InitialModel()
	m.input.SetValue("15")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	if cmd == nil {
		t.Fatal("ctrl+j returned no command, want tea.Quit")
	}
	res, ok := m.Result()
	if !ok || res.Class != classifier.Above {
		t.Errorf("Result() = %+v, %v; want Above", res, ok)
	}
}

func TestInputClosed(t *testing.T) {
	cases := []struct {
		typed  string
		ok     bool
		reason string
	}{
		{"15", true, ""},
		{"", false, classifier.ReasonNoInput},
		{"abc", false, classifier.ReasonSyntax},
	}
	for _, c := range cases {
		m := InitialModel()
		m.input.SetValue(c.typed)
		_, cmd := m.Update(InputClosedMsg{})
		if cmd == nil {
			t.Errorf("%q: expected quit command", c.typed)
		}
		if _, ok := m.Result(); ok != c.ok {
			t.Errorf("%q: result ok = %v, want %v", c.typed, ok, c.ok)
		}
		if c.ok {
			continue
		}
		var pe *classifier.ParseError
		if !errors.As(m.Err(), &pe) || pe.Reason != c.reason {
			t.Errorf("%q: Err() = %v, want reason %q", c.typed, m.Err(), c.reason)
		}
	}
}

func TestQuitKeysCancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := InitialModel()
		m.input.SetValue("99")
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("%s: expected quit command", msg)
		}
		if !m.Cancelled() {
			t.Errorf("%s: expected cancelled state", msg)
		}
		if _, ok := m.Result(); ok {
			t.Errorf("%s: cancelled session produced a result", msg)
		}
	}
}

func TestTypingUpdatesInput(t *testing.T) {
	m := InitialModel()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	if got := m.input.Value(); got != "12" {
		t.Errorf("input value = %q, want %q", got, "12")
	}
	view := m.View()
	if !strings.Contains(view, "Enter a number, any number at all:") {
		t.Errorf("view missing prompt:\n%s", view)
	}
	if !strings.Contains(view, "classify") {
		t.Errorf("view missing footer:\n%s", view)
	}
}
