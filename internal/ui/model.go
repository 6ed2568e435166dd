// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the Bubble Tea rendition of the number prompt. It runs
// the same single-shot pipeline as the plain CLI: one value is read, classified
// and shown, then the program exits.
package ui

import (
	"io"
	"strings"

	"numcheck/internal/classifier"
	"numcheck/internal/processor"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateEditing state = iota
	stateClassified
	stateParseFailed
	stateCancelled
)

// InputClosedMsg tells the model its input stream reached end-of-stream.
// Whatever was typed so far is submitted.
type InputClosedMsg struct{}

// Model is the TUI state.
type Model struct {
	input  textinput.Model
	keys   KeyMap
	state  state
	result classifier.Result
	err    error
}

func InitialModel() Model {
	t := textinput.New()
	t.Placeholder = "e.g. 42"
	t.Focus()
	t.CharLimit = 32
	t.Width = 24

	return Model{
		input: t,
		keys:  DefaultKeyMap,
		state: stateEditing,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != stateEditing {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case InputClosedMsg:
		if m.input.Value() == "" {
			m.err = &classifier.ParseError{Reason: classifier.ReasonNoInput, Err: io.EOF}
			m.state = stateParseFailed
		} else {
			m.submit()
		}
		return m, tea.Quit
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.state = stateCancelled
			return m, tea.Quit
		case key.Matches(msg, m.keys.Enter):
			m.submit()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the typed value. A parse failure ends the session; there is
// no second attempt.
func (m *Model) submit() {
	n, err := classifier.ParseLine(m.input.Value())
	if err != nil {
		m.err = err
		m.state = stateParseFailed
		return
	}
	m.result = classifier.Classify(n)
	m.state = stateClassified
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(processor.Prompt))
	b.WriteString("\n")

	switch m.state {
	case stateClassified:
		style := belowStyle
		if m.result.Class == classifier.Above {
			style = aboveStyle
		}
		b.WriteString(style.Render(m.result.Message()))
		b.WriteString("\n")
	case stateParseFailed, stateCancelled:
		// The caller reports the error; only the prompt stays on screen.
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.footer())
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) footer() string {
	parts := make([]string, 0, len(m.keys.footerBindings()))
	for _, kb := range m.keys.footerBindings() {
		h := kb.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, footerSeparatorStyle.Render(" | "))
}

// Result returns the classification, if the user submitted a valid number.
func (m *Model) Result() (classifier.Result, bool) {
	return m.result, m.state == stateClassified
}

// Err returns the parse error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Cancelled reports whether the user quit without submitting.
func (m *Model) Cancelled() bool {
	return m.state == stateCancelled
}
