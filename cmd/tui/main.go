// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"numcheck/internal/classifier"
	"numcheck/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user leaves the TUI without submitting.
var ErrCancelled = errors.New("cancelled before a number was entered")

// RunTUI initializes and runs the Bubble Tea prompt on the given streams.
// End-of-stream on in submits whatever was typed, so piped input terminates.
func RunTUI(in io.Reader, out io.Writer) (classifier.Result, error) {
	m := ui.InitialModel()

	var p *tea.Program
	input := &eofReader{r: in, onEOF: func() {
		// Sent asynchronously: the event loop may already be gone, in
		// which case Send returns once the program's context is cancelled.
		go p.Send(ui.InputClosedMsg{})
	}}
	p = tea.NewProgram(&m, tea.WithInput(input), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return classifier.Result{}, fmt.Errorf("alas, there's been an error in the terminal UI: %w", err)
	}

	if err := m.Err(); err != nil {
		return classifier.Result{}, err
	}
	if m.Cancelled() {
		return classifier.Result{}, ErrCancelled
	}
	result, ok := m.Result()
	if !ok {
		return classifier.Result{}, ErrCancelled
	}
	return result, nil
}

// eofReader calls onEOF once, on the first read that returns io.EOF. Bytes
// delivered together with io.EOF are returned first, so every key reaches the
// program before the end-of-stream notice.
type eofReader struct {
	r     io.Reader
	onEOF func()
	once  sync.Once
	eof   bool
}

func (e *eofReader) Read(b []byte) (int, error) {
	if e.eof {
		e.once.Do(e.onEOF)
		return 0, io.EOF
	}
	n, err := e.r.Read(b)
	if errors.Is(err, io.EOF) {
		if n > 0 {
			e.eof = true
			return n, nil
		}
		e.once.Do(e.onEOF)
	}
	return n, err
}
