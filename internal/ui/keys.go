// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the prompt. Letter keys are left to the
// text input, so quitting uses esc and ctrl+c only. A bare line feed arrives as
// ctrl+j when input is piped, so it submits like enter.
type KeyMap struct {
	Enter key.Binding // Submit the typed number
	Quit  key.Binding // Exit without classifying
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter", "ctrl+j"),
		key.WithHelp("enter", "classify"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// footerBindings returns the bindings shown in the footer, in display order.
func (k KeyMap) footerBindings() []key.Binding {
	return []key.Binding{k.Enter, k.Quit}
}
