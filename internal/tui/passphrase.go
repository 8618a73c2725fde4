// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// passphraseModel unlocks the vault. On a vault without passphrase it asks
// for a new one twice and creates it.
type passphraseModel struct {
	inputs     []textinput.Model
	focus      int
	loading    bool
	create     bool
	submitting bool
	errMsg     string
}

func newPassphraseModel() passphraseModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Placeholder = "passphrase"
	inputs[1].Placeholder = "repeat passphrase"
	inputs[0].Focus()

	return passphraseModel{inputs: inputs, loading: true}
}

// active returns the inputs shown in the current mode.
func (m passphraseModel) active() []textinput.Model {
	if m.create {
		return m.inputs
	}
	return m.inputs[:1]
}

func (m passphraseModel) View() string {
	var b strings.Builder

	title := "UNLOCK VAULT"
	switch {
	case m.loading:
		b.WriteString("Checking the vault...\n")
	case m.create:
		title = "SET UP PASSPHRASE"
		b.WriteString("This vault has no passphrase yet. Choose one; it encrypts every project.\n\n")
		b.WriteString("Passphrase: ")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\nRepeat:     ")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")
	default:
		b.WriteString("Passphrase: ")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\nChecking passphrase...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, b.String(), "enter: unlock  tab: next field  esc: log out")
}
