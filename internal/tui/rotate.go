// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// rotateModel asks for the new passphrase; the current one is the
// passphrase the vault was unlocked with.
type rotateModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRotateModel() rotateModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 256
		inputs[i].Width = 40
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Placeholder = "new passphrase"
	inputs[1].Placeholder = "repeat new passphrase"
	inputs[0].Focus()

	return rotateModel{inputs: inputs}
}

func (m rotateModel) View() string {
	var b strings.Builder
	b.WriteString("Every project is re-encrypted. If one of them cannot be read, nothing changes.\n\n")
	b.WriteString("New passphrase: ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nRepeat:         ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nRe-encrypting...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CHANGE PASSPHRASE", b.String(), "enter: rotate  tab: next field  esc: back")
}

// focusNext moves focus within inputs, wrapping around.
func focusNext(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	focus = (focus + delta + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
