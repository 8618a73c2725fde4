// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel asks for the admin password.
type loginModel struct {
	input      textinput.Model
	submitting bool
	errMsg     string
}

func newLoginModel() loginModel {
	input := textinput.New()
	input.Placeholder = "admin password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return loginModel{input: input}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Password: ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nSigning in...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ENVVAULT LOGIN", b.String(), "enter: sign in  ctrl+c: quit")
}
