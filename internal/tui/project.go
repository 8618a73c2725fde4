// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// projectModel shows the decrypted .env content of one project.
type projectModel struct {
	name     string
	data     string
	viewport viewport.Model
}

func newProjectModel() projectModel {
	return projectModel{viewport: viewport.New(80, 20)}
}

func (m *projectModel) setContent(name, data string) {
	m.name = name
	m.data = data
	m.viewport.SetContent(data)
	m.viewport.GotoTop()
}

func (m projectModel) View(status string) string {
	body := m.viewport.View()
	if status != "" {
		body += "\n\n" + statusStyle.Render(status)
	}

	return renderPage(m.name+".env", body, "c: copy  r: refresh  ↑/↓: scroll  esc: back")
}
