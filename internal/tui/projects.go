// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-env-vault/models"
	"github.com/charmbracelet/bubbles/list"
)

// projectItem adapts a project summary to the list delegate.
type projectItem struct {
	summary models.ProjectSummary
}

func (i projectItem) Title() string { return i.summary.Name }

func (i projectItem) Description() string {
	desc := humanSize(i.summary.Size)
	if i.summary.Revision != "" {
		desc += " · rev " + shortRevision(i.summary.Revision)
	}
	return desc
}

func (i projectItem) FilterValue() string { return i.summary.Name }

type projectListModel struct {
	list    list.Model
	loaded  bool
	loading bool
}

func newProjectListModel() projectListModel {
	l := list.New(nil, list.NewDefaultDelegate(), 60, 20)
	l.Title = "Projects"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("project", "projects")

	return projectListModel{list: l}
}

// setProjects replaces the list content, leaving the passphrase check item
// out.
func (m *projectListModel) setProjects(projects []models.ProjectSummary) {
	items := make([]list.Item, 0, len(projects))
	for _, p := range projects {
		if p.Sentinel {
			continue
		}
		items = append(items, projectItem{summary: p})
	}

	m.list.SetItems(items)
	m.loaded = true
	m.loading = false
}

func (m projectListModel) selected() (string, bool) {
	item, ok := m.list.SelectedItem().(projectItem)
	if !ok {
		return "", false
	}
	return item.summary.Name, true
}

func (m projectListModel) filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m projectListModel) View(status string) string {
	body := m.list.View()
	if m.loading {
		body = "Loading projects...\n\n" + body
	}
	if m.loaded && len(m.list.Items()) == 0 {
		body = "No projects yet. Upload one with the web UI or the CLI route.\n"
	}
	if status != "" {
		body += "\n" + statusStyle.Render(status)
	}

	return renderPage(fmt.Sprintf("ENVVAULT · %d projects", len(m.list.Items())), body,
		"enter: open  /: filter  r: refresh  d: delete  p: change passphrase  l: log out  q: quit")
}
