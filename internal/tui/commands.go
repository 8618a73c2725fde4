// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-env-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdVersion() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		version, err := a.Version(ctx)
		return versionMsg{version: version, err: err}
	}
}

func (m appModel) cmdLogin(password string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		return loginDoneMsg{err: a.Login(ctx, password)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		return logoutDoneMsg{err: a.Logout(ctx)}
	}
}

func (m appModel) cmdPassphraseState() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		exists, err := a.PassphraseExists(ctx)
		return passphraseStateMsg{exists: exists, err: err}
	}
}

// cmdUnlock verifies passphrase, or creates it on an empty vault.
func (m appModel) cmdUnlock(passphrase string, create bool) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		var err error
		if create {
			err = a.CreatePassphrase(ctx, passphrase)
		} else {
			err = a.VerifyPassphrase(ctx, passphrase)
		}
		return passphraseDoneMsg{passphrase: passphrase, err: err}
	}
}

func (m appModel) cmdLoadProjects() tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		projects, err := a.ListProjects(ctx)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m appModel) cmdLoadProject(name string) tea.Cmd {
	ctx, a, secret := m.ctx, m.adapter, m.secret
	return func() tea.Msg {
		data, err := a.DownloadData(ctx, models.DownloadRequest{Passphrase: secret, ProjectName: name})
		return projectLoadedMsg{name: name, data: data, err: err}
	}
}

func (m appModel) cmdDeleteProject(name string) tea.Cmd {
	ctx, a, secret := m.ctx, m.adapter, m.secret
	return func() tea.Msg {
		err := a.DeleteProject(ctx, models.DownloadRequest{Passphrase: secret, ProjectName: name})
		return projectDeletedMsg{name: name, err: err}
	}
}

func (m appModel) cmdRotate(oldPassphrase, newPassphrase string) tea.Cmd {
	ctx, a := m.ctx, m.adapter
	return func() tea.Msg {
		report, err := a.RotatePassphrase(ctx, models.RotatePassphraseRequest{
			OldPassphrase: oldPassphrase,
			NewPassphrase: newPassphrase,
		})
		return rotatedMsg{newPassphrase: newPassphrase, report: report, err: err}
	}
}

func (m appModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func (m appModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
