// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/adapter"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenPassphrase
	screenList
	screenProject
	screenRotate
)

type appModel struct {
	ctx       context.Context
	adapter   adapter.ServerAdapter
	copyText  func(string) error
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	statusTTL time.Duration

	currentScreen screen
	serverVersion string

	login      loginModel
	passphrase passphraseModel
	projects   projectListModel
	project    projectModel
	rotate     rotateModel

	// secret is the unlocked vault passphrase. It lives in memory only.
	secret string
	status string

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showBuildInfo bool

	err error
}

func newAppModel(ctx context.Context, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		adapter:       serverAdapter,
		copyText:      clipboard.WriteAll,
		buildInfo:     buildInfo,
		logger:        log,
		statusTTL:     2 * time.Second,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		passphrase:    newPassphraseModel(),
		projects:      newProjectListModel(),
		project:       newProjectModel(),
		rotate:        newRotateModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdVersion()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case versionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.login.errMsg = ""
		m.login.input.Reset()
		m.currentScreen = screenPassphrase
		m.passphrase = newPassphraseModel()
		return m, m.cmdPassphraseState()
	case logoutDoneMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("logout failed")
		}
		return m.toLogin(""), nil
	case passphraseStateMsg:
		m.passphrase.loading = false
		if msg.err != nil {
			return m.handleSessionError(msg.err, func(mm *appModel, text string) { mm.passphrase.errMsg = text })
		}
		m.passphrase.create = !msg.exists
		return m, nil
	case passphraseDoneMsg:
		m.passphrase.submitting = false
		if msg.err != nil {
			return m.handleSessionError(msg.err, func(mm *appModel, text string) { mm.passphrase.errMsg = text })
		}
		m.secret = msg.passphrase
		m.passphrase = newPassphraseModel()
		m.currentScreen = screenList
		m.projects.loading = true
		return m, m.cmdLoadProjects()
	case projectsLoadedMsg:
		m.projects.loading = false
		if msg.err != nil {
			return m.handleSessionError(msg.err, (*appModel).showErrorf)
		}
		m.projects.setProjects(msg.projects)
		return m, nil
	case projectLoadedMsg:
		if msg.err != nil {
			return m.handleSessionError(msg.err, (*appModel).showErrorf)
		}
		m.project.setContent(msg.name, msg.data)
		m.currentScreen = screenProject
		return m, nil
	case projectDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			return m.handleSessionError(msg.err, (*appModel).showErrorf)
		}
		m.status = fmt.Sprintf("Deleted %s", msg.name)
		m.currentScreen = screenList
		return m, tea.Batch(m.cmdLoadProjects(), m.cmdClearStatus())
	case rotatedMsg:
		return m.handleRotated(msg)
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Sprintf("copy to clipboard: %v", msg.err))
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenPassphrase:
		return m.updatePassphrase(msg)
	case screenList:
		return m.updateList(msg)
	case screenProject:
		return m.updateProject(msg)
	case screenRotate:
		return m.updateRotate(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenPassphrase:
		body = m.passphrase.View()
	case screenList:
		body = m.projects.View(m.status)
	case screenProject:
		body = m.project.View(m.status)
	case screenRotate:
		body = m.rotate.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// handleSessionError sends the user back to the login screen when the
// session has expired and otherwise reports err through show.
func (m appModel) handleSessionError(err error, show func(*appModel, string)) (tea.Model, tea.Cmd) {
	if errors.Is(err, adapter.ErrUnauthorized) && isSessionError(err) {
		return m.toLogin("Session expired, sign in again"), nil
	}

	show(&m, humanizeError(err))
	return m, nil
}

// isSessionError tells an expired session from a wrong passphrase; both are
// answered with 401.
func isSessionError(err error) bool {
	s := err.Error()
	return strings.Contains(s, "access token") || strings.Contains(s, "Authorization")
}

func (m appModel) toLogin(errMsg string) appModel {
	m.secret = ""
	m.status = ""
	m.currentScreen = screenLogin
	m.login = newLoginModel()
	m.login.errMsg = errMsg
	m.passphrase = newPassphraseModel()
	m.rotate = newRotateModel()
	m.project = newProjectModel()
	m.projects.setProjects(nil)
	m.projects.loaded = false
	return m
}

func (m *appModel) resize(width, height int) {
	// room for the page frame: title, dividers, hot keys and padding
	const frame = 10
	h := max(height-frame, 5)
	w := max(width-4, 20)

	m.projects.list.SetSize(w, h)
	m.project.viewport.Width = w
	m.project.viewport.Height = h
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			password := m.login.input.Value()
			if password == "" {
				m.login.errMsg = "Password is required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(password)
		}
	}

	var cmd tea.Cmd
	m.login.input, cmd = m.login.input.Update(msg)
	return m, cmd
}

func (m appModel) updatePassphrase(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, m.cmdLogout()
		case key.Matches(keyMsg, keys.tab):
			if m.passphrase.create {
				m.passphrase.focus = focusNext(m.passphrase.inputs, m.passphrase.focus, 1)
			}
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			if m.passphrase.create {
				m.passphrase.focus = focusNext(m.passphrase.inputs, m.passphrase.focus, -1)
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.passphrase.loading || m.passphrase.submitting {
				return m, nil
			}
			passphrase := m.passphrase.inputs[0].Value()
			if strings.TrimSpace(passphrase) == "" {
				m.passphrase.errMsg = "Passphrase is required"
				return m, nil
			}
			if m.passphrase.create && passphrase != m.passphrase.inputs[1].Value() {
				m.passphrase.errMsg = "Passphrases do not match"
				return m, nil
			}
			m.passphrase.errMsg = ""
			m.passphrase.submitting = true
			return m, m.cmdUnlock(passphrase, m.passphrase.create)
		}
	}

	active := m.passphrase.active()
	focus := min(m.passphrase.focus, len(active)-1)

	var cmd tea.Cmd
	m.passphrase.inputs[focus], cmd = m.passphrase.inputs[focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.projects.filtering() {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.info):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(keyMsg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(keyMsg, keys.refresh):
			m.projects.loading = true
			return m, m.cmdLoadProjects()
		case key.Matches(keyMsg, keys.enter):
			name, ok := m.projects.selected()
			if !ok {
				return m, nil
			}
			return m, m.cmdLoadProject(name)
		case key.Matches(keyMsg, keys.delete):
			name, ok := m.projects.selected()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = name
			m.pendingDelete = name
			return m, nil
		case key.Matches(keyMsg, keys.rotate):
			m.rotate = newRotateModel()
			m.currentScreen = screenRotate
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.projects.list, cmd = m.projects.list.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete == "" {
			return m, nil
		}
		return m, m.cmdDeleteProject(m.pendingDelete)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m appModel) updateProject(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			m.project.setContent("", "")
			return m, nil
		case key.Matches(keyMsg, keys.copy):
			return m, m.cmdCopy(m.project.data)
		case key.Matches(keyMsg, keys.refresh):
			return m, m.cmdLoadProject(m.project.name)
		}
	}

	var cmd tea.Cmd
	m.project.viewport, cmd = m.project.viewport.Update(msg)
	return m, cmd
}

func (m appModel) updateRotate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.rotate.submitting {
				return m, nil
			}
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.rotate.focus = focusNext(m.rotate.inputs, m.rotate.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.rotate.focus = focusNext(m.rotate.inputs, m.rotate.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.rotate.submitting {
				return m, nil
			}
			newPassphrase := m.rotate.inputs[0].Value()
			switch {
			case strings.TrimSpace(newPassphrase) == "":
				m.rotate.errMsg = "New passphrase is required"
				return m, nil
			case newPassphrase != m.rotate.inputs[1].Value():
				m.rotate.errMsg = "Passphrases do not match"
				return m, nil
			case newPassphrase == m.secret:
				m.rotate.errMsg = "New passphrase equals the current one"
				return m, nil
			}
			m.rotate.errMsg = ""
			m.rotate.submitting = true
			return m, m.cmdRotate(m.secret, newPassphrase)
		}
	}

	var cmd tea.Cmd
	m.rotate.inputs[m.rotate.focus], cmd = m.rotate.inputs[m.rotate.focus].Update(msg)
	return m, cmd
}

// handleRotated switches to the new passphrase only when every project was
// rotated. After a partial commit the check item still holds the old one.
func (m appModel) handleRotated(msg rotatedMsg) (tea.Model, tea.Cmd) {
	m.rotate.submitting = false

	switch {
	case errors.Is(msg.err, adapter.ErrRotationIncomplete):
		m.currentScreen = screenList
		m.showErrorf(fmt.Sprintf(
			"Rotation stopped at %q: %d rotated, %d still under the old passphrase. Run it again with the same passphrases to finish.",
			msg.report.Failed, len(msg.report.Rotated), len(msg.report.Pending)+1))
		return m, m.cmdLoadProjects()
	case msg.err != nil:
		return m.handleSessionError(msg.err, func(mm *appModel, text string) { mm.rotate.errMsg = text })
	}

	m.secret = msg.newPassphrase
	m.rotate = newRotateModel()
	m.currentScreen = screenList
	m.status = fmt.Sprintf("Passphrase changed: %d projects re-encrypted", len(msg.report.Rotated))
	return m, tea.Batch(m.cmdLoadProjects(), m.cmdClearStatus())
}
