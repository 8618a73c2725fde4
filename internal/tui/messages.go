// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-env-vault/models"
)

type versionMsg struct {
	version string
	err     error
}

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type passphraseStateMsg struct {
	exists bool
	err    error
}

type passphraseDoneMsg struct {
	passphrase string
	err        error
}

type projectsLoadedMsg struct {
	projects []models.ProjectSummary
	err      error
}

type projectLoadedMsg struct {
	name string
	data string
	err  error
}

type projectDeletedMsg struct {
	name string
	err  error
}

type rotatedMsg struct {
	newPassphrase string
	report        models.RotationReport
	err           error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
