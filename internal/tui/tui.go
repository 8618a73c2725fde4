// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal client of the vault: sign in, unlock the
// vault with its passphrase, browse projects, read and copy their .env
// content, delete projects and change the passphrase.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-env-vault/internal/adapter"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: log}
}

// Run shows the program until the user quits. Quitting is not an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.adapter, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}

	return nil
}
