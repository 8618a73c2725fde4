// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func TestNewApp_NilUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestAppRun(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
		wantLog string
	}{
		{name: "clean exit", wantLog: "client stopped"},
		{name: "interrupted", uiErr: context.Canceled, wantLog: "client interrupted"},
		{name: "failure", uiErr: boom, wantErr: boom, wantLog: "client stopped with error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ui := &fakeUI{err: tt.uiErr}

			app, err := NewApp(ui, &logger.Logger{Logger: zerolog.New(&buf)})
			require.NoError(t, err)

			err = app.run(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, ui.calls)
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}
