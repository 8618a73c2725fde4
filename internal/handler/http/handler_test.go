// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/service"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// test server over the memory backend
// ─────────────────────────────────────────────

const testAdminPassword = "admin-secret"

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			AdminPassword: testAdminPassword,
			TokenSignKey:  "sign-key",
			TokenIssuer:   "go-env-vault",
			TokenDuration: 15 * time.Minute,
			Version:       "1.2.3",
		},
		Server: config.Server{
			AllowedOrigins: []string{"http://localhost:3000"},
			RequestTimeout: time.Minute,
			MaxUploadSize:  1 << 20,
		},
		Vault: config.Vault{RotationLeaseTTL: time.Minute, StagingWorkers: 2},
	}
}

type testServer struct {
	*httptest.Server
	t      *testing.T
	client *http.Client
}

func newTestServer(t *testing.T, backend store.Backend) *testServer {
	t.Helper()

	if backend == nil {
		backend = store.NewMemoryBackend("encrypted_files", logger.Nop())
	}

	cfg := testConfig()
	services, err := service.NewServices(backend, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testServer{
		Server: srv,
		t:      t,
		client: &http.Client{Jar: jar, Timeout: 30 * time.Second},
	}
}

func (s *testServer) do(req *http.Request) *http.Response {
	s.t.Helper()
	resp, err := s.client.Do(req)
	require.NoError(s.t, err)
	s.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *testServer) get(path string) *http.Response {
	s.t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.URL+path, nil)
	require.NoError(s.t, err)
	return s.do(req)
}

func (s *testServer) form(method, path string, values url.Values) *http.Response {
	s.t.Helper()
	req, err := http.NewRequest(method, s.URL+path, strings.NewReader(values.Encode()))
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *testServer) postJSON(path string, body any) *http.Response {
	s.t.Helper()
	data, err := json.Marshal(body)
	require.NoError(s.t, err)
	req, err := http.NewRequest(http.MethodPost, s.URL+path, bytes.NewReader(data))
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func (s *testServer) postFile(path string, fields map[string]string, content string) *http.Response {
	s.t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(s.t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", ".env")
	require.NoError(s.t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, s.URL+path, &body)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.do(req)
}

func (s *testServer) login() {
	s.t.Helper()
	resp := s.form(http.MethodPost, "/login", url.Values{"password": {testAdminPassword}})
	require.Equal(s.t, http.StatusOK, resp.StatusCode)
}

// setup logs in and creates the passphrase.
func (s *testServer) setup(passphrase string) {
	s.t.Helper()
	s.login()
	resp := s.form(http.MethodPost, "/create-passphrase", url.Values{"passphrase": {passphrase}})
	require.Equal(s.t, http.StatusCreated, resp.StatusCode)
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
