// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://a", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Settings(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		timeout     time.Duration
		wantBaseURL string
		wantTimeout time.Duration
	}{
		{name: "trailing slash", baseURL: "http://localhost:8080/", timeout: 5 * time.Second, wantBaseURL: "http://localhost:8080", wantTimeout: 5 * time.Second},
		{name: "no timeout", baseURL: "https://api.github.com", wantBaseURL: "https://api.github.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewHTTPClient(tt.baseURL, tt.timeout)

			assert.Equal(t, tt.wantBaseURL, client.BaseURL)
			assert.Equal(t, tt.wantTimeout, client.GetClient().Timeout)
		})
	}
}

func TestHTTPClient_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = WriteJSON(w, map[string]string{"path": r.URL.Path, "agent": r.UserAgent()}, http.StatusOK)
	}))
	defer srv.Close()

	var out map[string]string
	client := NewHTTPClient(srv.URL+"/", time.Second)

	resp, err := client.R().SetResult(&out).Get("/health")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "/health", out["path"])
	assert.Equal(t, "envault", out["agent"])
}
