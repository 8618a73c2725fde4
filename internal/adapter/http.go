// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/utils"
	"github.com/MKhiriev/go-env-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of
// [ServerAdapter]. It normalises the base URL from cfg.ServerURL and gives
// the client its own cookie jar for the session.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetCookieJar(jar)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Login(ctx context.Context, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"password": password}).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) PassphraseExists(ctx context.Context) (bool, error) {
	var result models.ExistsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/passphrase-exists")
	if err != nil {
		return false, fmt.Errorf("passphrase exists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Exists, nil
}

func (h *httpServerAdapter) CreatePassphrase(ctx context.Context, passphrase string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"passphrase": passphrase}).
		Post("/create-passphrase")
	if err != nil {
		return fmt.Errorf("create passphrase request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) VerifyPassphrase(ctx context.Context, passphrase string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"passphrase": passphrase}).
		Post("/verify-passphrase")
	if err != nil {
		return fmt.Errorf("verify passphrase request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var projects []models.ProjectSummary
	if err = json.Unmarshal(resp.Body(), &projects); err != nil {
		return nil, fmt.Errorf("decode projects response: %w", err)
	}

	return projects, nil
}

func (h *httpServerAdapter) DownloadData(ctx context.Context, req models.DownloadRequest) (string, error) {
	var result models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"passphrase":   req.Passphrase,
			"project_name": req.ProjectName,
		}).
		SetResult(&result).
		Post("/download-data")
	if err != nil {
		return "", fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Data, nil
}

func (h *httpServerAdapter) UploadData(ctx context.Context, req models.UploadRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/upload-data")
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteProject(ctx context.Context, req models.DownloadRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"passphrase":   req.Passphrase,
			"project_name": req.ProjectName,
		}).
		Delete("/delete")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RotatePassphrase(ctx context.Context, req models.RotatePassphraseRequest) (models.RotationReport, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"old_passphrase": req.OldPassphrase,
			"new_passphrase": req.NewPassphrase,
		}).
		Post("/update-passphrase")
	if err != nil {
		return models.RotationReport{}, fmt.Errorf("update passphrase request: %w", err)
	}

	var result models.RotationResponse
	decodeErr := json.Unmarshal(resp.Body(), &result)

	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() == http.StatusInternalServerError && decodeErr == nil && result.Report.Failed != "" {
			h.logger.Warn().
				Strs("rotated", result.Report.Rotated).
				Str("failed", result.Report.Failed).
				Msg("passphrase rotation stopped part-way")
			return result.Report, fmt.Errorf("%w: %w", ErrRotationIncomplete, err)
		}
		return models.RotationReport{}, err
	}
	if decodeErr != nil {
		return models.RotationReport{}, fmt.Errorf("decode rotation response: %w", decodeErr)
	}

	return result.Report, nil
}
