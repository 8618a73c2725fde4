// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-env-vault/models"
)

// parseForm fills r.PostForm from a multipart or urlencoded body. Unlike
// [http.Request.ParseForm] it also reads the body of DELETE requests, which
// the web UI sends as forms.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	switch mediaType {
	case "multipart/form-data":
		if err = r.ParseMultipartForm(h.multipartMemory()); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
	case "application/x-www-form-urlencoded":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		r.PostForm = values
	default:
		return fmt.Errorf("%w: unsupported content type %q", ErrInvalidForm, mediaType)
	}

	return nil
}

func (h *Handler) multipartMemory() int64 {
	if h.maxUploadSize > 0 {
		return h.maxUploadSize
	}
	return 32 << 20
}

// downloadRequestFromForm reads the passphrase and project_name fields.
func downloadRequestFromForm(r *http.Request) models.DownloadRequest {
	return models.DownloadRequest{
		Passphrase:  r.PostForm.Get("passphrase"),
		ProjectName: r.PostForm.Get("project_name"),
	}
}

// readFormFile returns the content of the multipart "file" field.
func readFormFile(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingFile, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return data, nil
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}

// writeAttachment sends data as the "<project>.env" download.
func writeAttachment(w http.ResponseWriter, projectName string, data []byte) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": projectName + ".env",
	}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
