// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/utils"
	"github.com/MKhiriev/go-env-vault/models"
	"github.com/go-resty/resty/v2"
)

const (
	contentsURL = "/repos/{owner}/{repo}/contents/{path}"
	blobURL     = "/repos/{owner}/{repo}/git/blobs/{sha}"
)

// githubContent is an entry of the GitHub contents API.
type githubContent struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Size     int64  `json:"size"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	HTMLURL  string `json:"html_url"`
}

type githubBlob struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type githubWriteRequest struct {
	Message string `json:"message"`
	Content string `json:"content,omitempty"`
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

type githubWriteResponse struct {
	Content githubContent `json:"content"`
}

type githubLease struct {
	Owner     string `json:"owner"`
	ExpiresAt int64  `json:"expires_at"`
}

// githubBackend stores every object as a file in a GitHub repository. Each
// write is a commit.
type githubBackend struct {
	client *utils.HTTPClient
	owner  string
	repo   string
	branch string
	dir    string
	now    func() time.Time
	logger *logger.Logger
}

// NewGitHubBackend constructs a [Backend] on top of the GitHub contents API.
func NewGitHubBackend(cfg config.Storage, log *logger.Logger) (Backend, error) {
	owner, repo, ok := strings.Cut(cfg.GitHub.Repo, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("%w: github repository must be owner/name, got %q", config.ErrInvalidStorageConfigs, cfg.GitHub.Repo)
	}

	client := utils.NewHTTPClient(cfg.GitHub.APIURL, cfg.GitHub.Timeout)
	client.SetAuthToken(cfg.GitHub.Token).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", "2022-11-28").
		SetPathParams(map[string]string{
			"owner": owner,
			"repo":  repo,
		})

	log.Debug().Str("repo", cfg.GitHub.Repo).Str("dir", cfg.Dir).Msg("creating github backend")

	return &githubBackend{
		client: client,
		owner:  owner,
		repo:   repo,
		branch: cfg.GitHub.Branch,
		dir:    cfg.Dir,
		now:    time.Now,
		logger: log,
	}, nil
}

func (g *githubBackend) Put(ctx context.Context, name string, data []byte) (string, error) {
	p := ObjectPath(g.dir, name)

	current, err := g.stat(ctx, p)
	if err != nil && !errors.Is(err, ErrObjectNotFound) {
		return "", err
	}

	message := "Add " + ObjectFile(name)
	if current.SHA != "" {
		message = "Update " + ObjectFile(name)
	}

	return g.write(ctx, p, githubWriteRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(data),
		SHA:     current.SHA,
		Branch:  g.branch,
	})
}

func (g *githubBackend) Get(ctx context.Context, name string) (models.Object, error) {
	p := ObjectPath(g.dir, name)

	entry, err := g.stat(ctx, p)
	if err != nil {
		return models.Object{}, err
	}

	data, err := g.content(ctx, entry)
	if err != nil {
		return models.Object{}, err
	}

	return models.Object{
		ObjectInfo: models.ObjectInfo{
			Name:     name,
			Size:     entry.Size,
			Revision: entry.SHA,
			URL:      entry.HTMLURL,
		},
		Data: data,
	}, nil
}

func (g *githubBackend) Delete(ctx context.Context, name string) (bool, error) {
	p := ObjectPath(g.dir, name)

	entry, err := g.stat(ctx, p)
	if errors.Is(err, ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = g.remove(ctx, p, entry.SHA, "Delete "+ObjectFile(name)); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (g *githubBackend) List(ctx context.Context) ([]models.ObjectInfo, error) {
	var entries []githubContent

	resp, err := g.request(ctx).
		SetRawPathParam("path", escapePath(cleanDir(g.dir))).
		SetResult(&entries).
		Get(contentsURL)
	if err = githubError("list", g.dir, resp, err); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return []models.ObjectInfo{}, nil
		}
		return nil, err
	}

	infos := make([]models.ObjectInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "file" {
			continue
		}
		name, ok := ItemName(entry.Name)
		if !ok {
			continue
		}
		infos = append(infos, models.ObjectInfo{
			Name:     name,
			Size:     entry.Size,
			Revision: entry.SHA,
			URL:      entry.HTMLURL,
		})
	}

	return infos, nil
}

// AcquireLease writes the lease file. An expired lease of another owner is
// taken over; the SHA precondition of the write rejects concurrent takers.
func (g *githubBackend) AcquireLease(ctx context.Context, owner string, ttl time.Duration) error {
	p := LeasePath(g.dir)

	current, sha, err := g.readLease(ctx, p)
	if err != nil {
		return err
	}
	if sha != "" && current.Owner != owner && g.now().Unix() < current.ExpiresAt {
		return ErrLeaseHeld
	}

	body, err := json.Marshal(githubLease{Owner: owner, ExpiresAt: g.now().Add(ttl).Unix()})
	if err != nil {
		return fmt.Errorf("encode lease: %w", err)
	}

	_, err = g.write(ctx, p, githubWriteRequest{
		Message: "Acquire rotation lease",
		Content: base64.StdEncoding.EncodeToString(body),
		SHA:     sha,
		Branch:  g.branch,
	})
	if errors.Is(err, ErrRevisionConflict) {
		return ErrLeaseHeld
	}

	return err
}

func (g *githubBackend) ReleaseLease(ctx context.Context, owner string) error {
	p := LeasePath(g.dir)

	current, sha, err := g.readLease(ctx, p)
	if err != nil {
		return err
	}
	if sha == "" || current.Owner != owner {
		return nil
	}

	err = g.remove(ctx, p, sha, "Release rotation lease")
	if errors.Is(err, ErrObjectNotFound) || errors.Is(err, ErrRevisionConflict) {
		return nil
	}

	return err
}

func (g *githubBackend) Close() error {
	return nil
}

func (g *githubBackend) request(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if g.branch != "" {
		req.SetQueryParam("ref", g.branch)
	}
	return req
}

// stat fetches the contents entry of a single file.
func (g *githubBackend) stat(ctx context.Context, p string) (githubContent, error) {
	var entry githubContent

	resp, err := g.request(ctx).
		SetRawPathParam("path", escapePath(p)).
		SetResult(&entry).
		Get(contentsURL)
	if err = githubError("get", p, resp, err); err != nil {
		return githubContent{}, err
	}
	if entry.Type != "file" {
		return githubContent{}, fmt.Errorf("%s is a %s: %w", p, entry.Type, ErrObjectNotFound)
	}

	return entry, nil
}

// content returns the decoded file bytes. Files above the contents API size
// limit come without inline content and are read through the blobs API.
func (g *githubBackend) content(ctx context.Context, entry githubContent) ([]byte, error) {
	content, encoding := entry.Content, entry.Encoding

	if encoding != "base64" {
		var blob githubBlob
		resp, err := g.client.R().
			SetContext(ctx).
			SetPathParam("sha", entry.SHA).
			SetResult(&blob).
			Get(blobURL)
		if err = githubError("get blob", entry.Path, resp, err); err != nil {
			return nil, err
		}
		content, encoding = blob.Content, blob.Encoding
	}

	if encoding != "base64" {
		return nil, fmt.Errorf("%s: unsupported content encoding %q", entry.Path, encoding)
	}

	data, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("%s: decode content: %w", entry.Path, err)
	}

	return data, nil
}

func (g *githubBackend) write(ctx context.Context, p string, body githubWriteRequest) (string, error) {
	var result githubWriteResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetRawPathParam("path", escapePath(p)).
		SetBody(body).
		SetResult(&result).
		Put(contentsURL)
	if err = githubError("put", p, resp, err); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Debug().Str("path", p).Str("message", body.Message).Msg("committed object")

	return result.Content.SHA, nil
}

func (g *githubBackend) remove(ctx context.Context, p, sha, message string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetRawPathParam("path", escapePath(p)).
		SetBody(githubWriteRequest{Message: message, SHA: sha, Branch: g.branch}).
		Delete(contentsURL)

	return githubError("delete", p, resp, err)
}

// readLease returns the current lease and its SHA; an empty SHA means no
// lease file exists.
func (g *githubBackend) readLease(ctx context.Context, p string) (githubLease, string, error) {
	entry, err := g.stat(ctx, p)
	if errors.Is(err, ErrObjectNotFound) {
		return githubLease{}, "", nil
	}
	if err != nil {
		return githubLease{}, "", err
	}

	data, err := g.content(ctx, entry)
	if err != nil {
		return githubLease{}, "", err
	}

	var lease githubLease
	if err = json.Unmarshal(data, &lease); err != nil {
		// an unreadable lease is treated as expired
		return githubLease{}, entry.SHA, nil
	}

	return lease, entry.SHA, nil
}

// githubError maps a transport error or a non-2xx response to the store
// error taxonomy.
func githubError(op, p string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("github %s %s: %w: %w", op, p, ErrStoreUnavailable, err)
	}

	code := resp.StatusCode()
	switch {
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("github %s %s: %w", op, p, ErrObjectNotFound)
	case code == http.StatusConflict, code == http.StatusUnprocessableEntity:
		return fmt.Errorf("github %s %s: %w", op, p, ErrRevisionConflict)
	case code == http.StatusForbidden && resp.Header().Get("X-RateLimit-Remaining") == "0":
		return fmt.Errorf("github %s %s: rate limited: %w", op, p, ErrStoreUnavailable)
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("github %s %s: %w", op, p, ErrStoreAccessDenied)
	case code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		return fmt.Errorf("github %s %s: status %d: %w", op, p, code, ErrStoreUnavailable)
	default:
		return fmt.Errorf("github %s %s: unexpected status %d", op, p, code)
	}
}

// escapePath escapes every segment of a slash separated path.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
