package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vanishnote/internal/app/client/config"
	noteAPI "vanishnote/internal/app/server/api/http/note"
	trackAPI "vanishnote/internal/app/server/api/http/track"

	"golang.org/x/exp/slog"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "VanishNote-Client/1.0",
	}, nil
}

// CreateParams mirrors the create request body.
type CreateParams struct {
	Text           string `json:"text"`
	Type           string `json:"type,omitempty"`
	ExpiryMode     string `json:"expiryMode,omitempty"`
	Password       string `json:"password,omitempty"`
	DecoyPassword  string `json:"decoyPassword,omitempty"`
	DecoyMessage   string `json:"decoyMessage,omitempty"`
	AllowedCountry string `json:"allowedCountry,omitempty"`
}

// CreateNote stores a new note and returns its identifiers.
func (a *App) CreateNote(ctx context.Context, params CreateParams) (*noteAPI.CreateResponse, error) {
	var resp noteAPI.CreateResponse
	err := a.http.postJSON(ctx, "/api/notes", params, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReadNote attempts to read a note, optionally with a password.
func (a *App) ReadNote(ctx context.Context, noteID, password string) (*noteAPI.ReadResponse, error) {
	body := struct {
		Password string `json:"password,omitempty"`
	}{Password: password}

	var resp noteAPI.ReadResponse
	err := a.http.postJSON(ctx, "/api/notes/"+noteID+"/read", body, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// TrackStatus fetches the tracking record for a note.
func (a *App) TrackStatus(ctx context.Context, trackingID string) (*trackAPI.StatusResponse, error) {
	var resp trackAPI.StatusResponse
	err := a.http.getJSON(ctx, "/api/track/"+trackingID, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *httpClient) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return h.do(req, out)
}

func (h *httpClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return h.do(req, out)
}

func (h *httpClient) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		// huma validation and server errors arrive as problem+json
		var problem struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &problem); err == nil && problem.Detail != "" {
			return fmt.Errorf("server rejected request: %s", problem.Detail)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	h.log.Debug("request completed", "path", req.URL.Path, "status", resp.StatusCode)
	return nil
}
