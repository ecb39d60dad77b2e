// Package api is the HTTP client for the Beauty Ease backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/beautyease/beautyease/internal/wire"
)

// ErrUnavailable indicates the server could not be reached at all, as
// opposed to the server rejecting the request.
var ErrUnavailable = errors.New("server unavailable")

// Error is a rejection from the backend. Message is the human-readable
// text the server attached; views display it inline.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Client is the remote API surface the session and views depend on.
// HTTPClient is the production implementation; tests substitute fakes.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, req wire.RegisterRequest) (*wire.TokenResponse, error)
	Login(ctx context.Context, req wire.LoginRequest) (*wire.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*wire.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, accessToken string) (*wire.Profile, error)
	UpdateProfile(ctx context.Context, accessToken string, patch wire.ProfilePatch) (*wire.Profile, error)
	SaveScan(ctx context.Context, accessToken string, req wire.SaveScanRequest) (*wire.Scan, error)
	ListScans(ctx context.Context, accessToken string, limit int) ([]wire.Scan, error)
	UploadURL(ctx context.Context, accessToken string) (*wire.UploadURLResponse, error)
	UploadStill(ctx context.Context, uploadURL string, mime string, data []byte) error
	DownloadURL(ctx context.Context, accessToken string, key string) (string, error)
}

// HTTPClient talks JSON over HTTP to the backend's /api/v1 surface.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://127.0.0.1:8080".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// do sends one request and decodes the response into out (unless out is
// nil). Transport failures map to ErrUnavailable; non-2xx responses map to
// *Error carrying the server's message.
func (c *HTTPClient) do(ctx context.Context, method, path, accessToken string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er wire.ErrorResponse
		msg := resp.Status
		if decodeErr := json.NewDecoder(resp.Body).Decode(&er); decodeErr == nil && er.Error != "" {
			msg = er.Error
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *HTTPClient) Register(ctx context.Context, req wire.RegisterRequest) (*wire.TokenResponse, error) {
	var out wire.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, req wire.LoginRequest) (*wire.TokenResponse, error) {
	var out wire.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*wire.TokenResponse, error) {
	var out wire.TokenResponse
	req := wire.RefreshRequest{RefreshToken: refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	req := wire.LogoutRequest{RefreshToken: refreshToken}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/logout", "", req, nil)
}

func (c *HTTPClient) GetProfile(ctx context.Context, accessToken string) (*wire.Profile, error) {
	var out wire.Profile
	if err := c.do(ctx, http.MethodGet, "/api/v1/profile", accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, accessToken string, patch wire.ProfilePatch) (*wire.Profile, error) {
	var out wire.Profile
	if err := c.do(ctx, http.MethodPatch, "/api/v1/profile", accessToken, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SaveScan(ctx context.Context, accessToken string, req wire.SaveScanRequest) (*wire.Scan, error) {
	var out wire.Scan
	if err := c.do(ctx, http.MethodPost, "/api/v1/scans", accessToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListScans(ctx context.Context, accessToken string, limit int) ([]wire.Scan, error) {
	path := "/api/v1/scans"
	if limit > 0 {
		path += "?limit=" + url.QueryEscape(strconv.Itoa(limit))
	}
	var out []wire.Scan
	if err := c.do(ctx, http.MethodGet, path, accessToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UploadURL(ctx context.Context, accessToken string) (*wire.UploadURLResponse, error) {
	var out wire.UploadURLResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/media/upload-url", accessToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadURL exchanges a storage key for a presigned GET URL.
func (c *HTTPClient) DownloadURL(ctx context.Context, accessToken string, key string) (string, error) {
	var out wire.DownloadURLResponse
	path := "/api/v1/media/download-url?key=" + url.QueryEscape(key)
	if err := c.do(ctx, http.MethodGet, path, accessToken, nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// UploadStill PUTs the encoded still directly to the presigned storage URL.
func (c *HTTPClient) UploadStill(ctx context.Context, uploadURL string, mime string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mime)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: "upload failed: " + resp.Status}
	}
	return nil
}
