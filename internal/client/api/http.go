package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/daybookapp/daybook/internal/client/models"
	"github.com/daybookapp/daybook/internal/common"
)

// HTTPClient talks JSON over HTTP to the Daybook server.
type HTTPClient struct {
	baseURL      string
	http         *http.Client
	accessToken  string
	refreshToken string
	// onTokens, when set, is called after every successful login/refresh so
	// the caller can persist the rotated pair.
	onTokens func(access, refresh string)
}

// NewHTTPClient constructs a client for baseURL, e.g. "http://127.0.0.1:8080".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetTokens seeds a previously persisted token pair (restored session).
func (c *HTTPClient) SetTokens(access, refresh string) {
	c.accessToken = access
	c.refreshToken = refresh
}

// OnTokens registers a callback invoked whenever the token pair changes.
func (c *HTTPClient) OnTokens(fn func(access, refresh string)) {
	c.onTokens = fn
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// errorEnvelope mirrors the server's error payload.
type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	err := c.doOnce(ctx, method, path, query, in, out, c.accessToken)
	if err == nil || !isUnauthorized(err) || c.refreshToken == "" {
		return err
	}

	// One refresh attempt, then retry the original call with the new token.
	if rerr := c.refresh(ctx); rerr != nil {
		return err
	}
	return c.doOnce(ctx, method, path, query, in, out, c.accessToken)
}

func (c *HTTPClient) doOnce(ctx context.Context, method, path string, query url.Values, in, out any, token string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var env errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		return statusToError(resp.StatusCode, env.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func isUnauthorized(err error) bool {
	var se *StatusError
	if ok := asStatusError(err, &se); !ok {
		return false
	}
	return se.Code == http.StatusUnauthorized
}

func (c *HTTPClient) refresh(ctx context.Context) error {
	var out struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	in := map[string]string{"refreshToken": c.refreshToken}
	if err := c.doOnce(ctx, http.MethodPost, "/api/v1/auth/refresh", nil, in, &out, ""); err != nil {
		return err
	}
	c.accessToken = out.AccessToken
	c.refreshToken = out.RefreshToken
	if c.onTokens != nil {
		c.onTokens(c.accessToken, c.refreshToken)
	}
	return nil
}

// Register creates a new account.
func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	in := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, in, nil)
}

// Login authenticates and stores the issued token pair on the client.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.SessionInfo, error) {
	in := map[string]string{"username": username, "password": password}
	var out models.SessionInfo
	if err := c.doOnce(ctx, http.MethodPost, "/api/v1/auth/login", nil, in, &out, ""); err != nil {
		return nil, err
	}
	c.accessToken = out.AccessToken
	c.refreshToken = out.RefreshToken
	if c.onTokens != nil {
		c.onTokens(c.accessToken, c.refreshToken)
	}
	return &out, nil
}

// Logout revokes the refresh token server-side and drops the local pair.
func (c *HTTPClient) Logout(ctx context.Context) error {
	in := map[string]string{"refreshToken": c.refreshToken}
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, in, nil)
	c.accessToken = ""
	c.refreshToken = ""
	return err
}

// Ping checks server reachability.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doOnce(ctx, http.MethodGet, "/health", nil, nil, nil, "")
}

// SaveEntry persists the draft; the server upserts by (user, date).
func (c *HTTPClient) SaveEntry(ctx context.Context, draft *models.Draft) (*models.Entry, error) {
	var out models.Entry
	if err := c.do(ctx, http.MethodPost, "/api/v1/entries", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEntries fetches entries matching opts, newest first.
func (c *HTTPClient) ListEntries(ctx context.Context, opts ListOptions) ([]models.Entry, error) {
	q := url.Values{}
	if opts.StartDate != "" {
		q.Set("startDate", opts.StartDate)
	}
	if opts.EndDate != "" {
		q.Set("endDate", opts.EndDate)
	}
	if opts.SearchQuery != "" {
		q.Set("search", opts.SearchQuery)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Partner {
		q.Set("partner", "true")
	}
	var out []models.Entry
	if err := c.do(ctx, http.MethodGet, "/api/v1/entries", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEntry removes the entry for a calendar day.
func (c *HTTPClient) DeleteEntry(ctx context.Context, date string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/entries/"+url.PathEscape(date), nil, nil, nil)
}

// GetSettings fetches the stored personalization settings.
func (c *HTTPClient) GetSettings(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodGet, "/api/v1/settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PutSettings persists the full personalization settings.
func (c *HTTPClient) PutSettings(ctx context.Context, s *models.Settings) error {
	return c.do(ctx, http.MethodPut, "/api/v1/settings", nil, s, nil)
}

// PresignPut asks the server for an upload slot in object storage.
func (c *HTTPClient) PresignPut(ctx context.Context, contentType string) (string, string, error) {
	in := map[string]string{"contentType": contentType}
	var out struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/uploads/presign-put", nil, in, &out); err != nil {
		return "", "", err
	}
	return out.Key, out.URL, nil
}

// PresignGet asks the server for a download URL for a stored object.
func (c *HTTPClient) PresignGet(ctx context.Context, key string) (string, error) {
	q := url.Values{"key": {key}}
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/uploads/presign-get", q, nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// CreatePairInvite generates a pairing code for the partner to redeem.
func (c *HTTPClient) CreatePairInvite(ctx context.Context) (string, error) {
	var out struct {
		Code string `json:"code"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/pairing/invite", nil, nil, &out); err != nil {
		return "", err
	}
	return out.Code, nil
}

// AcceptPairInvite redeems a pairing code issued by another user.
func (c *HTTPClient) AcceptPairInvite(ctx context.Context, code string) error {
	in := map[string]string{"code": code}
	return c.do(ctx, http.MethodPost, "/api/v1/pairing/accept", nil, in, nil)
}

// RemovePartner dissolves the pairing for both sides.
func (c *HTTPClient) RemovePartner(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/pairing", nil, nil, nil)
}

var _ Client = (*HTTPClient)(nil)

func statusToError(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}
	switch code {
	case http.StatusNotFound:
		return &StatusError{Code: code, Err: common.ErrorNotFound, Message: msg}
	case http.StatusUnauthorized:
		return &StatusError{Code: code, Err: common.ErrorUnauthorized, Message: msg}
	case http.StatusConflict:
		return &StatusError{Code: code, Err: common.ErrorConflict, Message: msg}
	default:
		return &StatusError{Code: code, Message: msg}
	}
}
