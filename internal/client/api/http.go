package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/google/uuid"

	"blogctl/internal/client/models"
)

// HTTPClient is the Client implementation over the REST backend. It owns a
// cookie jar so the session cookie set by /auth/login is attached to every
// subsequent request, the same way a browser would.
type HTTPClient struct {
	baseURL *url.URL
	hc      *http.Client
}

// NewHTTPClient builds a client for the given base URL. A zero timeout leaves
// the transport default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &HTTPClient{
		baseURL: u,
		hc:      &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// serverError mirrors the backend's JSON error body: {"message": "..."}.
type serverError struct {
	Message string `json:"message"`
}

// do performs one JSON round trip. body and out may be nil. Transport
// failures are wrapped in ErrUnavailable; HTTP rejections become *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var se serverError
		if err := json.NewDecoder(resp.Body).Decode(&se); err == nil {
			apiErr.Message = se.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, params RegisterParams) error {
	return c.do(ctx, http.MethodPost, "/auth/register", params, nil)
}

func (c *HTTPClient) Login(ctx context.Context, params LoginParams) error {
	return c.do(ctx, http.MethodPost, "/auth/login", params, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", struct{}{}, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, params PostParams) (*models.Post, error) {
	var p models.Post
	if err := c.do(ctx, http.MethodPost, "/posts", params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdatePost(ctx context.Context, id string, params PostParams) (*models.Post, error) {
	var p models.Post
	if err := c.do(ctx, http.MethodPut, "/posts/"+id, params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil)
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// Cookies returns the session cookies currently held for the base URL,
// so a caller can persist them between runs.
func (c *HTTPClient) Cookies() []*http.Cookie {
	return c.hc.Jar.Cookies(c.baseURL)
}

// SetCookies seeds the jar with previously persisted session cookies.
func (c *HTTPClient) SetCookies(cookies []*http.Cookie) {
	c.hc.Jar.SetCookies(c.baseURL, cookies)
}
