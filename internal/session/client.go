package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrUnauthorized is returned when a request is still rejected after its
	// one retry, or cannot be replayed at all.
	ErrUnauthorized = errors.New("session: unauthorized")
	// ErrRefreshFailed wraps every failed refresh exchange.
	ErrRefreshFailed = errors.New("session: refresh failed")
)

const (
	UserRefreshPath    = "/api/auth/refresh"
	LibraryRefreshPath = "/api/library/auth/refresh"
)

// DefaultExemptPaths never trigger a refresh: the refresh endpoints
// themselves and the identity checks a client probes with on start.
var DefaultExemptPaths = []string{
	UserRefreshPath,
	"/api/auth/me",
	LibraryRefreshPath,
	"/api/library/auth/me",
}

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

type retriedKey struct{}

func markRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, retriedKey{}, true)
}

func isRetried(ctx context.Context) bool {
	v, _ := ctx.Value(retriedKey{}).(bool)
	return v
}

type Option func(*Client)

// WithHTTPClient replaces the transport client. Its Jar is replaced by the
// session jar unless it already has one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRefreshPath selects the refresh endpoint, e.g. LibraryRefreshPath.
func WithRefreshPath(path string) Option {
	return func(c *Client) { c.refreshPath = path }
}

// WithRefreshFunc overrides the default cookie refresh exchange.
func WithRefreshFunc(fn RefreshFunc) Option {
	return func(c *Client) { c.refreshFn = fn }
}

func WithExemptPaths(paths ...string) Option {
	return func(c *Client) {
		for _, p := range paths {
			c.exempt[p] = struct{}{}
		}
	}
}

// Client is an HTTP client bound to one cookie session.
type Client struct {
	base        *url.URL
	http        *http.Client
	coord       *Coordinator
	refreshPath string
	refreshFn   RefreshFunc
	exempt      map[string]struct{}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("session: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("session: base url %q needs a scheme and host", baseURL)
	}

	c := &Client{
		base:        base,
		http:        &http.Client{},
		refreshPath: UserRefreshPath,
		exempt:      make(map[string]struct{}, len(DefaultExemptPaths)),
	}
	for _, p := range DefaultExemptPaths {
		c.exempt[p] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}

	refresh := c.refreshFn
	if refresh == nil {
		refresh = c.refreshCookie
	}
	c.coord = NewCoordinator(refresh)

	return c, nil
}

func (c *Client) Coordinator() *Coordinator { return c.coord }

// URL resolves path against the base URL.
func (c *Client) URL(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Do sends req. A 401 on a non-exempt path waits for a coordinated refresh
// and replays the request once. A replay that is rejected again fails with
// ErrUnauthorized; a failed refresh returns the refresh error joined with the
// original rejection.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || c.isExempt(req.URL) {
		return resp, nil
	}

	rejected := readAPIError(resp)

	if isRetried(req.Context()) {
		return nil, errors.Join(ErrUnauthorized, rejected)
	}

	retry, err := replayable(req)
	if err != nil {
		return nil, errors.Join(ErrUnauthorized, rejected, err)
	}

	if _, err := c.coord.Await(req.Context()); err != nil {
		return nil, errors.Join(err, rejected)
	}

	return c.Do(retry)
}

// isExempt matches u against the exempt paths relative to the base URL.
func (c *Client) isExempt(u *url.URL) bool {
	path := u.Path
	if c.base.Path != "" {
		path = strings.TrimPrefix(path, c.base.Path)
	}
	_, ok := c.exempt[path]
	return ok
}

// replayable clones req with the retried mark set before it is ever sent.
// The jar wrote its cookies into req.Header on the first send; they are
// dropped so the retry carries only what the jar holds after the refresh.
func replayable(req *http.Request) (*http.Request, error) {
	retry := req.Clone(markRetried(req.Context()))
	retry.Header.Del("Cookie")
	if req.Body == nil || req.Body == http.NoBody {
		return retry, nil
	}
	if req.GetBody == nil {
		return nil, errors.New("session: request body cannot be replayed")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	retry.Body = body
	return retry, nil
}

// refreshCookie posts to the refresh endpoint; the jar stores the new
// accessToken cookie.
func (c *Client) refreshCookie(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(c.refreshPath, nil), http.NoBody)
	if err != nil {
		return errors.Join(ErrRefreshFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRefreshFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Join(ErrRefreshFailed, readAPIError(resp))
	}
	drain(resp)
	return nil
}

// GetJSON issues a GET and decodes the data field of the success envelope
// into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.sendJSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) PatchJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, nil, in, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path, query), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope struct {
		Success bool                `json:"success"`
		Data    jsoniter.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("session: decode %s %s: %w", method, path, err)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("session: decode %s %s: %w", method, path, err)
	}
	return nil
}

// readAPIError consumes and closes resp.Body.
func readAPIError(resp *http.Response) *APIError {
	defer resp.Body.Close()

	apiErr := &APIError{StatusCode: resp.StatusCode}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || json.Unmarshal(b, apiErr) != nil {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
