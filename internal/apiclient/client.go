// Package apiclient is the single point of outbound HTTP traffic. It builds
// absolute URLs from the configured base, attaches the bearer token when a
// session holds one, and normalizes every failure into the package error
// taxonomy before it propagates.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/buildmaintain/bm/internal/config"
)

// TokenSource supplies the current bearer token. It returns ok=false when
// no session is held; the request then goes out unauthenticated.
type TokenSource func() (token string, ok bool)

// Client issues HTTP requests against the API. It does not retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	limiter    *rate.Limiter
	log        *logrus.Logger

	// AuthFailed is invoked once per 401 response so the session store can
	// clear itself. Other in-flight requests are allowed to fail on their
	// own without cascading.
	AuthFailed func()
}

// New constructs a client from configuration. tokens may be nil for
// pre-login traffic.
func New(cfg config.Config, tokens TokenSource) *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if cfg.Debug {
		log.SetOutput(logrus.StandardLogger().Out)
		log.SetLevel(logrus.DebugLevel)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		tokens:     tokens,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond)+1),
		log:        log,
	}
}

// SetTokenSource installs the session's token provider after construction.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// JSON performs a request with an optional JSON body and decodes the JSON
// response into out. A nil out discards the body.
func (c *Client) JSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = buf
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// Upload sends a multipart/form-data request with one file part plus the
// given fields, and decodes the JSON response into out.
func (c *Client) Upload(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	resp, err := c.do(ctx, method, path, w.FormDataContentType(), buf)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// Download fetches a binary payload. It returns the raw bytes and the
// filename suggested by Content-Disposition, if any.
func (c *Client) Download(ctx context.Context, path string) ([]byte, string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &NetworkError{URL: c.baseURL + path, Err: err}
	}

	name := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			name = params["filename"]
		}
	}
	return data, name, nil
}

// do runs one request and maps transport failures and non-2xx statuses into
// the package error taxonomy. Callers own the response body on success.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token, ok := c.tokens(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Debug("request failed")
		return nil, &NetworkError{URL: url, Err: err}
	}

	c.log.WithFields(logrus.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Debug("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		herr := &HTTPError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
		if resp.StatusCode == http.StatusUnauthorized && c.AuthFailed != nil {
			c.AuthFailed()
		}
		return nil, herr
	}

	return resp, nil
}

// serverMessage pulls the message out of an error envelope body, falling
// back to the raw text.
func serverMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(data))
}
