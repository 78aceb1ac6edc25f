package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"rental-front/internal/pkg/config"
)

// Client talks to the rental REST API. It is a thin transport: every
// business rule lives upstream, the client only shapes requests and
// classifies failures. All calls take the request context so teardown
// aborts in-flight fetches.
type Client struct {
	baseURL string
	hc      *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, token, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return wrapUpstreamErr(KindUnavailable, 0, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return wrapUpstreamErr(KindUnavailable, 0, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		// Canonical scheme for every authenticated upstream call.
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Teardown aborted the request; surface the cancellation, not
			// a network fault.
			return ctx.Err()
		}
		c.logger.Error("upstream request failed", "method", method, "path", path, "error", err)
		return wrapUpstreamErr(KindUnavailable, 0, "upstream unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.classifyFailure(method, path, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return wrapUpstreamErr(KindUnavailable, resp.StatusCode, "failed to decode upstream response", err)
	}
	return nil
}

func (c *Client) classifyFailure(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := extractMessage(raw)

	kind := KindRejected
	switch {
	case resp.StatusCode == http.StatusNotFound:
		kind = KindNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		kind = KindUnauthorized
	case resp.StatusCode >= 500:
		kind = KindUnavailable
	}

	logLevel := slog.LevelWarn
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	}
	c.logger.Log(context.Background(), logLevel, "upstream rejected request",
		"method", method, "path", path, "status", resp.StatusCode)

	return wrapUpstreamErr(kind, resp.StatusCode, msg, nil)
}

// extractMessage prefers a JSON {"message": ...} body, then the raw text.
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(raw))
}
