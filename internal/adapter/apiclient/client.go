// Package apiclient is a typed client for the campaign REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"campaign-admin/internal/adapter/httpmw"
	"campaign-admin/internal/core/port"
)

// ErrNotFound is matched by a StatusError with code 404.
var ErrNotFound = errors.New("not found")

// StatusError is returned for every non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("campaign api %s %s returned %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Client implements port.CampaignAPI over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ port.CampaignAPI = (*Client)(nil)

// New returns a client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) ListCampaigns(ctx context.Context) ([]port.CampaignResponse, error) {
	var out []port.CampaignResponse
	if err := c.do(ctx, http.MethodGet, "/api/campaigns", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCampaign(ctx context.Context, id int64) (*port.CampaignResponse, error) {
	var out port.CampaignResponse
	if err := c.do(ctx, http.MethodGet, campaignPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCampaign(ctx context.Context, req port.CampaignRequest) (*port.CampaignResponse, error) {
	var out port.CampaignResponse
	if err := c.do(ctx, http.MethodPost, "/api/campaigns", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id int64, req port.CampaignRequest) (*port.CampaignResponse, error) {
	var out port.CampaignResponse
	if err := c.do(ctx, http.MethodPut, campaignPath(id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCampaign(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, campaignPath(id), nil, nil)
}

func (c *Client) ListSellers(ctx context.Context) ([]port.SellerResponse, error) {
	var out []port.SellerResponse
	if err := c.do(ctx, http.MethodGet, "/api/sellers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTowns(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/towns", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) KeywordSuggestions(ctx context.Context, query string) ([]string, error) {
	var out []string
	path := "/api/keywords/suggestions?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func campaignPath(id int64) string {
	return "/api/campaigns/" + strconv.FormatInt(id, 10)
}

// do sends one request. body, when non-nil, is encoded as JSON; out, when
// non-nil, receives the decoded response.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := httpmw.RequestID(ctx); rid != "" {
		req.Header.Set(httpmw.RequestIDHeader, rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		httpmw.UpstreamRequestsTotal.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("campaign api unavailable: %w", err)
	}
	defer resp.Body.Close()
	httpmw.UpstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Debug("decode api response", slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
