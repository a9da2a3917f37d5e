package sampledata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// Health checks GET /healthz.
func (c *HTTPClient) Health(ctx context.Context) error {
	return c.getJSON(ctx, "/healthz", nil)
}

// Upload posts the sample as a multipart CSV file and returns the dataset id.
func (c *HTTPClient) Upload(ctx context.Context, name string, s *Sample) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if err := s.WriteCSV(fw); err != nil {
		return "", fmt.Errorf("encode sample: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/datasets", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var info struct {
		ID string `json:"id"`
	}
	if err := c.do(req, http.StatusCreated, &info); err != nil {
		return "", err
	}
	return info.ID, nil
}

// Ranking fetches the ranking of a dataset.
func (c *HTTPClient) Ranking(ctx context.Context, id, position, profile string, top int) (*Ranking, error) {
	q := url.Values{"position": {position}}
	if profile != "" {
		q.Set("profile", profile)
	}
	if top > 0 {
		q.Set("top", strconv.Itoa(top))
	}
	var out Ranking
	if err := c.getJSON(ctx, "/datasets/"+url.PathEscape(id)+"/rankings?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete discards the dataset session.
func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/datasets/"+url.PathEscape(id), http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, http.StatusNoContent, nil)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, http.StatusOK, out)
}

func (c *HTTPClient) do(req *http.Request, want int, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != want {
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, bytes.TrimSpace(body))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
