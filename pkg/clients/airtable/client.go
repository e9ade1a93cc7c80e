package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/excelerateanalytics/website/pkg/logger"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// Client defines the interface for interacting with Airtable API
type Client interface {
	RecordExists(ctx context.Context, table, field, value string) (bool, error)
	CreateRecord(ctx context.Context, table string, fields map[string]interface{}) error
}

type clientImpl struct {
	apiKey  string
	baseID  string
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option customises the client
type Option func(*clientImpl)

// WithBaseURL points the client at a different API root
func WithBaseURL(u string) Option {
	return func(c *clientImpl) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *clientImpl) {
		c.http = h
	}
}

// NewClient creates a new Airtable client
func NewClient(apiKey, baseID string, log *slog.Logger, opts ...Option) Client {
	c := &clientImpl{
		apiKey:  apiKey,
		baseID:  baseID,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log.With(logger.Scope("clients.airtable")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *clientImpl) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}

func (c *clientImpl) RecordExists(ctx context.Context, table, field, value string) (bool, error) {
	q := url.Values{}
	q.Set("filterByFormula", fmt.Sprintf("{%s}=%q", field, value))
	q.Set("maxRecords", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(table)+"?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)

	body, err := c.do(req, http.StatusOK)
	if err != nil {
		return false, err
	}

	var response struct {
		Records []struct {
			ID string `json:"id"`
		} `json:"records"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return false, fmt.Errorf("error parsing response: %w", err)
	}

	exists := len(response.Records) > 0
	c.log.Debug("record check", slog.String("table", table), slog.Bool("exists", exists))
	return exists, nil
}

func (c *clientImpl) CreateRecord(ctx context.Context, table string, fields map[string]interface{}) error {
	payload := map[string]interface{}{
		"records": []map[string]interface{}{
			{"fields": fields},
		},
		"typecast": true,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	if _, err := c.do(req, http.StatusOK); err != nil {
		return err
	}

	c.log.Debug("record created", slog.String("table", table))
	return nil
}

func (c *clientImpl) do(req *http.Request, want int) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling Airtable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != want {
		return nil, fmt.Errorf("error from Airtable API (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}
