// Package airtable implements the record store on top of the Airtable REST API.
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
	"time"

	"github.com/heartmarshall/material-tracker/internal/config"
	"github.com/heartmarshall/material-tracker/internal/domain"
)

// Client talks to a single Airtable table holding material requests.
type Client struct {
	baseURL    string
	baseID     string
	table      string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from the Airtable configuration.
func NewClient(cfg config.AirtableConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		baseID:     cfg.BaseID,
		table:      cfg.TableName,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "airtable"),
	}
}

// recordsURL builds the base URL of the records endpoint for the table.
func (c *Client) recordsURL() string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(c.table))
}

// List fetches requests sorted by request date, newest first. When filter
// narrows by status, the filtering happens server-side via filterByFormula.
func (c *Client) List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error) {
	q := url.Values{}
	q.Set("sort[0][field]", fieldRequestDate)
	q.Set("sort[0][direction]", "desc")
	if filter.Status != nil {
		q.Set("filterByFormula", fmt.Sprintf("{%s} = '%s'", fieldStatus, *filter.Status))
	}

	reqURL := c.recordsURL() + "?" + q.Encode()

	c.log.DebugContext(ctx, "airtable list", slog.Bool("filtered", filter.Status != nil))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("airtable: create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "airtable list failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("airtable: list records: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("airtable: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp.StatusCode, body)
	}

	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("airtable: decode json: %w", err)
	}

	requests := make([]domain.Request, 0, len(list.Records))
	for _, rec := range list.Records {
		requests = append(requests, fromRecord(rec))
	}

	c.log.DebugContext(ctx, "airtable list done", slog.Int("records", len(requests)))

	return requests, nil
}

// Get fetches a single request by record ID.
func (c *Client) Get(ctx context.Context, id string) (domain.Request, error) {
	reqURL := c.recordsURL() + "/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Request{}, fmt.Errorf("airtable: create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "airtable get failed",
			slog.String("record_id", id), slog.String("error", err.Error()))
		return domain.Request{}, fmt.Errorf("airtable: get record: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Request{}, fmt.Errorf("airtable: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.Request{}, fmt.Errorf("airtable: record %s: %w", id, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Request{}, c.apiError(resp.StatusCode, body)
	}

	var rec record
	if err := json.Unmarshal(body, &rec); err != nil {
		return domain.Request{}, fmt.Errorf("airtable: decode json: %w", err)
	}

	return fromRecord(rec), nil
}

// Create stores a new request and returns it with the generated record ID.
func (c *Client) Create(ctx context.Context, request domain.Request) (domain.Request, error) {
	payload, err := json.Marshal(createRequest{Fields: toFields(request)})
	if err != nil {
		return domain.Request{}, fmt.Errorf("airtable: encode fields: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.recordsURL(), bytes.NewReader(payload))
	if err != nil {
		return domain.Request{}, fmt.Errorf("airtable: create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "airtable create failed", slog.String("error", err.Error()))
		return domain.Request{}, fmt.Errorf("airtable: create record: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Request{}, fmt.Errorf("airtable: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return domain.Request{}, c.apiError(resp.StatusCode, body)
	}

	var rec record
	if err := json.Unmarshal(body, &rec); err != nil {
		return domain.Request{}, fmt.Errorf("airtable: decode json: %w", err)
	}

	created := fromRecord(rec)

	c.log.InfoContext(ctx, "airtable record created", slog.String("record_id", created.ID))

	return created, nil
}

// UpdateStatus patches only the status column of the given record and
// returns the updated request.
func (c *Client) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Request, error) {
	payload, err := json.Marshal(createRequest{Fields: recordFields{Status: string(status)}})
	if err != nil {
		return domain.Request{}, fmt.Errorf("airtable: encode fields: %w", err)
	}

	reqURL := c.recordsURL() + "/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, reqURL, bytes.NewReader(payload))
	if err != nil {
		return domain.Request{}, fmt.Errorf("airtable: create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "airtable update failed",
			slog.String("record_id", id), slog.String("error", err.Error()))
		return domain.Request{}, fmt.Errorf("airtable: update record: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Request{}, fmt.Errorf("airtable: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.Request{}, fmt.Errorf("airtable: record %s: %w", id, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Request{}, c.apiError(resp.StatusCode, body)
	}

	var rec record
	if err := json.Unmarshal(body, &rec); err != nil {
		return domain.Request{}, fmt.Errorf("airtable: decode json: %w", err)
	}

	updated := fromRecord(rec)

	c.log.InfoContext(ctx, "airtable status updated",
		slog.String("record_id", id), slog.String("status", string(status)))

	return updated, nil
}

// Ping verifies the table is reachable with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordsURL()+"?maxRecords=1", nil)
	if err != nil {
		return fmt.Errorf("airtable: create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("airtable: ping: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return c.apiError(resp.StatusCode, body)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if req.Method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
}

// doWithRetry executes an idempotent request with a single retry on 5xx or
// network errors. Writes go through httpClient.Do directly.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "airtable retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = c.httpClient.Do(req)
	return resp, err
}

// apiError turns a non-success Airtable response into an UpstreamError.
func (c *Client) apiError(status int, body []byte) error {
	return &domain.UpstreamError{
		StatusCode: status,
		Message:    parseErrorMessage(body),
	}
}

// parseErrorMessage extracts a human-readable message from an Airtable error
// body. The API returns {"error":{"type":...,"message":...}} but some proxy
// failures come back as {"error":"..."} or plain text.
func parseErrorMessage(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}
		var s string
		if err := json.Unmarshal(envelope.Error, &s); err == nil && s != "" {
			return s
		}
	}
	if msg := string(bytes.TrimSpace(body)); msg != "" {
		return msg
	}
	return "upstream request failed"
}
