//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/material-tracker/internal/adapter/airtable"
	"github.com/heartmarshall/material-tracker/internal/config"
	"github.com/heartmarshall/material-tracker/internal/service/image"
	"github.com/heartmarshall/material-tracker/internal/service/request"
	"github.com/heartmarshall/material-tracker/internal/transport/middleware"
	"github.com/heartmarshall/material-tracker/internal/transport/rest"
)

// fakeTable is an in-memory stand-in for the Airtable requests table.
type fakeTable struct {
	mu      sync.Mutex
	nextID  int
	records []map[string]any // each: {"id", "createdTime", "fields"}
}

func (f *fakeTable) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": {"type": "AUTHENTICATION_REQUIRED", "message": "missing key"}}`)
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet:
			// "/appE2E/Requests" lists, "/appE2E/Requests/recNNN" fetches one.
			if parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/"); len(parts) == 3 {
				f.get(w, parts[2])
				return
			}
			f.list(w, r)
		case r.Method == http.MethodPost:
			f.create(w, r)
		case r.Method == http.MethodPatch:
			f.update(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func (f *fakeTable) list(w http.ResponseWriter, r *http.Request) {
	formula := r.URL.Query().Get("filterByFormula")

	out := make([]map[string]any, 0, len(f.records))
	for _, rec := range f.records {
		if formula != "" {
			fields := rec["fields"].(map[string]any)
			status, _ := fields["Status"].(string)
			if !strings.Contains(formula, "'"+status+"'") {
				continue
			}
		}
		out = append(out, rec)
	}

	json.NewEncoder(w).Encode(map[string]any{"records": out})
}

func (f *fakeTable) get(w http.ResponseWriter, id string) {
	for _, rec := range f.records {
		if rec["id"] == id {
			json.NewEncoder(w).Encode(rec)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, `{"error": {"type": "NOT_FOUND"}}`)
}

func (f *fakeTable) create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Fields map[string]any `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	f.nextID++
	rec := map[string]any{
		"id":          fmt.Sprintf("rec%03d", f.nextID),
		"createdTime": time.Now().UTC().Format(time.RFC3339),
		"fields":      body.Fields,
	}
	f.records = append(f.records, rec)

	json.NewEncoder(w).Encode(rec)
}

func (f *fakeTable) update(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(r.URL.Path, "/")
	id := parts[len(parts)-1]

	var body struct {
		Fields map[string]any `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	for _, rec := range f.records {
		if rec["id"] == id {
			fields := rec["fields"].(map[string]any)
			for k, v := range body.Fields {
				fields[k] = v
			}
			json.NewEncoder(w).Encode(rec)
			return
		}
	}

	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, `{"error": {"type": "NOT_FOUND"}}`)
}

// setupTestServer wires the full stack against a fake Airtable and returns
// the tracker's HTTP server.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	table := &fakeTable{}
	upstream := httptest.NewServer(table.handler())
	t.Cleanup(upstream.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := airtable.NewClient(config.AirtableConfig{
		BaseURL:   upstream.URL,
		BaseID:    "appE2E",
		APIKey:    "e2e-key",
		TableName: "Requests",
		Timeout:   5 * time.Second,
	}, logger)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	uploadCfg := config.UploadConfig{MaxBytes: 1 << 20}

	router := rest.NewRouter(rest.RouterDeps{
		Requests: rest.NewRequestHandler(request.NewService(logger, store), logger),
		Upload:   rest.NewUploadHandler(image.NewService(logger, uploadCfg), uploadCfg, logger),
		Health:   rest.NewHealthHandler(store, "e2e"),
		Identity: middleware.Identity(nil),
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		Limiter: limiter.Limit(1000),
		Logger:  logger,
	})

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

// postJSON sends a JSON body to the given endpoint and decodes the response
// into out.
func postJSON(t *testing.T, ts *httptest.Server, path string, body any, out any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
