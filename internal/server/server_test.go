package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/mcp-financing-go/internal/cache"
	"github.com/cloud-ru/mcp-financing-go/internal/config"
	"github.com/cloud-ru/mcp-financing-go/internal/export"
	"github.com/cloud-ru/mcp-financing-go/internal/financing"
	"github.com/cloud-ru/mcp-financing-go/internal/service"
	"github.com/cloud-ru/mcp-financing-go/internal/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	svc := service.NewFinancingService(cfg, cache.NewMemoryStore(time.Minute), export.DefaultRegistry(), zerolog.Nop())
	return New(Config{
		Log:   zerolog.Nop(),
		Port:  0,
		Tools: tools.Registry(svc, noop.NewTracerProvider().Tracer("test")),
	})
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

const referenceBody = `{"property_price":500000,"equity":100000,"additional_costs":35000,"interest_rate":3.45,"loan_term":25}`

func TestServer_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_ListTools(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tools", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["tools"], tools.FinancingScheduleTool)
}

func TestServer_CallTool(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"schedule", "/api/tools/financing_schedule", referenceBody, http.StatusOK},
		{"unknown tool", "/api/tools/deposit_schedule", referenceBody, http.StatusNotFound},
		{"broken json", "/api/tools/financing_schedule", `{"property_price":`, http.StatusBadRequest},
		{"invalid parameters", "/api/tools/financing_schedule", `{"property_price":500000,"interest_rate":3.45,"loan_term":0}`, http.StatusBadRequest},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	rec := post(t, s, "/api/tools/financing_schedule", referenceBody)
	var result financing.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 435000.0, result.LoanAmount)
	assert.Len(t, result.Schedule, 300)
}

func TestServer_ErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{"unknown tool", "/api/tools/deposit_schedule", referenceBody, "неизвестный инструмент"},
		{"broken json", "/api/tools/financing_schedule", `{"property_price":`, "некорректное тело запроса"},
		{"missing parameter", "/api/tools/financing_schedule", `{"interest_rate":3.45,"loan_term":25}`, "неверный параметр: property_price"},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, tt.path, tt.body)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.want)
		})
	}
}

func TestServer_Export(t *testing.T) {
	s := newTestServer(t)

	rec := post(t, s, "/api/financing/export/pdf", referenceBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=")
	assert.NotEmpty(t, rec.Header().Get("X-Document-Id"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	rec = post(t, s, "/api/financing/export/docx", referenceBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)
	post(t, s, "/api/tools/financing_schedule", referenceBody)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tool_calls_total")
}
