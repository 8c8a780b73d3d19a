package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/redlabs/storefront/internal/api"
	"github.com/redlabs/storefront/internal/catalog"
	"github.com/redlabs/storefront/internal/metrics"
)

// Trigger IDs whose leading digit selects a deterministic failure.
const (
	routerNotFoundID = "05ca8c18-43d4-4da3-ad14-2dc127365b04"
	routerTimeoutID  = "55ca8c18-43d4-4da3-ad14-2dc127365b04"
)

// newTestRouter assembles the full middleware and route stack against the
// real catalog with latency simulation disabled.
func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()

	log := testLogger()
	m := metrics.New(metrics.Config{
		ServiceLabel: "storefront--test",
		ExcludePaths: []string{"/metrics", "/health", "/favicon.ico"},
	})
	sim := catalog.NewSimulatorWithSeed(0, 42)

	return api.NewRouter(&api.RouterDeps{
		Log:         log,
		Metrics:     m,
		Catalog:     catalog.NewService(sim, log),
		Predictions: catalog.NewPredictor(sim, log),
		CORSOrigins: []string{"*"},
		ServiceName: "storefront--test",
		Version:     "test",
	}), m
}

func TestRouter_Index(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Service   string   `json:"service"`
		Version   string   `json:"version"`
		Endpoints []string `json:"endpoints"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.Service != "storefront--test" {
		t.Errorf("expected service name, got %q", body.Service)
	}
	if len(body.Endpoints) == 0 {
		t.Error("expected endpoint listing")
	}
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_ProductFlowEndToEnd(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/products?page=2&limit=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/api/v1/products",
		`{"name":"Widget","price":19.99,"category":"electronics"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/v1/products/"+routerNotFoundID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get trigger: expected 404, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodPost, "/api/v1/products/"+routerTimeoutID+"/process", "")
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("process trigger: expected 504, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRouter_PredictFlowEndToEnd(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/ai/predict", `{"text":"route me"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("predict: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/v1/ai/predict/"+uuid.NewString(), "")
	if w.Code != http.StatusOK && w.Code != http.StatusNotFound {
		t.Fatalf("get prediction: expected 200 or 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRouter_MetricsExposition(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	doRequest(r, http.MethodGet, "/api/v1/products", "")
	doRequest(r, http.MethodGet, "/health", "")

	w := doRequest(r, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, `route="/api/v1/products"`) {
		t.Error("expected products series in exposition")
	}
	if strings.Contains(body, `route="/metrics"`) {
		t.Error("scrape endpoint leaked into its own series")
	}
	if strings.Contains(body, `route="/health"`) {
		t.Error("health endpoint leaked into the series")
	}
}

func TestRouter_UnmatchedRouteSentinel(t *testing.T) {
	t.Parallel()

	r, m := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/no/such/route", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	found := false
	for _, row := range snap.Routes {
		if row.Route == metrics.RouteUnmatched {
			found = true
		}
	}
	if !found {
		t.Error("expected unmatched sentinel series")
	}
}

func TestRouter_SecurityAndRequestIDHeaders(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/products", "")

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected request ID header on response")
	}
}

func TestRouter_CORSAllowsAnyOrigin(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", http.NoBody)
	req.Header.Set("Origin", "http://dashboard.local")

	w := doRawRequest(r, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard allow-origin, got %q", got)
	}
}
