package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Service: "storefront", Version: "dev"})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
	if resp.Service != "storefront" {
		t.Errorf("got service %q, want storefront", resp.Service)
	}
}

func TestProductsCRUD(t *testing.T) {
	id := uuid.MustParse("15ca8c18-43d4-4da3-ad14-2dc127365b04")
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/products": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "50" {
				t.Errorf("got limit %q, want 50", got)
			}
			jsonResponse(w, 200, ProductPage{
				Items: []Product{{ID: id, Name: "Sample Product"}},
				Total: 100, Page: 2, Limit: 50,
			})
		},
		"POST /api/v1/products": func(w http.ResponseWriter, r *http.Request) {
			var req CreateProductRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, Product{ID: uuid.New(), Name: req.Name, Price: req.Price, Category: req.Category})
		},
		"GET /api/v1/products/" + id.String(): func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Product{ID: id, Name: "Sample Product"})
		},
		"PUT /api/v1/products/" + id.String(): func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, Product{ID: id, Name: "Updated Product"})
		},
		"DELETE /api/v1/products/" + id.String(): func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, DeleteResponse{Status: "success"})
		},
	})
	ctx := context.Background()

	page, err := c.Products.List(ctx, &ProductListOptions{Page: 2, Limit: 50})
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(page.Items) != 1 || page.Total != 100 {
		t.Errorf("got %d items / total %d, want 1 / 100", len(page.Items), page.Total)
	}

	created, err := c.Products.Create(ctx, &CreateProductRequest{Name: "Widget", Price: 9.99, Category: "tools"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.Name != "Widget" {
		t.Errorf("got name %q, want Widget", created.Name)
	}

	got, err := c.Products.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.ID != id {
		t.Errorf("got id %s, want %s", got.ID, id)
	}

	updated, err := c.Products.Update(ctx, id, &CreateProductRequest{Name: "Updated Product", Price: 1, Category: "tools"})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Name != "Updated Product" {
		t.Errorf("got name %q, want Updated Product", updated.Name)
	}

	del, err := c.Products.Delete(ctx, id)
	if err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if del.Status != "success" {
		t.Errorf("got status %q, want success", del.Status)
	}
}

func TestProductProcess(t *testing.T) {
	id := uuid.MustParse("15ca8c18-43d4-4da3-ad14-2dc127365b04")
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/products/" + id.String() + "/process": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, ProcessResult{Status: "success", ProductID: id, ProcessID: uuid.New()})
		},
	})
	result, err := c.Products.Process(context.Background(), id)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if result.Status != "success" || result.ProductID != id {
		t.Errorf("got %q/%s, want success/%s", result.Status, result.ProductID, id)
	}
}

func TestPredict(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/ai/predict": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("simulate_error"); got != "true" {
				t.Errorf("got simulate_error %q, want true", got)
			}
			var req PredictionRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 200, Prediction{
				PredictionID: uuid.New(),
				Result:       "Processed: " + req.Text,
				Confidence:   0.92,
			})
		},
	})
	pred, err := c.Predictions.Predict(context.Background(), &PredictionRequest{Text: "hello"}, true)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if pred.Result != "Processed: hello" {
		t.Errorf("got result %q", pred.Result)
	}
}

func TestGetPrediction(t *testing.T) {
	id := uuid.New()
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/ai/predict/" + id.String(): func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "" {
				t.Errorf("unexpected query %q", r.URL.RawQuery)
			}
			jsonResponse(w, 200, Prediction{PredictionID: id, Confidence: 0.95})
		},
	})
	pred, err := c.Predictions.Get(context.Background(), id, false)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if pred.PredictionID != id {
		t.Errorf("got id %s, want %s", pred.PredictionID, id)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	id := uuid.MustParse("05ca8c18-43d4-4da3-ad14-2dc127365b04")
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/products/" + id.String(): func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{
				"code":       "not_found",
				"message":    "Product not found",
				"request_id": "req-123",
			})
		},
	})
	_, err := c.Products.Get(context.Background(), id)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 404 || apiErr.Code != "not_found" {
		t.Errorf("got %d/%q, want 404/not_found", apiErr.StatusCode, apiErr.Code)
	}
	if apiErr.RequestID != "req-123" {
		t.Errorf("got request_id %q, want req-123", apiErr.RequestID)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false, want true")
	}
	if IsConflict(err) || IsOverloaded(err) {
		t.Error("unexpected IsConflict/IsOverloaded = true")
	}
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /health": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(502)
			w.Write([]byte("bad gateway")) //nolint:errcheck
		},
	})
	_, err := c.Health(context.Background())
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "unknown" || apiErr.Message != "bad gateway" {
		t.Errorf("got %q/%q, want unknown/bad gateway", apiErr.Code, apiErr.Message)
	}
	if !IsServerError(err) {
		t.Error("IsServerError() = false, want true")
	}
}
