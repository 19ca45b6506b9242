// internal/api/client_test.go
//
// Client tests against an httptest server speaking the API envelope.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

// newTestClient points a Client at ts with a no-op logger.
func newTestClient(ts *httptest.Server) *Client {
	return New(Config{BaseURL: ts.URL, Log: zap.NewNop().Sugar()})
}

func TestClient_ListMergesDefaults(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{
			"error": false,
			"payload": map[string]any{
				"users":      []map[string]any{{"id": 1, "name": "Alice"}},
				"pagination": map[string]any{"page": 1, "limit": 10, "total": 1, "totalPages": 1},
			},
		})
	}))
	defer ts.Close()

	c := newTestClient(ts)
	res, err := c.List(context.Background(), Filters{Country: "USA"}, Page{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := "country=USA&page=1&limit=10&sortBy=createdAt&sortOrder=DESC"
	if gotQuery != want {
		t.Fatalf("query = %q, want %q", gotQuery, want)
	}
	if len(res.Users) != 1 || res.Users[0].Name != "Alice" {
		t.Fatalf("users = %+v, want one row for Alice", res.Users)
	}
	if res.Pagination.Total != 1 {
		t.Fatalf("pagination total = %d, want 1", res.Pagination.Total)
	}
}

func TestClient_ListOmitsEmptyFilters(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{
			"error":   false,
			"payload": map[string]any{"users": []any{}, "pagination": map[string]any{}},
		})
	}))
	defer ts.Close()

	c := newTestClient(ts)
	if _, err := c.List(context.Background(), Filters{}, Page{Page: 2, SortOrder: SortAsc}); err != nil {
		t.Fatalf("List: %v", err)
	}

	want := "page=2&limit=10&sortBy=createdAt&sortOrder=ASC"
	if gotQuery != want {
		t.Fatalf("query = %q, want %q", gotQuery, want)
	}
}

func TestClient_GetRejectsZeroID(t *testing.T) {
	c := New(Config{Log: zap.NewNop().Sugar()})

	_, err := c.Get(context.Background(), 0)
	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("Get(0) error = %T (%v), want *ArgumentError", err, err)
	}
	if ae.Op != "get" {
		t.Fatalf("op = %q, want \"get\"", ae.Op)
	}
}

func TestClient_GetDecodesRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/users/42" {
			t.Errorf("request = %s %s, want GET /api/users/42", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"error":   false,
			"payload": map[string]any{"id": 42, "name": "Alice", "email": "a@b.com"},
		})
	}))
	defer ts.Close()

	c := newTestClient(ts)
	rec, err := c.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.ID != 42 || rec.Email != "a@b.com" {
		t.Fatalf("record = %+v, want id 42, email a@b.com", rec)
	}
}

func TestClient_CreateSendsHeadersAndBody(t *testing.T) {
	var gotBody map[string]any
	var gotCT, gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotReqID = r.Header.Get("X-Request-Id")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"error": false, "payload": "User created successfully",
		})
	}))
	defer ts.Close()

	c := newTestClient(ts)
	msg, err := c.Create(context.Background(), map[string]any{"name": "Test User"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if msg != "User created successfully" {
		t.Fatalf("message = %q, want server payload", msg)
	}
	if gotCT != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotCT)
	}
	if gotReqID == "" {
		t.Fatal("X-Request-Id header missing")
	}
	if gotBody["name"] != "Test User" {
		t.Fatalf("body = %v, want name field", gotBody)
	}
}

func TestClient_CreateRejectsEmptyData(t *testing.T) {
	c := New(Config{Log: zap.NewNop().Sugar()})

	_, err := c.Create(context.Background(), nil)
	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("Create(nil) error = %T, want *ArgumentError", err)
	}
}

func TestClient_UpdateSendsOnlyProvidedFields(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/users/7" {
			t.Errorf("request = %s %s, want PUT /api/users/7", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"error": false, "payload": "Updated"})
	}))
	defer ts.Close()

	c := newTestClient(ts)
	if _, err := c.Update(context.Background(), 7, map[string]any{"country": "Canada"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(gotBody) != 1 || gotBody["country"] != "Canada" {
		t.Fatalf("body = %v, want only the country field", gotBody)
	}
}

func TestClient_DeletePropagatesLogicalError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]any{"error": true, "payload": "User not found"})
	}))
	defer ts.Close()

	c := newTestClient(ts)
	_, err := c.Delete(context.Background(), 9)
	var le *LogicalError
	if !errors.As(err, &le) {
		t.Fatalf("Delete error = %T (%v), want *LogicalError", err, err)
	}
	if le.Message != "User not found" {
		t.Fatalf("message = %q, want server payload", le.Message)
	}
}
