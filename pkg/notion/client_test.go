package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(ts *httptest.Server) *Client {
	return New(Config{
		Token:      "secret-token",
		DatabaseID: "db-tasks",
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	})
}

func TestFetchTasksFollowsPagination(t *testing.T) {
	var cursors []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/databases/db-tasks/query" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		if got := r.Header.Get("Notion-Version"); got != apiVersion {
			t.Errorf("unexpected api version %q", got)
		}

		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		cursors = append(cursors, req.StartCursor)

		if req.StartCursor == "" {
			json.NewEncoder(w).Encode(map[string]any{
				"results":     []map[string]any{{"id": "p1"}, {"id": "p2"}},
				"has_more":    true,
				"next_cursor": "cursor-2",
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results":  []map[string]any{{"id": "p3"}},
			"has_more": false,
		})
	}))
	defer ts.Close()

	records, err := newTestClient(ts).FetchTasks(context.Background())
	if err != nil {
		t.Fatalf("FetchTasks failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records across pages, got %d", len(records))
	}
	for i, id := range []string{"p1", "p2", "p3"} {
		if records[i].ID != id {
			t.Errorf("expected %s at %d, got %s", id, i, records[i].ID)
		}
	}
	if len(cursors) != 2 || cursors[1] != "cursor-2" {
		t.Errorf("expected second request with cursor-2, got %v", cursors)
	}
}

func TestFetchTasksEmptyDatabase(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}, "has_more": false})
	}))
	defer ts.Close()

	records, err := newTestClient(ts).FetchTasks(context.Background())
	if err != nil {
		t.Fatalf("an empty database is not an error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestUnauthorizedBecomesAuthError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"code": "unauthorized", "message": "API token is invalid."})
	}))
	defer ts.Close()

	_, err := newTestClient(ts).FetchTasks(context.Background())
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T: %v", err, err)
	}
	if authErr.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", authErr.Status)
	}
	if authErr.Message != "API token is invalid." {
		t.Errorf("expected API message passed through, got %q", authErr.Message)
	}
}

func TestUpdateCompletionPatchesDoneCheckbox(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/v1/pages/page-42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body struct {
			Properties struct {
				Done struct {
					Checkbox bool `json:"checkbox"`
				} `json:"Done"`
			} `json:"properties"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if !body.Properties.Done.Checkbox {
			t.Errorf("expected checkbox true")
		}
		w.Write([]byte("{}"))
	}))
	defer ts.Close()

	if err := newTestClient(ts).UpdateCompletion(context.Background(), "page-42", true); err != nil {
		t.Fatalf("UpdateCompletion failed: %v", err)
	}
}

func TestUpdateCompletionServerErrorBecomesUpdateError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	err := newTestClient(ts).UpdateCompletion(context.Background(), "page-42", false)
	var updateErr *UpdateError
	if !errors.As(err, &updateErr) {
		t.Fatalf("expected *UpdateError, got %T: %v", err, err)
	}
	if updateErr.PageID != "page-42" {
		t.Errorf("expected page id carried on the error, got %q", updateErr.PageID)
	}
}

func TestUpdateCompletionAuthErrorPassesThrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	err := newTestClient(ts).UpdateCompletion(context.Background(), "page-42", true)
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T: %v", err, err)
	}
}

func TestCourseLookupTriesTitleAliases(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/databases/db-courses/query" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"id": "c1",
					"properties": map[string]any{
						"Course": map[string]any{"title": []map[string]any{{"plain_text": "Biology 101"}}},
					},
				},
				{
					"id": "c2",
					"properties": map[string]any{
						"Course Title": map[string]any{"title": []map[string]any{{"plain_text": "Chemistry 201"}}},
					},
				},
				{
					"id":         "c3",
					"properties": map[string]any{},
				},
			},
			"has_more": false,
		})
	}))
	defer ts.Close()

	c := New(Config{
		Token:            "secret-token",
		DatabaseID:       "db-tasks",
		CourseDatabaseID: "db-courses",
		BaseURL:          ts.URL,
		HTTPClient:       ts.Client(),
	})
	lookup, err := c.CourseLookup(context.Background())
	if err != nil {
		t.Fatalf("CourseLookup failed: %v", err)
	}
	if lookup["c1"] != "Biology 101" {
		t.Errorf("c1 = %q", lookup["c1"])
	}
	if lookup["c2"] != "Chemistry 201" {
		t.Errorf("c2 = %q", lookup["c2"])
	}
	if lookup["c3"] != "Unknown Course" {
		t.Errorf("expected fallback name for untitled course, got %q", lookup["c3"])
	}
}

func TestCourseLookupWithoutDatabaseConfigured(t *testing.T) {
	c := New(Config{Token: "secret-token", DatabaseID: "db-tasks"})
	lookup, err := c.CourseLookup(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lookup) != 0 {
		t.Errorf("expected empty lookup, got %v", lookup)
	}
}
