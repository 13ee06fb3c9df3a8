// Package notion is a hand-rolled client for the two Notion API calls the
// notification center needs: querying a tasks database and patching a page's
// completion checkbox. It also builds the course lookup table from a
// secondary database.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tableflip.dev/notify/pkg/task"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
	pageSize       = 100
)

// titleAliases are the property names tried, in order, when extracting a
// course display name. Different workspace templates name the title column
// differently.
var titleAliases = []string{"Course", "Name", "Title", "Course Name", "Course Title"}

// Config holds client configuration. Only Token and DatabaseID are required.
type Config struct {
	Token            string
	DatabaseID       string
	CourseDatabaseID string
	// CourseToken overrides Token for the courses database, for setups
	// where the two databases live in different workspaces.
	CourseToken string
	BaseURL     string
	HTTPClient  *http.Client
}

// Client talks to the Notion API. It implements completion.Source.
type Client struct {
	config Config
}

// New creates a client with the given config, filling in defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.CourseToken == "" {
		cfg.CourseToken = cfg.Token
	}
	return &Client{config: cfg}
}

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

type queryResponse struct {
	Results    []task.Record `json:"results"`
	HasMore    bool          `json:"has_more"`
	NextCursor string        `json:"next_cursor"`
}

// FetchTasks queries the tasks database, following pagination until the API
// reports no more pages. Zero results is a valid, empty response.
func (c *Client) FetchTasks(ctx context.Context) ([]task.Record, error) {
	return c.queryDatabase(ctx, c.config.DatabaseID, c.config.Token)
}

func (c *Client) queryDatabase(ctx context.Context, databaseID, token string) ([]task.Record, error) {
	var records []task.Record
	cursor := ""
	for {
		body, err := json.Marshal(queryRequest{StartCursor: cursor, PageSize: pageSize})
		if err != nil {
			return nil, fmt.Errorf("notion: marshal query: %w", err)
		}

		url := fmt.Sprintf("%s/v1/databases/%s/query", c.config.BaseURL, databaseID)
		data, err := c.do(ctx, http.MethodPost, url, token, body)
		if err != nil {
			return nil, err
		}

		var page queryResponse
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, &TransportError{Op: "decode query response", Err: err}
		}
		records = append(records, page.Results...)

		if !page.HasMore || page.NextCursor == "" {
			return records, nil
		}
		cursor = page.NextCursor
	}
}

// UpdateCompletion sets the Done checkbox on a page. The call patches a
// single property, so there is no partial-application state to worry about.
func (c *Client) UpdateCompletion(ctx context.Context, pageID string, completed bool) error {
	body, err := json.Marshal(map[string]any{
		"properties": map[string]any{
			"Done": map[string]bool{"checkbox": completed},
		},
	})
	if err != nil {
		return &UpdateError{PageID: pageID, Err: err}
	}

	url := fmt.Sprintf("%s/v1/pages/%s", c.config.BaseURL, pageID)
	if _, err := c.do(ctx, http.MethodPatch, url, c.config.Token, body); err != nil {
		if _, ok := err.(*AuthError); ok {
			return err
		}
		return &UpdateError{PageID: pageID, Err: err}
	}
	return nil
}

// CourseLookup queries the courses database and maps page id to display
// name. Callers should degrade to an empty lookup on error; missing course
// names must never block the primary task fetch.
func (c *Client) CourseLookup(ctx context.Context) (task.Lookup, error) {
	if c.config.CourseDatabaseID == "" {
		return task.Lookup{}, nil
	}
	records, err := c.queryDatabase(ctx, c.config.CourseDatabaseID, c.config.CourseToken)
	if err != nil {
		return nil, err
	}

	lookup := make(task.Lookup, len(records))
	for _, rec := range records {
		lookup[rec.ID] = courseName(rec)
	}
	return lookup, nil
}

// courseName extracts the display name from the first populated title alias.
func courseName(rec task.Record) string {
	for _, alias := range titleAliases {
		prop, ok := rec.Properties[alias]
		if !ok || len(prop.Title) == 0 {
			continue
		}
		if name := prop.Title[0].PlainText; name != "" {
			return name
		}
	}
	return "Unknown Course"
}

// do issues one API request and returns the response body. Non-2xx statuses
// are decoded into the typed error taxonomy.
func (c *Client) do(ctx context.Context, method, url, token string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", apiVersion)

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method + " " + url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		var apiErr apiError
		_ = json.Unmarshal(data, &apiErr)
		return nil, &AuthError{Status: resp.StatusCode, Message: apiErr.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
			return nil, &TransportError{Op: method + " " + url,
				Err: fmt.Errorf("HTTP %d %s: %s", resp.StatusCode, apiErr.Code, apiErr.Message)}
		}
		return nil, &TransportError{Op: method + " " + url,
			Err: fmt.Errorf("unexpected HTTP %d", resp.StatusCode)}
	}
	return data, nil
}
