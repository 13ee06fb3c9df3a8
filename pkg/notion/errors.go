package notion

import "fmt"

// TransportError wraps a network-level failure reaching the Notion API.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("notion: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthError is a 401/403 from the API. The stored credentials are stale or
// the integration lost access; the user has to re-authenticate.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("notion: authentication failed (HTTP %d): %s", e.Status, e.Message)
}

// UpdateError is a failed page update. It aborts only the single toggle that
// issued it.
type UpdateError struct {
	PageID string
	Err    error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("notion: update of page %s failed: %v", e.PageID, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// apiError is the JSON error body the Notion API returns on non-2xx status.
type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
