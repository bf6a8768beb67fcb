package catalog

import (
	"context"
	"errors"
)

// Upload lifecycle statuses.
const (
	StatusUploaded = "UPLOADED"
	StatusParsing  = "PARSING"
	StatusParsed   = "PARSED"
	StatusFailed   = "FAILED"
)

var ErrNoCatalog = errors.New("no parsed catalog available")

// Upload is one claimed ingestion job.
type Upload struct {
	ID        int
	ObjectURL string
	Filename  string
}

// Status is the polling view of the single active menu upload.
type Status struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// Repository is the persistence contract for the menu upload pipeline and the
// active catalog. One menu per restaurant: UpsertUpload replaces any previous
// non-parsed upload.
type Repository interface {
	UpsertUpload(ctx context.Context, objectURL, filename string) (int, error)

	// ClaimPending atomically claims the next UPLOADED row for parsing.
	// Returns nil when no work is available (not an error).
	ClaimPending(ctx context.Context) (*Upload, error)

	MarkParsed(ctx context.Context, id int, entries []Entry) error
	MarkFailed(ctx context.Context, id int, reason string) error

	// Retry resets a FAILED upload back to UPLOADED.
	Retry(ctx context.Context) error

	GetStatus(ctx context.Context) (*Status, error)

	// LoadActive returns the entries of the latest PARSED upload,
	// or ErrNoCatalog when none exists.
	LoadActive(ctx context.Context) ([]Entry, error)
}
