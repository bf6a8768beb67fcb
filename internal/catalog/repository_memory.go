package catalog

import (
	"context"
	"errors"
	"sync"
)

// InMemoryRepository backs tests and menu-less deployments.
type InMemoryRepository struct {
	mu      sync.Mutex
	nextID  int
	current *memUpload
}

type memUpload struct {
	id        int
	objectURL string
	filename  string
	status    string
	reason    *string
	entries   []Entry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) UpsertUpload(_ context.Context, objectURL, filename string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		r.current = &memUpload{id: r.nextID}
		r.nextID++
	}
	r.current.objectURL = objectURL
	r.current.filename = filename
	r.current.status = StatusUploaded
	r.current.reason = nil
	r.current.entries = nil
	return r.current.id, nil
}

func (r *InMemoryRepository) ClaimPending(_ context.Context) (*Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || r.current.status != StatusUploaded {
		return nil, nil
	}
	r.current.status = StatusParsing
	return &Upload{ID: r.current.id, ObjectURL: r.current.objectURL, Filename: r.current.filename}, nil
}

func (r *InMemoryRepository) MarkParsed(_ context.Context, id int, entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || r.current.id != id {
		return errors.New("no menu upload row updated")
	}
	r.current.status = StatusParsed
	r.current.reason = nil
	r.current.entries = entries
	return nil
}

func (r *InMemoryRepository) MarkFailed(_ context.Context, id int, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || r.current.id != id {
		return errors.New("no menu upload row updated")
	}
	r.current.status = StatusFailed
	r.current.reason = &reason
	return nil
}

func (r *InMemoryRepository) Retry(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || r.current.status != StatusFailed {
		return errors.New("menu upload not in FAILED state or not found")
	}
	r.current.status = StatusUploaded
	r.current.reason = nil
	r.current.entries = nil
	return nil
}

func (r *InMemoryRepository) GetStatus(_ context.Context) (*Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil, errors.New("no menu uploaded")
	}
	return &Status{Status: r.current.status, Reason: r.current.reason}, nil
}

func (r *InMemoryRepository) LoadActive(_ context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || r.current.status != StatusParsed || len(r.current.entries) == 0 {
		return nil, ErrNoCatalog
	}
	return r.current.entries, nil
}
