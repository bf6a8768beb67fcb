package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage is the object-store contract the service needs for menu workbooks.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// UploadMenu stores the workbook and queues it for ingestion.
func (s *Service) UploadMenu(
	ctx context.Context,
	file io.Reader,
	filename string,
	contentType string,
) (int, string, error) {

	if err := ValidateFileExtension(filename); err != nil {
		return 0, "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("menus/%s%s", uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file, contentType)
	if err != nil {
		return 0, "", fmt.Errorf("store menu workbook: %w", err)
	}

	id, err := s.repo.UpsertUpload(ctx, url, filename)
	if err != nil {
		return 0, "", err
	}
	return id, key, nil
}

func (s *Service) GetStatus(ctx context.Context) (*Status, error) {
	return s.repo.GetStatus(ctx)
}

func (s *Service) Retry(ctx context.Context) error {
	return s.repo.Retry(ctx)
}

// ActiveIndex loads the latest parsed catalog, falling back to the built-in
// default menu when none has been ingested yet. Whichever list wins becomes
// an immutable Index shared read-only by every session started after this call.
func (s *Service) ActiveIndex(ctx context.Context) *Index {
	entries, err := s.repo.LoadActive(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoCatalog) {
			log.Printf("catalog: loading active menu failed, using defaults: %v", err)
		}
		return NewIndex(DefaultEntries())
	}
	return NewIndex(entries)
}
