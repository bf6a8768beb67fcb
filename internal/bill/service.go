package bill

import (
	"context"
	"io"
	"log"
	"strings"
)

// Storage uploads receipt objects. Satisfied by the R2 client.
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

// Finalize records a confirmed bill and archives its plain-text receipt,
// returning the receipt URL. Receipt upload failures are logged and leave the
// URL empty but do not fail the confirmation; the bill row is the source of
// truth.
func (s *Service) Finalize(ctx context.Context, snap Snapshot) (string, error) {
	if err := s.repo.Save(ctx, snap); err != nil {
		return "", err
	}

	if s.storage == nil {
		return "", nil
	}

	receipt := strings.NewReader(snap.ReceiptText())
	url, err := s.storage.Upload(ctx, snap.ReceiptKey(), receipt, "text/plain; charset=utf-8")
	if err != nil {
		log.Printf("Failed to upload receipt for bill %s: %v", snap.ID, err)
		return "", nil
	}
	return url, nil
}

func (s *Service) Latest(ctx context.Context) (*Snapshot, error) {
	return s.repo.Latest(ctx)
}

func (s *Service) LatestForTable(ctx context.Context, table string) (*Snapshot, error) {
	return s.repo.LatestForTable(ctx, table)
}
