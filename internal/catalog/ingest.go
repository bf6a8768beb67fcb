package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Ingester is the background worker that turns uploaded workbooks into the
// active catalog. It polls for UPLOADED rows, downloads the object, parses it
// and marks the row PARSED or FAILED. Parse problems never stop the loop.
type Ingester struct {
	repo   Repository
	client *http.Client
}

func NewIngester(repo Repository) *Ingester {
	return &Ingester{
		repo:   repo,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Run polls until ctx is cancelled. Started as a goroutine from cmd/api.
func (in *Ingester) Run(ctx context.Context, interval time.Duration) {
	log.Println("catalog ingester started")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("catalog ingester stopped")
			return
		case <-ticker.C:
			if err := in.ProcessOne(ctx); err != nil {
				log.Printf("catalog ingest error: %v", err)
			}
		}
	}
}

// ProcessOne claims and processes at most one pending upload.
// Returns nil when there is no work.
func (in *Ingester) ProcessOne(ctx context.Context) error {
	job, err := in.repo.ClaimPending(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	data, err := in.fetch(ctx, job.ObjectURL)
	if err != nil {
		log.Printf("catalog ingest: fetch failed id=%d: %v", job.ID, err)
		return in.repo.MarkFailed(ctx, job.ID, err.Error())
	}

	entries, err := ParseWorkbook(bytes.NewReader(data))
	if err != nil {
		log.Printf("catalog ingest: parse failed id=%d file=%s: %v", job.ID, job.Filename, err)
		return in.repo.MarkFailed(ctx, job.ID, err.Error())
	}

	log.Printf("catalog ingest: parsed id=%d file=%s items=%d", job.ID, job.Filename, len(entries))
	return in.repo.MarkParsed(ctx, job.ID, entries)
}

func (in *Ingester) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := in.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download workbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download workbook: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
