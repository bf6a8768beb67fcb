package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) UpsertUpload(
	ctx context.Context,
	objectURL string,
	filename string,
) (int, error) {

	var (
		id     int
		status string
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, status
		FROM menu_uploads
		ORDER BY updated_at DESC
		LIMIT 1
	`).Scan(&id, &status)

	if err == nil {
		// Replace the existing upload; a new workbook supersedes whatever
		// state the previous one was in, parsed included.
		_, err := r.db.Exec(ctx, `
			UPDATE menu_uploads
			SET object_url = $1,
			    original_filename = $2,
			    status = $3,
			    parsed_data = NULL,
			    failure_reason = NULL,
			    updated_at = now()
			WHERE id = $4
		`, objectURL, filename, StatusUploaded, id)
		return id, err
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO menu_uploads (object_url, original_filename, status, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id
	`, objectURL, filename, StatusUploaded).Scan(&id)

	return id, err
}

func (r *PostgresRepository) ClaimPending(ctx context.Context) (*Upload, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var u Upload
	err = tx.QueryRow(ctx, `
		SELECT id, object_url, original_filename
		FROM menu_uploads
		WHERE status = $1
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, StatusUploaded).Scan(&u.ID, &u.ObjectURL, &u.Filename)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE menu_uploads
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, StatusParsing, u.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) MarkParsed(ctx context.Context, id int, entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET parsed_data = $1,
		    status = $2,
		    failure_reason = NULL,
		    updated_at = now()
		WHERE id = $3
	`, data, StatusParsed, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("no menu upload row updated")
	}
	return nil
}

func (r *PostgresRepository) MarkFailed(ctx context.Context, id int, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = $1,
		    failure_reason = $2,
		    updated_at = now()
		WHERE id = $3
	`, StatusFailed, reason, id)
	return err
}

func (r *PostgresRepository) Retry(ctx context.Context) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = $1,
		    parsed_data = NULL,
		    failure_reason = NULL,
		    updated_at = now()
		WHERE status = $2
	`, StatusUploaded, StatusFailed)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("menu upload not in FAILED state or not found")
	}
	return nil
}

func (r *PostgresRepository) GetStatus(ctx context.Context) (*Status, error) {
	var s Status
	err := r.db.QueryRow(ctx, `
		SELECT status, failure_reason
		FROM menu_uploads
		ORDER BY updated_at DESC
		LIMIT 1
	`).Scan(&s.Status, &s.Reason)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.New("no menu uploaded")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) LoadActive(ctx context.Context) ([]Entry, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `
		SELECT parsed_data
		FROM menu_uploads
		WHERE status = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, StatusParsed).Scan(&data)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoCatalog
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoCatalog
	}
	return entries, nil
}
