package bill

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rinisriranganathan/RestBot/internal/money"
	"github.com/rinisriranganathan/RestBot/internal/order"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, snap Snapshot) error {
	lines, err := json.Marshal(snap.Lines)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO bills (id, table_number, lines, subtotal, tax, total, tax_basis_points, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, snap.ID, snap.Table, lines, int64(snap.Subtotal), int64(snap.Tax), int64(snap.Total), snap.TaxBasisPoints, snap.CreatedAt)

	return err
}

func (r *PostgresRepository) Latest(ctx context.Context) (*Snapshot, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, table_number, lines, subtotal, tax, total, tax_basis_points, created_at
		FROM bills
		ORDER BY created_at DESC
		LIMIT 1
	`))
}

func (r *PostgresRepository) LatestForTable(ctx context.Context, table string) (*Snapshot, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, table_number, lines, subtotal, tax, total, tax_basis_points, created_at
		FROM bills
		WHERE table_number = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, table))
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*Snapshot, error) {
	var (
		snap                 Snapshot
		lines                []byte
		subtotal, tax, total int64
	)

	err := row.Scan(&snap.ID, &snap.Table, &lines, &subtotal, &tax, &total, &snap.TaxBasisPoints, &snap.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoBills
	}
	if err != nil {
		return nil, err
	}

	var ledger order.Ledger
	if err := json.Unmarshal(lines, &ledger); err != nil {
		return nil, err
	}

	snap.Lines = ledger
	snap.Subtotal = money.Amount(subtotal)
	snap.Tax = money.Amount(tax)
	snap.Total = money.Amount(total)
	return &snap, nil
}
