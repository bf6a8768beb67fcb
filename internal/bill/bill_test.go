package bill

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinisriranganathan/RestBot/internal/money"
	"github.com/rinisriranganathan/RestBot/internal/order"
)

type failingStorage struct{}

func (failingStorage) Upload(context.Context, string, io.Reader, string) (string, error) {
	return "", errors.New("bucket unavailable")
}

func paneerLedger(t *testing.T) order.Ledger {
	t.Helper()
	var ledger order.Ledger
	ledger = append(ledger, order.Line{
		EntryID:  "1",
		Name:     "Paneer Butter Masala",
		Price:    money.MustParse("₹180.00"),
		Quantity: 2,
	})
	return ledger
}

func TestCompute_FivePercentGST(t *testing.T) {
	snap := Compute(paneerLedger(t), DefaultTaxBasisPoints, "7")

	assert.Equal(t, "₹360.00", snap.Subtotal.String())
	assert.Equal(t, "₹18.00", snap.Tax.String())
	assert.Equal(t, "₹378.00", snap.Total.String())
	assert.Equal(t, "7", snap.Table)
	assert.NotEmpty(t, snap.ID)
}

func TestCompute_SnapshotIsDetachedFromLedger(t *testing.T) {
	ledger := paneerLedger(t)
	snap := Compute(ledger, DefaultTaxBasisPoints, "3")

	ledger[0].Quantity = 99

	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, "₹360.00", snap.Subtotal.String())
}

func TestCompute_Idempotent(t *testing.T) {
	ledger := paneerLedger(t)
	first := Compute(ledger, DefaultTaxBasisPoints, "3")
	second := Compute(ledger, DefaultTaxBasisPoints, "3")

	assert.Equal(t, first.Subtotal, second.Subtotal)
	assert.Equal(t, first.Tax, second.Tax)
	assert.Equal(t, first.Total, second.Total)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestReceiptText(t *testing.T) {
	snap := Compute(paneerLedger(t), DefaultTaxBasisPoints, "7")
	text := snap.ReceiptText()

	assert.Contains(t, text, "Fire & Froast Bill")
	assert.Contains(t, text, "Table No: 7")
	assert.Contains(t, text, "2 x Paneer Butter Masala = ₹360.00")
	assert.Contains(t, text, "Subtotal: ₹360.00")
	assert.Contains(t, text, "GST: ₹18.00")
	assert.Contains(t, text, "Total: ₹378.00")
}

func TestMemoryRepository_LatestPerTable(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := Compute(paneerLedger(t), DefaultTaxBasisPoints, "1")
	second := Compute(paneerLedger(t), DefaultTaxBasisPoints, "2")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	forTable, err := repo.LatestForTable(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, forTable.ID)

	_, err = repo.LatestForTable(ctx, "9")
	assert.ErrorIs(t, err, ErrNoBills)
}

func TestService_FinalizeSurvivesStorageFailure(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, failingStorage{})

	url, err := svc.Finalize(context.Background(), Compute(paneerLedger(t), DefaultTaxBasisPoints, "4"))
	require.NoError(t, err)
	assert.Empty(t, url)

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4", latest.Table)
}
