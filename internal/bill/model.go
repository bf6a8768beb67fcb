// Package bill computes and persists finalized bill snapshots.
package bill

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rinisriranganathan/RestBot/internal/money"
	"github.com/rinisriranganathan/RestBot/internal/order"
)

// DefaultTaxBasisPoints is 5% GST.
const DefaultTaxBasisPoints = 500

// Snapshot is an immutable copy of an order at checkout time. The lines are
// deep-copied so later edits to the live order cannot change a presented bill.
type Snapshot struct {
	ID             string       `json:"id"`
	Table          string       `json:"table"`
	Lines          order.Ledger `json:"lines"`
	Subtotal       money.Amount `json:"subtotal"`
	Tax            money.Amount `json:"tax"`
	Total          money.Amount `json:"total"`
	TaxBasisPoints int64        `json:"tax_basis_points"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Compute builds a bill snapshot from the current ledger. Totals are derived
// from the snapshot's own lines, so recomputing from the same ledger is
// idempotent.
func Compute(ledger order.Ledger, taxBasisPoints int64, table string) Snapshot {
	lines := ledger.Clone()
	subtotal := lines.Subtotal()
	tax := subtotal.ApplyBasisPoints(taxBasisPoints)

	return Snapshot{
		ID:             uuid.New().String(),
		Table:          table,
		Lines:          lines,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          subtotal + tax,
		TaxBasisPoints: taxBasisPoints,
		CreatedAt:      time.Now().UTC(),
	}
}

// ReceiptText renders the snapshot as a plain-text receipt.
func (s Snapshot) ReceiptText() string {
	var b strings.Builder

	b.WriteString("🧾 Fire & Froast Bill\n")
	fmt.Fprintf(&b, "Table No: %s\n", s.Table)
	b.WriteString("----------------------\n")

	for _, line := range s.Lines {
		fmt.Fprintf(&b, "%d x %s = %s\n", line.Quantity, line.DisplayName(), line.Price.Mul(line.Quantity))
	}

	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", s.Subtotal)
	fmt.Fprintf(&b, "GST: %s\n", s.Tax)
	fmt.Fprintf(&b, "Total: %s\n", s.Total)
	fmt.Fprintf(&b, "Time: %s\n", s.CreatedAt.Format("02/01/2006, 3:04:05 pm"))

	return b.String()
}

// ReceiptKey is the object name a stored receipt is uploaded under.
func (s Snapshot) ReceiptKey() string {
	ts := strings.NewReplacer(":", "-", ".", "-").Replace(s.CreatedAt.Format(time.RFC3339))
	return fmt.Sprintf("receipts/Fire_Froast_Table_%s_Order_%s.txt", s.Table, ts)
}
