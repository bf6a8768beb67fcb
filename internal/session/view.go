package session

import (
	"github.com/rinisriranganathan/RestBot/internal/bill"
	"github.com/rinisriranganathan/RestBot/internal/order"
)

// LineView is one order line shaped for display. Prices are formatted
// strings; arithmetic stays in the ledger.
type LineView struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type OrderView struct {
	Lines    []LineView `json:"lines"`
	Subtotal string     `json:"subtotal"`
	Empty    bool       `json:"empty"`
}

type BillView struct {
	ID       string     `json:"id"`
	Table    string     `json:"table"`
	Lines    []LineView `json:"lines"`
	Subtotal string     `json:"subtotal"`
	Tax      string     `json:"tax"`
	Total    string     `json:"total"`
	// ReceiptURL is set once the bill is confirmed and its receipt archived.
	ReceiptURL string `json:"receipt_url,omitempty"`
}

// Response is what one user message produces: system/assistant messages in
// order, the refreshed order view, and the bill when one is in review.
type Response struct {
	Messages    []string         `json:"messages"`
	Suggestions []SuggestionView `json:"suggestions,omitempty"`
	Order       OrderView        `json:"order"`
	Bill        *BillView        `json:"bill,omitempty"`
	Phase       Phase            `json:"phase"`
}

// SuggestionView is a model-suggested item resolved against the catalog.
type SuggestionView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Reason string `json:"reason"`
}

func lineViews(ledger order.Ledger) []LineView {
	views := make([]LineView, 0, len(ledger))
	for _, l := range ledger {
		views = append(views, LineView{
			Name:      l.DisplayName(),
			Quantity:  l.Quantity,
			UnitPrice: l.Price.String(),
			LineTotal: l.Price.Mul(l.Quantity).String(),
		})
	}
	return views
}

func orderView(ledger order.Ledger) OrderView {
	return OrderView{
		Lines:    lineViews(ledger),
		Subtotal: ledger.Subtotal().String(),
		Empty:    ledger.IsEmpty(),
	}
}

func billView(snap *bill.Snapshot) *BillView {
	if snap == nil {
		return nil
	}
	return &BillView{
		ID:       snap.ID,
		Table:    snap.Table,
		Lines:    lineViews(snap.Lines),
		Subtotal: snap.Subtotal.String(),
		Tax:      snap.Tax.String(),
		Total:    snap.Total.String(),
	}
}
