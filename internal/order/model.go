package order

import (
	"fmt"
	"strings"

	"github.com/rinisriranganathan/RestBot/internal/catalog"
	"github.com/rinisriranganathan/RestBot/internal/money"
)

// Line is one row of the ledger: a menu entry at a quantity, optionally
// carrying a customization note. Identity is (EntryID, normalized Notes);
// two lines with the same entry but different notes are distinct and are
// never merged. A line with quantity <= 0 must not exist.
type Line struct {
	EntryID       string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Image         string       `json:"image,omitempty"`
	Category      string       `json:"category,omitempty"`
	TasteProfiles []string     `json:"taste_profiles,omitempty"`
	Price         money.Amount `json:"price"`
	Pieces        int          `json:"pieces,omitempty"`
	Quantity      int          `json:"quantity"`
	Notes         string       `json:"customization_notes,omitempty"`
}

// Ledger is the order for one table session. It is passed by value through
// the reconciler, which returns a fresh ledger instead of mutating shared
// state.
type Ledger []Line

// Instruction is a single add or remove directive, as produced by the
// command interpreter or extracted from a model reply. Transient: consumed
// by one reconciliation and not retained.
type Instruction struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"customizationNotes,omitempty"`
}

// NormalizeNotes collapses absent and blank customization notes into the
// empty string so both mean "no customization".
func NormalizeNotes(notes string) string {
	return strings.TrimSpace(notes)
}

func newLine(e *catalog.Entry, qty int, notes string) Line {
	return Line{
		EntryID:       e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Image:         e.Image,
		Category:      string(e.Category),
		TasteProfiles: append([]string(nil), e.TasteProfiles...),
		Price:         e.Price,
		Pieces:        e.Pieces,
		Quantity:      qty,
		Notes:         NormalizeNotes(notes),
	}
}

// DisplayName annotates the item name with piece count and customization,
// e.g. "Gulab Jamun (2 pcs) (Custom: less sugar)".
func (l Line) DisplayName() string {
	name := l.Name
	if l.Pieces > 0 {
		suffix := "pc"
		if l.Pieces > 1 {
			suffix = "pcs"
		}
		name = fmt.Sprintf("%s (%d %s)", name, l.Pieces, suffix)
	}
	if l.Notes != "" {
		name = fmt.Sprintf("%s (Custom: %s)", name, l.Notes)
	}
	return name
}

func (l Line) matches(entryID, notes string) bool {
	return l.EntryID == entryID && l.Notes == NormalizeNotes(notes)
}

// Clone deep-copies the ledger so snapshots cannot be altered by later
// reconciliations.
func (lg Ledger) Clone() Ledger {
	out := make(Ledger, len(lg))
	for i, l := range lg {
		l.TasteProfiles = append([]string(nil), l.TasteProfiles...)
		out[i] = l
	}
	return out
}

// Subtotal sums unit price times quantity across all lines, in paise.
func (lg Ledger) Subtotal() money.Amount {
	var total money.Amount
	for _, l := range lg {
		total += l.Price.Mul(l.Quantity)
	}
	return total
}

func (lg Ledger) IsEmpty() bool {
	return len(lg) == 0
}

func (lg Ledger) find(entryID, notes string) int {
	for i, l := range lg {
		if l.matches(entryID, notes) {
			return i
		}
	}
	return -1
}
