package order

import (
	"fmt"
	"strings"

	"github.com/rinisriranganathan/RestBot/internal/catalog"
)

// Result carries the outcome of one reconciliation batch. Actions are
// per-instruction messages in input order; NotFound collects names that
// produced no ledger effect. The reconciler performs no I/O; the caller
// decides where the messages go.
type Result struct {
	Ledger   Ledger
	Actions  []string
	NotFound []string

	batchSize int
	removal   bool
}

// ApplyAdds merges a batch of add instructions into the ledger and returns a
// new ledger. Per instruction, in input order:
//
//  1. Resolve the item name against the catalog; unknown names are collected,
//     never fatal.
//  2. An existing line with the same (id, notes) key is incremented.
//  3. A customized instruction that finds only a plain line transforms it:
//     the plain line is dropped outright - its full prior quantity is
//     discarded, not split - and the instruction's quantity lands on the
//     customized line (existing or new). The customization is taken to apply
//     to the whole order of that item.
//     TODO(product): confirm the discard-vs-split choice with the floor staff;
//     the transform deliberately loses the plain quantity today.
//  4. Otherwise a new line is appended.
func ApplyAdds(ledger Ledger, instrs []Instruction, idx *catalog.Index) Result {
	res := Result{Ledger: ledger.Clone(), batchSize: len(instrs)}

	for _, ins := range instrs {
		entry := idx.ResolveName(ins.ItemName)
		if entry == nil {
			res.NotFound = append(res.NotFound, ins.ItemName)
			continue
		}

		qty := ins.Quantity
		if qty < 1 {
			qty = 1
		}
		notes := NormalizeNotes(ins.Notes)
		incoming := newLine(entry, qty, notes)

		if i := res.Ledger.find(entry.ID, notes); i >= 0 {
			res.Ledger[i].Quantity += qty
			res.Actions = append(res.Actions,
				fmt.Sprintf("Increased quantity of %s by %d.", incoming.DisplayName(), qty))
			continue
		}

		if notes != "" {
			if p := res.Ledger.find(entry.ID, ""); p >= 0 {
				plain := res.Ledger[p]
				res.Ledger = append(res.Ledger[:p], res.Ledger[p+1:]...)

				if c := res.Ledger.find(entry.ID, notes); c >= 0 {
					res.Ledger[c].Quantity += qty
				} else {
					res.Ledger = append(res.Ledger, incoming)
				}
				res.Actions = append(res.Actions,
					fmt.Sprintf("Changed %s (initially qty %d) to %d x %s.",
						plain.DisplayName(), plain.Quantity, qty, incoming.DisplayName()))
				continue
			}
		}

		res.Ledger = append(res.Ledger, incoming)
		res.Actions = append(res.Actions,
			fmt.Sprintf("Added %d x %s.", qty, incoming.DisplayName()))
	}

	return res
}

// ApplyRemoves takes quantities off ledger lines. Matching is strictly by the
// exact (id, notes) key: no fuzzy fallback across customization variants.
// Removing at least a line's quantity deletes the line; removing less leaves
// the remainder. Negative quantities are never observable.
func ApplyRemoves(ledger Ledger, instrs []Instruction, idx *catalog.Index) Result {
	res := Result{Ledger: ledger.Clone(), batchSize: len(instrs), removal: true}

	for _, ins := range instrs {
		entry := idx.ResolveName(ins.ItemName)
		if entry == nil {
			res.NotFound = append(res.NotFound,
				fmt.Sprintf("'%s' (not on menu)", ins.ItemName))
			continue
		}

		notes := NormalizeNotes(ins.Notes)
		i := res.Ledger.find(entry.ID, notes)
		if i < 0 {
			name := entry.Name
			if notes != "" {
				name += fmt.Sprintf(" (Custom: %s)", notes)
			}
			res.NotFound = append(res.NotFound,
				fmt.Sprintf("'%s' (not in current order or exact customization not found)", name))
			continue
		}

		qty := ins.Quantity
		if qty < 1 {
			qty = 1
		}

		line := res.Ledger[i]
		if qty >= line.Quantity {
			res.Ledger = append(res.Ledger[:i], res.Ledger[i+1:]...)
			res.Actions = append(res.Actions,
				fmt.Sprintf("Removed all %s", line.DisplayName()))
		} else {
			res.Ledger[i].Quantity -= qty
			res.Actions = append(res.Actions,
				fmt.Sprintf("Reduced %s by %d", line.DisplayName(), qty))
		}
	}

	return res
}

// SystemMessages assembles the user-facing messages for this batch: the
// per-instruction actions, one aggregate not-found line, and a generic
// fallback when a non-empty batch achieved nothing at all.
func (r Result) SystemMessages() []string {
	msgs := append([]string(nil), r.Actions...)

	if len(r.NotFound) > 0 {
		if r.removal {
			msgs = append(msgs,
				fmt.Sprintf("Could not process removals for: %s.", strings.Join(r.NotFound, ", ")))
		} else {
			msgs = append(msgs,
				fmt.Sprintf("Could not find: %s on the menu.", strings.Join(r.NotFound, ", ")))
		}
	}

	if len(r.Actions) == 0 && len(r.NotFound) == 0 && r.batchSize > 0 {
		if r.removal {
			msgs = append(msgs, "I couldn't identify any items from your request to remove.")
		} else {
			msgs = append(msgs, "I couldn't identify any items from your request to add to the order.")
		}
	}

	return msgs
}
