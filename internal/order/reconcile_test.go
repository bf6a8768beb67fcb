package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinisriranganathan/RestBot/internal/catalog"
)

func testIndex() *catalog.Index {
	return catalog.NewIndex(catalog.DefaultEntries())
}

func keyCount(lg Ledger) map[[2]string]int {
	out := make(map[[2]string]int)
	for _, l := range lg {
		out[[2]string{l.EntryID, l.Notes}]++
	}
	return out
}

func TestApplyAdds_NewLine(t *testing.T) {
	idx := testIndex()

	res := ApplyAdds(nil, []Instruction{
		{ItemName: "paneer butter masala", Quantity: 2},
	}, idx)

	require.Len(t, res.Ledger, 1)
	assert.Equal(t, "1", res.Ledger[0].EntryID)
	assert.Equal(t, 2, res.Ledger[0].Quantity)
	assert.Equal(t, "", res.Ledger[0].Notes)
	assert.Empty(t, res.NotFound)
	require.Len(t, res.Actions, 1)
	assert.Contains(t, res.Actions[0], "Added 2 x Paneer Butter Masala")
}

func TestApplyAdds_RepeatedAddsAccumulate(t *testing.T) {
	idx := testIndex()

	res := ApplyAdds(nil, []Instruction{{ItemName: "Chai", Quantity: 2}}, idx)
	res = ApplyAdds(res.Ledger, []Instruction{{ItemName: "chai", Quantity: 3}}, idx)

	require.Len(t, res.Ledger, 1)
	assert.Equal(t, 5, res.Ledger[0].Quantity)
	assert.Contains(t, res.Actions[0], "Increased quantity of Chai by 3")
}

func TestApplyAdds_KeyUniqueness(t *testing.T) {
	idx := testIndex()

	res := ApplyAdds(nil, []Instruction{
		{ItemName: "Chai", Quantity: 1},
		{ItemName: "Chai", Quantity: 1, Notes: "extra sweet"},
		{ItemName: "Chai", Quantity: 1, Notes: "extra sweet"},
		{ItemName: "Samosa", Quantity: 2},
		{ItemName: "Samosa", Quantity: 1},
	}, idx)

	for key, n := range keyCount(res.Ledger) {
		assert.Equal(t, 1, n, "duplicate ledger line for %v", key)
	}
}

func TestApplyAdds_CustomizationTransformDiscardsPlainQuantity(t *testing.T) {
	idx := testIndex()

	// Plain Chai qty 2, then one customized Chai: the plain line is gone
	// entirely, not split into a remainder.
	res := ApplyAdds(nil, []Instruction{{ItemName: "Chai", Quantity: 2}}, idx)
	res = ApplyAdds(res.Ledger, []Instruction{
		{ItemName: "Chai", Quantity: 1, Notes: "extra sweet"},
	}, idx)

	require.Len(t, res.Ledger, 1)
	assert.Equal(t, "extra sweet", res.Ledger[0].Notes)
	assert.Equal(t, 1, res.Ledger[0].Quantity)
	require.Len(t, res.Actions, 1)
	assert.Contains(t, res.Actions[0], "Changed Chai (initially qty 2) to 1 x Chai (Custom: extra sweet).")
}

func TestApplyAdds_ExactMatchWinsOverTransform(t *testing.T) {
	idx := testIndex()

	res := ApplyAdds(nil, []Instruction{
		{ItemName: "Chai", Quantity: 1, Notes: "extra sweet"},
		{ItemName: "Chai", Quantity: 2},
	}, idx)
	require.Len(t, res.Ledger, 2)

	// With a customized line already present, a matching customized add
	// increments it directly; the plain line is left alone.
	res = ApplyAdds(res.Ledger, []Instruction{
		{ItemName: "Chai", Quantity: 3, Notes: "extra sweet"},
	}, idx)

	require.Len(t, res.Ledger, 2)
	i := res.Ledger.find("18", "extra sweet")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 4, res.Ledger[i].Quantity)
	p := res.Ledger.find("18", "")
	require.GreaterOrEqual(t, p, 0)
	assert.Equal(t, 2, res.Ledger[p].Quantity)
}

func TestApplyAdds_DistinctCustomizationsCoexist(t *testing.T) {
	idx := testIndex()

	res := ApplyAdds(nil, []Instruction{
		{ItemName: "Paneer Butter Masala", Quantity: 1, Notes: "mild"},
		{ItemName: "Paneer Butter Masala", Quantity: 2, Notes: "spicy"},
	}, idx)

	require.Len(t, res.Ledger, 2)
	assert.NotEqual(t, res.Ledger[0].Notes, res.Ledger[1].Notes)
}

func TestApplyAdds_UnknownNameIsCollectedNotFatal(t *testing.T) {
	idx := testIndex()

	res := ApplyAdds(nil, []Instruction{
		{ItemName: "Pizza Margherita", Quantity: 1},
		{ItemName: "Chai", Quantity: 1},
	}, idx)

	require.Len(t, res.Ledger, 1)
	assert.Equal(t, []string{"Pizza Margherita"}, res.NotFound)

	msgs := res.SystemMessages()
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[len(msgs)-1], "Could not find: Pizza Margherita on the menu.")
}

func TestApplyAdds_DefaultQuantityIsOne(t *testing.T) {
	idx := testIndex()

	res := ApplyAdds(nil, []Instruction{{ItemName: "Chai"}}, idx)

	require.Len(t, res.Ledger, 1)
	assert.Equal(t, 1, res.Ledger[0].Quantity)
}

func TestApplyAdds_DoesNotMutateInput(t *testing.T) {
	idx := testIndex()

	orig := ApplyAdds(nil, []Instruction{{ItemName: "Chai", Quantity: 2}}, idx).Ledger
	_ = ApplyAdds(orig, []Instruction{{ItemName: "Chai", Quantity: 5}}, idx)

	assert.Equal(t, 2, orig[0].Quantity)
}

func TestApplyRemoves_PartialLeavesRemainder(t *testing.T) {
	idx := testIndex()

	lg := ApplyAdds(nil, []Instruction{{ItemName: "Samosa", Quantity: 5}}, idx).Ledger
	res := ApplyRemoves(lg, []Instruction{{ItemName: "samosa", Quantity: 2}}, idx)

	require.Len(t, res.Ledger, 1)
	assert.Equal(t, 3, res.Ledger[0].Quantity)
	assert.Contains(t, res.Actions[0], "Reduced Samosa (1 pc) by 2")
}

func TestApplyRemoves_AtOrAboveQuantityDeletesLine(t *testing.T) {
	idx := testIndex()

	lg := ApplyAdds(nil, []Instruction{{ItemName: "Samosa", Quantity: 2}}, idx).Ledger
	res := ApplyRemoves(lg, []Instruction{{ItemName: "Samosa", Quantity: 7}}, idx)

	assert.Empty(t, res.Ledger)
	assert.Contains(t, res.Actions[0], "Removed all Samosa")
}

func TestApplyRemoves_ItemNeverOrdered(t *testing.T) {
	idx := testIndex()

	lg := ApplyAdds(nil, []Instruction{{ItemName: "Chai", Quantity: 1}}, idx).Ledger
	res := ApplyRemoves(lg, []Instruction{{ItemName: "Mango Lassi", Quantity: 1}}, idx)

	assert.Equal(t, lg, res.Ledger)
	require.Len(t, res.NotFound, 1)
	assert.Contains(t, res.NotFound[0], "not in current order")
}

func TestApplyRemoves_NoFuzzyMatchAcrossCustomizations(t *testing.T) {
	idx := testIndex()

	lg := ApplyAdds(nil, []Instruction{
		{ItemName: "Chai", Quantity: 2, Notes: "extra sweet"},
	}, idx).Ledger

	// A plain removal must not touch the customized line.
	res := ApplyRemoves(lg, []Instruction{{ItemName: "Chai", Quantity: 1}}, idx)

	assert.Equal(t, lg, res.Ledger)
	require.Len(t, res.NotFound, 1)
	assert.Contains(t, res.NotFound[0], "exact customization not found")
}

func TestApplyRemoves_UnknownNameAnnotated(t *testing.T) {
	idx := testIndex()

	res := ApplyRemoves(nil, []Instruction{{ItemName: "Sushi", Quantity: 1}}, idx)

	require.Len(t, res.NotFound, 1)
	assert.Equal(t, "'Sushi' (not on menu)", res.NotFound[0])
}

func TestSystemMessages_GenericFallback(t *testing.T) {
	res := Result{batchSize: 1}
	msgs := res.SystemMessages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "couldn't identify any items")
}

func TestSystemMessages_EmptyBatchStaysSilent(t *testing.T) {
	res := Result{}
	assert.Empty(t, res.SystemMessages())
}
