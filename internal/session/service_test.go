package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rinisriranganathan/RestBot/internal/bill"
	"github.com/rinisriranganathan/RestBot/internal/catalog"
	"github.com/rinisriranganathan/RestBot/internal/llm"
)

type stubCatalog struct {
	idx *catalog.Index
}

func (s stubCatalog) ActiveIndex(context.Context) *catalog.Index { return s.idx }

type stubBills struct {
	saved      []bill.Snapshot
	receiptURL string
	err        error
}

func (s *stubBills) Finalize(_ context.Context, snap bill.Snapshot) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, snap)
	return s.receiptURL, nil
}

// scriptedClient returns canned raw replies in order.
type scriptedClient struct {
	replies []string
	calls   int
}

func (c *scriptedClient) Chat(context.Context, string, []llm.Message, string) (string, error) {
	if c.calls >= len(c.replies) {
		return "", errors.New("no scripted reply left")
	}
	reply := c.replies[c.calls]
	c.calls++
	return reply, nil
}

func newTestService(t *testing.T, client llm.Client, bills *stubBills) (*Service, *Session) {
	t.Helper()
	idx := catalog.NewIndex(catalog.DefaultEntries())
	svc := NewService(NewManager(), stubCatalog{idx: idx}, bills, client, bill.DefaultTaxBasisPoints)
	sess := svc.Start("7")
	return svc, sess
}

func TestHandleMessage_OrderIntentFillsLedger(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`Two Paneer Butter Masala coming up! %%%ORDER_INTENT%%%[{"itemName": "Paneer Butter Masala", "quantity": 2}]`,
	}}
	svc, sess := newTestService(t, client, &stubBills{})

	resp, err := svc.HandleMessage(context.Background(), sess.ID, "two paneer butter masala please")
	require.NoError(t, err)

	assert.Equal(t, PhaseShopping, resp.Phase)
	require.Len(t, resp.Order.Lines, 1)
	assert.Equal(t, 2, resp.Order.Lines[0].Quantity)
	assert.Equal(t, "₹360.00", resp.Order.Subtotal)
	assert.Contains(t, resp.Messages[0], "coming up")
}

func TestHandleMessage_CheckoutFlowEndToEnd(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`Done! %%%ORDER_INTENT%%%[{"itemName": "Paneer Butter Masala", "quantity": 2}]`,
	}}
	bills := &stubBills{}
	svc, sess := newTestService(t, client, bills)
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, sess.ID, "paneer please")
	require.NoError(t, err)

	resp, err := svc.HandleMessage(ctx, sess.ID, "checkout")
	require.NoError(t, err)
	assert.Equal(t, PhaseCheckoutPending, resp.Phase)

	resp, err = svc.HandleMessage(ctx, sess.ID, "confirmorder")
	require.NoError(t, err)
	assert.Equal(t, PhaseBillReview, resp.Phase)
	require.NotNil(t, resp.Bill)
	assert.Equal(t, "₹360.00", resp.Bill.Subtotal)
	assert.Equal(t, "₹18.00", resp.Bill.Tax)
	assert.Equal(t, "₹378.00", resp.Bill.Total)

	resp, err = svc.ConfirmBill(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, PhaseOrderFinalized, resp.Phase)
	require.Len(t, bills.saved, 1)
	assert.Equal(t, "7", bills.saved[0].Table)
}

func TestHandleMessage_CheckoutOnEmptyOrderRefused(t *testing.T) {
	svc, sess := newTestService(t, &scriptedClient{}, &stubBills{})

	resp, err := svc.HandleMessage(context.Background(), sess.ID, "/checkout")
	require.NoError(t, err)

	assert.Equal(t, PhaseShopping, resp.Phase)
	assert.Contains(t, resp.Messages[0], "empty")
}

func TestHandleMessage_ConfirmWithoutCheckoutGivesGuidance(t *testing.T) {
	svc, sess := newTestService(t, &scriptedClient{}, &stubBills{})

	resp, err := svc.HandleMessage(context.Background(), sess.ID, "confirmorder")
	require.NoError(t, err)

	assert.Equal(t, PhaseShopping, resp.Phase)
	assert.Contains(t, resp.Messages[0], "start checkout first")
}

func TestHandleMessage_RemovalEmptiesLedgerAndExitsCheckout(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`One chai! %%%ORDER_INTENT%%%[{"itemName": "Chai", "quantity": 1}]`,
	}}
	svc, sess := newTestService(t, client, &stubBills{})
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, sess.ID, "one chai")
	require.NoError(t, err)

	resp, err := svc.HandleMessage(ctx, sess.ID, "checkout")
	require.NoError(t, err)
	require.Equal(t, PhaseCheckoutPending, resp.Phase)

	resp, err = svc.HandleMessage(ctx, sess.ID, "/remove chai")
	require.NoError(t, err)

	assert.True(t, resp.Order.Empty)
	assert.Equal(t, PhaseShopping, resp.Phase, "pending checkout exits when the order empties")
}

func TestHandleMessage_CancelOrder(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`Added! %%%ORDER_INTENT%%%[{"itemName": "Samosa", "quantity": 2}]`,
	}}
	svc, sess := newTestService(t, client, &stubBills{})
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, sess.ID, "samosas")
	require.NoError(t, err)

	_, err = svc.HandleMessage(ctx, sess.ID, "checkout")
	require.NoError(t, err)

	resp, err := svc.HandleMessage(ctx, sess.ID, "cancel order")
	require.NoError(t, err)

	assert.Equal(t, PhaseShopping, resp.Phase)
	assert.Contains(t, resp.Messages[0], "Checkout cancelled")
	assert.False(t, resp.Order.Empty, "cancelling checkout keeps the order")
}

func TestHandleMessage_ModelCheckoutIntentGoesStraightToBill(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`Chai it is! %%%ORDER_INTENT%%%[{"itemName": "Chai", "quantity": 2}]`,
		`Great! Let's get your bill ready. %%%CHECKOUT_INTENT%%%`,
	}}
	svc, sess := newTestService(t, client, &stubBills{})
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, sess.ID, "two chai")
	require.NoError(t, err)

	resp, err := svc.HandleMessage(ctx, sess.ID, "that's all, bill please")
	require.NoError(t, err)

	assert.Equal(t, PhaseBillReview, resp.Phase)
	require.NotNil(t, resp.Bill)
	assert.Equal(t, "₹40.00", resp.Bill.Subtotal)
}

func TestCheckout_GoesStraightToBillReview(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`Done! %%%ORDER_INTENT%%%[{"itemName": "Chai", "quantity": 2}]`,
	}}
	bills := &stubBills{receiptURL: "https://files.example.com/receipts/r.txt"}
	svc, sess := newTestService(t, client, bills)
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, sess.ID, "two chai")
	require.NoError(t, err)

	resp, err := svc.Checkout(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, PhaseBillReview, resp.Phase)
	require.NotNil(t, resp.Bill)
	assert.Equal(t, "₹40.00", resp.Bill.Subtotal)

	resp, err = svc.ConfirmBill(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/receipts/r.txt", resp.Bill.ReceiptURL)
}

func TestCheckout_EmptyOrder(t *testing.T) {
	svc, sess := newTestService(t, &scriptedClient{}, &stubBills{})

	_, err := svc.Checkout(context.Background(), sess.ID)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestHandleMessage_SuggestionsResolvedAgainstCatalog(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`A Mango Lassi pairs well! %%%SUGGESTIONS%%%[{"id": "5", "reason": "Cooling and sweet"}, {"id": "999", "reason": "bogus"}]`,
	}}
	svc, sess := newTestService(t, client, &stubBills{})

	resp, err := svc.HandleMessage(context.Background(), sess.ID, "what goes with samosa?")
	require.NoError(t, err)

	require.Len(t, resp.Suggestions, 1, "unknown ids are dropped")
	assert.Equal(t, "5", resp.Suggestions[0].ID)
	assert.Equal(t, "Cooling and sweet", resp.Suggestions[0].Reason)
}

func TestConfirmBill_PersistenceFailureSurfacedNotFatal(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`Done! %%%ORDER_INTENT%%%[{"itemName": "Chai", "quantity": 1}]`,
	}}
	bills := &stubBills{err: errors.New("db down")}
	svc, sess := newTestService(t, client, bills)
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, sess.ID, "chai")
	require.NoError(t, err)
	_, err = svc.HandleMessage(ctx, sess.ID, "checkout")
	require.NoError(t, err)
	_, err = svc.HandleMessage(ctx, sess.ID, "confirmorder")
	require.NoError(t, err)

	resp, err := svc.ConfirmBill(ctx, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, PhaseOrderFinalized, resp.Phase)
	require.Len(t, resp.Messages, 2)
	assert.Contains(t, resp.Messages[1], "couldn't archive your bill")
}

func TestHandleMessage_FinalizedSessionStartsOver(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`Done! %%%ORDER_INTENT%%%[{"itemName": "Chai", "quantity": 1}]`,
		`Welcome back! What would you like?`,
	}}
	svc, sess := newTestService(t, client, &stubBills{})
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, sess.ID, "chai")
	require.NoError(t, err)
	_, err = svc.HandleMessage(ctx, sess.ID, "checkout")
	require.NoError(t, err)
	_, err = svc.HandleMessage(ctx, sess.ID, "confirmorder")
	require.NoError(t, err)
	_, err = svc.ConfirmBill(ctx, sess.ID)
	require.NoError(t, err)

	resp, err := svc.HandleMessage(ctx, sess.ID, "hello again")
	require.NoError(t, err)

	assert.Equal(t, PhaseShopping, resp.Phase)
	assert.True(t, resp.Order.Empty)
	assert.Nil(t, resp.Bill)
}

func TestHandleMessage_ChatFailureProducesApology(t *testing.T) {
	svc, sess := newTestService(t, &scriptedClient{}, &stubBills{})

	resp, err := svc.HandleMessage(context.Background(), sess.ID, "anything vegetarian?")
	require.NoError(t, err)

	require.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "try again")
}

func TestHandleMessage_UnknownSession(t *testing.T) {
	svc, _ := newTestService(t, &scriptedClient{}, &stubBills{})

	_, err := svc.HandleMessage(context.Background(), "nope", "hi")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
