package session

import (
	"context"
	"errors"
	"log"

	"github.com/rinisriranganathan/RestBot/internal/bill"
	"github.com/rinisriranganathan/RestBot/internal/catalog"
	"github.com/rinisriranganathan/RestBot/internal/command"
	"github.com/rinisriranganathan/RestBot/internal/llm"
	"github.com/rinisriranganathan/RestBot/internal/order"
)

// CatalogSource yields the menu index messages are resolved against.
// Satisfied by catalog.Service.
type CatalogSource interface {
	ActiveIndex(ctx context.Context) *catalog.Index
}

// BillSink records confirmed bills and returns the archived receipt URL, if
// any. Satisfied by bill.Service.
type BillSink interface {
	Finalize(ctx context.Context, snap bill.Snapshot) (string, error)
}

// ErrEmptyOrder is returned when a bill is requested for an empty ledger.
var ErrEmptyOrder = errors.New("order is empty")

type Service struct {
	sessions       *Manager
	catalog        CatalogSource
	bills          BillSink
	client         llm.Client
	taxBasisPoints int64
}

func NewService(
	sessions *Manager,
	catalog CatalogSource,
	bills BillSink,
	client llm.Client,
	taxBasisPoints int64,
) *Service {
	return &Service{
		sessions:       sessions,
		catalog:        catalog,
		bills:          bills,
		client:         client,
		taxBasisPoints: taxBasisPoints,
	}
}

func (s *Service) Start(table string) *Session {
	return s.sessions.Create(table)
}

// HandleMessage runs one user message through the shortcut interpreter, or
// through the model for free text, and applies whatever instructions come
// out. The session lock is held for the whole exchange so no two batches for
// one session interleave.
func (s *Service) HandleMessage(ctx context.Context, sessionID, text string) (*Response, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	// A finalized order starts over on the next message.
	if sess.phase == PhaseOrderFinalized {
		sess.reset()
	}

	cmd := command.Parse(text)

	switch cmd.Kind {
	case command.KindEmpty:
		return s.respond(sess), nil

	case command.KindHint:
		return s.respond(sess, cmd.Hint), nil

	case command.KindViewOrder:
		if sess.ledger.IsEmpty() {
			return s.respond(sess, "Your order is currently empty."), nil
		}
		return s.respond(sess, "Here are your current order details."), nil

	case command.KindCheckout:
		return s.beginCheckout(sess), nil

	case command.KindConfirmOrder:
		return s.confirmCheckout(sess), nil

	case command.KindCancelOrder:
		if sess.phase == PhaseCheckoutPending {
			sess.phase = PhaseShopping
			return s.respond(sess, "Checkout cancelled. You can continue shopping or modify your order."), nil
		}
		return s.respond(sess, "No active checkout to cancel."), nil

	case command.KindRemove:
		idx := s.catalog.ActiveIndex(ctx)
		res := order.ApplyRemoves(sess.ledger, []order.Instruction{cmd.Instruction}, idx)
		sess.ledger = res.Ledger
		s.exitCheckoutIfEmptied(sess)
		return s.respond(sess, res.SystemMessages()...), nil
	}

	return s.chat(ctx, sess, text)
}

// chat is the free-text path: send to the model, parse the reply, route the
// intent.
func (s *Service) chat(ctx context.Context, sess *Session, text string) (*Response, error) {
	idx := s.catalog.ActiveIndex(ctx)
	system := llm.BuildSystemPrompt(idx.Entries())

	raw, err := s.client.Chat(ctx, system, sess.history, text)
	if err != nil {
		log.Printf("Chat call failed for session %s: %v", sess.ID, err)
		return s.respond(sess, "Sorry, I'm having trouble reaching the kitchen brain right now. Please try again."), nil
	}

	// History keeps the raw reply, markers included, so the model can see
	// its own past intents.
	sess.history = append(sess.history,
		llm.Message{Role: llm.RoleUser, Content: text},
		llm.Message{Role: llm.RoleAssistant, Content: raw},
	)

	reply := llm.ParseReply(raw)

	resp := s.routeReply(ctx, sess, idx, reply)
	return resp, nil
}

// routeReply applies at most one intent from the parsed reply. The protocol
// says only one marker is ever set; if the model breaks that, the first one
// in priority order wins and the rest are ignored.
func (s *Service) routeReply(ctx context.Context, sess *Session, idx *catalog.Index, reply llm.Reply) *Response {
	var msgs []string
	if reply.Text != "" {
		msgs = append(msgs, reply.Text)
	}

	switch {
	case reply.Checkout:
		// Model-detected checkout goes straight to the bill.
		if sess.ledger.IsEmpty() {
			msgs = append(msgs, "It seems there was an issue proceeding to the bill. Please ensure your order isn't empty.")
			return s.respond(sess, msgs...)
		}
		snap := bill.Compute(sess.ledger, s.taxBasisPoints, sess.Table)
		sess.pendingBill = &snap
		sess.phase = PhaseBillReview
		return s.respond(sess, msgs...)

	case len(reply.Order) > 0:
		res := order.ApplyAdds(sess.ledger, reply.Order, idx)
		sess.ledger = res.Ledger
		msgs = append(msgs, res.SystemMessages()...)
		return s.respond(sess, msgs...)

	case len(reply.Remove) > 0:
		res := order.ApplyRemoves(sess.ledger, reply.Remove, idx)
		sess.ledger = res.Ledger
		s.exitCheckoutIfEmptied(sess)
		msgs = append(msgs, res.SystemMessages()...)
		return s.respond(sess, msgs...)

	case len(reply.Suggestions) > 0:
		resp := s.respond(sess, msgs...)
		resp.Suggestions = resolveSuggestions(reply.Suggestions, idx)
		return resp
	}

	return s.respond(sess, msgs...)
}

func (s *Service) beginCheckout(sess *Session) *Response {
	if sess.ledger.IsEmpty() {
		return s.respond(sess, "Your order is empty. Add some items before checking out!")
	}
	sess.phase = PhaseCheckoutPending
	return s.respond(sess, "Ready to place your order? Please review your current order, then type 'confirmorder' or '/confirmorder' to review your bill. To cancel, type 'cancelorder' or '/cancelorder'.")
}

func (s *Service) confirmCheckout(sess *Session) *Response {
	if sess.phase != PhaseCheckoutPending {
		return s.respond(sess, "You need to start checkout first with '/checkout'.")
	}
	if sess.ledger.IsEmpty() {
		sess.phase = PhaseShopping
		return s.respond(sess, "Your order is empty. Cannot confirm an empty order.")
	}

	snap := bill.Compute(sess.ledger, s.taxBasisPoints, sess.Table)
	sess.pendingBill = &snap
	sess.phase = PhaseBillReview
	return s.respond(sess, "Order confirmed! Proceeding to review your bill...")
}

// Checkout is the HTTP path behind the UI's "proceed to bill" action. Unlike
// the typed "checkout" command it skips the confirmation step and moves the
// session straight to bill review.
func (s *Service) Checkout(_ context.Context, sessionID string) (*Response, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.phase == PhaseOrderFinalized {
		sess.reset()
	}
	if sess.ledger.IsEmpty() {
		return nil, ErrEmptyOrder
	}

	snap := bill.Compute(sess.ledger, s.taxBasisPoints, sess.Table)
	sess.pendingBill = &snap
	sess.phase = PhaseBillReview
	return s.respond(sess, "Here is your bill. Confirm it to place the order."), nil
}

// ConfirmBill finalizes the bill under review: the snapshot is persisted and
// the session moves to its finalized state. A persistence failure is
// surfaced as a message; the order itself stays finalized locally.
func (s *Service) ConfirmBill(ctx context.Context, sessionID string) (*Response, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.phase != PhaseBillReview || sess.pendingBill == nil {
		return s.respond(sess, "There is no bill to confirm yet. Type 'checkout' when you're ready."), nil
	}

	snap := *sess.pendingBill
	sess.phase = PhaseOrderFinalized

	msgs := []string{"Thank you for choosing Fire & Froast! Your order has been placed."}
	receiptURL, err := s.bills.Finalize(ctx, snap)
	if err != nil {
		log.Printf("Failed to persist bill %s: %v", snap.ID, err)
		msgs = append(msgs, "We couldn't archive your bill, but your order is confirmed. Please ask the staff for a copy.")
	}

	resp := s.respond(sess, msgs...)
	resp.Bill = billView(&snap)
	if resp.Bill != nil {
		resp.Bill.ReceiptURL = receiptURL
	}
	return resp, nil
}

// Order returns the current order view without changing anything.
func (s *Service) Order(_ context.Context, sessionID string) (*Response, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.respond(sess), nil
}

// exitCheckoutIfEmptied drops a pending checkout confirmation when removals
// empty the ledger out from under it.
func (s *Service) exitCheckoutIfEmptied(sess *Session) {
	if sess.phase == PhaseCheckoutPending && sess.ledger.IsEmpty() {
		sess.phase = PhaseShopping
	}
}

// respond builds the standard response for the session's current state.
// Callers hold the session lock.
func (s *Service) respond(sess *Session, msgs ...string) *Response {
	return &Response{
		Messages: msgs,
		Order:    orderView(sess.ledger),
		Bill:     billView(sess.pendingBill),
		Phase:    sess.phase,
	}
}

func resolveSuggestions(raw []llm.Suggestion, idx *catalog.Index) []SuggestionView {
	var views []SuggestionView
	for _, sg := range raw {
		entry := idx.ByID(sg.ID)
		if entry == nil {
			log.Printf("Model suggested unknown menu id %q", sg.ID)
			continue
		}
		views = append(views, SuggestionView{
			ID:     entry.ID,
			Name:   entry.DisplayName(),
			Price:  entry.Price.String(),
			Reason: sg.Reason,
		})
	}
	return views
}
