// Package session owns the per-diner conversation state: the running order
// ledger, the chat history, and the checkout state machine.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/rinisriranganathan/RestBot/internal/bill"
	"github.com/rinisriranganathan/RestBot/internal/llm"
	"github.com/rinisriranganathan/RestBot/internal/order"
)

type Phase string

const (
	PhaseShopping        Phase = "SHOPPING"
	PhaseCheckoutPending Phase = "CHECKOUT_PENDING"
	PhaseBillReview      Phase = "BILL_REVIEW"
	PhaseOrderFinalized  Phase = "ORDER_FINALIZED"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is one diner's conversation. All fields behind mu; the service
// serializes whole message batches under it, so a batch is atomic with
// respect to the ledger.
type Session struct {
	ID    string
	Table string

	mu          sync.Mutex
	phase       Phase
	ledger      order.Ledger
	history     []llm.Message
	pendingBill *bill.Snapshot
}

// reset begins a fresh order for the same table.
func (s *Session) reset() {
	s.phase = PhaseShopping
	s.ledger = nil
	s.history = nil
	s.pendingBill = nil
}

// Manager is the in-memory session registry.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Create(table string) *Session {
	s := &Session{
		ID:    uuid.New().String(),
		Table: table,
		phase: PhaseShopping,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
