package session

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Tokens mints the bearer token a diner uses for the rest of their session.
type Tokens interface {
	MintSessionToken(sessionID, table string) (string, error)
}

type Handler struct {
	service *Service
	tokens  Tokens
}

func NewHandler(service *Service, tokens Tokens) *Handler {
	return &Handler{service: service, tokens: tokens}
}

// starterPrompts are the conversation-opener chips shown under the greeting.
var starterPrompts = []string{
	"Show me the full menu",
	"What do you recommend?",
	"Something spicy, please",
}

type createRequest struct {
	Table string `json:"table" binding:"required"`
}

type messageRequest struct {
	Message string `json:"message" binding:"required"`
}

// Create opens a new session for a table.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "table is required"})
		return
	}

	sess := h.service.Start(req.Table)

	token, err := h.tokens.MintSessionToken(sess.ID, sess.Table)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"table":      sess.Table,
		"token":      token,
		"greeting":   "Hello! I'm Froastie. What are you craving today?",
		"starters":   starterPrompts,
	})
}

// Message runs one chat turn.
func (h *Handler) Message(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	resp, err := h.service.HandleMessage(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Order returns the live order view.
func (h *Handler) Order(c *gin.Context) {
	resp, err := h.service.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Checkout moves the session straight to bill review.
func (h *Handler) Checkout(c *gin.Context) {
	resp, err := h.service.Checkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrEmptyOrder) {
			c.JSON(http.StatusConflict, gin.H{"error": "order is empty"})
			return
		}
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmBill finalizes the bill under review.
func (h *Handler) ConfirmBill(c *gin.Context) {
	resp, err := h.service.ConfirmBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	if errors.Is(err, ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
