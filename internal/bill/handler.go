package bill

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetLatest returns the most recent finalized bill, optionally filtered
// by table via ?table=.
func (h *Handler) GetLatest(c *gin.Context) {
	var (
		snap *Snapshot
		err  error
	)

	if table := c.Query("table"); table != "" {
		snap, err = h.service.LatestForTable(c.Request.Context(), table)
	} else {
		snap, err = h.service.Latest(c.Request.Context())
	}

	if errors.Is(err, ErrNoBills) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no bills found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snap)
}
