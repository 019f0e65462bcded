package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHistory returns every message exchanged between two users, in either
// direction, oldest first. No pagination: the full conversation is returned.
func (h *Handler) GetHistory(c *gin.Context) {
	userA := c.Param("user1")
	userB := c.Param("user2")

	messages, err := h.Storage.GetConversation(userA, userB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetRoster returns the identities currently online on this server process.
func (h *Handler) GetRoster(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"identities": h.Hub.Registry.Snapshot()})
}
