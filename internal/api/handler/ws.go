package handler

import (
	"net/http"

	"github.com/Nagrajupatel/Chat-App/internal/chathub"
	"github.com/Nagrajupatel/Chat-App/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the HTTP connection and registers it with the hub.
// The connection starts with no identity bound; the client binds one by
// sending a login event.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		ConnID: uuid.New().String(),
		Conn:   conn,
		Hub:    h.Hub,
		Send:   make(chan models.Event, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
