package chathub

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Nagrajupatel/Chat-App/internal/models"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WebSocketClient implements the chathub.Client interface over a gorilla
// websocket connection.
type WebSocketClient struct {
	ConnID string
	Conn   *websocket.Conn
	Hub    *HubService
	Send   chan models.Event
}

func (c *WebSocketClient) GetConnID() string                   { return c.ConnID }
func (c *WebSocketClient) GetSendChannel() chan<- models.Event { return c.Send }

// Run starts the pumps for the connection.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the write pump. Called by the
// hub exactly once, when the connection unregisters.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

// readPump reads frames until the connection closes or errors, decodes them
// and hands them to the hub. Malformed frames are logged and dropped; they
// never terminate the connection. On exit it emits the terminal unregister.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, frame, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading from connection %s: %v", c.ConnID, err)
			}
			break
		}

		var ev models.Event
		if err := json.Unmarshal(frame, &ev); err != nil {
			log.Printf("dropping malformed frame from connection %s: %v", c.ConnID, err)
			continue
		}

		c.Hub.Route(c, ev)
	}
}

// writePump writes events from the Send channel to the websocket and keeps
// the connection alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub, close the websocket.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteJSON(ev); err != nil {
				log.Printf("error writing to connection %s: %v", c.ConnID, err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
