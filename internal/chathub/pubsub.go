package chathub

import (
	"encoding/json"
	"log"

	"github.com/Nagrajupatel/Chat-App/internal/models"
)

// StartPubSubListener starts a goroutine that subscribes to the shared Redis
// delivery channel and feeds received events into DeliverCh for the Run loop.
// Every server process runs one listener; a process delivers only to the
// receivers connected to it.
func (h *HubService) StartPubSubListener() {
	go func() {
		pubsub := h.Storage.Subscribe()
		if pubsub == nil {
			log.Println("no delivery subscription available, live delivery disabled")
			return
		}
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var ev models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("dropping malformed bus event: %v", err)
				continue
			}
			h.DeliverCh <- ev
		}
	}()
}
