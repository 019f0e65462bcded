package chathub

import (
	"log"
	"time"

	"github.com/Nagrajupatel/Chat-App/internal/models"
	"github.com/Nagrajupatel/Chat-App/internal/storage"
)

// HubService routes chat events between live connections. Connection
// lifecycle (register/unregister) and all fan-out to send channels go through
// the Run loop; inbound chat events are dispatched by Route on each
// connection's own read goroutine, so one connection's storage call never
// stalls another's.
type HubService struct {
	Registry *Registry

	RegisterCh   chan Client
	UnregisterCh chan Client

	// DeliverCh carries events received from the shared delivery bus; the
	// Run loop resolves the receiver locally and pushes to it.
	DeliverCh chan models.Event

	rosterCh chan struct{}

	Storage storage.Storage
}

func NewHubService(s storage.Storage) *HubService {
	return &HubService{
		Registry:     NewRegistry(),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		DeliverCh:    make(chan models.Event, 64),
		rosterCh:     make(chan struct{}, 8),
		Storage:      s,
	}
}

// Run is the hub's main loop. Removal from the registry and the close of a
// connection's send channel happen in the same loop iteration, so delivery
// and roster fan-out (which also run here) can never push to a closed
// channel. Route only ever pushes to the connection it is reading from, which
// cannot be unregistered while its read goroutine is still inside Route.
func (h *HubService) Run() {
	for {
		select {
		case c := <-h.RegisterCh:
			h.Registry.Add(c)
			log.Printf("connection %s registered", c.GetConnID())

		case c := <-h.UnregisterCh:
			h.Registry.Remove(c)
			c.Close()
			log.Printf("connection %s unregistered", c.GetConnID())
			h.broadcastRoster()

		case <-h.rosterCh:
			h.broadcastRoster()

		case ev := <-h.DeliverCh:
			h.deliver(ev)
		}
	}
}

// Route handles one decoded inbound event from a connection. It is called on
// that connection's read goroutine, so a single connection's events are
// processed in the order they were sent.
func (h *HubService) Route(c Client, ev models.Event) {
	switch ev.Type {
	case models.EventLogin:
		h.handleLogin(c, ev)
	case models.EventSendMessage:
		h.handleSend(c, ev)
	case models.EventTyping:
		h.handleTyping(c, ev)
	default:
		log.Printf("unknown event type %q from connection %s", ev.Type, c.GetConnID())
		h.pushTo(c, models.NewErrorEvent("unknown event type"))
	}
}

func (h *HubService) handleLogin(c Client, ev models.Event) {
	if err := models.ValidateLogin(ev); err != nil {
		h.pushTo(c, models.NewErrorEvent("identity must not be empty"))
		return
	}
	h.Registry.Bind(ev.Identity, c)
	log.Printf("identity %q bound to connection %s", ev.Identity, c.GetConnID())
	h.requestRosterBroadcast()
}

func (h *HubService) handleSend(c Client, ev models.Event) {
	if err := models.ValidateSend(ev); err != nil {
		h.pushTo(c, models.NewErrorEvent("sender, receiver and content must not be empty"))
		return
	}

	msg := &models.Message{
		Sender:    ev.Sender,
		Receiver:  ev.Receiver,
		Content:   ev.Content,
		Timestamp: time.Now().UTC(),
	}

	// The message must be durable before anyone sees it live. On failure the
	// sender is told; the message is not treated as delivered.
	if err := h.Storage.SaveMessage(msg); err != nil {
		h.pushTo(c, models.NewErrorEvent("message could not be stored"))
		return
	}

	if err := h.Storage.PublishEvent(models.NewReceiveMessage(msg)); err != nil {
		log.Printf("failed to publish message from %s: %v", msg.Sender, err)
		h.pushTo(c, models.NewErrorEvent("message stored but live delivery is uncertain"))
	}
}

func (h *HubService) handleTyping(c Client, ev models.Event) {
	if err := models.ValidateTyping(ev); err != nil {
		h.pushTo(c, models.NewErrorEvent("sender and receiver must not be empty"))
		return
	}
	// Typing signals are ephemeral: published for live delivery, never stored.
	ev = models.Event{Type: models.EventTyping, Sender: ev.Sender, Receiver: ev.Receiver}
	if err := h.Storage.PublishEvent(ev); err != nil {
		log.Printf("failed to publish typing signal from %s: %v", ev.Sender, err)
	}
}

// deliver pushes a bus event to the locally connected receiver, if any. An
// offline receiver is not an error: messages are already stored, typing
// signals just vanish.
func (h *HubService) deliver(ev models.Event) {
	target := h.Registry.Lookup(ev.Receiver)
	if target == nil {
		return
	}
	if ev.Type == models.EventTyping {
		ev = models.NewTypingNotice(ev.Sender)
	}
	h.pushTo(target, ev)
}

// broadcastRoster pushes the current identity list to every open connection,
// including ones that have not bound an identity yet.
func (h *HubService) broadcastRoster() {
	update := models.NewRosterUpdate(h.Registry.Snapshot())
	for _, c := range h.Registry.Connections() {
		h.pushTo(c, update)
	}
}

func (h *HubService) requestRosterBroadcast() {
	// Non-blocking: a pending signal already covers this change, the loop
	// snapshots the roster when it gets there.
	select {
	case h.rosterCh <- struct{}{}:
	default:
	}
}

// pushTo delivers an event to one connection without blocking. A stalled
// connection drops the event rather than stalling delivery to everyone else.
func (h *HubService) pushTo(c Client, ev models.Event) {
	select {
	case c.GetSendChannel() <- ev:
	default:
		log.Printf("dropping %s event for connection %s: send buffer full", ev.Type, c.GetConnID())
	}
}
