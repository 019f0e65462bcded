package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Event types carried in the Type field of the wire envelope.
const (
	// client -> server
	EventLogin       = "login"
	EventSendMessage = "send_message"
	EventTyping      = "typing" // also server -> client, carrying only the sender

	// server -> client
	EventReceiveMessage = "receive_message"
	EventRosterUpdate   = "roster_update"
	EventError          = "error"
)

// Event is the JSON frame exchanged over a connection. A single envelope with
// a Type discriminator; fields not used by a given type are omitted.
type Event struct {
	Type       string    `json:"type"`
	Identity   string    `json:"identity,omitempty"`   // login
	Sender     string    `json:"sender,omitempty"`     // send_message, typing, receive_message
	Receiver   string    `json:"receiver,omitempty"`   // send_message, typing, receive_message
	Content    string    `json:"content,omitempty"`    // send_message, receive_message
	Timestamp  time.Time `json:"timestamp,omitzero"`   // receive_message
	Identities []string  `json:"identities,omitempty"` // roster_update
	Error      string    `json:"error,omitempty"`      // error
}

var validate = validator.New()

type loginPayload struct {
	Identity string `validate:"required"`
}

type sendMessagePayload struct {
	Sender   string `validate:"required"`
	Receiver string `validate:"required"`
	Content  string `validate:"required"`
}

type typingPayload struct {
	Sender   string `validate:"required"`
	Receiver string `validate:"required"`
}

// ValidateLogin checks a login event carries a non-empty identity.
func ValidateLogin(ev Event) error {
	return validate.Struct(loginPayload{Identity: ev.Identity})
}

// ValidateSend checks a send_message event carries sender, receiver and content.
func ValidateSend(ev Event) error {
	return validate.Struct(sendMessagePayload{
		Sender:   ev.Sender,
		Receiver: ev.Receiver,
		Content:  ev.Content,
	})
}

// ValidateTyping checks a typing event carries sender and receiver.
func ValidateTyping(ev Event) error {
	return validate.Struct(typingPayload{Sender: ev.Sender, Receiver: ev.Receiver})
}

// NewReceiveMessage builds the outbound frame for a persisted message.
func NewReceiveMessage(msg *Message) Event {
	return Event{
		Type:      EventReceiveMessage,
		Sender:    msg.Sender,
		Receiver:  msg.Receiver,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
}

// NewTypingNotice builds the outbound typing frame. It carries only the
// sender; the receiver is implied by the connection it is pushed to.
func NewTypingNotice(sender string) Event {
	return Event{Type: EventTyping, Sender: sender}
}

// NewRosterUpdate builds the outbound frame carrying the full online roster.
func NewRosterUpdate(identities []string) Event {
	return Event{Type: EventRosterUpdate, Identities: identities}
}

// NewErrorEvent builds the outbound frame reporting a local error to the
// connection that caused it.
func NewErrorEvent(reason string) Event {
	return Event{Type: EventError, Error: reason}
}
