package chathub

import "github.com/Nagrajupatel/Chat-App/internal/models"

// Client is the interface for one live duplex connection. It abstracts the
// underlying transport so the hub and registry can manage connections
// uniformly. A connection exists from accept to close and is bound to at most
// one identity at a time; the binding itself is owned by the Registry.
type Client interface {
	// GetConnID returns the unique identifier of the underlying connection.
	GetConnID() string

	// GetSendChannel returns the channel the hub pushes outbound events
	// into. It is a send-only channel; pushes must never block.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps, which handle incoming
	// and outgoing events.
	Run()

	// Close shuts down the outbound channel, stopping the write pump.
	Close()
}
