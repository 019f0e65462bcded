package chathub_test

import (
	"github.com/Nagrajupatel/Chat-App/internal/models"
)

// MockClient is a lightweight stand-in for a live connection. Events pushed
// by the hub land in RecvChannel, where tests can inspect them.
type MockClient struct {
	connID      string
	RecvChannel chan models.Event
}

func newMockClient(connID string) *MockClient {
	return &MockClient{
		connID:      connID,
		RecvChannel: make(chan models.Event, 10), // Buffered to prevent blocking in tests
	}
}

func (c *MockClient) GetConnID() string {
	return c.connID
}

func (c *MockClient) GetSendChannel() chan<- models.Event {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	// Not needed for testing
}

// drain returns everything currently buffered for the client.
func (c *MockClient) drain() []models.Event {
	var events []models.Event
	for {
		select {
		case ev := <-c.RecvChannel:
			events = append(events, ev)
		default:
			return events
		}
	}
}
