package models

import "time"

// Message is a direct message persisted in PostgreSQL. Records are immutable
// after creation; the server stamps the timestamp when the message is sent.
type Message struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// Sender is the identity that sent the message.
	Sender string `gorm:"type:text;not null;index:idx_conversation" json:"sender"`
	// Receiver is the identity the message is addressed to.
	Receiver string `gorm:"type:text;not null;index:idx_conversation" json:"receiver"`
	// Content is the message text.
	Content string `gorm:"type:text;not null" json:"content"`
	// Timestamp is the server-side send time, used to order history queries.
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
}
