package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Nagrajupatel/Chat-App/internal/models"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Storage is the contract the hub and HTTP surface depend on: a durable
// append/range message store plus the shared live-delivery event bus.
type Storage interface {
	SaveMessage(msg *models.Message) error
	GetConversation(userA, userB string) ([]models.Message, error)
	DeleteConversation(userA, userB string) (int64, error)

	PublishEvent(ev models.Event) error
	Subscribe() *redis.PubSub
}

type Service struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Ctx     context.Context
	Channel string
}

// NewStorageService Constructor. The Redis client may be nil for callers that
// only need the message store (e.g. the admin CLI).
func NewStorageService(db *gorm.DB, rdb *redis.Client, channel string) *Service {
	return &Service{
		DB:      db,
		Redis:   rdb,
		Ctx:     context.Background(),
		Channel: channel,
	}
}

// SaveMessage appends a message to PostgreSQL. The record's ID is filled in
// by GORM on success.
func (s *Service) SaveMessage(msg *models.Message) error {
	if err := s.DB.Create(msg).Error; err != nil {
		log.Printf("ERROR: Failed to save message from %s to %s: %v", msg.Sender, msg.Receiver, err)
		return err
	}
	return nil
}

// GetConversation returns every message exchanged between the two users, in
// either direction, ordered by timestamp ascending.
func (s *Service) GetConversation(userA, userB string) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	err := s.DB.
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)",
			userA, userB, userB, userA).
		Order("timestamp asc").
		Find(&messages).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return messages, nil
		}
		log.Printf("ERROR: Failed to get conversation between %s and %s: %v", userA, userB, err)
		return nil, err
	}
	return messages, nil
}

// DeleteConversation removes every message exchanged between the two users
// and reports how many rows were deleted. Operator tooling only; nothing on
// the wire protocol deletes messages.
func (s *Service) DeleteConversation(userA, userB string) (int64, error) {
	result := s.DB.
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)",
			userA, userB, userB, userA).
		Delete(&models.Message{})
	if result.Error != nil {
		log.Printf("ERROR: Failed to delete conversation between %s and %s: %v", userA, userB, result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// PublishEvent publishes an event on the shared Redis delivery channel.
func (s *Service) PublishEvent(ev models.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, s.Channel, payload).Err()
}

// Subscribe opens the subscription every server process uses for live delivery.
func (s *Service) Subscribe() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, s.Channel)
}
