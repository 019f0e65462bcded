package chathub_test

import (
	"github.com/Nagrajupatel/Chat-App/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of the storage.Storage interface.
// It uses testify/mock to allow flexible expectation setting in tests.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) GetConversation(userA, userB string) ([]models.Message, error) {
	args := m.Called(userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockStorage) DeleteConversation(userA, userB string) (int64, error) {
	args := m.Called(userA, userB)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) PublishEvent(ev models.Event) error {
	args := m.Called(ev)
	return args.Error(0)
}

func (m *MockStorage) Subscribe() *redis.PubSub {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*redis.PubSub)
}
