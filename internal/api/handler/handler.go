package handler

import (
	"github.com/Nagrajupatel/Chat-App/internal/chathub"
	"github.com/Nagrajupatel/Chat-App/internal/storage"
)

// Handler carries the hub and storage used by the HTTP surface.
type Handler struct {
	Hub     *chathub.HubService
	Storage storage.Storage
}

func NewHandler(hub *chathub.HubService, s storage.Storage) *Handler {
	return &Handler{Hub: hub, Storage: s}
}
