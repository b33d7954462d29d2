package notify

import (
	"encoding/json"
	"sync"

	"souqtech/internal/infrastructure/websocket"
	"souqtech/pkg/logger"
)

// Service localizes toast events in the currently selected UI language and
// broadcasts them to connected dashboards over the websocket hub.
type Service struct {
	hub *websocket.Hub

	mu   sync.RWMutex
	lang string
}

func NewService(hub *websocket.Hub, lang string) *Service {
	if lang == "" {
		lang = "ar"
	}
	return &Service{
		hub:  hub,
		lang: lang,
	}
}

// SetLanguage switches the language used for subsequent toasts.
func (s *Service) SetLanguage(lang string) {
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
}

func (s *Service) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Notify emits exactly one toast for the event.
func (s *Service) Notify(event Event) {
	toast := Localize(event, s.Language())

	if toast.Variant == VariantDestructive {
		logger.Warn("toast: %s - %s", event, toast.Description)
	} else {
		logger.Info("toast: %s - %s", event, toast.Description)
	}

	if s.hub == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":  "toast",
		"event": event,
		"toast": toast,
	})
	if err != nil {
		logger.Error("Failed to marshal toast payload: %v", err)
		return
	}

	s.hub.Broadcast(payload)
}
