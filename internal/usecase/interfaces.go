package usecase

import (
	"souqtech/internal/infrastructure/notify"
)

// Notifier raises user-visible toast notifications. Every collection
// operation emits exactly one toast on success or failure, except the silent
// paths (successful refresh, successful mark-as-read).
type Notifier interface {
	Notify(event notify.Event)
}
