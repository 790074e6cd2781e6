package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ProfileSavedEvent struct {
	Type      string `json:"type"`
	Completed bool   `json:"completed"`
	Timestamp string `json:"timestamp"`
}

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes domain events into the hub; it satisfies the usecase
// notifier interfaces without the usecases importing this package's internals.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ProfileSaved(userID uuid.UUID, completed bool) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ProfileSavedEvent{
		Type:      "profile_saved",
		Completed: completed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.SendToUser(userID, b)
}

func (n *Notifier) JobsUpdated() {
	if n == nil || n.hub == nil {
		return
	}

	evt := JobsUpdatedEvent{
		Type:      "jobs_updated",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
