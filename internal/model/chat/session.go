package chat

import (
	"time"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
)

// State is the lifecycle position of a conversation session.
type State string

const (
	StateEmpty         State = "empty"
	StateGreeted       State = "greeted"
	StateAwaitingInput State = "awaiting_input"
	StateProcessing    State = "processing"
)

// Snapshot is a point-in-time copy of a session, safe to serialise.
type Snapshot struct {
	ID           string          `json:"id"`
	Language     locale.Language `json:"language"`
	State        State           `json:"state"`
	CreatedAt    time.Time       `json:"createdAt"`
	LastActiveAt time.Time       `json:"lastActiveAt"`
	Messages     []Message       `json:"messages"`
}
