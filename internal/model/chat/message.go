package chat

import (
	"time"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one immutable turn in a conversation.
type Message struct {
	ID        string          `json:"id"`
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	Language  locale.Language `json:"language"`
	Timestamp time.Time       `json:"timestamp"`
}
