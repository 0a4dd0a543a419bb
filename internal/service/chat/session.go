package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rmncha/health-assistant/backend/internal/model/chat"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
)

// Responder produces the assistant reply for a user utterance.
type Responder interface {
	Reply(ctx context.Context, text string, lang locale.Language) (string, error)
}

// Session is the append-only message log of one conversation.
// Submissions are serialised: a second Submit while one is in flight fails
// with ErrSubmitInFlight instead of interleaving messages.
type Session struct {
	id        string
	language  locale.Language
	table     *locale.Table
	responder Responder
	createdAt time.Time

	mu         sync.Mutex
	state      chat.State
	messages   []chat.Message
	lastActive time.Time
}

// Start opens a session whose first message is the assistant greeting in lang.
func Start(lang locale.Language, table *locale.Table, responder Responder) *Session {
	lang = lang.OrEnglish()
	now := time.Now().UTC()

	s := &Session{
		id:         uuid.NewString(),
		language:   lang,
		table:      table,
		responder:  responder,
		createdAt:  now,
		state:      chat.StateEmpty,
		messages:   make([]chat.Message, 0, 16),
		lastActive: now,
	}
	s.messages = append(s.messages, newMessage(chat.RoleAssistant, table.Text(locale.KeyGreeting, lang), lang))
	s.state = chat.StateGreeted
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Language returns the session language.
func (s *Session) Language() locale.Language { return s.language }

// Submit appends the user message, generates the reply and appends it.
// If the responder fails, the apology text is appended and returned together
// with an error wrapping ErrResponseFailed so the transcript stays consistent.
func (s *Session) Submit(ctx context.Context, text string) (chat.Message, error) {
	s.mu.Lock()
	if s.state == chat.StateProcessing {
		s.mu.Unlock()
		return chat.Message{}, ErrSubmitInFlight
	}
	s.messages = append(s.messages, newMessage(chat.RoleUser, text, s.language))
	s.state = chat.StateProcessing
	s.lastActive = time.Now().UTC()
	s.mu.Unlock()

	content, err := s.responder.Reply(ctx, text, s.language)
	if err != nil {
		log.Printf("[chat] session=%s reply failed: %v", s.id, err)
		content = s.table.Text(locale.KeyApology, s.language)
		err = fmt.Errorf("%w: %v", ErrResponseFailed, err)
	}

	reply := newMessage(chat.RoleAssistant, content, s.language)

	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.state = chat.StateAwaitingInput
	s.lastActive = reply.Timestamp
	s.mu.Unlock()

	return reply, err
}

// LastAssistantMessage returns the most recent assistant-authored message.
func (s *Session) LastAssistantMessage() (chat.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == chat.RoleAssistant {
			return s.messages[i], true
		}
	}
	return chat.Message{}, false
}

// Transcript renders the conversation as "<Speaker>: <content>" blocks
// separated by blank lines.
func (s *Session) Transcript() string {
	userLabel := s.table.Text(locale.KeySpeakerUser, s.language)
	assistantLabel := s.table.Text(locale.KeySpeakerAssistant, s.language)

	messages := s.Messages()
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		label := assistantLabel
		if m.Role == chat.RoleUser {
			label = userLabel
		}
		lines = append(lines, label+": "+m.Content)
	}
	return strings.Join(lines, "\n\n")
}

// Messages returns a copy of the log in insertion order.
func (s *Session) Messages() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]chat.Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

// State reports where the session is in its lifecycle.
func (s *Session) State() chat.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns a serialisable copy of the session.
func (s *Session) Snapshot() chat.Snapshot {
	messages := s.Messages()

	s.mu.Lock()
	defer s.mu.Unlock()
	return chat.Snapshot{
		ID:           s.id,
		Language:     s.language,
		State:        s.state,
		CreatedAt:    s.createdAt,
		LastActiveAt: s.lastActive,
		Messages:     messages,
	}
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func newMessage(role chat.Role, content string, lang locale.Language) chat.Message {
	return chat.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Language:  lang,
		Timestamp: time.Now().UTC(),
	}
}
