package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rmncha/health-assistant/backend/internal/model/chat"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSubmitInFlight  = errors.New("a message is already being processed for this session")
	ErrResponseFailed  = errors.New("response generation failed")
	ErrEmptyMessage    = errors.New("message is required")
)

// Service keeps live conversation sessions and the stateless exchange history.
type Service struct {
	table     *locale.Table
	responder Responder
	ttl       time.Duration
	now       func() time.Time
	lang      locale.Language

	mu       sync.RWMutex
	sessions map[string]*Session
	history  []chat.Message
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithSessionTTL sets how long a session may stay idle before PruneIdle drops it.
func WithSessionTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) { s.ttl = ttl }
}

// WithClock overrides the time source used for idle pruning.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithDefaultLanguage sets the language used when a caller does not pick one.
func WithDefaultLanguage(lang locale.Language) ServiceOption {
	return func(s *Service) { s.lang = lang.OrEnglish() }
}

// NewService bootstraps the in-memory chat service.
func NewService(table *locale.Table, responder Responder, opts ...ServiceOption) *Service {
	s := &Service{
		table:     table,
		responder: responder,
		ttl:       30 * time.Minute,
		now:       time.Now,
		lang:      locale.English,
		sessions:  make(map[string]*Session),
		history:   make([]chat.Message, 0, 64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveLanguage maps a requested language, falling back to the configured default.
func (s *Service) ResolveLanguage(raw string) locale.Language {
	return locale.ResolveOr(raw, s.lang)
}

// Open starts and registers a live session.
func (s *Service) Open(lang locale.Language) *Session {
	session := Start(lang, s.table, s.responder)

	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()

	return session
}

// CreateSession opens a session and returns its snapshot.
func (s *Service) CreateSession(_ context.Context, lang locale.Language) (chat.Snapshot, error) {
	return s.Open(lang).Snapshot(), nil
}

// Lookup returns the live session for sessionID.
func (s *Service) Lookup(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// GetSession retrieves a session snapshot by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Snapshot, error) {
	session, err := s.Lookup(sessionID)
	if err != nil {
		return chat.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// Submit sends text to the session and returns the assistant reply.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (chat.Message, error) {
	session, err := s.Lookup(sessionID)
	if err != nil {
		return chat.Message{}, err
	}
	return session.Submit(ctx, text)
}

// LastAssistantMessage returns the newest assistant message of a session.
func (s *Service) LastAssistantMessage(_ context.Context, sessionID string) (chat.Message, error) {
	session, err := s.Lookup(sessionID)
	if err != nil {
		return chat.Message{}, err
	}
	msg, ok := session.LastAssistantMessage()
	if !ok {
		return chat.Message{}, ErrSessionNotFound
	}
	return msg, nil
}

// LoadTranscript returns the rendered transcript and the session language.
func (s *Service) LoadTranscript(_ context.Context, sessionID string) (string, locale.Language, error) {
	session, err := s.Lookup(sessionID)
	if err != nil {
		return "", "", err
	}
	return session.Transcript(), session.Language(), nil
}

// DeleteSession disposes of a session.
func (s *Service) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// PruneIdle drops sessions idle for longer than the configured TTL.
func (s *Service) PruneIdle() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run prunes idle sessions on every tick until ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.PruneIdle(); n > 0 {
				log.Printf("[chat] pruned %d idle sessions", n)
			}
		}
	}
}

// Exchange answers a single message without a session and records both
// turns in the exchange history.
func (s *Service) Exchange(ctx context.Context, text string, lang locale.Language) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}
	lang = lang.OrEnglish()

	reply, err := s.responder.Reply(ctx, text, lang)
	if err != nil {
		return "", err
	}

	s.SaveMessage(ctx, chat.Message{Role: chat.RoleUser, Content: text, Language: lang})
	s.SaveMessage(ctx, chat.Message{Role: chat.RoleAssistant, Content: reply, Language: lang})
	return reply, nil
}

// SaveMessage appends a message to the exchange history.
func (s *Service) SaveMessage(_ context.Context, message chat.Message) chat.Message {
	message.ID = uuid.NewString()
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	s.history = append(s.history, message)
	s.mu.Unlock()

	return message
}

// History returns the stored exchange history.
func (s *Service) History(_ context.Context) []chat.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]chat.Message, len(s.history))
	copy(copied, s.history)
	return copied
}
