package assistant

import (
	"context"
	"time"

	"github.com/rmncha/health-assistant/backend/internal/analysis/topic"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
)

// Service is the rule-based response engine. It holds no session state.
type Service struct {
	table *locale.Table
	delay time.Duration
}

// Option customises a Service.
type Option func(*Service)

// WithDelay sets the simulated processing latency. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// NewService builds the engine over table.
func NewService(table *locale.Table, opts ...Option) *Service {
	s := &Service{table: table}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond returns the canned answer for topic in lang.
// Unsupported languages resolve to English.
func (s *Service) Respond(t locale.Topic, lang locale.Language) string {
	return s.table.Response(t, lang)
}

// Reply classifies text and returns the matching answer after the configured delay.
// The delay is not cancellable: a caller that stops waiting discards the
// answer, the session still records it.
func (s *Service) Reply(_ context.Context, text string, lang locale.Language) (string, error) {
	lang = lang.OrEnglish()
	answer := s.Respond(topic.Classify(text, lang), lang)

	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return answer, nil
}

// Delay reports the simulated latency, used by callers that render a typing indicator.
func (s *Service) Delay() time.Duration {
	return s.delay
}
