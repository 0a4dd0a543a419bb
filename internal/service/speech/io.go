package speech

import (
	"context"
	"sync"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
)

// Listener turns speech into text. onPartial receives the running transcript,
// onEnd fires once when recognition stops for any reason.
type Listener interface {
	StartListening(ctx context.Context, lang locale.Language, onPartial func(string), onEnd func()) (stop func(), err error)
}

// Speaker reads text aloud.
type Speaker interface {
	Speak(ctx context.Context, text string, lang locale.Language) error
	StopSpeaking()
}

// Utterance describes text the client should synthesise.
type Utterance struct {
	Text     string          `json:"text"`
	Language locale.Language `json:"language"`
	Voice    string          `json:"voice"`
	Rate     float64         `json:"rate"`
	Pitch    float64         `json:"pitch"`
}

// NewUtterance builds an utterance with the default rate and pitch.
func NewUtterance(text string, lang locale.Language) Utterance {
	lang = lang.OrEnglish()
	return Utterance{Text: text, Language: lang, Voice: lang.VoiceTag(), Rate: 1.0, Pitch: 1.0}
}

// Noop is used where no speech capability exists. Listening ends immediately.
type Noop struct{}

// StartListening implements Listener.
func (Noop) StartListening(_ context.Context, _ locale.Language, _ func(string), onEnd func()) (func(), error) {
	if onEnd != nil {
		onEnd()
	}
	return func() {}, nil
}

// Speak implements Speaker.
func (Noop) Speak(context.Context, string, locale.Language) error { return nil }

// StopSpeaking implements Speaker.
func (Noop) StopSpeaking() {}

// Feed is a Listener whose text is pushed in by an external recogniser,
// such as a browser forwarding Web Speech results over a websocket.
type Feed struct {
	mu        sync.Mutex
	active    bool
	onPartial func(string)
	onEnd     func()
	done      chan struct{}
}

// NewFeed returns an idle Feed.
func NewFeed() *Feed {
	return &Feed{}
}

// StartListening implements Listener. A running session is ended first.
func (f *Feed) StartListening(ctx context.Context, _ locale.Language, onPartial func(string), onEnd func()) (func(), error) {
	f.End()

	f.mu.Lock()
	f.active = true
	f.onPartial = onPartial
	f.onEnd = onEnd
	done := make(chan struct{})
	f.done = done
	f.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				f.endSession(done)
			case <-done:
			}
		}()
	}

	return func() { f.endSession(done) }, nil
}

// Push delivers recognised text. It reports false when nobody is listening.
func (f *Feed) Push(text string) bool {
	f.mu.Lock()
	active, cb := f.active, f.onPartial
	f.mu.Unlock()

	if !active {
		return false
	}
	if cb != nil {
		cb(text)
	}
	return true
}

// End stops the current listening session and fires its onEnd once.
func (f *Feed) End() {
	f.endSession(nil)
}

// endSession ends the running session. A non-nil done restricts it to the
// session that owns that channel.
func (f *Feed) endSession(done chan struct{}) {
	f.mu.Lock()
	if !f.active || (done != nil && f.done != done) {
		f.mu.Unlock()
		return
	}
	f.active = false
	cb := f.onEnd
	f.onPartial, f.onEnd = nil, nil
	close(f.done)
	f.done = nil
	f.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Active reports whether a listening session is running.
func (f *Feed) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// FuncSpeaker adapts send/cancel callbacks into a Speaker.
type FuncSpeaker struct {
	Send   func(Utterance) error
	Cancel func()
}

// Speak implements Speaker.
func (s FuncSpeaker) Speak(_ context.Context, text string, lang locale.Language) error {
	if s.Send == nil {
		return nil
	}
	return s.Send(NewUtterance(text, lang))
}

// StopSpeaking implements Speaker.
func (s FuncSpeaker) StopSpeaking() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
