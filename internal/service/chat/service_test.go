package chat_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	chatmodel "github.com/rmncha/health-assistant/backend/internal/model/chat"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	"github.com/rmncha/health-assistant/backend/internal/service/assistant"
	chat "github.com/rmncha/health-assistant/backend/internal/service/chat"
)

type failingResponder struct{}

func (failingResponder) Reply(context.Context, string, locale.Language) (string, error) {
	return "", errors.New("directory unavailable")
}

// blockingResponder holds every reply until release is closed.
type blockingResponder struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingResponder) Reply(ctx context.Context, _ string, _ locale.Language) (string, error) {
	b.once.Do(func() { close(b.entered) })
	select {
	case <-b.release:
		return "ok", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func newService(opts ...chat.ServiceOption) *chat.Service {
	table := locale.MustDefault()
	return chat.NewService(table, assistant.NewService(table), opts...)
}

func TestStartGreetsInSessionLanguage(t *testing.T) {
	table := locale.MustDefault()
	session := chat.Start(locale.Hindi, table, assistant.NewService(table))

	messages := session.Messages()
	require.Len(t, messages, 1)
	require.Equal(t, chatmodel.RoleAssistant, messages[0].Role)
	require.Equal(t, locale.GreetingHindi, messages[0].Content)
	require.Equal(t, chatmodel.StateGreeted, session.State())
}

func TestStartUnsupportedLanguageGreetsInEnglish(t *testing.T) {
	table := locale.MustDefault()
	session := chat.Start(locale.Language("fr"), table, assistant.NewService(table))

	require.Equal(t, locale.English, session.Language())
	require.Equal(t, locale.GreetingEnglish, session.Messages()[0].Content)
}

func TestSubmitHindiVaccination(t *testing.T) {
	table := locale.MustDefault()
	session := chat.Start(locale.Hindi, table, assistant.NewService(table))

	reply, err := session.Submit(context.Background(), "टीकाकरण के बारे में बताएं")
	require.NoError(t, err)
	require.Equal(t, locale.VaccinationHindi, reply.Content)
	require.Equal(t, chatmodel.RoleAssistant, reply.Role)
	require.Equal(t, locale.Hindi, reply.Language)
	require.Equal(t, chatmodel.StateAwaitingInput, session.State())
}

func TestSessionOrderingAndTranscript(t *testing.T) {
	table := locale.MustDefault()
	session := chat.Start(locale.English, table, assistant.NewService(table))
	ctx := context.Background()

	first, err := session.Submit(ctx, "I am pregnant")
	require.NoError(t, err)
	second, err := session.Submit(ctx, "what food should I eat")
	require.NoError(t, err)

	messages := session.Messages()
	require.Len(t, messages, 5)
	wantRoles := []chatmodel.Role{
		chatmodel.RoleAssistant, chatmodel.RoleUser, chatmodel.RoleAssistant, chatmodel.RoleUser, chatmodel.RoleAssistant,
	}
	for i, role := range wantRoles {
		require.Equal(t, role, messages[i].Role, "message %d", i)
	}
	require.Equal(t, "I am pregnant", messages[1].Content)
	require.Equal(t, first.ID, messages[2].ID)
	require.Equal(t, second.ID, messages[4].ID)

	transcript := session.Transcript()
	blocks := strings.Split(transcript, "\n\n")
	require.Len(t, blocks, 5)
	require.Equal(t, "Health Assistant: "+locale.GreetingEnglish, blocks[0])
	require.Equal(t, "You: I am pregnant", blocks[1])
	require.Equal(t, "You: what food should I eat", blocks[3])
	require.Equal(t, "Health Assistant: "+table.Response(locale.Diet, locale.English), blocks[4])
}

func TestTranscriptHindiLabels(t *testing.T) {
	table := locale.MustDefault()
	session := chat.Start(locale.Hindi, table, assistant.NewService(table))
	_, err := session.Submit(context.Background(), "नमस्ते")
	require.NoError(t, err)

	blocks := strings.Split(session.Transcript(), "\n\n")
	require.Len(t, blocks, 3)
	require.True(t, strings.HasPrefix(blocks[0], "स्वास्थ्य सहायक: "))
	require.Equal(t, "आप: नमस्ते", blocks[1])
}

func TestLastAssistantMessage(t *testing.T) {
	table := locale.MustDefault()
	session := chat.Start(locale.English, table, assistant.NewService(table))

	greeting, ok := session.LastAssistantMessage()
	require.True(t, ok)
	require.Equal(t, locale.GreetingEnglish, greeting.Content)

	reply, err := session.Submit(context.Background(), "hospital")
	require.NoError(t, err)

	last, ok := session.LastAssistantMessage()
	require.True(t, ok)
	require.Equal(t, reply.ID, last.ID)
	require.NotEqual(t, greeting.ID, last.ID)
}

func TestSubmitFailureAppendsApology(t *testing.T) {
	table := locale.MustDefault()
	session := chat.Start(locale.Hindi, table, failingResponder{})

	reply, err := session.Submit(context.Background(), "योजना")
	require.ErrorIs(t, err, chat.ErrResponseFailed)
	require.Equal(t, table.Text(locale.KeyApology, locale.Hindi), reply.Content)

	messages := session.Messages()
	require.Len(t, messages, 3)
	require.Equal(t, reply.ID, messages[2].ID)
	require.Equal(t, chatmodel.StateAwaitingInput, session.State())
}

func TestSubmitKeepsAnswerWhenCallerTimesOut(t *testing.T) {
	table := locale.MustDefault()
	engine := assistant.NewService(table, assistant.WithDelay(50*time.Millisecond))
	session := chat.Start(locale.English, table, engine)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	reply, err := session.Submit(ctx, "I am pregnant")
	require.NoError(t, err)
	require.Equal(t, engine.Respond(locale.Pregnancy, locale.English), reply.Content)

	messages := session.Messages()
	require.Len(t, messages, 3)
	require.Equal(t, reply.Content, messages[2].Content)
	require.NotEqual(t, table.Text(locale.KeyApology, locale.English), messages[2].Content)
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	table := locale.MustDefault()
	responder := &blockingResponder{entered: make(chan struct{}), release: make(chan struct{})}
	session := chat.Start(locale.English, table, responder)

	done := make(chan error, 1)
	go func() {
		_, err := session.Submit(context.Background(), "first")
		done <- err
	}()

	<-responder.entered
	require.Equal(t, chatmodel.StateProcessing, session.State())

	_, err := session.Submit(context.Background(), "second")
	require.ErrorIs(t, err, chat.ErrSubmitInFlight)

	close(responder.release)
	require.NoError(t, <-done)
	require.Len(t, session.Messages(), 3)
}

func TestServiceGetSession(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, locale.English)
	require.NoError(t, err)

	got, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, session.ID, got.ID)
	require.Len(t, got.Messages, 1)
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetSession(context.Background(), "missing")
	require.ErrorIs(t, err, chat.ErrSessionNotFound)

	_, err = svc.Submit(context.Background(), "missing", "hi")
	require.ErrorIs(t, err, chat.ErrSessionNotFound)
}

func TestServiceDeleteSession(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	session, err := svc.CreateSession(ctx, locale.Hindi)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(ctx, session.ID))
	require.ErrorIs(t, svc.DeleteSession(ctx, session.ID), chat.ErrSessionNotFound)
}

func TestServicePruneIdle(t *testing.T) {
	now := time.Now()
	svc := newService(chat.WithSessionTTL(time.Minute), chat.WithClock(func() time.Time { return now }))
	session := svc.Open(locale.English)

	require.Zero(t, svc.PruneIdle())

	now = now.Add(2 * time.Minute)
	require.Equal(t, 1, svc.PruneIdle())
	_, err := svc.Lookup(session.ID())
	require.ErrorIs(t, err, chat.ErrSessionNotFound)
}

func TestServiceExchangeRecordsHistory(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	reply, err := svc.Exchange(ctx, "I am pregnant", locale.English)
	require.NoError(t, err)
	require.Equal(t, locale.MustDefault().Response(locale.Pregnancy, locale.English), reply)

	history := svc.History(ctx)
	require.Len(t, history, 2)
	require.Equal(t, chatmodel.RoleUser, history[0].Role)
	require.Equal(t, reply, history[1].Content)
	require.NotEmpty(t, history[0].ID)
}

func TestServiceExchangeRejectsEmpty(t *testing.T) {
	svc := newService()
	_, err := svc.Exchange(context.Background(), "  ", locale.English)
	require.ErrorIs(t, err, chat.ErrEmptyMessage)
	require.Empty(t, svc.History(context.Background()))
}

func TestServiceDefaultLanguage(t *testing.T) {
	svc := newService(chat.WithDefaultLanguage(locale.Hindi))

	require.Equal(t, locale.Hindi, svc.ResolveLanguage(""))
	require.Equal(t, locale.English, svc.ResolveLanguage("en"))

	snapshot, err := svc.CreateSession(context.Background(), svc.ResolveLanguage(""))
	require.NoError(t, err)
	require.Equal(t, locale.Hindi, snapshot.Language)
	require.Equal(t, locale.GreetingHindi, snapshot.Messages[0].Content)
}
