package stream

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	"github.com/rmncha/health-assistant/backend/internal/service/assistant"
	chatservice "github.com/rmncha/health-assistant/backend/internal/service/chat"
)

func newHandler() (*Handler, *chatservice.Service) {
	table := locale.MustDefault()
	chatSvc := chatservice.NewService(table, assistant.NewService(table))
	return New(chatSvc, table, 0), chatSvc
}

func TestHandleStreamRequestEmitsTypingThenMessage(t *testing.T) {
	handler, chatSvc := newHandler()
	session := chatSvc.Open(locale.English)

	rec := httptest.NewRecorder()
	if err := handler.HandleStreamRequest(context.Background(), rec, session.ID(), "which vaccine is next"); err != nil {
		t.Fatalf("HandleStreamRequest err: %v", err)
	}

	body := rec.Body.String()
	typing := strings.Index(body, "event: typing")
	message := strings.Index(body, "event: message")
	done := strings.Index(body, "event: done")
	if typing < 0 || message < typing || done < message {
		t.Fatalf("unexpected event order:\n%s", body)
	}
	if !strings.Contains(body, "Universal Immunization Programme") {
		t.Fatalf("expected vaccination reply in stream:\n%s", body)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("unexpected content type %s", got)
	}
	if len(session.Messages()) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(session.Messages()))
	}
}

func TestHandleStreamRequestUnknownSession(t *testing.T) {
	handler, _ := newHandler()

	err := handler.HandleStreamRequest(context.Background(), httptest.NewRecorder(), "missing", "hello")
	if !errors.Is(err, chatservice.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
