package stream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	chatService "github.com/rmncha/health-assistant/backend/internal/service/chat"
	"github.com/rmncha/health-assistant/backend/pkg/utils"
)

// Handler streams a session reply over Server-Sent Events so the client can
// show a typing indicator while the reply is prepared.
type Handler struct {
	chatSvc *chatService.Service
	table   *locale.Table
	delay   time.Duration
}

// New creates a new stream handler. delay is advertised to the client as the
// expected typing duration.
func New(chatSvc *chatService.Service, table *locale.Table, delay time.Duration) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		table:   table,
		delay:   delay,
	}
}

// StreamResponse represents a streaming response chunk
type StreamResponse struct {
	Event     string      `json:"event"`
	SessionID string      `json:"sessionId,omitempty"`
	Content   string      `json:"content,omitempty"`
	Message   interface{} `json:"message,omitempty"`
	TypingMs  int64       `json:"typingMs,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// HandleStreamRequest submits userMessage to the session and streams
// typing, message and done events.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID string, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	session, err := h.chatSvc.Lookup(sessionID)
	if err != nil {
		return err
	}

	utils.SetupSSEHeaders(w)

	utils.SendSSEEvent(w, flusher, "typing", StreamResponse{
		Event:     "typing",
		SessionID: sessionID,
		TypingMs:  h.delay.Milliseconds(),
	})

	reply, err := session.Submit(ctx, userMessage)
	switch {
	case errors.Is(err, chatService.ErrSubmitInFlight):
		h.sendSSEError(w, flusher, sessionID, h.table.Text(locale.KeySubmitInFlight, session.Language()))
		return nil
	case err != nil:
		log.Printf("[stream] session=%s reply failed: %v", sessionID, err)
	}

	utils.SendSSEEvent(w, flusher, "message", StreamResponse{
		Event:     "message",
		SessionID: sessionID,
		Content:   reply.Content,
		Message:   reply,
	})
	utils.SendSSEEvent(w, flusher, "done", StreamResponse{Event: "done", SessionID: sessionID})
	return nil
}

func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, sessionID, message string) {
	utils.SendSSEEvent(w, flusher, "error", StreamResponse{
		Event:     "error",
		SessionID: sessionID,
		Error:     message,
	})
}
