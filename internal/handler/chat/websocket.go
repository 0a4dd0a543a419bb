package chat

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	chatService "github.com/rmncha/health-assistant/backend/internal/service/chat"
	"github.com/rmncha/health-assistant/backend/internal/service/speech"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsPingInterval = 25 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// WebSocketHandler carries a live conversation over a websocket. The browser
// performs speech recognition and synthesis; this side receives recognised
// text frames and answers with messages and speak commands.
type WebSocketHandler struct {
	chatSvc  *chatService.Service
	table    *locale.Table
	upgrader websocket.Upgrader
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(chatSvc *chatService.Service, table *locale.Table, checkOrigin func(*http.Request) bool) *WebSocketHandler {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &WebSocketHandler{
		chatSvc: chatSvc,
		table:   table,
		upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

// Inbound frame types.
const (
	frameListen       = "listen"
	framePartial      = "partial"
	frameFinal        = "final"
	frameText         = "text"
	frameSpeakLast    = "speak-last"
	frameStopSpeaking = "stop-speaking"
	frameConfig       = "config"
)

type inboundMessage struct {
	Type      string `json:"type"`
	Text      string `json:"text,omitempty"`
	AutoSpeak *bool  `json:"autoSpeak,omitempty"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// wsConn serialises writes to the underlying websocket.
type wsConn struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	sessionID string
}

func (c *wsConn) send(msgType string, data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.conn.WriteJSON(outgoingMessage{
		Type:      msgType,
		SessionID: c.sessionID,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout))
}

// pushListener is a speech.Listener fed by transcript frames from the client.
type pushListener interface {
	speech.Listener
	Push(text string) bool
	End()
}

type connectionState struct {
	session   *chatService.Session
	feed      pushListener
	speaker   speech.Speaker
	autoSpeak bool
}

// handleWebSocket 处理WebSocket连接
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	lang := h.chatSvc.ResolveLanguage(r.URL.Query().Get("language"))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session := h.chatSvc.Open(lang)
	defer func() {
		if err := h.chatSvc.DeleteSession(context.Background(), session.ID()); err != nil && !errors.Is(err, chatService.ErrSessionNotFound) {
			log.Printf("[websocket] failed to dispose session %s: %v", session.ID(), err)
		}
	}()

	ws := &wsConn{conn: conn, sessionID: session.ID()}
	state := &connectionState{
		session: session,
		feed:    speech.NewFeed(),
		speaker: speech.FuncSpeaker{
			Send:   func(u speech.Utterance) error { return ws.send("speak", u) },
			Cancel: func() { _ = ws.send("stop-speaking", nil) },
		},
	}

	log.Printf("[websocket] new connection for session: %s", session.ID())

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	defer state.feed.End()

	_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	})

	go h.pingLoop(ctx, ws)

	if err := ws.send("session", session.Snapshot()); err != nil {
		log.Printf("[websocket] failed to send session: %v", err)
		return
	}

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[websocket] read error: %v", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		h.handleMessage(ctx, ws, state, msg)
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, ws *wsConn, state *connectionState, msg inboundMessage) {
	lang := state.session.Language()

	switch msg.Type {
	case frameConfig:
		if msg.AutoSpeak != nil {
			state.autoSpeak = *msg.AutoSpeak
		}
		_ = ws.send("config", map[string]any{"autoSpeak": state.autoSpeak, "voice": lang.VoiceTag()})

	case frameListen:
		_, err := state.feed.StartListening(ctx, lang, func(text string) {
			_ = ws.send("transcript", map[string]any{"text": text, "isFinal": false})
		}, func() {
			_ = ws.send("listening-ended", nil)
		})
		if err != nil {
			h.sendError(ws, err.Error())
			return
		}
		_ = ws.send("listening", map[string]any{"voice": lang.VoiceTag()})

	case framePartial:
		if !state.feed.Push(msg.Text) {
			h.sendError(ws, "not listening")
		}

	case frameFinal, frameText:
		state.feed.End()
		h.submit(ctx, ws, state, msg.Text)

	case frameSpeakLast:
		last, ok := state.session.LastAssistantMessage()
		if !ok {
			h.sendError(ws, "nothing to speak")
			return
		}
		if err := state.speaker.Speak(ctx, last.Content, last.Language); err != nil {
			log.Printf("[websocket] speak failed: %v", err)
		}

	case frameStopSpeaking:
		state.speaker.StopSpeaking()

	default:
		h.sendError(ws, "unknown message type: "+msg.Type)
	}
}

func (h *WebSocketHandler) submit(ctx context.Context, ws *wsConn, state *connectionState, text string) {
	if strings.TrimSpace(text) == "" {
		h.sendError(ws, "message is required")
		return
	}

	_ = ws.send("typing", map[string]any{"isTyping": true})

	reply, err := state.session.Submit(ctx, text)
	if errors.Is(err, chatService.ErrSubmitInFlight) {
		h.sendError(ws, h.table.Text(locale.KeySubmitInFlight, state.session.Language()))
		return
	}
	if err != nil {
		log.Printf("[websocket] session=%s submit failed: %v", state.session.ID(), err)
	}

	_ = ws.send("typing", map[string]any{"isTyping": false})
	if sendErr := ws.send("message", reply); sendErr != nil {
		log.Printf("[websocket] failed to send reply: %v", sendErr)
		return
	}

	if state.autoSpeak {
		if err := state.speaker.Speak(ctx, reply.Content, reply.Language); err != nil {
			log.Printf("[websocket] speak failed: %v", err)
		}
	}
}

func (h *WebSocketHandler) pingLoop(ctx context.Context, ws *wsConn) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ws.ping(); err != nil {
				return
			}
		}
	}
}

func (h *WebSocketHandler) sendError(ws *wsConn, message string) {
	if err := ws.send("error", map[string]string{"message": message}); err != nil {
		log.Printf("[websocket] failed to send error: %v", err)
	}
}
