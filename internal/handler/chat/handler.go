package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rmncha/health-assistant/backend/internal/model/chat"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	chatService "github.com/rmncha/health-assistant/backend/internal/service/chat"
	"github.com/rmncha/health-assistant/backend/internal/service/speech"
	"github.com/rmncha/health-assistant/backend/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
	table   *locale.Table
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, table *locale.Table) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		table:   table,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/response", h.handleResponse)
	r.Get("/history", h.handleHistory)

	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", h.handleCreateSession)
		sr.Get("/{sessionID}", h.handleGetSession)
		sr.Delete("/{sessionID}", h.handleDeleteSession)
		sr.Post("/{sessionID}/messages", h.handleSubmit)
		sr.Get("/{sessionID}/last", h.handleLastAssistant)
		sr.Get("/{sessionID}/transcript", h.handleTranscript)
	})
}

// handleResponse 无会话的单轮问答
func (h *Handler) handleResponse(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang := h.chatSvc.ResolveLanguage(payload.Language)
	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	response, err := h.chatSvc.Exchange(r.Context(), payload.Message, lang)
	if err != nil {
		log.Printf("[chat] error generating chat response: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, h.table.Text(locale.KeyChatFailed, lang))
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"response": response,
	})
}

// handleHistory 返回单轮问答的历史记录
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	utils.RespondData(w, http.StatusOK, h.chatSvc.History(r.Context()))
}

// handleCreateSession 创建会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language string `json:"language"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.chatSvc.CreateSession(r.Context(), h.chatSvc.ResolveLanguage(payload.Language))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondData(w, http.StatusCreated, session)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondData(w, http.StatusOK, session)
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.chatSvc.DeleteSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSubmit 发送用户消息并返回助手回复
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	session, err := h.chatSvc.Lookup(sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	reply, err := session.Submit(r.Context(), payload.Message)
	switch {
	case err == nil:
		utils.RespondData(w, http.StatusOK, reply)
	case errors.Is(err, chatService.ErrSubmitInFlight):
		utils.RespondError(w, http.StatusConflict, h.table.Text(locale.KeySubmitInFlight, session.Language()))
	case errors.Is(err, chatService.ErrResponseFailed):
		utils.RespondJSON(w, http.StatusInternalServerError, utils.Envelope{Success: false, Message: reply.Content, Data: reply})
	default:
		h.respondServiceError(w, err)
	}
}

type lastResponse struct {
	Message   chat.Message     `json:"message"`
	Utterance speech.Utterance `json:"utterance"`
}

// handleLastAssistant 返回最近一条助手消息，供“朗读上一条回复”使用
func (h *Handler) handleLastAssistant(w http.ResponseWriter, r *http.Request) {
	msg, err := h.chatSvc.LastAssistantMessage(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	utils.RespondData(w, http.StatusOK, lastResponse{
		Message:   msg,
		Utterance: speech.NewUtterance(msg.Content, msg.Language),
	})
}

// handleTranscript 以纯文本下载会话记录
func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	transcript, lang, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.txt", h.table.Text(locale.KeyTranscriptFilename, lang), shortID(sessionID))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(transcript)); err != nil {
		log.Printf("[chat] failed to write transcript: %v", err)
	}
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatService.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[chat] unexpected error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
