package speech

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	chatservice "github.com/rmncha/health-assistant/backend/internal/service/chat"
	speechsvc "github.com/rmncha/health-assistant/backend/internal/service/speech"
	"github.com/rmncha/health-assistant/backend/pkg/utils"
)

// Handler 语音播报的HTTP处理器。
// 识别与合成在浏览器端完成，这里只下发朗读参数。
type Handler struct {
	chatSvc *chatservice.Service
	enabled bool
}

// New 创建语音处理器
func New(chatSvc *chatservice.Service, enabled bool) *Handler {
	return &Handler{chatSvc: chatSvc, enabled: enabled}
}

// RegisterRoutes 注册语音相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/speech", func(speechRouter chi.Router) {
		// TTS 端点
		speechRouter.Post("/synthesize", h.handleSynthesize)
		speechRouter.Post("/synthesize/{sessionID}", h.handleSynthesizeWithSession)

		// 健康检查
		speechRouter.Get("/health", h.handleHealth)
	})
}

type synthesizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type voice struct {
	Language locale.Language `json:"language"`
	Voice    string          `json:"voice"`
}

func (h *Handler) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		utils.RespondError(w, http.StatusBadRequest, "text is required")
		return
	}

	lang := h.chatSvc.ResolveLanguage(req.Language)
	utils.RespondData(w, http.StatusOK, speechsvc.NewUtterance(req.Text, lang))
}

// handleSynthesizeWithSession 未提供文本时朗读会话中最后一条助手回复
func (h *Handler) handleSynthesizeWithSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.Lookup(chi.URLParam(r, "sessionID"))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := req.Text
	if strings.TrimSpace(text) == "" {
		last, ok := session.LastAssistantMessage()
		if !ok {
			utils.RespondError(w, http.StatusNotFound, "nothing to speak")
			return
		}
		text = last.Content
	}

	utils.RespondData(w, http.StatusOK, speechsvc.NewUtterance(text, session.Language()))
}

// handleHealth 健康检查端点
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	voices := make([]voice, 0, len(locale.Supported))
	for _, lang := range locale.Supported {
		voices = append(voices, voice{Language: lang, Voice: lang.VoiceTag()})
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "speech",
		"bridge":  h.enabled,
		"voices":  voices,
	})
}
