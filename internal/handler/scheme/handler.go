package scheme

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmncha/health-assistant/backend/internal/model/scheme"
	"github.com/rmncha/health-assistant/backend/pkg/utils"
)

// Handler 健康计划的HTTP处理器
type Handler struct {
	schemes scheme.Store
}

// New 创建健康计划处理器
func New(schemes scheme.Store) *Handler {
	return &Handler{schemes: schemes}
}

// RegisterRoutes 注册健康计划相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/health-schemes", func(sr chi.Router) {
		sr.Get("/", h.handleList)
		sr.Get("/category", h.handleByCategory)
		sr.Get("/{schemeID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondData(w, http.StatusOK, h.schemes.List())
}

// handleByCategory 按类别过滤，未提供类别时返回全部
func (h *Handler) handleByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	utils.RespondData(w, http.StatusOK, h.schemes.FindByCategory(category))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	item, ok := h.schemes.FindByID(chi.URLParam(r, "schemeID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Health scheme not found")
		return
	}
	utils.RespondData(w, http.StatusOK, item)
}
