package asha

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmncha/health-assistant/backend/internal/model/asha"
	"github.com/rmncha/health-assistant/backend/pkg/utils"
)

// Handler ASHA工作者目录的HTTP处理器
type Handler struct {
	workers asha.Store
}

// New 创建ASHA目录处理器
func New(workers asha.Store) *Handler {
	return &Handler{workers: workers}
}

// RegisterRoutes 注册ASHA目录相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/asha-workers", func(sr chi.Router) {
		sr.Get("/", h.handleList)
		sr.Get("/location", h.handleByLocation)
		sr.Get("/{workerID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondData(w, http.StatusOK, h.workers.List())
}

// handleByLocation 按区县和邦过滤，两个参数都可以省略
func (h *Handler) handleByLocation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	utils.RespondData(w, http.StatusOK, h.workers.FindByLocation(query.Get("district"), query.Get("state")))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	worker, ok := h.workers.FindByID(chi.URLParam(r, "workerID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "ASHA worker not found")
		return
	}
	utils.RespondData(w, http.StatusOK, worker)
}
