package register

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmncha/health-assistant/backend/internal/model/directory"
	"github.com/rmncha/health-assistant/backend/internal/model/locale"
	registrationService "github.com/rmncha/health-assistant/backend/internal/service/registration"
	"github.com/rmncha/health-assistant/backend/pkg/utils"
)

// Handler 孕产登记的HTTP处理器
type Handler struct {
	svc   *registrationService.Service
	table *locale.Table
}

// New 创建登记处理器
func New(svc *registrationService.Service, table *locale.Table) *Handler {
	return &Handler{svc: svc, table: table}
}

// RegisterRoutes 注册登记相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/register", func(sr chi.Router) {
		sr.Post("/", h.handleRegister)
		sr.Get("/", h.handleList)
		sr.Get("/{registrationID}", h.handleGet)
	})
}

type validationResponse struct {
	Success bool                             `json:"success"`
	Message string                           `json:"message"`
	Errors  []registrationService.FieldError `json:"errors"`
}

// handleRegister 校验并保存登记表单
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registrationService.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lang := registrationService.Language(req.PreferredLanguage)
	record, err := h.svc.Register(r.Context(), req)
	if err != nil {
		var verr *registrationService.ValidationError
		if errors.As(err, &verr) {
			utils.RespondJSON(w, http.StatusBadRequest, validationResponse{
				Success: false,
				Message: h.table.Text(locale.KeyRegisterInvalid, lang),
				Errors:  verr.Fields,
			})
			return
		}
		log.Printf("[register] save failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, h.table.Text(locale.KeyRegisterFailed, lang))
		return
	}

	log.Printf("[register] stored registration id=%s district=%s", record.ID, record.District)
	utils.RespondMessage(w, http.StatusCreated, h.table.Text(locale.KeyRegisterSuccess, lang), record)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("[register] list failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to list registrations")
		return
	}
	utils.RespondData(w, http.StatusOK, records)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.Get(r.Context(), chi.URLParam(r, "registrationID"))
	switch {
	case errors.Is(err, directory.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, "Registration not found")
		return
	case err != nil:
		log.Printf("[register] lookup failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load registration")
		return
	}
	utils.RespondData(w, http.StatusOK, record)
}
