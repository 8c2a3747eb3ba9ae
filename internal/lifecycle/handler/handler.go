// Package handler is the thin HTTP layer over the lifecycle service. It
// parses ids at the trust boundary, delegates, and renders reports; all
// partial-failure semantics live in the orchestrators.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"custodian/internal/lifecycle/models"
	"custodian/internal/platform/middleware"
	"custodian/internal/transport/http/shared"
	id "custodian/pkg/domain"
	dErrors "custodian/pkg/domain-errors"
)

// maxBulkUsers bounds one bulk request; larger campaigns are split by the
// caller.
const maxBulkUsers = 1000

// Service defines the lifecycle operations the handler exposes.
type Service interface {
	ExportUserData(ctx context.Context, userID id.UserID) (*models.ExportPackage, error)
	DeleteUserData(ctx context.Context, userID id.UserID) (*models.ErasureReport, error)
	BulkDeleteUsers(ctx context.Context, userIDs []id.UserID) (*models.BulkErasureResult, error)
	FreezeUserData(ctx context.Context, userID id.UserID) (*models.RestrictionReport, error)
	UnfreezeUserData(ctx context.Context, userID id.UserID) (*models.RestrictionReport, error)
}

type Handler struct {
	service   Service
	logger    *slog.Logger
	validator *middleware.JWTValidator
}

// New creates the lifecycle Handler.
func New(service Service, logger *slog.Logger, validator *middleware.JWTValidator) *Handler {
	return &Handler{service: service, logger: logger, validator: validator}
}

// Register mounts the privacy routes with the full middleware chain.
func (h *Handler) Register(r chi.Router) {
	privacy := chi.NewRouter()
	privacy.Use(middleware.Recovery(h.logger))
	privacy.Use(middleware.RequestID)
	privacy.Use(middleware.Logger(h.logger))
	privacy.Use(middleware.Timeout(60 * time.Second))
	privacy.Use(middleware.RequireAdmin(h.validator, h.logger))

	privacy.Post("/users/{userID}/export", h.handleExport)
	privacy.Delete("/users/{userID}", h.handleErasure)
	privacy.Post("/users/{userID}/restriction", h.handleFreeze)
	privacy.Delete("/users/{userID}/restriction", h.handleUnfreeze)
	privacy.Post("/erasures", h.handleBulkErasure)

	r.Mount("/v1/privacy", privacy)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		shared.WriteError(w, err)
		return userID, false
	}
	return userID, true
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	pkg, err := h.service.ExportUserData(r.Context(), userID)
	if err != nil {
		h.fail(r.Context(), w, "export", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, pkg)
}

func (h *Handler) handleErasure(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	report, err := h.service.DeleteUserData(r.Context(), userID)
	if err != nil {
		h.fail(r.Context(), w, "erasure", err)
		return
	}
	// The report itself carries the honest status; HTTP 200 means the
	// orchestration ran, not that every component succeeded.
	shared.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleFreeze(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	report, err := h.service.FreezeUserData(r.Context(), userID)
	if err != nil {
		h.fail(r.Context(), w, "freeze", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleUnfreeze(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	report, err := h.service.UnfreezeUserData(r.Context(), userID)
	if err != nil {
		h.fail(r.Context(), w, "unfreeze", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, report)
}

type bulkErasureRequest struct {
	UserIDs []string `json:"user_ids"`
}

func (h *Handler) handleBulkErasure(w http.ResponseWriter, r *http.Request) {
	var req bulkErasureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if len(req.UserIDs) > maxBulkUsers {
		shared.WriteError(w, dErrors.Newf(dErrors.CodeBadRequest, "at most %d users per request", maxBulkUsers))
		return
	}

	userIDs := make([]id.UserID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		userID, err := id.ParseUserID(raw)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		userIDs = append(userIDs, userID)
	}

	result, err := h.service.BulkDeleteUsers(r.Context(), userIDs)
	if err != nil {
		h.fail(r.Context(), w, "bulk erasure", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	h.logger.ErrorContext(ctx, "lifecycle operation failed",
		"operation", operation,
		"request_id", middleware.GetRequestID(ctx),
		"error", err,
	)
	shared.WriteError(w, err)
}
