package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/coopebred/registro-socios/internal/models"
	"github.com/coopebred/registro-socios/internal/repository"
	"github.com/coopebred/registro-socios/internal/utils"
)

// ServiceName is reported by the health endpoint
const ServiceName = "registro-socios"

// RootMessage is the plain-text body of GET /
const RootMessage = "Backend funcionando"

// HealthHandler reports liveness and store reachability
type HealthHandler struct {
	store       repository.MemberStore
	storeDriver string
	timeout     time.Duration
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store repository.MemberStore, storeDriver string) *HealthHandler {
	return &HealthHandler{store: store, storeDriver: storeDriver, timeout: 5 * time.Second}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(RootMessage))
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status:  "unhealthy",
			Service: ServiceName,
			Store:   h.storeDriver,
			Error:   err.Error(),
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Store:   h.storeDriver,
	})
}
