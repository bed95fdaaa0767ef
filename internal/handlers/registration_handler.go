package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/coopebred/registro-socios/internal/models"
	"github.com/coopebred/registro-socios/internal/registration"
	"github.com/coopebred/registro-socios/internal/utils"
)

// RegistrationHandler handles the member registration endpoints
type RegistrationHandler struct {
	service *registration.Service
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(service *registration.Service) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// RegisterIndividual handles POST /registrar-socio-individual
func (h *RegistrationHandler) RegisterIndividual(w http.ResponseWriter, r *http.Request) {
	var req models.IndividualRegistrationRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		slog.Warn("Rejected individual registration body", "error", err)
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrInvalidBody.Error())
		return
	}

	resp, err := h.service.RegisterIndividual(r.Context(), &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// RegisterCompany handles POST /registrar-socio-empresa
func (h *RegistrationHandler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	var req models.CorporateRegistrationRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		slog.Warn("Rejected corporate registration body", "error", err)
		utils.RespondWithError(w, http.StatusBadRequest, utils.ErrInvalidBody.Error())
		return
	}

	resp, err := h.service.RegisterCompany(r.Context(), &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// respondWithServiceError maps registration errors onto status codes.
// Validation and duplicate errors are 400; everything else is a store failure.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registration.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, registration.MsgMissingFields)
	case errors.Is(err, registration.ErrDuplicateCedula):
		utils.RespondWithError(w, http.StatusBadRequest, registration.MsgDuplicateCedula)
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
