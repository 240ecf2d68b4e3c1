package handlers

import (
	"net/http"
	"time"

	"assetverse/models"
	"assetverse/repository"
	"assetverse/utils"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type RequestHandler struct {
	Repo repository.RequestRepository
	Log  zerolog.Logger
}

// Create persists an asset request. requestDate, approvalDate and
// requestStatus are server-controlled; client-supplied values for them are
// overwritten.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := utils.ParseJSON(r, &doc); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if doc == nil {
		doc = models.Document{}
	}

	doc[models.FieldRequestDate] = time.Now().UTC()
	doc[models.FieldApprovalDate] = nil
	doc[models.FieldRequestStatus] = models.StatusPending

	res, err := h.Repo.Create(r.Context(), doc)
	if err != nil {
		h.Log.Error().Err(err).Msg("request insert failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, res)
}

// ListByHR returns the requests whose hrEmail matches the path parameter.
func (h *RequestHandler) ListByHR(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	requests, err := h.Repo.List(r.Context(), email)
	if err != nil {
		h.Log.Error().Err(err).Str("hrEmail", email).Msg("request list failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, requests)
}
