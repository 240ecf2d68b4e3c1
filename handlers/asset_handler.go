package handlers

import (
	"errors"
	"net/http"

	"assetverse/models"
	"assetverse/repository"
	"assetverse/utils"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type AssetHandler struct {
	Repo repository.AssetRepository
	Log  zerolog.Logger
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("asset list failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc models.Document
	if err := utils.ParseJSON(r, &doc); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if doc == nil {
		doc = models.Document{}
	}

	res, err := h.Repo.Create(r.Context(), doc)
	if err != nil {
		h.Log.Error().Err(err).Msg("asset insert failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields models.Document
	if err := utils.ParseJSON(r, &fields); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if fields == nil {
		fields = models.Document{}
	}

	res, err := h.Repo.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "asset not found")
			return
		}
		h.Log.Error().Err(err).Str("id", id).Msg("asset update failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "asset not found")
			return
		}
		h.Log.Error().Err(err).Str("id", id).Msg("asset delete failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}
