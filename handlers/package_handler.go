package handlers

import (
	"net/http"

	"assetverse/repository"
	"assetverse/utils"

	"github.com/rs/zerolog"
)

type PackageHandler struct {
	Repo repository.PackageRepository
	Log  zerolog.Logger
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.Repo.List(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("package list failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, packages)
}
