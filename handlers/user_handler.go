package handlers

import (
	"net/http"

	"assetverse/middleware"
	"assetverse/models"
	"assetverse/repository"
	"assetverse/utils"

	"github.com/rs/zerolog"
)

type UserHandler struct {
	Repo repository.UserRepository
	Log  zerolog.Logger
}

// Create registers a user on first sign-in. An email that already exists is
// a conflict regardless of the rest of the payload.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.ParseJSON(r, &user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if user.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}

	existing, err := h.Repo.GetByEmail(r.Context(), user.Email)
	if err != nil {
		h.Log.Error().Err(err).Str("email", user.Email).Msg("user lookup failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}
	if existing != nil {
		utils.RespondWithError(w, http.StatusConflict, "user already exists")
		return
	}

	res, err := h.Repo.Create(r.Context(), &user)
	if err != nil {
		h.Log.Error().Err(err).Str("email", user.Email).Msg("user insert failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, res)
}

// Role returns the caller's stored role. A caller with no user record gets
// {"role": null}, not an error.
func (h *UserHandler) Role(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
		return
	}

	user, err := h.Repo.GetByEmail(r.Context(), email)
	if err != nil {
		h.Log.Error().Err(err).Str("email", email).Msg("user lookup failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}

	var role *string
	if user != nil && user.Role != "" {
		role = &user.Role
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]*string{"role": role})
}

// UpdateName changes the caller's display name. Matching no document is
// treated as success.
func (h *UserHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
		return
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := utils.ParseJSON(r, &body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	res, err := h.Repo.UpdateName(r.Context(), email, body.Name)
	if err != nil {
		h.Log.Error().Err(err).Str("email", email).Msg("user update failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, res)
}
