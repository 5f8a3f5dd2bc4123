package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// listProfiles returns the profile information. One row is expected but the
// response stays a list, matching the collection contract.
func (h profileHandler) listProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := h.profileRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profiles", "profiles", err))
			return
		}
		if profiles == nil {
			profiles = []*models.Profile{}
		}

		h.responder.WriteJSON(w, profiles)
	}
}

// getProfile retrieves the profile details by id
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "profileID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profile, dbErr := h.profileRepo.FindByID(id)
		if dbErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", dbErr))
			return
		}

		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// parseIDParam reads a numeric id from the named chi URL parameter
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}
