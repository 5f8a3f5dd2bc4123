package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// listSkillsGrouped replaces the flat skill list with a mapping from
// category display name to the skills under it. Bucket keys appear in
// first-encounter order over the scan; categories sharing a display name
// share a bucket.
func (h skillHandler) listSkillsGrouped() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
			return
		}

		h.responder.WriteJSON(w, groupSkillsByCategory(skills))
	}
}

// getSkill retrieves a single skill by id
func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, dbErr := h.skillRepo.FindByID(id)
		if dbErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skill", "skill", dbErr))
			return
		}

		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill"))
			return
		}

		h.responder.WriteJSON(w, toSkillResource(skill))
	}
}
