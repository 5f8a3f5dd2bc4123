package api

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
	"portfolio-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	notifier    services.Notifier
}

func newContactHandler(contactRepo *database.ContactRepo, notifier services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// ContactCreateRequest is the public "send a message" payload
type ContactCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactUpdateRequest carries the admin-side mutation; in practice only
// is_read is toggled.
type ContactUpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
	IsRead  *bool   `json:"is_read"`
}

// createContact accepts a message from any caller, anonymous included
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if err := validateContactCreate(req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact := models.Contact{
			Name:    strings.TrimSpace(req.Name),
			Email:   strings.TrimSpace(req.Email),
			Message: req.Message,
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact", "contact", err))
			return
		}

		// Best-effort owner notification; delivery failure never fails
		// the request.
		if h.notifier != nil {
			if err := h.notifier.ContactReceived(&contact); err != nil {
				h.logger.Error().Err(err).Uint("contactID", contact.ID).Msg("Failed to send contact notification")
			}
		}

		h.responder.WriteCreated(w, contact)
	}
}

// listContacts returns all contact messages (admin only, enforced by the
// route policy)
func (h contactHandler) listContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contacts", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, contacts)
	}
}

// getContact retrieves a single contact message by id (admin only)
func (h contactHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, dbErr := h.contactRepo.FindByID(id)
		if dbErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "contact", dbErr))
			return
		}

		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFound("contact"))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

// updateContact mutates a contact message (admin only); fields absent from
// the payload keep their stored values
func (h contactHandler) updateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, dbErr := h.contactRepo.FindByID(id)
		if dbErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "contact", dbErr))
			return
		}
		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFound("contact"))
			return
		}

		var req ContactUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact update body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if req.Name != nil {
			contact.Name = *req.Name
		}
		if req.Email != nil {
			if _, mailErr := mail.ParseAddress(*req.Email); mailErr != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("email", "not a valid email address"))
				return
			}
			contact.Email = *req.Email
		}
		if req.Message != nil {
			contact.Message = *req.Message
		}
		if req.IsRead != nil {
			contact.IsRead = *req.IsRead
		}

		if err := h.contactRepo.Update(contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update contact", "contact", err))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

// deleteContact removes a contact message by id (admin only)
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, dbErr := h.contactRepo.FindByID(id)
		if dbErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "contact", dbErr))
			return
		}
		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFound("contact"))
			return
		}

		if err := h.contactRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete contact", "contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}

// validateContactCreate enumerates per-field problems with the public
// contact payload
func validateContactCreate(req ContactCreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if strings.TrimSpace(req.Email) == "" {
		return errs.NewMissingRequiredFieldError("email")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return errs.NewInvalidFieldError("email", "not a valid email address")
	}
	if strings.TrimSpace(req.Message) == "" {
		return errs.NewMissingRequiredFieldError("message")
	}
	return nil
}
