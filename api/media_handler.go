package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/errs"
	"portfolio-backend/services"
)

const maxUploadSize = 10 << 20 // 10MB

// uploadPrefixes maps the upload kind to its storage prefix, mirroring the
// per-entity media folders (avatars, project images, blog images).
var uploadPrefixes = map[string]string{
	"avatar":  "avatars",
	"project": "projects",
	"blog":    "blog",
}

type mediaHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     services.MediaStore
}

func newMediaHandler(store services.MediaStore) mediaHandler {
	logger := log.With().Str("handlerName", "mediaHandler").Logger()

	return mediaHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// upload accepts a multipart file plus a kind field and returns the stored
// asset's URL for use in avatar/image fields (admin only)
func (h mediaHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "media storage is not configured"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart payload"))
			return
		}

		kind := r.FormValue("kind")
		prefix, ok := uploadPrefixes[kind]
		if !ok {
			h.responder.WriteError(w, errs.NewInvalidFieldError("kind", "must be one of avatar, project, blog"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().Unix(), uuid.NewString()[:8], filepath.Ext(header.Filename))

		url, err := h.store.Put(r.Context(), key, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to store uploaded file")
			h.responder.WriteError(w, errs.NewInternalError("failed to store uploaded file"))
			return
		}

		h.responder.WriteCreated(w, map[string]string{"url": url})
	}
}
