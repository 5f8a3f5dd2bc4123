package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
	tagRepo      *database.TagRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo, tagRepo *database.TagRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
		tagRepo:      tagRepo,
	}
}

// BlogPostWriteRequest is the narrow write shape for blog posts: title,
// content, image and tag ids only. Slug, timestamps and embedded tag bodies
// exist solely on the read side.
type BlogPostWriteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
	Tags    *[]uint `json:"tags"`
}

// listBlogPosts retrieves all blog posts newest-first with tags embedded
func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPosts, err := h.blogPostRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}

		resources := make([]BlogPostResource, 0, len(blogPosts))
		for _, blogPost := range blogPosts {
			resources = append(resources, toBlogPostResource(blogPost))
		}

		h.responder.WriteJSON(w, resources)
	}
}

// getBlogPost retrieves a single blog post by its slug
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blogPost, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}

		if blogPost == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		h.responder.WriteJSON(w, toBlogPostResource(blogPost))
	}
}

// createBlogPost creates a new blog post from the narrow write shape. The
// slug derives from the title unless a colliding derivation is rejected by
// the store.
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogPostWriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog post", err))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Content == nil || *req.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		tags, err := h.resolveTags(req.Tags)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		blogPost := models.BlogPost{
			Title:   *req.Title,
			Content: *req.Content,
			Tags:    tags,
		}
		if req.Image != nil {
			blogPost.Image = *req.Image
		}

		if err := h.blogPostRepo.Add(&blogPost); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog_post", err))
			return
		}

		// Reload to pick up store-assigned timestamps and tag ordering
		createdBlogPost, err := h.blogPostRepo.FindBySlug(blogPost.Slug)
		if err != nil || createdBlogPost == nil {
			h.responder.WriteError(w, wrapDatabaseError("find created blog post", "blog_post", err))
			return
		}

		h.responder.WriteCreated(w, toBlogPostResource(createdBlogPost))
	}
}

// updateBlogPost rewrites a blog post from the narrow write shape. PUT
// requires title and content; PATCH applies only the fields present. The
// slug never changes, even when the title does.
func (h blogPostHandler) updateBlogPost(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		existing, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		var req BlogPostWriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog post", err))
			return
		}

		if !partial {
			if req.Title == nil || *req.Title == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
				return
			}
			if req.Content == nil || *req.Content == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
				return
			}
		}

		// Resolve tags before touching the row so a bad tag id rejects
		// the whole request with nothing persisted
		tags, tagErr := h.resolveTags(req.Tags)
		if tagErr != nil {
			h.responder.WriteError(w, tagErr)
			return
		}

		if req.Title != nil {
			existing.Title = *req.Title
		}
		if req.Content != nil {
			existing.Content = *req.Content
		}
		if req.Image != nil {
			existing.Image = *req.Image
		}

		if err := h.blogPostRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog_post", err))
			return
		}

		if req.Tags != nil {
			if err := h.blogPostRepo.ReplaceTags(existing, tags); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update blog post tags", "blog_post", err))
				return
			}
		}

		updatedBlogPost, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil || updatedBlogPost == nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, toBlogPostResource(updatedBlogPost))
	}
}

// resolveTags maps tag ids from the write shape to stored tags. An unknown
// id fails validation on the tags field.
func (h blogPostHandler) resolveTags(ids *[]uint) ([]models.Tag, error) {
	if ids == nil || len(*ids) == 0 {
		return nil, nil
	}

	tags, err := h.tagRepo.FindByIDs(*ids)
	if err != nil {
		return nil, wrapDatabaseError("find tags", "tags", err)
	}

	found := make(map[uint]bool, len(tags))
	for _, tag := range tags {
		found[tag.ID] = true
	}
	for _, id := range *ids {
		if !found[id] {
			h.logger.Warn().Uint("tagID", id).Msg("blog post write referenced unknown tag")
			return nil, errs.NewInvalidFieldError("tags", "unknown tag id")
		}
	}

	return tags, nil
}
