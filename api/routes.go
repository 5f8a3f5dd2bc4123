package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// accessPolicy is the declared access level of a route. Every route carries
// one explicitly; nothing inherits an implicit default.
type accessPolicy int

const (
	// policyOpen permits anonymous callers
	policyOpen accessPolicy = iota
	// policyAdmin requires a caller the auth collaborator marks administrative
	policyAdmin
)

type route struct {
	method  string
	pattern string
	policy  accessPolicy
	handler http.HandlerFunc
}

// routeTable enumerates every exposed operation with its policy. Category,
// Tag, Project and BlogPost are addressed by slug; Profile, Skill and
// Contact by numeric id. Built once at startup, never mutated after.
func routeTable(h *routeHandlers) []route {
	return []route{
		{http.MethodGet, "/categories", policyOpen, h.categoryHandler.listCategories()},
		{http.MethodGet, "/categories/{slug}", policyOpen, h.categoryHandler.getCategory()},

		{http.MethodGet, "/tags", policyOpen, h.tagHandler.listTags()},
		{http.MethodGet, "/tags/{slug}", policyOpen, h.tagHandler.getTag()},

		{http.MethodGet, "/profile", policyOpen, h.profileHandler.listProfiles()},
		{http.MethodGet, "/profile/{profileID}", policyOpen, h.profileHandler.getProfile()},

		// The flat skill list is replaced by the category-grouped view
		{http.MethodGet, "/skills", policyOpen, h.skillHandler.listSkillsGrouped()},
		{http.MethodGet, "/skills/{skillID}", policyOpen, h.skillHandler.getSkill()},

		{http.MethodGet, "/projects", policyOpen, h.projectHandler.listProjects()},
		{http.MethodGet, "/projects/{slug}", policyOpen, h.projectHandler.getProject()},

		// Blog writes are deliberately open, matching the public surface
		// this API replaces; tighten here if that ever changes.
		{http.MethodGet, "/blog", policyOpen, h.blogPostHandler.listBlogPosts()},
		{http.MethodGet, "/blog/{slug}", policyOpen, h.blogPostHandler.getBlogPost()},
		{http.MethodPost, "/blog", policyOpen, h.blogPostHandler.createBlogPost()},
		{http.MethodPut, "/blog/{slug}", policyOpen, h.blogPostHandler.updateBlogPost(false)},
		{http.MethodPatch, "/blog/{slug}", policyOpen, h.blogPostHandler.updateBlogPost(true)},

		// Anyone may send a message; only the admin may read or manage them
		{http.MethodPost, "/contact", policyOpen, h.contactHandler.createContact()},
		{http.MethodGet, "/contact", policyAdmin, h.contactHandler.listContacts()},
		{http.MethodGet, "/contact/{contactID}", policyAdmin, h.contactHandler.getContact()},
		{http.MethodPut, "/contact/{contactID}", policyAdmin, h.contactHandler.updateContact()},
		{http.MethodPatch, "/contact/{contactID}", policyAdmin, h.contactHandler.updateContact()},
		{http.MethodDelete, "/contact/{contactID}", policyAdmin, h.contactHandler.deleteContact()},

		{http.MethodPost, "/uploads", policyAdmin, h.mediaHandler.upload()},
	}
}

// setupRoutes registers the route table, wrapping admin-only operations with
// the admin guard
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	for _, rt := range routeTable(handlers) {
		var handler http.Handler = rt.handler
		if rt.policy == policyAdmin {
			handler = authMiddleware.requireAdmin(handler)
		}
		r.Method(rt.method, rt.pattern, handler)
	}
}
