package api

import (
	"portfolio-backend/database"
	"portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, media services.MediaStore, notifier services.Notifier) *routeHandlers {
	return &routeHandlers{
		categoryHandler: newCategoryHandler(database.CategoryRepo()),
		tagHandler:      newTagHandler(database.TagRepo()),
		profileHandler:  newProfileHandler(database.ProfileRepo()),
		skillHandler:    newSkillHandler(database.SkillRepo()),
		projectHandler:  newProjectHandler(database.ProjectRepo()),
		blogPostHandler: newBlogPostHandler(database.BlogPostRepo(), database.TagRepo()),
		contactHandler:  newContactHandler(database.ContactRepo(), notifier),
		mediaHandler:    newMediaHandler(media),
	}
}
