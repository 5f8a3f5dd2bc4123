package api

// routeHandlers contains all the handlers for the exposed collections
type routeHandlers struct {
	categoryHandler categoryHandler
	tagHandler      tagHandler
	profileHandler  profileHandler
	skillHandler    skillHandler
	projectHandler  projectHandler
	blogPostHandler blogPostHandler
	contactHandler  contactHandler
	mediaHandler    mediaHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}
