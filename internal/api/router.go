package api

import (
	"lostfound_portal/internal/session" // Session manager
	"lostfound_portal/internal/store"   // Data stores
	"lostfound_portal/internal/web"     // Embedded templates

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter wires the stores and session manager into the seven routes.
// Handlers get their dependencies here instead of reaching for globals.
func NewRouter(users *store.UserStore, items *store.ItemStore, sessions *session.Manager) *gin.Engine {
	r := gin.Default()                         // Gin router instance
	r.SetHTMLTemplate(web.Templates())         // Install the embedded page templates
	requireAuth := sessions.RequireAuth(users) // Guard for protected routes

	// Public routes
	r.GET("/", HomeHandler())                       // Landing page
	r.GET("/signup", SignupFormHandler())           // Signup form
	r.POST("/signup", SignupHandler(users))         // Signup submission
	r.GET("/login", LoginFormHandler())             // Login form
	r.POST("/login", LoginHandler(users, sessions)) // Login submission
	r.GET("/view_items", ViewItemsHandler(items))   // Public board

	// Protected routes
	r.GET("/logout", requireAuth, LogoutHandler(sessions))    // Logout
	r.GET("/dashboard", requireAuth, DashboardHandler())      // Authenticated landing
	r.GET("/post_item", requireAuth, PostItemFormHandler())   // Post-item form
	r.POST("/post_item", requireAuth, PostItemHandler(items)) // Post-item submission

	return r
}
