package api

import (
	"net/http" // HTTP status codes

	"lostfound_portal/internal/session" // Session context helpers

	"github.com/gin-gonic/gin" // Gin web framework
)

// HomeHandler renders the public landing page
func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", gin.H{"Notice": takeFlash(c)})
	}
}

// DashboardHandler renders the authenticated landing page
func DashboardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"User":   session.CurrentUser(c), // Set by RequireAuth
			"Notice": takeFlash(c),           // Pending notice, if any
		})
	}
}
