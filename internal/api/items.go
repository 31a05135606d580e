package api

import (
	"net/http" // HTTP status codes

	"lostfound_portal/internal/session" // Session context helpers
	"lostfound_portal/internal/store"   // Data stores

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// PostItemRequest represents the post-item form
type PostItemRequest struct {
	ItemType    string `form:"item_type" binding:"required,oneof=lost found"` // "lost" or "found"
	ItemName    string `form:"item_name" binding:"required"`                  // Item name
	Description string `form:"description" binding:"required"`                // Free-text description
}

// PostItemFormHandler renders the post-item form
func PostItemFormHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "post_item.html", gin.H{})
	}
}

// PostItemHandler creates an item report from the current user's snapshot
func PostItemHandler(items *store.ItemStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.CurrentUser(c) // Reporter, set by RequireAuth
		if user == nil {
			// No authenticated user, redirect to login
			c.Redirect(http.StatusFound, "/login")
			return
		}
		var req PostItemRequest // Bind form request to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, re-render the form with a message
			c.HTML(http.StatusBadRequest, "post_item.html", gin.H{"Error": "Please fill in all fields with a valid item type."})
			return
		}
		// Create the item with the reporter's identity snapshot
		item, err := items.Create(req.ItemType, req.ItemName, req.Description, user)
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // Reporter user ID
				"error":   err.Error(), // Error message
			}).Error("Item post failed") // Log post failure
			c.HTML(http.StatusInternalServerError, "post_item.html", gin.H{"Error": "Posting failed, please try again."})
			return
		}
		// Log successful post
		logrus.WithFields(logrus.Fields{
			"item_id":   item.ID,       // New item ID
			"item_type": item.ItemType, // "lost" or "found"
			"user_id":   user.ID,       // Reporter user ID
		}).Info("Item posted") // Log post success
		setFlash(c, "Item posted successfully!")    // Notice for the board
		c.Redirect(http.StatusFound, "/view_items") // Redirect to the board
	}
}

// ViewItemsHandler renders the public board, oldest posts first
func ViewItemsHandler(items *store.ItemStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := items.ListAll() // Always reads the latest committed state
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Listing items failed")
			c.String(http.StatusInternalServerError, "failed to load items")
			return
		}
		c.HTML(http.StatusOK, "view_items.html", gin.H{
			"Items":  all,          // Every report, oldest first
			"Notice": takeFlash(c), // Pending notice, if any
		})
	}
}
