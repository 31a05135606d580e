package api

import (
	"net/http" // Cookie SameSite mode

	"github.com/gin-gonic/gin" // Gin web framework
)

// flashCookie carries a one-shot notice across a redirect
const flashCookie = "flash"

// setFlash stores a notice for the next rendered page
func setFlash(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

// takeFlash reads and clears the pending notice, if any
func takeFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	// Clear the cookie so the notice shows only once
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
