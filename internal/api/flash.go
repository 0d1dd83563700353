package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "featureboard_flash"

// setFlash stores a one-shot notification for the next page render.
func setFlash(c *gin.Context, level, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, level+"|"+message, 60, "/", "", false, true)
}

// takeFlash reads and clears the pending notification.
func takeFlash(c *gin.Context) *toast {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	level, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &toast{Level: level, Message: message}
}
