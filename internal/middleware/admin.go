package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore keeps admin pages out of browser and proxy caches so a logged-out
// browser cannot replay them from history.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
