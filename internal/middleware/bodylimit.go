package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// BodyLimit rejects bodies larger than max with 413. Declared lengths are
// checked up front; chunked bodies are capped by http.MaxBytesReader and
// surface as IsBodyTooLarge errors when the handler parses the form.
func BodyLimit(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > max {
			AbortTooLarge(c, max)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		c.Next()
	}
}

func IsBodyTooLarge(err error) bool {
	_, ok := BodyLimitOf(err)
	return ok
}

// BodyLimitOf returns the limit a too-large body ran into.
func BodyLimitOf(err error) (int64, bool) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return mbe.Limit, true
	}
	return 0, false
}

// AbortTooLarge answers 413 naming the configured limit.
func AbortTooLarge(c *gin.Context, limit int64) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": TooLargeMessage(limit)})
}

func TooLargeMessage(limit int64) string {
	return fmt.Sprintf("File is too large. Maximum upload size is %s.", formatSize(limit))
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return strings.TrimSuffix(strconv.FormatFloat(float64(n)/(1<<20), 'f', 1, 64), ".0") + " MB"
	case n >= 1<<10:
		return strconv.FormatInt(n>>10, 10) + " KB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}
