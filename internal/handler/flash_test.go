package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"schoolsite/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashEngine(secure bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(FlashSessions(&config.SessionConfig{Secret: "flash-secret", Secure: secure}))
	r.GET("/set", func(c *gin.Context) { redirectWithFlash(c, "/show", flashSuccess, "Saved.") })
	r.GET("/show", func(c *gin.Context) { view(c, gin.H{}) })
	return r
}

func flashCookieOf(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == FlashCookie {
			return c
		}
	}
	return nil
}

func TestFlashCookieFollowsSecureSetting(t *testing.T) {
	for _, secure := range []bool{false, true} {
		w := httptest.NewRecorder()
		flashEngine(secure).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
		require.Equal(t, http.StatusFound, w.Code)
		c := flashCookieOf(w)
		require.NotNil(t, c)
		assert.Equal(t, secure, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	}
}

func TestFlashNeedsMatchingSecret(t *testing.T) {
	w := httptest.NewRecorder()
	flashEngine(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	c := flashCookieOf(w)
	require.NotNil(t, c)

	other := gin.New()
	other.Use(FlashSessions(&config.SessionConfig{Secret: "another-secret"}))
	other.GET("/show", func(c *gin.Context) { view(c, gin.H{}) })
	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(c)
	page := httptest.NewRecorder()
	other.ServeHTTP(page, req)
	assert.JSONEq(t, `{"flashes":[]}`, page.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(c)
	page = httptest.NewRecorder()
	flashEngine(false).ServeHTTP(page, req)
	assert.JSONEq(t, `{"flashes":[{"category":"success","message":"Saved."}]}`, page.Body.String())
}
