package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	corsHeaders = strings.Join([]string{"Content-Type", "Authorization"}, ", ")
	corsMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}, ", ")
)

// CORSMiddleware allows credentialed requests from the origin of appURL,
// the browser app that owns the session cookie. An empty or unparsable
// appURL reflects any origin. Preflight requests end here with 204.
func CORSMiddleware(appURL string) gin.HandlerFunc {
	allowed := originOf(appURL)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && (allowed == "" || strings.EqualFold(origin, allowed)) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// originOf reduces a URL such as http://localhost:3000/app to
// http://localhost:3000.
func originOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
