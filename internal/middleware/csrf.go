// SPDX-License-Identifier: MIT
package middleware

import (
	"crypto/subtle"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/sectioncss/internal/auth"
)

const (
	csrfCookieName = "sectioncss_csrf"
	csrfHeaderName = "X-CSRF-Token"
	csrfFormField  = "csrf_token"
	csrfContextKey = "csrf_token"
)

// CSRFMiddleware issues a double-submit token cookie and checks it on
// state-changing requests
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(csrfCookieName)
		if err != nil || token == "" {
			token, err = auth.GenerateSecret()
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetSameSite(http.SameSiteStrictMode)
			c.SetCookie(csrfCookieName, token, 3600*8, "/admin", "", c.Request.TLS != nil, true)
		}

		c.Set(csrfContextKey, token)

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			clientToken := c.GetHeader(csrfHeaderName)
			if clientToken == "" {
				clientToken = c.PostForm(csrfFormField)
			}
			if subtle.ConstantTimeCompare([]byte(clientToken), []byte(token)) != 1 {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid CSRF token"})
				return
			}
		}

		c.Next()
	}
}

// GetCSRFToken retrieves the CSRF token from the context for use in templates
func GetCSRFToken(c *gin.Context) string {
	token, ok := c.Get(csrfContextKey)
	if !ok {
		return ""
	}
	s, _ := token.(string)
	return s
}

// GetCSRFTokenHTML returns a hidden form input carrying the token, or ""
// when the middleware did not run
func GetCSRFTokenHTML(c *gin.Context) string {
	token := GetCSRFToken(c)
	if token == "" {
		return ""
	}
	return `<input type="hidden" name="` + csrfFormField + `" value="` + html.EscapeString(token) + `">`
}
