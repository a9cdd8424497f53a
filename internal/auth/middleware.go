// SPDX-License-Identifier: MIT
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/sectioncss/internal/db"
	"github.com/thatcatcamp/sectioncss/internal/models"
)

// CookieName holds the admin session token
const CookieName = "sectioncss_token"

// LoginPath is where unauthenticated browsers are sent
const LoginPath = "/admin/login"

const adminKey = "admin"

// RequireAdmin validates the session cookie and loads the admin into the
// context. API requests get 401, browsers are redirected to the login page.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		deny := func() {
			if strings.HasPrefix(c.Request.URL.Path, "/admin/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		}

		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			deny()
			return
		}

		claims, err := ValidateToken(cookie)
		if err != nil {
			deny()
			return
		}

		var admin models.Admin
		if err := db.GetDB().First(&admin, claims.AdminID).Error; err != nil {
			deny()
			return
		}

		c.Set(adminKey, &admin)
		c.Next()
	}
}

// CurrentAdmin returns the admin set by RequireAdmin
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*models.Admin)
	return admin, ok
}

// SetSession writes the session cookie for an admin
func SetSession(c *gin.Context, admin *models.Admin) error {
	token, err := GenerateToken(admin)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(Expiry().Seconds()), "/", "", c.Request.TLS != nil, true)
	return nil
}

// ClearSession removes the session cookie
func ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", c.Request.TLS != nil, true)
}
