// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/sectioncss/internal/auth"
	"github.com/thatcatcamp/sectioncss/internal/db"
	"github.com/thatcatcamp/sectioncss/internal/middleware"
	"github.com/thatcatcamp/sectioncss/internal/users"
	"go.uber.org/zap"
)

// LoginFormHandler shows the login form
func (h *Handlers) LoginFormHandler(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "")
}

// LoginHandler checks credentials and starts a session
func (h *Handlers) LoginHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	admin, err := users.Authenticate(db.GetDB(), username, password)
	if err != nil {
		if !errors.Is(err, users.ErrInvalidCredentials) {
			h.log.Error("Login failed", zap.Error(err))
		}
		h.log.Info("Rejected login", zap.String("username", username), zap.String("ip", c.ClientIP()))
		h.renderLogin(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := auth.SetSession(c, admin); err != nil {
		h.log.Error("Failed to create session", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.log.Info("Admin logged in", zap.String("username", admin.Username))
	c.Redirect(http.StatusFound, "/admin/customize")
}

// LogoutHandler ends the session
func (h *Handlers) LogoutHandler(c *gin.Context) {
	auth.ClearSession(c)
	c.Redirect(http.StatusFound, auth.LoginPath)
}

func (h *Handlers) renderLogin(c *gin.Context, status int, message string) {
	errorHTML := ""
	if message != "" {
		errorHTML = `<p class="error">` + h.clean(message) + `</p>`
	}

	page := `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Login - sectioncss</title>
    <style>` + GetAdminCSS() + `</style>
</head>
<body>
    <div class="login card">
        <h1>Customizer login</h1>
        ` + errorHTML + `
        <form method="POST" action="/admin/login">
            ` + middleware.GetCSRFTokenHTML(c) + `
            <label for="username">Username</label>
            <input type="text" id="username" name="username" autocomplete="username" required>
            <label for="password">Password</label>
            <input type="password" id="password" name="password" autocomplete="current-password" required>
            <button type="submit" class="btn">Log in</button>
        </form>
    </div>
</body>
</html>`

	c.Data(status, "text/html; charset=utf-8", []byte(page))
}
