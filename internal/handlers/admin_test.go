// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/sectioncss/internal/auth"
	"github.com/thatcatcamp/sectioncss/internal/db"
	"github.com/thatcatcamp/sectioncss/internal/models"
	"github.com/thatcatcamp/sectioncss/internal/users"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.SetDB(database)
	t.Cleanup(func() { db.SetDB(nil) })
	return database
}

func postLogin(h *Handlers, username, password string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	form := url.Values{}
	form.Add("username", username)
	form.Add("password", password)

	c.Request = httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	h.LoginHandler(c)
	c.Writer.WriteHeaderNow()
	return w
}

func TestLoginHandlerValidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("SECTIONCSS_JWT_SECRET", "handler-test-secret")
	database := setupHandlerTestDB(t)

	if _, err := users.CreateAdmin(database, "marc", "test-password"); err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	w := postLogin(newTestHandlers(t), "marc", "test-password")

	if w.Code != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/customize" {
		t.Errorf("Expected redirect to /admin/customize, got %s", loc)
	}

	found := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			found = true
			if cookie.Value == "" {
				t.Error("Cookie value should not be empty")
			}
			if !cookie.HttpOnly {
				t.Error("Session cookie should be HttpOnly")
			}
		}
	}
	if !found {
		t.Error("Session cookie not set")
	}
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("SECTIONCSS_JWT_SECRET", "handler-test-secret")
	database := setupHandlerTestDB(t)
	users.CreateAdmin(database, "marc", "test-password")

	h := newTestHandlers(t)
	for _, tc := range []struct{ username, password string }{
		{"marc", "wrong"},
		{"nobody", "test-password"},
		{"", ""},
	} {
		w := postLogin(h, tc.username, tc.password)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%q: expected status 401, got %d", tc.username, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid username or password") {
			t.Errorf("%q: expected error message in body", tc.username)
		}
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == auth.CookieName && cookie.Value != "" {
				t.Errorf("%q: session cookie should not be set", tc.username)
			}
		}
	}
}

func TestLoginForm(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/login", nil)

	newTestHandlers(t).LoginFormHandler(c)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `name="username"`) || !strings.Contains(body, `name="password"`) {
		t.Error("Login form is missing its fields")
	}
	if strings.Contains(body, "<script") {
		t.Error("Login form should not contain scripts")
	}
}

func TestLogoutHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/admin/logout", nil)

	newTestHandlers(t).LogoutHandler(c)
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != auth.LoginPath {
		t.Errorf("Expected redirect to %s, got %s", auth.LoginPath, loc)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.CookieName && cookie.MaxAge >= 0 {
			t.Error("Session cookie should be expired")
		}
	}
}
