// SPDX-License-Identifier: MIT
package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func loginRequest(t *testing.T, mw gin.HandlerFunc, method, path, addr string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	c.Request.RemoteAddr = addr
	mw(c)
	return w
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := NewRateLimiter(ctx, 2, time.Minute)
	mw := RateLimitMiddleware(limiter, "/admin/login")

	for i := 0; i < 2; i++ {
		if w := loginRequest(t, mw, "POST", "/admin/login", "10.0.0.1:1234"); w.Code == 429 {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}

	w := loginRequest(t, mw, "POST", "/admin/login", "10.0.0.1:1234")
	if w.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", w.Header().Get("X-RateLimit-Limit"))
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("Expected Retry-After: 60, got %s", w.Header().Get("Retry-After"))
	}

	// other clients have their own bucket
	if w := loginRequest(t, mw, "POST", "/admin/login", "10.0.0.2:1234"); w.Code == 429 {
		t.Error("A different IP should not be limited")
	}
}

func TestRateLimitOnlyPostsToListedPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := NewRateLimiter(ctx, 1, time.Minute)
	mw := RateLimitMiddleware(limiter, "/admin/login")

	for i := 0; i < 3; i++ {
		if w := loginRequest(t, mw, "GET", "/admin/login", "10.0.0.1:1234"); w.Code == 429 {
			t.Error("GET should not be rate limited")
		}
		if w := loginRequest(t, mw, "POST", "/admin/customize", "10.0.0.1:1234"); w.Code == 429 {
			t.Error("Different path should not be rate limited")
		}
	}
}

func TestRateLimitRefillAndPrune(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	limiter := NewRateLimiter(ctx, 1, time.Minute)
	limiter.now = func() time.Time { return now }

	if ok, _ := limiter.Allow("a"); !ok {
		t.Fatal("First request should be allowed")
	}
	if ok, _ := limiter.Allow("a"); ok {
		t.Fatal("Second request should be denied")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := limiter.Allow("a"); !ok {
		t.Error("Bucket should refill after the interval")
	}

	now = now.Add(time.Hour)
	limiter.prune()
	if len(limiter.buckets) != 0 {
		t.Errorf("Expected idle buckets to be pruned, have %d", len(limiter.buckets))
	}
}
