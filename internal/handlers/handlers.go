// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/thatcatcamp/sectioncss/internal/customizer"
	"github.com/thatcatcamp/sectioncss/internal/metrics"
	"github.com/thatcatcamp/sectioncss/internal/section"
	"go.uber.org/zap"
)

// Handlers serves the public stylesheet and the admin customizer
type Handlers struct {
	manager *customizer.Manager
	metrics *metrics.Metrics
	log     *zap.Logger
	policy  *bluemonday.Policy

	mu    sync.RWMutex
	sheet *section.Stylesheet
}

// Option configures Handlers
type Option func(*Handlers)

func WithLogger(log *zap.Logger) Option {
	return func(h *Handlers) {
		h.log = log.Named("http")
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handlers) {
		h.metrics = m
	}
}

// New creates the handlers for a settings store and stylesheet
func New(manager *customizer.Manager, sheet *section.Stylesheet, opts ...Option) *Handlers {
	h := &Handlers{
		manager: manager,
		log:     zap.NewNop(),
		policy:  bluemonday.StrictPolicy(),
		sheet:   sheet,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetStylesheet swaps the stylesheet, e.g. after the theme file changed
func (h *Handlers) SetStylesheet(st *section.Stylesheet) {
	h.mu.Lock()
	h.sheet = st
	h.mu.Unlock()
}

func (h *Handlers) stylesheet() *section.Stylesheet {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sheet
}

// clean strips markup and escapes text for HTML output
func (h *Handlers) clean(s string) string {
	return h.policy.Sanitize(s)
}

// StylesheetHandler serves the rendered CSS
func (h *Handlers) StylesheetHandler(c *gin.Context) {
	start := time.Now()
	css := h.stylesheet().Render(h.manager)
	h.metrics.RecordRender(time.Since(start), len(css))

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}

// HealthHandler reports liveness
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sections": len(h.stylesheet().Sections()),
	})
}
