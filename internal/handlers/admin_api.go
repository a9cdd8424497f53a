// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/sectioncss/internal/customizer"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

type choiceJSON struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

type controlJSON struct {
	Key     string       `json:"key"`
	Label   string       `json:"label"`
	Type    string       `json:"type"`
	Value   string       `json:"value"`
	Default string       `json:"default"`
	Choices []choiceJSON `json:"choices,omitempty"`
}

type sectionJSON struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Priority int           `json:"priority"`
	Controls []controlJSON `json:"controls"`
}

// SettingsAPIHandler returns every section with its controls and values
func (h *Handlers) SettingsAPIHandler(c *gin.Context) {
	defaults := make(map[string]string)
	for _, s := range h.manager.Settings() {
		defaults[s.Key] = s.Default
	}

	sections := h.manager.Sections()
	out := make([]sectionJSON, 0, len(sections))
	for _, s := range sections {
		sj := sectionJSON{ID: s.ID, Title: s.Title, Priority: s.Priority, Controls: []controlJSON{}}
		for _, ctrl := range s.Controls {
			cj := controlJSON{
				Key:     ctrl.Key,
				Label:   ctrl.Label,
				Type:    ctrl.Type.String(),
				Value:   h.manager.Get(ctrl.Key),
				Default: defaults[ctrl.Key],
			}
			for _, o := range ctrl.Choices {
				cj.Choices = append(cj.Choices, choiceJSON{Token: o.Token, Label: o.Label})
			}
			sj.Controls = append(sj.Controls, cj)
		}
		out = append(out, sj)
	}

	c.JSON(http.StatusOK, gin.H{"sections": out})
}

// HistoryAPIHandler returns recent changes to ?key=
func (h *Handlers) HistoryAPIHandler(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key required"})
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}
		limit = min(n, maxHistoryLimit)
	}

	changes, err := h.manager.History(c.Request.Context(), key, limit)
	if err != nil {
		if errors.Is(err, customizer.ErrNoHistory) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Failed to load history", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	entries := make([]gin.H, 0, len(changes))
	for _, ch := range changes {
		entries = append(entries, gin.H{
			"old_value":  ch.OldValue,
			"new_value":  ch.NewValue,
			"changed_by": ch.ChangedBy,
			"changed_at": ch.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "changes": entries})
}
