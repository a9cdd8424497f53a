// SPDX-License-Identifier: MIT
package customizer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/thatcatcamp/sectioncss/internal/cssprop"
	"github.com/thatcatcamp/sectioncss/internal/metrics"
	"github.com/thatcatcamp/sectioncss/internal/models"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrUnknownSetting is returned when saving a key nobody registered
	ErrUnknownSetting = errors.New("unknown setting")
	// ErrNoHistory is returned by History when the backend keeps no audit trail
	ErrNoHistory = errors.New("backend keeps no history")
)

// Historian is implemented by backends that record changes
type Historian interface {
	History(ctx context.Context, key string, limit int) ([]models.SettingChange, error)
}

// Setting is a registered key with its default and sanitizer
type Setting struct {
	Key      string
	Default  string
	Sanitize cssprop.Sanitizer
}

// Section groups controls under one title in the admin form
type Section struct {
	ID       string
	Title    string
	Priority int
	Controls []cssprop.Control
}

// Manager is the settings store: it keeps the registry of settings,
// controls and sections, and reads and writes values through a Backend
type Manager struct {
	mu       sync.RWMutex
	backend  Backend
	log      *zap.Logger
	metrics  *metrics.Metrics
	settings map[string]*Setting
	order    []string
	controls map[string]cssprop.Control
	sections map[string]*Section
	values   map[string]string
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger; the default discards everything
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		m.log = log.Named("customizer")
	}
}

// WithMetrics records save outcomes
func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = mt
	}
}

// NewManager creates a store over backend. Call Load to read persisted
// values.
func NewManager(backend Backend, opts ...Option) *Manager {
	m := &Manager{
		backend:  backend,
		log:      zap.NewNop(),
		settings: make(map[string]*Setting),
		controls: make(map[string]cssprop.Control),
		sections: make(map[string]*Section),
		values:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load replaces the cached values with the backend's contents
func (m *Manager) Load(ctx context.Context) error {
	values, err := m.backend.Load(ctx)
	if err != nil {
		return err
	}

	if values == nil {
		values = make(map[string]string)
	}

	m.mu.Lock()
	m.values = values
	m.mu.Unlock()

	m.log.Debug("Loaded settings", zap.Int("count", len(values)))
	return nil
}

// Reregister replaces every registration with the ones made by register,
// keeping the loaded values. Readers see either the old or the new registry,
// never a partial one.
func (m *Manager) Reregister(register func(r *Manager)) {
	next := NewManager(m.backend)
	register(next)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = next.settings
	m.order = next.order
	m.controls = next.controls
	m.sections = next.sections
}

// Register adds a setting. The first registration of a key wins.
func (m *Manager) Register(key, def string, sanitize cssprop.Sanitizer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.settings[key]; ok {
		return
	}
	if sanitize == nil {
		sanitize = cssprop.FreeText
	}
	m.settings[key] = &Setting{Key: key, Default: def, Sanitize: sanitize}
	m.order = append(m.order, key)
}

// RegisterControl adds the admin widget for a setting
func (m *Manager) RegisterControl(c cssprop.Control) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.controls[c.Key]; ok {
		return
	}
	m.controls[c.Key] = c
}

// RegisterSection adds a titled group for controls
func (m *Manager) RegisterSection(id, title string, priority int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sections[id]; ok {
		return
	}
	m.sections[id] = &Section{ID: id, Title: title, Priority: priority}
}

// Get returns the saved value for key, the registered default when nothing
// was saved, or "" for unknown keys
func (m *Manager) Get(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key]; ok {
		return v
	}
	if s, ok := m.settings[key]; ok {
		return s.Default
	}
	return ""
}

// Save sanitizes raw and persists it. A rejected value returns false and
// leaves the previous value in place.
func (m *Manager) Save(ctx context.Context, key, raw string) (bool, error) {
	m.mu.RLock()
	s, ok := m.settings[key]
	m.mu.RUnlock()
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}

	value, ok := s.Sanitize(raw)
	m.metrics.RecordSave(ok)
	if !ok {
		m.log.Debug("Rejected setting value", zap.String("key", key), zap.String("value", raw))
		return false, nil
	}

	if err := m.backend.Put(ctx, key, value); err != nil {
		return false, err
	}

	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return true, nil
}

// SaveAll saves every entry and returns the keys whose values were
// rejected. Unknown keys are collected in the error.
func (m *Manager) SaveAll(ctx context.Context, values map[string]string) (saved int, rejected []string, err error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		ok, serr := m.Save(ctx, k, values[k])
		switch {
		case serr != nil:
			err = multierr.Append(err, serr)
		case ok:
			saved++
		default:
			rejected = append(rejected, k)
		}
	}
	return saved, rejected, err
}

// Reset drops the saved value so the default applies again
func (m *Manager) Reset(ctx context.Context, key string) error {
	m.mu.RLock()
	_, ok := m.settings[key]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}

	if err := m.backend.Delete(ctx, key); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

// Settings returns registered settings in registration order
func (m *Manager) Settings() []Setting {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Setting, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, *m.settings[k])
	}
	return out
}

// Sections returns every section ordered by priority, each with its
// controls ordered by priority. Controls whose section was never registered
// are left out.
func (m *Manager) Sections() []Section {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Section, 0, len(m.sections))
	index := make(map[string]int, len(m.sections))
	for _, s := range m.sections {
		index[s.ID] = len(out)
		out = append(out, Section{ID: s.ID, Title: s.Title, Priority: s.Priority})
	}
	for _, k := range m.order {
		c, ok := m.controls[k]
		if !ok {
			continue
		}
		if i, ok := index[c.SectionID]; ok {
			out[i].Controls = append(out[i].Controls, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	for i := range out {
		ctrls := out[i].Controls
		sort.SliceStable(ctrls, func(a, b int) bool {
			return ctrls[a].Priority < ctrls[b].Priority
		})
	}
	return out
}

// History returns the most recent changes to key, newest first
func (m *Manager) History(ctx context.Context, key string, limit int) ([]models.SettingChange, error) {
	h, ok := m.backend.(Historian)
	if !ok {
		return nil, ErrNoHistory
	}
	return h.History(ctx, key, limit)
}
