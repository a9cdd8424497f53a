// SPDX-License-Identifier: MIT
package cssprop

// ControlType selects the admin widget rendered for a setting
type ControlType int

const (
	ControlText ControlType = iota
	ControlSelect
	ControlColor
)

func (t ControlType) String() string {
	switch t {
	case ControlSelect:
		return "select"
	case ControlColor:
		return "color"
	default:
		return "text"
	}
}

// Control describes one admin widget bound to a setting key
type Control struct {
	Key       string
	Label     string
	SectionID string
	Priority  int
	Type      ControlType
	Choices   []Option
}

// Registrar receives setting and control registrations
type Registrar interface {
	Register(key, def string, sanitize Sanitizer)
	RegisterControl(c Control)
}

// Reader returns the current value of a setting, or "" when unknown
type Reader interface {
	Get(key string) string
}

// Store is the full settings collaborator used by property modules
type Store interface {
	Registrar
	Reader
}

// Values is a plain map Reader, handy for previews and tests
type Values map[string]string

// Get implements Reader
func (v Values) Get(key string) string {
	return v[key]
}

// Key builds the settings key for a section and setting suffix
func Key(sectionID, suffix string) string {
	return sectionID + "_css_" + suffix
}
