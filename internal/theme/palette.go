// SPDX-License-Identifier: MIT
package theme

import (
	"sort"
	"strings"
)

// Palette defines the base colors of a theme
type Palette struct {
	Name      string
	Primary   string
	Secondary string
}

var palettes = map[string]Palette{
	"slate":      {Name: "slate", Primary: "#64748b", Secondary: "#0f172a"},
	"indigo":     {Name: "indigo", Primary: "#4f46e5", Secondary: "#f97316"},
	"rose":       {Name: "rose", Primary: "#e11d48", Secondary: "#64748b"},
	"emerald":    {Name: "emerald", Primary: "#059669", Secondary: "#f59e0b"},
	"navy":       {Name: "navy", Primary: "#000080", Secondary: "#fbbf24"},
	"purple":     {Name: "purple", Primary: "#a855f7", Secondary: "#ec4899"},
	"teal":       {Name: "teal", Primary: "#14b8a6", Secondary: "#f87171"},
	"amber":      {Name: "amber", Primary: "#f59e0b", Secondary: "#6366f1"},
	"blue-mono":  {Name: "blue-mono", Primary: "#3b82f6", Secondary: "#1e40af"},
	"green-mono": {Name: "green-mono", Primary: "#22c55e", Secondary: "#16a34a"},
	"neutral":    {Name: "neutral", Primary: "#6b7280", Secondary: "#4b5563"},
}

// LookupPalette returns a palette by name
func LookupPalette(name string) (Palette, bool) {
	p, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// PaletteNames lists the built-in palettes alphabetically
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Colors expands the palette into named colors for light or dark mode.
// Theme defaults refer to them as "$primary", "$text-muted" and so on.
func (p Palette) Colors(dark bool) map[string]string {
	if dark {
		return map[string]string{
			"primary":    "#f1f5f9",
			"secondary":  "#e2e8f0",
			"background": "#0f172a",
			"surface":    "#1e293b",
			"text":       "#f1f5f9",
			"text-muted": "#94a3b8",
			"border":     "#334155",
			"success":    "#22c55e",
			"error":      "#ef4444",
			"warning":    "#f59e0b",
		}
	}
	return map[string]string{
		"primary":    p.Primary,
		"secondary":  p.Secondary,
		"background": "#ffffff",
		"surface":    "#f9fafb",
		"text":       "#000000",
		"text-muted": "#6b7280",
		"border":     "#e5e7eb",
		"success":    "#22c55e",
		"error":      "#ef4444",
		"warning":    "#f59e0b",
	}
}

// resolve replaces a "$name" reference with the palette color. Anything
// else, including unknown references, is returned untouched.
func resolve(value string, colors map[string]string) string {
	if !strings.HasPrefix(value, "$") || colors == nil {
		return value
	}
	if c, ok := colors[strings.ToLower(value[1:])]; ok {
		return c
	}
	return value
}
