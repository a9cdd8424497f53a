// SPDX-License-Identifier: MIT
package cssprop

import (
	"sort"
	"strings"
)

// AllProperties expands to every property of a family, in table order
const AllProperties = "all"

type valueKind int

const (
	kindSelect valueKind = iota
	kindMeasure
	kindColor
	kindText
)

// setting is one stored value: a key suffix with its default, sanitizer
// and control
type setting struct {
	suffix   string
	label    string
	priority int
	kind     valueKind
	enum     *Enum
	measure  Sanitizer
	def      string
}

func (s *setting) sanitizer() Sanitizer {
	switch s.kind {
	case kindSelect:
		return s.enum.Sanitize
	case kindMeasure:
		return s.measure
	case kindColor:
		return Color
	default:
		return FreeText
	}
}

// normalize converts programmatic input into the stored form
func (s *setting) normalize(value string) (string, bool) {
	switch s.kind {
	case kindSelect:
		return s.enum.Token(value)
	case kindMeasure, kindColor:
		return s.sanitizer()(strings.ToLower(strings.TrimSpace(value)))
	default:
		return strings.TrimSpace(value), true
	}
}

func (s *setting) control(sectionID string) Control {
	c := Control{
		Key:       Key(sectionID, s.suffix),
		Label:     s.label,
		SectionID: sectionID,
		Priority:  s.priority,
	}
	switch s.kind {
	case kindSelect:
		c.Type = ControlSelect
		c.Choices = s.enum.Options()
	case kindColor:
		c.Type = ControlColor
	default:
		c.Type = ControlText
	}
	return c
}

func selectSetting(suffix, label string, priority int, e *Enum, def string) setting {
	return setting{suffix: suffix, label: label, priority: priority, kind: kindSelect, enum: e, def: def}
}

func measureSetting(suffix, label string, priority int, s Sanitizer, def string) setting {
	return setting{suffix: suffix, label: label, priority: priority, kind: kindMeasure, measure: s, def: def}
}

func colorSetting(suffix, label string, priority int, def string) setting {
	return setting{suffix: suffix, label: label, priority: priority, kind: kindColor, def: def}
}

func textSetting(suffix, label string, priority int, def string) setting {
	return setting{suffix: suffix, label: label, priority: priority, kind: kindText, def: def}
}

// property is one name accepted in a required list, with the settings it
// owns and the declaration(s) it renders
type property struct {
	name     string
	css      string
	settings []setting
	value    func(v view) string // nil for multi-part renderers
	render   func(v view) string
}

type table struct {
	family     Family
	properties []property
	byName     map[string]int
	bySuffix   map[string]*setting
}

func newTable(f Family, props ...property) *table {
	t := &table{
		family:     f,
		properties: props,
		byName:     make(map[string]int, len(props)),
		bySuffix:   make(map[string]*setting),
	}
	for i := range t.properties {
		p := &t.properties[i]
		t.byName[p.name] = i
		for j := range p.settings {
			t.bySuffix[p.settings[j].suffix] = &p.settings[j]
		}
	}
	return t
}

var tables = map[Family]*table{
	FamilyBackground:   backgroundTable,
	FamilyBorder:       borderTable,
	FamilyBorderRadius: borderRadiusTable,
	FamilyDimension:    dimensionTable,
	FamilyFont:         fontTable,
	FamilyMargin:       marginTable,
	FamilyMultiColumn:  multiColumnTable,
	FamilyPadding:      paddingTable,
	FamilyPosition:     positionTable,
	FamilyText:         textTable,
}

// Defaults maps setting suffixes to the default values registered with the
// store. Only the owning module's setters change it.
type Defaults map[string]string

// Get returns the default for a setting suffix
func (d Defaults) Get(suffix string) string {
	return d[suffix]
}

// Reader exposes the defaults under full settings keys for a section
func (d Defaults) Reader(sectionID string) Reader {
	v := make(Values, len(d))
	for suffix, val := range d {
		v[Key(sectionID, suffix)] = val
	}
	return v
}

// Suffixes returns the setting suffixes in sorted order
func (d Defaults) Suffixes() []string {
	out := make([]string, 0, len(d))
	for s := range d {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (d Defaults) clone() Defaults {
	out := make(Defaults, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// base implements Module on top of a family table
type base struct {
	table     *table
	sectionID string
	required  []string
	defaults  Defaults
}

func newBase(t *table, sectionID string, required []string) base {
	defaults := make(Defaults, len(t.bySuffix))
	for suffix, s := range t.bySuffix {
		defaults[suffix] = s.def
	}
	req := make([]string, len(required))
	copy(req, required)
	return base{table: t, sectionID: sectionID, required: req, defaults: defaults}
}

func (b *base) Family() Family {
	return b.table.family
}

func (b *base) SectionID() string {
	return b.sectionID
}

func (b *base) Required() []string {
	out := make([]string, len(b.required))
	copy(out, b.required)
	return out
}

// Defaults returns a copy of the current defaults
func (b *base) Defaults() Defaults {
	return b.defaults.clone()
}

// Sanitizer returns the sanitizer for a setting suffix
func (b *base) Sanitizer(suffix string) (Sanitizer, bool) {
	s, ok := b.table.bySuffix[suffix]
	if !ok {
		return nil, false
	}
	return s.sanitizer(), true
}

// keyPrefixes lets Set accept a suffix without its family prefix,
// e.g. "top_width" for a border
var keyPrefixes = map[Family]string{
	FamilyBackground:   "background",
	FamilyBorder:       "border",
	FamilyBorderRadius: "border",
	FamilyDimension:    "dimension",
	FamilyFont:         "font",
	FamilyMargin:       "margin",
	FamilyMultiColumn:  "column",
	FamilyPadding:      "padding",
	FamilyPosition:     "position",
}

func (b *base) lookup(suffix string) (string, *setting, bool) {
	if s, ok := b.table.bySuffix[suffix]; ok {
		return suffix, s, true
	}
	key := snake(suffix)
	if prefix := keyPrefixes[b.table.family]; prefix != "" {
		key = prefix + "_" + key
	}
	s, ok := b.table.bySuffix[key]
	return key, s, ok
}

// Set overrides the default for a setting suffix. Invalid values and
// unknown suffixes are ignored.
func (b *base) Set(suffix, value string) {
	key, s, ok := b.lookup(suffix)
	if !ok {
		return
	}
	if v, ok := s.normalize(value); ok {
		b.defaults[key] = v
	}
}

// selected resolves the required list to table properties. "all" selects
// the whole table regardless of the other entries.
func (b *base) selected() []*property {
	for _, name := range b.required {
		if name == AllProperties {
			out := make([]*property, len(b.table.properties))
			for i := range b.table.properties {
				out[i] = &b.table.properties[i]
			}
			return out
		}
	}
	var out []*property
	seen := make(map[int]bool)
	for _, name := range b.required {
		i, ok := b.table.byName[name]
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, &b.table.properties[i])
	}
	return out
}

// Register adds settings and controls for every selected property
func (b *base) Register(r Registrar) {
	for _, p := range b.selected() {
		for i := range p.settings {
			s := &p.settings[i]
			r.Register(Key(b.sectionID, s.suffix), b.defaults[s.suffix], s.sanitizer())
			r.RegisterControl(s.control(b.sectionID))
		}
	}
}

// RenderCSS reads current values and returns the declarations for every
// selected property
func (b *base) RenderCSS(r Reader) string {
	var sb strings.Builder
	v := view{r: r, sectionID: b.sectionID, table: b.table}
	for _, p := range b.selected() {
		sb.WriteString(p.render(v))
	}
	return sb.String()
}
