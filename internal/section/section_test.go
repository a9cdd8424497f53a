// SPDX-License-Identifier: MIT
package section

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/sectioncss/internal/cssprop"
	"github.com/thatcatcamp/sectioncss/internal/customizer"
)

type registeredSection struct {
	title    string
	priority int
}

// fakeStore records registrations and serves values from a map
type fakeStore struct {
	values   map[string]string
	defaults map[string]string
	controls []cssprop.Control
	sections map[string]registeredSection
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		values:   make(map[string]string),
		defaults: make(map[string]string),
		sections: make(map[string]registeredSection),
	}
}

func (f *fakeStore) Register(key, def string, _ cssprop.Sanitizer) {
	if _, ok := f.defaults[key]; !ok {
		f.defaults[key] = def
	}
}

func (f *fakeStore) RegisterControl(c cssprop.Control) {
	f.controls = append(f.controls, c)
}

func (f *fakeStore) RegisterSection(id, title string, priority int) {
	f.sections[id] = registeredSection{title: title, priority: priority}
}

func (f *fakeStore) Get(key string) string {
	if v, ok := f.values[key]; ok {
		return v
	}
	return f.defaults[key]
}

func borderTop() []FamilyProperties {
	return []FamilyProperties{{Family: "border", Properties: []string{"border-top"}}}
}

func TestSelector(t *testing.T) {
	tests := []struct {
		selector string
		want     string
	}{
		{"#", "#hero"},
		{".", ".hero"},
		{"header .title", "header .title"},
		{"#main", "#main"},
	}

	for _, tt := range tests {
		s, err := New("hero", "Hero", 10, tt.selector, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.Selector(), tt.selector)
	}
}

func TestEmptyFamilyRendersNothing(t *testing.T) {
	s, err := New("hero", "Hero", 10, "#", []FamilyProperties{{Family: "border"}})
	require.NoError(t, err)

	store := newFakeStore()
	s.Register(store)
	assert.Equal(t, "", s.RenderCSS(store))
	assert.Empty(t, store.controls)
}

func TestRenderBorderTop(t *testing.T) {
	s, err := New("hero", "Hero", 10, "#", borderTop())
	require.NoError(t, err)

	store := newFakeStore()
	s.Register(store)
	store.values["hero_css_border_top_width"] = "10"
	store.values["hero_css_border_top_width_units"] = "value3"
	store.values["hero_css_border_top_style"] = "value5"
	store.values["hero_css_border_top_color"] = "#ffffff"

	assert.Equal(t, "#hero {border-top:10em solid #ffffff;} ", s.RenderCSS(store))
}

func TestRegisterSectionNeedsIDNameAndPriority(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		title    string
		priority int
		want     bool
	}{
		{"complete", "hero", "Hero", 10, true},
		{"zero priority", "hero", "Hero", 0, true},
		{"no name", "hero", "", 10, false},
		{"negative priority", "hero", "Hero", -1, false},
		{"priority too high", "hero", "Hero", MaxPriority + 1, false},
		{"name too long", "hero", strings.Repeat("x", MaxFieldLength+1), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.id, tt.title, tt.priority, "#", borderTop())
			require.NoError(t, err)

			store := newFakeStore()
			s.Register(store)
			_, ok := store.sections[tt.id]
			assert.Equal(t, tt.want, ok)
			// module settings are registered either way
			assert.NotEmpty(t, store.controls)
		})
	}
}

func TestInvalidIDInstantiatesNoModules(t *testing.T) {
	s, err := New(strings.Repeat("a", MaxFieldLength+1), "Hero", 10, "#", borderTop())
	require.NoError(t, err)
	assert.Equal(t, "", s.ID())
	assert.Empty(t, s.Families())

	s, err = New("", "Hero", 10, "#", borderTop())
	require.NoError(t, err)
	assert.Empty(t, s.Families())
}

func TestTooManyFamilies(t *testing.T) {
	families := make([]FamilyProperties, MaxFamilies+1)
	for i := range families {
		families[i] = FamilyProperties{Family: "margin", Properties: []string{"all"}}
	}
	s, err := New("hero", "Hero", 10, "#", families)
	require.NoError(t, err)
	assert.Empty(t, s.Families())
}

func TestUnknownFamilies(t *testing.T) {
	s, err := New("hero", "Hero", 10, "#", []FamilyProperties{
		{Family: "animation", Properties: []string{"all"}},
		{Family: "margin", Properties: []string{"margin-top"}},
		{Family: "grid", Properties: []string{"all"}},
	})
	require.Error(t, err)

	var ufe *UnknownFamilyError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "animation", ufe.Name)
	assert.Contains(t, err.Error(), `"grid"`)

	assert.Equal(t, []cssprop.Family{cssprop.FamilyMargin}, s.Families())
}

func TestDuplicateFamiliesMerge(t *testing.T) {
	s, err := New("hero", "Hero", 10, "#", []FamilyProperties{
		{Family: "margin", Properties: []string{"margin-top"}},
		{Family: "padding", Properties: []string{"padding-top"}},
		{Family: "margin", Properties: []string{"margin-left"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []cssprop.Family{cssprop.FamilyMargin, cssprop.FamilyPadding}, s.Families())

	css := s.RenderCSS(cssprop.Values{})
	assert.Equal(t, "", css)

	store := newFakeStore()
	s.Register(store)
	assert.Equal(t, "#hero {margin-top:0px;margin-left:0px;padding-top:0px;} ", s.RenderCSS(store))
}

func TestSetFamilyDefaults(t *testing.T) {
	s, err := New("hero", "Hero", 10, "#", borderTop())
	require.NoError(t, err)

	s.SetFamilyDefaults(cssprop.FamilyBorder, map[string]string{
		"border_top_width": "2",
		"top_style":        "dashed",
		"top_color":        "not a color",
	})
	// not owned by the section
	s.SetFamilyDefaults(cssprop.FamilyMargin, map[string]string{"margin_top": "5"})

	m, ok := s.Module(cssprop.FamilyBorder)
	require.True(t, ok)
	d := m.Defaults()
	assert.Equal(t, "2", d.Get("border_top_width"))
	assert.Equal(t, "value4", d.Get("border_top_style"))
	assert.Equal(t, "#000000", d.Get("border_top_color"))

	_, ok = s.Module(cssprop.FamilyMargin)
	assert.False(t, ok)
}

func TestSectionWithManager(t *testing.T) {
	s, err := New("hero", "Hero", 10, "#", borderTop())
	require.NoError(t, err)

	m := customizer.NewManager(customizer.NewMemoryBackend())
	s.Register(m)

	sections := m.Sections()
	require.Len(t, sections, 1)
	assert.Equal(t, "Hero", sections[0].Title)
	assert.Len(t, sections[0].Controls, 4)
	assert.Equal(t, "#hero {border-top:medium none #000000;} ", s.RenderCSS(m))
}
