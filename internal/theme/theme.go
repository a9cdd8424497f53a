// SPDX-License-Identifier: MIT
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gosimple/slug"
	"github.com/thatcatcamp/sectioncss/internal/cssprop"
	"github.com/thatcatcamp/sectioncss/internal/section"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Theme is the YAML description of a site's customizable sections
type Theme struct {
	Palette  string          `yaml:"palette"`
	Dark     bool            `yaml:"dark"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig describes one section. Defaults are keyed by family name,
// then by setting suffix (with or without the family prefix).
type SectionConfig struct {
	ID       string                       `yaml:"id"`
	Name     string                       `yaml:"name"`
	Priority int                          `yaml:"priority"`
	Selector string                       `yaml:"selector"`
	Families []section.FamilyProperties   `yaml:"families"`
	Defaults map[string]map[string]string `yaml:"defaults"`
}

// Load reads and parses a theme file
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a theme. Unknown fields are errors; sections without an id
// get one from their name, and sections without a selector use "#".
func Parse(data []byte) (*Theme, error) {
	t := &Theme{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode theme: %w", err)
	}

	if t.Palette != "" {
		if _, ok := LookupPalette(t.Palette); !ok {
			return nil, fmt.Errorf("unknown palette %q", t.Palette)
		}
	}

	seen := make(map[string]bool, len(t.Sections))
	for i := range t.Sections {
		sc := &t.Sections[i]
		if sc.ID == "" {
			sc.ID = slug.Make(sc.Name)
		}
		if sc.ID == "" {
			return nil, fmt.Errorf("section %d has neither id nor name", i+1)
		}
		if seen[sc.ID] {
			return nil, fmt.Errorf("duplicate section id %q", sc.ID)
		}
		seen[sc.ID] = true
		if sc.Selector == "" {
			sc.Selector = "#"
		}
	}
	return t, nil
}

func (t *Theme) colors() map[string]string {
	p, ok := LookupPalette(t.Palette)
	if !ok {
		return nil
	}
	return p.Colors(t.Dark)
}

// Build creates the stylesheet and applies each section's defaults. Errors
// for unknown families are returned together with the stylesheet, which
// still holds everything that could be built.
func (t *Theme) Build(log *zap.Logger) (*section.Stylesheet, error) {
	if log == nil {
		log = zap.NewNop()
	}
	colors := t.colors()
	st := section.NewStylesheet()

	var err error
	for _, sc := range t.Sections {
		s, serr := section.New(sc.ID, sc.Name, sc.Priority, sc.Selector, sc.Families, section.WithLogger(log))
		err = multierr.Append(err, serr)

		families := make([]string, 0, len(sc.Defaults))
		for name := range sc.Defaults {
			families = append(families, name)
		}
		sort.Strings(families)

		for _, name := range families {
			f, perr := cssprop.ParseFamily(name)
			if perr != nil {
				err = multierr.Append(err, &section.UnknownFamilyError{Name: name})
				continue
			}
			overrides := make(map[string]string, len(sc.Defaults[name]))
			for k, v := range sc.Defaults[name] {
				overrides[k] = resolve(v, colors)
			}
			s.SetFamilyDefaults(f, overrides)
		}
		st.Add(s)
	}

	log.Debug("Built stylesheet", zap.Int("sections", len(t.Sections)))
	return st, err
}
