// SPDX-License-Identifier: MIT
package section

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thatcatcamp/sectioncss/internal/cssprop"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	MaxFieldLength = 50
	MaxPriority    = 500
	MaxFamilies    = 40
)

var validate = validator.New()

// Store is what a section needs from the settings store: the property
// collaborator plus titled groups for the admin form
type Store interface {
	cssprop.Store
	RegisterSection(id, title string, priority int)
}

// FamilyProperties names a family and the properties it should render
type FamilyProperties struct {
	Family     string   `yaml:"family"`
	Properties []string `yaml:"properties"`
}

// UnknownFamilyError is returned for family names with no module
type UnknownFamilyError struct {
	Name string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("unknown property family %q", e.Name)
}

// Section renders the CSS of one page element from its property modules
type Section struct {
	id          string
	name        string
	priority    int
	hasPriority bool
	selector    string
	modules     []cssprop.Module
	log         *zap.Logger
}

// Option configures a Section
type Option func(*Section)

// WithLogger sets the logger; the default discards everything
func WithLogger(log *zap.Logger) Option {
	return func(s *Section) {
		s.log = log.Named("section")
	}
}

// New builds a section. Fields that fail validation are left unset and
// construction carries on; unknown family names are returned as errors
// alongside the section.
func New(id, name string, priority int, selector string, families []FamilyProperties, opts ...Option) (*Section, error) {
	s := &Section{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if validate.Var(id, fmt.Sprintf("max=%d", MaxFieldLength)) == nil {
		s.id = id
	}
	if validate.Var(name, fmt.Sprintf("max=%d", MaxFieldLength)) == nil {
		s.name = name
	}
	if validate.Var(selector, fmt.Sprintf("max=%d", MaxFieldLength)) == nil {
		s.selector = selector
	}
	if validate.Var(priority, fmt.Sprintf("min=0,max=%d", MaxPriority)) == nil {
		s.priority = priority
		s.hasPriority = true
	}

	if s.id == "" {
		s.log.Debug("Section has no id, skipping modules", zap.String("name", name))
		return s, nil
	}
	if len(families) > MaxFamilies {
		s.log.Warn("Too many families, skipping modules",
			zap.String("section", s.id), zap.Int("families", len(families)))
		return s, nil
	}

	var err error
	var order []cssprop.Family
	required := make(map[cssprop.Family][]string)
	for _, fp := range families {
		f, perr := cssprop.ParseFamily(strings.TrimSpace(fp.Family))
		if perr != nil {
			s.log.Warn("Unknown family", zap.String("section", s.id), zap.String("family", fp.Family))
			err = multierr.Append(err, &UnknownFamilyError{Name: fp.Family})
			continue
		}
		if _, seen := required[f]; !seen {
			order = append(order, f)
			required[f] = []string{}
		}
		required[f] = append(required[f], fp.Properties...)
	}

	for _, f := range order {
		m, merr := cssprop.New(f, s.id, required[f])
		if merr != nil {
			err = multierr.Append(err, merr)
			continue
		}
		s.modules = append(s.modules, m)
	}
	return s, err
}

func (s *Section) ID() string    { return s.id }
func (s *Section) Name() string  { return s.name }
func (s *Section) Priority() int { return s.priority }

// Selector returns the CSS selector. A bare "#" or "." is completed with
// the section id.
func (s *Section) Selector() string {
	if s.selector == "#" || s.selector == "." {
		return s.selector + s.id
	}
	return s.selector
}

// Families lists the families this section renders, in declaration order
func (s *Section) Families() []cssprop.Family {
	out := make([]cssprop.Family, len(s.modules))
	for i, m := range s.modules {
		out[i] = m.Family()
	}
	return out
}

// Module returns the module for a family, if the section owns one
func (s *Section) Module(f cssprop.Family) (cssprop.Module, bool) {
	for _, m := range s.modules {
		if m.Family() == f {
			return m, true
		}
	}
	return nil, false
}

// Register adds the section and every module's settings to the store
func (s *Section) Register(store Store) {
	if s.id != "" && s.name != "" && s.hasPriority {
		store.RegisterSection(s.id, s.name, s.priority)
	}
	for _, m := range s.modules {
		m.Register(store)
	}
}

// RenderCSS returns "selector {declarations} ", or "" when no module
// produced a declaration
func (s *Section) RenderCSS(r cssprop.Reader) string {
	var inner strings.Builder
	for _, m := range s.modules {
		inner.WriteString(m.RenderCSS(r))
	}
	if inner.Len() == 0 {
		return ""
	}
	return s.Selector() + " {" + inner.String() + "} "
}

// SetFamilyDefaults overrides module defaults. Families the section does
// not render and values that fail sanitizing are ignored.
func (s *Section) SetFamilyDefaults(f cssprop.Family, overrides map[string]string) {
	m, ok := s.Module(f)
	if !ok {
		s.log.Debug("Ignoring defaults for missing family",
			zap.String("section", s.id), zap.Stringer("family", f))
		return
	}
	for suffix, value := range overrides {
		m.Set(suffix, value)
	}
}
