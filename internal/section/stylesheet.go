// SPDX-License-Identifier: MIT
package section

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/thatcatcamp/sectioncss/internal/cssprop"
)

// Stylesheet is the ordered set of sections making up a theme
type Stylesheet struct {
	sections []*Section
}

func NewStylesheet(sections ...*Section) *Stylesheet {
	st := &Stylesheet{}
	for _, s := range sections {
		st.Add(s)
	}
	return st
}

// Add appends a section; nil sections are dropped
func (st *Stylesheet) Add(s *Section) {
	if s != nil {
		st.sections = append(st.sections, s)
	}
}

// Sections returns the sections by priority. Ties keep insertion order.
func (st *Stylesheet) Sections() []*Section {
	out := make([]*Section, len(st.sections))
	copy(out, st.sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority() < out[j].Priority()
	})
	return out
}

// Section looks a section up by id
func (st *Stylesheet) Section(id string) (*Section, bool) {
	for _, s := range st.sections {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// Register registers every section with the store
func (st *Stylesheet) Register(store Store) {
	for _, s := range st.Sections() {
		s.Register(store)
	}
}

// Render concatenates the CSS of every section
func (st *Stylesheet) Render(r cssprop.Reader) string {
	var sb strings.Builder
	for _, s := range st.Sections() {
		sb.WriteString(s.RenderCSS(r))
	}
	return sb.String()
}

// Verify runs the stylesheet through a CSS parser and reports the first
// grammar error
func Verify(stylesheet string) error {
	p := css.NewParser(parse.NewInput(strings.NewReader(stylesheet)), false)
	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		if err := p.Err(); err != nil && err != io.EOF {
			return fmt.Errorf("invalid css: %w", err)
		}
		return nil
	}
}
