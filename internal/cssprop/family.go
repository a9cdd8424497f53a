// SPDX-License-Identifier: MIT
package cssprop

import (
	"errors"
	"fmt"
)

// Family identifies a group of related CSS properties
type Family int

const (
	FamilyBackground Family = iota + 1
	FamilyBorder
	FamilyBorderRadius
	FamilyDimension
	FamilyFont
	FamilyMargin
	FamilyMultiColumn
	FamilyPadding
	FamilyPosition
	FamilyText
)

var familyNames = map[Family]string{
	FamilyBackground:   "background",
	FamilyBorder:       "border",
	FamilyBorderRadius: "border-radius",
	FamilyDimension:    "dimension",
	FamilyFont:         "font",
	FamilyMargin:       "margin",
	FamilyMultiColumn:  "multi-column",
	FamilyPadding:      "padding",
	FamilyPosition:     "position",
	FamilyText:         "text",
}

// ErrInvalidFamily is returned by ParseFamily for unknown names
var ErrInvalidFamily = errors.New("not a valid family")

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily converts a family name such as "multi-column" to a Family
func ParseFamily(name string) (Family, error) {
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%q is %w", name, ErrInvalidFamily)
}

// Families lists every family in declaration order
func Families() []Family {
	out := make([]Family, 0, len(familyNames))
	for f := FamilyBackground; f <= FamilyText; f++ {
		out = append(out, f)
	}
	return out
}

// Module is one property family bound to a section
type Module interface {
	Family() Family
	SectionID() string
	Required() []string
	Register(r Registrar)
	RenderCSS(r Reader) string
	Set(suffix, value string)
	Defaults() Defaults
	Sanitizer(suffix string) (Sanitizer, bool)
}

var constructors = map[Family]func(sectionID string, required []string) Module{
	FamilyBackground:   func(id string, req []string) Module { return NewBackground(id, req) },
	FamilyBorder:       func(id string, req []string) Module { return NewBorder(id, req) },
	FamilyBorderRadius: func(id string, req []string) Module { return NewBorderRadius(id, req) },
	FamilyDimension:    func(id string, req []string) Module { return NewDimension(id, req) },
	FamilyFont:         func(id string, req []string) Module { return NewFont(id, req) },
	FamilyMargin:       func(id string, req []string) Module { return NewMargin(id, req) },
	FamilyMultiColumn:  func(id string, req []string) Module { return NewMultiColumn(id, req) },
	FamilyPadding:      func(id string, req []string) Module { return NewPadding(id, req) },
	FamilyPosition:     func(id string, req []string) Module { return NewPosition(id, req) },
	FamilyText:         func(id string, req []string) Module { return NewText(id, req) },
}

// New builds the module for a family
func New(f Family, sectionID string, required []string) (Module, error) {
	ctor, ok := constructors[f]
	if !ok {
		return nil, fmt.Errorf("%s is %w", f, ErrInvalidFamily)
	}
	return ctor(sectionID, required), nil
}

// PropertyNames lists the names a family accepts in its required list,
// excluding "all"
func PropertyNames(f Family) []string {
	t, ok := tables[f]
	if !ok {
		return nil
	}
	names := make([]string, len(t.properties))
	for i, p := range t.properties {
		names[i] = p.name
	}
	return names
}
