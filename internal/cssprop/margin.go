// SPDX-License-Identifier: MIT
package cssprop

var marginTable = newTable(FamilyMargin,
	sides("margin", "margin", "_unit", 63, Lengths, Measure("auto", "inherit"), "0")...)

// Margin renders margin-<side>
type Margin struct {
	base
}

// NewMargin creates a margin module. Accepted names: margin-top,
// margin-right, margin-bottom, margin-left, all.
func NewMargin(sectionID string, required []string) *Margin {
	return &Margin{base: newBase(marginTable, sectionID, required)}
}

func (m *Margin) SetMarginTop(value, unit string)    { m.setSide("top", value, unit) }
func (m *Margin) SetMarginRight(value, unit string)  { m.setSide("right", value, unit) }
func (m *Margin) SetMarginBottom(value, unit string) { m.setSide("bottom", value, unit) }
func (m *Margin) SetMarginLeft(value, unit string)   { m.setSide("left", value, unit) }

func (m *Margin) setSide(side, value, unit string) {
	m.Set("margin_"+side, value)
	m.Set("margin_"+side+"_unit", unit)
}
