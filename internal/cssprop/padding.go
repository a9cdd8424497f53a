// SPDX-License-Identifier: MIT
package cssprop

var paddingTable = newTable(FamilyPadding,
	sides("padding", "padding", "_units", 87, BoxLengths, Measure("inherit"), "0")...)

// Padding renders padding-<side>
type Padding struct {
	base
}

// NewPadding creates a padding module. Accepted names: padding-top,
// padding-right, padding-bottom, padding-left, all.
func NewPadding(sectionID string, required []string) *Padding {
	return &Padding{base: newBase(paddingTable, sectionID, required)}
}

func (p *Padding) SetPaddingTop(value, unit string)    { p.setSide("top", value, unit) }
func (p *Padding) SetPaddingRight(value, unit string)  { p.setSide("right", value, unit) }
func (p *Padding) SetPaddingBottom(value, unit string) { p.setSide("bottom", value, unit) }
func (p *Padding) SetPaddingLeft(value, unit string)   { p.setSide("left", value, unit) }

func (p *Padding) setSide(side, value, unit string) {
	p.Set("padding_"+side, value)
	p.Set("padding_"+side+"_units", unit)
}
