// SPDX-License-Identifier: MIT
package cssprop

import "strings"

var (
	borderStyles = NewEnum(
		"none", "hidden", "dotted", "dashed", "solid", "double",
		"groove", "ridge", "inset", "outset", "inherit",
	)
	borderWidth = Measure("thin", "medium", "thick", "inherit")
)

var borderTable = newTable(FamilyBorder, borderSides()...)

func borderSides() []property {
	var out []property
	prio := 18
	for _, side := range []string{"top", "right", "bottom", "left"} {
		key := "border_" + side
		label := "Border " + strings.ToUpper(side[:1]) + side[1:]
		out = append(out, borderSide("border-"+side, key, label, prio))
		prio += 4
	}
	return out
}

func borderSide(name, key, label string, prio int) property {
	width, unit := key+"_width", key+"_width_units"
	style, color := key+"_style", key+"_color"
	return property{
		name: name,
		css:  name,
		settings: []setting{
			measureSetting(width, label+" Width", prio, borderWidth, "medium"),
			selectSetting(unit, label+" Width Unit", prio+1, Lengths, "value1"),
			selectSetting(style, label+" Style", prio+2, borderStyles, "value1"),
			colorSetting(color, label+" Color", prio+3, "#000000"),
		},
		render: func(v view) string {
			var parts []string
			for _, p := range []string{v.length(width, unit), v.literal(style), v.value(color)} {
				if p != "" {
					parts = append(parts, p)
				}
			}
			return decl(name, strings.Join(parts, " "))
		},
	}
}

// Border renders the border-<side> shorthands
type Border struct {
	base
}

// NewBorder creates a border module. Accepted names: border-top,
// border-right, border-bottom, border-left, all.
func NewBorder(sectionID string, required []string) *Border {
	return &Border{base: newBase(borderTable, sectionID, required)}
}

// setSide applies each part on its own so one bad part does not block the
// others
func (b *Border) setSide(side, width, unit, style, color string) {
	key := "border_" + side
	b.Set(key+"_width", width)
	b.Set(key+"_width_units", unit)
	b.Set(key+"_style", style)
	b.Set(key+"_color", color)
}

func (b *Border) SetBorderTop(width, unit, style, color string) {
	b.setSide("top", width, unit, style, color)
}

func (b *Border) SetBorderRight(width, unit, style, color string) {
	b.setSide("right", width, unit, style, color)
}

func (b *Border) SetBorderBottom(width, unit, style, color string) {
	b.setSide("bottom", width, unit, style, color)
}

func (b *Border) SetBorderLeft(width, unit, style, color string) {
	b.setSide("left", width, unit, style, color)
}
