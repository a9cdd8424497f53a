// SPDX-License-Identifier: MIT
package cssprop

var (
	clearValues = NewEnum("left", "right", "both", "none", "inherit")
	displays    = NewEnum(
		"inline", "block", "flex", "inline-block", "inline-flex", "inline-table",
		"list-item", "run-in", "table", "table-caption", "table-column-group",
		"table-header-group", "table-footer-group", "table-row-group",
		"table-cell", "table-column", "table-row", "none", "inherit",
	)
	floats       = NewEnum("left", "right", "none", "inherit")
	overflows    = NewEnum("visible", "hidden", "scroll", "auto", "inherit")
	visibilities = NewEnum("visible", "hidden", "collapse", "inherit")
)

var positionTable = newTable(FamilyPosition,
	selectProperty("clear", selectSetting("position_clear", "Clear", 81, clearValues, "value4")),
	selectProperty("display", selectSetting("position_display", "Display", 82, displays, "value1")),
	selectProperty("float", selectSetting("position_float", "Float", 83, floats, "value3")),
	selectProperty("overflow", selectSetting("position_overflow", "Overflow", 84, overflows, "value1")),
	selectProperty("visibility", selectSetting("position_visibility", "Visibility", 85, visibilities, "value1")),
	plainProperty("z-index", measureSetting("position_z_index", "Z-Index", 86, Integer("auto", "inherit"), "auto")),
)

// Position renders layout and flow properties
type Position struct {
	base
}

// NewPosition creates a position module. Accepted names: clear, display,
// float, overflow, visibility, z-index, all.
func NewPosition(sectionID string, required []string) *Position {
	return &Position{base: newBase(positionTable, sectionID, required)}
}

func (p *Position) SetClear(v string)      { p.Set("position_clear", v) }
func (p *Position) SetDisplay(v string)    { p.Set("position_display", v) }
func (p *Position) SetFloat(v string)      { p.Set("position_float", v) }
func (p *Position) SetOverflow(v string)   { p.Set("position_overflow", v) }
func (p *Position) SetVisibility(v string) { p.Set("position_visibility", v) }
func (p *Position) SetZIndex(v string)     { p.Set("position_z_index", v) }
