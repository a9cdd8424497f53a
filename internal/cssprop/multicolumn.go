// SPDX-License-Identifier: MIT
package cssprop

var (
	columnRuleStyles = NewEnum(
		"none", "hidden", "dotted", "dashed", "solid",
		"double", "groove", "ridge", "inset", "outset",
	)
	columnSpans = NewEnum("1", "all")
	columnFills = NewEnum("balance", "auto")
)

var multiColumnTable = newTable(FamilyMultiColumn,
	prefixed(plainProperty("column-count",
		measureSetting("column_count", "Column Count", 71, Integer("auto", "inherit"), "auto"))),
	prefixed(selectProperty("column-fill",
		selectSetting("column_fill", "Column Fill", 72, columnFills, "value1"))),
	prefixed(lengthProperty("column-gap",
		measureSetting("column_gap", "Column Gap", 73, Measure("normal", "inherit"), "normal"),
		selectSetting("column_gap_unit", "Column Gap Unit", 74, FixedLengths, "value1"))),
	prefixed(plainProperty("column-rule-color",
		colorSetting("column_rule_color", "Column Rule Color", 75, "#000000"))),
	prefixed(selectProperty("column-rule-style",
		selectSetting("column_rule_style", "Column Rule Style", 76, columnRuleStyles, "value1"))),
	prefixed(lengthProperty("column-rule-width",
		measureSetting("column_rule_width", "Column Rule Width", 77, Measure("thin", "medium", "thick", "inherit"), "medium"),
		selectSetting("column_rule_width_unit", "Column Rule Width Unit", 78, FixedLengths, "value1"))),
	prefixed(selectProperty("column-span",
		selectSetting("column_span", "Column Span", 79, columnSpans, "value1"))),
	prefixed(lengthProperty("column-width",
		measureSetting("column_width", "Column Width", 80, Measure("auto", "inherit"), "auto"),
		selectSetting("column_width_unit", "Column Width Unit", 81, FixedLengths, "value1"))),
)

// prefixed wraps a single-declaration property so it is also emitted with
// the -webkit- and -moz- prefixes
func prefixed(p property) property {
	name, value := p.css, p.value
	p.render = func(v view) string {
		return vendorPrefixed(name, value(v))
	}
	return p
}

// MultiColumn renders column-* properties with vendor prefixes
type MultiColumn struct {
	base
}

// NewMultiColumn creates a multi-column module. Accepted names:
// column-count, column-fill, column-gap, column-rule-color,
// column-rule-style, column-rule-width, column-span, column-width, all.
func NewMultiColumn(sectionID string, required []string) *MultiColumn {
	return &MultiColumn{base: newBase(multiColumnTable, sectionID, required)}
}

func (m *MultiColumn) SetColumnCount(v string)     { m.Set("column_count", v) }
func (m *MultiColumn) SetColumnFill(v string)      { m.Set("column_fill", v) }
func (m *MultiColumn) SetColumnRuleColor(v string) { m.Set("column_rule_color", v) }
func (m *MultiColumn) SetColumnRuleStyle(v string) { m.Set("column_rule_style", v) }
func (m *MultiColumn) SetColumnSpan(v string)      { m.Set("column_span", v) }

func (m *MultiColumn) SetColumnGap(value, unit string) {
	m.Set("column_gap", value)
	m.Set("column_gap_unit", unit)
}

func (m *MultiColumn) SetColumnRuleWidth(value, unit string) {
	m.Set("column_rule_width", value)
	m.Set("column_rule_width_unit", unit)
}

func (m *MultiColumn) SetColumnWidth(value, unit string) {
	m.Set("column_width", value)
	m.Set("column_width_unit", unit)
}
