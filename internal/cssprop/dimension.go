// SPDX-License-Identifier: MIT
package cssprop

var dimensionTable = newTable(FamilyDimension,
	dimension("height", 42, Measure("auto", "inherit"), "auto"),
	dimension("width", 44, Measure("auto", "inherit"), "auto"),
	dimension("max-height", 46, Measure("none", "inherit"), "none"),
	dimension("max-width", 48, Measure("none", "inherit"), "none"),
	dimension("min-height", 50, Measure("inherit"), "0"),
	dimension("min-width", 52, Measure("inherit"), "0"),
)

func dimension(name string, prio int, s Sanitizer, def string) property {
	key := "dimension_" + snake(name)
	label := titleCase(name)
	return lengthProperty(name,
		measureSetting(key, label, prio, s, def),
		selectSetting(key+"_units", label+" Unit", prio+1, Lengths, "value1"),
	)
}

// Dimension renders box size properties
type Dimension struct {
	base
}

// NewDimension creates a dimension module. Accepted names: height, width,
// max-height, max-width, min-height, min-width, all.
func NewDimension(sectionID string, required []string) *Dimension {
	return &Dimension{base: newBase(dimensionTable, sectionID, required)}
}

// SetDimension sets the value and unit for one property, e.g. "max-width"
func (d *Dimension) SetDimension(name, value, unit string) {
	key := "dimension_" + snake(name)
	d.Set(key, value)
	d.Set(key+"_units", unit)
}
