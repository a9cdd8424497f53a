// SPDX-License-Identifier: MIT
package cssprop

var borderRadius = Measure("inherit")

var borderRadiusTable = newTable(FamilyBorderRadius,
	radiusCorner("top-left", 34),
	radiusCorner("top-right", 36),
	radiusCorner("bottom-left", 38),
	radiusCorner("bottom-right", 40),
)

func radiusCorner(corner string, prio int) property {
	name := "border-" + corner + "-radius"
	key := snake(name)
	label := titleCase(name)
	return lengthProperty(name,
		measureSetting(key, label, prio, borderRadius, "0"),
		selectSetting(key+"_units", label+" Unit", prio+1, Lengths, "value1"),
	)
}

// BorderRadius renders the per-corner border-*-radius properties
type BorderRadius struct {
	base
}

// NewBorderRadius creates a border-radius module. Accepted names:
// border-top-left-radius, border-top-right-radius, border-bottom-left-radius,
// border-bottom-right-radius, all.
func NewBorderRadius(sectionID string, required []string) *BorderRadius {
	return &BorderRadius{base: newBase(borderRadiusTable, sectionID, required)}
}

// SetRadius sets the radius and unit of one corner, e.g. "top-left"
func (b *BorderRadius) SetRadius(corner, value, unit string) {
	key := snake("border-" + corner + "-radius")
	b.Set(key, value)
	b.Set(key+"_units", unit)
}
