// SPDX-License-Identifier: MIT
package cssprop

// Length unit tables. Every table keeps px first and, where present, em third.
var (
	// Lengths covers absolute, font-relative and percentage units
	Lengths = NewEnum("px", "%", "em", "ex", "rem", "cm", "mm", "in", "pt", "pc")

	// BoxLengths adds viewport and ch units for box spacing
	BoxLengths = NewEnum("px", "%", "em", "ex", "ch", "rem", "vh", "vw", "vmin", "vmax")

	// FixedLengths is Lengths without percentages
	FixedLengths = NewEnum("px", "em", "ex", "rem", "cm", "mm", "in", "pt", "pc")
)
