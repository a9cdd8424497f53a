// SPDX-License-Identifier: MIT
package cssprop

var (
	fontFamilies = NewLabeledEnum(
		[2]string{"Arial", `Arial, Helvetica, sans-serif`},
		[2]string{"Arial Black", `"Arial Black", Gadget, sans-serif`},
		[2]string{"Book Antiqua", `"Book Antiqua", "Palatino Linotype", Palatino, serif`},
		[2]string{"Calibri", `Calibri, Arial, Helvetica, sans-serif`},
		[2]string{"Cambria", `Cambria, Times, serif`},
		[2]string{"Charcoal", `Charcoal, Impact, sans-serif`},
		[2]string{"Comic Sans MS", `"Comic Sans MS", cursive, sans-serif`},
		[2]string{"Courier", `Courier, "Courier New", monospace`},
		[2]string{"Courier New", `"Courier New", Courier, monospace`},
		[2]string{"Gadget", `Gadget, "Arial Black", sans-serif`},
		[2]string{"Geneva", `Geneva, Verdana, sans-serif`},
		[2]string{"Georgia", `Georgia, serif`},
		[2]string{"Helvetica", `Helvetica, Arial, sans-serif`},
		[2]string{"Impact", `Impact, Charcoal, sans-serif`},
		[2]string{"Lucida Console", `"Lucida Console", Monaco, monospace`},
		[2]string{"Lucida Grande", `"Lucida Grande", "Lucida Sans Unicode", sans-serif`},
		[2]string{"Lucida Sans Unicode", `"Lucida Sans Unicode", "Lucida Grande", sans-serif`},
		[2]string{"Monaco", `Monaco, "Lucida Console", monospace`},
		[2]string{"Palatino", `Palatino, "Palatino Linotype", "Book Antiqua", serif`},
		[2]string{"Palatino Linotype", `"Palatino Linotype", "Book Antiqua", Palatino, serif`},
		[2]string{"Segoe UI", `"Segoe UI", Segoe, "DejaVu Sans", "Trebuchet MS", Verdana, sans-serif`},
		[2]string{"Tahoma", `Tahoma, Geneva, sans-serif`},
		[2]string{"Times", `Times, "Times New Roman", serif`},
		[2]string{"Times New Roman", `"Times New Roman", Times, serif`},
		[2]string{"Trebuchet MS", `"Trebuchet MS", Helvetica, sans-serif`},
		[2]string{"Verdana", `Verdana, Geneva, sans-serif`},
	)
	fontStyles   = NewEnum("normal", "italic", "oblique", "inherit")
	fontVariants = NewEnum("normal", "small-caps", "inherit")
	fontWeights  = NewEnum(
		"normal", "bold", "bolder", "lighter",
		"100", "200", "300", "400", "500", "600", "700", "800", "900",
		"inherit",
	)

	fontSize = Measure(
		"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large",
		"smaller", "larger", "inherit",
	)
)

var fontTable = newTable(FamilyFont,
	selectProperty("font-family",
		selectSetting("font_family", "Font Family", 54, fontFamilies, "value1")),
	lengthProperty("font-size",
		measureSetting("font_size", "Font Size", 55, fontSize, "medium"),
		selectSetting("font_size_unit", "Font Size Unit", 56, Lengths, "value1")),
	selectProperty("font-style",
		selectSetting("font_style", "Font Style", 57, fontStyles, "value1")),
	selectProperty("font-variant",
		selectSetting("font_variant", "Font Variant", 58, fontVariants, "value1")),
	selectProperty("font-weight",
		selectSetting("font_weight", "Font Weight", 59, fontWeights, "value1")),
)

// Font renders font-* properties
type Font struct {
	base
}

// NewFont creates a font module. Accepted names: font-family, font-size,
// font-style, font-variant, font-weight, all.
func NewFont(sectionID string, required []string) *Font {
	return &Font{base: newBase(fontTable, sectionID, required)}
}

// SetFontFamily accepts a font name such as "Times New Roman" or its full
// font stack
func (f *Font) SetFontFamily(v string) { f.Set("font_family", v) }

func (f *Font) SetFontSize(value, unit string) {
	f.Set("font_size", value)
	f.Set("font_size_unit", unit)
}

func (f *Font) SetFontStyle(v string)   { f.Set("font_style", v) }
func (f *Font) SetFontVariant(v string) { f.Set("font_variant", v) }
func (f *Font) SetFontWeight(v string)  { f.Set("font_weight", v) }
