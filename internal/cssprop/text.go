// SPDX-License-Identifier: MIT
package cssprop

import "strings"

var (
	directions       = NewEnum("ltr", "rtl", "inherit")
	textAligns       = NewEnum("left", "right", "center", "justify", "inherit")
	textDecorations  = NewEnum("none", "underline", "overline", "line-through", "inherit")
	textTransforms   = NewEnum("none", "capitalize", "uppercase", "lowercase", "inherit")
	whiteSpaces      = NewEnum("normal", "nowrap", "pre", "pre-line", "pre-wrap", "inherit")
	spacing          = Measure("normal", "inherit")
	shadowOffset     = Measure("none")
	verticalAlignKWs = Measure(
		"baseline", "sub", "super", "top", "text-top",
		"middle", "bottom", "text-bottom", "inherit",
	)
)

var textTable = newTable(FamilyText,
	plainProperty("color", colorSetting("color", "Text Color", 95, "#000000")),
	selectProperty("direction", selectSetting("direction", "Direction", 96, directions, "value1")),
	lengthProperty("letter-spacing",
		measureSetting("letter_spacing", "Letter Spacing", 97, spacing, "normal"),
		selectSetting("letter_spacing_unit", "Letter Spacing Unit", 98, FixedLengths, "value1")),
	lengthProperty("line-height",
		measureSetting("line_height", "Line Height", 99, spacing, "normal"),
		selectSetting("line_height_unit", "Line Height Unit", 100, Lengths, "value1")),
	selectProperty("text-align", selectSetting("text_align", "Text Align", 101, textAligns, "value1")),
	selectProperty("text-decoration", selectSetting("text_decoration", "Text Decoration", 102, textDecorations, "value1")),
	lengthProperty("text-indent",
		measureSetting("text_indent", "Text Indent", 103, Measure("inherit"), "0"),
		selectSetting("text_indent_unit", "Text Indent Unit", 104, Lengths, "value1")),
	selectProperty("text-transform", selectSetting("text_transform", "Text Transform", 105, textTransforms, "value1")),
	lengthProperty("vertical-align",
		measureSetting("vertical_align", "Vertical Align", 106, verticalAlignKWs, "baseline"),
		selectSetting("vertical_align_unit", "Vertical Align Unit", 107, Lengths, "value1")),
	selectProperty("white-space", selectSetting("white_space", "White Space", 108, whiteSpaces, "value1")),
	lengthProperty("word-spacing",
		measureSetting("word_spacing", "Word Spacing", 109, spacing, "normal"),
		selectSetting("word_spacing_unit", "Word Spacing Unit", 110, FixedLengths, "value1")),
	property{
		name: "text-shadow",
		css:  "text-shadow",
		settings: []setting{
			measureSetting("text_shadow_h", "Text Shadow Horizontal", 111, shadowOffset, "none"),
			selectSetting("text_shadow_h_unit", "Text Shadow Horizontal Unit", 112, FixedLengths, "value1"),
			measureSetting("text_shadow_v", "Text Shadow Vertical", 113, shadowOffset, "none"),
			selectSetting("text_shadow_v_unit", "Text Shadow Vertical Unit", 114, FixedLengths, "value1"),
			measureSetting("text_shadow_blur", "Text Shadow Blur", 115, shadowOffset, "none"),
			selectSetting("text_shadow_blur_unit", "Text Shadow Blur Unit", 116, FixedLengths, "value1"),
			colorSetting("text_shadow_color", "Text Shadow Color", 117, "#000000"),
		},
		render: renderTextShadow,
	},
)

// renderTextShadow needs both offsets; blur and color are optional
func renderTextShadow(v view) string {
	offset := func(suffix string) string {
		if !IsNumeric(v.value(suffix)) {
			return ""
		}
		return v.length(suffix, suffix+"_unit")
	}
	h, vert := offset("text_shadow_h"), offset("text_shadow_v")
	if h == "" || vert == "" {
		return ""
	}
	parts := []string{h, vert}
	if blur := offset("text_shadow_blur"); blur != "" {
		parts = append(parts, blur)
	}
	if c := v.value("text_shadow_color"); c != "" {
		parts = append(parts, c)
	}
	return decl("text-shadow", strings.Join(parts, " "))
}

// Text renders color, spacing, alignment and decoration properties
type Text struct {
	base
}

// NewText creates a text module. Accepted names: color, direction,
// letter-spacing, line-height, text-align, text-decoration, text-indent,
// text-transform, vertical-align, white-space, word-spacing, text-shadow, all.
func NewText(sectionID string, required []string) *Text {
	return &Text{base: newBase(textTable, sectionID, required)}
}

func (t *Text) SetColor(v string)          { t.Set("color", v) }
func (t *Text) SetDirection(v string)      { t.Set("direction", v) }
func (t *Text) SetTextAlign(v string)      { t.Set("text_align", v) }
func (t *Text) SetTextDecoration(v string) { t.Set("text_decoration", v) }
func (t *Text) SetTextTransform(v string)  { t.Set("text_transform", v) }
func (t *Text) SetWhiteSpace(v string)     { t.Set("white_space", v) }

func (t *Text) SetLetterSpacing(value, unit string) { t.setLength("letter_spacing", value, unit) }
func (t *Text) SetLineHeight(value, unit string)    { t.setLength("line_height", value, unit) }
func (t *Text) SetTextIndent(value, unit string)    { t.setLength("text_indent", value, unit) }
func (t *Text) SetVerticalAlign(value, unit string) { t.setLength("vertical_align", value, unit) }
func (t *Text) SetWordSpacing(value, unit string)   { t.setLength("word_spacing", value, unit) }

// SetTextShadow sets both offsets, the blur radius and the color. Offsets
// share one unit.
func (t *Text) SetTextShadow(h, v, blur, unit, color string) {
	t.setLength("text_shadow_h", h, unit)
	t.setLength("text_shadow_v", v, unit)
	t.setLength("text_shadow_blur", blur, unit)
	t.Set("text_shadow_color", color)
}

func (t *Text) setLength(key, value, unit string) {
	t.Set(key, value)
	t.Set(key+"_unit", unit)
}
