// SPDX-License-Identifier: MIT
package cssprop

import "strings"

var (
	backgroundAttachments = NewEnum("scroll", "fixed", "local")
	backgroundPositions   = NewEnum(
		"left top", "left center", "left bottom",
		"right top", "right center", "right bottom",
		"center top", "center center", "center bottom",
		"inherit",
	)
	backgroundRepeats = NewEnum("repeat", "repeat-x", "repeat-y", "no-repeat", "inherit")
	backgroundClips   = NewEnum("border-box", "padding-box", "content-box")
	backgroundOrigins = NewEnum("padding-box", "border-box", "content-box")

	backgroundSize = Measure("auto", "cover", "contain", "inherit")

	urlEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
)

var backgroundTable = newTable(FamilyBackground,
	selectProperty("background-attachment",
		selectSetting("background_attachment", "Background Attachment", 3, backgroundAttachments, "value1")).
		named("attachment"),
	plainProperty("background-color",
		colorSetting("background_color", "Background Color", 4, "transparent")).
		named("color"),
	property{
		name:     "image",
		css:      "background-image",
		settings: []setting{textSetting("background_image", "Background Image", 5, "none")},
		render:   renderBackgroundImage,
	},
	selectProperty("background-position",
		selectSetting("background_position", "Background Position", 6, backgroundPositions, "value1")).
		named("position"),
	selectProperty("background-repeat",
		selectSetting("background_repeat", "Background Repeat", 7, backgroundRepeats, "value1")).
		named("repeat"),
	selectProperty("background-clip",
		selectSetting("background_clip", "Background Clip", 8, backgroundClips, "value1")).
		named("clip"),
	selectProperty("background-origin",
		selectSetting("background_origin", "Background Origin", 9, backgroundOrigins, "value1")).
		named("origin"),
	property{
		name: "size",
		css:  "background-size",
		settings: []setting{
			measureSetting("background_size_x", "Background Size X", 10, backgroundSize, "auto"),
			selectSetting("background_size_x_units", "Background Size X Unit", 11, Lengths, "value1"),
			measureSetting("background_size_y", "Background Size Y", 12, backgroundSize, "auto"),
			selectSetting("background_size_y_units", "Background Size Y Unit", 13, Lengths, "value1"),
		},
		render: renderBackgroundSize,
	},
)

func renderBackgroundImage(v view) string {
	img := v.value("background_image")
	switch {
	case img == "":
		return ""
	case strings.EqualFold(img, "none"):
		return decl("background-image", "none")
	default:
		return decl("background-image", `url("`+urlEscaper.Replace(img)+`")`)
	}
}

func renderBackgroundSize(v view) string {
	x, y := v.value("background_size_x"), v.value("background_size_y")
	xLen := v.length("background_size_x", "background_size_x_units")
	yLen := v.length("background_size_y", "background_size_y_units")
	xNum, yNum := IsNumeric(x), IsNumeric(y)

	var size string
	switch {
	case xNum && yNum:
		size = xLen + " " + yLen
	case x == "cover" || y == "cover":
		size = "cover"
	case x == "contain" || y == "contain":
		size = "contain"
	case xNum:
		size = xLen + " auto"
	case yNum:
		size = "auto " + yLen
	case x == "inherit" || y == "inherit":
		size = "inherit"
	default:
		size = strings.TrimSpace(x + " " + y)
	}
	return decl("background-size", strings.TrimSpace(size))
}

// Background renders the background-* properties
type Background struct {
	base
}

// NewBackground creates a background module. Accepted names: attachment,
// color, image, position, repeat, clip, origin, size, all.
func NewBackground(sectionID string, required []string) *Background {
	return &Background{base: newBase(backgroundTable, sectionID, required)}
}

func (b *Background) SetAttachment(v string) { b.Set("background_attachment", v) }
func (b *Background) SetColor(v string)      { b.Set("background_color", v) }
func (b *Background) SetImage(v string)      { b.Set("background_image", v) }
func (b *Background) SetPosition(v string)   { b.Set("background_position", v) }
func (b *Background) SetRepeat(v string)     { b.Set("background_repeat", v) }
func (b *Background) SetClip(v string)       { b.Set("background_clip", v) }
func (b *Background) SetOrigin(v string)     { b.Set("background_origin", v) }
func (b *Background) SetSizeX(v string)      { b.Set("background_size_x", v) }
func (b *Background) SetSizeY(v string)      { b.Set("background_size_y", v) }
func (b *Background) SetSizeXUnit(v string)  { b.Set("background_size_x_units", v) }
func (b *Background) SetSizeYUnit(v string)  { b.Set("background_size_y_units", v) }
