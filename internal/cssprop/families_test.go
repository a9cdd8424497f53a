// SPDX-License-Identifier: MIT
package cssprop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEverySettingSanitizes registers every family and checks each
// setting against its own policy
func TestEverySettingSanitizes(t *testing.T) {
	for _, f := range Families() {
		t.Run(f.String(), func(t *testing.T) {
			m, err := New(f, "s", []string{"all"})
			require.NoError(t, err)
			r := newRecorder()
			m.Register(r)
			require.NotEmpty(t, r.keys)

			for _, c := range r.controls {
				s := r.sanitizers[c.Key]
				switch c.Type {
				case ControlSelect:
					for _, o := range c.Choices {
						got, ok := s(o.Token)
						assert.True(t, ok, "%s rejected %s", c.Key, o.Token)
						assert.Equal(t, o.Token, got)
					}
					_, ok := s("value999")
					assert.False(t, ok, c.Key)
					_, ok = s("foo")
					assert.False(t, ok, c.Key)
				case ControlColor:
					_, ok := s("#ffffff")
					assert.True(t, ok, c.Key)
					_, ok = s("foo")
					assert.False(t, ok, c.Key)
				case ControlText:
					if c.Key == "s_css_background_image" {
						continue
					}
					_, ok := s("foo")
					assert.False(t, ok, c.Key)
					_, ok = s("3")
					assert.True(t, ok, c.Key)
				}
				_, ok := s(r.defaults[c.Key])
				assert.True(t, ok, "default of %s does not pass its sanitizer", c.Key)
			}
		})
	}
}

func TestMeasureSettingsAcceptDecimals(t *testing.T) {
	m := NewMargin("s", []string{"all"})
	s, _ := m.Sanitizer("margin_top")
	for in, want := range map[string]bool{"3.1415": true, "auto": true, "inherit": true, "foo": false, "3.": false} {
		_, ok := s(in)
		assert.Equal(t, want, ok, in)
	}

	d := NewDimension("s", nil)
	s, _ = d.Sanitizer("dimension_width")
	_, ok := s("auto")
	assert.True(t, ok)
	s, _ = d.Sanitizer("dimension_max_width")
	_, ok = s("none")
	assert.True(t, ok)
	_, ok = s("auto")
	assert.False(t, ok)
}

func TestDefaultsRenderEveryFamily(t *testing.T) {
	want := map[Family]string{
		FamilyBorder: "border-top:medium none #000000;border-right:medium none #000000;" +
			"border-bottom:medium none #000000;border-left:medium none #000000;",
		FamilyBorderRadius: "border-top-left-radius:0px;border-top-right-radius:0px;" +
			"border-bottom-left-radius:0px;border-bottom-right-radius:0px;",
		FamilyDimension: "height:auto;width:auto;max-height:none;max-width:none;min-height:0px;min-width:0px;",
		FamilyFont: "font-family:Arial, Helvetica, sans-serif;font-size:medium;" +
			"font-style:normal;font-variant:normal;font-weight:normal;",
		FamilyMargin:   "margin-top:0px;margin-right:0px;margin-bottom:0px;margin-left:0px;",
		FamilyPadding:  "padding-top:0px;padding-right:0px;padding-bottom:0px;padding-left:0px;",
		FamilyPosition: "clear:none;display:inline;float:none;overflow:visible;visibility:visible;z-index:auto;",
		FamilyText: "color:#000000;direction:ltr;letter-spacing:normal;line-height:normal;" +
			"text-align:left;text-decoration:none;text-indent:0px;text-transform:none;" +
			"vertical-align:baseline;white-space:normal;word-spacing:normal;",
	}
	for f, css := range want {
		m, _ := New(f, "s", []string{"all"})
		r := newRecorder()
		m.Register(r)
		assert.Equal(t, css, m.RenderCSS(r), f.String())
	}
}

func TestBorderTopExample(t *testing.T) {
	m := NewBorder("hero", []string{"border-top"})
	r := newRecorder()
	m.Register(r)

	require.True(t, r.put("hero_css_border_top_width", "10"))
	require.True(t, r.put("hero_css_border_top_width_units", "value3"))
	require.True(t, r.put("hero_css_border_top_style", "value5"))
	require.True(t, r.put("hero_css_border_top_color", "#ffffff"))

	assert.Equal(t, "border-top:10em solid #ffffff;", m.RenderCSS(r))
}

func TestSetBorderSide(t *testing.T) {
	m := NewBorder("hero", []string{"border-left"})
	m.SetBorderLeft("2", "PX", "Dashed", "#ccc")
	assert.Equal(t, "border-left:2px dashed #ccc;", m.RenderCSS(m.Defaults().Reader("hero")))

	// one bad part leaves only that part alone
	m.SetBorderLeft("wide", "em", "wavy", "#000")
	d := m.Defaults()
	assert.Equal(t, "2", d.Get("border_left_width"))
	assert.Equal(t, "value3", d.Get("border_left_width_units"))
	assert.Equal(t, "value4", d.Get("border_left_style"))
	assert.Equal(t, "#000", d.Get("border_left_color"))
}

func TestBackgroundAllDefaults(t *testing.T) {
	m := NewBackground("hero", []string{"all"})
	r := newRecorder()
	m.Register(r)

	css := m.RenderCSS(r)
	assert.Equal(t,
		"background-attachment:scroll;background-color:transparent;background-image:none;"+
			"background-position:left top;background-repeat:repeat;background-clip:border-box;"+
			"background-origin:padding-box;background-size:auto auto;",
		css)

	decls := strings.Split(strings.TrimSuffix(css, ";"), ";")
	require.Len(t, decls, 8)
	order := []string{"attachment", "color", "image", "position", "repeat", "clip", "origin", "size"}
	for i, d := range decls {
		assert.True(t, strings.HasPrefix(d, "background-"+order[i]+":"), d)
	}
}

func TestBackgroundSetterRejectsSilently(t *testing.T) {
	m := NewBackground("hero", []string{"attachment"})
	m.SetAttachment("bogus")
	assert.Equal(t, "value1", m.Defaults().Get("background_attachment"))

	m.SetAttachment("Fixed")
	assert.Equal(t, "value2", m.Defaults().Get("background_attachment"))

	m.SetColor("not-a-color")
	assert.Equal(t, "transparent", m.Defaults().Get("background_color"))

	m.SetPosition("center center")
	assert.Equal(t, "value8", m.Defaults().Get("background_position"))
}

func TestBackgroundSize(t *testing.T) {
	tests := []struct {
		x, xu, y, yu string
		want         string
	}{
		{"50", "value2", "10", "value1", "background-size:50% 10px;"},
		{"cover", "value1", "10", "value1", "background-size:cover;"},
		{"auto", "value1", "contain", "value1", "background-size:contain;"},
		{"3", "value3", "auto", "value1", "background-size:3em auto;"},
		{"auto", "value1", "4", "value5", "background-size:auto 4rem;"},
		{"auto", "value1", "auto", "value1", "background-size:auto auto;"},
		{"inherit", "value1", "auto", "value1", "background-size:inherit;"},
		{"10", "value1", "inherit", "value1", "background-size:10px auto;"},
		{"inherit", "value1", "7", "value2", "background-size:auto 7%;"},
	}
	m := NewBackground("hero", []string{"size"})
	for _, tt := range tests {
		v := Values{
			"hero_css_background_size_x":       tt.x,
			"hero_css_background_size_x_units": tt.xu,
			"hero_css_background_size_y":       tt.y,
			"hero_css_background_size_y_units": tt.yu,
		}
		assert.Equal(t, tt.want, m.RenderCSS(v))
	}
}

func TestBackgroundImage(t *testing.T) {
	m := NewBackground("hero", []string{"image"})
	assert.Equal(t, "background-image:none;", m.RenderCSS(Values{"hero_css_background_image": "none"}))
	assert.Equal(t, `background-image:url("/img/a.png");`,
		m.RenderCSS(Values{"hero_css_background_image": "/img/a.png"}))
	assert.Equal(t, `background-image:url("/x\"y.png");`,
		m.RenderCSS(Values{"hero_css_background_image": `/x"y.png`}))
	assert.Equal(t, "", m.RenderCSS(Values{}))
}

func TestFontFamilySetterMatchesLabels(t *testing.T) {
	m := NewFont("body", []string{"font-family"})
	m.SetFontFamily("TIMES NEW ROMAN")
	assert.Equal(t, "value24", m.Defaults().Get("font_family"))
	assert.Equal(t, `font-family:"Times New Roman", Times, serif;`, m.RenderCSS(m.Defaults().Reader("body")))

	m.SetFontFamily("Comic Neue")
	assert.Equal(t, "value24", m.Defaults().Get("font_family"))
}

func TestFontSize(t *testing.T) {
	m := NewFont("body", []string{"font-size"})
	m.SetFontSize("1.2", "em")
	assert.Equal(t, "font-size:1.2em;", m.RenderCSS(m.Defaults().Reader("body")))

	m.SetFontSize("X-Large", "")
	assert.Equal(t, "font-size:x-large;", m.RenderCSS(m.Defaults().Reader("body")))
}

func TestMultiColumnVendorPrefixes(t *testing.T) {
	m := NewMultiColumn("news", []string{"column-count", "column-gap"})
	m.SetColumnCount("3")
	m.SetColumnGap("2", "em")
	assert.Equal(t,
		"-webkit-column-count:3;-moz-column-count:3;column-count:3;"+
			"-webkit-column-gap:2em;-moz-column-gap:2em;column-gap:2em;",
		m.RenderCSS(m.Defaults().Reader("news")))

	m.SetColumnCount("2.5")
	assert.Equal(t, "3", m.Defaults().Get("column_count"))
}

func TestMultiColumnAll(t *testing.T) {
	m := NewMultiColumn("news", []string{"all"})
	css := m.RenderCSS(m.Defaults().Reader("news"))
	assert.Equal(t, 24, strings.Count(css, ";"))
	assert.Contains(t, css, "column-span:1;")
	assert.Contains(t, css, "-moz-column-rule-style:none;")
}

func TestPositionSetters(t *testing.T) {
	m := NewPosition("nav", []string{"all"})
	m.SetDisplay("FLEX")
	m.SetZIndex("10")
	m.SetFloat("middle")
	m.SetClear("both")
	d := m.Defaults()
	assert.Equal(t, "value3", d.Get("position_display"))
	assert.Equal(t, "10", d.Get("position_z_index"))
	assert.Equal(t, "value3", d.Get("position_float"))
	assert.Equal(t, "value3", d.Get("position_clear"))
}

func TestTextShadow(t *testing.T) {
	m := NewText("h1", []string{"text-shadow"})
	assert.Equal(t, "", m.RenderCSS(m.Defaults().Reader("h1")))

	m.SetTextShadow("1", "2", "none", "px", "#333")
	assert.Equal(t, "text-shadow:1px 2px #333;", m.RenderCSS(m.Defaults().Reader("h1")))

	m.SetTextShadow("1", "2", "4", "px", "#333")
	assert.Equal(t, "text-shadow:1px 2px 4px #333;", m.RenderCSS(m.Defaults().Reader("h1")))
}

func TestTextSetters(t *testing.T) {
	m := NewText("p", []string{"text-align", "letter-spacing", "vertical-align"})
	m.SetTextAlign("Justify")
	m.SetLetterSpacing("0.5", "em")
	m.SetVerticalAlign("middle", "")
	assert.Equal(t, "text-align:justify;letter-spacing:0.5em;vertical-align:middle;",
		m.RenderCSS(m.Defaults().Reader("p")))
}

func TestBorderRadiusAndDimensionSetters(t *testing.T) {
	br := NewBorderRadius("card", []string{"border-top-left-radius"})
	br.SetRadius("top-left", "50", "%")
	assert.Equal(t, "border-top-left-radius:50%;", br.RenderCSS(br.Defaults().Reader("card")))

	d := NewDimension("card", []string{"max-width"})
	d.SetDimension("max-width", "960", "px")
	assert.Equal(t, "max-width:960px;", d.RenderCSS(d.Defaults().Reader("card")))
}
