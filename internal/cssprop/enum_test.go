// SPDX-License-Identifier: MIT
package cssprop

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allEnums lists every legal-value table in the package
func allEnums() map[string]*Enum {
	return map[string]*Enum{
		"lengths":               Lengths,
		"box lengths":           BoxLengths,
		"fixed lengths":         FixedLengths,
		"background attachment": backgroundAttachments,
		"background position":   backgroundPositions,
		"background repeat":     backgroundRepeats,
		"background clip":       backgroundClips,
		"background origin":     backgroundOrigins,
		"border style":          borderStyles,
		"font family":           fontFamilies,
		"font style":            fontStyles,
		"font variant":          fontVariants,
		"font weight":           fontWeights,
		"column rule style":     columnRuleStyles,
		"column span":           columnSpans,
		"column fill":           columnFills,
		"clear":                 clearValues,
		"display":               displays,
		"float":                 floats,
		"overflow":              overflows,
		"visibility":            visibilities,
		"direction":             directions,
		"text align":            textAligns,
		"text decoration":       textDecorations,
		"text transform":        textTransforms,
		"white space":           whiteSpaces,
	}
}

func TestEnumTokensAreSequential(t *testing.T) {
	e := NewEnum("a", "b", "c")
	opts := e.Options()
	require.Len(t, opts, 3)
	for i, o := range opts {
		assert.Equal(t, fmt.Sprintf("value%d", i+1), o.Token)
	}
	assert.Equal(t, 3, e.Len())
}

func TestEnumSanitize(t *testing.T) {
	for name, e := range allEnums() {
		t.Run(name, func(t *testing.T) {
			for _, o := range e.Options() {
				got, ok := e.Sanitize(o.Token)
				assert.True(t, ok, "token %s rejected", o.Token)
				assert.Equal(t, o.Token, got)
			}
			for _, bad := range []string{"", "value0", fmt.Sprintf("value%d", e.Len()+1), "Value1", "solid", " value1"} {
				_, ok := e.Sanitize(bad)
				assert.False(t, ok, "%q accepted", bad)
			}
		})
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for name, e := range allEnums() {
		t.Run(name, func(t *testing.T) {
			for _, o := range e.Options() {
				tok, ok := e.Token(o.Literal)
				require.True(t, ok, "literal %q has no token", o.Literal)
				lit, ok := e.Literal(tok)
				require.True(t, ok)
				assert.Equal(t, o.Literal, lit)
			}
		})
	}
}

func TestEnumTokenIgnoresCase(t *testing.T) {
	tok, ok := borderStyles.Token("  SOLID ")
	require.True(t, ok)
	assert.Equal(t, "value5", tok)

	tok, ok = fontFamilies.Token("times new roman")
	require.True(t, ok)
	assert.Equal(t, "value24", tok)

	_, ok = borderStyles.Token("wavy")
	assert.False(t, ok)
}

func TestEnumOptionsIsACopy(t *testing.T) {
	opts := floats.Options()
	opts[0].Literal = "changed"
	lit, _ := floats.Literal("value1")
	assert.Equal(t, "left", lit)
}

func TestUnitTablesShareEm(t *testing.T) {
	for _, e := range []*Enum{Lengths, BoxLengths} {
		lit, ok := e.Literal("value3")
		require.True(t, ok)
		assert.Equal(t, "em", lit)
	}
	lit, _ := FixedLengths.Literal("value1")
	assert.Equal(t, "px", lit)
}
