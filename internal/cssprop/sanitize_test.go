// SPDX-License-Identifier: MIT
package cssprop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"10", true},
		{"-3", true},
		{"+2.5", true},
		{"3.1415", true},
		{".5", true},
		{"5.", false},
		{"1e3", true},
		{" 12 ", true},
		{"", false},
		{"auto", false},
		{"10px", false},
		{"0x1F", false},
		{"Inf", false},
		{"NaN", false},
		{"1_000", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNumeric(tt.in), "IsNumeric(%q)", tt.in)
	}
}

func TestMeasure(t *testing.T) {
	s := Measure("auto", "inherit")

	got, ok := s("3.1415")
	assert.True(t, ok)
	assert.Equal(t, "3.1415", got)

	got, ok = s("auto")
	assert.True(t, ok)
	assert.Equal(t, "auto", got)

	got, ok = s("AUTO")
	assert.True(t, ok)
	assert.Equal(t, "auto", got)

	_, ok = s("foo")
	assert.False(t, ok)

	_, ok = s("cover")
	assert.False(t, ok)
}

func TestInteger(t *testing.T) {
	s := Integer("auto")
	for _, in := range []string{"3", "-10", "auto"} {
		_, ok := s(in)
		assert.True(t, ok, in)
	}
	for _, in := range []string{"3.5", "none", ""} {
		_, ok := s(in)
		assert.False(t, ok, in)
	}
}

func TestColor(t *testing.T) {
	accepted := []string{
		"#fff", "#FFFFFF", "#ffffff80", "#abcd",
		"rgb(0,0,0)", "rgba(0,0,0,0.5)", "hsl(120,50%,50%)",
		"transparent", "inherit", "currentColor",
		"red", "White", "cornflowerblue",
	}
	for _, in := range accepted {
		_, ok := Color(in)
		assert.True(t, ok, in)
	}

	rejected := []string{"", "fff", "#ggg", "#12345", "red;}", "reddish", "javascript:alert(1)"}
	for _, in := range rejected {
		_, ok := Color(in)
		assert.False(t, ok, in)
	}

	got, _ := Color("Transparent")
	assert.Equal(t, "transparent", got)

	got, _ = Color(" White ")
	assert.Equal(t, "white", got)
}

func TestFreeText(t *testing.T) {
	got, ok := FreeText("http://example.com/a.png")
	assert.True(t, ok)
	assert.Equal(t, "http://example.com/a.png", got)
}
