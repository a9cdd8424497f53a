// SPDX-License-Identifier: MIT
package cssprop

import (
	"strconv"
	"strings"
)

// Option is one entry of a legal-value table
type Option struct {
	Token   string // select token stored by the customizer, e.g. "value3"
	Label   string // text shown in the select control
	Literal string // CSS emitted for this option
}

// Enum is an ordered, immutable table of options. Tokens are assigned
// value1..valueN in declaration order.
type Enum struct {
	options []Option
	byToken map[string]int
}

// NewEnum builds a table whose labels equal their CSS literals
func NewEnum(literals ...string) *Enum {
	opts := make([]Option, len(literals))
	for i, lit := range literals {
		opts[i] = Option{Label: lit, Literal: lit}
	}
	return newEnum(opts)
}

// NewLabeledEnum builds a table from label/literal pairs
func NewLabeledEnum(pairs ...[2]string) *Enum {
	opts := make([]Option, len(pairs))
	for i, p := range pairs {
		opts[i] = Option{Label: p[0], Literal: p[1]}
	}
	return newEnum(opts)
}

func newEnum(opts []Option) *Enum {
	e := &Enum{options: opts, byToken: make(map[string]int, len(opts))}
	for i := range e.options {
		tok := "value" + strconv.Itoa(i+1)
		e.options[i].Token = tok
		e.byToken[tok] = i
	}
	return e
}

// Sanitize accepts a token only if it belongs to the table
func (e *Enum) Sanitize(token string) (string, bool) {
	if _, ok := e.byToken[token]; !ok {
		return "", false
	}
	return token, true
}

// Literal converts a select token to its CSS value
func (e *Enum) Literal(token string) (string, bool) {
	i, ok := e.byToken[token]
	if !ok {
		return "", false
	}
	return e.options[i].Literal, true
}

// Token converts a CSS value (or, failing that, a label) to its select
// token. Matching ignores case and surrounding whitespace.
func (e *Enum) Token(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, o := range e.options {
		if strings.EqualFold(o.Literal, value) {
			return o.Token, true
		}
	}
	for _, o := range e.options {
		if strings.EqualFold(o.Label, value) {
			return o.Token, true
		}
	}
	return "", false
}

// Options returns a copy of the table in order
func (e *Enum) Options() []Option {
	out := make([]Option, len(e.options))
	copy(out, e.options)
	return out
}

// Len returns the number of options
func (e *Enum) Len() int {
	return len(e.options)
}
