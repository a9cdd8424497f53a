// SPDX-License-Identifier: MIT
package cssprop

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/image/colornames"
)

// Sanitizer validates raw input for one setting. A false result means the
// input was rejected and the store keeps whatever value it already had.
type Sanitizer func(input string) (string, bool)

var (
	numberPattern  = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?$`)
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)

	validate = validator.New()
)

// IsNumeric reports whether s is a plain decimal number
func IsNumeric(s string) bool {
	return numberPattern.MatchString(strings.TrimSpace(s))
}

// Measure accepts a number or one of the given keywords
func Measure(keywords ...string) Sanitizer {
	return numberOr(numberPattern, keywords)
}

// Integer accepts a whole number or one of the given keywords
func Integer(keywords ...string) Sanitizer {
	return numberOr(integerPattern, keywords)
}

func numberOr(pattern *regexp.Regexp, keywords []string) Sanitizer {
	return func(input string) (string, bool) {
		v := strings.TrimSpace(input)
		if pattern.MatchString(v) {
			return v, true
		}
		if kw, ok := matchKeyword(v, keywords); ok {
			return kw, true
		}
		return "", false
	}
}

func matchKeyword(v string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.EqualFold(v, kw) {
			return kw, true
		}
	}
	return "", false
}

var colorKeywords = []string{"transparent", "inherit", "currentcolor"}

// Color accepts hex, rgb(a) and hsl(a) notations, the CSS named colors and
// a few CSS keywords
func Color(input string) (string, bool) {
	v := strings.TrimSpace(input)
	if kw, ok := matchKeyword(v, colorKeywords); ok {
		return kw, true
	}
	if name := strings.ToLower(v); name != "" {
		if _, ok := colornames.Map[name]; ok {
			return name, true
		}
	}
	if v == "" || validate.Var(v, "iscolor") != nil {
		return "", false
	}
	return v, true
}

// FreeText accepts anything
func FreeText(input string) (string, bool) {
	return input, true
}
