// SPDX-License-Identifier: MIT
package cssprop

import "strings"

// view reads one section's values for a family during rendering
type view struct {
	r         Reader
	sectionID string
	table     *table
}

// value returns the stored value for a suffix, or "" if it is missing or
// no longer passes its sanitizer
func (v view) value(suffix string) string {
	s, ok := v.table.bySuffix[suffix]
	if !ok {
		return ""
	}
	raw := strings.TrimSpace(v.r.Get(Key(v.sectionID, suffix)))
	if raw == "" {
		return ""
	}
	out, ok := s.sanitizer()(raw)
	if !ok {
		return ""
	}
	return out
}

// literal converts a stored select token to CSS
func (v view) literal(suffix string) string {
	s, ok := v.table.bySuffix[suffix]
	if !ok || s.kind != kindSelect {
		return ""
	}
	lit, _ := s.enum.Literal(v.value(suffix))
	return lit
}

// length renders a number with its unit, or a keyword as is
func (v view) length(suffix, unitSuffix string) string {
	val := v.value(suffix)
	if val == "" || !IsNumeric(val) {
		return val
	}
	unit := v.literal(unitSuffix)
	if unit == "" {
		return ""
	}
	return val + unit
}

func decl(name, value string) string {
	if value == "" {
		return ""
	}
	return name + ":" + value + ";"
}

// vendorPrefixed repeats a declaration for -webkit- and -moz-
func vendorPrefixed(name, value string) string {
	d := decl(name, value)
	if d == "" {
		return ""
	}
	return "-webkit-" + d + "-moz-" + d + d
}

func selectProperty(name string, s setting) property {
	return valueProperty(name, []setting{s}, func(v view) string {
		return v.literal(s.suffix)
	})
}

func plainProperty(name string, s setting) property {
	return valueProperty(name, []setting{s}, func(v view) string {
		return v.value(s.suffix)
	})
}

func lengthProperty(name string, value, unit setting) property {
	return valueProperty(name, []setting{value, unit}, func(v view) string {
		return v.length(value.suffix, unit.suffix)
	})
}

// valueProperty renders a single declaration from a value function
func valueProperty(name string, settings []setting, value func(v view) string) property {
	return property{
		name:     name,
		css:      name,
		settings: settings,
		value:    value,
		render: func(v view) string {
			return decl(name, value(v))
		},
	}
}

// sides builds one length property per box side, e.g. margin-top
func sides(prefix, keyPrefix, unitSuffix string, firstPriority int, units *Enum, s Sanitizer, def string) []property {
	label := strings.ToUpper(prefix[:1]) + prefix[1:]
	var out []property
	prio := firstPriority
	for _, side := range []string{"top", "right", "bottom", "left"} {
		key := keyPrefix + "_" + side
		sideLabel := label + " " + strings.ToUpper(side[:1]) + side[1:]
		out = append(out, lengthProperty(prefix+"-"+side,
			measureSetting(key, sideLabel, prio, s, def),
			selectSetting(key+unitSuffix, sideLabel+" Unit", prio+1, units, "value1"),
		))
		prio += 2
	}
	return out
}

// named changes the name a property is selected by without touching the
// CSS property it renders
func (p property) named(name string) property {
	p.name = name
	return p
}

// snake turns a CSS property name into a settings key fragment
func snake(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// titleCase turns "max-width" into "Max Width"
func titleCase(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
