// SPDX-License-Identifier: MIT
package theme

import (
	"fmt"
	"os"
	"path/filepath"
)

// Starter is written when the configured theme file does not exist
const Starter = `palette: slate
sections:
  - name: Header
    priority: 10
    selector: "#"
    families:
      - family: background
        properties: [color, image, repeat]
      - family: padding
        properties: [all]
    defaults:
      background: {color: $surface}
      padding: {top: "1", top_units: em, bottom: "1", bottom_units: em}
  - name: Content
    priority: 20
    selector: "."
    families:
      - family: font
        properties: [all]
      - family: text
        properties: [color, line-height, text-align]
      - family: dimension
        properties: [max-width]
    defaults:
      text: {color: $text}
      dimension: {max_width: "960", max_width_units: px}
  - name: Footer
    priority: 30
    selector: "#"
    families:
      - family: border
        properties: [border-top]
      - family: text
        properties: [color]
    defaults:
      border: {top_width: "1", top_style: solid, top_color: $border}
      text: {color: $text-muted}
`

// WriteStarter creates path with the starter theme unless it exists
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create theme directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Starter), 0644); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	return nil
}
