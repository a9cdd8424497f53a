// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/sectioncss/internal/config"
	"github.com/thatcatcamp/sectioncss/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the theme file",
}

var themeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the starter theme if no theme file exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		path := config.GetString("theme.path")
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Theme already exists: %s\n", path)
			return nil
		}
		if err := theme.WriteStarter(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter theme to %s\n", path)
		return nil
	},
}

var themeCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the theme and report problems",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		path := config.GetString("theme.path")
		t, err := theme.Load(path)
		if err != nil {
			return err
		}
		sheet, err := t.Build(nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d section(s), palette %s\n", path, len(sheet.Sections()), t.Palette)
		return nil
	},
}

var themePalettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the palettes a theme may name",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range theme.PaletteNames() {
			p, _ := theme.LookupPalette(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s %s\n", name, p.Primary, p.Secondary)
		}
	},
}

func init() {
	themeCmd.AddCommand(themeInitCmd)
	themeCmd.AddCommand(themeCheckCmd)
	themeCmd.AddCommand(themePalettesCmd)
	rootCmd.AddCommand(themeCmd)
}
