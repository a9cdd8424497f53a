// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sectioncss",
	Short: "sectioncss - per-section CSS customizer",
	Long: `sectioncss renders one CSS rule block per configured page section
(header, hero, footer, ...) from values an administrator edits in a web form.

Sections and their property families are described in a YAML theme file;
edited values live in the settings database.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $SECTIONCSS_CONFIG or ~/.sectioncss/config.yaml)")
}
