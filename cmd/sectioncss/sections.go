// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List sections, their controls and current values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, m, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		defaults := make(map[string]string)
		for _, s := range m.Settings() {
			defaults[s.Key] = s.Default
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SECTION\tKEY\tTYPE\tVALUE\tDEFAULT")
		for _, s := range m.Sections() {
			for _, c := range s.Controls {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, c.Key, c.Type, m.Get(c.Key), defaults[c.Key])
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
