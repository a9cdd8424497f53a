// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/sectioncss/internal/section"
)

var (
	renderVerify bool
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the rendered stylesheet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sheet, m, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		css := sheet.Render(m)
		if renderVerify {
			if err := section.Verify(css); err != nil {
				return err
			}
		}

		if renderOut == "" {
			fmt.Fprintln(cmd.OutOrStdout(), css)
			return nil
		}
		if err := os.WriteFile(renderOut, []byte(css), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", renderOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(css), renderOut)
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderVerify, "verify", false, "parse the output and fail on CSS errors")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}
