// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/sectioncss/internal/tls"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "TLS certificate information",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured certificate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		cfg, err := tls.LoadConfig()
		if err != nil {
			return err
		}
		if !cfg.Enabled {
			fmt.Fprintln(cmd.OutOrStdout(), "TLS is disabled. Enable it with: sectioncss config set server.tls_enabled true")
			return nil
		}

		st, err := cfg.Status(time.Now())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %-20s %-15s %s\n", "Names", "Issuer", "Expires", "Days Left")
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %-20s %-15s %d\n",
			st.Names(),
			st.Issuer,
			st.NotAfter.Format("2006-01-02"),
			st.DaysUntilExpiry,
		)
		return nil
	},
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}
