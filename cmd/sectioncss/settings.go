// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os/user"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/sectioncss/internal/backup"
	"github.com/thatcatcamp/sectioncss/internal/customizer"
	"github.com/thatcatcamp/sectioncss/internal/db"
)

var (
	historyLimit int
	exportOut    string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Change customizer values from the command line",
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Save a setting; the value goes through the same sanitizer as the web form",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, m, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		ok, err := m.Save(customizer.WithActor(cmd.Context(), cliActor()), args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("value %q rejected for %s", args[1], args[0])
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], m.Get(args[0]))
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Drop a saved value so the default applies again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, m, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		if err := m.Reset(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s (now %s)\n", args[0], m.Get(args[0]))
		return nil
	},
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history <key>",
	Short: "Show recent changes to a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, m, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		changes, err := m.History(cmd.Context(), args[0], historyLimit)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes recorded")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tBY\tOLD\tNEW")
		for _, c := range changes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.CreatedAt.Format(time.DateTime), c.ChangedBy, c.OldValue, c.NewValue)
		}
		return w.Flush()
	},
}

var settingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a snapshot of the saved values",
	Long:  "Write a YAML snapshot of the saved values into backup.path, or to --out",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}
		log, err := initLogger()
		if err != nil {
			return err
		}

		src := customizer.NewDBBackend(db.GetDB())
		if exportOut != "" {
			values, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := backup.Write(exportOut, backup.NewSnapshot(values, time.Now())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d setting(s) to %s\n", len(values), exportOut)
			return nil
		}

		m, err := newBackupManager(log)
		if err != nil {
			return err
		}
		path, err := m.Create(cmd.Context(), src)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore values from a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := backup.Read(args[0])
		if err != nil {
			return err
		}

		_, _, m, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}

		ctx := customizer.WithActor(cmd.Context(), cliActor())
		saved, rejected, skipped, err := backup.Restore(ctx, snap, m)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d setting(s)\n", saved)
		for _, k := range rejected {
			fmt.Fprintf(cmd.OutOrStdout(), "  rejected: %s\n", k)
		}
		for _, k := range skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "  not in theme: %s\n", k)
		}
		return nil
	},
}

// cliActor names the local account for the change history
func cliActor() string {
	if u, err := user.Current(); err == nil {
		return "cli:" + u.Username
	}
	return "cli"
}

func init() {
	settingsHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of changes to show")
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	settingsExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write the snapshot to this file")
	settingsCmd.AddCommand(settingsExportCmd)
	settingsCmd.AddCommand(settingsImportCmd)
	rootCmd.AddCommand(settingsCmd)
}
