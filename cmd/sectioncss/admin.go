// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/sectioncss/internal/db"
	"github.com/thatcatcamp/sectioncss/internal/users"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage customizer administrators",
	Long:  "Create, list, and remove the accounts that may log in to /admin",
}

// readPassword reads one line from the command's stdin
func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Enter password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

var adminAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Create an administrator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		password, err := readPassword(cmd)
		if err != nil {
			return err
		}

		admin, err := users.CreateAdmin(db.GetDB(), args[0], password)
		if err != nil {
			return fmt.Errorf("creating admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Admin created: %s (ID: %d)\n", admin.Username, admin.ID)
		return nil
	},
}

var adminPasswdCmd = &cobra.Command{
	Use:   "passwd <username>",
	Short: "Change an administrator's password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		password, err := readPassword(cmd)
		if err != nil {
			return err
		}

		if err := users.SetPassword(db.GetDB(), args[0], password); err != nil {
			return fmt.Errorf("changing password: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Password changed for %s\n", args[0])
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List administrators",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		admins, err := users.ListAdmins(db.GetDB())
		if err != nil {
			return fmt.Errorf("listing admins: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tCREATED\tLAST LOGIN")
		for _, a := range admins {
			lastLogin := "never"
			if a.LastLoginAt != nil {
				lastLogin = a.LastLoginAt.Format("2006-01-02 15:04")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Username, a.CreatedAt.Format("2006-01-02"), lastLogin)
		}
		return w.Flush()
	},
}

var adminRemoveCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Remove an administrator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		if err := users.DeleteAdmin(db.GetDB(), args[0]); err != nil {
			return fmt.Errorf("removing admin: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Admin removed: %s\n", args[0])
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminAddCmd)
	adminCmd.AddCommand(adminPasswdCmd)
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminRemoveCmd)
	rootCmd.AddCommand(adminCmd)
}
