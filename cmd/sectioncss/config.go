// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/sectioncss/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sectioncss configuration",
	Long:  "View and modify sectioncss configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), config.GetString(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		if err := config.Set(args[0], args[1]); err != nil {
			return fmt.Errorf("setting config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		printSettings(cmd, "", config.GetAll())
		return nil
	},
}

// printSettings prints nested viper maps as sorted dotted keys
func printSettings(cmd *cobra.Command, prefix string, all map[string]interface{}) {
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if nested, ok := all[k].(map[string]interface{}); ok {
			printSettings(cmd, prefix+k+".", nested)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s: %v\n", prefix, k, all[k])
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig initializes the configuration system
func initConfig() error {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.InitConfig(path)
}
