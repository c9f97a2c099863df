package cli_cmds

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghostbank/ghostbank-go/internal/cli"
)

// NewConfig creates a command to inspect wallet configuration
func NewConfig(params *cli.CmdParams) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect wallet configuration",
		Long:  `View the effective wallet configuration, including defaults and environment overrides.`,
	}

	configCmd.AddCommand(newConfigGet(params))
	configCmd.AddCommand(newConfigList(params))

	return configCmd
}

// newConfigGet creates a subcommand to get a specific config value
func newConfigGet(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value",
		Long:  `Retrieve a specific configuration value by key.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			key := args[0]

			if !viper.IsSet(key) {
				fmt.Printf("Config key '%s' not found\n", key)
				return
			}

			fmt.Printf("%s = %v\n", key, viper.Get(key))
		},
	}
}

// newConfigList creates a subcommand to list all config values
func newConfigList(params *cli.CmdParams) *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long:  `Display all effective configuration values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := viper.AllSettings()

			switch strings.ToLower(format) {
			case "json":
				out, err := json.MarshalIndent(settings, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to render configuration: %w", err)
				}
				fmt.Println(string(out))

			default: // plain text format
				keys := viper.AllKeys()
				sort.Strings(keys)

				fmt.Println("Current Configuration:")
				fmt.Println("======================")
				for _, key := range keys {
					fmt.Printf("%s = %v\n", key, viper.Get(key))
				}
			}
			return nil
		},
	}

	listCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text or json)")

	return listCmd
}
