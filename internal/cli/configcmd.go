package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configAPIPrefix string
	configPriceFeed string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the CLI configuration",
}

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a config file",
	Long: `Write a config file to --config, or to the default location.

Example:
  resource-cli config create --server localhost:3000 --api-prefix /api`,
	Args: cobra.NoArgs,
	RunE: createConfig,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadConfig(configFile); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(GetConfig())
			return nil
		}
		GetConfig().Print()
		return nil
	},
}

func createConfig(cmd *cobra.Command, args []string) error {
	file := configFile
	if file == "" {
		var err error
		if file, err = GetDefaultConfigPath(); err != nil {
			return err
		}
	}
	c := DefaultConfig()
	if serverFlag != "" {
		c.Server = MorphServer(serverFlag)
	}
	if cmd.Flags().Changed("api-prefix") {
		c.APIPrefix = normalizePrefix(configAPIPrefix)
	}
	c.PriceFeedURL = configPriceFeed
	if err := c.WriteConfig(file); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", file)
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCreateCmd)
	configCmd.AddCommand(configShowCmd)

	configCreateCmd.Flags().StringVarP(&configAPIPrefix, "api-prefix", "", defaultAPIPrefix, "Path the resource routes are mounted under")
	configCreateCmd.Flags().StringVarP(&configPriceFeed, "price-feed", "", "", "Price feed URL used by the swap command")
}
