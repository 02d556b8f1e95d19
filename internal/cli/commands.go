package cli

import (
	"errors"
	"fmt"
	"os"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

const cliVersion = "v0.1.0"

var (
	// Global flags
	jsonOutput bool
	configFile string
	serverFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "resource-cli",
	Short: "Resource CLI - A command line interface for the resource server",
	Long: `Resource CLI is a command line interface for the resource server.
It allows you to create, list, read, update, and delete resources, and also
bundles the swap-rate calculator and the triangular-number summation.`,
	PersistentPreRunE: preRunHandlePersistents,
}

func init() {
	// Set up persistent flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "Server address, overrides the config file")

	rootCmd.AddCommand(newVersionCmd())
}

// NewRootCmd returns the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if jsonOutput {
			kv := map[string]string{
				"error": err.Error(),
			}
			printJSON(kv)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// preRunHandlePersistents loads the config file. An explicit --config must
// exist; a missing default config falls back to built-in defaults.
func preRunHandlePersistents(cmd *cobra.Command, args []string) error {
	explicit := configFile != ""
	if !isConfigCmd(cmd) {
		if err := LoadConfig(configFile); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("unable to load config file: %w", err)
			}
			SetConfig(DefaultConfig())
		}
	}
	if serverFlag != "" {
		GetConfig().Server = MorphServer(serverFlag)
	}
	return nil
}

func isConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of resource-cli",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOutput {
				kv := map[string]string{
					"version": cliVersion,
				}
				printJSON(kv)
			} else {
				cmd.Println("resource-cli " + cliVersion)
			}
		},
	}
}

// printJSON prints the given value as indented JSON to stdout
func printJSON(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// printRawJSON indents a server response without reordering its keys.
func printRawJSON(raw []byte) {
	fmt.Print(string(pretty.Pretty(raw)))
}
