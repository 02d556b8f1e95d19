package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var (
	// List command flags
	listName     string
	listCategory string
	listStatus   string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources",
	Long: `List resources, most recently created first. Filters combine with AND.

Examples:
  resource-cli list
  resource-cli list --category electronics --status active
  resource-cli list --name Lap`,
	Args: cobra.NoArgs,
	RunE: listResources,
}

func listResources(cmd *cobra.Command, args []string) error {
	client := NewHTTPClient(GetConfig())

	queryParams := make(map[string]string)
	if listName != "" {
		queryParams["name"] = listName
	}
	if listCategory != "" {
		queryParams["category"] = listCategory
	}
	if listStatus != "" {
		queryParams["status"] = listStatus
	}

	response, err := client.ListResources(cmd.Context(), queryParams)
	if err != nil {
		return err
	}

	if jsonOutput {
		printRawJSON(response)
		return nil
	}

	rsp := gjson.ParseBytes(response)
	if err := printResourceTable(cmd.OutOrStdout(), rsp.Get("data")); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d resource(s)\n", rsp.Get("count").Int())
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listName, "name", "n", "", "Only resources whose name contains this text")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only resources in this category")
	listCmd.Flags().StringVarP(&listStatus, "status", "", "", "Only resources with this status")
}
