package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resource by id",
	Long: `Delete a resource by id. Deletion is permanent.

Example:
  resource-cli delete 3`,
	Args: cobra.ExactArgs(1),
	RunE: deleteResource,
}

func deleteResource(cmd *cobra.Command, args []string) error {
	id, err := parseResourceId(args[0])
	if err != nil {
		return err
	}

	client := NewHTTPClient(GetConfig())
	if err := client.DeleteResource(cmd.Context(), id); err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]any{"result": 1, "id": id})
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted resource %d\n", id)
	return nil
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
