package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	updateName             string
	updateDescription      string
	updateCategory         string
	updateStatus           string
	updateClearDescription bool
	updateClearCategory    bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a resource",
	Long: `Update fields of a resource. Only the fields given as flags are changed.

Examples:
  resource-cli update 3 --status inactive
  resource-cli update 3 --name "New name" --clear-description`,
	Args: cobra.ExactArgs(1),
	RunE: updateResource,
}

func updateResource(cmd *cobra.Command, args []string) error {
	id, err := parseResourceId(args[0])
	if err != nil {
		return err
	}

	body, err := buildResourceBody(cmd, map[string]*string{
		"name":        &updateName,
		"description": &updateDescription,
		"category":    &updateCategory,
		"status":      &updateStatus,
	})
	if err != nil {
		return err
	}
	for field, set := range map[string]bool{"description": updateClearDescription, "category": updateClearCategory} {
		if !set {
			continue
		}
		if cmd.Flags().Changed(field) {
			return fmt.Errorf("--%s and --clear-%s cannot be combined", field, field)
		}
		if body, err = sjson.SetRawBytes(body, field, []byte("null")); err != nil {
			return fmt.Errorf("unable to build request: %v", err)
		}
	}
	if string(body) == "{}" {
		return errors.New("nothing to update, pass at least one field flag")
	}

	client := NewHTTPClient(GetConfig())
	rsp, err := client.UpdateResource(cmd.Context(), id, body)
	if err != nil {
		return err
	}

	if jsonOutput {
		printRawJSON(rsp)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated resource %d (changes: %d)\n", id, gjson.GetBytes(rsp, "changes").Int())
	return nil
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "New name")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "", "", "New status")
	updateCmd.Flags().BoolVarP(&updateClearDescription, "clear-description", "", false, "Remove the description")
	updateCmd.Flags().BoolVarP(&updateClearCategory, "clear-category", "", false, "Remove the category")
}
