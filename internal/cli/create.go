package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	createName        string
	createDescription string
	createCategory    string
	createStatus      string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new resource",
	Long: `Create a new resource. Only --name is required; the server assigns the id,
defaults the status to "active" and stamps the timestamps.

Example:
  resource-cli create --name Laptop --category electronics --description "Dell XPS 15"`,
	Args: cobra.NoArgs,
	RunE: createResource,
}

func createResource(cmd *cobra.Command, args []string) error {
	body, err := buildResourceBody(cmd, map[string]*string{
		"name":        &createName,
		"description": &createDescription,
		"category":    &createCategory,
		"status":      &createStatus,
	})
	if err != nil {
		return err
	}

	client := NewHTTPClient(GetConfig())
	rsp, location, err := client.CreateResource(cmd.Context(), body)
	if err != nil {
		return err
	}

	if jsonOutput {
		printRawJSON(rsp)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created resource %s at %s\n", gjson.GetBytes(rsp, "id").String(), location)
	return nil
}

// buildResourceBody returns a JSON object holding the flags the user set.
func buildResourceBody(cmd *cobra.Command, flags map[string]*string) ([]byte, error) {
	body := []byte(`{}`)
	for name, value := range flags {
		if !cmd.Flags().Changed(name) {
			continue
		}
		var err error
		body, err = sjson.SetBytes(body, name, *value)
		if err != nil {
			return nil, fmt.Errorf("unable to build request: %v", err)
		}
	}
	return body, nil
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Resource name")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Resource description")
	createCmd.Flags().StringVarP(&createCategory, "category", "c", "", "Resource category")
	createCmd.Flags().StringVarP(&createStatus, "status", "", "", "Resource status (default \"active\")")
	createCmd.MarkFlagRequired("name")
}
