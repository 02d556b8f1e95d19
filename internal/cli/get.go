package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a resource by id",
	Args:  cobra.ExactArgs(1),
	RunE:  getResource,
}

func getResource(cmd *cobra.Command, args []string) error {
	id, err := parseResourceId(args[0])
	if err != nil {
		return err
	}

	client := NewHTTPClient(GetConfig())
	rsp, err := client.GetResource(cmd.Context(), id)
	if err != nil {
		return err
	}

	if jsonOutput {
		printRawJSON(rsp)
		return nil
	}
	printResource(cmd.OutOrStdout(), gjson.ParseBytes(rsp))
	return nil
}

func parseResourceId(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid resource id %q", arg)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(getCmd)
}
