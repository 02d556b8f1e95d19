package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tansive/resourcesrv/pkg/summation"
)

var sumMethod string

var sumMethods = map[string]func(int) int{
	"closed":    summation.SumClosedForm,
	"recursive": summation.SumRecursive,
	"iterative": summation.SumIterative,
}

var sumCmd = &cobra.Command{
	Use:   "sum <n>",
	Short: "Sum the integers from 1 to n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid number %q", args[0])
		}
		fn, ok := sumMethods[sumMethod]
		if !ok {
			return fmt.Errorf("unknown method %q, use closed, recursive or iterative", sumMethod)
		}
		result := fn(n)
		if jsonOutput {
			printJSON(map[string]any{"n": n, "method": sumMethod, "sum": result})
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sumCmd)

	sumCmd.Flags().StringVarP(&sumMethod, "method", "m", "closed", "closed, recursive or iterative")
}
