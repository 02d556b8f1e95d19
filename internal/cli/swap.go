package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tansive/resourcesrv/pkg/swap"
)

var (
	swapReverse bool
	swapFeed    string
)

var swapCmd = &cobra.Command{
	Use:   "swap <amount> <from> <to>",
	Short: "Convert an amount between currencies",
	Long: `Convert an amount between currencies using the latest price of each
currency in the price feed. With --reverse the amount is what should be
received and the command prints what has to be sent.

Examples:
  resource-cli swap 10 ETH USDC
  resource-cli swap 100 ATOM OSMO --reverse`,
	Args: cobra.ExactArgs(3),
	RunE: runSwap,
}

func runSwap(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	from, to := strings.ToUpper(args[1]), strings.ToUpper(args[2])

	feed := swapFeed
	if feed == "" {
		feed = GetConfig().PriceFeedURL
	}
	if feed == "" {
		feed = swap.DefaultPriceFeedURL
	}

	records, err := swap.FetchPrices(cmd.Context(), feed)
	if err != nil {
		return err
	}
	table := swap.LatestPrices(records)

	rate, err := table.Rate(from, to)
	if err != nil {
		return err
	}
	var result float64
	if swapReverse {
		result, err = table.ConvertReverse(amount, from, to)
	} else {
		result, err = table.Convert(amount, from, to)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]any{
			"from":    from,
			"to":      to,
			"amount":  amount,
			"rate":    rate,
			"result":  result,
			"reverse": swapReverse,
		})
		return nil
	}
	out := cmd.OutOrStdout()
	if swapReverse {
		fmt.Fprintf(out, "Send %.6f %s to receive %.6f %s\n", result, from, amount, to)
	} else {
		fmt.Fprintf(out, "%.6f %s = %.6f %s\n", amount, from, result, to)
	}
	if from == to {
		fmt.Fprintln(out, "1:1 exchange rate")
	} else {
		fmt.Fprintf(out, "1 %s = %.6f %s\n", from, rate, to)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().BoolVarP(&swapReverse, "reverse", "r", false, "Treat the amount as the amount to receive")
	swapCmd.Flags().StringVarP(&swapFeed, "feed", "", "", "Price feed URL (default from config, then "+swap.DefaultPriceFeedURL+")")
}
