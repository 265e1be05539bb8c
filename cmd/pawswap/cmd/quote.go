package cmd

import (
	"fmt"
	"io"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawswap/x/amm/types"
)

const (
	flagReserveIn  = "reserve-in"
	flagReserveOut = "reserve-out"
	flagFeeBps     = "fee-bps"
)

// QuoteCmd groups the pure pricing commands. They price a trade against the
// reserves given on the command line and touch no state.
func QuoteCmd(v *viper.Viper) *cobra.Command {
	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a trade against given reserves",
	}

	quoteCmd.PersistentFlags().String(flagReserveIn, "", "reserve of the input asset")
	quoteCmd.PersistentFlags().String(flagReserveOut, "", "reserve of the output asset")
	quoteCmd.PersistentFlags().Uint32(flagFeeBps, types.DefaultSwapFeeBps, "swap fee in basis points")

	quoteCmd.AddCommand(
		&cobra.Command{
			Use:   "exact-in [asset-in] [asset-out] [amount-in]",
			Short: "Output received for selling an exact input",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, err := parseQuote(v, args)
				if err != nil {
					return err
				}
				out, pool, err := types.CalculateOut(q.amount, q.assetIn, q.pool, q.params)
				if err != nil {
					return err
				}
				return printQuote(cmd.OutOrStdout(), "amount_out", out, q.assetIn, pool)
			},
		},
		&cobra.Command{
			Use:   "exact-out [asset-in] [asset-out] [amount-out]",
			Short: "Input required to buy an exact output",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, err := parseQuote(v, args)
				if err != nil {
					return err
				}
				in, pool, err := types.CalculateIn(q.amount, q.assetOut, q.pool, q.params)
				if err != nil {
					return err
				}
				return printQuote(cmd.OutOrStdout(), "amount_in", in, q.assetIn, pool)
			},
		},
	)

	return quoteCmd
}

type quoteRequest struct {
	assetIn  types.AssetID
	assetOut types.AssetID
	amount   math.Int
	pool     types.Pool
	params   types.Params
}

func parseQuote(v *viper.Viper, args []string) (quoteRequest, error) {
	q := quoteRequest{
		assetIn:  types.AssetID(args[0]),
		assetOut: types.AssetID(args[1]),
		params:   types.Params{SwapFeeBps: v.GetUint32(flagFeeBps)},
	}
	if err := q.params.Validate(); err != nil {
		return q, err
	}

	var err error
	if q.amount, err = parseAmount("amount", args[2]); err != nil {
		return q, err
	}
	reserveIn, err := parseAmount(flagReserveIn, v.GetString(flagReserveIn))
	if err != nil {
		return q, err
	}
	reserveOut, err := parseAmount(flagReserveOut, v.GetString(flagReserveOut))
	if err != nil {
		return q, err
	}

	pair, err := types.NewPoolPair(q.assetIn, reserveIn, q.assetOut, reserveOut)
	if err != nil {
		return q, err
	}
	lp, err := types.InitialLPAmount(pair)
	if err != nil {
		return q, err
	}
	q.pool = types.NewPool(pair, lp)
	return q, q.pool.Validate()
}

func parseAmount(name, s string) (math.Int, error) {
	x, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s %q", name, s)
	}
	if err := types.ValidateAmount(x); err != nil {
		return math.Int{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return x, nil
}

func printQuote(w io.Writer, label string, amount math.Int, input types.AssetID, pool types.Pool) error {
	reserveIn, reserveOut, err := pool.Reserves(input)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %s\nreserve_in: %s\nreserve_out: %s\n", label, amount, reserveIn, reserveOut)
	return err
}
