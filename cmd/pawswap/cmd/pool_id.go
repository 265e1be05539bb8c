package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paw-chain/pawswap/x/amm/types"
)

// PoolIDCmd prints the canonical pair and LP asset id for two assets.
func PoolIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool-id [asset-a] [asset-b]",
		Short: "Derive the LP asset id of a pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a1, a2, err := types.Canonicalize(types.AssetID(args[0]), types.AssetID(args[1]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "asset_1: %s\nasset_2: %s\npool_id: %s\n", a1, a2, types.DerivePoolID(a1, a2))
			return err
		},
	}
}
