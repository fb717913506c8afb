package deploy

import (
	"fmt"

	"github.com/chainbattles/deployer/cmd/deployer/internal/common"
	"github.com/spf13/cobra"
)

func GetAddressCommand(cfg *common.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "address",
		Short:        "Print the address the next deployment will get",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := common.NewStore(cfg)
			if err != nil {
				return err
			}
			rt, closeRuntime, err := common.NewRuntime(cmd.Context(), cfg, store)
			if err != nil {
				return err
			}
			defer closeRuntime()

			addr, err := rt.NextAddress(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr.Hex())
			return nil
		},
	}
	return cmd
}
