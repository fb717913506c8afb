package compile

import (
	"github.com/chainbattles/deployer/cmd/deployer/internal/common"
	"github.com/spf13/cobra"
)

func GetCommand(cfg *common.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "compile",
		Short:        "Compile the project sources into artifacts",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := common.NewStore(cfg)
			if err != nil {
				return err
			}
			res, err := common.NewCompiler(cfg, store).Compile(cmd.Context())
			if err != nil {
				return err
			}
			common.PrintCompileSummary(cmd.ErrOrStderr(), res)
			return nil
		},
	}
	return cmd
}
