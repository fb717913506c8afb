package version

import (
	"fmt"

	"github.com/chainbattles/deployer/common/version"
	"github.com/spf13/cobra"
)

const (
	appTitle = "ChainBattles deployer"
)

func GetCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:          "version",
		Short:        "Get current version",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.BuildVersionString(appTitle))
		},
	}
	return versionCmd
}
