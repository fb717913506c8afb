package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainbattles/deployer/cmd/deployer/internal/common"
	"github.com/chainbattles/deployer/cmd/deployer/internal/compile"
	"github.com/chainbattles/deployer/cmd/deployer/internal/config"
	"github.com/chainbattles/deployer/cmd/deployer/internal/deploy"
	"github.com/chainbattles/deployer/cmd/deployer/internal/version"
	"github.com/chainbattles/deployer/common/check"
	"github.com/chainbattles/deployer/common/logging"
	"github.com/chainbattles/deployer/services/cliservice"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type RootCommand struct {
	baseCmd  *cobra.Command
	viper    *viper.Viper
	config   common.Config
	params   deploy.Params
	cfgFile  string
	logLevel string
	verbose  bool
	exitCode int
}

var logger = logging.NewLogger("root")

var noConfigCmd = map[string]struct{}{
	"help":             {},
	"completion":       {},
	"__complete":       {},
	"__completeNoDesc": {},
	"config":           {},
	"version":          {},
}

func init() {
	// Subcommands with their own pre-run hooks still get logging set up by the root.
	cobra.EnableTraverseRunHooks = true
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := newRootCommand(viper.GetViper()).Execute(ctx)
	stop()
	os.Exit(code)
}

func newRootCommand(v *viper.Viper) *RootCommand {
	var rootCmd *RootCommand

	rootCmd = &RootCommand{
		viper: v,
		baseCmd: &cobra.Command{
			Use:   "deployer",
			Short: "Compile and deploy the ChainBattles contract",
			Long: "Compile the project sources, deploy the configured contract with no constructor arguments " +
				"and print its address once the deployment is mined",
			Args: cobra.NoArgs,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				if !rootCmd.verbose {
					zerolog.SetGlobalLevel(zerolog.Disabled)
				} else {
					level := rootCmd.logLevel
					if !cmd.Flags().Changed("log-level") {
						level = logging.LevelFromEnv(level)
					}
					if err := logging.SetupGlobalLogger(level); err != nil {
						return fmt.Errorf("invalid log level: %w", err)
					}
				}

				common.SetConfigFile(v, rootCmd.cfgFile)

				// Traverse up to find the top-level command
				for cmd.HasParent() && cmd.Parent() != rootCmd.baseCmd {
					cmd = cmd.Parent()
				}

				if _, withoutConfig := noConfigCmd[cmd.Name()]; withoutConfig {
					return nil
				}
				return rootCmd.loadConfig()
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				rootCmd.exitCode = deploy.Run(cmd.Context(), &rootCmd.config, &rootCmd.params, cmd.OutOrStdout(), cmd.ErrOrStderr())
				return nil
			},
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}

	persistent := rootCmd.baseCmd.PersistentFlags()
	persistent.StringVarP(&rootCmd.cfgFile, "config", "c", common.DefaultConfigPath, "Path to config file")
	persistent.StringVarP(&rootCmd.logLevel, "log-level", "l", "info", "Log level: trace|debug|info|warn|error|fatal|panic")
	persistent.BoolVarP(&rootCmd.verbose, "verbose", "v", false, "Verbose mode (print logs to stderr)")
	persistent.String("rpc", common.DefaultRPCEndpoint, "JSON-RPC endpoint of the node")
	persistent.String("private-key", "", "Hex-encoded private key of the deploying account")
	check.PanicIfErr(v.BindPFlag(common.Key(common.RPCEndpointField), persistent.Lookup("rpc")))
	check.PanicIfErr(v.BindPFlag(common.Key(common.PrivateKeyField), persistent.Lookup("private-key")))

	deploy.SetFlags(rootCmd.baseCmd.Flags(), v, &rootCmd.params)

	rootCmd.registerSubCommands()
	return rootCmd
}

// registerSubCommands adds all subcommands to the root command
func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		compile.GetCommand(&rc.config),
		config.GetCommand(&rc.cfgFile, rc.viper),
		deploy.GetAddressCommand(&rc.config),
		version.GetCommand(),
	)
}

// loadConfig loads the configuration from the config file, the environment and the flags
func (rc *RootCommand) loadConfig() error {
	created, err := common.ReadConfig(rc.viper)
	if err != nil {
		return err
	}
	if created {
		logger.Info().Msgf("Config file created at %s", rc.viper.ConfigFileUsed())
		logger.Info().Msgf("set via `%s config set <option> <value>` or via config file", os.Args[0])
	}

	cfg, err := common.DecodeConfig(rc.viper)
	if err != nil {
		return err
	}
	rc.config = *cfg

	logger.Debug().Msg("Configuration loaded successfully")
	return nil
}

// Execute runs the root command and returns the process exit code
func (rc *RootCommand) Execute(ctx context.Context) int {
	cmd, err := rc.baseCmd.ExecuteContextC(ctx)
	if err != nil {
		if cmd == rc.baseCmd {
			// The default invocation reports every failure on stdout.
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), fmt.Errorf("%w: %w", cliservice.ErrDeploymentFailed, err))
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return rc.exitCode
}
