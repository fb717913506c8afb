package deploy

import (
	"context"
	"fmt"
	"io"

	"github.com/chainbattles/deployer/cmd/deployer/internal/common"
	"github.com/chainbattles/deployer/internal/artifacts"
	"github.com/chainbattles/deployer/internal/hre"
	"github.com/chainbattles/deployer/services/cliservice"
)

// Run compiles the project unless disabled, deploys the configured contract and
// returns the process exit code. Every failure is reported on stdout.
func Run(ctx context.Context, cfg *common.Config, params *Params, stdout, stderr io.Writer) int {
	return run(ctx, cfg, params, common.NewRuntime, stdout, stderr)
}

type connectFunc func(ctx context.Context, cfg *common.Config, store *artifacts.Store) (*hre.EVMRuntime, func(), error)

func run(ctx context.Context, cfg *common.Config, params *Params, connect connectFunc, stdout, stderr io.Writer) int {
	store, err := common.NewStore(cfg)
	if err != nil {
		return fail(stdout, err)
	}

	if !params.NoCompile {
		res, err := common.NewCompiler(cfg, store).Compile(ctx)
		if err != nil {
			return fail(stdout, err)
		}
		if len(res.Sources) > 0 {
			common.PrintCompileSummary(stderr, res)
		}
	}

	rt, closeRuntime, err := connect(ctx, cfg, store)
	if err != nil {
		return fail(stdout, err)
	}
	defer closeRuntime()

	return cliservice.NewService(rt).Run(ctx, cfg.Contract, stdout)
}

func fail(stdout io.Writer, err error) int {
	_, _ = fmt.Fprintln(stdout, fmt.Errorf("%w: %w", cliservice.ErrDeploymentFailed, err))
	return cliservice.ExitFailure
}
