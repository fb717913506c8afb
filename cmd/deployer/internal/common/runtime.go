package common

import (
	"context"
	"fmt"
	"io"

	"github.com/chainbattles/deployer/internal/artifacts"
	"github.com/chainbattles/deployer/internal/compiler"
	"github.com/chainbattles/deployer/internal/hre"
	"github.com/fatih/color"
)

func NewStore(cfg *Config) (*artifacts.Store, error) {
	return artifacts.NewStore(cfg.ArtifactsDir)
}

func NewCompiler(cfg *Config, store *artifacts.Store) *compiler.Compiler {
	return compiler.New(compiler.Config{
		SourcesDir:    cfg.SourcesDir,
		SolcVersion:   cfg.SolcVersion,
		SolcPath:      cfg.SolcPath,
		Optimize:      cfg.Optimizer,
		OptimizerRuns: cfg.OptimizerRuns,
	}, store)
}

// NewRuntime connects to the configured node. The returned close function releases the connection.
func NewRuntime(ctx context.Context, cfg *Config, store *artifacts.Store) (*hre.EVMRuntime, func(), error) {
	client, err := hre.Dial(ctx, cfg.RPCEndpoint)
	if err != nil {
		return nil, nil, err
	}
	rt, err := hre.NewEVMRuntime(client, store, hre.Config{
		PrivateKey: cfg.PrivateKey,
		GasLimit:   cfg.GasLimit,
		GasPrice:   cfg.GasPrice,
	})
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return rt, client.Close, nil
}

// PrintCompileSummary writes a human-readable compilation summary to w.
func PrintCompileSummary(w io.Writer, res *compiler.Result) {
	if len(res.Sources) == 0 {
		_, _ = fmt.Fprintln(w, color.YellowString("Nothing to compile"))
		return
	}
	_, _ = fmt.Fprintf(w, "%s %d Solidity %s, wrote %d %s\n",
		color.GreenString("Compiled"),
		len(res.Sources), plural(len(res.Sources), "file", "files"),
		len(res.Artifacts), plural(len(res.Artifacts), "artifact", "artifacts"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
