package deploy

import (
	"github.com/chainbattles/deployer/cmd/deployer/internal/common"
	"github.com/chainbattles/deployer/common/check"
	"github.com/chainbattles/deployer/internal/types"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	contractFlag  = "contract"
	noCompileFlag = "no-compile"
	gasLimitFlag  = "gas-limit"
	gasPriceFlag  = "gas-price"
)

type Params struct {
	NoCompile bool

	// Read back through viper so the config file and environment apply too.
	contract string
	gasLimit types.Gas
	gasPrice types.Value
}

// SetFlags registers the deployment flags on flags and binds them to the config keys of v.
func SetFlags(flags *pflag.FlagSet, v *viper.Viper, params *Params) {
	flags.StringVar(
		&params.contract,
		contractFlag,
		common.DefaultContract,
		"Contract to deploy: a bare name or a fully qualified \"path/File.sol:Name\"",
	)
	flags.BoolVar(
		&params.NoCompile,
		noCompileFlag,
		false,
		"Deploy existing artifacts without compiling the sources first",
	)
	flags.Var(
		&params.gasLimit,
		gasLimitFlag,
		"Gas limit of the deployment transaction. If set to 0, it will be estimated automatically",
	)
	flags.Var(
		&params.gasPrice,
		gasPriceFlag,
		"Gas price, e.g. \"2gwei\". If set to 0, it will be suggested by the node",
	)

	check.PanicIfErr(v.BindPFlag(common.Key(common.ContractField), flags.Lookup(contractFlag)))
	check.PanicIfErr(v.BindPFlag(common.Key(common.GasLimitField), flags.Lookup(gasLimitFlag)))
	check.PanicIfErr(v.BindPFlag(common.Key(common.GasPriceField), flags.Lookup(gasPriceFlag)))
}
