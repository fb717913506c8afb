package hre

import (
	"context"

	"github.com/chainbattles/deployer/common/logging"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/rs/zerolog"
)

type contractFactory struct {
	name     string
	abi      abi.ABI
	bytecode []byte
	opts     *bind.TransactOpts
	backend  Backend
	logger   zerolog.Logger
}

func (f *contractFactory) Deploy(ctx context.Context, args ...any) (DeployedContract, error) {
	opts := *f.opts
	opts.Context = ctx

	address, tx, _, err := bind.DeployContract(&opts, f.abi, f.bytecode, f.backend, args...)
	if err != nil {
		return nil, transactionError(tx, err, "failed to deploy %s", f.name)
	}

	f.logger.Info().
		Str(logging.FieldContractName, f.name).
		Stringer(logging.FieldTxHash, tx.Hash()).
		Uint64(logging.FieldTxNonce, tx.Nonce()).
		Stringer(logging.FieldContractAddress, address).
		Msg("Deployment transaction sent")

	return &deployedContract{
		name:    f.name,
		address: address,
		tx:      tx,
		backend: f.backend,
		logger:  f.logger,
	}, nil
}
