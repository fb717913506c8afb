// Package hre is the host runtime the deployment driver talks to: it turns a
// contract name into a factory, submits creation transactions and waits for
// them to be mined.
package hre

import (
	"context"

	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type Runtime interface {
	// GetContractFactory resolves a contract by its bare or fully qualified name.
	GetContractFactory(ctx context.Context, name string) (ContractFactory, error)
}

type ContractFactory interface {
	// Deploy submits the creation transaction. It does not wait for it to be mined.
	Deploy(ctx context.Context, args ...any) (DeployedContract, error)
}

type DeployedContract interface {
	// Deployed blocks until the creation transaction is mined and the code is in place.
	Deployed(ctx context.Context) error
	Address() ethcommon.Address
	DeployTransaction() *ethtypes.Transaction
}
