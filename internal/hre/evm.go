package hre

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/chainbattles/deployer/common/logging"
	"github.com/chainbattles/deployer/internal/artifacts"
	"github.com/chainbattles/deployer/internal/types"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Backend is what the runtime needs from a node: ethclient.Client and the
// simulated backend client both satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

type Config struct {
	PrivateKey *ecdsa.PrivateKey
	// GasLimit and GasPrice override estimation when non-zero.
	GasLimit types.Gas
	GasPrice types.Value
}

type EVMRuntime struct {
	backend  Backend
	store    *artifacts.Store
	key      *ecdsa.PrivateKey
	deployer ethcommon.Address
	gasLimit types.Gas
	gasPrice types.Value
	logger   zerolog.Logger
}

var _ Runtime = (*EVMRuntime)(nil)

// Dial connects to the JSON-RPC endpoint of a node.
func Dial(ctx context.Context, endpoint string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}
	logger := logging.NewLogger("hre")
	logger.Debug().Str(logging.FieldUrl, endpoint).Msg("Connected to node")
	return client, nil
}

func NewEVMRuntime(backend Backend, store *artifacts.Store, cfg Config) (*EVMRuntime, error) {
	if cfg.PrivateKey == nil {
		return nil, ErrMissingPrivateKey
	}
	return &EVMRuntime{
		backend:  backend,
		store:    store,
		key:      cfg.PrivateKey,
		deployer: crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey),
		gasLimit: cfg.GasLimit,
		gasPrice: cfg.GasPrice,
		logger:   logging.NewLogger("hre"),
	}, nil
}

// Deployer is the account that signs and pays for deployments.
func (r *EVMRuntime) Deployer() ethcommon.Address {
	return r.deployer
}

// NextAddress predicts the address of the next contract created by the deployer.
func (r *EVMRuntime) NextAddress(ctx context.Context) (ethcommon.Address, error) {
	nonce, err := r.backend.PendingNonceAt(ctx, r.deployer)
	if err != nil {
		return ethcommon.Address{}, fmt.Errorf("failed to get nonce of %s: %w", r.deployer.Hex(), err)
	}
	return crypto.CreateAddress(r.deployer, nonce), nil
}

func (r *EVMRuntime) GetContractFactory(ctx context.Context, name string) (ContractFactory, error) {
	artifact, err := r.store.Lookup(name)
	if err != nil {
		return nil, err
	}
	bytecode, err := artifact.CreationCode()
	if err != nil {
		return nil, err
	}
	contractAbi, err := artifact.ABI()
	if err != nil {
		return nil, err
	}

	chainID, err := r.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chain ID: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(r.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	if !r.gasLimit.IsZero() {
		opts.GasLimit = r.gasLimit.Uint64()
	}
	if !r.gasPrice.IsZero() {
		opts.GasPrice = r.gasPrice.ToBig()
	}

	r.logger.Debug().
		Str(logging.FieldContractName, artifact.FullyQualifiedName()).
		Stringer(logging.FieldChainId, chainID).
		Stringer(logging.FieldDeployer, r.deployer).
		Msg("Contract factory created")

	return &contractFactory{
		name:     artifact.FullyQualifiedName(),
		abi:      contractAbi,
		bytecode: bytecode,
		opts:     opts,
		backend:  r.backend,
		logger:   r.logger,
	}, nil
}
