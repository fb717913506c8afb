package cliservice

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chainbattles/deployer/internal/hre"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const contractName = "ChainBattles"

var contractAddress = ethcommon.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type mocks struct {
	runtime  *RuntimeMock
	factory  *ContractFactoryMock
	contract *DeployedContractMock
}

func newMocks(factoryErr, deployErr, deployedErr error) *mocks {
	m := &mocks{}
	m.contract = &DeployedContractMock{
		DeployedFunc: func(context.Context) error {
			return deployedErr
		},
		AddressFunc: func() ethcommon.Address {
			return contractAddress
		},
	}
	m.factory = &ContractFactoryMock{
		DeployFunc: func(context.Context, ...any) (hre.DeployedContract, error) {
			if deployErr != nil {
				return nil, deployErr
			}
			return m.contract, nil
		},
	}
	m.runtime = &RuntimeMock{
		GetContractFactoryFunc: func(context.Context, string) (hre.ContractFactory, error) {
			if factoryErr != nil {
				return nil, factoryErr
			}
			return m.factory, nil
		},
	}
	return m
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	m := newMocks(nil, nil, nil)
	var out bytes.Buffer

	code := NewService(m.runtime).Run(context.Background(), contractName, &out)

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Contract deployed to: "+contractAddress.Hex()+"\n", out.String())

	require.Len(t, m.runtime.GetContractFactoryCalls(), 1)
	assert.Equal(t, contractName, m.runtime.GetContractFactoryCalls()[0].Name)
	require.Len(t, m.factory.DeployCalls(), 1)
	assert.Empty(t, m.factory.DeployCalls()[0].Args)
	assert.Len(t, m.contract.DeployedCalls(), 1)
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	errNetwork := errors.New("connection refused")

	tests := []struct {
		name          string
		factoryErr    error
		deployErr     error
		deployedErr   error
		deployCalls   int
		deployedCalls int
	}{
		{
			name:       "factory lookup fails",
			factoryErr: errNetwork,
		},
		{
			name:        "deploy rejects",
			deployErr:   errNetwork,
			deployCalls: 1,
		},
		{
			name:          "confirmation rejects",
			deployedErr:   errNetwork,
			deployCalls:   1,
			deployedCalls: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			m := newMocks(test.factoryErr, test.deployErr, test.deployedErr)
			var out bytes.Buffer

			code := NewService(m.runtime).Run(context.Background(), contractName, &out)

			assert.Equal(t, ExitFailure, code)
			assert.Contains(t, out.String(), errNetwork.Error())
			assert.NotContains(t, out.String(), "Contract deployed to:")
			assert.Equal(t, 1, strings.Count(out.String(), "\n"))

			// Nothing is retried.
			assert.Len(t, m.runtime.GetContractFactoryCalls(), 1)
			assert.Len(t, m.factory.DeployCalls(), test.deployCalls)
			assert.Len(t, m.contract.DeployedCalls(), test.deployedCalls)
			assert.Empty(t, m.contract.AddressCalls())
		})
	}
}

func TestDeployContract_WrapsCause(t *testing.T) {
	t.Parallel()

	m := newMocks(nil, nil, hre.ErrDeployReverted)

	addr, err := NewService(m.runtime).DeployContract(context.Background(), contractName)

	require.ErrorIs(t, err, ErrDeploymentFailed)
	require.ErrorIs(t, err, hre.ErrDeployReverted)
	assert.Equal(t, ethcommon.Address{}, addr)
}

func TestDeployContract_Cancelled(t *testing.T) {
	t.Parallel()

	m := newMocks(nil, nil, nil)
	m.contract.DeployedFunc = func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(m.runtime).DeployContract(ctx, contractName)
	require.ErrorIs(t, err, ErrDeploymentFailed)
	require.ErrorIs(t, err, context.Canceled)
}
