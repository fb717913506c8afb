package cliservice

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chainbattles/deployer/common/logging"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

var ErrDeploymentFailed = errors.New("deployment failed")

// DeployContract deploys the named contract with no constructor arguments and
// waits for the deployment to be confirmed. Nothing is retried.
func (s *Service) DeployContract(ctx context.Context, name string) (ethcommon.Address, error) {
	factory, err := s.runtime.GetContractFactory(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldContractName, name).Msg("Failed to get contract factory")
		return ethcommon.Address{}, fmt.Errorf("%w: %w", ErrDeploymentFailed, err)
	}

	contract, err := factory.Deploy(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldContractName, name).Msg("Failed to send deployment transaction")
		return ethcommon.Address{}, fmt.Errorf("%w: %w", ErrDeploymentFailed, err)
	}

	if err := contract.Deployed(ctx); err != nil {
		s.logger.Error().Err(err).Str(logging.FieldContractName, name).Msg("Deployment was not confirmed")
		return ethcommon.Address{}, fmt.Errorf("%w: %w", ErrDeploymentFailed, err)
	}

	address := contract.Address()
	s.logger.Info().
		Str(logging.FieldContractName, name).
		Stringer(logging.FieldContractAddress, address).
		Msg("Contract deployed")
	return address, nil
}

// Run deploys the named contract and reports the outcome on out.
// It returns the process exit code.
func (s *Service) Run(ctx context.Context, name string, out io.Writer) int {
	address, err := s.DeployContract(ctx, name)
	if err != nil {
		_, _ = fmt.Fprintln(out, err)
		return ExitFailure
	}

	_, _ = fmt.Fprintln(out, "Contract deployed to:", address.Hex())
	return ExitSuccess
}
