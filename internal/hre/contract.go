package hre

import (
	"context"
	"fmt"
	"math/big"

	"github.com/chainbattles/deployer/common/logging"
	"github.com/chainbattles/deployer/common/units"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

type deployedContract struct {
	name    string
	address ethcommon.Address
	tx      *ethtypes.Transaction
	backend Backend
	logger  zerolog.Logger

	receipt *ethtypes.Receipt
}

func (c *deployedContract) Address() ethcommon.Address {
	return c.address
}

func (c *deployedContract) DeployTransaction() *ethtypes.Transaction {
	return c.tx
}

func (c *deployedContract) Deployed(ctx context.Context) error {
	if c.receipt != nil {
		return nil
	}

	receipt, err := bind.WaitMined(ctx, c.backend, c.tx)
	if err != nil {
		return transactionError(c.tx, err, "failed to wait for deployment of %s", c.name)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return transactionError(c.tx, ErrDeployReverted, "deployment of %s failed", c.name)
	}
	if receipt.ContractAddress != c.address {
		return transactionError(c.tx, fmt.Errorf("receipt reports contract at %s, expected %s",
			receipt.ContractAddress.Hex(), c.address.Hex()), "deployment of %s failed", c.name)
	}

	code, err := c.backend.CodeAt(ctx, c.address, nil)
	if err != nil {
		return fmt.Errorf("failed to get code of %s: %w", c.address.Hex(), err)
	}
	if len(code) == 0 {
		return transactionError(c.tx, bind.ErrNoCodeAfterDeploy, "deployment of %s failed", c.name)
	}

	c.receipt = receipt
	c.logReceipt(receipt)
	return nil
}

func (c *deployedContract) logReceipt(receipt *ethtypes.Receipt) {
	event := c.logger.Info().
		Str(logging.FieldContractName, c.name).
		Stringer(logging.FieldContractAddress, c.address).
		Stringer(logging.FieldTxHash, receipt.TxHash).
		Stringer(logging.FieldBlockHash, receipt.BlockHash).
		Uint64(logging.FieldGasUsed, receipt.GasUsed)
	if receipt.BlockNumber != nil {
		event = event.Stringer(logging.FieldBlockNumber, receipt.BlockNumber)
	}
	if receipt.EffectiveGasPrice != nil {
		cost := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), receipt.EffectiveGasPrice)
		event = event.
			Str(logging.FieldGasPrice, units.FormatGwei(receipt.EffectiveGasPrice)).
			Str(logging.FieldCost, units.FormatEther(cost))
	}
	event.Msg("Contract deployed")
}
