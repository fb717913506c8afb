package hre

import (
	"errors"
	"fmt"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrMissingPrivateKey = errors.New("private key is not set")
	ErrDeployReverted    = errors.New("deployment transaction reverted")
)

// transactionError wraps err with msg and the tx hash (or a note that the tx was never submitted).
func transactionError(tx *ethtypes.Transaction, err error, msg string, args ...any) error {
	msgSuffix := ": %w"
	if tx != nil {
		msgSuffix += fmt.Sprintf(" (txHash=%s)", tx.Hash().String())
	} else {
		msgSuffix += " (tx failed to be submitted)"
	}
	args = append(args, err)
	return fmt.Errorf(msg+msgSuffix, args...)
}
