// Package units converts between wei and the human denominations used in CLI output and flags.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	WeiDecimals   = 0
	GweiDecimals  = 9
	EtherDecimals = 18
)

var ErrFractionalWei = errors.New("amount is not a whole number of wei")

var denominations = map[string]int32{
	"wei":   WeiDecimals,
	"gwei":  GweiDecimals,
	"ether": EtherDecimals,
	"eth":   EtherDecimals,
}

// Decimals returns the number of decimals of the denomination unit (case-insensitive).
func Decimals(unit string) (int32, bool) {
	d, ok := denominations[strings.ToLower(unit)]
	return d, ok
}

func WeiToEther(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}

func WeiToGwei(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -GweiDecimals)
}

func FormatEther(wei *big.Int) string {
	return WeiToEther(wei).String() + " ETH"
}

func FormatGwei(wei *big.Int) string {
	return WeiToGwei(wei).String() + " gwei"
}

// ParseUnits parses a decimal amount expressed in the given unit into wei.
func ParseUnits(amount string, unit string) (*big.Int, error) {
	decimals, ok := Decimals(unit)
	if !ok {
		return nil, fmt.Errorf("unknown unit %q", unit)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	d = d.Shift(decimals)
	if !d.IsInteger() {
		return nil, fmt.Errorf("%w: %s%s", ErrFractionalWei, amount, unit)
	}
	return d.BigInt(), nil
}
