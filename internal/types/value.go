package types

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/chainbattles/deployer/common/units"
	"github.com/holiman/uint256"
	"github.com/spf13/pflag"
)

var (
	ErrNegativeValue = errors.New("value must not be negative")
	ErrValueOverflow = errors.New("value does not fit into 256 bits")
)

// Value is an amount of wei. On the command line it accepts plain integers
// (decimal or 0x-hex) or a decimal amount followed by a unit: "wei", "gwei", "ether".
type Value struct {
	v uint256.Int
}

var _ pflag.Value = (*Value)(nil)

func NewValueFromUint64(val uint64) Value {
	var res Value
	res.v.SetUint64(val)
	return res
}

func NewValueFromBig(val *big.Int) (Value, error) {
	var res Value
	if val.Sign() < 0 {
		return res, ErrNegativeValue
	}
	if res.v.SetFromBig(val) {
		return res, ErrValueOverflow
	}
	return res, nil
}

func (v Value) IsZero() bool {
	return v.v.IsZero()
}

func (v Value) ToBig() *big.Int {
	return v.v.ToBig()
}

func (v Value) Cmp(other Value) int {
	return v.v.Cmp(&other.v)
}

func (v Value) String() string {
	return v.v.Dec()
}

func (v *Value) Set(s string) error {
	res, err := ParseValue(s)
	if err != nil {
		return err
	}
	*v = res
	return nil
}

func (Value) Type() string {
	return "Value"
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Value) UnmarshalText(input []byte) error {
	return v.Set(string(input))
}

func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	amount, unit := splitUnit(s)

	var (
		b  *big.Int
		ok bool
	)
	if unit == "" {
		b, ok = new(big.Int).SetString(amount, 0)
		if !ok {
			return Value{}, fmt.Errorf("invalid value %q", s)
		}
	} else {
		var err error
		b, err = units.ParseUnits(amount, unit)
		if err != nil {
			return Value{}, err
		}
	}
	return NewValueFromBig(b)
}

// splitUnit splits "1.5gwei" into ("1.5", "gwei"). Hex literals have no unit.
func splitUnit(s string) (string, string) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s, ""
	}
	idx := strings.IndexFunc(s, unicode.IsLetter)
	if idx < 0 {
		return s, ""
	}
	return strings.TrimSpace(s[:idx]), s[idx:]
}
