package types

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// Gas is a gas amount. Zero means "estimate".
type Gas uint64

var _ pflag.Value = (*Gas)(nil)

func (g Gas) Uint64() uint64 {
	return uint64(g)
}

func (g Gas) IsZero() bool {
	return g == 0
}

func (g Gas) String() string {
	return strconv.FormatUint(g.Uint64(), 10)
}

func (g *Gas) Set(value string) error {
	res, err := strconv.ParseUint(value, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid gas amount %q: %w", value, err)
	}
	*g = Gas(res)
	return nil
}

func (Gas) Type() string {
	return "Gas"
}

func (g Gas) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gas) UnmarshalText(input []byte) error {
	return g.Set(string(input))
}
