// Package safe provides checked conversions for integers decoded from contract calls.
package safe

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// MaxBasisPoints is the upper bound of a fee rate expressed in basis points.
const MaxBasisPoints = 10_000

// Uint256 converts a decoded uint256 value, rejecting nil, negative and oversized values.
func Uint256(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return nil, fmt.Errorf("nil value")
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("value %s out of uint256 range", v)
	}
	out, overflow := uint256.FromBig(v)
	if overflow {
		return nil, fmt.Errorf("value %s out of uint256 range", v)
	}
	return out, nil
}

// BasisPoints converts a decoded fee rate and checks it lies within 0..10000.
func BasisPoints(v *big.Int) (uint64, error) {
	u, err := Uint256(v)
	if err != nil {
		return 0, err
	}
	if !u.IsUint64() || u.Uint64() > MaxBasisPoints {
		return 0, fmt.Errorf("fee rate %s out of basis point range", v)
	}
	return u.Uint64(), nil
}

// ChainID converts a configured chain id to the big.Int form used by signers.
func ChainID(id uint64) *big.Int {
	return new(big.Int).SetUint64(id)
}
