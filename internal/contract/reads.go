package contract

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/kingofthehill-client/pkg/safe"
)

// Leader returns the current king.
func (g *Gateway) Leader(ctx context.Context) (common.Address, error) {
	out, err := g.call(ctx, "king", methodKing)
	if err != nil {
		return common.Address{}, err
	}
	addr, ok := out.(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("call %s: unexpected output %T", methodKing, out)
	}
	return addr, nil
}

// CurrentPrize returns the prize in wei.
func (g *Gateway) CurrentPrize(ctx context.Context) (*uint256.Int, error) {
	return g.callUint256(ctx, "current_prize", methodCurrentPrize)
}

// TotalClaims returns the number of successful claims.
func (g *Gateway) TotalClaims(ctx context.Context) (*uint256.Int, error) {
	return g.callUint256(ctx, "total_claims", methodTotalClaims)
}

// FeeRate returns the fee in basis points.
func (g *Gateway) FeeRate(ctx context.Context) (uint64, error) {
	out, err := g.call(ctx, "fee_percentage", methodFeePercentage)
	if err != nil {
		return 0, err
	}
	v, ok := out.(*big.Int)
	if !ok {
		return 0, fmt.Errorf("call %s: unexpected output %T", methodFeePercentage, out)
	}
	fee, err := safe.BasisPoints(v)
	if err != nil {
		return 0, fmt.Errorf("call %s: %w", methodFeePercentage, err)
	}
	return fee, nil
}

// ClaimCount returns how many times account claimed the throne.
func (g *Gateway) ClaimCount(ctx context.Context, account common.Address) (*uint256.Int, error) {
	return g.callUint256(ctx, "claim_count", methodClaimCount, account)
}

// PendingWithdrawal returns the amount owed to account.
func (g *Gateway) PendingWithdrawal(ctx context.Context, account common.Address) (*uint256.Int, error) {
	return g.callUint256(ctx, "pending_withdrawals", methodPendingWithdrawals, account)
}

func (g *Gateway) callUint256(ctx context.Context, operation, method string, args ...interface{}) (*uint256.Int, error) {
	out, err := g.call(ctx, operation, method, args...)
	if err != nil {
		return nil, err
	}
	v, ok := out.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("call %s: unexpected output %T", method, out)
	}
	u, err := safe.Uint256(v)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	return u, nil
}

func (g *Gateway) call(ctx context.Context, operation, method string, args ...interface{}) (result interface{}, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe(operation, err, started)
	}()

	var out []interface{}
	if err = g.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(out) != 1 {
		err = fmt.Errorf("call %s: expected 1 output, got %d", method, len(out))
		return nil, err
	}
	return out[0], nil
}
