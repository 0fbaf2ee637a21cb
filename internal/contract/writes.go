package contract

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// SubmitBid sends amount as the value of a claimThrone transaction and returns the
// pending transaction without waiting for it to be mined.
func (g *Gateway) SubmitBid(ctx context.Context, amount *uint256.Int) (*types.Transaction, error) {
	if amount == nil {
		amount = new(uint256.Int)
	}
	return g.transact(ctx, "claim_throne", methodClaimThrone, amount.ToBig())
}

// SubmitWithdraw sends a withdraw transaction and returns it without waiting.
func (g *Gateway) SubmitWithdraw(ctx context.Context) (*types.Transaction, error) {
	return g.transact(ctx, "withdraw", methodWithdraw, nil)
}

// WaitMined blocks until tx is included and fails if it reverted.
func (g *Gateway) WaitMined(ctx context.Context, tx *types.Transaction) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("wait_mined", err, started)
	}()

	receipt, err = bind.WaitMined(ctx, g.conn.Backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		err = fmt.Errorf("%w: %s", ErrReverted, tx.Hash())
		return receipt, err
	}
	return receipt, nil
}

func (g *Gateway) transact(ctx context.Context, operation, method string, value *big.Int) (tx *types.Transaction, err error) {
	signer := g.boundSigner()
	if signer == nil {
		return nil, unsignedError()
	}

	started := time.Now()
	defer func() {
		g.metrics.Observe(operation, err, started)
	}()

	opts := *signer
	opts.Context = ctx
	opts.Value = value
	tx, err = g.contract.Transact(&opts, method)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", method, err)
	}
	g.logger.Info("transaction sent",
		zap.String("method", method),
		zap.Stringer("tx", tx.Hash()),
		zap.Stringer("from", opts.From),
	)
	return tx, nil
}
