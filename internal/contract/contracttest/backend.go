// Package contracttest provides an in-memory chain backend serving the King of the
// Hill contract for tests.
package contracttest

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/goodnatureofminers/kingofthehill-client/internal/contract"
)

// Operation names accepted by SetError and Calls in addition to contract method names.
const (
	OpChainID = "chainId"
	OpCode    = "code"
	OpSend    = "send"
	OpReceipt = "receipt"
	OpFilter  = "filter"
	OpNonce   = "nonce"
	OpHeader  = "header"
)

var (
	gwei       = big.NewInt(1_000_000_000)
	deployCode = []byte{0x60, 0x80, 0x60, 0x40, 0x52}
)

// Backend is a contract.Backend that keeps game state in memory. claimThrone and
// withdraw transactions mutate the state and are mined immediately.
type Backend struct {
	mu sync.Mutex

	abi     abi.ABI
	chainID *big.Int
	code    []byte
	block   uint64

	king        common.Address
	prize       *big.Int
	totalClaims *big.Int
	feeBps      *big.Int
	claimCount  map[common.Address]*big.Int
	pending     map[common.Address]*big.Int

	logs     []types.Log
	receipts map[common.Hash]*types.Receipt
	nonces   map[common.Address]uint64
	sent     []*types.Transaction
	revert   bool

	errs  map[string]error
	calls map[string]int
}

var _ contract.Backend = (*Backend)(nil)

// New returns a backend serving chainID with the contract deployed.
func New(chainID uint64) *Backend {
	return &Backend{
		abi:         contract.ABI(),
		chainID:     new(big.Int).SetUint64(chainID),
		code:        deployCode,
		block:       1,
		prize:       new(big.Int),
		totalClaims: new(big.Int),
		feeBps:      new(big.Int),
		claimCount:  make(map[common.Address]*big.Int),
		pending:     make(map[common.Address]*big.Int),
		receipts:    make(map[common.Hash]*types.Receipt),
		nonces:      make(map[common.Address]uint64),
		errs:        make(map[string]error),
		calls:       make(map[string]int),
	}
}

// SetGame sets the public game fields.
func (b *Backend) SetGame(king common.Address, prize *big.Int, feeBps int64, totalClaims int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.king = king
	b.prize = new(big.Int).Set(prize)
	b.feeBps = big.NewInt(feeBps)
	b.totalClaims = big.NewInt(totalClaims)
}

// SetAccount sets the per-account fields.
func (b *Backend) SetAccount(account common.Address, claims int64, pending *big.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.claimCount[account] = big.NewInt(claims)
	b.pending[account] = new(big.Int).Set(pending)
}

// SetChainID switches the chain the backend reports.
func (b *Backend) SetChainID(chainID uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chainID = new(big.Int).SetUint64(chainID)
}

// Undeploy removes the contract code.
func (b *Backend) Undeploy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.code = nil
}

// RevertTransactions makes later transactions mine with a failed status.
func (b *Backend) RevertTransactions(revert bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revert = revert
}

// SetError makes op fail with err until cleared with a nil err. op is one of the
// Op constants or a contract method name.
func (b *Backend) SetError(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.errs, op)
		return
	}
	b.errs[op] = err
}

// Calls returns how many times op was invoked.
func (b *Backend) Calls(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

// Sent returns the transactions accepted so far.
func (b *Backend) Sent() []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*types.Transaction(nil), b.sent...)
}

// Dialer returns a contract.Dialer that always yields b.
func (b *Backend) Dialer() contract.Dialer {
	return func(context.Context, string) (contract.Backend, func(), error) {
		return b, func() {}, nil
	}
}

func (b *Backend) enter(op string) error {
	b.calls[op]++
	return b.errs[op]
}

func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(OpChainID); err != nil {
		return nil, err
	}
	return new(big.Int).Set(b.chainID), nil
}

func (b *Backend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(OpCode); err != nil {
		return nil, err
	}
	return append([]byte(nil), b.code...), nil
}

func (b *Backend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return b.CodeAt(ctx, account, nil)
}

func (b *Backend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(call.Data) < 4 {
		return nil, errors.New("call data too short")
	}
	method, err := b.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}
	if err := b.enter(method.Name); err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}

	var out interface{}
	switch method.Name {
	case "king":
		out = b.king
	case "currentPrize":
		out = b.prize
	case "totalClaims":
		out = b.totalClaims
	case "feePercentage":
		out = b.feeBps
	case "claimCount":
		out = valueOr(b.claimCount[args[0].(common.Address)])
	case "pendingWithdrawals":
		out = valueOr(b.pending[args[0].(common.Address)])
	default:
		return nil, fmt.Errorf("method %s is not callable", method.Name)
	}
	return method.Outputs.Pack(out)
}

func (b *Backend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(OpHeader); err != nil {
		return nil, err
	}
	return &types.Header{
		Number:  new(big.Int).SetUint64(b.block),
		BaseFee: new(big.Int).Set(gwei),
	}, nil
}

func (b *Backend) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(OpNonce); err != nil {
		return 0, err
	}
	return b.nonces[account], nil
}

func (b *Backend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return new(big.Int).Set(gwei), nil
}

func (b *Backend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return new(big.Int).Set(gwei), nil
}

func (b *Backend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 100_000, nil
}

func (b *Backend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(OpSend); err != nil {
		return err
	}
	from, err := types.Sender(types.LatestSignerForChainID(b.chainID), tx)
	if err != nil {
		return fmt.Errorf("recover sender: %w", err)
	}
	if len(tx.Data()) < 4 {
		return errors.New("transaction data too short")
	}
	method, err := b.abi.MethodById(tx.Data()[:4])
	if err != nil {
		return err
	}

	b.block++
	b.nonces[from]++
	b.sent = append(b.sent, tx)
	receipt := &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		BlockNumber: new(big.Int).SetUint64(b.block),
	}
	b.receipts[tx.Hash()] = receipt
	if b.revert {
		receipt.Status = types.ReceiptStatusFailed
		return nil
	}

	switch method.Name {
	case "claimThrone":
		previous := b.king
		if previous != (common.Address{}) {
			b.pending[previous] = new(big.Int).Add(valueOr(b.pending[previous]), b.prize)
		}
		b.king = from
		b.prize = new(big.Int).Set(tx.Value())
		b.totalClaims = new(big.Int).Add(b.totalClaims, big.NewInt(1))
		b.claimCount[from] = new(big.Int).Add(valueOr(b.claimCount[from]), big.NewInt(1))
		if err := b.logThroneClaimed(previous, from, tx); err != nil {
			return err
		}
	case "withdraw":
		b.pending[from] = new(big.Int)
	}
	return nil
}

func (b *Backend) logThroneClaimed(previous, next common.Address, tx *types.Transaction) error {
	ev := b.abi.Events["ThroneClaimed"]
	data, err := ev.Inputs.NonIndexed().Pack(tx.Value())
	if err != nil {
		return err
	}
	b.logs = append(b.logs, types.Log{
		Address: *tx.To(),
		Topics: []common.Hash{
			ev.ID,
			common.BytesToHash(previous.Bytes()),
			common.BytesToHash(next.Bytes()),
		},
		Data:        data,
		BlockNumber: b.block,
		TxHash:      tx.Hash(),
	})
	return nil
}

func (b *Backend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(OpReceipt); err != nil {
		return nil, err
	}
	receipt, ok := b.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (b *Backend) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.enter(OpFilter); err != nil {
		return nil, err
	}
	var out []types.Log
	for _, l := range b.logs {
		if q.FromBlock != nil && l.BlockNumber < q.FromBlock.Uint64() {
			continue
		}
		if len(q.Topics) > 0 && len(q.Topics[0]) > 0 && l.Topics[0] != q.Topics[0][0] {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (b *Backend) SubscribeFilterLogs(ctx context.Context, _ ethereum.FilterQuery, _ chan<- types.Log) (ethereum.Subscription, error) {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		select {
		case <-quit:
		case <-ctx.Done():
		}
		return nil
	}), nil
}

func valueOr(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
