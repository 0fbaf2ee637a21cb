// Package contract binds the King of the Hill contract to a chain connection.
package contract

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kingofthehill-client/internal/failure"
	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

type (
	// Metrics records the outcome of each contract call.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

var (
	ErrNotDeployed = errors.New("no contract deployed at address")
	ErrUnsigned    = errors.New("no signer bound")
	ErrReverted    = errors.New("transaction reverted")
)

// Gateway exposes the fixed read/write operations of the contract for the lifetime
// of one Connection. It never retries and never caches.
type Gateway struct {
	address  common.Address
	conn     *Connection
	contract *bind.BoundContract
	metrics  Metrics
	logger   *zap.Logger

	mu     sync.RWMutex
	signer *bind.TransactOpts
}

// NewGateway verifies the connection is reachable and that code is deployed at
// address before binding. signer may be nil for a read-only gateway.
func NewGateway(
	ctx context.Context,
	address common.Address,
	conn *Connection,
	signer *bind.TransactOpts,
	metrics Metrics,
	logger *zap.Logger,
) (*Gateway, error) {
	if conn == nil || conn.Backend == nil {
		return nil, errors.New("contract gateway requires a connection")
	}
	if metrics == nil {
		return nil, errors.New("contract gateway metrics is required")
	}

	g := &Gateway{
		address:  address,
		conn:     conn,
		contract: bind.NewBoundContract(address, parsedABI, conn.Backend, conn.Backend, conn.Backend),
		metrics:  metrics,
		logger: logger.Named("gateway").With(
			zap.Stringer("contract", address),
			zap.String("connection", string(conn.Kind)),
		),
		signer: signer,
	}
	if err := g.probe(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Gateway) probe(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("probe", err, started)
	}()

	if _, err = g.conn.Backend.ChainID(ctx); err != nil {
		return unreachable(err)
	}
	code, err := g.conn.Backend.CodeAt(ctx, g.address, nil)
	if err != nil {
		return unreachable(fmt.Errorf("get code at %s: %w", g.address, err))
	}
	if len(code) == 0 {
		return failure.Wrap(model.CategoryNotDeployed, "No contract is deployed at the configured address.",
			fmt.Errorf("%w %s", ErrNotDeployed, g.address))
	}
	return nil
}

// Address returns the bound contract address.
func (g *Gateway) Address() common.Address {
	return g.address
}

// Rebind swaps the signer used for writes. Reads are unaffected.
func (g *Gateway) Rebind(signer *bind.TransactOpts) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.signer = signer
	if signer != nil {
		g.logger.Debug("signer bound", zap.Stringer("account", signer.From))
	} else {
		g.logger.Debug("signer detached")
	}
}

// Signed reports whether a signer is bound.
func (g *Gateway) Signed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.signer != nil
}

func (g *Gateway) boundSigner() *bind.TransactOpts {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.signer
}

func unsignedError() error {
	return failure.Wrap(model.CategoryUnsigned, "Connect your wallet to send transactions.", ErrUnsigned)
}
