package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/goodnatureofminers/kingofthehill-client/internal/failure"
	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

type (
	// Backend is the chain capability a Connection provides.
	Backend interface {
		bind.ContractBackend
		bind.DeployBackend
		ChainID(ctx context.Context) (*big.Int, error)
	}

	// ConnectionKind tells whether reads go through the wallet's node or the fallback endpoint.
	ConnectionKind string
)

var (
	ConnectionWallet   ConnectionKind = "wallet"
	ConnectionFallback ConnectionKind = "fallback"
)

var (
	ErrNetworkUnreachable = errors.New("network unreachable")
	ErrChainMismatch      = errors.New("chain id mismatch")
)

// Connection is a read capability for one chain. It is never modified; a network
// change produces a new Connection.
type Connection struct {
	Kind    ConnectionKind
	Backend Backend
	ChainID *big.Int
	close   func()
}

// NewConnection wraps an already dialled backend.
func NewConnection(kind ConnectionKind, backend Backend, chainID *big.Int, closeFn func()) *Connection {
	return &Connection{Kind: kind, Backend: backend, ChainID: chainID, close: closeFn}
}

// Close releases the underlying client.
func (c *Connection) Close() {
	if c != nil && c.close != nil {
		c.close()
	}
}

// Dialer opens a backend for an RPC URL.
type Dialer func(ctx context.Context, rawURL string) (Backend, func(), error)

// DialEthclient is the production Dialer.
func DialEthclient(ctx context.Context, rawURL string) (Backend, func(), error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// DialFallback connects to the configured read-only endpoint and verifies it is
// reachable and serves the configured chain before it is trusted.
func DialFallback(ctx context.Context, network model.Network, dial Dialer) (*Connection, error) {
	if network.RPCURL == "" {
		return nil, fmt.Errorf("dial fallback endpoint: %w", model.ErrMissingRPCURL)
	}
	backend, closeFn, err := dial(ctx, network.RPCURL)
	if err != nil {
		return nil, unreachable(fmt.Errorf("dial %s: %w", network.Name, err))
	}
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		if closeFn != nil {
			closeFn()
		}
		return nil, unreachable(fmt.Errorf("probe %s: %w", network.Name, err))
	}
	conn := NewConnection(ConnectionFallback, backend, chainID, closeFn)
	if network.ChainID != 0 && !conn.Serves(network.ChainID) {
		conn.Close()
		return nil, failure.Wrap(model.CategoryWrongNetwork,
			fmt.Sprintf("Endpoint serves chain %s, expected %d (%s).", chainID, network.ChainID, network.Name),
			ErrChainMismatch)
	}
	return conn, nil
}

// DialWallet connects to the node the wallet signs against. The chain it serves is
// reported as is; the caller decides whether it is the expected one.
func DialWallet(ctx context.Context, rawURL string, dial Dialer) (*Connection, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("dial wallet node: %w", model.ErrMissingRPCURL)
	}
	backend, closeFn, err := dial(ctx, rawURL)
	if err != nil {
		return nil, unreachable(fmt.Errorf("dial wallet node: %w", err))
	}
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		if closeFn != nil {
			closeFn()
		}
		return nil, unreachable(fmt.Errorf("probe wallet node: %w", err))
	}
	return NewConnection(ConnectionWallet, backend, chainID, closeFn), nil
}

// Serves reports whether the connection serves chainID.
func (c *Connection) Serves(chainID uint64) bool {
	return c.ChainID != nil && c.ChainID.IsUint64() && c.ChainID.Uint64() == chainID
}

func unreachable(err error) error {
	return failure.Wrap(model.CategoryUnreachable, "Network is unreachable. Check the RPC endpoint.",
		fmt.Errorf("%w: %w", ErrNetworkUnreachable, err))
}
