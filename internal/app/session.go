// Package app assembles the wallet, contract gateway and game store for one
// network connection and rebuilds them when the wallet switches networks.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kingofthehill-client/internal/clock"
	"github.com/goodnatureofminers/kingofthehill-client/internal/contract"
	"github.com/goodnatureofminers/kingofthehill-client/internal/failure"
	"github.com/goodnatureofminers/kingofthehill-client/internal/metrics"
	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
	"github.com/goodnatureofminers/kingofthehill-client/internal/service"
	"github.com/goodnatureofminers/kingofthehill-client/internal/wallet"
)

const defaultUnreachableBackoff = 10 * time.Second

var (
	ErrNetworkChanged = errors.New("wallet network changed")
	ErrUnavailable    = errors.New("game unavailable")
)

// WalletOpener opens the user's wallet. chain reports the chain served by the
// wallet's node. wallet.ErrNotInstalled means there is no wallet.
type WalletOpener func(ctx context.Context, chain wallet.ChainIDReader) (wallet.Provider, func(), error)

// SessionConfig holds everything needed to build a Session.
type SessionConfig struct {
	Network model.Network
	// WalletRPCURL is the node the wallet signs against. Empty means the wallet uses
	// the configured RPC URL.
	WalletRPCURL       string
	ReadDelay          time.Duration
	UnreachableBackoff time.Duration
	Store              service.GameStoreConfig
	Rules              []failure.Rule
	Dial               contract.Dialer
	OpenWallet         WalletOpener
}

// Session owns one Connection and everything built on top of it. It is discarded
// as a whole on network change.
type Session struct {
	cfg         SessionConfig
	logger      *zap.Logger
	conn        *contract.Connection
	walletConn  *contract.Connection
	closeWallet func()
	connector   *wallet.Connector
	gateway     *contract.Gateway
	store       *service.GameStore
	unavailable error

	// borrowed counts callers holding the session through Supervisor.Acquire.
	borrowed sync.WaitGroup
}

// NewSession builds a Session. Only configuration errors are returned; a missing
// wallet, an unreachable endpoint or a missing contract are published as the
// session's error state.
func NewSession(ctx context.Context, cfg SessionConfig, logger *zap.Logger) (*Session, error) {
	if err := cfg.Network.Validate(); err != nil {
		return nil, fmt.Errorf("invalid network config: %w", err)
	}
	if cfg.Dial == nil {
		cfg.Dial = contract.DialEthclient
	}
	if cfg.Rules == nil {
		cfg.Rules = failure.DefaultRules()
	}
	if cfg.UnreachableBackoff <= 0 {
		cfg.UnreachableBackoff = defaultUnreachableBackoff
	}

	s := &Session{
		cfg: cfg,
		logger: logger.Named("session").With(
			zap.String("network", cfg.Network.Name),
			zap.Uint64("chain_id", cfg.Network.ChainID),
		),
	}
	classifier := failure.NewClassifier(cfg.Rules, 0)

	walletErr := s.connect(ctx)
	provider := s.openWallet(ctx)

	s.connector = wallet.NewConnector(provider, s.logger)
	if err := s.connector.Initialize(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("initialize wallet connector: %w", err)
	}
	identity := s.connector.Identity()

	if s.conn != nil {
		gateway, err := contract.NewGateway(ctx, cfg.Network.ContractAddress, s.conn, identity.Signer,
			metrics.NewContractClient(cfg.Network.Name), s.logger)
		if err != nil {
			s.logger.Warn("contract unavailable", zap.Error(err))
			s.unavailable = err
		} else {
			s.gateway = gateway
		}
	}

	var gateway service.Gateway
	if s.gateway != nil {
		gateway = s.gateway
	}
	store, err := service.NewGameStore(gateway, classifier, clock.NewPacer(cfg.ReadDelay),
		metrics.NewGameStore(cfg.Network.Name), cfg.Store, s.logger)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("build game store: %w", err)
	}
	s.store = store
	s.store.SetUnavailable(s.unavailable)
	s.store.SetIdentity(identity)
	s.store.SetWalletError(firstError(walletErr, s.connector.Status().Error))
	return s, nil
}

// connect picks the wallet's node when it serves the configured chain, otherwise
// the fallback endpoint. The returned state describes a wallet on the wrong chain.
func (s *Session) connect(ctx context.Context) *model.ErrorState {
	var walletErr *model.ErrorState
	if s.cfg.WalletRPCURL != "" {
		conn, err := contract.DialWallet(ctx, s.cfg.WalletRPCURL, s.cfg.Dial)
		switch {
		case err != nil:
			s.logger.Warn("wallet node unreachable, using fallback endpoint", zap.Error(err))
		case !conn.Serves(s.cfg.Network.ChainID):
			s.logger.Warn("wallet node serves another chain, using fallback endpoint",
				zap.Stringer("wallet_chain_id", conn.ChainID))
			walletErr = &model.ErrorState{
				Category: model.CategoryWrongNetwork,
				Message:  fmt.Sprintf("Switch your wallet to %s.", s.cfg.Network.Name),
			}
			s.walletConn = conn
		default:
			s.walletConn = conn
			s.conn = conn
			s.logger.Info("reading through the wallet node")
			return nil
		}
	}

	conn, err := contract.DialFallback(ctx, s.cfg.Network, s.cfg.Dial)
	if err != nil {
		s.logger.Warn("fallback endpoint unavailable", zap.Error(err))
		s.unavailable = err
		return walletErr
	}
	s.conn = conn
	s.logger.Info("reading through the fallback endpoint")
	return walletErr
}

func (s *Session) openWallet(ctx context.Context) wallet.Provider {
	if s.cfg.OpenWallet == nil {
		return nil
	}
	var chain wallet.ChainIDReader
	switch {
	case s.walletConn != nil:
		chain = s.walletConn.Backend
	case s.conn != nil:
		chain = s.conn.Backend
	}
	provider, closeFn, err := s.cfg.OpenWallet(ctx, chain)
	if errors.Is(err, wallet.ErrNotInstalled) {
		return nil
	}
	if err != nil {
		s.logger.Warn("failed to open wallet, continuing read-only", zap.Error(err))
		return nil
	}
	s.closeWallet = closeFn
	return provider
}

func firstError(states ...*model.ErrorState) *model.ErrorState {
	for _, st := range states {
		if st != nil {
			return st
		}
	}
	return nil
}

// Run drives the store and forwards wallet changes to it. It returns
// ErrNetworkChanged when the wallet switches chains and ErrUnavailable when an
// unreachable endpoint should be retried with a fresh session.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	statuses := make(chan model.WalletStatus, 8)
	sub := s.connector.SubscribeStatus(statuses)
	defer sub.Unsubscribe()

	storeDone := make(chan error, 1)
	go func() { storeDone <- s.store.Run(ctx) }()
	stop := func(err error) error {
		cancel()
		<-storeDone
		return err
	}

	var backoff <-chan time.Time
	if cat, ok := failure.CategoryOf(s.unavailable); ok && cat == model.CategoryUnreachable {
		timer := time.NewTimer(s.cfg.UnreachableBackoff)
		defer timer.Stop()
		backoff = timer.C
	}

	identity := s.connector.Identity()
	for {
		select {
		case <-ctx.Done():
			return stop(ctx.Err())
		case <-s.connector.NetworkChanged():
			s.logger.Info("wallet switched networks, ending session")
			return stop(ErrNetworkChanged)
		case <-backoff:
			return stop(fmt.Errorf("%w: %w", ErrUnavailable, s.unavailable))
		case err := <-storeDone:
			return err
		case status := <-statuses:
			if status.Identity.Account != identity.Account || status.Identity.Signer != identity.Signer {
				identity = status.Identity
				s.store.SetIdentity(identity)
			}
			s.store.SetWalletError(status.Error)
		}
	}
}

// Close releases the wallet and connections.
func (s *Session) Close() {
	if s.connector != nil {
		s.connector.Close()
	}
	if s.closeWallet != nil {
		s.closeWallet()
	}
	if s.walletConn != nil && s.walletConn != s.conn {
		s.walletConn.Close()
	}
	s.conn.Close()
}

// Network returns the configured network.
func (s *Session) Network() model.Network {
	return s.cfg.Network
}

// View returns the store's current state.
func (s *Session) View() model.View {
	return s.store.View()
}

// Subscribe forwards to the store's change notifications.
func (s *Session) Subscribe() (<-chan struct{}, func()) {
	return s.store.Subscribe()
}

// Refresh runs a manual refresh.
func (s *Session) Refresh(ctx context.Context) error {
	return s.store.Refresh(ctx)
}

// Connect asks the wallet to authorize the client.
func (s *Session) Connect(ctx context.Context) error {
	return s.connector.Connect(ctx)
}

// Disconnect revokes the wallet authorization.
func (s *Session) Disconnect(ctx context.Context) error {
	return s.connector.Disconnect(ctx)
}

// SubmitBid submits a bid through the store.
func (s *Session) SubmitBid(ctx context.Context, amount *uint256.Int) (model.OperationResult, error) {
	return s.store.SubmitBid(ctx, amount)
}

// SubmitWithdraw submits a withdrawal through the store.
func (s *Session) SubmitWithdraw(ctx context.Context) (model.OperationResult, error) {
	return s.store.SubmitWithdraw(ctx)
}

// Claims lists throne claims from fromBlock on.
func (s *Session) Claims(ctx context.Context, fromBlock uint64) ([]contract.ThroneClaimed, error) {
	if s.gateway == nil {
		if s.unavailable != nil {
			return nil, s.unavailable
		}
		return nil, ErrUnavailable
	}
	return s.gateway.ThroneClaimedSince(ctx, fromBlock)
}
