// Package wallet tracks the user's wallet: whether it exists, which account is
// authorized, and when it switches networks.
package wallet

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kingofthehill-client/internal/failure"
	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

const (
	msgNotInstalled   = "Wallet not installed. Browsing in read-only mode."
	msgCheckAccounts  = "Error checking connected accounts."
	msgPending        = "Connection request already pending. Check your wallet."
	msgRejected       = "Connection rejected by user."
	msgConnectFailed  = "Failed to connect wallet."
	msgPleaseConnect  = "Please connect your wallet."
	msgDisconnectFail = "Failed to disconnect wallet."
)

// Connector owns the Identity derived from a Provider. Identity changes are
// published on a feed; a network change closes NetworkChanged once.
type Connector struct {
	provider Provider
	logger   *zap.Logger

	connecting atomic.Bool

	mu     sync.RWMutex
	status model.WalletStatus
	feed   event.Feed

	subs           event.SubscriptionScope
	networkChanged chan struct{}
	networkOnce    sync.Once
	quit           chan struct{}
	closeOnce      sync.Once
	wg             sync.WaitGroup
}

// NewConnector builds a Connector. provider may be nil when no wallet is installed.
func NewConnector(provider Provider, logger *zap.Logger) *Connector {
	return &Connector{
		provider:       provider,
		logger:         logger.Named("wallet_connector"),
		networkChanged: make(chan struct{}),
		quit:           make(chan struct{}),
	}
}

// Initialize subscribes to wallet notifications and adopts an already-authorized
// account. A missing wallet is not an error: the client continues read-only.
func (c *Connector) Initialize(ctx context.Context) error {
	if c.provider == nil {
		c.logger.Info("no wallet installed, continuing read-only")
		c.update(func(s *model.WalletStatus) {
			*s = model.WalletStatus{Error: &model.ErrorState{Category: model.CategoryWalletMissing, Message: msgNotInstalled}}
		})
		return nil
	}

	c.mu.Lock()
	c.status.Installed = true
	c.mu.Unlock()

	accountsCh := make(chan AccountsChanged, 4)
	chainCh := make(chan ChainChanged, 1)
	accountsSub := c.subs.Track(c.provider.SubscribeAccountsChanged(accountsCh))
	chainSub := c.subs.Track(c.provider.SubscribeChainChanged(chainCh))

	c.wg.Add(1)
	go c.loop(accountsCh, chainCh, accountsSub, chainSub)

	accounts, err := c.provider.Accounts(ctx)
	if err != nil {
		c.logger.Warn("failed to query authorized accounts", zap.Error(err))
		c.update(func(s *model.WalletStatus) {
			s.Error = &model.ErrorState{Category: model.CategoryGeneric, Message: msgCheckAccounts}
		})
		return nil
	}
	if len(accounts) > 0 {
		c.adopt(ctx, accounts)
	}
	return nil
}

// Connect asks the wallet to authorize the client. A call made while another is
// in flight is ignored.
func (c *Connector) Connect(ctx context.Context) error {
	if c.provider == nil {
		return failure.Wrap(model.CategoryWalletMissing, msgNotInstalled, ErrNotInstalled)
	}
	if !c.connecting.CompareAndSwap(false, true) {
		c.logger.Debug("connect already in flight, ignoring")
		return nil
	}
	defer c.connecting.Store(false)

	c.update(func(s *model.WalletStatus) { s.Connecting = true })

	accounts, err := c.provider.RequestAccounts(ctx)
	if err != nil {
		state := connectFailure(err)
		c.logger.Warn("wallet connection failed", zap.String("category", string(state.Category)), zap.Error(err))
		c.update(func(s *model.WalletStatus) {
			s.Connecting = false
			s.Error = &state
		})
		return failure.Wrap(state.Category, state.Message, err)
	}

	c.update(func(s *model.WalletStatus) { s.Connecting = false })
	c.adopt(ctx, accounts)
	return nil
}

// Disconnect revokes the wallet authorization and clears the Identity.
func (c *Connector) Disconnect(ctx context.Context) error {
	if c.provider == nil {
		return failure.Wrap(model.CategoryWalletMissing, msgNotInstalled, ErrNotInstalled)
	}
	if err := c.provider.Disconnect(ctx); err != nil {
		c.logger.Warn("wallet disconnect failed", zap.Error(err))
		return failure.Wrap(model.CategoryGeneric, msgDisconnectFail, err)
	}
	c.adopt(ctx, nil)
	return nil
}

func connectFailure(err error) model.ErrorState {
	code, _ := codeOf(err)
	switch code {
	case CodeRequestPending:
		return model.ErrorState{Category: model.CategoryConnectPending, Message: msgPending}
	case CodeUserRejected:
		return model.ErrorState{Category: model.CategoryRejected, Message: msgRejected}
	}
	return model.ErrorState{Category: model.CategoryGeneric, Message: msgConnectFailed}
}

// adopt derives the Identity from an account list. The first account wins.
func (c *Connector) adopt(ctx context.Context, accounts []common.Address) {
	if len(accounts) == 0 {
		c.logger.Info("wallet disconnected")
		c.update(func(s *model.WalletStatus) {
			s.Identity = model.Identity{}
			s.Error = &model.ErrorState{Category: model.CategoryPleaseConnect, Message: msgPleaseConnect}
		})
		return
	}

	account := accounts[0]
	identity := model.Identity{Account: account}
	signer, err := c.provider.Signer(ctx, account)
	if err != nil {
		c.logger.Warn("wallet cannot sign for account", zap.Stringer("account", account), zap.Error(err))
	} else {
		identity.Signer = signer
	}

	c.logger.Info("wallet account active", zap.Stringer("account", account))
	c.update(func(s *model.WalletStatus) {
		s.Identity = identity
		s.Error = nil
	})
}

func (c *Connector) loop(
	accountsCh <-chan AccountsChanged,
	chainCh <-chan ChainChanged,
	accountsSub, chainSub event.Subscription,
) {
	defer c.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		select {
		case <-c.quit:
			return
		case ev := <-accountsCh:
			c.adopt(ctx, ev.Accounts)
		case ev := <-chainCh:
			c.logger.Info("wallet network changed", zap.Stringer("chain_id", ev.ChainID))
			c.networkOnce.Do(func() { close(c.networkChanged) })
		case err := <-accountsSub.Err():
			if err != nil {
				c.logger.Warn("accounts subscription failed", zap.Error(err))
			}
			return
		case err := <-chainSub.Err():
			if err != nil {
				c.logger.Warn("chain subscription failed", zap.Error(err))
			}
			return
		}
	}
}

func (c *Connector) update(fn func(s *model.WalletStatus)) {
	c.mu.Lock()
	fn(&c.status)
	status := c.status
	c.mu.Unlock()
	c.feed.Send(status)
}

// Status returns the current wallet status.
func (c *Connector) Status() model.WalletStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Identity returns the active Identity, zero when no account is connected.
func (c *Connector) Identity() model.Identity {
	return c.Status().Identity
}

// SubscribeStatus delivers every status change to ch. Slow receivers block the
// connector, so ch should be drained promptly.
func (c *Connector) SubscribeStatus(ch chan<- model.WalletStatus) event.Subscription {
	return c.feed.Subscribe(ch)
}

// NetworkChanged is closed when the wallet reports a chain switch.
func (c *Connector) NetworkChanged() <-chan struct{} {
	return c.networkChanged
}

// Close unsubscribes from the wallet and stops the notification loop.
func (c *Connector) Close() {
	c.closeOnce.Do(func() {
		close(c.quit)
		c.subs.Close()
		c.wg.Wait()
	})
}
