package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

// KeystoreConfig configures a KeystoreWallet.
type KeystoreConfig struct {
	Dir     string
	ChainID *big.Int
	// PreAuthorized unlocks the first account at open time with Passphrase, as if the
	// user had connected in an earlier session.
	PreAuthorized bool
	Passphrase    string
	// ChainPollInterval is how often the wallet's node is asked for its chain id.
	ChainPollInterval time.Duration
	// LightScrypt uses cheap key derivation parameters. Only for tests.
	LightScrypt bool
}

// KeystoreWallet is a Provider backed by a go-ethereum keystore directory. The
// first account in the directory is the only one it ever exposes.
type KeystoreWallet struct {
	ks         *keystore.KeyStore
	chainID    *big.Int
	passphrase PassphrasePrompt
	confirm    ConfirmPrompt
	chain      ChainIDReader
	poll       time.Duration
	logger     *zap.Logger

	requestMu sync.Mutex

	mu         sync.Mutex
	authorized bool
	account    accounts.Account

	accountsFeed event.Feed
	chainFeed    event.Feed
	ksSub        event.Subscription

	quit      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// OpenKeystore opens the keystore at cfg.Dir. A missing or empty directory yields
// ErrNotInstalled. chain may be nil, which disables network change detection;
// otherwise the chain it serves at open time is the baseline for later changes.
func OpenKeystore(
	ctx context.Context,
	cfg KeystoreConfig,
	passphrase PassphrasePrompt,
	confirm ConfirmPrompt,
	chain ChainIDReader,
	logger *zap.Logger,
) (*KeystoreWallet, error) {
	if cfg.Dir == "" {
		return nil, ErrNotInstalled
	}
	info, err := os.Stat(cfg.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotInstalled
	}
	if err != nil {
		return nil, fmt.Errorf("stat keystore %s: %w", cfg.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("keystore %s is not a directory", cfg.Dir)
	}
	if cfg.ChainID == nil {
		return nil, errors.New("keystore wallet requires a chain id")
	}
	if passphrase == nil {
		return nil, errors.New("keystore wallet requires a passphrase prompt")
	}

	scryptN, scryptP := keystore.StandardScryptN, keystore.StandardScryptP
	if cfg.LightScrypt {
		scryptN, scryptP = keystore.LightScryptN, keystore.LightScryptP
	}
	ks := keystore.NewKeyStore(cfg.Dir, scryptN, scryptP)
	if len(ks.Accounts()) == 0 {
		return nil, ErrNotInstalled
	}

	w := &KeystoreWallet{
		ks:         ks,
		chainID:    new(big.Int).Set(cfg.ChainID),
		passphrase: passphrase,
		confirm:    confirm,
		chain:      chain,
		poll:       cfg.ChainPollInterval,
		logger:     logger.Named("keystore_wallet").With(zap.String("dir", cfg.Dir)),
		account:    ks.Accounts()[0],
		quit:       make(chan struct{}),
	}

	if cfg.PreAuthorized {
		if err := ks.Unlock(w.account, cfg.Passphrase); err != nil {
			w.logger.Warn("pre-authorization failed, wallet stays disconnected",
				zap.Stringer("account", w.account.Address), zap.Error(err))
		} else {
			w.authorized = true
		}
	}

	events := make(chan accounts.WalletEvent, 8)
	w.ksSub = ks.Subscribe(events)
	w.wg.Add(1)
	go w.forwardWalletEvents(events)

	if chain != nil && w.poll > 0 {
		baseline := new(big.Int).Set(w.chainID)
		if id, err := chain.ChainID(ctx); err == nil {
			baseline = id
		} else {
			w.logger.Warn("initial chain id lookup failed", zap.Error(err))
		}
		w.wg.Add(1)
		go w.watchChain(baseline)
	}
	return w, nil
}

func (w *KeystoreWallet) Accounts(context.Context) ([]common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.authorized {
		return nil, nil
	}
	return []common.Address{w.account.Address}, nil
}

func (w *KeystoreWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if !w.requestMu.TryLock() {
		return nil, &RPCError{Code: CodeRequestPending, Message: "Request of type 'wallet_requestPermissions' already pending."}
	}
	defer w.requestMu.Unlock()

	w.mu.Lock()
	account, authorized := w.account, w.authorized
	w.mu.Unlock()
	if authorized {
		return []common.Address{account.Address}, nil
	}

	pass, err := w.passphrase.Passphrase(ctx, account.Address)
	if errors.Is(err, ErrPromptDeclined) {
		return nil, &RPCError{Code: CodeUserRejected, Message: "User rejected the request."}
	}
	if err != nil {
		return nil, fmt.Errorf("prompt passphrase: %w", err)
	}
	if err := w.ks.Unlock(account, pass); err != nil {
		return nil, fmt.Errorf("unlock %s: %w", account.Address, err)
	}

	w.mu.Lock()
	w.authorized = true
	w.mu.Unlock()

	w.logger.Info("account authorized", zap.Stringer("account", account.Address))
	accs := []common.Address{account.Address}
	w.accountsFeed.Send(AccountsChanged{Accounts: accs})
	return accs, nil
}

func (w *KeystoreWallet) Disconnect(context.Context) error {
	w.mu.Lock()
	if !w.authorized {
		w.mu.Unlock()
		return nil
	}
	w.authorized = false
	account := w.account
	w.mu.Unlock()

	if err := w.ks.Lock(account.Address); err != nil {
		return fmt.Errorf("lock %s: %w", account.Address, err)
	}
	w.logger.Info("account authorization revoked", zap.Stringer("account", account.Address))
	w.accountsFeed.Send(AccountsChanged{})
	return nil
}

func (w *KeystoreWallet) Signer(_ context.Context, account common.Address) (*bind.TransactOpts, error) {
	w.mu.Lock()
	authorized := w.authorized && w.account.Address == account
	acc := w.account
	w.mu.Unlock()
	if !authorized {
		return nil, &RPCError{Code: CodeUnauthorized, Message: "The requested account has not been authorized."}
	}

	opts, err := bind.NewKeyStoreTransactorWithChainID(w.ks, acc, w.chainID)
	if err != nil {
		return nil, fmt.Errorf("keystore transactor: %w", err)
	}
	if w.confirm == nil {
		return opts, nil
	}

	sign := opts.Signer
	opts.Signer = func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
		ok, err := w.confirm.Confirm(from, tx)
		if err != nil {
			return nil, fmt.Errorf("confirm transaction: %w", err)
		}
		if !ok {
			return nil, &RPCError{Code: CodeUserRejected, Message: "User denied transaction signature."}
		}
		return sign(from, tx)
	}
	return opts, nil
}

func (w *KeystoreWallet) SubscribeAccountsChanged(ch chan<- AccountsChanged) event.Subscription {
	return w.accountsFeed.Subscribe(ch)
}

func (w *KeystoreWallet) SubscribeChainChanged(ch chan<- ChainChanged) event.Subscription {
	return w.chainFeed.Subscribe(ch)
}

// Close stops the background watchers.
func (w *KeystoreWallet) Close() {
	w.closeOnce.Do(func() {
		close(w.quit)
		w.ksSub.Unsubscribe()
		w.wg.Wait()
	})
}

func (w *KeystoreWallet) forwardWalletEvents(events <-chan accounts.WalletEvent) {
	defer w.wg.Done()
	for {
		select {
		case <-w.quit:
			return
		case ev := <-events:
			if ev.Kind != accounts.WalletDropped && ev.Kind != accounts.WalletArrived {
				continue
			}
			w.logger.Debug("keystore changed", zap.String("url", ev.Wallet.URL().String()))
			w.rescan()
		}
	}
}

// rescan drops the authorization when the authorized key file disappears.
func (w *KeystoreWallet) rescan() {
	w.mu.Lock()
	if !w.authorized || w.ks.HasAddress(w.account.Address) {
		w.mu.Unlock()
		return
	}
	w.authorized = false
	w.mu.Unlock()
	w.accountsFeed.Send(AccountsChanged{})
}

func (w *KeystoreWallet) watchChain(current *big.Int) {
	defer w.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-w.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		select {
		case <-w.quit:
			return
		case <-ticker.C:
			id, err := w.chain.ChainID(ctx)
			if err != nil {
				w.logger.Debug("chain id poll failed", zap.Error(err))
				continue
			}
			if id.Cmp(current) == 0 {
				continue
			}
			w.logger.Info("wallet chain changed", zap.Stringer("from", current), zap.Stringer("to", id))
			current = id
			w.chainFeed.Send(ChainChanged{ChainID: new(big.Int).Set(id)})
		}
	}
}
