// Package service holds the game state store: the single writer of the state the
// presentation layer reads.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/kingofthehill-client/internal/clock"
	"github.com/goodnatureofminers/kingofthehill-client/internal/failure"
	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

const (
	defaultRefreshInterval = 15 * time.Second
	defaultRetryDelay      = 3 * time.Second
	defaultMaxRetries      = 3
)

const (
	msgUnsigned        = "Connect your wallet to send transactions."
	msgInFlight        = "Another transaction is already in progress."
	msgNotLoaded       = "Game state has not been loaded yet."
	msgAccountLoading  = "Account data is still loading."
	msgNothingToClaim  = "Nothing to withdraw."
	msgMinBidOverflow  = "Minimum bid cannot be computed."
	msgBidRequired     = "Enter a bid amount."
	msgUnavailableGame = "Game is unavailable."
)

var ErrStoreUnavailable = errors.New("contract gateway unavailable")

// GameStoreConfig holds the store's timing knobs.
type GameStoreConfig struct {
	RefreshInterval time.Duration
	RetryDelay      time.Duration
	MaxRetries      int
}

// DefaultGameStoreConfig returns the refresh and retry defaults.
func DefaultGameStoreConfig() GameStoreConfig {
	return GameStoreConfig{
		RefreshInterval: defaultRefreshInterval,
		RetryDelay:      defaultRetryDelay,
		MaxRetries:      defaultMaxRetries,
	}
}

// GameStore fetches the contract state, schedules refreshes and retries, and runs
// bid and withdraw submissions. Readers get immutable View values.
type GameStore struct {
	gateway     Gateway
	unavailable error
	classifier  Classifier
	pacer       Pacer
	metrics     GameStoreMetrics
	cfg         GameStoreConfig
	logger      *zap.Logger
	now         func() time.Time
	after       func(time.Duration) <-chan time.Time

	refreshMu sync.Mutex
	submitMu  sync.Mutex

	writeMu sync.Mutex
	view    atomic.Pointer[model.View]

	subsMu sync.Mutex
	subs   map[chan struct{}]struct{}

	kick chan struct{}
	busy chan struct{}
}

// NewGameStore builds a store over gateway. A nil gateway yields a store that only
// reports unavailable, which SetUnavailable can describe.
func NewGameStore(
	gateway Gateway,
	classifier Classifier,
	pacer Pacer,
	metrics GameStoreMetrics,
	cfg GameStoreConfig,
	logger *zap.Logger,
) (*GameStore, error) {
	if metrics == nil {
		return nil, errors.New("game store metrics is required")
	}
	if classifier == nil {
		classifier = failure.NewDefaultClassifier()
	}
	if pacer == nil {
		pacer = clock.NewPacer(0)
	}
	defaults := DefaultGameStoreConfig()
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaults.RefreshInterval
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaults.RetryDelay
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	s := &GameStore{
		gateway:     gateway,
		unavailable: failure.Wrap(model.CategoryGeneric, msgUnavailableGame, ErrStoreUnavailable),
		classifier:  classifier,
		pacer:       pacer,
		metrics:     metrics,
		cfg:         cfg,
		logger:      logger.Named("game_store"),
		now:         time.Now,
		after:       time.After,
		subs:        make(map[chan struct{}]struct{}),
		kick:        make(chan struct{}, 1),
		busy:        make(chan struct{}, 1),
	}
	s.view.Store(&model.View{MaxRetries: cfg.MaxRetries})
	return s, nil
}

// SetUnavailable records why the store has no gateway and publishes it.
func (s *GameStore) SetUnavailable(err error) {
	if err == nil {
		return
	}
	s.unavailable = err
	state := s.classifier.Classify(err)
	s.mutate(func(v *model.View) { v.Error = &state })
}

// View returns the current published state.
func (s *GameStore) View() model.View {
	return *s.view.Load()
}

// Subscribe returns a channel that receives a signal after every publish and a
// func that closes it. Signals coalesce, so a slow reader sees the latest View on
// its next read.
func (s *GameStore) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	s.subsMu.Unlock()
	return ch, func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
}

func (s *GameStore) mutate(fn func(v *model.View)) model.View {
	s.writeMu.Lock()
	next := *s.view.Load()
	fn(&next)
	s.view.Store(&next)
	s.writeMu.Unlock()

	s.subsMu.Lock()
	for ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	s.subsMu.Unlock()
	return next
}

// SetIdentity binds the wallet identity. The gateway signer is swapped and user
// fields are re-read, or zeroed at once when the identity is cleared.
func (s *GameStore) SetIdentity(identity model.Identity) {
	if s.gateway != nil {
		s.gateway.Rebind(identity.Signer)
	}
	s.mutate(func(v *model.View) {
		v.Identity = identity
		if !identity.Connected() && v.Snapshot != nil {
			v.Snapshot = v.Snapshot.WithoutAccount()
		}
	})
	s.Kick()
}

// SetWalletError publishes the wallet connector's latest error.
func (s *GameStore) SetWalletError(state *model.ErrorState) {
	s.mutate(func(v *model.View) { v.WalletError = state })
}

// Kick asks the Run loop for an extra refresh.
func (s *GameStore) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Refresh runs a manual refresh cycle and resets the retry counter. It is a no-op
// when a cycle is already in flight.
func (s *GameStore) Refresh(ctx context.Context) error {
	s.mutate(func(v *model.View) { v.RetryAttempt = 0 })
	err := s.tryRefresh(ctx)
	if s.isBusy(err) {
		select {
		case s.busy <- struct{}{}:
		default:
		}
	}
	return err
}

// Run refreshes immediately and then on every interval until ctx is done, retrying
// network-busy failures up to MaxRetries times.
func (s *GameStore) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()

	var retry <-chan time.Time
	cycle := func() {
		err := s.tryRefresh(ctx)
		switch {
		case err == nil:
			retry = nil
		case retry == nil && s.isBusy(err):
			retry = s.scheduleRetry()
		}
	}

	cycle()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			cycle()
		case <-s.kick:
			cycle()
		case <-s.busy:
			if retry == nil {
				retry = s.scheduleRetry()
			}
		case <-retry:
			retry = nil
			cycle()
		}
	}
}

func (s *GameStore) isBusy(err error) bool {
	if err == nil {
		return false
	}
	cat, ok := failure.CategoryOf(err)
	return ok && cat.Retryable()
}

func (s *GameStore) scheduleRetry() <-chan time.Time {
	attempt := s.View().RetryAttempt
	if attempt >= s.cfg.MaxRetries {
		s.logger.Warn("network busy, retries exhausted", zap.Int("attempts", attempt))
		return nil
	}
	attempt++
	s.mutate(func(v *model.View) { v.RetryAttempt = attempt })
	s.metrics.ObserveRetry(attempt)
	s.logger.Info("network busy, retrying",
		zap.Int("attempt", attempt),
		zap.Int("max_retries", s.cfg.MaxRetries),
		zap.Duration("delay", s.cfg.RetryDelay),
	)
	return s.after(s.cfg.RetryDelay)
}

func (s *GameStore) tryRefresh(ctx context.Context) error {
	if !s.refreshMu.TryLock() {
		s.logger.Debug("refresh already in flight")
		return nil
	}
	defer s.refreshMu.Unlock()
	return s.refresh(ctx)
}

// refresh runs one cycle. The caller holds refreshMu.
func (s *GameStore) refresh(ctx context.Context) (err error) {
	started := s.now()
	defer func() {
		s.metrics.ObserveRefresh(err, started)
	}()

	if s.gateway == nil {
		state := s.classifier.Classify(s.unavailable)
		s.mutate(func(v *model.View) { v.Error = &state })
		return s.unavailable
	}

	identity := s.mutate(func(v *model.View) {
		v.Refreshing = true
		v.Error = nil
	}).Identity
	snapshot, err := s.read(ctx, identity)
	if err != nil {
		if ctx.Err() != nil {
			s.mutate(func(v *model.View) { v.Refreshing = false })
			return ctx.Err()
		}
		state := s.classifier.Classify(err)
		s.logger.Warn("refresh failed", zap.String("category", string(state.Category)), zap.Error(err))
		s.mutate(func(v *model.View) {
			v.Refreshing = false
			v.Error = &state
		})
		return failure.Wrap(state.Category, state.Message, err)
	}

	published := s.mutate(func(v *model.View) {
		v.Snapshot = snapshot
		v.Loaded = true
		v.Refreshing = false
		v.Error = nil
		v.RetryAttempt = 0
	})
	if published.Identity.Account != snapshot.Account {
		s.Kick()
	}
	return nil
}

// read fetches the contract state one call at a time.
func (s *GameStore) read(ctx context.Context, identity model.Identity) (*model.GameSnapshot, error) {
	snap := &model.GameSnapshot{
		Account:           identity.Account,
		ClaimCount:        new(uint256.Int),
		PendingWithdrawal: new(uint256.Int),
	}

	var err error
	paced := func(call func()) {
		if err != nil {
			return
		}
		if err = s.pacer.Wait(ctx); err != nil {
			return
		}
		call()
	}

	paced(func() { snap.Leader, err = s.gateway.Leader(ctx) })
	paced(func() { snap.Prize, err = s.gateway.CurrentPrize(ctx) })
	paced(func() { snap.FeeRateBps, err = s.gateway.FeeRate(ctx) })
	paced(func() { snap.TotalClaims, err = s.gateway.TotalClaims(ctx) })
	if identity.Connected() {
		paced(func() { snap.ClaimCount, err = s.gateway.ClaimCount(ctx, identity.Account) })
		paced(func() { snap.PendingWithdrawal, err = s.gateway.PendingWithdrawal(ctx, identity.Account) })
	}
	if err != nil {
		return nil, err
	}
	snap.FetchedAt = s.now()
	return snap, nil
}

// SubmitBid sends amount to claim the throne. amount must exceed the minimum bid
// derived from the current snapshot.
func (s *GameStore) SubmitBid(ctx context.Context, amount *uint256.Int) (model.OperationResult, error) {
	validate := func(snap *model.GameSnapshot, _ model.Identity) error {
		if amount == nil || amount.IsZero() {
			return failure.New(model.CategoryValidation, msgBidRequired)
		}
		minBid, err := snap.MinBid()
		if err != nil {
			return failure.Wrap(model.CategoryValidation, msgMinBidOverflow, err)
		}
		if amount.Cmp(minBid) <= 0 {
			return failure.New(model.CategoryValidation,
				fmt.Sprintf("Bid must be greater than %s ETH.", model.FormatEther(minBid)))
		}
		return nil
	}
	return s.submit(ctx, model.OperationBid, validate, func(ctx context.Context) (*types.Transaction, error) {
		return s.gateway.SubmitBid(ctx, amount)
	})
}

// SubmitWithdraw withdraws the connected account's pending balance.
func (s *GameStore) SubmitWithdraw(ctx context.Context) (model.OperationResult, error) {
	validate := func(snap *model.GameSnapshot, identity model.Identity) error {
		if snap.Account != identity.Account {
			return failure.New(model.CategoryValidation, msgAccountLoading)
		}
		if snap.PendingWithdrawal == nil || snap.PendingWithdrawal.IsZero() {
			return failure.New(model.CategoryValidation, msgNothingToClaim)
		}
		return nil
	}
	return s.submit(ctx, model.OperationWithdraw, validate, func(ctx context.Context) (*types.Transaction, error) {
		return s.gateway.SubmitWithdraw(ctx)
	})
}

func (s *GameStore) submit(
	ctx context.Context,
	kind model.OperationKind,
	validate func(snap *model.GameSnapshot, identity model.Identity) error,
	send func(ctx context.Context) (*types.Transaction, error),
) (result model.OperationResult, err error) {
	result = model.OperationResult{Kind: kind, Status: model.OperationFailed}
	if !s.submitMu.TryLock() {
		err = failure.New(model.CategoryInFlight, msgInFlight)
		state := s.classifier.Classify(err)
		result.Error = &state
		return result, err
	}
	defer s.submitMu.Unlock()

	started := s.now()
	defer func() {
		s.metrics.ObserveSubmission(kind, err, started)
	}()

	if s.gateway == nil {
		return s.fail(result, failure.New(model.CategoryUnsigned, msgUnsigned))
	}
	view := s.mutate(func(v *model.View) { v.Error = nil })
	if !view.Identity.CanSign() {
		return s.fail(result, failure.New(model.CategoryUnsigned, msgUnsigned))
	}
	if view.Snapshot == nil {
		return s.fail(result, failure.New(model.CategoryValidation, msgNotLoaded))
	}
	if err := validate(view.Snapshot, view.Identity); err != nil {
		return s.fail(result, err)
	}

	logger := s.logger.With(zap.String("kind", string(kind)), zap.Stringer("account", view.Identity.Account))
	s.gateway.Rebind(view.Identity.Signer)

	tx, err := send(ctx)
	if err != nil {
		logger.Warn("submission failed", zap.Error(err))
		return s.fail(result, err)
	}
	result.TxHash = tx.Hash()
	result.Status = model.OperationPending
	s.publishSubmission(result)
	logger.Info("submission pending", zap.Stringer("tx", tx.Hash()))

	if _, err := s.gateway.WaitMined(ctx, tx); err != nil {
		logger.Warn("submission not confirmed", zap.Stringer("tx", tx.Hash()), zap.Error(err))
		return s.fail(result, err)
	}

	s.refreshMu.Lock()
	refreshErr := s.refresh(ctx)
	s.refreshMu.Unlock()
	if refreshErr != nil {
		logger.Warn("refresh after confirmation failed", zap.Error(refreshErr))
	}

	result.Status = model.OperationConfirmed
	s.publishSubmission(result)
	logger.Info("submission confirmed", zap.Stringer("tx", tx.Hash()))
	return result, nil
}

func (s *GameStore) fail(result model.OperationResult, err error) (model.OperationResult, error) {
	state := s.classifier.Classify(err)
	result.Status = model.OperationFailed
	result.Error = &state
	s.publishSubmission(result)
	if _, ok := failure.CategoryOf(err); ok {
		return result, err
	}
	return result, failure.Wrap(state.Category, state.Message, err)
}

func (s *GameStore) publishSubmission(result model.OperationResult) {
	s.mutate(func(v *model.View) { v.Submission = &result })
}
