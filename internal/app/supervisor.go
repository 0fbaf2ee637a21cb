package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/kingofthehill-client/internal/clock"
)

const (
	defaultRestartDelay = time.Second
	defaultDrainTimeout = 30 * time.Second
)

// Supervisor keeps one Session alive, building a fresh one whenever the previous
// session ends.
type Supervisor struct {
	build        func(ctx context.Context) (*Session, error)
	logger       *zap.Logger
	sleep        func(context.Context, time.Duration) error
	restartDelay time.Duration
	drainTimeout time.Duration

	mu      sync.RWMutex
	current *Session
	builds  int
}

// NewSupervisor builds a Supervisor creating sessions from cfg.
func NewSupervisor(cfg SessionConfig, logger *zap.Logger) *Supervisor {
	return &Supervisor{
		build: func(ctx context.Context) (*Session, error) {
			return NewSession(ctx, cfg, logger)
		},
		logger:       logger.Named("supervisor"),
		sleep:        clock.SleepWithContext,
		restartDelay: defaultRestartDelay,
		drainTimeout: defaultDrainTimeout,
	}
}

// Run builds and runs sessions until ctx is done. Configuration errors end Run.
func (s *Supervisor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		session, err := s.build(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		s.setCurrent(session)

		err = session.Run(ctx)
		s.retire(session)

		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, ErrNetworkChanged):
			s.logger.Info("network changed, rebuilding session")
			continue
		case errors.Is(err, ErrUnavailable):
			s.logger.Warn("game unavailable, rebuilding session", zap.Error(err))
			continue
		default:
			s.logger.Error("session ended unexpectedly, restarting", zap.Error(err), zap.Duration("sleep", s.restartDelay))
			if sleepErr := s.sleep(ctx, s.restartDelay); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Supervisor) setCurrent(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session
	if session != nil {
		s.builds++
	}
}

// retire unpublishes session, waits for borrowers to release it and closes it.
// Borrowers still holding it after drainTimeout see connection errors.
func (s *Supervisor) retire(session *Session) {
	s.setCurrent(nil)

	drained := make(chan struct{})
	go func() {
		session.borrowed.Wait()
		close(drained)
	}()
	timer := time.NewTimer(s.drainTimeout)
	defer timer.Stop()
	select {
	case <-drained:
	case <-timer.C:
		s.logger.Warn("closing session with requests still in flight", zap.Duration("waited", s.drainTimeout))
	}
	session.Close()
}

// Acquire returns the running session and a release func the caller must call
// once done with it. The session is not closed before every borrower released it
// or the drain timeout expired. Without a running session it returns nil and a
// no-op release.
func (s *Supervisor) Acquire() (*Session, func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, func() {}
	}
	session := s.current
	session.borrowed.Add(1)
	var once sync.Once
	return session, func() { once.Do(session.borrowed.Done) }
}

// Current returns the running session, or nil while a session is being rebuilt.
func (s *Supervisor) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Builds reports how many sessions have been started.
func (s *Supervisor) Builds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.builds
}
