// Package scheduler runs the periodic session sweep. Login persists a Session
// row per issued JWT; rows past their expiry are dead weight once the token
// itself has expired, so a background job clears them out.
package scheduler

import (
	"context"
	"time"

	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"go.uber.org/zap"
)

const defaultSweepInterval = time.Hour

type SessionSweeper struct {
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewSessionSweeper() *SessionSweeper {
	ctx, cancel := context.WithCancel(context.Background())
	return &SessionSweeper{
		interval: defaultSweepInterval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start sweeps once immediately, then on every tick until Stop is called.
func (s *SessionSweeper) Start() {
	logger.Log.Info("Starting session sweeper", zap.Duration("interval", s.interval))

	go func() {
		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *SessionSweeper) Stop() {
	s.cancel()
	logger.Log.Info("Session sweeper stopped")
}

func (s *SessionSweeper) sweep() {
	result := db.DB.Where("expires_at < ?", time.Now()).Delete(&models.Session{})

	if result.Error != nil {
		logger.Log.Error("Session sweep failed", zap.Error(result.Error))
		return
	}

	if result.RowsAffected > 0 {
		logger.Log.Info("Swept expired sessions", zap.Int64("deleted", result.RowsAffected))
	}
}

// Global sweeper instance, mirroring the process lifecycle.
var globalSweeper *SessionSweeper

func Initialize() {
	globalSweeper = NewSessionSweeper()
	globalSweeper.Start()
}

func Shutdown() {
	if globalSweeper != nil {
		globalSweeper.Stop()
	}
}
