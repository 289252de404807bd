package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/oddcolor"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

type OddColorManager struct {
	logger   *slog.Logger
	sessions *sessions[entity.OddColorGame]
	results  resultRecorder
	rnd      pkg.Random
	now      func() time.Time
}

func NewOddColorManager(
	logger *slog.Logger,
	repo sessionRepo[entity.OddColorGame],
	results resultRecorder,
	rnd pkg.Random,
) *OddColorManager {
	return &OddColorManager{
		logger:   logger.With("component", "oddcolor"),
		sessions: newSessions(repo, newSessionLocker(), created(oddcolor.NewGame)),
		results:  results,
		rnd:      rnd,
		now:      time.Now,
	}
}

func (that *OddColorManager) State(ctx context.Context, sessionID string) (*entity.OddColorGame, error) {
	return that.sessions.upsert(ctx, sessionID, func(game *entity.OddColorGame) error {
		now := that.now()

		that.expire(ctx, game, now)

		return nil
	})
}

// Start begins a 30 second round; the caller schedules Expire at the returned deadline.
func (that *OddColorManager) Start(ctx context.Context, sessionID string) (*entity.OddColorGame, error) {
	return that.sessions.upsert(ctx, sessionID, func(game *entity.OddColorGame) error {
		now := that.now()

		oddcolor.Start(game, now, that.rnd)

		return nil
	})
}

func (that *OddColorManager) Pick(ctx context.Context, sessionID string, index int) (*entity.OddColorGame, oddcolor.PickResult, error) {
	var result oddcolor.PickResult

	game, err := that.sessions.update(ctx, sessionID, func(game *entity.OddColorGame) error {
		now := that.now()

		if that.expire(ctx, game, now) {
			return apperror.ErrGameFinished
		}

		var err error
		result, err = oddcolor.Pick(game, index, now, that.rnd)

		return err
	})

	return game, result, err
}

func (that *OddColorManager) Skip(ctx context.Context, sessionID string) (*entity.OddColorGame, error) {
	return that.sessions.update(ctx, sessionID, func(game *entity.OddColorGame) error {
		now := that.now()

		if that.expire(ctx, game, now) {
			return apperror.ErrGameFinished
		}

		return oddcolor.Skip(game, now, that.rnd)
	})
}

// Expire ends the round if its time is up and reports whether it did.
func (that *OddColorManager) Expire(ctx context.Context, sessionID string) (*entity.OddColorGame, bool, error) {
	var expired bool

	game, err := that.sessions.update(ctx, sessionID, func(game *entity.OddColorGame) error {
		now := that.now()

		expired = that.expire(ctx, game, now)

		return nil
	})

	return game, expired, err
}

// expire checks the deadline at now. Callers use the same now for the move that follows.
func (that *OddColorManager) expire(ctx context.Context, game *entity.OddColorGame, now time.Time) bool {
	if !oddcolor.Expire(game, now) {
		return false
	}

	that.results.Record(ctx, entity.GameOddColor, game.ID, game.Score)

	return true
}
