package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/flags"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

type FlagsManager struct {
	logger   *slog.Logger
	sessions *sessions[entity.FlagGame]
	caller   *flags.Caller
	results  resultRecorder
	rnd      pkg.Random
	now      func() time.Time
}

func NewFlagsManager(
	logger *slog.Logger,
	repo sessionRepo[entity.FlagGame],
	caller *flags.Caller,
	results resultRecorder,
	rnd pkg.Random,
) *FlagsManager {
	return &FlagsManager{
		logger:   logger.With("component", "flags"),
		sessions: newSessions(repo, newSessionLocker(), created(flags.NewGame)),
		caller:   caller,
		results:  results,
		rnd:      rnd,
		now:      time.Now,
	}
}

func (that *FlagsManager) State(ctx context.Context, sessionID string) (*entity.FlagGame, error) {
	return that.sessions.upsert(ctx, sessionID, func(game *entity.FlagGame) error {
		now := that.now()

		that.expire(ctx, game, now)

		return nil
	})
}

// Start begins a 60 second game; the caller schedules Expire at the returned deadline.
func (that *FlagsManager) Start(ctx context.Context, sessionID string) (*entity.FlagGame, error) {
	return that.sessions.upsert(ctx, sessionID, func(game *entity.FlagGame) error {
		now := that.now()

		that.caller.Start(game, now, that.rnd)

		return nil
	})
}

func (that *FlagsManager) Answer(ctx context.Context, sessionID string, action entity.FlagAction) (*entity.FlagGame, flags.AnswerResult, error) {
	var result flags.AnswerResult

	game, err := that.sessions.update(ctx, sessionID, func(game *entity.FlagGame) error {
		now := that.now()

		if that.expire(ctx, game, now) {
			return apperror.ErrGameFinished
		}

		var err error
		result, err = that.caller.Answer(game, action, now, that.rnd)

		return err
	})

	return game, result, err
}

func (that *FlagsManager) Stop(ctx context.Context, sessionID string) (*entity.FlagGame, error) {
	return that.sessions.update(ctx, sessionID, func(game *entity.FlagGame) error {
		now := that.now()

		if that.expire(ctx, game, now) {
			return nil
		}

		if err := flags.Stop(game); err != nil {
			return err
		}

		that.results.Record(ctx, entity.GameFlags, sessionID, game.Score)

		return nil
	})
}

func (that *FlagsManager) SetRate(ctx context.Context, sessionID string, rate float64) (*entity.FlagGame, error) {
	return that.sessions.upsert(ctx, sessionID, func(game *entity.FlagGame) error {
		flags.SetRate(game, rate)

		return nil
	})
}

// Expire finishes the game if the minute is over and reports whether it did.
func (that *FlagsManager) Expire(ctx context.Context, sessionID string) (*entity.FlagGame, bool, error) {
	var expired bool

	game, err := that.sessions.update(ctx, sessionID, func(game *entity.FlagGame) error {
		now := that.now()

		expired = that.expire(ctx, game, now)

		return nil
	})

	return game, expired, err
}

// expire checks the deadline at now. Callers use the same now for the move that follows.
func (that *FlagsManager) expire(ctx context.Context, game *entity.FlagGame, now time.Time) bool {
	if !flags.Expire(game, now) {
		return false
	}

	that.results.Record(ctx, entity.GameFlags, game.ID, game.Score)

	return true
}
