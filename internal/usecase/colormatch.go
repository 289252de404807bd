package usecase

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/arcade-backend/internal/colormatch"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
)

type ColorMatchManager struct {
	logger   *slog.Logger
	sessions *sessions[entity.ColorMatchGame]
	results  resultRecorder
	rnd      pkg.Random
}

func NewColorMatchManager(
	logger *slog.Logger,
	repo sessionRepo[entity.ColorMatchGame],
	results resultRecorder,
	rnd pkg.Random,
) *ColorMatchManager {
	return &ColorMatchManager{
		logger:   logger.With("component", "colormatch"),
		sessions: newSessions(repo, newSessionLocker(), created(colormatch.NewGame)),
		results:  results,
		rnd:      rnd,
	}
}

func (that *ColorMatchManager) State(ctx context.Context, sessionID string) (*entity.ColorMatchGame, error) {
	return that.sessions.upsert(ctx, sessionID, noop[entity.ColorMatchGame])
}

// Start deals round one in the memorize phase; the caller schedules Hide for it.
func (that *ColorMatchManager) Start(ctx context.Context, sessionID string) (*entity.ColorMatchGame, error) {
	return that.sessions.upsert(ctx, sessionID, func(game *entity.ColorMatchGame) error {
		colormatch.Start(game, that.rnd)

		return nil
	})
}

// Hide ends the memorize phase of the board numbered deal. It reports false for a stale board.
func (that *ColorMatchManager) Hide(ctx context.Context, sessionID string, deal int) (*entity.ColorMatchGame, bool, error) {
	var hidden bool

	game, err := that.sessions.update(ctx, sessionID, func(game *entity.ColorMatchGame) error {
		hidden = colormatch.Hide(game, deal)

		return nil
	})

	return game, hidden, err
}

func (that *ColorMatchManager) Flip(ctx context.Context, sessionID string, index int) (*entity.ColorMatchGame, colormatch.FlipResult, error) {
	var result colormatch.FlipResult

	game, err := that.sessions.update(ctx, sessionID, func(game *entity.ColorMatchGame) error {
		var err error
		if result, err = colormatch.Flip(game, index, that.rnd); err != nil {
			return err
		}

		if result.RoundComplete {
			that.logger.With("method", "Flip").Debug("round complete", "session", sessionID, "round", game.Round)
		}

		if result.Finished {
			that.results.Record(ctx, entity.GameColorMatch, sessionID, game.Score)
		}

		return nil
	})

	return game, result, err
}
