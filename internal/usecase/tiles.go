package usecase

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/pkg"
	"github.com/rocketscienceinc/arcade-backend/internal/tiles"
)

type bestScoreRepo interface {
	Get(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) (int, error)
}

type TilesManager struct {
	logger   *slog.Logger
	sessions *sessions[entity.TileGame]
	best     bestScoreRepo
	results  resultRecorder
	rnd      pkg.Random
}

func NewTilesManager(
	logger *slog.Logger,
	repo sessionRepo[entity.TileGame],
	best bestScoreRepo,
	results resultRecorder,
	rnd pkg.Random,
) *TilesManager {
	that := &TilesManager{
		logger:  logger.With("component", "tiles"),
		best:    best,
		results: results,
		rnd:     rnd,
	}

	that.sessions = newSessions(repo, newSessionLocker(), func(ctx context.Context, id string) *entity.TileGame {
		return tiles.NewGame(id, that.loadBest(ctx), that.rnd)
	})

	return that
}

// New starts a fresh board for the session, replacing any game in progress.
func (that *TilesManager) New(ctx context.Context, sessionID string) (*entity.TileGame, error) {
	return that.sessions.replace(ctx, sessionID, tiles.NewGame(sessionID, that.loadBest(ctx), that.rnd))
}

// State returns the session's game, starting one if there is none.
func (that *TilesManager) State(ctx context.Context, sessionID string) (*entity.TileGame, error) {
	return that.sessions.upsert(ctx, sessionID, noop[entity.TileGame])
}

func (that *TilesManager) Move(ctx context.Context, sessionID string, dir entity.Direction) (*entity.TileGame, tiles.Outcome, error) {
	var outcome tiles.Outcome

	game, err := that.sessions.update(ctx, sessionID, func(game *entity.TileGame) error {
		var err error
		if outcome, err = tiles.Move(game, dir, that.rnd); err != nil {
			return err
		}

		if outcome.Gained > 0 && game.Score == game.BestScore {
			game.BestScore = max(game.BestScore, that.saveBest(ctx, game.Score))
		}

		if outcome.Over {
			that.results.Record(ctx, entity.GameTiles, sessionID, game.Score)
		}

		return nil
	})

	return game, outcome, err
}

func (that *TilesManager) KeepPlaying(ctx context.Context, sessionID string) (*entity.TileGame, error) {
	return that.sessions.update(ctx, sessionID, func(game *entity.TileGame) error {
		tiles.KeepPlaying(game)

		return nil
	})
}

func (that *TilesManager) loadBest(ctx context.Context) int {
	best, err := that.best.Get(ctx)
	if err != nil {
		that.logger.With("method", "loadBest").Error("failed to get best score", "error", err)

		return 0
	}

	return best
}

func (that *TilesManager) saveBest(ctx context.Context, score int) int {
	best, err := that.best.Save(ctx, score)
	if err != nil {
		that.logger.With("method", "saveBest").Error("failed to save best score", "error", err, "score", score)

		return score
	}

	return best
}
