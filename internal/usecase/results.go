package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 50
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	Top(ctx context.Context, game string, limit int) ([]entity.Result, error)
}

type resultRecorder interface {
	Record(ctx context.Context, game, sessionID string, score int)
}

// ResultManager keeps the score history of finished games.
type ResultManager struct {
	logger *slog.Logger
	repo   resultRepo
	now    func() time.Time
}

func NewResultManager(logger *slog.Logger, repo resultRepo) *ResultManager {
	return &ResultManager{
		logger: logger.With("component", "results"),
		repo:   repo,
		now:    time.Now,
	}
}

// Record appends a finished game. Failures are logged and otherwise ignored.
func (that *ResultManager) Record(ctx context.Context, game, sessionID string, score int) {
	log := that.logger.With("method", "Record", "game", game)

	result := &entity.Result{
		Game:       game,
		SessionID:  sessionID,
		Score:      score,
		FinishedAt: that.now(),
	}

	if err := that.repo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)

		return
	}

	log.Debug("result saved", "id", result.ID, "score", score)
}

// Top returns the best results of a scored game. limit falls back to 10 and is capped at 50.
func (that *ResultManager) Top(ctx context.Context, game string, limit int) ([]entity.Result, error) {
	switch game {
	case entity.GameTiles, entity.GameOddColor, entity.GameColorMatch, entity.GameFlags:
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGame, game)
	}

	if limit <= 0 {
		limit = defaultTopLimit
	}

	results, err := that.repo.Top(ctx, game, min(limit, maxTopLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to get top results: %w", err)
	}

	return results, nil
}
