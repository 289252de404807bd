package usecase

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/omok"
)

type OmokManager struct {
	logger   *slog.Logger
	sessions *sessions[entity.OmokGame]
}

func NewOmokManager(logger *slog.Logger, repo sessionRepo[entity.OmokGame]) *OmokManager {
	return &OmokManager{
		logger:   logger.With("component", "omok"),
		sessions: newSessions(repo, newSessionLocker(), created(omok.NewGame)),
	}
}

// New clears the board; black moves first.
func (that *OmokManager) New(ctx context.Context, sessionID string) (*entity.OmokGame, error) {
	return that.sessions.replace(ctx, sessionID, omok.NewGame(sessionID))
}

func (that *OmokManager) State(ctx context.Context, sessionID string) (*entity.OmokGame, error) {
	return that.sessions.upsert(ctx, sessionID, noop[entity.OmokGame])
}

func (that *OmokManager) Place(ctx context.Context, sessionID string, row, col int) (*entity.OmokGame, omok.Placement, error) {
	var placement omok.Placement

	game, err := that.sessions.update(ctx, sessionID, func(game *entity.OmokGame) error {
		var err error
		if placement, err = omok.Place(game, row, col); err != nil {
			return err
		}

		if game.IsFinished() {
			that.logger.With("method", "Place").Info("game finished",
				"session", sessionID, "winner", game.Winner, "draw", game.Draw, "moves", game.Moves)
		}

		return nil
	})

	return game, placement, err
}
