package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	Top(ctx context.Context, game string, limit int) ([]entity.Result, error)
}

type dbResult struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ResultRepository {
	return &dbResult{
		db: db,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	query := `INSERT INTO results (game, session_id, score, finished_at) VALUES (?, ?, ?, ?)`

	response, err := that.db.ExecContext(ctx, query, result.Game, result.SessionID, result.Score, result.FinishedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}

	id, err := response.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get result id: %w", err)
	}

	result.ID = id

	return nil
}

// Top returns the best limit results of game, highest score first and older results first on ties.
func (that *dbResult) Top(ctx context.Context, game string, limit int) ([]entity.Result, error) {
	query := `SELECT id, game, session_id, score, finished_at FROM results
		WHERE game = ? ORDER BY score DESC, finished_at ASC, id ASC LIMIT ?`

	rows, err := that.db.QueryContext(ctx, query, game, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := make([]entity.Result, 0, limit)
	for rows.Next() {
		var (
			result     entity.Result
			finishedAt int64
		)

		if err = rows.Scan(&result.ID, &result.Game, &result.SessionID, &result.Score, &finishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		result.FinishedAt = time.Unix(finishedAt, 0).UTC()
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	return results, nil
}
