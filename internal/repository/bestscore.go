package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// saveIfHigher keeps the larger of the stored and the new score and returns it.
var saveIfHigher = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]))
local score = tonumber(ARGV[1])
if current == nil or score > current then
	redis.call('SET', KEYS[1], ARGV[1])
	return score
end
return current
`)

type BestScoreRepository interface {
	Get(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) (int, error)
}

type dbBestScore struct {
	client *redis.Client
	key    string
}

func NewBestScoreRepository(client *redis.Client, key string) BestScoreRepository {
	return &dbBestScore{
		client: client,
		key:    key,
	}
}

// Get returns the stored best score, or 0 when it is missing or not a number.
func (that *dbBestScore) Get(ctx context.Context) (int, error) {
	response, err := that.client.Get(ctx, that.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get best score: %w", err)
	}

	score, err := strconv.Atoi(response)
	if err != nil {
		// garbage under the key counts as no score
		return 0, nil
	}

	return score, nil
}

// Save stores score if it beats the current best and returns the best after the call.
func (that *dbBestScore) Save(ctx context.Context, score int) (int, error) {
	best, err := saveIfHigher.Run(ctx, that.client, []string{that.key}, score).Int()
	if err != nil {
		return 0, fmt.Errorf("failed to save best score: %w", err)
	}

	return best, nil
}
