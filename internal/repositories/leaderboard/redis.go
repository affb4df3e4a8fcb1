package leaderboard

import (
	"context"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	scoresKey      = "leaderboard:scores"
	entryKeyPrefix = "leaderboard:user:"

	fieldName   = "name"
	fieldPlayed = "games_played"
	fieldWon    = "games_won"

	errUserIDEmpty = "user ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis leaderboard repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a leaderboard backed by a Redis hash per user and a
// sorted set of scores
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func entryKey(userID string) string {
	return entryKeyPrefix + userID
}

func (r *redisRepository) Ensure(ctx context.Context, input EnsureInput) (*EnsureOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := entryKey(input.UserID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, fieldName, input.Name)
		pipe.HSetNX(ctx, key, fieldPlayed, 0)
		pipe.HSetNX(ctx, key, fieldWon, 0)
		pipe.ZAddNX(ctx, scoresKey, redis.Z{Score: 0, Member: input.UserID})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create leaderboard entry")
	}

	entry, err := r.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &EnsureOutput{Entry: entry}, nil
}

func (r *redisRepository) RecordResult(ctx context.Context, input RecordResultInput) (*RecordResultOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.Points < 0 {
		return nil, errors.InvalidArgument("points cannot be negative")
	}

	key := entryKey(input.UserID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check leaderboard entry")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("leaderboard entry for user %s not found", input.UserID)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, fieldPlayed, 1)
		if input.Won {
			pipe.HIncrBy(ctx, key, fieldWon, 1)
			pipe.ZIncrBy(ctx, scoresKey, float64(input.Points), input.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record battle result")
	}

	entry, err := r.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &RecordResultOutput{Entry: entry}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	entry, err := r.load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Entry: entry}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit <= 0 {
		return nil, errors.InvalidArgument("limit must be positive")
	}

	ranked, err := r.client.ZRevRangeWithScores(ctx, scoresKey, 0, input.Limit-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list leaderboard")
	}
	if len(ranked) == 0 {
		return &ListOutput{Entries: []*entities.LeaderboardEntry{}}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ranked))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, z := range ranked {
			cmds[i] = pipe.HGetAll(ctx, entryKey(memberID(z.Member)))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load leaderboard entries")
	}

	entries := make([]*entities.LeaderboardEntry, 0, len(ranked))
	for i, z := range ranked {
		entry, err := decodeEntry(memberID(z.Member), cmds[i].Val())
		if err != nil {
			return nil, err
		}
		entry.Score = int64(z.Score)
		entry.Rank = int64(i) + 1
		entries = append(entries, entry)
	}

	return &ListOutput{Entries: entries}, nil
}

// load reads the hash, score and rank of one user
func (r *redisRepository) load(ctx context.Context, userID string) (*entities.LeaderboardEntry, error) {
	key := entryKey(userID)

	var (
		fields *redis.MapStringStringCmd
		score  *redis.FloatCmd
		rank   *redis.IntCmd
	)
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		fields = pipe.HGetAll(ctx, key)
		score = pipe.ZScore(ctx, scoresKey, userID)
		rank = pipe.ZRevRank(ctx, scoresKey, userID)
		return nil
	})
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to load leaderboard entry")
	}

	if len(fields.Val()) == 0 || score.Err() == redis.Nil {
		return nil, errors.NotFoundf("leaderboard entry for user %s not found", userID)
	}

	entry, err := decodeEntry(userID, fields.Val())
	if err != nil {
		return nil, err
	}
	entry.Score = int64(score.Val())
	// ZRevRank is 0-based
	entry.Rank = rank.Val() + 1
	return entry, nil
}

func decodeEntry(userID string, fields map[string]string) (*entities.LeaderboardEntry, error) {
	entry := &entities.LeaderboardEntry{
		UserID: userID,
		Name:   fields[fieldName],
	}

	var err error
	if entry.GamesPlayed, err = parseCounter(fields, fieldPlayed); err != nil {
		return nil, err
	}
	if entry.GamesWon, err = parseCounter(fields, fieldWon); err != nil {
		return nil, err
	}
	return entry, nil
}

func parseCounter(fields map[string]string, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeDataLoss, "invalid leaderboard counter").
			WithMeta(errors.MetaKind, string(errors.KindCorruptState)).
			WithMeta("field", name)
	}
	return v, nil
}

func memberID(member interface{}) string {
	switch v := member.(type) {
	case string:
		return v
	default:
		return ""
	}
}
