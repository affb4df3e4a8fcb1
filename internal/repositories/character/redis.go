package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	defaultScanBatch   = 100

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func characterKey(id string) string {
	return characterKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	stored := input.Character.Clone()
	now := r.clock.Now().Unix()
	if stored.CreatedAt == 0 {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	created, err := r.client.SetNX(ctx, characterKey(stored.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	if !created {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", stored.ID)
	}

	slog.DebugContext(ctx, "character created",
		"character_id", stored.ID,
		"class", stored.Class)

	return &CreateOutput{Character: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var character entities.Character
	if err := json.Unmarshal([]byte(result), &character); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal character data").
			WithMeta(errors.MetaKind, string(errors.KindCorruptState)).
			WithMeta("character_id", input.ID)
	}

	return &GetOutput{Character: &character}, nil
}

func (r *redisRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	output := &GetManyOutput{
		Characters: make([]*entities.Character, 0, len(input.IDs)),
	}
	if len(input.IDs) == 0 {
		return output, nil
	}

	keys := make([]string, 0, len(input.IDs))
	for _, id := range input.IDs {
		keys = append(keys, characterKey(id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters")
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			output.Missing = append(output.Missing, input.IDs[i])
			continue
		}
		var character entities.Character
		if err := json.Unmarshal([]byte(raw), &character); err != nil {
			slog.WarnContext(ctx, "skipping undecodable character",
				"character_id", input.IDs[i],
				"error", err.Error())
			output.Missing = append(output.Missing, input.IDs[i])
			continue
		}
		output.Characters = append(output.Characters, &character)
	}

	return output, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	stored := input.Character.Clone()
	stored.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	updated, err := r.client.SetXX(ctx, characterKey(stored.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if !updated {
		return nil, errors.NotFoundf("character with ID %s not found", stored.ID)
	}

	return &UpdateOutput{Character: stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	deleted, err := r.client.Del(ctx, characterKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Scan(ctx context.Context, input ScanInput) (*ScanOutput, error) {
	batch := input.BatchSize
	if batch <= 0 {
		batch = defaultScanBatch
	}

	output := &ScanOutput{}
	iter := r.client.Scan(ctx, 0, characterKeyPrefix+"*", batch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := strings.TrimPrefix(key, characterKeyPrefix)

		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			if errors.IsKind(err, errors.KindCorruptState) {
				output.Undecodable = append(output.Undecodable, key)
				continue
			}
			return nil, err
		}
		output.Characters = append(output.Characters, getOutput.Character)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan characters")
	}

	slog.DebugContext(ctx, "scanned characters",
		"found", len(output.Characters),
		"undecodable", len(output.Undecodable))

	return output, nil
}
