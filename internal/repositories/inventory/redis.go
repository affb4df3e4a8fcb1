package inventory

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:"

	// Error messages
	errInventoryNil = "inventory cannot be nil"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis inventory repository.
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

// NewRedis creates a new Redis-backed inventory repository
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

func inventoryKey(ownerID string) string {
	return inventoryKeyPrefix + ownerID
}

// prepare validates the input and returns the stamped document to store
func (r *redisRepository) prepare(inv *entities.Inventory) (*entities.Inventory, []byte, error) {
	if inv == nil {
		return nil, nil, errors.InvalidArgument(errInventoryNil)
	}
	if inv.OwnerID == "" {
		return nil, nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	stored := inv.Clone()
	if stored.Items == nil {
		stored.Items = []entities.Item{}
	}
	stored.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to marshal inventory")
	}
	return stored, data, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	stored, data, err := r.prepare(input.Inventory)
	if err != nil {
		return nil, err
	}

	created, err := r.client.SetNX(ctx, inventoryKey(stored.OwnerID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create inventory")
	}
	if !created {
		return nil, errors.AlreadyExistsf("inventory for character %s already exists", stored.OwnerID)
	}

	return &CreateOutput{Inventory: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	result, err := r.client.Get(ctx, inventoryKey(input.OwnerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("inventory for character %s not found", input.OwnerID)
		}
		return nil, errors.Wrapf(err, "failed to get inventory")
	}

	var inv entities.Inventory
	if err := json.Unmarshal([]byte(result), &inv); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal inventory").
			WithMeta(errors.MetaKind, string(errors.KindCorruptState)).
			WithMeta("owner_id", input.OwnerID)
	}
	if inv.Items == nil {
		inv.Items = []entities.Item{}
	}

	return &GetOutput{Inventory: &inv}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	stored, data, err := r.prepare(input.Inventory)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.SetXX(ctx, inventoryKey(stored.OwnerID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update inventory")
	}
	if !updated {
		return nil, errors.NotFoundf("inventory for character %s not found", stored.OwnerID)
	}

	return &UpdateOutput{Inventory: stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	deleted, err := r.client.Del(ctx, inventoryKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete inventory")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("inventory for character %s not found", input.OwnerID)
	}

	return &DeleteOutput{}, nil
}
