package investigator

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/coc-api/internal/redis"
)

const (
	investigatorKeyPrefix = "investigator:"
	ownerIndexPrefix      = "investigator:owner:"
	occupationStatSuffix  = ":occupation_stat"

	errCharacterNil  = "investigator cannot be nil"
	errIDEmpty       = "investigator ID cannot be empty"
	errOwnerIDEmpty  = "owner ID cannot be empty"
	errStatNotParsed = "unknown characteristic %q"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis investigator repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed investigator repository
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

var _ Repository = (*redisRepository)(nil)

func recordKey(id string) string { return investigatorKeyPrefix + id }

func ownerKey(ownerID string) string { return ownerIndexPrefix + ownerID }

func statKey(id string) string { return investigatorKeyPrefix + id + occupationStatSuffix }

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := recordKey(input.Character.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("investigator with ID %s already exists", input.Character.ID)
	}

	ch := input.Character.Clone()
	now := r.clock.Now().Unix()
	if ch.CreatedAt == 0 {
		ch.CreatedAt = now
	}
	ch.UpdatedAt = now

	data, err := json.Marshal(ch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal investigator")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if ch.OwnerID != "" {
		pipe.SAdd(ctx, ownerKey(ch.OwnerID), ch.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create investigator")
	}

	return &CreateOutput{Character: ch}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, recordKey(input.ID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("investigator with ID %s not found", input.ID).
				WithMeta("investigator_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get investigator")
	}

	var ch coc.Character
	if err := json.Unmarshal([]byte(result), &ch); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal investigator")
	}

	return &GetOutput{Character: &ch}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Character.ID})
	if err != nil {
		return nil, err
	}

	ch := input.Character.Clone()
	ch.CreatedAt = existing.Character.CreatedAt
	ch.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(ch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal investigator")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(ch.ID), data, 0)

	if prev := existing.Character.OwnerID; prev != ch.OwnerID {
		if prev != "" {
			pipe.SRem(ctx, ownerKey(prev), ch.ID)
		}
		if ch.OwnerID != "" {
			pipe.SAdd(ctx, ownerKey(ch.OwnerID), ch.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update investigator")
	}

	return &UpdateOutput{Character: ch}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, recordKey(input.ID), statKey(input.ID))
	if existing.Character.OwnerID != "" {
		pipe.SRem(ctx, ownerKey(existing.Character.OwnerID), input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete investigator")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerKey(input.OwnerID)
	slog.DebugContext(ctx, "listing investigators by owner index",
		"owner_id", input.OwnerID,
		"index_key", indexKey)

	characters, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list investigators by owner",
			"owner_id", input.OwnerID,
			"error", err.Error())
		return nil, err
	}

	sort.SliceStable(characters, func(i, j int) bool {
		if characters[i].UpdatedAt != characters[j].UpdatedAt {
			return characters[i].UpdatedAt > characters[j].UpdatedAt
		}
		return characters[i].ID < characters[j].ID
	})

	return &ListByOwnerOutput{Characters: characters}, nil
}

// listByIndex loads every record named by a set, dropping ids whose record is gone
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*coc.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get investigators from index %s", indexKey)
	}

	characters := make([]*coc.Character, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "investigator not found, cleaning up index",
					"investigator_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get investigator %s", id)
		}
		characters = append(characters, out.Character)
	}

	return characters, nil
}

func (r *redisRepository) GetOccupationStat(
	ctx context.Context,
	input GetOccupationStatInput,
) (*GetOccupationStatOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	raw, err := r.client.Get(ctx, statKey(input.ID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return &GetOccupationStatOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get occupation stat")
	}

	stat, ok := coc.ParseCharacteristic(raw)
	if !ok {
		slog.WarnContext(ctx, "ignoring unreadable occupation stat",
			"investigator_id", input.ID,
			"value", raw)
		return &GetOccupationStatOutput{}, nil
	}

	return &GetOccupationStatOutput{Stat: stat}, nil
}

func (r *redisRepository) SetOccupationStat(
	ctx context.Context,
	input SetOccupationStatInput,
) (*SetOccupationStatOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := statKey(input.ID)
	if input.Stat == "" {
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to clear occupation stat")
		}
		return &SetOccupationStatOutput{}, nil
	}

	if _, ok := coc.ParseCharacteristic(string(input.Stat)); !ok {
		return nil, errors.InvalidArgumentf(errStatNotParsed, input.Stat)
	}

	if err := r.client.Set(ctx, key, string(input.Stat), 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store occupation stat")
	}

	return &SetOccupationStatOutput{}, nil
}
