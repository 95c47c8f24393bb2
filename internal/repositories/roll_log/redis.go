package rolllog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/coc-api/internal/redis"
)

const (
	// Key pattern: roll_log:{investigator_id}
	logKeyPrefix = "roll_log:"

	// DefaultTTL applies when neither the config nor the input sets one
	DefaultTTL = 24 * time.Hour

	// MaxEntries caps the log, the oldest rolls are dropped first
	MaxEntries = 200

	errInvestigatorIDEmpty = "investigator ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed roll log repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.InvestigatorID == "" {
		return nil, errors.InvalidArgument(errInvestigatorIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	log, err := r.load(ctx, input.InvestigatorID, now)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if log == nil {
		log = &RollLog{
			InvestigatorID: input.InvestigatorID,
			Entries:        []Entry{},
			CreatedAt:      now,
		}
	}

	next := len(log.Entries)
	if n := len(log.Entries); n > 0 {
		next = max(next, entrySeq(log.Entries[n-1].ID))
	}
	for _, e := range input.Entries {
		next++
		if e.ID == "" {
			e.ID = fmt.Sprintf("roll_%d", next)
		}
		if e.RolledAt.IsZero() {
			e.RolledAt = now
		}
		e.Dice = append([]int(nil), e.Dice...)
		log.Entries = append(log.Entries, e)
	}
	if over := len(log.Entries) - MaxEntries; over > 0 {
		log.Entries = append([]Entry(nil), log.Entries[over:]...)
	}
	log.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(log)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll log")
	}

	if err := r.client.Set(ctx, r.buildKey(input.InvestigatorID), data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store roll log in Redis")
	}

	return &AppendOutput{Log: log}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.InvestigatorID == "" {
		return nil, errors.InvalidArgument(errInvestigatorIDEmpty)
	}

	log, err := r.load(ctx, input.InvestigatorID, r.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GetOutput{Log: log}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.InvestigatorID == "" {
		return nil, errors.InvalidArgument(errInvestigatorIDEmpty)
	}

	var deleted int
	if log, err := r.load(ctx, input.InvestigatorID, r.clock.Now()); err == nil {
		deleted = len(log.Entries)
	}

	if err := r.client.Del(ctx, r.buildKey(input.InvestigatorID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roll log from Redis")
	}

	return &ClearOutput{EntriesDeleted: deleted}, nil
}

// load reads a log, treating one past its ExpiresAt as missing
func (r *redisRepository) load(ctx context.Context, investigatorID string, now time.Time) (*RollLog, error) {
	key := r.buildKey(investigatorID)

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFound("roll log not found").WithMeta("investigator_id", investigatorID)
		}
		return nil, errors.Wrapf(err, "failed to get roll log from Redis")
	}

	var log RollLog
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal roll log")
	}

	if now.After(log.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("roll log has expired").WithMeta("investigator_id", investigatorID)
	}

	return &log, nil
}

func (r *redisRepository) buildKey(investigatorID string) string {
	return logKeyPrefix + investigatorID
}

// entrySeq reads the counter back out of a generated id, 0 for foreign ids
func entrySeq(id string) int {
	var n int
	if _, err := fmt.Sscanf(id, "roll_%d", &n); err != nil {
		return 0
	}
	return n
}
