package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/protocols-go/internal/model"
	"github.com/mcoot/protocols-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Starship operations

// saveStarshipScript stores the record and, on first save only, indexes the
// ID under the next registration sequence number.
// KEYS: record, index, sequence. ARGV: data, id.
var saveStarshipScript = redis.NewScript(`
redis.call("SET", KEYS[1], ARGV[1])
if not redis.call("ZSCORE", KEYS[2], ARGV[2]) then
	local seq = redis.call("INCR", KEYS[3])
	redis.call("ZADD", KEYS[2], seq, ARGV[2])
end
return 1
`)

func (s *Storage) SaveStarship(ctx context.Context, ship *model.Starship) error {
	data, err := json.Marshal(ship)
	if err != nil {
		return err
	}

	keys := []string{starshipKey(ship.ID), starshipIndexKey(), starshipSeqKey()}
	return saveStarshipScript.Run(ctx, s.client, keys, data, string(ship.ID)).Err()
}

func (s *Storage) GetStarship(ctx context.Context, id model.StarshipID) (*model.Starship, error) {
	data, err := s.client.Get(ctx, starshipKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStarshipNotFound
		}
		return nil, err
	}

	var ship model.Starship
	if err := json.Unmarshal(data, &ship); err != nil {
		return nil, err
	}
	return &ship, nil
}

func (s *Storage) ListStarships(ctx context.Context) ([]*model.Starship, error) {
	ids, err := s.client.ZRange(ctx, starshipIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Starship{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = starshipKey(model.StarshipID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	ships := make([]*model.Starship, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Index entry without a record
		}
		var ship model.Starship
		if err := json.Unmarshal([]byte(str), &ship); err != nil {
			continue // Skip invalid data
		}
		ships = append(ships, &ship)
	}

	return ships, nil
}

// Roll operations

func (s *Storage) SaveRoll(ctx context.Context, roll *model.Roll) error {
	data, err := json.Marshal(roll)
	if err != nil {
		return err
	}

	key := rollsKey()
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, storage.MaxRollHistory-1)
	if s.cfg.RollTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.RollTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListRolls(ctx context.Context, limit int) ([]*model.Roll, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	values, err := s.client.LRange(ctx, rollsKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}

	rolls := make([]*model.Roll, 0, len(values))
	for _, val := range values {
		var roll model.Roll
		if err := json.Unmarshal([]byte(val), &roll); err != nil {
			continue // Skip invalid data
		}
		rolls = append(rolls, &roll)
	}
	return rolls, nil
}
