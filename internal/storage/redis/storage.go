package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/qrhunt/internal/model"
	"github.com/mcoot/qrhunt/internal/storage"
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
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
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

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	username := player.Username()
	indexKey := playersIndexKey()

	// First save assigns a registration sequence number; later saves keep it
	_, err = s.client.ZScore(ctx, indexKey, username).Result()
	newPlayer := errors.Is(err, redis.Nil)
	if err != nil && !newPlayer {
		return err
	}

	var seq int64
	if newPlayer {
		seq, err = s.client.Incr(ctx, playerSeqKey()).Result()
		if err != nil {
			return err
		}
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, playerKey(username), data, 0)
	if newPlayer {
		pipe.ZAddNX(ctx, indexKey, redis.Z{Score: float64(seq), Member: username})
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, username string) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	usernames, err := s.client.ZRange(ctx, playersIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(usernames) == 0 {
		return []*model.Player{}, nil
	}

	keys := make([]string, len(usernames))
	for i, username := range usernames {
		keys[i] = playerKey(username)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Player deleted between ZRANGE and MGET
		}
		var player model.Player
		if err := json.Unmarshal([]byte(str), &player); err != nil {
			return nil, err
		}
		players = append(players, &player)
	}

	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, username string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, playerKey(username))
	pipe.ZRem(ctx, playersIndexKey(), username)
	_, err := pipe.Exec(ctx)
	return err
}

// QR code catalog operations

func (s *Storage) SaveQRCode(ctx context.Context, code model.QRCode) error {
	if code.Hash == "" {
		return model.ErrInvalidQRCode
	}

	data, err := json.Marshal(code)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, qrCodeKey(code.Hash), data, 0)
	pipe.SAdd(ctx, qrCodesIndexKey(), code.Hash)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetQRCode(ctx context.Context, hash string) (model.QRCode, error) {
	data, err := s.client.Get(ctx, qrCodeKey(hash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.QRCode{}, model.ErrQRCodeNotFound
		}
		return model.QRCode{}, err
	}

	var code model.QRCode
	if err := json.Unmarshal(data, &code); err != nil {
		return model.QRCode{}, err
	}
	return code, nil
}

func (s *Storage) ListQRCodes(ctx context.Context) ([]model.QRCode, error) {
	hashes, err := s.client.SMembers(ctx, qrCodesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(hashes) == 0 {
		return []model.QRCode{}, nil
	}

	sort.Strings(hashes)
	keys := make([]string, len(hashes))
	for i, hash := range hashes {
		keys[i] = qrCodeKey(hash)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	codes := make([]model.QRCode, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue
		}
		var code model.QRCode
		if err := json.Unmarshal([]byte(str), &code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	return codes, nil
}
