package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

// PreferencesRepository stores the preferences document as JSON under a single key.
type PreferencesRepository struct {
	pool   *redis.Pool
	key    string
	logger *zap.SugaredLogger
}

func NewPreferencesRepository(pool *redis.Pool, key string, logger *zap.SugaredLogger) *PreferencesRepository {
	return &PreferencesRepository{
		pool:   pool,
		key:    key,
		logger: logger,
	}
}

func (r *PreferencesRepository) GetPreferences(ctx context.Context) (*model.NotificationPreferences, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	data, err := redis.Bytes(conn.Do("GET", r.key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("redis GET: %w", err)
	}

	var prefs model.NotificationPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}

	return &prefs, nil
}

func (r *PreferencesRepository) SavePreferences(ctx context.Context, prefs *model.NotificationPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	if _, err := conn.Do("SET", r.key, data); err != nil {
		return fmt.Errorf("redis SET: %w", err)
	}

	return nil
}

func (r *PreferencesRepository) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		r.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
