package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Supported display languages.
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// PreferencesRepository persists per-session display preferences alongside
// the cart. Currently that is only the selected language.
type PreferencesRepository interface {
	GetLanguage(ctx context.Context, sessionID string) (string, error)
	SetLanguage(ctx context.Context, sessionID, language string) error
}

type RedisPreferencesRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPreferencesRepository(client *redis.Client, ttl time.Duration) *RedisPreferencesRepository {
	return &RedisPreferencesRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisPreferencesRepository) key(sessionID string) string {
	return fmt.Sprintf("prefs:session:%s:language", sessionID)
}

// GetLanguage returns the stored language for a session, defaulting to
// English when nothing is stored.
func (r *RedisPreferencesRepository) GetLanguage(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return LanguageEnglish, nil
	}
	if err != nil {
		return "", err
	}
	if val != LanguageArabic && val != LanguageEnglish {
		return LanguageEnglish, nil
	}
	return val, nil
}

func (r *RedisPreferencesRepository) SetLanguage(ctx context.Context, sessionID, language string) error {
	if language != LanguageArabic && language != LanguageEnglish {
		return fmt.Errorf("unsupported language %q", language)
	}
	return r.client.Set(ctx, r.key(sessionID), language, r.ttl).Err()
}
