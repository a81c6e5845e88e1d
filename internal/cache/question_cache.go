package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/askboard/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// QuestionCache holds the full-question listing so /question/all doesn't
// hit the database on every request. Mutations invalidate; lookups that
// fail fall through to the database.
type QuestionCache interface {
	GetAll() ([]models.Question, bool)
	SetAll(questions []models.Question) error
	Invalidate() error
	Close() error
}

const questionsKey = "questions:all"

// RedisQuestionCache implements QuestionCache on a single Redis key
// holding the JSON-encoded listing.
type RedisQuestionCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewRedisQuestionCache(redisURL string, ttl time.Duration) (*RedisQuestionCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisQuestionCache{
		client: client,
		ctx:    ctx,
		ttl:    ttl,
	}, nil
}

func (c *RedisQuestionCache) GetAll() ([]models.Question, bool) {
	data, err := c.client.Get(c.ctx, questionsKey).Bytes()
	if err != nil {
		// redis.Nil is an ordinary miss; anything else degrades to a miss too
		return nil, false
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, false
	}

	return questions, true
}

func (c *RedisQuestionCache) SetAll(questions []models.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}

	return c.client.Set(c.ctx, questionsKey, data, c.ttl).Err()
}

func (c *RedisQuestionCache) Invalidate() error {
	err := c.client.Del(c.ctx, questionsKey).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

func (c *RedisQuestionCache) Close() error {
	return c.client.Close()
}
