package memory

import (
	"time"

	"matcha-match-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SentimentCacheRepository keeps the most recent sentiment per session token
// so repeat requests in the same conversation skip a database round trip.
type SentimentCacheRepository struct {
	cache *cache.Cache
}

func NewSentimentCacheRepository() *SentimentCacheRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SentimentCacheRepository{
		cache: c,
	}
}

func (r *SentimentCacheRepository) Save(sessionToken string, result *entity.SentimentResult) {
	r.cache.Set(sessionToken, result, cache.DefaultExpiration)
}

func (r *SentimentCacheRepository) Get(sessionToken string) (*entity.SentimentResult, bool) {
	if x, found := r.cache.Get(sessionToken); found {
		return x.(*entity.SentimentResult), true
	}
	return nil, false
}

func (r *SentimentCacheRepository) Delete(sessionToken string) {
	r.cache.Delete(sessionToken)
}
