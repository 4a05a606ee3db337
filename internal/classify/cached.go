package classify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/ppiankov/labelguard/internal/cache"
	"github.com/ppiankov/labelguard/internal/model"
)

// CachedClassifier memoizes results so that repeating a text does not repeat
// the remote call. Errors are never cached.
type CachedClassifier struct {
	next  Classifier
	store cache.Cache
	ttl   time.Duration
	model string
}

// NewCached wraps next with a result cache. modelName takes part in the key so
// switching models does not serve stale answers.
func NewCached(next Classifier, store cache.Cache, ttl time.Duration, modelName string) *CachedClassifier {
	return &CachedClassifier{
		next:  next,
		store: store,
		ttl:   ttl,
		model: modelName,
	}
}

func (c *CachedClassifier) Name() string {
	return c.next.Name()
}

func (c *CachedClassifier) IsAvailable(ctx context.Context) bool {
	return c.next.IsAvailable(ctx)
}

func (c *CachedClassifier) Classify(ctx context.Context, req Request) (*model.ClassificationResult, error) {
	key := cache.Key(c.next.Name(), c.model, strings.Join(req.Labels, "\x1f"), req.Text)

	if data, ok := c.store.Get(key); ok {
		var res model.ClassificationResult
		if err := json.Unmarshal(data, &res); err == nil {
			return &res, nil
		}
		_ = c.store.Delete(key)
	}

	res, err := c.next.Classify(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(res); err == nil {
		// A failed cache write only costs a future remote call.
		_ = c.store.Set(key, data, c.ttl)
	}

	return res, nil
}
