package classify

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/ppiankov/labelguard/internal/model"
)

// RateLimitedClassifier throttles calls to a remote classifier
type RateLimitedClassifier struct {
	next    Classifier
	limiter *rate.Limiter
}

// NewRateLimited wraps next with a token bucket. A non-positive rate disables
// throttling.
func NewRateLimited(next Classifier, requestsPerSecond float64, burst int) *RateLimitedClassifier {
	if burst <= 0 {
		burst = 5
	}

	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}

	return &RateLimitedClassifier{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *RateLimitedClassifier) Name() string {
	return c.next.Name()
}

func (c *RateLimitedClassifier) IsAvailable(ctx context.Context) bool {
	return c.next.IsAvailable(ctx)
}

// Classify waits for a token, then delegates
func (c *RateLimitedClassifier) Classify(ctx context.Context, req Request) (*model.ClassificationResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return c.next.Classify(ctx, req)
}
