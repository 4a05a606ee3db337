package classify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ppiankov/labelguard/internal/cache"
	"github.com/ppiankov/labelguard/internal/model"
)

func TestCachedClassifier_MemoizesResults(t *testing.T) {
	inner := &fakeClassifier{result: &model.ClassificationResult{Label: "joy", Confidence: 0.95}, available: true}
	c := NewCached(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute, "m1")

	req := Request{Text: "I love this!", Labels: testLabels}
	for i := 0; i < 3; i++ {
		res, err := c.Classify(context.Background(), req)
		if err != nil {
			t.Fatalf("classify: %v", err)
		}
		if res.Label != "joy" || res.Confidence != 0.95 {
			t.Fatalf("unexpected result %+v", res)
		}
	}

	if inner.callCount() != 1 {
		t.Errorf("expected one upstream call, got %d", inner.callCount())
	}
	if c.Name() != "fake" || !c.IsAvailable(context.Background()) {
		t.Error("expected Name and IsAvailable to delegate")
	}
}

func TestCachedClassifier_KeyIncludesTextAndLabels(t *testing.T) {
	inner := &fakeClassifier{result: &model.ClassificationResult{Label: "joy", Confidence: 0.95}}
	c := NewCached(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute, "m1")
	ctx := context.Background()

	_, _ = c.Classify(ctx, Request{Text: "a", Labels: testLabels})
	_, _ = c.Classify(ctx, Request{Text: "b", Labels: testLabels})
	_, _ = c.Classify(ctx, Request{Text: "a", Labels: model.NewLabelSet("joy")})

	if inner.callCount() != 3 {
		t.Errorf("expected three distinct upstream calls, got %d", inner.callCount())
	}
}

func TestCachedClassifier_DoesNotCacheErrors(t *testing.T) {
	inner := &fakeClassifier{err: errors.New("boom")}
	c := NewCached(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute, "")

	for i := 0; i < 2; i++ {
		if _, err := c.Classify(context.Background(), Request{Text: "meh"}); err == nil {
			t.Fatal("expected error")
		}
	}
	if inner.callCount() != 2 {
		t.Errorf("expected errors to bypass the cache, got %d calls", inner.callCount())
	}
}

func TestCachedClassifier_CorruptEntryIsRefetched(t *testing.T) {
	store := cache.NewMemoryCache(time.Minute, time.Minute)
	inner := &fakeClassifier{result: &model.ClassificationResult{Label: "neutral", Confidence: 0.4}}
	c := NewCached(inner, store, time.Minute, "")

	req := Request{Text: "meh", Labels: testLabels}
	key := cache.Key("fake", "", "anger\x1fjoy\x1fneutral", "meh")
	_ = store.Set(key, []byte("garbage"), 0)

	res, err := c.Classify(context.Background(), req)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if res.Label != "neutral" || inner.callCount() != 1 {
		t.Errorf("expected refetch, got %+v after %d calls", res, inner.callCount())
	}
}
