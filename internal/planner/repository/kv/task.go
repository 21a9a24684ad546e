package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"weekly-planner/internal/model"
)

func bucketKey(dateKey string) string {
	return taskNamespace + ":" + dateKey
}

// GetBucket returns the day bucket stored under dateKey. Missing keys and
// malformed records read as an empty bucket; this method never fails.
func (r *Repository) GetBucket(ctx context.Context, dateKey string) model.DayBucket {
	key := bucketKey(dateKey)

	if cached, ok := r.cache.Get(key); ok {
		return cloneBucket(cached)
	}

	bucket := r.readBucket(ctx, key)
	r.cache.Add(key, cloneBucket(bucket))
	return bucket
}

// UpdateBucket applies mutate to the current bucket and persists the result
// as one whole record. The cycle is serialized per date key.
func (r *Repository) UpdateBucket(ctx context.Context, dateKey string, mutate func(model.DayBucket) model.DayBucket) error {
	key := bucketKey(dateKey)

	lock := r.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	bucket := mutate(r.readBucket(ctx, key))

	data, err := json.Marshal(bucket)
	if err != nil {
		return fmt.Errorf("marshal bucket %s: %w", dateKey, err)
	}
	if err := r.store.Set(key, data); err != nil {
		return fmt.Errorf("save bucket %s: %w", dateKey, err)
	}

	r.cache.Add(key, cloneBucket(bucket))
	return nil
}

func (r *Repository) readBucket(ctx context.Context, key string) model.DayBucket {
	data, ok := r.store.Get(key)
	if !ok {
		return model.DayBucket{}
	}

	var bucket model.DayBucket
	if err := json.Unmarshal(data, &bucket); err != nil {
		r.l.Warnf(ctx, "kv.readBucket: malformed record at %s, treating as empty: %v", key, err)
		return model.DayBucket{}
	}
	return bucket
}

// cloneBucket guards the cache against aliasing: callers and mutate funcs
// receive their own slice.
func cloneBucket(b model.DayBucket) model.DayBucket {
	out := make(model.DayBucket, len(b))
	copy(out, b)
	return out
}
