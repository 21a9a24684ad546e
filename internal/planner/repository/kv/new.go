package kv

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"weekly-planner/internal/model"
	"weekly-planner/internal/planner/repository"
	"weekly-planner/pkg/kvstore"
	pkgLog "weekly-planner/pkg/log"
)

// Key layout on the persistence surface.
const (
	taskNamespace   = "myday"
	plannerItemsKey = "planner:items"
)

// Hot-bucket read cache. Small and short-lived: the UI re-reads today's
// bucket on every interaction.
const (
	bucketCacheSize = 64
	bucketCacheTTL  = time.Minute
)

// Repository implements repository.Repository on top of a kvstore.Store.
type Repository struct {
	store kvstore.Store
	l     pkgLog.Logger
	cache *expirable.LRU[string, model.DayBucket]

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var _ repository.Repository = (*Repository)(nil)

// New creates a kv-backed planner repository.
func New(store kvstore.Store, l pkgLog.Logger) *Repository {
	return &Repository{
		store: store,
		l:     l,
		cache: expirable.NewLRU[string, model.DayBucket](bucketCacheSize, nil, bucketCacheTTL),
		locks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing read-modify-write cycles on key.
// One mutex per key: updates to distinct buckets never block each other.
func (r *Repository) lockFor(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}
