package kvstore

import (
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Options configures the disk-backed store.
type Options struct {
	BasePath     string
	CacheSizeMax uint64
}

type diskStore struct {
	d *diskv.Diskv
}

// NewDisk returns a Store persisted under BasePath, one file per key.
// Namespace segments of the key (split on ':') become directories, so
// "myday:2024-05-15" lands at <base>/myday/2024-05-15.
func NewDisk(opts Options) Store {
	cacheSize := opts.CacheSizeMax
	if cacheSize == 0 {
		cacheSize = 1024 * 1024 // 1MB
	}
	return &diskStore{d: diskv.New(diskv.Options{
		BasePath:          opts.BasePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      cacheSize,
	})}
}

func (s *diskStore) Get(key string) ([]byte, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return nil, false
	}
	return val, true
}

func (s *diskStore) Set(key string, value []byte) error {
	return s.d.Write(key, value)
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, ":")
	last := len(parts) - 1
	return &diskv.PathKey{
		Path:     parts[:last],
		FileName: parts[last],
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	if len(pk.Path) == 0 {
		return pk.FileName
	}
	return strings.Join(pk.Path, ":") + ":" + pk.FileName
}
