// Package kvbackend provides key-value backends for the identifier store.
//
// Keys have the layout bucket/key, where the bucket is everything up to the
// last slash. The Bolt backend maps buckets to bolt buckets; the Memory
// backend mirrors the same layout for tests.
package kvbackend

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"context"

	"github.com/pkg/errors"
	"github.com/weft/weft/storage"
	bolt "go.etcd.io/bbolt"
)

// Bolt stores key-value pairs in a bolt database file.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens the database at the default location (~/.weft/ids.db),
// creating the file and directory if they do not exist.
func NewBolt() (*Bolt, error) {
	u, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	return NewBoltWithFile(filepath.Join(u.HomeDir, ".weft", "ids.db"))
}

// NewBoltWithFile creates and opens a database at the given path. If the
// file or directory do not exist, they are created.
func NewBoltWithFile(file string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, errors.Wrapf(err, "ensure dir exists: %s", filepath.Dir(file))
	}
	db, err := bolt.Open(file, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt db")
	}
	return &Bolt{db: db}, nil
}

// Close closes the database and releases all resources.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Put creates or updates a value.
func (b *Bolt) Put(ctx context.Context, key string, value []byte) error {
	bucket, k, err := splitKey(key)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		buc, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return errors.Wrap(err, "ensure bucket exists")
		}
		return buc.Put([]byte(k), value)
	})
}

// Get returns a single value.
func (b *Bolt) Get(ctx context.Context, key string) ([]byte, error) {
	bucket, k, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	var ret []byte
	if err := b.db.View(func(tx *bolt.Tx) error {
		buc := tx.Bucket([]byte(bucket))
		if buc == nil {
			return storage.ErrNotFound
		}
		data := buc.Get([]byte(k))
		if len(data) == 0 {
			return storage.ErrNotFound
		}
		ret = make([]byte, len(data))
		copy(ret, data)
		return nil
	}); err != nil {
		return nil, err
	}
	return ret, nil
}

// Delete deletes a key.
func (b *Bolt) Delete(ctx context.Context, key string) error {
	bucket, k, err := splitKey(key)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		buc := tx.Bucket([]byte(bucket))
		if buc == nil {
			return storage.ErrNotFound
		}
		if len(buc.Get([]byte(k))) == 0 {
			return storage.ErrNotFound
		}
		return errors.Wrap(buc.Delete([]byte(k)), "delete key")
	})
}

// Scan returns all values in the bucket named by prefix. The prefix must
// name a bucket exactly, without a trailing slash.
func (b *Bolt) Scan(ctx context.Context, prefix string) (map[string][]byte, error) {
	if strings.HasSuffix(prefix, "/") {
		return nil, errors.New("prefix should not contain trailing /")
	}
	ret := make(map[string][]byte)
	err := b.db.View(func(tx *bolt.Tx) error {
		buc := tx.Bucket([]byte(prefix))
		if buc == nil {
			return nil
		}
		return buc.ForEach(func(k, v []byte) error { // nolint: unparam
			val := make([]byte, len(v))
			copy(val, v)
			ret[prefix+"/"+string(k)] = val
			return nil
		})
	})
	return ret, err
}

// splitKey splits a user key into its bucket and in-bucket key. The bucket
// is everything up to the last slash.
func splitKey(input string) (bucket, key string, err error) {
	if strings.HasPrefix(input, "/") || strings.HasSuffix(input, "/") {
		return "", "", errors.Errorf("invalid key %q", input)
	}
	slash := strings.LastIndex(input, "/")
	if slash == -1 {
		return "", "", errors.Errorf("key %q does not contain a bucket", input)
	}
	return input[:slash], input[slash+1:], nil
}
