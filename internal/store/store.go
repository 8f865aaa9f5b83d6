package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"

	"github.com/metforge/steelctl/internal/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	bucketSession = []byte("session")
	bucketCart    = []byte("cart")
	bucketCache   = []byte("cache")

	keyToken = []byte("token")
	keyUser  = []byte("user")
	keyItems = []byte("items")
)

// Store is the durable client-side state file. It holds the authenticated
// session, the pending order cart and cached reference data, all in a single
// bbolt database so multi-key writes commit atomically.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the state database at path. Parent directories are
// created as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketSession, bucketCart, bucketCache} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init state db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSession persists the session. The raw token and the session object are
// written in one transaction so a crash can never leave one without the
// other.
func (s *Store) SaveSession(sess session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put(keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return b.Put(keyUser, data)
	})
}

// LoadSession returns the persisted session. A half-written pair, where the
// token or the session object is present without the other, is treated as
// absent and purged.
func (s *Store) LoadSession() (session.Session, bool, error) {
	var (
		sess    session.Session
		ok      bool
		corrupt bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		token := b.Get(keyToken)
		user := b.Get(keyUser)
		if token == nil && user == nil {
			return nil
		}
		if token == nil || user == nil {
			corrupt = true
			return nil
		}
		if err := json.Unmarshal(user, &sess); err != nil {
			corrupt = true
			return nil
		}
		if sess.Token != string(token) {
			corrupt = true
			return nil
		}
		ok = true
		return nil
	})
	if err != nil {
		return session.Session{}, false, err
	}
	if corrupt {
		if err := s.ClearSession(); err != nil {
			return session.Session{}, false, err
		}
		return session.Session{}, false, nil
	}
	return sess, ok, nil
}

// ClearSession removes both session keys in one transaction.
func (s *Store) ClearSession() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Delete(keyToken); err != nil {
			return err
		}
		return b.Delete(keyUser)
	})
}

// SaveCart persists the pending cart contents.
func (s *Store) SaveCart(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCart).Put(keyItems, data)
	})
}

// LoadCart decodes the persisted cart into out. Returns false when no cart
// has been saved.
func (s *Store) LoadCart(out interface{}) (bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketCart).Get(keyItems); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode cart: %w", err)
	}
	return true, nil
}

// ClearCart drops the persisted cart.
func (s *Store) ClearCart() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCart).Delete(keyItems)
	})
}

// PutCache stores a cached reference object under key.
func (s *Store) PutCache(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache %s: %w", key, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCache).Put([]byte(key), data)
	})
}

// GetCache decodes the cached object under key into out. Returns false when
// the key is absent.
func (s *Store) GetCache(key string, out interface{}) (bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketCache).Get([]byte(key)); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode cache %s: %w", key, err)
	}
	return true, nil
}

// DeleteCache removes the cached object under key.
func (s *Store) DeleteCache(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCache).Delete([]byte(key))
	})
}
