package orientation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/immerseindia/backend/domain"
)

// Store persists per-image orientation records in BoltDB so classifications
// survive restarts. Reads are served from an in-memory index loaded at open
// time; the classifier fills the index in as images are fetched and decoded.
type Store struct {
	db     *bolt.DB
	bucket []byte

	mu    sync.RWMutex
	index map[string]domain.Orientation
}

type record struct {
	ImageID      string             `json:"image_id"`
	Orientation  domain.Orientation `json:"orientation"`
	ClassifiedAt time.Time          `json:"classified_at"`
}

// Open initializes the BoltDB file, ensures the bucket exists and loads the
// in-memory index.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	bucket := []byte("orientations")
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{
		db:     db,
		bucket: bucket,
		index:  make(map[string]domain.Orientation),
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).ForEach(func(k, v []byte) error {
			var rec record
			if err := json.Unmarshal(v, &rec); err != nil {
				return nil
			}
			if rec.Orientation.Valid() {
				s.index[string(k)] = rec.Orientation
			}
			return nil
		})
	})
}

// Get reports the recorded orientation for an image, if classified.
func (s *Store) Get(imageID string) (domain.Orientation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.index[imageID]
	return o, ok
}

// Set records an image's orientation and persists it.
func (s *Store) Set(imageID string, o domain.Orientation) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	payload, err := json.Marshal(record{
		ImageID:      imageID,
		Orientation:  o,
		ClassifiedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(imageID), payload)
	}); err != nil {
		return err
	}

	s.mu.Lock()
	s.index[imageID] = o
	s.mu.Unlock()
	return nil
}

// Delete drops a record, used when an image leaves the catalog.
func (s *Store) Delete(imageID string) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(imageID))
	}); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.index, imageID)
	s.mu.Unlock()
	return nil
}

// Size returns the number of classified images.
func (s *Store) Size() (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
