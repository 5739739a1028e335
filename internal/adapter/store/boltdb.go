package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"textsum/internal/domain"
)

var (
	bucketSummaries = []byte("summaries")
	bucketPaths     = []byte("paths")
	bucketMeta      = []byte("meta")
)

// BoltStore persists summary records in a bbolt database. Records are JSON
// encoded under their ID; the paths bucket maps file paths back to IDs.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens or creates the database at path and its buckets.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSummaries, bucketPaths, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// PutSummary stores rec, replacing any record previously stored for its path.
func (s *BoltStore) PutSummary(rec domain.SummaryRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		paths := tx.Bucket(bucketPaths)

		// a path moving to a new ID must not leave the old record behind
		if old := paths.Get([]byte(rec.Path)); old != nil && string(old) != rec.ID {
			if err := tx.Bucket(bucketSummaries).Delete(old); err != nil {
				return err
			}
		}

		if err := tx.Bucket(bucketSummaries).Put([]byte(rec.ID), data); err != nil {
			return err
		}
		return paths.Put([]byte(rec.Path), []byte(rec.ID))
	})
}

// GetSummary returns the record with id or an error wrapping ErrNotFound.
func (s *BoltStore) GetSummary(id string) (domain.SummaryRecord, error) {
	var rec domain.SummaryRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSummaries).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("summary %s: %w", id, domain.ErrNotFound)
		}
		return json.Unmarshal(data, &rec)
	})
	return rec, err
}

// GetSummaryByPath returns the record for a file path or an error wrapping
// ErrNotFound.
func (s *BoltStore) GetSummaryByPath(path string) (domain.SummaryRecord, error) {
	var rec domain.SummaryRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketPaths).Get([]byte(path))
		if id == nil {
			return fmt.Errorf("summary for %s: %w", path, domain.ErrNotFound)
		}
		data := tx.Bucket(bucketSummaries).Get(id)
		if data == nil {
			return fmt.Errorf("summary for %s: %w", path, domain.ErrNotFound)
		}
		return json.Unmarshal(data, &rec)
	})
	return rec, err
}

// DeleteSummary removes the record with id. Missing records are not an error.
func (s *BoltStore) DeleteSummary(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		summaries := tx.Bucket(bucketSummaries)
		data := summaries.Get([]byte(id))
		if data == nil {
			return nil
		}

		var rec domain.SummaryRecord
		if err := json.Unmarshal(data, &rec); err == nil {
			paths := tx.Bucket(bucketPaths)
			if cur := paths.Get([]byte(rec.Path)); cur != nil && string(cur) == id {
				if err := paths.Delete([]byte(rec.Path)); err != nil {
					return err
				}
			}
		}
		return summaries.Delete([]byte(id))
	})
}

// ListSummaries returns every stored record ordered by ID.
func (s *BoltStore) ListSummaries() ([]domain.SummaryRecord, error) {
	var recs []domain.SummaryRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSummaries).ForEach(func(k, v []byte) error {
			var rec domain.SummaryRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("corrupt record %s: %w", k, err)
			}
			recs = append(recs, rec)
			return nil
		})
	})
	return recs, err
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
