package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"ttskit/internal/domain"
)

var bucketSeeds = []byte("seeds")

// BoltSeedStore persists fetched seeds in a small bolt database, one record
// per hour bucket, so repeated CLI runs within the same hour reuse the seed
// instead of refetching it.
type BoltSeedStore struct {
	db *bbolt.DB
}

func NewBoltSeedStore(path string) (*BoltSeedStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open seed db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSeeds)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltSeedStore{db: db}, nil
}

type seedRecord struct {
	First     int64 `json:"first"`
	Second    int64 `json:"second"`
	FetchedAt int64 `json:"fetched_at"`
}

func (s *BoltSeedStore) Get(bucket int64) (domain.Seed, bool, error) {
	var (
		seed  domain.Seed
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSeeds).Get(key(bucket))
		if data == nil {
			return nil
		}
		var rec seedRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		seed = domain.Seed{First: rec.First, Second: rec.Second}
		found = true
		return nil
	})
	return seed, found, err
}

func (s *BoltSeedStore) Put(bucket int64, seed domain.Seed) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		rec := seedRecord{
			First:     seed.First,
			Second:    seed.Second,
			FetchedAt: time.Now().Unix(),
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketSeeds).Put(key(bucket), data)
	})
}

// Invalidate drops every stored seed.
func (s *BoltSeedStore) Invalidate() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketSeeds); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketSeeds)
		return err
	})
}

func (s *BoltSeedStore) Close() error {
	return s.db.Close()
}

func key(bucket int64) []byte {
	return []byte(strconv.FormatInt(bucket, 10))
}
