package store

import (
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"

	"github.com/synergylabs/auditchain/model"
)

const (
	ledgerBucket = "ledger"
	snapshotKey  = "snapshot"
)

// Store persists the exported chain snapshot in a bbolt file so the
// ledger survives process restarts. The whole snapshot is written as one
// value; the ledger itself stays the source of truth while running.
type Store struct {
	db  *bolt.DB
	log zerolog.Logger
}

// Open opens (or creates) the snapshot database at path.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(ledgerBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, log: log.With().Str("store", path).Logger()}, nil
}

// SaveSnapshot overwrites the persisted chain.
func (s *Store) SaveSnapshot(snap model.Snapshot) error {
	enc, err := snap.Marshal()
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ledgerBucket)).Put([]byte(snapshotKey), enc)
	})
	if err != nil {
		return err
	}
	s.log.Debug().Int("blocks", len(snap.Chain)).Msg("snapshot saved")
	return nil
}

// LoadSnapshot returns the persisted chain. ok is false when nothing has
// been saved yet.
func (s *Store) LoadSnapshot() (snap model.Snapshot, ok bool, err error) {
	var raw []byte
	err = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(ledgerBucket)).Get([]byte(snapshotKey))
		if v != nil {
			// Copy out: bbolt values are only valid inside the tx.
			raw = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return model.Snapshot{}, false, err
	}
	snap, err = model.ParseSnapshot(raw)
	if err != nil {
		return model.Snapshot{}, false, err
	}
	return snap, true, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}
