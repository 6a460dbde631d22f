package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	usersBucket = "users"
	statsBucket = "daily_stats"
)

type Clock interface {
	Now() time.Time
}

// BoltDB is the storage collaborator: the user registry with notification
// preferences and the daily off-hours statistics.
type BoltDB struct {
	db    *bbolt.DB
	clock Clock
}

func NewBoltDB(path string, clock Clock) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, nil) //nolint:mnd
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := initBuckets(db, usersBucket, statsBucket); err != nil {
		return nil, err
	}

	return &BoltDB{db: db, clock: clock}, nil
}

// Path returns the on-disk database location (used by the backup task).
func (s *BoltDB) Path() string {
	return s.db.Path()
}

func (s *BoltDB) Close() error {
	return s.db.Close() //nolint:wrapcheck // plain passthrough
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}

func initBuckets(db *bbolt.DB, names ...string) error {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range names {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("init buckets: %w", err)
	}
	return nil
}
