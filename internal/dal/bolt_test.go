package dal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.etcd.io/bbolt"

	"github.com/dima123dm/SvitloMonitorBot/pkg/clock"
)

type BoltDBTestSuite struct {
	suite.Suite
	store *BoltDB
	now   *clock.Mock
}

// SetupSuite runs ONCE before all tests in the suite
func (s *BoltDBTestSuite) SetupSuite() {
	dbPath := filepath.Join(s.T().TempDir(), "test.db")

	s.now = clock.NewMock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	store, err := NewBoltDB(dbPath, s.now)
	s.Require().NoError(err)
	s.store = store
}

// TearDownSuite runs ONCE after all tests
func (s *BoltDBTestSuite) TearDownSuite() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

// TearDownTest runs after EACH test (cleanup data, not DB)
func (s *BoltDBTestSuite) TearDownTest() {
	allBuckets := []string{
		usersBucket,
		statsBucket,
	}
	err := s.store.db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range allBuckets {
			b := tx.Bucket([]byte(bucket))
			s.Require().NotNilf(b, "bucket: %v", bucket)
			c := b.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				s.Require().NoError(b.Delete(k))
			}
		}
		return nil
	})
	s.Require().NoError(err)

	s.now.Set(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
}

func TestBoltDBTestSuite(t *testing.T) {
	suite.Run(t, new(BoltDBTestSuite))
}

func (s *BoltDBTestSuite) TestBoltDB_Path() {
	s.Require().Equal(filepath.Base(s.store.Path()), "test.db")
}
