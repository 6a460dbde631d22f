package dal

import (
	"time"
)

func testUser(chatID int64) User {
	return User{
		ChatID:   chatID,
		Region:   "Львівська область",
		Queue:    "1.1",
		Settings: DefaultSettings(),
	}
}

func (s *BoltDBTestSuite) TestBoltDB_PutGetUser() {
	_, found, err := s.store.GetUser(1)
	s.Require().NoError(err)
	s.Require().False(found)

	s.Require().NoError(s.store.PutUser(testUser(1)))

	actual, found, err := s.store.GetUser(1)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(int64(1), actual.ChatID)
	s.Equal("Львівська область", actual.Region)
	s.Equal("1.1", actual.Queue)
	s.Equal(ModeNormal, actual.Mode, "empty mode must default to normal")
	s.Equal(DefaultSettings(), actual.Settings)
	s.Equal(s.now.Now(), actual.CreatedAt.UTC())
}

func (s *BoltDBTestSuite) TestBoltDB_PutUser_PreservesCreatedAt() {
	s.Require().NoError(s.store.PutUser(testUser(1)))
	first, _, err := s.store.GetUser(1)
	s.Require().NoError(err)

	s.now.Set(s.now.Now().Add(48 * time.Hour))

	u := testUser(1)
	u.Queue = "2.2"
	u.CreatedAt = s.now.Now() // caller-provided value must be ignored
	s.Require().NoError(s.store.PutUser(u))

	actual, _, err := s.store.GetUser(1)
	s.Require().NoError(err)
	s.Equal("2.2", actual.Queue)
	s.Equal(first.CreatedAt, actual.CreatedAt)
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteUser() {
	s.Require().NoError(s.store.PutUser(testUser(1)))
	s.Require().NoError(s.store.DeleteUser(1))

	_, found, err := s.store.GetUser(1)
	s.Require().NoError(err)
	s.False(found)

	// deleting a missing user is not an error
	s.Require().NoError(s.store.DeleteUser(42))
}

func (s *BoltDBTestSuite) TestBoltDB_CountUsers() {
	count, err := s.store.CountUsers()
	s.Require().NoError(err)
	s.Require().Equal(0, count)

	s.Require().NoError(s.store.PutUser(testUser(1)))
	s.Require().NoError(s.store.PutUser(testUser(2)))
	s.Require().NoError(s.store.PutUser(testUser(1))) // same chat ID

	count, err = s.store.CountUsers()
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *BoltDBTestSuite) TestBoltDB_GetSubscriptionPairs() {
	pairs, err := s.store.GetSubscriptionPairs()
	s.Require().NoError(err)
	s.Require().Empty(pairs)

	u1 := testUser(1)
	u2 := testUser(2) // same pair as u1
	u3 := testUser(3)
	u3.Queue = "3.2"
	u4 := testUser(4) // not fully subscribed yet
	u4.Queue = ""

	for _, u := range []User{u1, u2, u3, u4} {
		s.Require().NoError(s.store.PutUser(u))
	}

	pairs, err = s.store.GetSubscriptionPairs()
	s.Require().NoError(err)
	s.Len(pairs, 2)
	s.Contains(pairs, SubscriptionPair{Region: "Львівська область", Queue: "1.1"})
	s.Contains(pairs, SubscriptionPair{Region: "Львівська область", Queue: "3.2"})
}

func (s *BoltDBTestSuite) TestBoltDB_GetUsersByPair() {
	u1 := testUser(1)
	u2 := testUser(2)
	u3 := testUser(3)
	u3.Queue = "3.2"

	for _, u := range []User{u1, u2, u3} {
		s.Require().NoError(s.store.PutUser(u))
	}

	users, err := s.store.GetUsersByPair("Львівська область", "1.1")
	s.Require().NoError(err)
	s.Require().Len(users, 2)

	users, err = s.store.GetUsersByPair("Львівська область", "3.2")
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(int64(3), users[0].ChatID)

	users, err = s.store.GetUsersByPair("Київська область", "1.1")
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *BoltDBTestSuite) TestBoltDB_SetUserMode() {
	s.Require().Error(s.store.SetUserMode(1, ModeSupport), "missing user must error")

	s.Require().NoError(s.store.PutUser(testUser(1)))
	s.Require().NoError(s.store.SetUserMode(1, ModeSupport))

	actual, _, err := s.store.GetUser(1)
	s.Require().NoError(err)
	s.Equal(ModeSupport, actual.Mode)
}
