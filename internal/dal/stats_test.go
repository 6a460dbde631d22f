package dal

func (s *BoltDBTestSuite) TestBoltDB_PutGetDailyStat() {
	_, found, err := s.store.GetOffHours("Львівська область", "1.1", "2026-09-01")
	s.Require().NoError(err)
	s.Require().False(found)

	stat := DailyStat{Date: "2026-09-01", Region: "Львівська область", Queue: "1.1", OffHours: 4.5}
	s.Require().NoError(s.store.PutDailyStat(stat))

	hours, found, err := s.store.GetOffHours("Львівська область", "1.1", "2026-09-01")
	s.Require().NoError(err)
	s.Require().True(found)
	s.InDelta(4.5, hours, 0.001)

	// overwrite for the same day
	stat.OffHours = 6
	s.Require().NoError(s.store.PutDailyStat(stat))

	hours, found, err = s.store.GetOffHours("Львівська область", "1.1", "2026-09-01")
	s.Require().NoError(err)
	s.Require().True(found)
	s.InDelta(6.0, hours, 0.001)
}

func (s *BoltDBTestSuite) TestBoltDB_GetRecentStats() {
	for _, st := range []DailyStat{
		{Date: "2026-08-30", Region: "A", Queue: "1.1", OffHours: 2},
		{Date: "2026-08-28", Region: "A", Queue: "1.1", OffHours: 4},
		{Date: "2026-08-29", Region: "A", Queue: "1.1", OffHours: 3},
		{Date: "2026-08-29", Region: "B", Queue: "1.1", OffHours: 9},
		{Date: "2026-08-29", Region: "A", Queue: "2.1", OffHours: 9},
	} {
		s.Require().NoError(s.store.PutDailyStat(st))
	}

	stats, err := s.store.GetRecentStats("A", "1.1", 7)
	s.Require().NoError(err)
	s.Require().Len(stats, 3)
	s.Equal("2026-08-28", stats[0].Date)
	s.Equal("2026-08-29", stats[1].Date)
	s.Equal("2026-08-30", stats[2].Date)

	stats, err = s.store.GetRecentStats("A", "1.1", 2)
	s.Require().NoError(err)
	s.Require().Len(stats, 2, "limit keeps the most recent records")
	s.Equal("2026-08-29", stats[0].Date)
	s.Equal("2026-08-30", stats[1].Date)

	stats, err = s.store.GetRecentStats("C", "1.1", 7)
	s.Require().NoError(err)
	s.Empty(stats)
}

func (s *BoltDBTestSuite) TestBoltDB_CleanupStats() {
	for _, st := range []DailyStat{
		{Date: "2026-08-20", Region: "A", Queue: "1.1", OffHours: 1},
		{Date: "2026-08-25", Region: "A", Queue: "1.1", OffHours: 2},
		{Date: "2026-08-26", Region: "A", Queue: "1.1", OffHours: 3},
	} {
		s.Require().NoError(s.store.PutDailyStat(st))
	}

	s.Require().NoError(s.store.CleanupStats("2026-08-25"))

	stats, err := s.store.GetRecentStats("A", "1.1", 0)
	s.Require().NoError(err)
	s.Require().Len(stats, 2, "records before the cutoff must be gone, cutoff itself kept")
	s.Equal("2026-08-25", stats[0].Date)
	s.Equal("2026-08-26", stats[1].Date)
}
