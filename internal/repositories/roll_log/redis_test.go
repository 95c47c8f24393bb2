package rolllog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/pkg/clock"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/coc-api/internal/testutils"
)

const testInvestigatorID = "inv_123"

type RollLogTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Manual
	repo  rolllog.Repository
	ctx   context.Context
}

func TestRollLogSuite(t *testing.T) {
	suite.Run(t, new(RollLogTestSuite))
}

func (s *RollLogTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.T().Cleanup(mr.Close)

	s.clock = clock.NewManual(time.Date(1925, 3, 14, 9, 0, 0, 0, time.UTC))

	repo, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client: client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RollLogTestSuite) strRoll() rolllog.Entry {
	return rolllog.Entry{
		Context:  rolllog.ContextCharacteristics,
		Label:    "STR",
		Notation: "3d6*5",
		Dice:     []int{4, 5, 6},
		Total:    75,
	}
}

func (s *RollLogTestSuite) TestConfigValidation() {
	_, err := rolllog.NewRedisRepository(&rolllog.Config{})
	s.Error(err)

	_, err = rolllog.NewRedisRepository(nil)
	s.Error(err)
}

func (s *RollLogTestSuite) TestAppendCreatesAndExtends() {
	out, err := s.repo.Append(s.ctx, rolllog.AppendInput{
		InvestigatorID: testInvestigatorID,
		Entries:        []rolllog.Entry{s.strRoll()},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Log.Entries, 1)
	s.Equal("roll_1", out.Log.Entries[0].ID)
	s.Equal(s.clock.Now(), out.Log.Entries[0].RolledAt)
	s.Equal(s.clock.Now().Add(time.Hour), out.Log.ExpiresAt)
	s.Equal(time.Hour, s.mr.TTL("roll_log:"+testInvestigatorID))

	s.clock.Advance(30 * time.Minute)
	out, err = s.repo.Append(s.ctx, rolllog.AppendInput{
		InvestigatorID: testInvestigatorID,
		Entries: []rolllog.Entry{
			{Context: rolllog.ContextImprovement, Label: "Spot Hidden check", Notation: "1d100", Dice: []int{5, 1}, Total: 51},
			{Context: rolllog.ContextImprovement, Label: "Spot Hidden increment", Notation: "1d10", Dice: []int{7}, Total: 7},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Log.Entries, 3)
	s.Equal("roll_3", out.Log.Entries[2].ID)
	s.Equal(s.clock.Now().Add(time.Hour), out.Log.ExpiresAt)

	got, err := s.repo.Get(s.ctx, rolllog.GetInput{InvestigatorID: testInvestigatorID})
	s.Require().NoError(err)
	s.Len(got.Log.Entries, 3)
	s.Equal([]int{4, 5, 6}, got.Log.Entries[0].Dice)
	s.True(got.Log.CreatedAt.Equal(s.clock.Now().Add(-30 * time.Minute)))
}

func (s *RollLogTestSuite) TestAppendCapsEntries() {
	entries := make([]rolllog.Entry, rolllog.MaxEntries+5)
	for i := range entries {
		entries[i] = s.strRoll()
	}

	out, err := s.repo.Append(s.ctx, rolllog.AppendInput{InvestigatorID: testInvestigatorID, Entries: entries})
	s.Require().NoError(err)
	s.Len(out.Log.Entries, rolllog.MaxEntries)
	s.Equal("roll_6", out.Log.Entries[0].ID)

	out, err = s.repo.Append(s.ctx, rolllog.AppendInput{
		InvestigatorID: testInvestigatorID,
		Entries:        []rolllog.Entry{s.strRoll()},
	})
	s.Require().NoError(err)
	s.Equal("roll_206", out.Log.Entries[len(out.Log.Entries)-1].ID, "ids keep counting after trimming")
}

func (s *RollLogTestSuite) TestGetExpired() {
	_, err := s.repo.Append(s.ctx, rolllog.AppendInput{
		InvestigatorID: testInvestigatorID,
		Entries:        []rolllog.Entry{s.strRoll()},
		TTL:            10 * time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(11 * time.Minute)
	_, err = s.repo.Get(s.ctx, rolllog.GetInput{InvestigatorID: testInvestigatorID})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("roll_log:" + testInvestigatorID))
}

func (s *RollLogTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, rolllog.GetInput{InvestigatorID: testInvestigatorID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, rolllog.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RollLogTestSuite) TestClear() {
	_, err := s.repo.Append(s.ctx, rolllog.AppendInput{
		InvestigatorID: testInvestigatorID,
		Entries:        []rolllog.Entry{s.strRoll(), s.strRoll()},
	})
	s.Require().NoError(err)

	out, err := s.repo.Clear(s.ctx, rolllog.ClearInput{InvestigatorID: testInvestigatorID})
	s.Require().NoError(err)
	s.Equal(2, out.EntriesDeleted)

	out, err = s.repo.Clear(s.ctx, rolllog.ClearInput{InvestigatorID: testInvestigatorID})
	s.Require().NoError(err)
	s.Zero(out.EntriesDeleted)
}
