package investigator_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/pkg/clock"
	"github.com/KirkDiggler/coc-api/internal/repositories/investigator"
	"github.com/KirkDiggler/coc-api/internal/testutils"
)

const (
	testOwnerID = "player_456"
	testKey     = "investigator:" + testutils.TestInvestigatorID
	testOwnerIx = "investigator:owner:" + testOwnerID
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Manual
	repo  investigator.Repository
	ctx   context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.T().Cleanup(mr.Close)

	s.clock = clock.NewManual(time.Date(1925, 3, 14, 9, 0, 0, 0, time.UTC))

	repo, err := investigator.NewRedis(&investigator.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) create(ch *coc.Character) *coc.Character {
	out, err := s.repo.Create(s.ctx, investigator.CreateInput{Character: ch})
	s.Require().NoError(err)
	return out.Character
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := investigator.NewRedis(&investigator.RedisConfig{})
	s.Error(err)

	_, err = investigator.NewRedis(nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetRoundTrip() {
	ch := testutils.CreateTestInvestigatorAtStage(testOwnerID, testutils.StageOccupation)

	created := s.create(ch)
	s.Equal(s.clock.Now().Unix(), created.CreatedAt)
	s.Equal(created.CreatedAt, created.UpdatedAt)
	s.Zero(ch.CreatedAt, "input is not modified")

	s.True(s.mr.Exists(testKey))
	members, err := s.mr.Members(testOwnerIx)
	s.Require().NoError(err)
	s.Equal([]string{testutils.TestInvestigatorID}, members)

	got, err := s.repo.Get(s.ctx, investigator.GetInput{ID: ch.ID})
	s.Require().NoError(err)
	s.Equal(created, got.Character)
	s.Equal("Antiquarian", got.Character.Occupation)
	s.Equal(ch.Skills, got.Character.Skills)
	s.Equal(ch.OccupationalSkills, got.Character.OccupationalSkills)
}

func (s *RedisRepositoryTestSuite) TestCreateRejects() {
	_, err := s.repo.Create(s.ctx, investigator.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, investigator.CreateInput{Character: &coc.Character{}})
	s.True(errors.IsInvalidArgument(err))

	s.create(testutils.CreateTestInvestigator(testOwnerID))
	_, err = s.repo.Create(s.ctx, investigator.CreateInput{Character: testutils.CreateTestInvestigator(testOwnerID)})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, investigator.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, investigator.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateKeepsCreatedAtAndMovesOwner() {
	created := s.create(testutils.CreateTestInvestigator(testOwnerID))

	s.clock.Advance(time.Hour)
	changed := created.Clone()
	changed.Name = "Harvey Walters Jr."
	changed.OwnerID = "player_new"
	changed.CreatedAt = 0

	out, err := s.repo.Update(s.ctx, investigator.UpdateInput{Character: changed})
	s.Require().NoError(err)
	s.Equal(created.CreatedAt, out.Character.CreatedAt)
	s.Equal(created.CreatedAt+3600, out.Character.UpdatedAt)

	old, err := s.repo.ListByOwner(s.ctx, investigator.ListByOwnerInput{OwnerID: testOwnerID})
	s.Require().NoError(err)
	s.Empty(old.Characters)

	moved, err := s.repo.ListByOwner(s.ctx, investigator.ListByOwnerInput{OwnerID: "player_new"})
	s.Require().NoError(err)
	s.Require().Len(moved.Characters, 1)
	s.Equal("Harvey Walters Jr.", moved.Characters[0].Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, investigator.UpdateInput{Character: testutils.CreateTestInvestigator(testOwnerID)})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesRecordIndexAndStat() {
	s.create(testutils.CreateTestInvestigator(testOwnerID))
	_, err := s.repo.SetOccupationStat(s.ctx, investigator.SetOccupationStatInput{
		ID: testutils.TestInvestigatorID, Stat: coc.DEX,
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, investigator.DeleteInput{ID: testutils.TestInvestigatorID})
	s.Require().NoError(err)

	s.False(s.mr.Exists(testKey))
	s.False(s.mr.Exists(testKey + ":occupation_stat"))
	members, _ := s.mr.Members(testOwnerIx)
	s.Empty(members)

	_, err = s.repo.Delete(s.ctx, investigator.DeleteInput{ID: testutils.TestInvestigatorID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByOwnerOrdersAndCleansIndex() {
	first := testutils.CreateTestInvestigator(testOwnerID)
	first.ID = "inv_a"
	s.create(first)

	s.clock.Advance(time.Minute)
	second := testutils.CreateTestInvestigator(testOwnerID)
	second.ID = "inv_b"
	s.create(second)

	_, err := s.mr.SAdd(testOwnerIx, "inv_ghost")
	s.Require().NoError(err)

	out, err := s.repo.ListByOwner(s.ctx, investigator.ListByOwnerInput{OwnerID: testOwnerID})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("inv_b", out.Characters[0].ID, "most recently updated first")
	s.Equal("inv_a", out.Characters[1].ID)

	members, _ := s.mr.Members(testOwnerIx)
	s.NotContains(members, "inv_ghost")

	_, err = s.repo.ListByOwner(s.ctx, investigator.ListByOwnerInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestOccupationStat() {
	out, err := s.repo.GetOccupationStat(s.ctx, investigator.GetOccupationStatInput{ID: "inv_a"})
	s.Require().NoError(err)
	s.Empty(out.Stat)

	_, err = s.repo.SetOccupationStat(s.ctx, investigator.SetOccupationStatInput{ID: "inv_a", Stat: coc.STR})
	s.Require().NoError(err)
	s.Equal("STR", s.mustGet("investigator:inv_a:occupation_stat"))

	out, err = s.repo.GetOccupationStat(s.ctx, investigator.GetOccupationStatInput{ID: "inv_a"})
	s.Require().NoError(err)
	s.Equal(coc.STR, out.Stat)

	_, err = s.repo.SetOccupationStat(s.ctx, investigator.SetOccupationStatInput{ID: "inv_a", Stat: "LCK"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.SetOccupationStat(s.ctx, investigator.SetOccupationStatInput{ID: "inv_a"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("investigator:inv_a:occupation_stat"))
}

func (s *RedisRepositoryTestSuite) TestUnreadableOccupationStatIsIgnored() {
	s.Require().NoError(s.mr.Set("investigator:inv_a:occupation_stat", "garbage"))

	out, err := s.repo.GetOccupationStat(s.ctx, investigator.GetOccupationStatInput{ID: "inv_a"})
	s.Require().NoError(err)
	s.Empty(out.Stat)
}

func (s *RedisRepositoryTestSuite) mustGet(key string) string {
	v, err := s.mr.Get(key)
	s.Require().NoError(err)
	return v
}
