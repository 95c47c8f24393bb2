package investigator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/coc-api/internal/engine/improvement"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/orchestrators/investigator"
	"github.com/KirkDiggler/coc-api/internal/pkg/clock"
	"github.com/KirkDiggler/coc-api/internal/pkg/idgen"
	invrepo "github.com/KirkDiggler/coc-api/internal/repositories/investigator"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/coc-api/internal/share"
	"github.com/KirkDiggler/coc-api/internal/testutils"
)

// IntegrationTestSuite runs the orchestrator against the redis repositories
type IntegrationTestSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.Manual
	roller       *scriptedRoller
	orchestrator investigator.Service
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(time.Date(1925, time.March, 14, 9, 0, 0, 0, time.UTC))
	s.roller = &scriptedRoller{}

	client, _ := testutils.CreateTestRedisServer(s.T())

	repo, err := invrepo.NewRedis(&invrepo.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)

	rolls, err := rolllog.NewRedisRepository(&rolllog.Config{Client: client, Clock: s.clock})
	s.Require().NoError(err)

	codec, err := share.NewCodec(&share.Config{CacheSize: 8})
	s.Require().NoError(err)
	s.T().Cleanup(codec.Close)

	s.orchestrator, err = investigator.NewOrchestrator(&investigator.Config{
		InvestigatorRepo: repo,
		RollLogRepo:      rolls,
		ShareCodec:       codec,
		Roller:           s.roller,
		IDGenerator:      idgen.NewSequential("inv"),
		SkillIDGenerator: idgen.NewSequential("skill"),
	})
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) create(owner string) *coc.Character {
	out, err := s.orchestrator.CreateInvestigator(s.ctx, &investigator.CreateInvestigatorInput{
		OwnerID: owner,
		Name:    "Harvey Walters",
	})
	s.Require().NoError(err)
	return out.Character
}

func skillOf(ch *coc.Character, id string) coc.Skill {
	return ch.Skills[ch.SkillIndex(id)]
}

func (s *IntegrationTestSuite) TestOccupationAllocationFlow() {
	ch := s.create("owner-1")

	set, err := s.orchestrator.SetOccupation(s.ctx, &investigator.SetOccupationInput{
		ID:         ch.ID,
		Occupation: "Antiquarian",
	})
	s.Require().NoError(err)
	s.False(set.Custom)

	assigned, err := s.orchestrator.AssignPoints(s.ctx, &investigator.AssignPointsInput{
		ID:       ch.ID,
		SkillID:  "appraise",
		NewTotal: 45,
		Pool:     coc.PoolOccupation,
	})
	s.Require().NoError(err)
	s.True(assigned.Applied)
	s.Equal(200, assigned.Allocation.Budget.OccupationTotal)
	s.Equal(40, assigned.Allocation.Budget.OccupationSpent)

	picked, err := s.orchestrator.AddAnyPick(s.ctx, &investigator.AddAnyPickInput{
		ID:               ch.ID,
		RequirementIndex: 7,
		SkillID:          "occult",
	})
	s.Require().NoError(err)
	s.True(picked.Applied)
	s.True(skillOf(picked.Character, "occult").IsOccupational)

	// a plain EDU*4 formula has nothing to choose between
	_, err = s.orchestrator.SelectOccupationStat(s.ctx, &investigator.SelectOccupationStatInput{
		ID:   ch.ID,
		Stat: coc.DEX,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	got, err := s.orchestrator.GetAllocation(s.ctx, &investigator.GetAllocationInput{ID: ch.ID})
	s.Require().NoError(err)
	s.Equal(20, got.Allocation.OccupationPercent)
	s.False(got.Allocation.Complete)

	stored, err := s.orchestrator.GetInvestigator(s.ctx, &investigator.GetInvestigatorInput{ID: ch.ID})
	s.Require().NoError(err)
	s.Equal(45, skillOf(stored.Character, "appraise").Value)
	s.Equal("Antiquarian", stored.Character.Occupation)
}

func (s *IntegrationTestSuite) TestChoiceFormulaStatSelection() {
	ch := s.create("owner-1")

	_, err := s.orchestrator.CustomizeOccupation(s.ctx, &investigator.CustomizeOccupationInput{
		ID:      ch.ID,
		Name:    "Tramp Steamer Mate",
		Formula: "EDU*2+(DEX|STR)*2",
	})
	s.Require().NoError(err)

	out, err := s.orchestrator.SelectOccupationStat(s.ctx, &investigator.SelectOccupationStatInput{
		ID:   ch.ID,
		Stat: "str",
	})
	s.Require().NoError(err)
	s.Equal(coc.STR, out.Allocation.Budget.SelectedStat)

	got, err := s.orchestrator.GetAllocation(s.ctx, &investigator.GetAllocationInput{ID: ch.ID})
	s.Require().NoError(err)
	s.Equal(coc.STR, got.Allocation.Budget.SelectedStat, "selection is stored")

	_, err = s.orchestrator.CustomizeOccupation(s.ctx, &investigator.CustomizeOccupationInput{
		ID:      ch.ID,
		Name:    "Mate",
		Formula: "EDU**",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *IntegrationTestSuite) TestImprovementRollsAreLogged() {
	ch := s.create("owner-1")

	marked, err := s.orchestrator.MarkForImprovement(s.ctx, &investigator.MarkForImprovementInput{
		ID:      ch.ID,
		SkillID: "spot_hidden",
		Marked:  true,
	})
	s.Require().NoError(err)
	s.True(marked.Applied)

	// percentile 99 beats 25, then a 4 on the d10
	s.roller.push(9, 9, 4)

	out, err := s.orchestrator.ImproveSkill(s.ctx, &investigator.ImproveSkillInput{
		ID:      ch.ID,
		SkillID: "spot_hidden",
	})
	s.Require().NoError(err)
	s.Equal(improvement.StateDone, out.State)
	s.True(out.Succeeded)
	s.Equal(99, out.CheckRoll)
	s.Equal(4, out.Increment)
	s.Equal(29, out.Skill.Value)
	s.Len(out.Rolls, 2)

	log, err := s.orchestrator.GetRollLog(s.ctx, &investigator.GetRollLogInput{ID: ch.ID})
	s.Require().NoError(err)
	s.Require().Len(log.Log.Entries, 2)
	s.Equal("Spot Hidden check", log.Log.Entries[0].Label)
	s.Equal("1d10", log.Log.Entries[1].Notation)

	cleared, err := s.orchestrator.ClearImprovements(s.ctx, &investigator.ClearImprovementsInput{ID: ch.ID})
	s.Require().NoError(err)
	s.False(skillOf(cleared.Character, "spot_hidden").MarkedForImprovement)
	s.Equal(29, skillOf(cleared.Character, "spot_hidden").Value)

	deleted, err := s.orchestrator.ClearRollLog(s.ctx, &investigator.ClearRollLogInput{ID: ch.ID})
	s.Require().NoError(err)
	s.Equal(2, deleted.EntriesDeleted)
}

func (s *IntegrationTestSuite) TestShareCodeRoundTrip() {
	ch := s.create("owner-1")

	_, err := s.orchestrator.SetOccupation(s.ctx, &investigator.SetOccupationInput{
		ID:         ch.ID,
		Occupation: "Antiquarian",
	})
	s.Require().NoError(err)

	exported, err := s.orchestrator.ExportShareCode(s.ctx, &investigator.ExportShareCodeInput{ID: ch.ID})
	s.Require().NoError(err)
	s.NotEmpty(exported.Code)

	imported, err := s.orchestrator.ImportShareCode(s.ctx, &investigator.ImportShareCodeInput{
		OwnerID: "owner-2",
		Code:    exported.Code,
	})
	s.Require().NoError(err)
	s.NotEqual(ch.ID, imported.Character.ID)
	s.Equal("owner-2", imported.Character.OwnerID)
	s.Equal("Antiquarian", imported.Character.Occupation)
	s.Equal(len(ch.Skills), len(imported.Character.Skills))

	list, err := s.orchestrator.ListInvestigators(s.ctx, &investigator.ListInvestigatorsInput{OwnerID: "owner-2"})
	s.Require().NoError(err)
	s.Require().Len(list.Characters, 1)
	s.Equal(imported.Character.ID, list.Characters[0].ID)

	_, err = s.orchestrator.ImportShareCode(s.ctx, &investigator.ImportShareCodeInput{
		OwnerID: "owner-2",
		Code:    "not-a-share-code",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *IntegrationTestSuite) TestSaveKeepsOwnerAndClampsValues() {
	ch := s.create("owner-1")

	edited := ch.Clone()
	edited.OwnerID = "someone-else"
	edited.Name = "Harvey Walters Jr."
	edited.Characteristics.STR.Value = 140
	idx := edited.SkillIndex("history")
	edited.Skills[idx].Value = -3

	s.clock.Advance(time.Hour)

	out, err := s.orchestrator.SaveInvestigator(s.ctx, &investigator.SaveInvestigatorInput{Character: edited})
	s.Require().NoError(err)
	s.Equal("owner-1", out.Character.OwnerID)
	s.Equal("Harvey Walters Jr.", out.Character.Name)
	s.Equal(99, out.Character.Characteristics.STR.Value)
	s.Equal(out.Character.Skills[idx].BaseValue, out.Character.Skills[idx].Value)
	s.Equal(ch.CreatedAt, out.Character.CreatedAt)
	s.Greater(out.Character.UpdatedAt, ch.UpdatedAt)
}

func (s *IntegrationTestSuite) TestDeleteRemovesRecordAndLog() {
	ch := s.create("owner-1")

	for i := 0; i < 24; i++ {
		s.roller.push(2)
	}
	_, err := s.orchestrator.RollCharacteristics(s.ctx, &investigator.RollCharacteristicsInput{ID: ch.ID})
	s.Require().NoError(err)

	_, err = s.orchestrator.DeleteInvestigator(s.ctx, &investigator.DeleteInvestigatorInput{ID: ch.ID})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetInvestigator(s.ctx, &investigator.GetInvestigatorInput{ID: ch.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetRollLog(s.ctx, &investigator.GetRollLogInput{ID: ch.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
