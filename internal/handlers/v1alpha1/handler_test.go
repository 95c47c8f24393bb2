package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-api/internal/engine/allocator"
	"github.com/KirkDiggler/coc-api/internal/engine/improvement"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/handlers/v1alpha1"
	"github.com/KirkDiggler/coc-api/internal/orchestrators/investigator"
	investigatormock "github.com/KirkDiggler/coc-api/internal/orchestrators/investigator/mock"
	"github.com/KirkDiggler/coc-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *investigatormock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = investigatormock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		InvestigatorService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)

	_, err = v1alpha1.NewHandler(nil)
	s.Error(err)
}

func (s *HandlerTestSuite) TestCreateInvestigator() {
	ch := testutils.CreateTestInvestigator("owner-1")

	s.mockService.EXPECT().
		CreateInvestigator(s.ctx, &investigator.CreateInvestigatorInput{
			OwnerID: "owner-1",
			Name:    "Harvey Walters",
			Era:     coc.Era1920s,
		}).
		Return(&investigator.CreateInvestigatorOutput{Character: ch}, nil)

	resp, err := s.handler.CreateInvestigator(s.ctx, s.request(map[string]any{
		"ownerId": "owner-1",
		"name":    "Harvey Walters",
		"era":     "1920s",
	}))
	s.Require().NoError(err)

	character := resp.GetFields()["character"].GetStructValue()
	s.Require().NotNil(character)
	s.Equal(ch.ID, character.GetFields()["id"].GetStringValue())
	s.Equal("Harvey Walters", character.GetFields()["name"].GetStringValue())
}

func (s *HandlerTestSuite) TestCreateInvestigatorRequiresOwner() {
	_, err := s.handler.CreateInvestigator(s.ctx, s.request(map[string]any{"name": "Harvey"}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestGetInvestigatorNotFound() {
	s.mockService.EXPECT().
		GetInvestigator(s.ctx, &investigator.GetInvestigatorInput{ID: "missing"}).
		Return(nil, errors.NotFound("investigator not found"))

	_, err := s.handler.GetInvestigator(s.ctx, s.request(map[string]any{"id": "missing"}))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestMissingIDIsRejectedBeforeTheService() {
	_, err := s.handler.RollCharacteristics(s.ctx, s.request(map[string]any{}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.GetAllocation(s.ctx, nil)
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestMismatchedRequestIsInvalid() {
	_, err := s.handler.AssignPoints(s.ctx, s.request(map[string]any{
		"id":       "inv_1",
		"skillId":  "appraise",
		"newTotal": "a lot",
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestUpdateCharacteristicsPassesRawValues() {
	ch := testutils.CreateTestInvestigator("owner-1")
	age := 33

	s.mockService.EXPECT().
		UpdateCharacteristics(s.ctx, &investigator.UpdateCharacteristicsInput{
			ID:     ch.ID,
			Values: map[coc.Characteristic]string{coc.STR: "70", coc.DEX: "fast"},
			Age:    &age,
		}).
		Return(&investigator.UpdateCharacteristicsOutput{Character: ch}, nil)

	_, err := s.handler.UpdateCharacteristics(s.ctx, s.request(map[string]any{
		"id":     ch.ID,
		"values": map[string]any{"STR": "70", "DEX": "fast"},
		"age":    33,
	}))
	s.Require().NoError(err)
}

func (s *HandlerTestSuite) TestAssignPointsReportsAllocation() {
	ch := testutils.CreateTestInvestigatorAtStage("owner-1", testutils.StageOccupation)
	antiquarian := coc.OccupationDefinition{
		Name:         "Antiquarian",
		Formula:      "EDU*4",
		CreditRating: coc.CreditRatingRange{Min: 30, Max: 70},
		Requirements: []coc.SkillRequirement{coc.SkillRef{Skill: "Appraise"}},
	}
	alloc := allocator.Summarize(ch, antiquarian, "")

	s.mockService.EXPECT().
		AssignPoints(s.ctx, &investigator.AssignPointsInput{
			ID:       ch.ID,
			SkillID:  "appraise",
			NewTotal: 45,
			Pool:     coc.PoolOccupation,
		}).
		Return(&investigator.AssignPointsOutput{Character: ch, Allocation: alloc, Applied: false}, nil)

	resp, err := s.handler.AssignPoints(s.ctx, s.request(map[string]any{
		"id":       ch.ID,
		"skillId":  "appraise",
		"newTotal": 45,
		"pool":     "occupation",
	}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.False(fields["applied"].GetBoolValue())

	allocation := fields["allocation"].GetStructValue().GetFields()
	budget := allocation["budget"].GetStructValue().GetFields()
	s.Equal(float64(alloc.Budget.OccupationTotal), budget["occupationTotal"].GetNumberValue())
	s.Equal(float64(30), allocation["creditRatingRange"].GetStructValue().GetFields()["min"].GetNumberValue())

	reqs := allocation["requirements"].GetListValue().GetValues()
	s.Require().Len(reqs, 1)
	requirement := reqs[0].GetStructValue().GetFields()["requirement"].GetStructValue().GetFields()
	s.Equal("skill", requirement["type"].GetStringValue())
	s.Equal("Appraise", requirement["skill"].GetStringValue())
}

func (s *HandlerTestSuite) TestAddFieldSlotReturnsSkillID() {
	ch := testutils.CreateTestInvestigator("owner-1")

	s.mockService.EXPECT().
		AddFieldSlot(s.ctx, &investigator.AddFieldSlotInput{ID: ch.ID, Field: "Science"}).
		Return(&investigator.AddFieldSlotOutput{
			MutationOutput: investigator.MutationOutput{Character: ch, Applied: true},
			SkillID:        "skill_7",
		}, nil)

	resp, err := s.handler.AddFieldSlot(s.ctx, s.request(map[string]any{"id": ch.ID, "field": "Science"}))
	s.Require().NoError(err)
	s.Equal("skill_7", resp.GetFields()["skillId"].GetStringValue())
	s.True(resp.GetFields()["applied"].GetBoolValue())
}

func (s *HandlerTestSuite) TestImproveSkill() {
	ch := testutils.CreateTestInvestigator("owner-1")
	skill := ch.Skills[ch.SkillIndex("spot_hidden")]

	s.mockService.EXPECT().
		ImproveSkill(s.ctx, &investigator.ImproveSkillInput{
			ID:      ch.ID,
			SkillID: "spot_hidden",
			Mode:    investigator.ImprovementModeRoll,
		}).
		Return(&investigator.ImproveSkillOutput{
			Character: ch,
			Skill:     skill,
			State:     improvement.StateDone,
			CheckRoll: 87,
			Succeeded: true,
			Increment: 6,
			Rolls: []improvement.Roll{
				{Kind: improvement.RollKindCheck, Dice: []int{8, 7}, Result: 87},
				{Kind: improvement.RollKindIncrement, Dice: []int{6}, Result: 6},
			},
		}, nil)

	resp, err := s.handler.ImproveSkill(s.ctx, s.request(map[string]any{
		"id":      ch.ID,
		"skillId": "spot_hidden",
		"mode":    "roll",
	}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal("done", fields["state"].GetStringValue())
	s.Equal(float64(87), fields["checkRoll"].GetNumberValue())
	s.Len(fields["rolls"].GetListValue().GetValues(), 2)
}

func (s *HandlerTestSuite) TestClearRollLog() {
	s.mockService.EXPECT().
		ClearRollLog(s.ctx, &investigator.ClearRollLogInput{ID: "inv_1"}).
		Return(&investigator.ClearRollLogOutput{EntriesDeleted: 9}, nil)

	resp, err := s.handler.ClearRollLog(s.ctx, s.request(map[string]any{"id": "inv_1"}))
	s.Require().NoError(err)
	s.Equal(float64(9), resp.GetFields()["entriesDeleted"].GetNumberValue())
}

func (s *HandlerTestSuite) TestServiceDescCoversEveryMethod() {
	names := v1alpha1.MethodNames()
	s.Len(names, 26)
	s.Len(v1alpha1.InvestigatorServiceDesc.Methods, len(names))
	s.Equal(v1alpha1.ServiceName, v1alpha1.InvestigatorServiceDesc.ServiceName)
}

func (s *HandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterInvestigatorServiceServer(srv, s.handler)
	go func() { _ = srv.Serve(lis) }()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	s.mockService.EXPECT().
		ExportShareCode(gomock.Any(), &investigator.ExportShareCodeInput{ID: "inv_1"}).
		Return(&investigator.ExportShareCodeOutput{Code: "abc"}, nil)

	client := v1alpha1.NewClient(conn)
	resp, err := client.Call(s.ctx, "ExportShareCode", s.request(map[string]any{"id": "inv_1"}))
	s.Require().NoError(err)
	s.Equal("abc", resp.GetFields()["code"].GetStringValue())

	s.mockService.EXPECT().
		ExportShareCode(gomock.Any(), &investigator.ExportShareCodeInput{ID: "gone"}).
		Return(nil, errors.NotFound("investigator not found"))

	_, err = client.Call(s.ctx, "ExportShareCode", s.request(map[string]any{"id": "gone"}))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
}
