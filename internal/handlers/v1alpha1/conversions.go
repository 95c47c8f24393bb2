package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-api/internal/engine/allocator"
	"github.com/KirkDiggler/coc-api/internal/engine/improvement"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/orchestrators/investigator"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
)

// decode reads a request object into an orchestrator input. Keys are camelCase and
// match input fields case-insensitively.
func decode(req *structpb.Struct, into any) error {
	if req == nil {
		return nil
	}

	raw, err := protojson.Marshal(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "request is not a valid object")
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "request does not match the method")
	}
	return nil
}

// respond encodes a response view as a Struct
func respond(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}

type characterResponse struct {
	Character *coc.Character `json:"character"`
}

type getInvestigatorResponse struct {
	Character *coc.Character      `json:"character"`
	Labels    investigator.Labels `json:"labels"`
}

type listInvestigatorsResponse struct {
	Characters []*coc.Character `json:"characters"`
}

type rolledValueView struct {
	Name     string `json:"name"`
	Notation string `json:"notation"`
	Dice     []int  `json:"dice"`
	Value    int    `json:"value"`
}

type rollCharacteristicsResponse struct {
	Character *coc.Character    `json:"character"`
	Rolls     []rolledValueView `json:"rolls"`
}

type setOccupationResponse struct {
	Character  *coc.Character           `json:"character"`
	Occupation coc.OccupationDefinition `json:"occupation"`
	Custom     bool                     `json:"custom"`
}

type budgetView struct {
	OccupationTotal     int                  `json:"occupationTotal"`
	OccupationSpent     int                  `json:"occupationSpent"`
	OccupationRemaining int                  `json:"occupationRemaining"`
	PersonalTotal       int                  `json:"personalTotal"`
	PersonalSpent       int                  `json:"personalSpent"`
	PersonalRemaining   int                  `json:"personalRemaining"`
	SelectedStat        coc.Characteristic   `json:"selectedStat,omitempty"`
	Candidates          []coc.Characteristic `json:"candidates,omitempty"`
}

type requirementView struct {
	Index       int             `json:"index"`
	Requirement json.RawMessage `json:"requirement"`
	Required    int             `json:"required"`
	Filled      int             `json:"filled"`
	SkillIDs    []string        `json:"skillIds"`
	CanAdd      bool            `json:"canAdd"`
	Done        bool            `json:"done"`
}

type allocationView struct {
	Budget              budgetView            `json:"budget"`
	OccupationPercent   int                   `json:"occupationPercent"`
	PersonalPercent     int                   `json:"personalPercent"`
	Requirements        []requirementView     `json:"requirements"`
	Complete            bool                  `json:"complete"`
	CreditRating        int                   `json:"creditRating"`
	CreditRatingRange   coc.CreditRatingRange `json:"creditRatingRange"`
	CreditRatingInRange bool                  `json:"creditRatingInRange"`
}

type allocationResponse struct {
	Allocation allocationView `json:"allocation"`
}

type mutationResponse struct {
	Character  *coc.Character `json:"character"`
	Allocation allocationView `json:"allocation"`
	Applied    bool           `json:"applied"`
	SkillID    string         `json:"skillId,omitempty"`
}

type markResponse struct {
	Character *coc.Character `json:"character"`
	Applied   bool           `json:"applied"`
}

type improvementRollView struct {
	Kind   improvement.RollKind `json:"kind"`
	Dice   []int                `json:"dice"`
	Result int                  `json:"result"`
}

type improveSkillResponse struct {
	Character *coc.Character        `json:"character"`
	Skill     coc.Skill             `json:"skill"`
	State     improvement.State     `json:"state"`
	CheckRoll int                   `json:"checkRoll"`
	Succeeded bool                  `json:"succeeded"`
	Increment int                   `json:"increment"`
	Rolls     []improvementRollView `json:"rolls"`
}

type shareCodeResponse struct {
	Code string `json:"code"`
}

type listOccupationsResponse struct {
	Occupations []coc.OccupationDefinition `json:"occupations"`
}

type rollEntryView struct {
	ID       string `json:"id"`
	Context  string `json:"context"`
	Label    string `json:"label"`
	Notation string `json:"notation"`
	Dice     []int  `json:"dice"`
	Total    int    `json:"total"`
	RolledAt string `json:"rolledAt"`
}

type rollLogResponse struct {
	InvestigatorID string          `json:"investigatorId"`
	Entries        []rollEntryView `json:"entries"`
	CreatedAt      string          `json:"createdAt"`
	ExpiresAt      string          `json:"expiresAt"`
}

type clearRollLogResponse struct {
	EntriesDeleted int `json:"entriesDeleted"`
}

type emptyResponse struct{}

func convertRolledValues(in []investigator.RolledValue) []rolledValueView {
	out := make([]rolledValueView, 0, len(in))
	for _, r := range in {
		out = append(out, rolledValueView(r))
	}
	return out
}

func convertAllocation(a allocator.Allocation) (allocationView, error) {
	b := a.Budget
	view := allocationView{
		Budget: budgetView{
			OccupationTotal:     b.OccupationTotal,
			OccupationSpent:     b.OccupationSpent,
			OccupationRemaining: b.Remaining(coc.PoolOccupation),
			PersonalTotal:       b.PersonalTotal,
			PersonalSpent:       b.PersonalSpent,
			PersonalRemaining:   b.Remaining(coc.PoolPersonal),
			SelectedStat:        b.SelectedStat,
			Candidates:          b.Candidates,
		},
		OccupationPercent:   a.OccupationPercent,
		PersonalPercent:     a.PersonalPercent,
		Requirements:        make([]requirementView, 0, len(a.Requirements)),
		Complete:            a.Complete,
		CreditRating:        a.CreditRating,
		CreditRatingRange:   a.CreditRatingRange,
		CreditRatingInRange: a.CreditRatingInRange,
	}

	for _, r := range a.Requirements {
		raw, err := coc.MarshalRequirement(r.Requirement)
		if err != nil {
			return allocationView{}, errors.Wrapf(err, "failed to encode requirement %d", r.Index)
		}
		skillIDs := r.SkillIDs
		if skillIDs == nil {
			skillIDs = []string{}
		}
		view.Requirements = append(view.Requirements, requirementView{
			Index:       r.Index,
			Requirement: raw,
			Required:    r.Required,
			Filled:      r.Filled,
			SkillIDs:    skillIDs,
			CanAdd:      r.CanAdd,
			Done:        r.Done(),
		})
	}

	return view, nil
}

func convertMutation(out *investigator.MutationOutput, skillID string) (*mutationResponse, error) {
	alloc, err := convertAllocation(out.Allocation)
	if err != nil {
		return nil, err
	}
	return &mutationResponse{
		Character:  out.Character,
		Allocation: alloc,
		Applied:    out.Applied,
		SkillID:    skillID,
	}, nil
}

func convertImprovementRolls(in []improvement.Roll) []improvementRollView {
	out := make([]improvementRollView, 0, len(in))
	for _, r := range in {
		out = append(out, improvementRollView{Kind: r.Kind, Dice: r.Dice, Result: r.Result})
	}
	return out
}

func convertRollLog(log *rolllog.RollLog) *rollLogResponse {
	if log == nil {
		return &rollLogResponse{Entries: []rollEntryView{}}
	}

	out := &rollLogResponse{
		InvestigatorID: log.InvestigatorID,
		Entries:        make([]rollEntryView, 0, len(log.Entries)),
		CreatedAt:      formatTime(log.CreatedAt),
		ExpiresAt:      formatTime(log.ExpiresAt),
	}
	for _, e := range log.Entries {
		out.Entries = append(out.Entries, rollEntryView{
			ID:       e.ID,
			Context:  e.Context,
			Label:    e.Label,
			Notation: e.Notation,
			Dice:     e.Dice,
			Total:    e.Total,
			RolledAt: formatTime(e.RolledAt),
		})
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
