package investigator

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/coc-api/internal/catalog"
	"github.com/KirkDiggler/coc-api/internal/engine/allocator"
	"github.com/KirkDiggler/coc-api/internal/engine/rules"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	invrepo "github.com/KirkDiggler/coc-api/internal/repositories/investigator"
)

// DefaultOccupationLimit caps ListOccupations when the request sets no limit
const DefaultOccupationLimit = 50

func (o *orchestrator) SetOccupation(
	ctx context.Context,
	input *SetOccupationInput,
) (*SetOccupationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name := strings.TrimSpace(input.Occupation)
	if name == "" {
		return nil, errors.InvalidArgument("occupation is required")
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	occ, found := catalog.OccupationOrCustom(name)
	if found && !occ.AvailableIn(ch.Era) {
		return nil, errors.FailedPreconditionf("occupation %s is not available in the %s era", occ.Name, ch.Era).
			WithMeta("investigator_id", ch.ID)
	}

	stored, err := o.save(ctx, rules.Recompute(allocator.SwitchOccupation(ch, occ)))
	if err != nil {
		return nil, err
	}

	if _, err := o.repo.SetOccupationStat(ctx, invrepo.SetOccupationStatInput{ID: ch.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to reset occupation stat")
	}

	slog.InfoContext(ctx, "occupation set",
		"investigator_id", stored.ID,
		"occupation", occ.Name,
		"custom", !found)

	return &SetOccupationOutput{Character: stored, Occupation: occ, Custom: !found}, nil
}

func (o *orchestrator) CustomizeOccupation(
	ctx context.Context,
	input *CustomizeOccupationInput,
) (*CustomizeOccupationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", input.Name, vb)
	if f := strings.TrimSpace(input.Formula); f != "" {
		if _, err := allocator.ParseFormula(f); err != nil {
			vb.InvalidField("Formula", errors.GetMessage(err))
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	stored, err := o.save(ctx, allocator.CustomizeOccupation(ch, input.Name, input.Formula))
	if err != nil {
		return nil, err
	}

	return &CustomizeOccupationOutput{Character: stored}, nil
}

func (o *orchestrator) SelectOccupationStat(
	ctx context.Context,
	input *SelectOccupationStatInput,
) (*SelectOccupationStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.loadSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	stat := input.Stat
	if stat != "" {
		parsed, ok := coc.ParseCharacteristic(string(stat))
		if !ok {
			return nil, errors.InvalidArgumentf("unknown characteristic %q", stat)
		}
		formula := allocator.FormulaOrDefault(s.character.OccupationFormula)
		if !slices.Contains(formula.ChoiceCandidates(), parsed) {
			return nil, errors.FailedPreconditionf("%s is not a choice of formula %s", parsed, formula.Expr).
				WithMeta("investigator_id", input.ID)
		}
		stat = parsed
	}

	if _, err := o.repo.SetOccupationStat(ctx, invrepo.SetOccupationStatInput{ID: input.ID, Stat: stat}); err != nil {
		return nil, errors.Wrapf(err, "failed to store occupation stat")
	}
	s.stat = stat

	return &SelectOccupationStatOutput{Allocation: s.summary()}, nil
}

func (o *orchestrator) GetAllocation(
	ctx context.Context,
	input *GetAllocationInput,
) (*GetAllocationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.loadSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetAllocationOutput{Allocation: s.summary()}, nil
}

func (o *orchestrator) AssignPoints(
	ctx context.Context,
	input *AssignPointsInput,
) (*AssignPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Pool.IsValid() {
		return nil, errors.InvalidArgumentf("unknown point pool %q", input.Pool)
	}

	s, err := o.loadSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s.character.SkillIndex(input.SkillID) < 0 {
		return nil, skillNotFound(input.ID, input.SkillID)
	}

	next, applied := o.allocator.Assign(s.character, input.SkillID, input.NewTotal, input.Pool, s.stat)
	out, err := o.commit(ctx, s, next, applied, "assign_points")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) SelectChoiceOption(
	ctx context.Context,
	input *SelectChoiceOptionInput,
) (*SelectChoiceOptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.loadOccupationSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	next, applied := o.allocator.SelectChoice(s.character, s.occupation, input.RequirementIndex, input.SkillID, s.stat)
	out, err := o.commit(ctx, s, next, applied, "select_choice_option")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) DeselectChoiceOption(
	ctx context.Context,
	input *DeselectChoiceOptionInput,
) (*DeselectChoiceOptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.loadOccupationSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	next, applied := o.allocator.DeselectChoice(s.character, s.occupation, input.SkillID)
	out, err := o.commit(ctx, s, next, applied, "deselect_choice_option")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) AddFieldSpecialization(
	ctx context.Context,
	input *AddFieldSpecializationInput,
) (*AddFieldSpecializationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Field", input.Field, vb)
	errors.ValidateRequired("Text", input.Text, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	s, err := o.loadOccupationSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	next, skillID, applied := o.allocator.AddFieldSpecialization(s.character, s.occupation,
		input.RequirementIndex, strings.TrimSpace(input.Field), strings.TrimSpace(input.Text), s.stat)
	out, err := o.commit(ctx, s, next, applied, "add_field_specialization")
	if err != nil {
		return nil, err
	}
	return &AddFieldSpecializationOutput{MutationOutput: out, SkillID: skillID}, nil
}

func (o *orchestrator) AddAnyPick(
	ctx context.Context,
	input *AddAnyPickInput,
) (*AddAnyPickOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.loadOccupationSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	next, applied := o.allocator.AddAnyPick(s.character, s.occupation, input.RequirementIndex, input.SkillID, s.stat)
	out, err := o.commit(ctx, s, next, applied, "add_any_pick")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) AddFieldSlot(
	ctx context.Context,
	input *AddFieldSlotInput,
) (*AddFieldSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Field) == "" {
		return nil, errors.InvalidArgument("field is required")
	}

	s, err := o.loadSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	next, skillID, applied := o.allocator.AddFieldSlot(s.character, strings.TrimSpace(input.Field))
	out, err := o.commit(ctx, s, next, applied, "add_field_slot")
	if err != nil {
		return nil, err
	}
	return &AddFieldSlotOutput{MutationOutput: out, SkillID: skillID}, nil
}

func (o *orchestrator) RenameSkill(
	ctx context.Context,
	input *RenameSkillInput,
) (*RenameSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s, err := o.loadSheet(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if s.character.SkillIndex(input.SkillID) < 0 {
		return nil, skillNotFound(input.ID, input.SkillID)
	}

	next, applied := allocator.RenameSkill(s.character, input.SkillID, strings.TrimSpace(input.Text))
	out, err := o.commit(ctx, s, next, applied, "rename_skill")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) ListOccupations(
	_ context.Context,
	input *ListOccupationsInput,
) (*ListOccupationsOutput, error) {
	if input == nil {
		input = &ListOccupationsInput{}
	}

	era := input.Era
	if era == "" {
		era = coc.Era1920s
	}
	if !era.IsValid() {
		return nil, errors.InvalidArgumentf("unknown era %q", era)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultOccupationLimit
	}

	return &ListOccupationsOutput{
		Occupations: catalog.SuggestOccupations(era, strings.TrimSpace(input.Query), limit),
	}, nil
}

func skillNotFound(id, skillID string) error {
	return errors.NotFoundf("skill %s not found", skillID).
		WithMeta("investigator_id", id).
		WithMeta("skill_id", skillID)
}
