package investigator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/coc-api/internal/catalog"
	"github.com/KirkDiggler/coc-api/internal/engine/rules"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	invrepo "github.com/KirkDiggler/coc-api/internal/repositories/investigator"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
)

const maxNameLength = 120

func (o *orchestrator) CreateInvestigator(
	ctx context.Context,
	input *CreateInvestigatorInput,
) (*CreateInvestigatorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	era := input.Era
	if era == "" {
		era = coc.Era1920s
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("OwnerID", input.OwnerID, vb)
	errors.ValidateMaxLength("Name", input.Name, maxNameLength, vb)
	if !era.IsValid() {
		vb.InvalidField("Era", "must be one of 1920s, modern, darkAges")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ch := rules.NewCharacter(o.idGen.Generate(), strings.TrimSpace(input.Name), era, catalog.SeedSkills(era))
	ch.OwnerID = input.OwnerID
	ch.Player = strings.TrimSpace(input.Player)

	out, err := o.repo.Create(ctx, invrepo.CreateInput{Character: ch})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create investigator")
	}

	slog.InfoContext(ctx, "investigator created",
		"investigator_id", out.Character.ID,
		"owner_id", input.OwnerID,
		"era", era)

	return &CreateInvestigatorOutput{Character: out.Character}, nil
}

func (o *orchestrator) GetInvestigator(
	ctx context.Context,
	input *GetInvestigatorInput,
) (*GetInvestigatorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetInvestigatorOutput{Character: ch, Labels: o.labels(ch, input.Locale)}, nil
}

func (o *orchestrator) ListInvestigators(
	ctx context.Context,
	input *ListInvestigatorsInput,
) (*ListInvestigatorsOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.repo.ListByOwner(ctx, invrepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list investigators")
	}

	return &ListInvestigatorsOutput{Characters: out.Characters}, nil
}

func (o *orchestrator) SaveInvestigator(
	ctx context.Context,
	input *SaveInvestigatorInput,
) (*SaveInvestigatorOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("investigator is required")
	}

	existing, err := o.load(ctx, input.Character.ID)
	if err != nil {
		return nil, err
	}

	next := sanitize(input.Character)
	next.OwnerID = existing.OwnerID
	next.Era = existing.Era
	next.CreatedAt = existing.CreatedAt

	stored, err := o.save(ctx, rules.Recompute(next))
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "investigator saved", "investigator_id", stored.ID)

	return &SaveInvestigatorOutput{Character: stored}, nil
}

func (o *orchestrator) DeleteInvestigator(
	ctx context.Context,
	input *DeleteInvestigatorInput,
) (*DeleteInvestigatorOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("investigator ID is required")
	}

	if _, err := o.repo.Delete(ctx, invrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete investigator")
	}

	if _, err := o.rollLog.Clear(ctx, rolllog.ClearInput{InvestigatorID: input.ID}); err != nil {
		slog.WarnContext(ctx, "failed to clear roll log of deleted investigator",
			"investigator_id", input.ID,
			"error", err.Error())
	}

	slog.InfoContext(ctx, "investigator deleted", "investigator_id", input.ID)

	return &DeleteInvestigatorOutput{}, nil
}

func (o *orchestrator) ExportShareCode(
	ctx context.Context,
	input *ExportShareCodeInput,
) (*ExportShareCodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ch, err := o.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	code, err := o.codec.Encode(ch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode share code")
	}

	slog.DebugContext(ctx, "share code exported",
		"investigator_id", ch.ID,
		"code_length", len(code))

	return &ExportShareCodeOutput{Code: code}, nil
}

func (o *orchestrator) ImportShareCode(
	ctx context.Context,
	input *ImportShareCodeInput,
) (*ImportShareCodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("OwnerID", input.OwnerID, vb)
	errors.ValidateRequired("Code", input.Code, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	decoded, err := o.codec.Decode(input.Code)
	if err != nil {
		return nil, err
	}
	if !decoded.Era.IsValid() {
		return nil, errors.InvalidArgumentf("share code carries unknown era %q", decoded.Era)
	}

	ch := sanitize(decoded)
	ch.ID = o.idGen.Generate()
	ch.OwnerID = input.OwnerID
	ch.CreatedAt = 0
	ch.UpdatedAt = 0

	out, err := o.repo.Create(ctx, invrepo.CreateInput{Character: rules.Recompute(ch)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store imported investigator")
	}

	slog.InfoContext(ctx, "investigator imported from share code",
		"investigator_id", out.Character.ID,
		"owner_id", input.OwnerID)

	return &ImportShareCodeOutput{Character: out.Character}, nil
}

// sanitize clamps client supplied values into range: characteristics to 1-99, point
// counts to non-negative and skill values to at least their base
func sanitize(in *coc.Character) *coc.Character {
	out := in.Clone()

	out.Name = strings.TrimSpace(out.Name)
	if r := []rune(out.Name); len(r) > maxNameLength {
		out.Name = string(r[:maxNameLength])
	}
	if out.Age < 0 {
		out.Age = 0
	}

	for _, name := range coc.AllCharacteristics {
		v := rules.ClampCharacteristic(out.Characteristics.Get(name).Value)
		out.Characteristics.Set(name, rules.SetCharacteristic(v))
	}

	for i := range out.Skills {
		s := &out.Skills[i]
		s.OccupationalPoints = max(0, s.OccupationalPoints)
		s.PersonalPoints = max(0, s.PersonalPoints)
		s.Value = max(s.Value, s.BaseValue)
		s.ImprovementAmount = max(0, s.ImprovementAmount)
	}

	if out.Skills == nil {
		out.Skills = []coc.Skill{}
	}
	if out.Weapons == nil {
		out.Weapons = []coc.Weapon{}
	}
	if out.OccupationalSkills == nil {
		out.OccupationalSkills = []string{}
	}

	return out
}
