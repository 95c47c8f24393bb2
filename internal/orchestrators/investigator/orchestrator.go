// Package investigator implements the use cases of the investigator sheet: it loads a
// record, runs the rules engine, allocator or improvement resolver over it, and stores
// the result as a whole-record replacement.
package investigator

//go:generate mockgen -destination=mock/mock_service.go -package=investigatormock github.com/KirkDiggler/coc-api/internal/orchestrators/investigator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/coc-api/internal/catalog"
	"github.com/KirkDiggler/coc-api/internal/engine/allocator"
	"github.com/KirkDiggler/coc-api/internal/engine/rules"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/i18n"
	"github.com/KirkDiggler/coc-api/internal/pkg/idgen"
	invrepo "github.com/KirkDiggler/coc-api/internal/repositories/investigator"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
)

// Service defines the investigator use cases
type Service interface {
	// Records
	CreateInvestigator(ctx context.Context, input *CreateInvestigatorInput) (*CreateInvestigatorOutput, error)
	GetInvestigator(ctx context.Context, input *GetInvestigatorInput) (*GetInvestigatorOutput, error)
	ListInvestigators(ctx context.Context, input *ListInvestigatorsInput) (*ListInvestigatorsOutput, error)
	SaveInvestigator(ctx context.Context, input *SaveInvestigatorInput) (*SaveInvestigatorOutput, error)
	DeleteInvestigator(ctx context.Context, input *DeleteInvestigatorInput) (*DeleteInvestigatorOutput, error)

	// Characteristics
	UpdateCharacteristics(ctx context.Context, input *UpdateCharacteristicsInput) (*UpdateCharacteristicsOutput, error)
	RollCharacteristics(ctx context.Context, input *RollCharacteristicsInput) (*RollCharacteristicsOutput, error)

	// Occupation and skill points
	SetOccupation(ctx context.Context, input *SetOccupationInput) (*SetOccupationOutput, error)
	CustomizeOccupation(ctx context.Context, input *CustomizeOccupationInput) (*CustomizeOccupationOutput, error)
	SelectOccupationStat(ctx context.Context, input *SelectOccupationStatInput) (*SelectOccupationStatOutput, error)
	GetAllocation(ctx context.Context, input *GetAllocationInput) (*GetAllocationOutput, error)
	AssignPoints(ctx context.Context, input *AssignPointsInput) (*AssignPointsOutput, error)
	SelectChoiceOption(ctx context.Context, input *SelectChoiceOptionInput) (*SelectChoiceOptionOutput, error)
	DeselectChoiceOption(ctx context.Context, input *DeselectChoiceOptionInput) (*DeselectChoiceOptionOutput, error)
	AddFieldSpecialization(ctx context.Context, input *AddFieldSpecializationInput) (*AddFieldSpecializationOutput, error)
	AddAnyPick(ctx context.Context, input *AddAnyPickInput) (*AddAnyPickOutput, error)
	AddFieldSlot(ctx context.Context, input *AddFieldSlotInput) (*AddFieldSlotOutput, error)
	RenameSkill(ctx context.Context, input *RenameSkillInput) (*RenameSkillOutput, error)
	ListOccupations(ctx context.Context, input *ListOccupationsInput) (*ListOccupationsOutput, error)

	// Development
	MarkForImprovement(ctx context.Context, input *MarkForImprovementInput) (*MarkForImprovementOutput, error)
	ImproveSkill(ctx context.Context, input *ImproveSkillInput) (*ImproveSkillOutput, error)
	ClearImprovements(ctx context.Context, input *ClearImprovementsInput) (*ClearImprovementsOutput, error)

	// Sharing
	ExportShareCode(ctx context.Context, input *ExportShareCodeInput) (*ExportShareCodeOutput, error)
	ImportShareCode(ctx context.Context, input *ImportShareCodeInput) (*ImportShareCodeOutput, error)

	// Roll log
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)
}

// ShareCodec turns records into share codes and back
type ShareCodec interface {
	Encode(ch *coc.Character) (string, error)
	Decode(code string) (*coc.Character, error)
}

// Config holds the dependencies for the investigator orchestrator
type Config struct {
	InvestigatorRepo invrepo.Repository
	RollLogRepo      rolllog.Repository
	ShareCodec       ShareCodec
	Roller           dice.Roller
	IDGenerator      idgen.Generator

	// SkillIDGenerator names dynamically added skill rows, defaults to prefixed ids
	SkillIDGenerator idgen.Generator

	// DefaultLocale labels sheets when a request names no usable locale
	DefaultLocale i18n.Locale
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.InvestigatorRepo == nil {
		vb.RequiredField("InvestigatorRepo")
	}
	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.ShareCodec == nil {
		vb.RequiredField("ShareCodec")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo          invrepo.Repository
	rollLog       rolllog.Repository
	codec         ShareCodec
	roller        dice.Roller
	idGen         idgen.Generator
	allocator     *allocator.Allocator
	defaultLocale i18n.Locale
}

// NewOrchestrator creates a new investigator orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	skillIDs := cfg.SkillIDGenerator
	if skillIDs == nil {
		skillIDs = idgen.NewPrefixed("skill")
	}

	alloc, err := allocator.New(&allocator.Config{IDGenerator: skillIDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create allocator")
	}

	locale := cfg.DefaultLocale
	if locale == "" {
		locale = i18n.DefaultLocale
	}

	return &orchestrator{
		repo:          cfg.InvestigatorRepo,
		rollLog:       cfg.RollLogRepo,
		codec:         cfg.ShareCodec,
		roller:        cfg.Roller,
		idGen:         cfg.IDGenerator,
		allocator:     alloc,
		defaultLocale: locale,
	}, nil
}

// sheet is a loaded record with the occupation state the allocator needs
type sheet struct {
	character  *coc.Character
	occupation coc.OccupationDefinition
	stat       coc.Characteristic
}

func (s *sheet) summary() allocator.Allocation {
	return allocator.Summarize(s.character, s.occupation, s.stat)
}

func (o *orchestrator) load(ctx context.Context, id string) (*coc.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("investigator ID is required")
	}

	out, err := o.repo.Get(ctx, invrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get investigator")
	}

	return out.Character, nil
}

func (o *orchestrator) loadSheet(ctx context.Context, id string) (*sheet, error) {
	ch, err := o.load(ctx, id)
	if err != nil {
		return nil, err
	}

	stat, err := o.repo.GetOccupationStat(ctx, invrepo.GetOccupationStatInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get occupation stat")
	}

	occ, _ := catalog.OccupationOrCustom(ch.Occupation)
	return &sheet{character: ch, occupation: occ, stat: stat.Stat}, nil
}

// loadOccupationSheet is loadSheet for edits that only make sense once an
// occupation has been chosen
func (o *orchestrator) loadOccupationSheet(ctx context.Context, id string) (*sheet, error) {
	s, err := o.loadSheet(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.character.Occupation == "" {
		return nil, errors.FailedPrecondition("investigator has no occupation").
			WithMeta("investigator_id", id)
	}
	return s, nil
}

func (o *orchestrator) save(ctx context.Context, ch *coc.Character) (*coc.Character, error) {
	out, err := o.repo.Update(ctx, invrepo.UpdateInput{Character: ch})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save investigator")
	}
	return out.Character, nil
}

// commit recomputes and stores an allocator edit when it was applied, and reports
// the allocation either way
func (o *orchestrator) commit(ctx context.Context, s *sheet, next *coc.Character, applied bool, op string) (MutationOutput, error) {
	if !applied {
		slog.DebugContext(ctx, "edit rejected",
			"operation", op,
			"investigator_id", s.character.ID)
		return MutationOutput{Character: s.character, Allocation: s.summary(), Applied: false}, nil
	}

	stored, err := o.save(ctx, rules.Recompute(next))
	if err != nil {
		return MutationOutput{}, err
	}
	s.character = stored

	return MutationOutput{Character: stored, Allocation: s.summary(), Applied: true}, nil
}

func (o *orchestrator) labels(ch *coc.Character, locale string) Labels {
	loc := o.defaultLocale
	if locale != "" {
		loc = i18n.Match(locale)
	}
	table := i18n.For(loc)

	return Labels{
		Locale:          table.Locale(),
		Skills:          table.SkillNames(ch.Skills),
		Characteristics: table.CharacteristicNames(),
	}
}
