// Package v1alpha1 exposes the investigator use cases as the gRPC
// coc.api.v1alpha1.InvestigatorService
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/coc-api/internal/engine/allocator"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/orchestrators/investigator"
)

// HandlerConfig holds dependencies for the investigator handler
type HandlerConfig struct {
	InvestigatorService investigator.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.InvestigatorService == nil {
		return errors.InvalidArgument("investigator service is required")
	}
	return nil
}

// Handler implements InvestigatorServiceServer
type Handler struct {
	service investigator.Service
}

var _ InvestigatorServiceServer = (*Handler)(nil)

// NewHandler creates a new investigator handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.InvestigatorService}, nil
}

// decodeWithID decodes a request whose input carries the investigator id
func decodeWithID(req *structpb.Struct, into any, id func() string) error {
	if err := decode(req, into); err != nil {
		return err
	}
	if id() == "" {
		return errors.InvalidArgument("id is required")
	}
	return nil
}

// CreateInvestigator creates a fresh investigator for an owner
func (h *Handler) CreateInvestigator(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.CreateInvestigatorInput
	if err := decode(req, &input); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if input.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ownerId is required"))
	}

	out, err := h.service.CreateInvestigator(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

// GetInvestigator returns an investigator with localized labels
func (h *Handler) GetInvestigator(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.GetInvestigatorInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetInvestigator(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(getInvestigatorResponse{Character: out.Character, Labels: out.Labels})
}

// ListInvestigators returns an owner's investigators, most recently updated first
func (h *Handler) ListInvestigators(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.ListInvestigatorsInput
	if err := decode(req, &input); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if input.OwnerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ownerId is required"))
	}

	out, err := h.service.ListInvestigators(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	characters := out.Characters
	if characters == nil {
		characters = []*coc.Character{}
	}
	return respond(listInvestigatorsResponse{Characters: characters})
}

// SaveInvestigator replaces a whole record
func (h *Handler) SaveInvestigator(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.SaveInvestigatorInput
	if err := decode(req, &input); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if input.Character == nil || input.Character.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character.id is required"))
	}

	out, err := h.service.SaveInvestigator(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

// DeleteInvestigator removes a record and its roll log
func (h *Handler) DeleteInvestigator(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.DeleteInvestigatorInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.service.DeleteInvestigator(ctx, &input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(emptyResponse{})
}

// UpdateCharacteristics applies typed characteristic entries and age
func (h *Handler) UpdateCharacteristics(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.UpdateCharacteristicsInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.UpdateCharacteristics(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

// RollCharacteristics rolls every characteristic and luck
func (h *Handler) RollCharacteristics(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.RollCharacteristicsInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.RollCharacteristics(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(rollCharacteristicsResponse{
		Character: out.Character,
		Rolls:     convertRolledValues(out.Rolls),
	})
}

// SetOccupation switches to a catalog or custom occupation
func (h *Handler) SetOccupation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.SetOccupationInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SetOccupation(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(setOccupationResponse{
		Character:  out.Character,
		Occupation: out.Occupation,
		Custom:     out.Custom,
	})
}

// CustomizeOccupation renames the occupation and overrides its formula
func (h *Handler) CustomizeOccupation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.CustomizeOccupationInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CustomizeOccupation(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

// SelectOccupationStat picks the stat of a choice formula
func (h *Handler) SelectOccupationStat(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.SelectOccupationStatInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SelectOccupationStat(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondAllocation(out.Allocation)
}

// GetAllocation returns budgets and requirement progress
func (h *Handler) GetAllocation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.GetAllocationInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetAllocation(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondAllocation(out.Allocation)
}

func (h *Handler) respondAllocation(a allocator.Allocation) (*structpb.Struct, error) {
	view, err := convertAllocation(a)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(allocationResponse{Allocation: view})
}

func (h *Handler) respondMutation(out *investigator.MutationOutput, skillID string) (*structpb.Struct, error) {
	resp, err := convertMutation(out, skillID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return respond(resp)
}

// AssignPoints sets a skill's total from one of the pools
func (h *Handler) AssignPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.AssignPointsInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if input.SkillID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skillId is required"))
	}

	out, err := h.service.AssignPoints(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondMutation(out, "")
}

// SelectChoiceOption picks a skill for a choice requirement
func (h *Handler) SelectChoiceOption(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.SelectChoiceOptionInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.SelectChoiceOption(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondMutation(out, "")
}

// DeselectChoiceOption releases a picked skill
func (h *Handler) DeselectChoiceOption(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.DeselectChoiceOptionInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.DeselectChoiceOption(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondMutation(out, "")
}

// AddFieldSpecialization names a specialization for a requirement
func (h *Handler) AddFieldSpecialization(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.AddFieldSpecializationInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.AddFieldSpecialization(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondMutation(&out.MutationOutput, out.SkillID)
}

// AddAnyPick claims a skill for an any requirement
func (h *Handler) AddAnyPick(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.AddAnyPickInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.AddAnyPick(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondMutation(out, "")
}

// AddFieldSlot appends a blank slot to a field
func (h *Handler) AddFieldSlot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.AddFieldSlotInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.AddFieldSlot(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondMutation(&out.MutationOutput, out.SkillID)
}

// RenameSkill names a field slot or custom skill
func (h *Handler) RenameSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.RenameSkillInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.RenameSkill(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respondMutation(out, "")
}

// ListOccupations searches the occupation catalog
func (h *Handler) ListOccupations(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.ListOccupationsInput
	if err := decode(req, &input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ListOccupations(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	occupations := out.Occupations
	if occupations == nil {
		occupations = []coc.OccupationDefinition{}
	}
	return respond(listOccupationsResponse{Occupations: occupations})
}

// MarkForImprovement toggles a development check mark
func (h *Handler) MarkForImprovement(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.MarkForImprovementInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.MarkForImprovement(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(markResponse{Character: out.Character, Applied: out.Applied})
}

// ImproveSkill resolves a development check on a marked skill
func (h *Handler) ImproveSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.ImproveSkillInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if input.SkillID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skillId is required"))
	}

	out, err := h.service.ImproveSkill(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(improveSkillResponse{
		Character: out.Character,
		Skill:     out.Skill,
		State:     out.State,
		CheckRoll: out.CheckRoll,
		Succeeded: out.Succeeded,
		Increment: out.Increment,
		Rolls:     convertImprovementRolls(out.Rolls),
	})
}

// ClearImprovements drops every improvement flag
func (h *Handler) ClearImprovements(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.ClearImprovementsInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ClearImprovements(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

// ExportShareCode encodes an investigator as a share code
func (h *Handler) ExportShareCode(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.ExportShareCodeInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ExportShareCode(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(shareCodeResponse{Code: out.Code})
}

// ImportShareCode stores a shared investigator for the caller
func (h *Handler) ImportShareCode(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.ImportShareCodeInput
	if err := decode(req, &input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ImportShareCode(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(characterResponse{Character: out.Character})
}

// GetRollLog returns the rolls made for an investigator
func (h *Handler) GetRollLog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.GetRollLogInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.GetRollLog(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(convertRollLog(out.Log))
}

// ClearRollLog deletes the rolls made for an investigator
func (h *Handler) ClearRollLog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var input investigator.ClearRollLogInput
	if err := decodeWithID(req, &input, func() string { return input.ID }); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ClearRollLog(ctx, &input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(clearRollLogResponse{EntriesDeleted: out.EntriesDeleted})
}
