package investigator

import (
	"github.com/KirkDiggler/coc-api/internal/engine/allocator"
	"github.com/KirkDiggler/coc-api/internal/engine/improvement"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/i18n"
	rolllog "github.com/KirkDiggler/coc-api/internal/repositories/roll_log"
)

// Labels are the display names of a sheet in one locale
type Labels struct {
	Locale          i18n.Locale                   `json:"locale"`
	Skills          map[string]string             `json:"skills"`
	Characteristics map[coc.Characteristic]string `json:"characteristics"`
}

// CreateInvestigatorInput defines the request for creating an investigator
type CreateInvestigatorInput struct {
	OwnerID string
	Name    string
	Player  string
	Era     coc.Era
}

// CreateInvestigatorOutput defines the response for creating an investigator
type CreateInvestigatorOutput struct {
	Character *coc.Character
}

// GetInvestigatorInput defines the request for getting an investigator
type GetInvestigatorInput struct {
	ID string
	// Locale is a language tag or Accept-Language list; empty uses the default
	Locale string
}

// GetInvestigatorOutput defines the response for getting an investigator
type GetInvestigatorOutput struct {
	Character *coc.Character
	Labels    Labels
}

// ListInvestigatorsInput defines the request for listing an owner's investigators
type ListInvestigatorsInput struct {
	OwnerID string
}

// ListInvestigatorsOutput defines the response for listing an owner's investigators
type ListInvestigatorsOutput struct {
	Characters []*coc.Character
}

// SaveInvestigatorInput replaces the editable parts of a record wholesale. Derived
// values are recomputed, the owner and timestamps of the stored record win.
type SaveInvestigatorInput struct {
	Character *coc.Character
}

// SaveInvestigatorOutput defines the response for saving an investigator
type SaveInvestigatorOutput struct {
	Character *coc.Character
}

// DeleteInvestigatorInput defines the request for deleting an investigator
type DeleteInvestigatorInput struct {
	ID string
}

// DeleteInvestigatorOutput defines the response for deleting an investigator
type DeleteInvestigatorOutput struct{}

// UpdateCharacteristicsInput carries raw characteristic entries. Values that do not
// parse fall back to the current value.
type UpdateCharacteristicsInput struct {
	ID     string
	Values map[coc.Characteristic]string
	Age    *int
}

// UpdateCharacteristicsOutput defines the response for updating characteristics
type UpdateCharacteristicsOutput struct {
	Character *coc.Character
}

// RollCharacteristicsInput defines the request for rolling all characteristics
type RollCharacteristicsInput struct {
	ID string
}

// RolledValue is the outcome of one characteristic roll
type RolledValue struct {
	Name     string
	Notation string
	Dice     []int
	Value    int
}

// RollCharacteristicsOutput defines the response for rolling characteristics
type RollCharacteristicsOutput struct {
	Character *coc.Character
	Rolls     []RolledValue
}

// SetOccupationInput switches to a catalog occupation, or a custom one when the
// name is unknown
type SetOccupationInput struct {
	ID         string
	Occupation string
}

// SetOccupationOutput defines the response for switching occupation
type SetOccupationOutput struct {
	Character  *coc.Character
	Occupation coc.OccupationDefinition
	Custom     bool
}

// CustomizeOccupationInput renames the occupation and optionally overrides its formula
type CustomizeOccupationInput struct {
	ID      string
	Name    string
	Formula string
}

// CustomizeOccupationOutput defines the response for customizing an occupation
type CustomizeOccupationOutput struct {
	Character *coc.Character
}

// SelectOccupationStatInput picks the characteristic of a choice formula. An empty
// Stat clears the selection so the higher candidate is used.
type SelectOccupationStatInput struct {
	ID   string
	Stat coc.Characteristic
}

// SelectOccupationStatOutput defines the response for selecting the stat
type SelectOccupationStatOutput struct {
	Allocation allocator.Allocation
}

// GetAllocationInput defines the request for the allocation summary
type GetAllocationInput struct {
	ID string
}

// GetAllocationOutput defines the response for the allocation summary
type GetAllocationOutput struct {
	Allocation allocator.Allocation
}

// AssignPointsInput sets a skill's total value, paying the difference from a pool
type AssignPointsInput struct {
	ID       string
	SkillID  string
	NewTotal int
	Pool     coc.Pool
}

// MutationOutput is returned by every allocator edit. Applied is false when the edit
// was a silent rejection, in which case Character is the unchanged record.
type MutationOutput struct {
	Character  *coc.Character
	Allocation allocator.Allocation
	Applied    bool
}

// AssignPointsOutput defines the response for assigning points
type AssignPointsOutput = MutationOutput

// SelectChoiceOptionInput picks a skill for a choice requirement
type SelectChoiceOptionInput struct {
	ID               string
	RequirementIndex int
	SkillID          string
}

// SelectChoiceOptionOutput defines the response for selecting a choice option
type SelectChoiceOptionOutput = MutationOutput

// DeselectChoiceOptionInput releases a picked skill and refunds its occupation points
type DeselectChoiceOptionInput struct {
	ID      string
	SkillID string
}

// DeselectChoiceOptionOutput defines the response for deselecting a choice option
type DeselectChoiceOptionOutput = MutationOutput

// AddFieldSpecializationInput names a specialization for a field, choice or any requirement
type AddFieldSpecializationInput struct {
	ID               string
	RequirementIndex int
	Field            string
	Text             string
}

// AddFieldSpecializationOutput defines the response for adding a specialization
type AddFieldSpecializationOutput struct {
	MutationOutput
	SkillID string
}

// AddAnyPickInput claims a skill for an any requirement
type AddAnyPickInput struct {
	ID               string
	RequirementIndex int
	SkillID          string
}

// AddAnyPickOutput defines the response for adding an any pick
type AddAnyPickOutput = MutationOutput

// AddFieldSlotInput appends a blank slot to a field
type AddFieldSlotInput struct {
	ID    string
	Field string
}

// AddFieldSlotOutput defines the response for adding a field slot
type AddFieldSlotOutput struct {
	MutationOutput
	SkillID string
}

// RenameSkillInput names a field slot or custom skill
type RenameSkillInput struct {
	ID      string
	SkillID string
	Text    string
}

// RenameSkillOutput defines the response for renaming a skill
type RenameSkillOutput = MutationOutput

// MarkForImprovementInput toggles a skill's development check mark
type MarkForImprovementInput struct {
	ID      string
	SkillID string
	Marked  bool
}

// MarkForImprovementOutput defines the response for marking a skill
type MarkForImprovementOutput struct {
	Character *coc.Character
	Applied   bool
}

// ImprovementMode selects how an improvement is resolved
type ImprovementMode string

const (
	ImprovementModeManual ImprovementMode = "manual"
	ImprovementModeRoll   ImprovementMode = "roll"
)

// ImproveSkillInput runs a development check on a marked skill
type ImproveSkillInput struct {
	ID      string
	SkillID string
	Mode    ImprovementMode
	// Amount is the increment for manual mode
	Amount int
	// CancelOnFailure leaves the skill untouched when the check fails instead of
	// recording a failed check
	CancelOnFailure bool
}

// ImproveSkillOutput defines the response for an improvement check
type ImproveSkillOutput struct {
	Character *coc.Character
	Skill     coc.Skill
	State     improvement.State
	CheckRoll int
	Succeeded bool
	Increment int
	Rolls     []improvement.Roll
}

// ClearImprovementsInput defines the request for clearing every improvement flag
type ClearImprovementsInput struct {
	ID string
}

// ClearImprovementsOutput defines the response for clearing improvement flags
type ClearImprovementsOutput struct {
	Character *coc.Character
}

// ExportShareCodeInput defines the request for exporting a share code
type ExportShareCodeInput struct {
	ID string
}

// ExportShareCodeOutput defines the response for exporting a share code
type ExportShareCodeOutput struct {
	Code string
}

// ImportShareCodeInput stores the investigator of a share code as a new record
type ImportShareCodeInput struct {
	OwnerID string
	Code    string
}

// ImportShareCodeOutput defines the response for importing a share code
type ImportShareCodeOutput struct {
	Character *coc.Character
}

// ListOccupationsInput filters the occupation catalog
type ListOccupationsInput struct {
	Era   coc.Era
	Query string
	Limit int
}

// ListOccupationsOutput defines the response for listing occupations
type ListOccupationsOutput struct {
	Occupations []coc.OccupationDefinition
}

// GetRollLogInput defines the request for an investigator's roll log
type GetRollLogInput struct {
	ID string
}

// GetRollLogOutput defines the response for an investigator's roll log
type GetRollLogOutput struct {
	Log *rolllog.RollLog
}

// ClearRollLogInput defines the request for clearing a roll log
type ClearRollLogInput struct {
	ID string
}

// ClearRollLogOutput defines the response for clearing a roll log
type ClearRollLogOutput struct {
	EntriesDeleted int
}
