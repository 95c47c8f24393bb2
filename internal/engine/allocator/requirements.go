package allocator

import (
	"slices"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

// RequirementStatus is how far one occupation requirement has been filled
type RequirementStatus struct {
	Index       int
	Requirement coc.SkillRequirement
	Required    int
	Filled      int
	SkillIDs    []string

	// CanAdd is false once the requirement holds as many skills as it asks for
	CanAdd bool
}

// Done reports whether the requirement is satisfied
func (r RequirementStatus) Done() bool {
	return r.Filled >= r.Required
}

// Complete reports whether every requirement is satisfied
func Complete(statuses []RequirementStatus) bool {
	for _, st := range statuses {
		if !st.Done() {
			return false
		}
	}
	return true
}

// Resolve matches the character's occupational skills to the requirements of occ.
// Skills are claimed greedily: literal requirements first, then choices, then fields,
// and free picks last so a skill counted elsewhere is never counted twice.
// Statuses are returned in the occupation's declared order.
func Resolve(ch *coc.Character, occ coc.OccupationDefinition) []RequirementStatus {
	statuses := make([]RequirementStatus, len(occ.Requirements))
	claimed := make([]bool, len(ch.Skills))

	if i := ch.SkillIndex(coc.SkillIDCreditRating); i >= 0 {
		claimed[i] = true
	}

	claim := func(st *RequirementStatus, match func(s *coc.Skill) bool) {
		for i := range ch.Skills {
			if st.Filled >= st.Required {
				return
			}
			s := &ch.Skills[i]
			if claimed[i] || !pickable(s) || !s.IsOccupational || !match(s) {
				continue
			}
			claimed[i] = true
			st.Filled++
			st.SkillIDs = append(st.SkillIDs, s.ID)
		}
	}

	for _, kind := range []coc.RequirementKind{
		coc.RequirementSkill, coc.RequirementChoice, coc.RequirementField, coc.RequirementAny,
	} {
		for i, req := range occ.Requirements {
			if req.Kind() != kind {
				continue
			}
			st := RequirementStatus{Index: i, Requirement: req, Required: req.Slots()}

			switch r := req.(type) {
			case coc.SkillRef:
				claim(&st, func(s *coc.Skill) bool { return s.Name == r.Skill })
			case coc.ChoiceRequirement:
				claim(&st, func(s *coc.Skill) bool { return matchesOption(s, r.Options) })
				st.CanAdd = st.Filled < st.Required
			case coc.FieldRequirement:
				claim(&st, func(s *coc.Skill) bool { return s.Field == r.Field })
				st.CanAdd = st.Filled < st.Required
			case coc.AnyRequirement:
				claim(&st, func(*coc.Skill) bool { return true })
				st.CanAdd = st.Filled < st.Required
			}

			statuses[i] = st
		}
	}

	return statuses
}

// pickable reports whether a skill may satisfy a requirement at all
func pickable(s *coc.Skill) bool {
	return s.Editable() && !s.IsBlank()
}

func matchesOption(s *coc.Skill, options []coc.ChoiceOption) bool {
	for _, o := range options {
		if o.IsField() {
			if s.Field == o.Field {
				return true
			}
			continue
		}
		if s.Name == o.Skill {
			return true
		}
	}
	return false
}

// literalNames returns the literal skill names of an occupation
func literalNames(occ coc.OccupationDefinition) []string {
	var out []string
	for _, req := range occ.Requirements {
		if r, ok := req.(coc.SkillRef); ok {
			out = append(out, r.Skill)
		}
	}
	return out
}

func requirementAt(occ coc.OccupationDefinition, index int) (coc.SkillRequirement, bool) {
	if index < 0 || index >= len(occ.Requirements) {
		return nil, false
	}
	return occ.Requirements[index], true
}

// pick marks the skill at idx occupational and commits the default points when the
// budget allows. The selection stands even if the budget is exhausted.
func pick(ch *coc.Character, idx int, selected coc.Characteristic) *coc.Character {
	out := ch.Clone()
	out.Skills[idx].IsOccupational = true
	if !slices.Contains(out.OccupationalSkills, out.Skills[idx].Name) {
		out.OccupationalSkills = append(out.OccupationalSkills, out.Skills[idx].Name)
	}

	budget := Budgets(out, selected)
	target := out.Skills[idx].Value + coc.DefaultOccupationPoints
	if skills, ok := AssignPoints(out.Skills, idx, target, coc.PoolOccupation, budget.OccupationTotal); ok {
		out.Skills = skills
	}
	return out
}

// SelectChoice picks an existing skill for the choice requirement at reqIndex
func (a *Allocator) SelectChoice(ch *coc.Character, occ coc.OccupationDefinition, reqIndex int, skillID string, selected coc.Characteristic) (*coc.Character, bool) {
	req, ok := requirementAt(occ, reqIndex)
	if !ok {
		return ch, false
	}
	choice, ok := req.(coc.ChoiceRequirement)
	if !ok {
		return ch, false
	}

	idx := ch.SkillIndex(skillID)
	if idx < 0 {
		return ch, false
	}
	s := &ch.Skills[idx]
	if !pickable(s) || s.IsOccupational || !matchesOption(s, choice.Options) {
		return ch, false
	}
	if !Resolve(ch, occ)[reqIndex].CanAdd {
		return ch, false
	}

	return pick(ch, idx, selected), true
}

// AddAnyPick picks a skill for the free-pick requirement at reqIndex
func (a *Allocator) AddAnyPick(ch *coc.Character, occ coc.OccupationDefinition, reqIndex int, skillID string, selected coc.Characteristic) (*coc.Character, bool) {
	req, ok := requirementAt(occ, reqIndex)
	if !ok || req.Kind() != coc.RequirementAny {
		return ch, false
	}

	idx := ch.SkillIndex(skillID)
	if idx < 0 || skillID == coc.SkillIDCreditRating {
		return ch, false
	}
	s := &ch.Skills[idx]
	if !pickable(s) || s.IsOccupational {
		return ch, false
	}
	if !Resolve(ch, occ)[reqIndex].CanAdd {
		return ch, false
	}

	return pick(ch, idx, selected), true
}

// DeselectChoice drops a picked skill from the occupation and refunds its occupation
// points. Literal requirement skills and Credit Rating cannot be dropped.
func (a *Allocator) DeselectChoice(ch *coc.Character, occ coc.OccupationDefinition, skillID string) (*coc.Character, bool) {
	idx := ch.SkillIndex(skillID)
	if idx < 0 || skillID == coc.SkillIDCreditRating {
		return ch, false
	}
	s := &ch.Skills[idx]
	if !s.IsOccupational || slices.Contains(literalNames(occ), s.Name) {
		return ch, false
	}

	out := ch.Clone()
	target := &out.Skills[idx]
	target.IsOccupational = false
	refund(target)
	out.OccupationalSkills = slices.DeleteFunc(out.OccupationalSkills, func(n string) bool {
		return n == target.Name
	})
	return out, true
}

// AddFieldSpecialization names a "{field}: {text}" specialization and picks it for the
// requirement at reqIndex, which may be a field requirement, a choice offering the field,
// or a free-pick requirement. A blank slot of the field is reused before a new one is
// inserted.
func (a *Allocator) AddFieldSpecialization(ch *coc.Character, occ coc.OccupationDefinition, reqIndex int, field, text string, selected coc.Characteristic) (*coc.Character, string, bool) {
	req, ok := requirementAt(occ, reqIndex)
	if !ok || text == "" || !a.acceptsField(req, field) {
		return ch, "", false
	}
	if !Resolve(ch, occ)[reqIndex].CanAdd {
		return ch, "", false
	}

	name := coc.SpecializationName(field, text)
	if idx := ch.SkillByName(name); idx >= 0 {
		if ch.Skills[idx].IsOccupational {
			return ch, "", false
		}
		return pick(ch, idx, selected), ch.Skills[idx].ID, true
	}

	header := headerIndex(ch.Skills, field)
	if header < 0 {
		return ch, "", false
	}

	out := ch.Clone()
	idx := blankSlotIndex(out.Skills, field)
	if idx < 0 {
		slot := coc.Skill{
			ID:          a.idGen.Generate(),
			BaseValue:   out.Skills[header].BaseValue,
			Value:       out.Skills[header].BaseValue,
			Field:       field,
			IsFieldSlot: true,
		}
		out.Skills, idx = InsertFieldSlot(out.Skills, field, slot)
	}
	out.Skills[idx].Name = name

	return pick(out, idx, selected), out.Skills[idx].ID, true
}

func (a *Allocator) acceptsField(req coc.SkillRequirement, field string) bool {
	switch r := req.(type) {
	case coc.FieldRequirement:
		return r.Field == field
	case coc.ChoiceRequirement:
		for _, o := range r.Options {
			if o.Field == field {
				return true
			}
		}
		return false
	case coc.AnyRequirement:
		return true
	default:
		return false
	}
}

func headerIndex(skills []coc.Skill, field string) int {
	for i := range skills {
		if skills[i].IsFieldHeader && skills[i].Field == field {
			return i
		}
	}
	return -1
}

func blankSlotIndex(skills []coc.Skill, field string) int {
	for i := range skills {
		if skills[i].IsFieldSlot && skills[i].Field == field && skills[i].IsBlank() {
			return i
		}
	}
	return -1
}

// CreditRatingInRange reports whether the Credit Rating skill sits inside the
// occupation's range
func CreditRatingInRange(ch *coc.Character, occ coc.OccupationDefinition) bool {
	idx := ch.SkillIndex(coc.SkillIDCreditRating)
	if idx < 0 {
		return false
	}
	return occ.CreditRating.Contains(ch.Skills[idx].Value)
}
