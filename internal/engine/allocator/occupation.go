package allocator

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

// SwitchOccupation replaces the character's occupation wholesale. Occupation points are
// refunded, every pick is dropped and the literal requirement skills plus Credit Rating
// become the new occupational list. Callers reset any stored stat selection.
func SwitchOccupation(ch *coc.Character, occ coc.OccupationDefinition) *coc.Character {
	out := ch.Clone()

	for i := range out.Skills {
		refund(&out.Skills[i])
		out.Skills[i].IsOccupational = false
	}

	out.Occupation = occ.Name
	out.OccupationFormula = occ.Formula
	if _, err := ParseFormula(out.OccupationFormula); err != nil {
		out.OccupationFormula = DefaultFormula
	}

	out.OccupationalSkills = []string{}
	mark := func(idx int) {
		if idx < 0 || !out.Skills[idx].Editable() {
			return
		}
		out.Skills[idx].IsOccupational = true
		if !slices.Contains(out.OccupationalSkills, out.Skills[idx].Name) {
			out.OccupationalSkills = append(out.OccupationalSkills, out.Skills[idx].Name)
		}
	}
	for _, name := range literalNames(occ) {
		mark(out.SkillByName(name))
	}
	mark(out.SkillIndex(coc.SkillIDCreditRating))

	return out
}

// CustomizeOccupation renames the occupation and replaces its formula, keeping picks and
// spent points. An empty formula keeps the current one.
func CustomizeOccupation(ch *coc.Character, name, formula string) *coc.Character {
	out := ch.Clone()
	out.Occupation = strings.TrimSpace(name)
	if formula = strings.TrimSpace(formula); formula != "" {
		out.OccupationFormula = formula
	}
	return out
}

// InsertFieldSlot places slot directly after the last skill of its field and returns the
// new list with the slot's index. Unknown fields append at the end.
func InsertFieldSlot(skills []coc.Skill, field string, slot coc.Skill) ([]coc.Skill, int) {
	at := len(skills)
	for i := len(skills) - 1; i >= 0; i-- {
		if skills[i].Field == field {
			at = i + 1
			break
		}
	}

	out := make([]coc.Skill, 0, len(skills)+1)
	out = append(out, skills[:at]...)
	out = append(out, slot)
	out = append(out, skills[at:]...)
	return out, at
}

// AddFieldSlot inserts a blank specialization slot under an existing field header
func (a *Allocator) AddFieldSlot(ch *coc.Character, field string) (*coc.Character, string, bool) {
	header := headerIndex(ch.Skills, field)
	if header < 0 {
		return ch, "", false
	}

	base := ch.Skills[header].BaseValue
	slot := coc.Skill{
		ID:          a.idGen.Generate(),
		BaseValue:   base,
		Value:       base,
		Field:       field,
		IsFieldSlot: true,
	}

	out := ch.Clone()
	out.Skills, _ = InsertFieldSlot(out.Skills, field, slot)
	return out, slot.ID, true
}

// RenameSkill names a field slot or custom skill. Field slots take the compound
// "{field}: {text}" name; empty text blanks the row again. Catalog skills cannot be renamed.
func RenameSkill(ch *coc.Character, skillID, text string) (*coc.Character, bool) {
	idx := ch.SkillIndex(skillID)
	if idx < 0 {
		return ch, false
	}
	s := ch.Skills[idx]
	if !s.IsFieldSlot && !s.IsCustom {
		return ch, false
	}

	text = strings.TrimSpace(text)
	name := text
	if s.IsFieldSlot && text != "" {
		name = coc.SpecializationName(s.Field, text)
	}
	if name != "" && name != s.Name && ch.SkillByName(name) >= 0 {
		return ch, false
	}
	if name == "" && s.IsOccupational {
		return ch, false
	}

	out := ch.Clone()
	target := &out.Skills[idx]
	for i, n := range out.OccupationalSkills {
		if n == target.Name && target.IsOccupational {
			out.OccupationalSkills[i] = name
		}
	}
	target.Name = name
	if target.IsCustom {
		target.CustomName = text
	}
	return out, true
}
