// Package catalog holds the static skill and occupation data investigators are built from.
// Everything returned from this package is a copy; the underlying tables are never mutated.
package catalog

import (
	"fmt"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

// SpecialBase marks skills whose base follows a characteristic
type SpecialBase string

const (
	SpecialNone  SpecialBase = ""
	SpecialDodge SpecialBase = "dodge"
	SpecialEDU   SpecialBase = "edu"
)

// CustomSkillSlots is the number of blank rows appended for free-form skills
const CustomSkillSlots = 6

// SkillDefinition is one entry of an era's skill list
type SkillDefinition struct {
	ID      string
	Name    string
	Base    int
	Special SpecialBase

	// Field headers expand into a label row, fixed specializations, then blank slots
	IsFieldHeader bool
	SubSkills     []SubSkill
	FieldSlots    int
}

// SubSkill is a fixed specialization printed under a field header
type SubSkill struct {
	ID   string
	Name string
	Base int
}

var commonSkills = []SkillDefinition{
	{ID: "accounting", Name: "Accounting", Base: 5},
	{ID: "anthropology", Name: "Anthropology", Base: 1},
	{ID: "appraise", Name: "Appraise", Base: 5},
	{ID: "archaeology", Name: "Archaeology", Base: 1},
	{ID: "art_craft", Name: "Art/Craft", Base: 5, IsFieldHeader: true, FieldSlots: 3},
	{ID: "charm", Name: "Charm", Base: 15},
	{ID: "climb", Name: "Climb", Base: 20},
	{ID: coc.SkillIDCreditRating, Name: coc.SkillCreditRating, Base: 0},
	{ID: coc.SkillIDCthulhu, Name: coc.SkillCthulhuMythos, Base: 0},
	{ID: "disguise", Name: "Disguise", Base: 5},
	{ID: coc.SkillIDDodge, Name: coc.SkillDodge, Special: SpecialDodge},
}

var skills1920s = concat(commonSkills, []SkillDefinition{
	{ID: "drive_auto", Name: "Drive Auto", Base: 20},
	{ID: "elec_repair", Name: "Electrical Repair", Base: 10},
	{ID: "fast_talk", Name: "Fast Talk", Base: 5},
	{ID: "fighting", Name: "Fighting", Base: 0, IsFieldHeader: true, FieldSlots: 2, SubSkills: []SubSkill{
		{ID: "fighting_brawl", Name: "Brawl", Base: 25},
	}},
	{ID: "firearms", Name: "Firearms", Base: 0, IsFieldHeader: true, FieldSlots: 1, SubSkills: []SubSkill{
		{ID: "firearms_handgun", Name: "Handgun", Base: 20},
		{ID: "firearms_rifle", Name: "Rifle/Shotgun", Base: 25},
	}},
	{ID: "first_aid", Name: "First Aid", Base: 30},
	{ID: "history", Name: "History", Base: 5},
	{ID: "intimidate", Name: "Intimidate", Base: 15},
	{ID: "jump", Name: "Jump", Base: 20},
	{ID: "language_other", Name: "Language (Other)", Base: 1, IsFieldHeader: true, FieldSlots: 3},
	{ID: coc.SkillIDOwnLanguage, Name: coc.SkillOwnLanguage, Special: SpecialEDU},
	{ID: "law", Name: "Law", Base: 5},
	{ID: "library_use", Name: "Library Use", Base: 20},
	{ID: "listen", Name: "Listen", Base: 20},
	{ID: "locksmith", Name: "Locksmith", Base: 1},
	{ID: "mech_repair", Name: "Mechanical Repair", Base: 10},
	{ID: "medicine", Name: "Medicine", Base: 1},
	{ID: "natural_world", Name: "Natural World", Base: 10},
	{ID: "navigate", Name: "Navigate", Base: 10},
	{ID: "occult", Name: "Occult", Base: 5},
	{ID: "op_hv_machine", Name: "Operate Heavy Machinery", Base: 1},
	{ID: "persuade", Name: "Persuade", Base: 10},
	{ID: "pilot", Name: "Pilot", Base: 1, IsFieldHeader: true, FieldSlots: 1},
	{ID: "psychoanalysis", Name: "Psychoanalysis", Base: 1},
	{ID: "psychology", Name: "Psychology", Base: 10},
	{ID: "ride", Name: "Ride", Base: 5},
	{ID: "science", Name: "Science", Base: 1, IsFieldHeader: true, FieldSlots: 3},
	{ID: "sleight_of_hand", Name: "Sleight of Hand", Base: 10},
	{ID: "spot_hidden", Name: "Spot Hidden", Base: 25},
	{ID: "stealth", Name: "Stealth", Base: 20},
	{ID: "survival", Name: "Survival", Base: 10, IsFieldHeader: true, FieldSlots: 1},
	{ID: "swim", Name: "Swim", Base: 20},
	{ID: "throw", Name: "Throw", Base: 20},
	{ID: "track", Name: "Track", Base: 10},
})

var skillsModern = insertAfter(skills1920s, "climb", SkillDefinition{
	ID: "computer_use", Name: "Computer Use", Base: 5,
}, SkillDefinition{
	ID: "electronics", Name: "Electronics", Base: 1,
})

var skillsDarkAges = concat(commonSkills, []SkillDefinition{
	{ID: "fast_talk", Name: "Fast Talk", Base: 5},
	{ID: "fighting", Name: "Fighting", Base: 0, IsFieldHeader: true, FieldSlots: 2, SubSkills: []SubSkill{
		{ID: "fighting_brawl", Name: "Brawl", Base: 25},
		{ID: "fighting_sword", Name: "Sword", Base: 20},
		{ID: "fighting_spear", Name: "Spear", Base: 20},
	}},
	{ID: "first_aid", Name: "First Aid", Base: 30},
	{ID: "history", Name: "History", Base: 5},
	{ID: "intimidate", Name: "Intimidate", Base: 15},
	{ID: "jump", Name: "Jump", Base: 20},
	{ID: "language_other", Name: "Language (Other)", Base: 1, IsFieldHeader: true, FieldSlots: 2},
	{ID: coc.SkillIDOwnLanguage, Name: coc.SkillOwnLanguage, Special: SpecialEDU},
	{ID: "law", Name: "Law", Base: 5},
	{ID: "listen", Name: "Listen", Base: 20},
	{ID: "medicine", Name: "Medicine", Base: 1},
	{ID: "missile_weapons", Name: "Missile Weapons", Base: 0, IsFieldHeader: true, FieldSlots: 1, SubSkills: []SubSkill{
		{ID: "missile_bow", Name: "Bow", Base: 15},
		{ID: "missile_crossbow", Name: "Crossbow", Base: 25},
	}},
	{ID: "natural_world", Name: "Natural World", Base: 10},
	{ID: "navigate", Name: "Navigate", Base: 10},
	{ID: "occult", Name: "Occult", Base: 5},
	{ID: "other_kingdoms", Name: "Other Kingdoms", Base: 10},
	{ID: "persuade", Name: "Persuade", Base: 10},
	{ID: "psychology", Name: "Psychology", Base: 10},
	{ID: "read_write", Name: "Read/Write Language", Base: 1},
	{ID: "ride", Name: "Ride", Base: 5},
	{ID: "science", Name: "Science", Base: 1, IsFieldHeader: true, FieldSlots: 1},
	{ID: "sleight_of_hand", Name: "Sleight of Hand", Base: 10},
	{ID: "spot_hidden", Name: "Spot Hidden", Base: 25},
	{ID: "stealth", Name: "Stealth", Base: 20},
	{ID: "survival", Name: "Survival", Base: 10, IsFieldHeader: true, FieldSlots: 1},
	{ID: "swim", Name: "Swim", Base: 20},
	{ID: "throw", Name: "Throw", Base: 20},
	{ID: "track", Name: "Track", Base: 10},
})

// SkillDefinitions returns the skill list for an era, falling back to the 1920s list
func SkillDefinitions(era coc.Era) []SkillDefinition {
	switch era {
	case coc.EraModern:
		return append([]SkillDefinition(nil), skillsModern...)
	case coc.EraDarkAges:
		return append([]SkillDefinition(nil), skillsDarkAges...)
	default:
		return append([]SkillDefinition(nil), skills1920s...)
	}
}

// SeedSkills expands an era's definitions into the flat skill list of a new investigator.
// Special bases get the placeholder for default characteristics; the rules engine
// recomputes them.
func SeedSkills(era coc.Era) []coc.Skill {
	defs := SkillDefinitions(era)
	out := make([]coc.Skill, 0, len(defs)*2+CustomSkillSlots)

	for _, def := range defs {
		if !def.IsFieldHeader {
			base := def.Base
			switch def.Special {
			case SpecialDodge:
				base = coc.DefaultCharacteristicValue / 2
			case SpecialEDU:
				base = coc.DefaultCharacteristicValue
			}
			out = append(out, coc.Skill{ID: def.ID, Name: def.Name, BaseValue: base, Value: base})
			continue
		}

		out = append(out, coc.Skill{
			ID:            def.ID,
			Name:          def.Name,
			BaseValue:     def.Base,
			Value:         def.Base,
			Field:         def.Name,
			IsFieldHeader: true,
		})
		for _, sub := range def.SubSkills {
			out = append(out, coc.Skill{
				ID:        sub.ID,
				Name:      coc.SpecializationName(def.Name, sub.Name),
				BaseValue: sub.Base,
				Value:     sub.Base,
				Field:     def.Name,
			})
		}
		for i := 1; i <= def.FieldSlots; i++ {
			out = append(out, coc.Skill{
				ID:          fmt.Sprintf("%s_slot_%d", def.ID, i),
				BaseValue:   def.Base,
				Value:       def.Base,
				Field:       def.Name,
				IsFieldSlot: true,
			})
		}
	}

	for i := 1; i <= CustomSkillSlots; i++ {
		out = append(out, coc.Skill{ID: fmt.Sprintf("custom_%d", i), IsCustom: true})
	}

	return out
}

// FieldBase returns the base a new specialization of field starts at in the era
func FieldBase(era coc.Era, field string) (int, bool) {
	for _, def := range SkillDefinitions(era) {
		if def.IsFieldHeader && def.Name == field {
			return def.Base, true
		}
	}
	return 0, false
}

// Fields lists the specialization categories of the era
func Fields(era coc.Era) []string {
	var out []string
	for _, def := range SkillDefinitions(era) {
		if def.IsFieldHeader {
			out = append(out, def.Name)
		}
	}
	return out
}

func concat(lists ...[]SkillDefinition) []SkillDefinition {
	var out []SkillDefinition
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func insertAfter(list []SkillDefinition, id string, defs ...SkillDefinition) []SkillDefinition {
	out := make([]SkillDefinition, 0, len(list)+len(defs))
	for _, def := range list {
		out = append(out, def)
		if def.ID == id {
			out = append(out, defs...)
		}
	}
	return out
}
