package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/coc-api/internal/catalog"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func indexOf(skills []coc.Skill, id string) int {
	for i := range skills {
		if skills[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CatalogTestSuite) TestSeedSkillsExpandsFieldHeaders() {
	skills := catalog.SeedSkills(coc.Era1920s)

	idx := indexOf(skills, "science")
	s.Require().NotEqual(-1, idx)
	header := skills[idx]
	s.True(header.IsFieldHeader)
	s.False(header.Editable())
	s.Equal("Science", header.Field)

	for i := 1; i <= 3; i++ {
		slot := skills[idx+i]
		s.True(slot.IsFieldSlot)
		s.True(slot.IsBlank())
		s.Equal("Science", slot.Field)
		s.Equal(1, slot.BaseValue)
	}
	s.Equal("science_slot_1", skills[idx+1].ID)
	s.Equal("science_slot_3", skills[idx+3].ID)
}

func (s *CatalogTestSuite) TestSeedSkillsKeepsFixedSubSkillsBeforeSlots() {
	skills := catalog.SeedSkills(coc.Era1920s)

	idx := indexOf(skills, "firearms")
	s.Require().NotEqual(-1, idx)
	s.Equal("Firearms: Handgun", skills[idx+1].Name)
	s.Equal(20, skills[idx+1].BaseValue)
	s.Equal("Handgun", skills[idx+1].Specialization())
	s.Equal("Firearms: Rifle/Shotgun", skills[idx+2].Name)
	s.True(skills[idx+3].IsFieldSlot)
}

func (s *CatalogTestSuite) TestSeedSkillsSpecialBasesAndCustomSlots() {
	skills := catalog.SeedSkills(coc.Era1920s)

	dodge := skills[indexOf(skills, coc.SkillIDDodge)]
	s.Equal(25, dodge.BaseValue)
	own := skills[indexOf(skills, coc.SkillIDOwnLanguage)]
	s.Equal(50, own.BaseValue)

	tail := skills[len(skills)-catalog.CustomSkillSlots:]
	for i, sk := range tail {
		s.True(sk.IsCustom, "row %d", i)
		s.True(sk.IsBlank())
	}
	s.Equal("custom_6", tail[len(tail)-1].ID)
}

func (s *CatalogTestSuite) TestSeedSkillsIDsAreUnique() {
	for _, era := range []coc.Era{coc.Era1920s, coc.EraModern, coc.EraDarkAges} {
		seen := map[string]bool{}
		for _, sk := range catalog.SeedSkills(era) {
			s.False(seen[sk.ID], "%s duplicated in %s", sk.ID, era)
			seen[sk.ID] = true
		}
	}
}

func (s *CatalogTestSuite) TestEraLists() {
	modern := catalog.SeedSkills(coc.EraModern)
	climb := indexOf(modern, "climb")
	s.Equal("computer_use", modern[climb+1].ID)
	s.Equal("electronics", modern[climb+2].ID)

	s.Equal(-1, indexOf(catalog.SeedSkills(coc.Era1920s), "computer_use"))
	s.NotEqual(-1, indexOf(catalog.SeedSkills(coc.EraDarkAges), "other_kingdoms"))
	s.Equal(catalog.SeedSkills(coc.Era1920s), catalog.SeedSkills(coc.Era("steampunk")))
}

func (s *CatalogTestSuite) TestFieldBase() {
	base, ok := catalog.FieldBase(coc.Era1920s, "Science")
	s.True(ok)
	s.Equal(1, base)

	_, ok = catalog.FieldBase(coc.Era1920s, "Missile Weapons")
	s.False(ok)
	s.Contains(catalog.Fields(coc.EraDarkAges), "Missile Weapons")
}

func (s *CatalogTestSuite) TestOccupationRequirementsResolveAgainstSeededSkills() {
	for _, era := range []coc.Era{coc.Era1920s, coc.EraModern, coc.EraDarkAges} {
		names := map[string]bool{}
		for _, sk := range catalog.SeedSkills(era) {
			names[sk.Name] = true
		}
		fields := map[string]bool{}
		for _, f := range catalog.Fields(era) {
			fields[f] = true
		}

		for _, occ := range catalog.OccupationsFor(era) {
			for _, req := range occ.Requirements {
				switch r := req.(type) {
				case coc.SkillRef:
					s.True(names[r.Skill], "%s needs %q in %s", occ.Name, r.Skill, era)
				case coc.FieldRequirement:
					s.True(fields[r.Field], "%s needs field %q in %s", occ.Name, r.Field, era)
				}
			}
		}
	}
}

func (s *CatalogTestSuite) TestLookupOccupation() {
	occ, ok := catalog.LookupOccupation("  private investigator ")
	s.Require().True(ok)
	s.Equal("Private Investigator", occ.Name)
	s.Equal(catalog.FormulaEDUDEXSTR, occ.Formula)
	s.True(occ.CreditRating.Contains(20))
	s.False(occ.CreditRating.Contains(31))

	_, ok = catalog.LookupOccupation("Cultist of the Yellow Sign")
	s.False(ok)
}

func (s *CatalogTestSuite) TestOccupationOrCustom() {
	occ, found := catalog.OccupationOrCustom("Lighthouse Keeper")
	s.False(found)
	s.Equal("Lighthouse Keeper", occ.Name)
	s.Equal("EDU*4", occ.Formula)
	s.Require().Len(occ.Requirements, 1)
	s.Equal(coc.AnyRequirement{Count: 8}, occ.Requirements[0])

	occ, found = catalog.OccupationOrCustom("antiquarian")
	s.True(found)
	s.Equal("Antiquarian", occ.Name)
}

func (s *CatalogTestSuite) TestLookupReturnsCopies() {
	occ, _ := catalog.LookupOccupation("Criminal")
	choice := occ.Requirements[0].(coc.ChoiceRequirement)
	choice.Options[0] = coc.ChoiceOption{Skill: "Tampered"}
	occ.Requirements[1] = coc.AnyRequirement{Count: 99}

	again, _ := catalog.LookupOccupation("Criminal")
	s.Equal(coc.ChoiceOption{Field: catalog.FieldArtCraft}, again.Requirements[0].(coc.ChoiceRequirement).Options[0])
	s.Equal(coc.RequirementChoice, again.Requirements[1].Kind())
}

func (s *CatalogTestSuite) TestOccupationsForEra() {
	has := func(list []coc.OccupationDefinition, name string) bool {
		for _, o := range list {
			if o.Name == name {
				return true
			}
		}
		return false
	}

	s.True(has(catalog.OccupationsFor(coc.EraModern), "Hacker"))
	s.False(has(catalog.OccupationsFor(coc.Era1920s), "Hacker"))
	s.True(has(catalog.OccupationsFor(coc.EraDarkAges), "Knight"))
	s.False(has(catalog.OccupationsFor(coc.EraDarkAges), "Accountant"))
	s.Len(catalog.Occupations(), len(catalog.OccupationsFor(coc.Era1920s))+3)
}

func (s *CatalogTestSuite) TestSuggestOccupations() {
	got := catalog.SuggestOccupations(coc.Era1920s, "detec", 3)
	s.Require().NotEmpty(got)
	s.Equal("Police Detective", got[0].Name)

	got = catalog.SuggestOccupations(coc.Era1920s, "", 2)
	s.Len(got, 2)
	s.Equal("Accountant", got[0].Name)

	s.Empty(catalog.SuggestOccupations(coc.Era1920s, "zzzz", 5))
}
