package catalog

import "github.com/KirkDiggler/coc-api/internal/entities/coc"

// Formulas used by the occupation table
const (
	FormulaEDU4      = "EDU*4"
	FormulaEDUAPP    = "EDU*2 + APP*2"
	FormulaEDUDEXSTR = "EDU*2 + (DEX|STR)*2"
	FormulaEDUPOWDEX = "EDU*2 + (POW|DEX)*2"
	FormulaEDUAPPPOW = "EDU*2 + (APP|POW)*2"
	FormulaEDUADS    = "EDU*2 + (APP|DEX|STR)*2"
)

// Specialization fields referenced by requirements
const (
	FieldArtCraft = "Art/Craft"
	FieldFighting = "Fighting"
	FieldFirearms = "Firearms"
	FieldLanguage = "Language (Other)"
	FieldScience  = "Science"
	FieldSurvival = "Survival"
	FieldPilot    = "Pilot"
	FieldMissile  = "Missile Weapons"
)

const (
	allEras      = ""
	modernAnd20s = "1920s+modern"
	modernOnly   = "modern"
	darkAgesOnly = "darkAges"
)

func skill(name string) coc.SkillRequirement { return coc.SkillRef{Skill: name} }

func field(name string, count int) coc.SkillRequirement {
	return coc.FieldRequirement{Field: name, Count: count}
}

func anySkills(count int) coc.SkillRequirement { return coc.AnyRequirement{Count: count} }

func choice(count int, options ...coc.ChoiceOption) coc.SkillRequirement {
	return coc.ChoiceRequirement{Count: count, Options: options}
}

func opt(name string) coc.ChoiceOption { return coc.ChoiceOption{Skill: name} }

func fieldOpt(name string) coc.ChoiceOption { return coc.ChoiceOption{Field: name} }

func interpersonal(count int) coc.SkillRequirement {
	return choice(count, opt("Charm"), opt("Fast Talk"), opt("Intimidate"), opt("Persuade"))
}

func eras(tag string) []coc.Era {
	switch tag {
	case modernAnd20s:
		return []coc.Era{coc.Era1920s, coc.EraModern}
	case darkAgesOnly:
		return []coc.Era{coc.EraDarkAges}
	case modernOnly:
		return []coc.Era{coc.EraModern}
	default:
		return nil
	}
}

func cr(lo, hi int) coc.CreditRatingRange { return coc.CreditRatingRange{Min: lo, Max: hi} }

var occupationTable = []coc.OccupationDefinition{
	{
		Name: "Accountant", Formula: FormulaEDU4, CreditRating: cr(30, 70), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Accounting"), skill("Law"), skill("Library Use"), skill("Listen"),
			skill("Persuade"), skill("Spot Hidden"), anySkills(2),
		},
	},
	{
		Name: "Antiquarian", Formula: FormulaEDU4, CreditRating: cr(30, 70), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Appraise"), field(FieldArtCraft, 1), skill("History"), skill("Library Use"),
			field(FieldLanguage, 1), interpersonal(1), skill("Spot Hidden"), anySkills(1),
		},
	},
	{
		Name: "Artist", Formula: FormulaEDUPOWDEX, CreditRating: cr(9, 50), Eras: eras(allEras),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), choice(1, opt("History"), opt("Natural World")), interpersonal(1),
			field(FieldLanguage, 1), skill("Psychology"), skill("Spot Hidden"), anySkills(2),
		},
	},
	{
		Name: "Athlete", Formula: FormulaEDUDEXSTR, CreditRating: cr(9, 70), Eras: eras(allEras),
		Requirements: []coc.SkillRequirement{
			skill("Climb"), skill("Jump"), skill("Fighting: Brawl"), skill("Ride"),
			interpersonal(1), skill("Swim"), skill("Throw"), anySkills(1),
		},
	},
	{
		Name: "Author", Formula: FormulaEDU4, CreditRating: cr(9, 30), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), skill("History"), skill("Library Use"),
			choice(1, opt("Natural World"), opt("Occult")), field(FieldLanguage, 1),
			skill(coc.SkillOwnLanguage), skill("Psychology"), anySkills(1),
		},
	},
	{
		Name: "Clergy", Formula: FormulaEDU4, CreditRating: cr(9, 60), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Accounting"), skill("History"), skill("Library Use"), skill("Listen"),
			field(FieldLanguage, 1), interpersonal(1), skill("Psychology"), anySkills(1),
		},
	},
	{
		Name: "Criminal", Formula: FormulaEDUDEXSTR, CreditRating: cr(5, 65), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			choice(1, fieldOpt(FieldArtCraft), opt("Disguise")),
			choice(2, fieldOpt(FieldFighting), fieldOpt(FieldFirearms), opt("Locksmith"), opt("Mechanical Repair")),
			skill("Stealth"), skill("Psychology"), skill("Spot Hidden"), interpersonal(1),
		},
	},
	{
		Name: "Dilettante", Formula: FormulaEDUAPP, CreditRating: cr(50, 99), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), field(FieldFirearms, 1), field(FieldLanguage, 1),
			skill("Ride"), interpersonal(1), anySkills(3),
		},
	},
	{
		Name: "Doctor of Medicine", Formula: FormulaEDU4, CreditRating: cr(30, 80), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("First Aid"), skill("Medicine"), field(FieldLanguage, 1), skill("Psychology"),
			field(FieldScience, 2), anySkills(2),
		},
	},
	{
		Name: "Drifter", Formula: FormulaEDUADS, CreditRating: cr(0, 5), Eras: eras(allEras),
		Requirements: []coc.SkillRequirement{
			skill("Climb"), skill("Jump"), skill("Listen"), skill("Navigate"),
			interpersonal(1), skill("Stealth"), anySkills(2),
		},
	},
	{
		Name: "Engineer", Formula: FormulaEDU4, CreditRating: cr(30, 60), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), skill("Electrical Repair"), skill("Library Use"),
			skill("Mechanical Repair"), skill("Operate Heavy Machinery"), field(FieldScience, 2), anySkills(1),
		},
	},
	{
		Name: "Entertainer", Formula: FormulaEDUAPP, CreditRating: cr(9, 70), Eras: eras(allEras),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), skill("Disguise"), interpersonal(2), skill("Listen"),
			skill("Psychology"), anySkills(2),
		},
	},
	{
		Name: "Farmer", Formula: FormulaEDUDEXSTR, CreditRating: cr(9, 30), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), choice(1, opt("Drive Auto"), opt("Ride")), interpersonal(1),
			skill("Mechanical Repair"), skill("Natural World"), skill("Operate Heavy Machinery"),
			skill("Track"), anySkills(1),
		},
	},
	{
		Name: "Journalist", Formula: FormulaEDU4, CreditRating: cr(9, 30), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), skill("History"), skill("Library Use"), skill(coc.SkillOwnLanguage),
			interpersonal(1), skill("Psychology"), anySkills(2),
		},
	},
	{
		Name: "Lawyer", Formula: FormulaEDU4, CreditRating: cr(30, 80), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Accounting"), skill("Law"), skill("Library Use"), interpersonal(2),
			skill("Psychology"), anySkills(2),
		},
	},
	{
		Name: "Librarian", Formula: FormulaEDU4, CreditRating: cr(9, 35), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Accounting"), skill("Library Use"), field(FieldLanguage, 1),
			skill(coc.SkillOwnLanguage), anySkills(4),
		},
	},
	{
		Name: "Military Officer", Formula: FormulaEDUDEXSTR, CreditRating: cr(20, 70), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Accounting"), field(FieldFirearms, 1), skill("Navigate"), interpersonal(2),
			skill("Psychology"), field(FieldSurvival, 1), anySkills(1),
		},
	},
	{
		Name: "Missionary", Formula: FormulaEDU4, CreditRating: cr(0, 30), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), skill("First Aid"), skill("Mechanical Repair"), skill("Medicine"),
			skill("Natural World"), interpersonal(1), anySkills(2),
		},
	},
	{
		Name: "Musician", Formula: FormulaEDUPOWDEX, CreditRating: cr(9, 30), Eras: eras(allEras),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), interpersonal(1), skill("Listen"), skill("Psychology"), anySkills(4),
		},
	},
	{
		Name: "Nurse", Formula: FormulaEDU4, CreditRating: cr(9, 30), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("First Aid"), skill("Listen"), skill("Medicine"), interpersonal(1),
			skill("Psychology"), field(FieldScience, 1), skill("Spot Hidden"), anySkills(1),
		},
	},
	{
		Name: "Parapsychologist", Formula: FormulaEDU4, CreditRating: cr(9, 30), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Anthropology"), field(FieldArtCraft, 1), skill("History"), skill("Library Use"),
			skill("Occult"), field(FieldLanguage, 1), skill("Psychology"), anySkills(1),
		},
	},
	{
		Name: "Police Detective", Formula: FormulaEDUDEXSTR, CreditRating: cr(20, 50), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			choice(1, fieldOpt(FieldArtCraft), opt("Disguise")), field(FieldFirearms, 1), skill("Law"),
			skill("Listen"), interpersonal(1), skill("Psychology"), skill("Spot Hidden"), anySkills(1),
		},
	},
	{
		Name: "Private Investigator", Formula: FormulaEDUDEXSTR, CreditRating: cr(9, 30), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), skill("Disguise"), skill("Law"), skill("Library Use"),
			interpersonal(1), skill("Psychology"), skill("Spot Hidden"),
			choice(1, opt("Computer Use"), opt("Locksmith"), fieldOpt(FieldFighting), fieldOpt(FieldFirearms)),
		},
	},
	{
		Name: "Professor", Formula: FormulaEDU4, CreditRating: cr(20, 70), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Library Use"), field(FieldLanguage, 1), skill(coc.SkillOwnLanguage),
			skill("Psychology"), anySkills(4),
		},
	},
	{
		Name: "Soldier", Formula: FormulaEDUDEXSTR, CreditRating: cr(9, 30), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			choice(1, opt("Climb"), opt("Swim")), skill(coc.SkillDodge), field(FieldFighting, 1),
			field(FieldFirearms, 1), skill("Stealth"), field(FieldSurvival, 1),
			choice(2, opt("First Aid"), opt("Mechanical Repair"), fieldOpt(FieldLanguage)),
		},
	},
	{
		Name: "Tribe Member", Formula: FormulaEDUDEXSTR, CreditRating: cr(0, 15), Eras: eras(allEras),
		Requirements: []coc.SkillRequirement{
			skill("Climb"), choice(1, fieldOpt(FieldFighting), opt("Throw")), skill("Listen"),
			skill("Natural World"), skill("Occult"), skill("Spot Hidden"), skill("Swim"),
			field(FieldSurvival, 1),
		},
	},
	{
		Name: "Zealot", Formula: FormulaEDUAPPPOW, CreditRating: cr(0, 30), Eras: eras(allEras),
		Requirements: []coc.SkillRequirement{
			skill("History"), interpersonal(2), skill("Psychology"), skill("Stealth"), anySkills(3),
		},
	},
	{
		Name: "Hacker", Formula: FormulaEDU4, CreditRating: cr(10, 70), Eras: eras(modernOnly),
		Requirements: []coc.SkillRequirement{
			skill("Computer Use"), skill("Electrical Repair"), skill("Electronics"), skill("Library Use"),
			skill("Spot Hidden"), interpersonal(1), anySkills(2),
		},
	},
	{
		Name: "Pilot", Formula: FormulaEDUDEXSTR, CreditRating: cr(20, 70), Eras: eras(modernAnd20s),
		Requirements: []coc.SkillRequirement{
			skill("Electrical Repair"), skill("Mechanical Repair"), skill("Navigate"),
			skill("Operate Heavy Machinery"), field(FieldPilot, 1), field(FieldScience, 1), anySkills(2),
		},
	},
	{
		Name: "Monk", Formula: FormulaEDU4, CreditRating: cr(0, 20), Eras: eras(darkAgesOnly),
		Requirements: []coc.SkillRequirement{
			field(FieldArtCraft, 1), skill("History"), field(FieldLanguage, 1), skill("Read/Write Language"),
			skill("Medicine"), skill("Natural World"), skill("Occult"), anySkills(1),
		},
	},
	{
		Name: "Knight", Formula: FormulaEDUDEXSTR, CreditRating: cr(40, 80), Eras: eras(darkAgesOnly),
		Requirements: []coc.SkillRequirement{
			field(FieldFighting, 2), skill("Ride"), skill("Intimidate"), interpersonal(1),
			field(FieldMissile, 1), skill("Other Kingdoms"), anySkills(1),
		},
	},
}
