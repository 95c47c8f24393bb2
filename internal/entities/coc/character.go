package coc

// CharacteristicValue is a primary attribute together with its half and fifth values.
// NOTE: This is a value object. Build it with rules.SetCharacteristic so Half and Fifth
// never go stale.
type CharacteristicValue struct {
	Value int `json:"value"`
	Half  int `json:"half"`
	Fifth int `json:"fifth"`
}

// Characteristics holds the eight primary attributes plus the derived movement rate
type Characteristics struct {
	STR CharacteristicValue `json:"STR"`
	CON CharacteristicValue `json:"CON"`
	SIZ CharacteristicValue `json:"SIZ"`
	DEX CharacteristicValue `json:"DEX"`
	APP CharacteristicValue `json:"APP"`
	INT CharacteristicValue `json:"INT"`
	POW CharacteristicValue `json:"POW"`
	EDU CharacteristicValue `json:"EDU"`
	MOV int                 `json:"MOV"`
}

// Get returns the named characteristic
func (c *Characteristics) Get(name Characteristic) CharacteristicValue {
	switch name {
	case STR:
		return c.STR
	case CON:
		return c.CON
	case SIZ:
		return c.SIZ
	case DEX:
		return c.DEX
	case APP:
		return c.APP
	case INT:
		return c.INT
	case POW:
		return c.POW
	case EDU:
		return c.EDU
	default:
		return CharacteristicValue{}
	}
}

// Set replaces the named characteristic. Unknown names are ignored.
func (c *Characteristics) Set(name Characteristic, v CharacteristicValue) {
	switch name {
	case STR:
		c.STR = v
	case CON:
		c.CON = v
	case SIZ:
		c.SIZ = v
	case DEX:
		c.DEX = v
	case APP:
		c.APP = v
	case INT:
		c.INT = v
	case POW:
		c.POW = v
	case EDU:
		c.EDU = v
	}
}

// Combat holds the derived combat stats
type Combat struct {
	DamageBonus string `json:"damageBonus"`
	Build       int    `json:"build"`
	Dodge       int    `json:"dodge"`
}

// HitPoints pool
type HitPoints struct {
	Current     int  `json:"current"`
	Max         int  `json:"max"`
	MajorWound  bool `json:"majorWound,omitempty"`
	Dying       bool `json:"dying,omitempty"`
	Unconscious bool `json:"unconscious,omitempty"`
}

// Sanity pool. Starting is fixed at creation from POW, Limit is the ceiling
// imposed by Cthulhu Mythos knowledge.
type Sanity struct {
	Current            int  `json:"current"`
	Max                int  `json:"max"`
	Starting           int  `json:"starting"`
	Limit              int  `json:"limit"`
	TemporaryInsanity  bool `json:"temporaryInsanity,omitempty"`
	IndefiniteInsanity bool `json:"indefiniteInsanity,omitempty"`
}

// MagicPoints pool
type MagicPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Luck pool. Dark Ages investigators may not spend luck.
type Luck struct {
	Current       int  `json:"current"`
	Max           int  `json:"max"`
	SpendDisabled bool `json:"spendDisabled,omitempty"`
}

// Weapon is one row of the weapons table
type Weapon struct {
	Name        string `json:"name"`
	Skill       string `json:"skill"`
	Damage      string `json:"damage"`
	Range       string `json:"range,omitempty"`
	Attacks     string `json:"attacks,omitempty"`
	Ammo        string `json:"ammo,omitempty"`
	Malfunction string `json:"malfunction,omitempty"`
}

// Background is the free-text section of the sheet
type Background struct {
	Description          string `json:"description,omitempty"`
	Ideology             string `json:"ideology,omitempty"`
	SignificantPeople    string `json:"significantPeople,omitempty"`
	MeaningfulLocations  string `json:"meaningfulLocations,omitempty"`
	TreasuredPossessions string `json:"treasuredPossessions,omitempty"`
	Traits               string `json:"traits,omitempty"`
	InjuriesScars        string `json:"injuriesScars,omitempty"`
	PhobiasManias        string `json:"phobiasManias,omitempty"`
	ArcaneTomes          string `json:"arcaneTomes,omitempty"`
	Encounters           string `json:"encounters,omitempty"`
	Gear                 string `json:"gear,omitempty"`
	Notes                string `json:"notes,omitempty"`
}

// Character is an investigator record, the root aggregate of the sheet.
// NOTE: This is a data-only struct. Derived values are produced by the rules engine
// and every editing operation returns a new Character instead of mutating in place.
type Character struct {
	ID         string `json:"id"`
	OwnerID    string `json:"ownerId,omitempty"`
	Name       string `json:"name"`
	Player     string `json:"player,omitempty"`
	Era        Era    `json:"era"`
	Age        int    `json:"age"`
	Sex        string `json:"sex,omitempty"`
	Residence  string `json:"residence,omitempty"`
	Birthplace string `json:"birthplace,omitempty"`

	Characteristics Characteristics `json:"characteristics"`
	Combat          Combat          `json:"combat"`

	HitPoints   HitPoints   `json:"hitPoints"`
	Sanity      Sanity      `json:"sanity"`
	MagicPoints MagicPoints `json:"magicPoints"`
	Luck        Luck        `json:"luck"`

	Skills  []Skill  `json:"skills"`
	Weapons []Weapon `json:"weapons"`

	Background Background `json:"background"`

	Occupation         string   `json:"occupation,omitempty"`
	OccupationFormula  string   `json:"occupationFormula,omitempty"`
	OccupationalSkills []string `json:"occupationalSkills"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

// Clone returns a deep copy so callers can apply functional updates
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Skills = append([]Skill(nil), c.Skills...)
	out.Weapons = append([]Weapon(nil), c.Weapons...)
	out.OccupationalSkills = append([]string(nil), c.OccupationalSkills...)
	if c.Skills != nil && out.Skills == nil {
		out.Skills = []Skill{}
	}
	if c.Weapons != nil && out.Weapons == nil {
		out.Weapons = []Weapon{}
	}
	if c.OccupationalSkills != nil && out.OccupationalSkills == nil {
		out.OccupationalSkills = []string{}
	}
	return &out
}

// SkillIndex returns the position of the skill with the given id, or -1
func (c *Character) SkillIndex(id string) int {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return i
		}
	}
	return -1
}

// SkillByName returns the position of the first skill with the given display name, or -1
func (c *Character) SkillByName(name string) int {
	for i := range c.Skills {
		if c.Skills[i].Name == name {
			return i
		}
	}
	return -1
}

// HasOccupationalSkill reports whether the name is on the occupational list
func (c *Character) HasOccupationalSkill(name string) bool {
	for _, n := range c.OccupationalSkills {
		if n == name {
			return true
		}
	}
	return false
}
