package coc

import "strings"

// Skill is one row of the skill list.
//
// ID is a stable synthetic identifier assigned when the row is created; Name is the
// display name and may change. Field-header rows are category labels that never receive
// points; field-slot rows are user-named specializations that belong to a header
// through Field.
type Skill struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	BaseValue          int    `json:"baseValue"`
	Value              int    `json:"value"`
	IsOccupational     bool   `json:"isOccupational"`
	OccupationalPoints int    `json:"occupationalPoints,omitempty"`
	PersonalPoints     int    `json:"personalPoints,omitempty"`

	Field         string `json:"field,omitempty"`
	IsCustom      bool   `json:"isCustom,omitempty"`
	CustomName    string `json:"customName,omitempty"`
	IsFieldHeader bool   `json:"isFieldHeader,omitempty"`
	IsFieldSlot   bool   `json:"isFieldSlot,omitempty"`

	MarkedForImprovement bool `json:"markedForImprovement,omitempty"`
	ImprovementChecked   bool `json:"improvementChecked,omitempty"`
	ImprovementSuccess   bool `json:"improvementSuccess,omitempty"`
	ImprovementAmount    int  `json:"improvementAmount,omitempty"`
}

// Editable reports whether points may be committed to the skill
func (s *Skill) Editable() bool {
	return !s.IsFieldHeader
}

// IsBlank reports whether the row is an unnamed slot waiting for the user
func (s *Skill) IsBlank() bool {
	return (s.IsFieldSlot || s.IsCustom) && s.Name == ""
}

// Specialization returns the user text of a "Field: Specialization" name
func (s *Skill) Specialization() string {
	if s.Field == "" {
		return ""
	}
	text, ok := strings.CutPrefix(s.Name, s.Field+": ")
	if !ok {
		return ""
	}
	return text
}

// PointsIn returns the points committed from the given pool
func (s *Skill) PointsIn(pool Pool) int {
	switch pool {
	case PoolOccupation:
		return s.OccupationalPoints
	case PoolPersonal:
		return s.PersonalPoints
	default:
		return 0
	}
}

// SpecializationName builds the compound display name of a field specialization
func SpecializationName(field, text string) string {
	return field + ": " + text
}

// Pool identifies one of the two spendable skill-point budgets
type Pool string

const (
	PoolOccupation Pool = "occupation"
	PoolPersonal   Pool = "personal"
)

// IsValid reports whether the pool is known
func (p Pool) IsValid() bool {
	return p == PoolOccupation || p == PoolPersonal
}
