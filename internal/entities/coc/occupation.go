package coc

import (
	"encoding/json"
	"fmt"
)

// OccupationDefinition is a read-only catalog entry
type OccupationDefinition struct {
	Name         string             `json:"name"`
	Formula      string             `json:"formula"`
	Requirements []SkillRequirement `json:"-"`
	CreditRating CreditRatingRange  `json:"creditRating"`
	// Eras the occupation is offered in; empty means every era
	Eras []Era `json:"eras,omitempty"`
}

// CreditRatingRange bounds the Credit Rating skill for an occupation
type CreditRatingRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v is inside the range
func (r CreditRatingRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// AvailableIn reports whether the occupation is offered in the era
func (o *OccupationDefinition) AvailableIn(era Era) bool {
	if len(o.Eras) == 0 {
		return true
	}
	for _, e := range o.Eras {
		if e == era {
			return true
		}
	}
	return false
}

// RequirementKind discriminates SkillRequirement variants
type RequirementKind string

const (
	RequirementSkill  RequirementKind = "skill"
	RequirementChoice RequirementKind = "choice"
	RequirementField  RequirementKind = "field"
	RequirementAny    RequirementKind = "any"
)

// SkillRequirement is one entry of an occupation's skill list.
// The set of implementations is closed: SkillRef, ChoiceRequirement,
// FieldRequirement and AnyRequirement.
type SkillRequirement interface {
	Kind() RequirementKind
	// Slots is the number of skills the requirement asks for
	Slots() int
	isSkillRequirement()
}

// SkillRef requires one literal skill
type SkillRef struct {
	Skill string `json:"skill"`
}

func (SkillRef) Kind() RequirementKind { return RequirementSkill }
func (SkillRef) Slots() int            { return 1 }
func (SkillRef) isSkillRequirement()   {}

// ChoiceOption is either a literal skill or a whole specialization field
type ChoiceOption struct {
	Skill string `json:"skill,omitempty"`
	Field string `json:"field,omitempty"`
}

// IsField reports whether the option stands for any specialization of a field
func (o ChoiceOption) IsField() bool {
	return o.Field != ""
}

// ChoiceRequirement asks for exactly Count picks from Options
type ChoiceRequirement struct {
	Count   int            `json:"count"`
	Options []ChoiceOption `json:"options"`
}

func (ChoiceRequirement) Kind() RequirementKind { return RequirementChoice }
func (r ChoiceRequirement) Slots() int          { return r.Count }
func (ChoiceRequirement) isSkillRequirement()   {}

// FieldRequirement asks for exactly Count named specializations under Field
type FieldRequirement struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

func (FieldRequirement) Kind() RequirementKind { return RequirementField }
func (r FieldRequirement) Slots() int          { return r.Count }
func (FieldRequirement) isSkillRequirement()   {}

// AnyRequirement asks for Count free picks from the whole skill list
type AnyRequirement struct {
	Count int `json:"count"`
}

func (AnyRequirement) Kind() RequirementKind { return RequirementAny }
func (r AnyRequirement) Slots() int          { return r.Count }
func (AnyRequirement) isSkillRequirement()   {}

// requirementJSON is the tagged wire shape of a SkillRequirement
type requirementJSON struct {
	Type    RequirementKind `json:"type"`
	Skill   string          `json:"skill,omitempty"`
	Field   string          `json:"field,omitempty"`
	Count   int             `json:"count,omitempty"`
	Options []ChoiceOption  `json:"options,omitempty"`
}

// MarshalRequirement encodes a requirement with its type tag
func MarshalRequirement(r SkillRequirement) ([]byte, error) {
	var out requirementJSON
	switch req := r.(type) {
	case SkillRef:
		out = requirementJSON{Type: RequirementSkill, Skill: req.Skill}
	case ChoiceRequirement:
		out = requirementJSON{Type: RequirementChoice, Count: req.Count, Options: req.Options}
	case FieldRequirement:
		out = requirementJSON{Type: RequirementField, Field: req.Field, Count: req.Count}
	case AnyRequirement:
		out = requirementJSON{Type: RequirementAny, Count: req.Count}
	default:
		return nil, fmt.Errorf("unknown skill requirement %T", r)
	}
	return json.Marshal(out)
}

// UnmarshalRequirement decodes a tagged requirement
func UnmarshalRequirement(data []byte) (SkillRequirement, error) {
	var in requirementJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	switch in.Type {
	case RequirementSkill:
		return SkillRef{Skill: in.Skill}, nil
	case RequirementChoice:
		return ChoiceRequirement{Count: in.Count, Options: in.Options}, nil
	case RequirementField:
		return FieldRequirement{Field: in.Field, Count: in.Count}, nil
	case RequirementAny:
		return AnyRequirement{Count: in.Count}, nil
	default:
		return nil, fmt.Errorf("unknown skill requirement type %q", in.Type)
	}
}

type occupationAlias OccupationDefinition

type occupationJSON struct {
	*occupationAlias
	Requirements []json.RawMessage `json:"requirements"`
}

// MarshalJSON includes the tagged requirement list
func (o OccupationDefinition) MarshalJSON() ([]byte, error) {
	alias := occupationAlias(o)
	out := occupationJSON{occupationAlias: &alias, Requirements: make([]json.RawMessage, 0, len(o.Requirements))}
	for _, r := range o.Requirements {
		raw, err := MarshalRequirement(r)
		if err != nil {
			return nil, err
		}
		out.Requirements = append(out.Requirements, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged requirement list
func (o *OccupationDefinition) UnmarshalJSON(data []byte) error {
	var in occupationJSON
	in.occupationAlias = (*occupationAlias)(o)
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	o.Requirements = make([]SkillRequirement, 0, len(in.Requirements))
	for _, raw := range in.Requirements {
		r, err := UnmarshalRequirement(raw)
		if err != nil {
			return err
		}
		o.Requirements = append(o.Requirements, r)
	}
	return nil
}
