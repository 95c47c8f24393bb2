package rules

import "github.com/KirkDiggler/coc-api/internal/entities/coc"

// DefaultAge is the age a new investigator starts with
const DefaultAge = 25

// NewCharacter builds a fresh investigator at default characteristics with the seeded
// skill list, derived values computed and every pool full
func NewCharacter(id, name string, era coc.Era, skills []coc.Skill) *coc.Character {
	ch := &coc.Character{
		ID:                 id,
		Name:               name,
		Era:                era,
		Age:                DefaultAge,
		Characteristics:    DefaultCharacteristics(),
		Skills:             skills,
		Weapons:            []coc.Weapon{},
		OccupationalSkills: []string{},
	}
	if ch.Skills == nil {
		ch.Skills = []coc.Skill{}
	}
	if era == coc.EraDarkAges {
		ch.Luck.SpendDisabled = true
	}

	ch.Luck.Current = coc.DefaultCharacteristicValue
	ch.Luck.Max = 99

	return Refill(Recompute(ch))
}

// Refill sets every pool's current value to its maximum (sanity to its starting value)
func Refill(ch *coc.Character) *coc.Character {
	out := ch.Clone()
	out.HitPoints.Current = out.HitPoints.Max
	out.MagicPoints.Current = out.MagicPoints.Max
	out.Sanity.Current = min(out.Sanity.Starting, out.Sanity.Max)
	return out
}

// CharacteristicUpdate carries new characteristic values and an optional age
type CharacteristicUpdate struct {
	Values map[coc.Characteristic]int
	Age    *int
}

// ApplyCharacteristics clamps and sets the given characteristics, then recomputes
func ApplyCharacteristics(ch *coc.Character, update CharacteristicUpdate) *coc.Character {
	out := ch.Clone()
	for name, v := range update.Values {
		out.Characteristics.Set(name, SetCharacteristic(ClampCharacteristic(v)))
	}
	if update.Age != nil {
		age := *update.Age
		if age < 0 {
			age = 0
		}
		out.Age = age
	}
	return Recompute(out)
}
