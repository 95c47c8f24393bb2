package rules

import "github.com/KirkDiggler/coc-api/internal/entities/coc"

// Derived is the batch of values computed from characteristics and age
type Derived struct {
	DamageBonus    string
	Build          int
	Dodge          int
	Movement       int
	HitPointsMax   int
	MagicPointsMax int
	SanityStarting int
	SanityCeiling  int
}

// Derive computes every derived value for the investigator without changing it
func Derive(ch *coc.Character) Derived {
	c := ch.Characteristics
	mythos := 0
	if i := ch.SkillIndex(coc.SkillIDCthulhu); i >= 0 {
		mythos = ch.Skills[i].Value
	}

	return Derived{
		DamageBonus:    DamageBonus(c.STR.Value, c.SIZ.Value),
		Build:          Build(c.STR.Value, c.SIZ.Value),
		Dodge:          Dodge(c.DEX.Value),
		Movement:       Movement(c.DEX.Value, c.STR.Value, c.SIZ.Value, ch.Age),
		HitPointsMax:   HitPoints(c.CON.Value, c.SIZ.Value),
		MagicPointsMax: MagicPoints(c.POW.Value),
		SanityStarting: c.POW.Value,
		SanityCeiling:  SanityCeiling(mythos),
	}
}

// Recompute applies the derived batch to a copy of the investigator.
// Current pool values are clamped to their new maximum, and the Dodge and
// Own Language rows follow DEX and EDU unless the user turned them into field slots.
func Recompute(ch *coc.Character) *coc.Character {
	out := ch.Clone()
	d := Derive(out)

	for _, name := range coc.AllCharacteristics {
		out.Characteristics.Set(name, SetCharacteristic(out.Characteristics.Get(name).Value))
	}
	out.Characteristics.MOV = d.Movement

	out.Combat = coc.Combat{
		DamageBonus: d.DamageBonus,
		Build:       d.Build,
		Dodge:       d.Dodge,
	}

	out.HitPoints.Max = d.HitPointsMax
	out.HitPoints.Current = min(out.HitPoints.Current, d.HitPointsMax)

	out.MagicPoints.Max = d.MagicPointsMax
	out.MagicPoints.Current = min(out.MagicPoints.Current, d.MagicPointsMax)

	out.Sanity.Starting = d.SanityStarting
	out.Sanity.Limit = d.SanityCeiling
	out.Sanity.Max = d.SanityCeiling
	out.Sanity.Current = min(out.Sanity.Current, d.SanityCeiling)

	for i := range out.Skills {
		s := &out.Skills[i]
		if s.IsFieldSlot {
			continue
		}
		switch s.ID {
		case coc.SkillIDDodge:
			forceBase(s, d.Dodge)
		case coc.SkillIDOwnLanguage:
			forceBase(s, out.Characteristics.EDU.Value)
		}
	}

	return out
}

// forceBase moves a special skill onto its characteristic-driven base, carrying any
// points or improvements above the old base along with it
func forceBase(s *coc.Skill, base int) {
	above := s.Value - s.BaseValue
	if above < 0 {
		above = 0
	}
	s.BaseValue = base
	s.Value = base + above
}
