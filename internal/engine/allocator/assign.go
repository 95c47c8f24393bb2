package allocator

import (
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
	"github.com/KirkDiggler/coc-api/internal/pkg/idgen"
)

// Config holds the dependencies for the allocator
type Config struct {
	// IDGenerator names skills created at runtime (new field slots)
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Allocator applies point commitments and occupation requirement picks to characters.
// Rejections are reported through a false result with the input returned unchanged.
type Allocator struct {
	idGen idgen.Generator
}

// New creates an allocator with the provided dependencies
func New(cfg *Config) (*Allocator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Allocator{idGen: cfg.IDGenerator}, nil
}

// AssignPoints sets the total value of skills[index], paying the difference from pool.
//
//  1. newTotal below the skill's base is rejected
//  2. diff is newTotal minus the current value
//  3. a positive diff that would push the pool past poolTotal is rejected
//  4. otherwise the pool's points become max(0, previous+diff) and value becomes newTotal
//
// The input slice is never modified; on rejection it is returned as is.
func AssignPoints(skills []coc.Skill, index, newTotal int, pool coc.Pool, poolTotal int) ([]coc.Skill, bool) {
	if index < 0 || index >= len(skills) || !pool.IsValid() {
		return skills, false
	}

	target := skills[index]
	if !target.Editable() || newTotal < target.BaseValue {
		return skills, false
	}

	diff := newTotal - target.Value
	if diff > 0 && Spent(skills, pool)+diff > poolTotal {
		return skills, false
	}

	switch pool {
	case coc.PoolOccupation:
		target.OccupationalPoints = max(0, target.OccupationalPoints+diff)
	case coc.PoolPersonal:
		target.PersonalPoints = max(0, target.PersonalPoints+diff)
	}
	target.Value = newTotal

	out := append([]coc.Skill(nil), skills...)
	out[index] = target
	return out, true
}

// Assign is AssignPoints addressed by skill id against the character's own budgets.
// Occupation points only go to skills on the occupational list.
func (a *Allocator) Assign(ch *coc.Character, skillID string, newTotal int, pool coc.Pool, selected coc.Characteristic) (*coc.Character, bool) {
	idx := ch.SkillIndex(skillID)
	if idx < 0 {
		return ch, false
	}
	if pool == coc.PoolOccupation && !ch.Skills[idx].IsOccupational {
		return ch, false
	}

	budget := Budgets(ch, selected)
	skills, ok := AssignPoints(ch.Skills, idx, newTotal, pool, budget.Total(pool))
	if !ok {
		return ch, false
	}

	out := ch.Clone()
	out.Skills = skills
	return out, true
}

// refund removes a skill's occupation points from its value
func refund(s *coc.Skill) {
	s.Value = max(s.BaseValue, s.Value-s.OccupationalPoints)
	s.OccupationalPoints = 0
}
