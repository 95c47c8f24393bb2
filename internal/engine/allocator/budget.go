package allocator

import "github.com/KirkDiggler/coc-api/internal/entities/coc"

// Budget is the state of both point pools for an investigator
type Budget struct {
	OccupationTotal int
	OccupationSpent int
	PersonalTotal   int
	PersonalSpent   int

	// SelectedStat is the stat applied to choice terms, empty when the formula has none
	SelectedStat coc.Characteristic
	// Candidates are the stats the player may pick between
	Candidates   []coc.Characteristic
}

// Total returns the size of a pool
func (b Budget) Total(pool coc.Pool) int {
	switch pool {
	case coc.PoolOccupation:
		return b.OccupationTotal
	case coc.PoolPersonal:
		return b.PersonalTotal
	default:
		return 0
	}
}

// Spent returns the points committed from a pool
func (b Budget) Spent(pool coc.Pool) int {
	switch pool {
	case coc.PoolOccupation:
		return b.OccupationSpent
	case coc.PoolPersonal:
		return b.PersonalSpent
	default:
		return 0
	}
}

// Remaining returns what is left in a pool
func (b Budget) Remaining(pool coc.Pool) int {
	return b.Total(pool) - b.Spent(pool)
}

// PersonalTotal is INT*2
func PersonalTotal(chars coc.Characteristics) int {
	return chars.INT.Value * 2
}

// Budgets computes both pools for the character's current formula
func Budgets(ch *coc.Character, selected coc.Characteristic) Budget {
	f := FormulaOrDefault(ch.OccupationFormula)

	b := Budget{
		OccupationTotal: f.Evaluate(ch.Characteristics, selected),
		OccupationSpent: Spent(ch.Skills, coc.PoolOccupation),
		PersonalTotal:   PersonalTotal(ch.Characteristics),
		PersonalSpent:   Spent(ch.Skills, coc.PoolPersonal),
	}
	if f.HasChoice() {
		b.Candidates = f.ChoiceCandidates()
		for i, t := range f.Terms {
			if t.IsChoice() {
				b.SelectedStat = f.Resolve(ch.Characteristics, selected)[i]
				break
			}
		}
	}
	return b
}

// Spent sums the points committed from a pool across skills
func Spent(skills []coc.Skill, pool coc.Pool) int {
	total := 0
	for i := range skills {
		total += skills[i].PointsIn(pool)
	}
	return total
}

// PercentSpent returns spent as a whole percentage of total; a non-positive total yields 0
func PercentSpent(spent, total int) int {
	if total <= 0 {
		return 0
	}
	return spent * 100 / total
}
