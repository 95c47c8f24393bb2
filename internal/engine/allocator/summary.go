package allocator

import "github.com/KirkDiggler/coc-api/internal/entities/coc"

// Allocation is the read model a sheet needs to render the skill point section
type Allocation struct {
	Budget              Budget
	OccupationPercent   int
	PersonalPercent     int
	Requirements        []RequirementStatus
	Complete            bool
	CreditRating        int
	CreditRatingRange   coc.CreditRatingRange
	CreditRatingInRange bool
}

// Summarize computes budgets, requirement progress and the credit rating check
func Summarize(ch *coc.Character, occ coc.OccupationDefinition, selected coc.Characteristic) Allocation {
	budget := Budgets(ch, selected)
	reqs := Resolve(ch, occ)

	out := Allocation{
		Budget:              budget,
		OccupationPercent:   PercentSpent(budget.OccupationSpent, budget.OccupationTotal),
		PersonalPercent:     PercentSpent(budget.PersonalSpent, budget.PersonalTotal),
		Requirements:        reqs,
		Complete:            Complete(reqs),
		CreditRatingRange:   occ.CreditRating,
		CreditRatingInRange: CreditRatingInRange(ch, occ),
	}
	if idx := ch.SkillIndex(coc.SkillIDCreditRating); idx >= 0 {
		out.CreditRating = ch.Skills[idx].Value
	}
	return out
}
