package improvement

import "github.com/KirkDiggler/coc-api/internal/entities/coc"

// MarkForImprovement sets or clears the development tick on a skill. Field headers and
// blank slots cannot be ticked.
func MarkForImprovement(skills []coc.Skill, skillID string, marked bool) ([]coc.Skill, bool) {
	for i := range skills {
		if skills[i].ID != skillID {
			continue
		}
		if !skills[i].Editable() || skills[i].IsBlank() {
			return skills, false
		}

		out := append([]coc.Skill(nil), skills...)
		out[i].MarkedForImprovement = marked
		return out, true
	}
	return skills, false
}

// ClearImprovementFlags ends the development phase: ticks and check results are reset
// while gained values stay
func ClearImprovementFlags(skills []coc.Skill) []coc.Skill {
	out := append([]coc.Skill(nil), skills...)
	for i := range out {
		out[i].MarkedForImprovement = false
		out[i].ImprovementChecked = false
		out[i].ImprovementSuccess = false
		out[i].ImprovementAmount = 0
	}
	return out
}
