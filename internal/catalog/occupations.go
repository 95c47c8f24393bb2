package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

// CustomOccupationFormula is used for occupations that are not in the catalog
const CustomOccupationFormula = FormulaEDU4

// Occupations returns every catalog occupation in table order
func Occupations() []coc.OccupationDefinition {
	out := make([]coc.OccupationDefinition, 0, len(occupationTable))
	for i := range occupationTable {
		out = append(out, cloneOccupation(&occupationTable[i]))
	}
	return out
}

// OccupationsFor returns the occupations offered in an era
func OccupationsFor(era coc.Era) []coc.OccupationDefinition {
	var out []coc.OccupationDefinition
	for i := range occupationTable {
		if occupationTable[i].AvailableIn(era) {
			out = append(out, cloneOccupation(&occupationTable[i]))
		}
	}
	return out
}

// LookupOccupation finds an occupation by name, ignoring case and surrounding space
func LookupOccupation(name string) (coc.OccupationDefinition, bool) {
	name = strings.TrimSpace(name)
	for i := range occupationTable {
		if strings.EqualFold(occupationTable[i].Name, name) {
			return cloneOccupation(&occupationTable[i]), true
		}
	}
	return coc.OccupationDefinition{}, false
}

// OccupationOrCustom returns the catalog entry for name. Misses yield a custom
// occupation of free picks; the bool reports whether the catalog matched.
func OccupationOrCustom(name string) (coc.OccupationDefinition, bool) {
	if occ, ok := LookupOccupation(name); ok {
		return occ, true
	}
	return CustomOccupation(name), false
}

// CustomOccupation builds the free-pick shape used for occupations outside the catalog
func CustomOccupation(name string) coc.OccupationDefinition {
	return coc.OccupationDefinition{
		Name:    strings.TrimSpace(name),
		Formula: CustomOccupationFormula,
		Requirements: []coc.SkillRequirement{
			coc.AnyRequirement{Count: coc.CustomOccupationPicks},
		},
		CreditRating: coc.CreditRatingRange{Min: 0, Max: 99},
	}
}

// SuggestOccupations fuzzy-matches query against the occupations of an era, best first.
// An empty query returns the era's occupations in table order.
func SuggestOccupations(era coc.Era, query string, limit int) []coc.OccupationDefinition {
	available := OccupationsFor(era)
	if limit <= 0 || limit > len(available) {
		limit = len(available)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return available[:limit]
	}

	names := make([]string, len(available))
	for i := range available {
		names[i] = available[i].Name
	}

	matches := fuzzy.Find(query, names)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]coc.OccupationDefinition, 0, len(matches))
	for _, m := range matches {
		out = append(out, available[m.Index])
	}
	return out
}

func cloneOccupation(o *coc.OccupationDefinition) coc.OccupationDefinition {
	out := *o
	out.Requirements = make([]coc.SkillRequirement, 0, len(o.Requirements))
	for _, r := range o.Requirements {
		if c, ok := r.(coc.ChoiceRequirement); ok {
			c.Options = append([]coc.ChoiceOption(nil), c.Options...)
			r = c
		}
		out.Requirements = append(out.Requirements, r)
	}
	if o.Eras != nil {
		out.Eras = append([]coc.Era(nil), o.Eras...)
	}
	return out
}
