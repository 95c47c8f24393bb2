// Package allocator computes the occupation and personal interest budgets of an
// investigator and commits skill points against them under an occupation's
// requirement structure. Every function works on copies; callers replace their
// record with the result.
package allocator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/errors"
)

// DefaultFormula is used whenever a formula cannot be parsed
const DefaultFormula = "EDU*4"

var (
	// STAT*N, (A|B)*N, (A|B|C)*N after normalisation
	termRegex = regexp.MustCompile(`^\(?([A-Z|]+)\)?\*(\d+)$`)

	formulaReplacer = strings.NewReplacer(
		"×", "*",
		" OR ", "|",
		"/", "|",
		" ", "",
		"\t", "",
	)

	// DEX X 2 style multipliers; the X must be followed by digits only
	letterTimesRegex = regexp.MustCompile(`X(\d+)$`)
)

// Term is one summand of an occupation formula
type Term struct {
	Candidates []coc.Characteristic
	Multiplier int
}

// IsChoice reports whether the term lets the player pick between stats
func (t Term) IsChoice() bool {
	return len(t.Candidates) > 1
}

// Formula is a parsed occupation point formula
type Formula struct {
	Expr  string
	Terms []Term
}

// ParseFormula parses expressions like "EDU*4" or "EDU*2 + (STR|DEX)*2"
func ParseFormula(expr string) (Formula, error) {
	normalized := formulaReplacer.Replace(strings.ToUpper(expr))
	if normalized == "" {
		return Formula{}, errors.InvalidArgument("formula is empty")
	}

	f := Formula{Expr: expr}
	for _, raw := range strings.Split(normalized, "+") {
		term, err := parseTerm(raw)
		if err != nil {
			return Formula{}, errors.Wrapf(err, "formula %q", expr)
		}
		f.Terms = append(f.Terms, term)
	}
	return f, nil
}

// FormulaOrDefault parses expr and falls back to EDU*4 when it is malformed
func FormulaOrDefault(expr string) Formula {
	f, err := ParseFormula(expr)
	if err != nil {
		f, _ = ParseFormula(DefaultFormula)
	}
	return f
}

func parseTerm(raw string) (Term, error) {
	if !strings.Contains(raw, "*") {
		raw = letterTimesRegex.ReplaceAllString(raw, "*$1")
	}

	matches := termRegex.FindStringSubmatch(raw)
	if len(matches) != 3 {
		return Term{}, errors.InvalidArgumentf("malformed term %q", raw)
	}

	multiplier, err := strconv.Atoi(matches[2])
	if err != nil || multiplier <= 0 {
		return Term{}, errors.InvalidArgumentf("invalid multiplier in %q", raw)
	}

	var term Term
	term.Multiplier = multiplier
	for _, name := range strings.Split(matches[1], "|") {
		c, ok := coc.ParseCharacteristic(name)
		if !ok {
			return Term{}, errors.InvalidArgumentf("unknown characteristic %q", name)
		}
		term.Candidates = append(term.Candidates, c)
	}
	return term, nil
}

// ChoiceCandidates lists the stats a player may select between, in formula order
func (f Formula) ChoiceCandidates() []coc.Characteristic {
	var out []coc.Characteristic
	seen := map[coc.Characteristic]bool{}
	for _, t := range f.Terms {
		if !t.IsChoice() {
			continue
		}
		for _, c := range t.Candidates {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// HasChoice reports whether any term offers a stat choice
func (f Formula) HasChoice() bool {
	for _, t := range f.Terms {
		if t.IsChoice() {
			return true
		}
	}
	return false
}

// Evaluate totals the formula. Choice terms use selected when it is one of the
// candidates, otherwise the highest-valued candidate.
func (f Formula) Evaluate(chars coc.Characteristics, selected coc.Characteristic) int {
	total := 0
	for _, t := range f.Terms {
		total += chars.Get(t.pick(chars, selected)).Value * t.Multiplier
	}
	return total
}

// Resolve returns the stat each term would use, in term order
func (f Formula) Resolve(chars coc.Characteristics, selected coc.Characteristic) []coc.Characteristic {
	out := make([]coc.Characteristic, 0, len(f.Terms))
	for _, t := range f.Terms {
		out = append(out, t.pick(chars, selected))
	}
	return out
}

func (t Term) pick(chars coc.Characteristics, selected coc.Characteristic) coc.Characteristic {
	if !t.IsChoice() {
		return t.Candidates[0]
	}
	for _, c := range t.Candidates {
		if c == selected {
			return c
		}
	}

	best := t.Candidates[0]
	for _, c := range t.Candidates[1:] {
		if chars.Get(c).Value > chars.Get(best).Value {
			best = c
		}
	}
	return best
}
