// Package i18n resolves display names for skills, characteristics and fields.
// Tables are immutable values selected per request; nothing in the rules engine or
// the allocator reads them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

// Locale is a supported display language
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// DefaultLocale is used when nothing better matches
const DefaultLocale = English

var (
	supportedTags = []language.Tag{language.English, language.Spanish}
	matcher       = language.NewMatcher(supportedTags)
)

// Supported lists the locales in preference order
func Supported() []Locale {
	return []Locale{English, Spanish}
}

// Match picks the best supported locale for a language tag or an Accept-Language
// style list such as "es-MX,es;q=0.9,en;q=0.5"
func Match(preferences ...string) Locale {
	var wanted []string
	for _, p := range preferences {
		if p = strings.TrimSpace(p); p != "" {
			wanted = append(wanted, p)
		}
	}
	if len(wanted) == 0 {
		return DefaultLocale
	}

	tag, _ := language.MatchStrings(matcher, wanted...)
	base, _ := tag.Base()
	switch base.String() {
	case "es":
		return Spanish
	default:
		return English
	}
}

// Table is the display-name lookup for one locale
type Table struct {
	locale          Locale
	skills          map[string]string
	fields          map[string]string
	characteristics map[coc.Characteristic]string
}

var tables = map[Locale]Table{
	English: {locale: English},
	Spanish: {
		locale:          Spanish,
		skills:          spanishSkills,
		fields:          spanishFields,
		characteristics: spanishCharacteristics,
	},
}

// For returns the table of a locale, falling back to English
func For(locale Locale) Table {
	if t, ok := tables[locale]; ok {
		return t
	}
	return tables[DefaultLocale]
}

// Locale returns the table's locale
func (t Table) Locale() Locale { return t.locale }

// Characteristic returns the display abbreviation of a characteristic
func (t Table) Characteristic(c coc.Characteristic) string {
	if name, ok := t.characteristics[c]; ok {
		return name
	}
	return string(c)
}

// Field returns the display name of a specialization field
func (t Table) Field(field string) string {
	if name, ok := t.fields[field]; ok {
		return name
	}
	return field
}

// Skill returns the display name of a skill row. Catalog skills translate by id,
// specializations translate their field prefix, user-named rows are left as typed.
func (t Table) Skill(s coc.Skill) string {
	if name, ok := t.skills[s.ID]; ok {
		return name
	}
	if s.IsFieldHeader {
		return t.Field(s.Field)
	}
	if s.Field != "" && s.Name != "" {
		if text := s.Specialization(); text != "" {
			return coc.SpecializationName(t.Field(s.Field), text)
		}
	}
	return s.Name
}

// SkillNames maps every skill id of a list to its display name
func (t Table) SkillNames(skills []coc.Skill) map[string]string {
	out := make(map[string]string, len(skills))
	for i := range skills {
		if skills[i].IsBlank() {
			continue
		}
		out[skills[i].ID] = t.Skill(skills[i])
	}
	return out
}

// CharacteristicNames maps every characteristic to its display abbreviation
func (t Table) CharacteristicNames() map[coc.Characteristic]string {
	out := make(map[coc.Characteristic]string, len(coc.AllCharacteristics))
	for _, c := range coc.AllCharacteristics {
		out[c] = t.Characteristic(c)
	}
	return out
}
