package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/coc-api/internal/catalog"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
	"github.com/KirkDiggler/coc-api/internal/i18n"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected i18n.Locale
	}{
		{"empty", nil, i18n.English},
		{"blank", []string{"  "}, i18n.English},
		{"spanish", []string{"es"}, i18n.Spanish},
		{"regional spanish", []string{"es-MX"}, i18n.Spanish},
		{"accept language list", []string{"es-AR,es;q=0.9,en;q=0.5"}, i18n.Spanish},
		{"unsupported falls back", []string{"ja"}, i18n.English},
		{"english", []string{"en-GB"}, i18n.English},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, i18n.Match(tc.input...))
		})
	}
}

func TestSpanishTable(t *testing.T) {
	table := i18n.For(i18n.Spanish)

	assert.Equal(t, i18n.Spanish, table.Locale())
	assert.Equal(t, "Esquivar", table.Skill(coc.Skill{ID: coc.SkillIDDodge, Name: coc.SkillDodge}))
	assert.Equal(t, "FUE", table.Characteristic(coc.STR))
	assert.Equal(t, "Ciencia", table.Skill(coc.Skill{ID: "science", Field: "Science", IsFieldHeader: true}))
	assert.Equal(t, "Ciencia: Biology", table.Skill(coc.Skill{
		ID: "science_slot_1", Name: "Science: Biology", Field: "Science", IsFieldSlot: true,
	}))
	assert.Equal(t, "Lore", table.Skill(coc.Skill{ID: "custom_1", Name: "Lore", IsCustom: true}))
}

func TestEnglishTableIsIdentity(t *testing.T) {
	table := i18n.For(i18n.Locale("fr"))

	assert.Equal(t, i18n.English, table.Locale())
	assert.Equal(t, "STR", table.Characteristic(coc.STR))
	assert.Equal(t, "Spot Hidden", table.Skill(coc.Skill{ID: "spot_hidden", Name: "Spot Hidden"}))
}

func TestSpanishCoversSeededSkills(t *testing.T) {
	table := i18n.For(i18n.Spanish)

	for _, era := range []coc.Era{coc.Era1920s, coc.EraModern, coc.EraDarkAges} {
		names := table.SkillNames(catalog.SeedSkills(era))
		for _, sk := range catalog.SeedSkills(era) {
			if sk.IsBlank() {
				assert.NotContains(t, names, sk.ID)
				continue
			}
			assert.NotEqual(t, sk.Name, names[sk.ID], "%s untranslated in %s", sk.ID, era)
		}
	}

	assert.Len(t, table.CharacteristicNames(), len(coc.AllCharacteristics))
}
