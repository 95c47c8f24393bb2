package i18n

import "github.com/KirkDiggler/coc-api/internal/entities/coc"

var spanishCharacteristics = map[coc.Characteristic]string{
	coc.STR: "FUE",
	coc.CON: "CON",
	coc.SIZ: "TAM",
	coc.DEX: "DES",
	coc.APP: "APA",
	coc.INT: "INT",
	coc.POW: "POD",
	coc.EDU: "EDU",
}

var spanishFields = map[string]string{
	"Art/Craft":        "Arte/Artesanía",
	"Fighting":         "Combatir",
	"Firearms":         "Armas de fuego",
	"Language (Other)": "Lengua (otra)",
	"Missile Weapons":  "Armas arrojadizas",
	"Pilot":            "Pilotar",
	"Science":          "Ciencia",
	"Survival":         "Supervivencia",
}

var spanishSkills = map[string]string{
	"accounting":       "Contabilidad",
	"anthropology":     "Antropología",
	"appraise":         "Tasación",
	"archaeology":      "Arqueología",
	"charm":            "Encanto",
	"climb":            "Trepar",
	"computer_use":     "Informática",
	"credit_rating":    "Crédito",
	"cthulhu_mythos":   "Mitos de Cthulhu",
	"disguise":         "Disfrazarse",
	"dodge":            "Esquivar",
	"drive_auto":       "Conducir automóvil",
	"elec_repair":      "Electricidad",
	"electronics":      "Electrónica",
	"fast_talk":        "Charlatanería",
	"fighting_brawl":   "Combatir (Pelea)",
	"fighting_spear":   "Combatir (Lanza)",
	"fighting_sword":   "Combatir (Espada)",
	"firearms_handgun": "Armas de fuego (Arma corta)",
	"firearms_rifle":   "Armas de fuego (Fusil/Escopeta)",
	"first_aid":        "Primeros auxilios",
	"history":          "Historia",
	"intimidate":       "Intimidar",
	"jump":             "Saltar",
	"language_own":     "Lengua propia",
	"law":              "Derecho",
	"library_use":      "Buscar libros",
	"listen":           "Escuchar",
	"locksmith":        "Cerrajería",
	"mech_repair":      "Mecánica",
	"medicine":         "Medicina",
	"missile_bow":      "Armas arrojadizas (Arco)",
	"missile_crossbow": "Armas arrojadizas (Ballesta)",
	"natural_world":    "Ciencias naturales",
	"navigate":         "Orientarse",
	"occult":           "Ocultismo",
	"op_hv_machine":    "Conducir maquinaria",
	"other_kingdoms":   "Otros reinos",
	"persuade":         "Persuasión",
	"psychoanalysis":   "Psicoanálisis",
	"psychology":       "Psicología",
	"read_write":       "Leer/Escribir",
	"ride":             "Equitación",
	"sleight_of_hand":  "Juego de manos",
	"spot_hidden":      "Descubrir",
	"stealth":          "Sigilo",
	"swim":             "Nadar",
	"throw":            "Lanzar",
	"track":            "Rastrear",
}
