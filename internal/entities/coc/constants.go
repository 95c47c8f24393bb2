// Package coc implements the Call of Cthulhu investigator entities
package coc

import "strings"

// Era tags select the skill list and rules flavour of an investigator
type Era string

const (
	Era1920s    Era = "1920s"
	EraModern   Era = "modern"
	EraDarkAges Era = "darkAges"
)

// IsValid reports whether the era is one of the supported tags
func (e Era) IsValid() bool {
	switch e {
	case Era1920s, EraModern, EraDarkAges:
		return true
	default:
		return false
	}
}

// Characteristic names the eight primary attributes
type Characteristic string

const (
	STR Characteristic = "STR"
	CON Characteristic = "CON"
	SIZ Characteristic = "SIZ"
	DEX Characteristic = "DEX"
	APP Characteristic = "APP"
	INT Characteristic = "INT"
	POW Characteristic = "POW"
	EDU Characteristic = "EDU"
)

// AllCharacteristics lists the primary attributes in sheet order
var AllCharacteristics = []Characteristic{STR, CON, SIZ, DEX, APP, INT, POW, EDU}

// ParseCharacteristic maps an abbreviation (any case) to a Characteristic
func ParseCharacteristic(s string) (Characteristic, bool) {
	for _, c := range AllCharacteristics {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Stable skill ids the rules engine special-cases
const (
	SkillIDDodge        = "dodge"
	SkillIDOwnLanguage  = "language_own"
	SkillIDCthulhu      = "cthulhu_mythos"
	SkillIDCreditRating = "credit_rating"
)

// Skill names referenced by the rules
const (
	SkillDodge         = "Dodge"
	SkillOwnLanguage   = "Language (Own)"
	SkillCthulhuMythos = "Cthulhu Mythos"
	SkillCreditRating  = "Credit Rating"
)

// DefaultCharacteristicValue is the mid-range value a new investigator starts with
const DefaultCharacteristicValue = 50

// DefaultOccupationPoints is the commitment applied when an occupational skill is picked
const DefaultOccupationPoints = 10

// CustomOccupationPicks is the number of free picks a catalog miss receives
const CustomOccupationPicks = 8
