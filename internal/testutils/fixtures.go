package testutils

import (
	"github.com/KirkDiggler/coc-api/internal/catalog"
	"github.com/KirkDiggler/coc-api/internal/engine/allocator"
	"github.com/KirkDiggler/coc-api/internal/engine/rules"
	"github.com/KirkDiggler/coc-api/internal/entities/coc"
)

// Creation stages for fixtures
const (
	StageFresh           = "fresh"
	StageCharacteristics = "characteristics"
	StageOccupation      = "occupation"

	// TestInvestigatorName is the default name for fixtures
	TestInvestigatorName = "Harvey Walters"

	// TestInvestigatorID is the default id for fixtures
	TestInvestigatorID = "inv-test-001"
)

// TestCharacteristics is a rolled spread with EDU 80, DEX 70 and STR 50
func TestCharacteristics() map[coc.Characteristic]int {
	return map[coc.Characteristic]int{
		coc.STR: 50,
		coc.CON: 60,
		coc.SIZ: 65,
		coc.DEX: 70,
		coc.APP: 45,
		coc.INT: 75,
		coc.POW: 55,
		coc.EDU: 80,
	}
}

// CreateTestInvestigator builds a 1920s investigator owned by ownerID
func CreateTestInvestigator(ownerID string) *coc.Character {
	ch := rules.NewCharacter(TestInvestigatorID, TestInvestigatorName, coc.Era1920s, catalog.SeedSkills(coc.Era1920s))
	ch.OwnerID = ownerID
	return ch
}

// CreateTestInvestigatorAtStage builds an investigator advanced to a creation stage
func CreateTestInvestigatorAtStage(ownerID, stage string) *coc.Character {
	ch := CreateTestInvestigator(ownerID)

	switch stage {
	case StageCharacteristics:
		ch = rules.Refill(rules.ApplyCharacteristics(ch, rules.CharacteristicUpdate{Values: TestCharacteristics()}))

	case StageOccupation:
		ch = rules.Refill(rules.ApplyCharacteristics(ch, rules.CharacteristicUpdate{Values: TestCharacteristics()}))
		occ, _ := catalog.LookupOccupation("Antiquarian")
		ch = allocator.SwitchOccupation(ch, occ)
	}

	return ch
}
