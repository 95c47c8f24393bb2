package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	characteristicValues []string
	age                  int

	occupation       string
	formula          string
	stat             string
	skillID          string
	newTotal         int
	pool             string
	requirementIndex int
	field            string
	text             string
	query            string
	limit            int
)

var updateCharacteristicsCmd = &cobra.Command{
	Use:   "update-characteristics",
	Short: "Set characteristics, e.g. --set STR=60 --set EDU=75",
	RunE: func(cmd *cobra.Command, _ []string) error {
		values := make(map[string]any, len(characteristicValues))
		for _, kv := range characteristicValues {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("expected NAME=VALUE, got %q", kv)
			}
			values[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}

		fields := map[string]any{"id": investigatorID, "values": values}
		if cmd.Flags().Changed("age") {
			fields["age"] = age
		}
		return invoke("UpdateCharacteristics", fields)
	},
}

var rollCharacteristicsCmd = &cobra.Command{
	Use:   "roll-characteristics",
	Short: "Roll every characteristic and luck",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("RollCharacteristics", map[string]any{"id": investigatorID})
	},
}

var listOccupationsCmd = &cobra.Command{
	Use:   "list-occupations",
	Short: "Search the occupation catalog",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("ListOccupations", map[string]any{"era": era, "query": query, "limit": limit})
	},
}

var setOccupationCmd = &cobra.Command{
	Use:   "set-occupation",
	Short: "Switch to a catalog occupation, or a custom one when the name is unknown",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("SetOccupation", map[string]any{"id": investigatorID, "occupation": occupation})
	},
}

var customizeOccupationCmd = &cobra.Command{
	Use:   "customize-occupation",
	Short: "Rename the occupation and override its point formula",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("CustomizeOccupation", map[string]any{
			"id":      investigatorID,
			"name":    occupation,
			"formula": formula,
		})
	},
}

var selectStatCmd = &cobra.Command{
	Use:   "select-stat",
	Short: "Pick the characteristic of a choice formula; empty clears it",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("SelectOccupationStat", map[string]any{"id": investigatorID, "stat": stat})
	},
}

var allocationCmd = &cobra.Command{
	Use:   "allocation",
	Short: "Show skill point budgets and requirement progress",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("GetAllocation", map[string]any{"id": investigatorID})
	},
}

var assignPointsCmd = &cobra.Command{
	Use:   "assign-points",
	Short: "Set a skill's total value, paying from a pool",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("AssignPoints", map[string]any{
			"id":       investigatorID,
			"skillId":  skillID,
			"newTotal": newTotal,
			"pool":     pool,
		})
	},
}

var selectChoiceCmd = &cobra.Command{
	Use:   "select-choice",
	Short: "Pick a skill for a choice requirement",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("SelectChoiceOption", map[string]any{
			"id":               investigatorID,
			"requirementIndex": requirementIndex,
			"skillId":          skillID,
		})
	},
}

var deselectChoiceCmd = &cobra.Command{
	Use:   "deselect-choice",
	Short: "Release a picked skill and refund its occupation points",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("DeselectChoiceOption", map[string]any{"id": investigatorID, "skillId": skillID})
	},
}

var addSpecializationCmd = &cobra.Command{
	Use:   "add-specialization",
	Short: "Name a specialization for a field requirement",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("AddFieldSpecialization", map[string]any{
			"id":               investigatorID,
			"requirementIndex": requirementIndex,
			"field":            field,
			"text":             text,
		})
	},
}

var addAnyPickCmd = &cobra.Command{
	Use:   "add-any-pick",
	Short: "Claim a skill for an any requirement",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("AddAnyPick", map[string]any{
			"id":               investigatorID,
			"requirementIndex": requirementIndex,
			"skillId":          skillID,
		})
	},
}

var addFieldSlotCmd = &cobra.Command{
	Use:   "add-field-slot",
	Short: "Append a blank slot to a field",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("AddFieldSlot", map[string]any{"id": investigatorID, "field": field})
	},
}

var renameSkillCmd = &cobra.Command{
	Use:   "rename-skill",
	Short: "Name a field slot or custom skill",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("RenameSkill", map[string]any{"id": investigatorID, "skillId": skillID, "text": text})
	},
}

func init() {
	idFlag(updateCharacteristicsCmd, &investigatorID)
	updateCharacteristicsCmd.Flags().StringArrayVar(&characteristicValues, "set", nil, "NAME=VALUE, repeatable")
	updateCharacteristicsCmd.Flags().IntVar(&age, "age", 0, "Investigator age")

	idFlag(rollCharacteristicsCmd, &investigatorID)

	listOccupationsCmd.Flags().StringVar(&era, "era", "1920s", "Era: 1920s, modern or darkAges")
	listOccupationsCmd.Flags().StringVar(&query, "query", "", "Fuzzy search text")
	listOccupationsCmd.Flags().IntVar(&limit, "limit", 0, "Maximum results")

	idFlag(setOccupationCmd, &investigatorID)
	setOccupationCmd.Flags().StringVar(&occupation, "occupation", "", "Occupation name (required)")
	_ = setOccupationCmd.MarkFlagRequired("occupation") // nolint:errcheck // safe to ignore in init

	idFlag(customizeOccupationCmd, &investigatorID)
	customizeOccupationCmd.Flags().StringVar(&occupation, "name", "", "Occupation name (required)")
	customizeOccupationCmd.Flags().StringVar(&formula, "formula", "", "Point formula, e.g. EDU*2+(DEX|STR)*2")
	_ = customizeOccupationCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	idFlag(selectStatCmd, &investigatorID)
	selectStatCmd.Flags().StringVar(&stat, "stat", "", "Characteristic, e.g. DEX")

	idFlag(allocationCmd, &investigatorID)

	idFlag(assignPointsCmd, &investigatorID)
	assignPointsCmd.Flags().StringVar(&skillID, "skill-id", "", "Skill ID (required)")
	assignPointsCmd.Flags().IntVar(&newTotal, "total", 0, "New total value")
	assignPointsCmd.Flags().StringVar(&pool, "pool", "occupation", "Pool: occupation or personal")
	_ = assignPointsCmd.MarkFlagRequired("skill-id") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{selectChoiceCmd, addAnyPickCmd, addSpecializationCmd} {
		idFlag(cmd, &investigatorID)
		cmd.Flags().IntVar(&requirementIndex, "requirement", 0, "Requirement index in the occupation's list")
	}
	selectChoiceCmd.Flags().StringVar(&skillID, "skill-id", "", "Skill ID")
	addAnyPickCmd.Flags().StringVar(&skillID, "skill-id", "", "Skill ID")
	addSpecializationCmd.Flags().StringVar(&field, "field", "", "Field, e.g. Science")
	addSpecializationCmd.Flags().StringVar(&text, "text", "", "Specialization, e.g. Chemistry")

	idFlag(deselectChoiceCmd, &investigatorID)
	deselectChoiceCmd.Flags().StringVar(&skillID, "skill-id", "", "Skill ID")

	idFlag(addFieldSlotCmd, &investigatorID)
	addFieldSlotCmd.Flags().StringVar(&field, "field", "", "Field, e.g. Language (Other)")

	idFlag(renameSkillCmd, &investigatorID)
	renameSkillCmd.Flags().StringVar(&skillID, "skill-id", "", "Skill ID")
	renameSkillCmd.Flags().StringVar(&text, "text", "", "New name")
}
