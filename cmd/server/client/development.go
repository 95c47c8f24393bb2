package client

import (
	"github.com/spf13/cobra"
)

var (
	unmark          bool
	mode            string
	amount          int
	cancelOnFailure bool
	shareCode       string
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Tick a skill for development",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("MarkForImprovement", map[string]any{
			"id":      investigatorID,
			"skillId": skillID,
			"marked":  !unmark,
		})
	},
}

var improveCmd = &cobra.Command{
	Use:   "improve",
	Short: "Run the development check of a ticked skill",
	Long: `Improve rolls percentile dice against the skill and, on a success, a d10 gain.
With --mode manual the --amount is applied directly.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("ImproveSkill", map[string]any{
			"id":              investigatorID,
			"skillId":         skillID,
			"mode":            mode,
			"amount":          amount,
			"cancelOnFailure": cancelOnFailure,
		})
	},
}

var clearImprovementsCmd = &cobra.Command{
	Use:   "clear-improvements",
	Short: "Clear every development tick and result",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("ClearImprovements", map[string]any{"id": investigatorID})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print a share code for an investigator",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("ExportShareCode", map[string]any{"id": investigatorID})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Store the investigator of a share code as a new record",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("ImportShareCode", map[string]any{"ownerId": ownerID, "code": shareCode})
	},
}

var rollLogCmd = &cobra.Command{
	Use:   "roll-log",
	Short: "Show the dice rolled for an investigator",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("GetRollLog", map[string]any{"id": investigatorID})
	},
}

var clearRollLogCmd = &cobra.Command{
	Use:   "clear-roll-log",
	Short: "Delete the dice rolled for an investigator",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("ClearRollLog", map[string]any{"id": investigatorID})
	},
}

func init() {
	idFlag(markCmd, &investigatorID)
	markCmd.Flags().StringVar(&skillID, "skill-id", "", "Skill ID")
	markCmd.Flags().BoolVar(&unmark, "unmark", false, "Remove the tick instead")

	idFlag(improveCmd, &investigatorID)
	improveCmd.Flags().StringVar(&skillID, "skill-id", "", "Skill ID")
	improveCmd.Flags().StringVar(&mode, "mode", "roll", "roll or manual")
	improveCmd.Flags().IntVar(&amount, "amount", 0, "Increment for manual mode")
	improveCmd.Flags().BoolVar(&cancelOnFailure, "cancel-on-failure", false, "Leave the skill untouched on a failed check")

	idFlag(clearImprovementsCmd, &investigatorID)
	idFlag(exportCmd, &investigatorID)

	importCmd.Flags().StringVar(&ownerID, "owner-id", "", "Owner ID (required)")
	importCmd.Flags().StringVar(&shareCode, "code", "", "Share code (required)")
	_ = importCmd.MarkFlagRequired("owner-id") // nolint:errcheck // safe to ignore in init
	_ = importCmd.MarkFlagRequired("code")     // nolint:errcheck // safe to ignore in init

	idFlag(rollLogCmd, &investigatorID)
	idFlag(clearRollLogCmd, &investigatorID)
}
