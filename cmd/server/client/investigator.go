package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	investigatorID string
	ownerID        string
	name           string
	player         string
	era            string
	locale         string
	characterFile  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new investigator",
	Long:  `Create a new investigator with default characteristics and the era's skill list.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("CreateInvestigator", map[string]any{
			"ownerId": ownerID,
			"name":    name,
			"player":  player,
			"era":     era,
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get an investigator",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("GetInvestigator", map[string]any{"id": investigatorID, "locale": locale})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List an owner's investigators",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("ListInvestigators", map[string]any{"ownerId": ownerID})
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Replace an investigator with the contents of a JSON file",
	Long: `Save reads a whole investigator record, as printed by get, and stores it.
Derived values are recomputed by the server.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		raw, err := os.ReadFile(characterFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", characterFile, err)
		}

		var character map[string]any
		if err := json.Unmarshal(raw, &character); err != nil {
			return fmt.Errorf("failed to parse %s: %w", characterFile, err)
		}
		// accept the output of get as is
		if inner, ok := character["character"].(map[string]any); ok {
			character = inner
		}

		return invoke("SaveInvestigator", map[string]any{"character": character})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an investigator and its roll log",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("DeleteInvestigator", map[string]any{"id": investigatorID})
	},
}

func init() {
	createCmd.Flags().StringVar(&ownerID, "owner-id", "", "Owner ID (required)")
	createCmd.Flags().StringVar(&name, "name", "", "Investigator name")
	createCmd.Flags().StringVar(&player, "player", "", "Player name")
	createCmd.Flags().StringVar(&era, "era", "1920s", "Era: 1920s, modern or darkAges")
	_ = createCmd.MarkFlagRequired("owner-id") // nolint:errcheck // safe to ignore in init

	idFlag(getCmd, &investigatorID)
	getCmd.Flags().StringVar(&locale, "locale", "", "Label language, e.g. es or en-US")

	listCmd.Flags().StringVar(&ownerID, "owner-id", "", "Owner ID (required)")
	_ = listCmd.MarkFlagRequired("owner-id") // nolint:errcheck // safe to ignore in init

	saveCmd.Flags().StringVar(&characterFile, "file", "", "Path to the investigator JSON (required)")
	_ = saveCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	idFlag(deleteCmd, &investigatorID)
}
