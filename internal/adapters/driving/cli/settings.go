package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markpy98/masteryai/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long:  `View and change the user name, theme colour and analysis detail level.`,
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings",
	Long: `Update one or more settings. Only the provided flags change;
everything else keeps its current value.`,
	RunE: runSettingsSet,
}

// Flags for settings set.
var (
	settingsSetName   string
	settingsSetTheme  string
	settingsSetDetail string
)

func init() {
	settingsSetCmd.Flags().StringVar(&settingsSetName, "name", "", "Display name")
	settingsSetCmd.Flags().StringVar(&settingsSetTheme, "theme", "", "Theme colour (indigo, emerald, rose)")
	settingsSetCmd.Flags().StringVar(&settingsSetDetail, "detail", "", "Analysis detail level (concise, detailed)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	applyTheme()

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(heading("Settings"))
	cmd.Println()
	cmd.Printf("  Name:    %s\n", settings.UserName)
	cmd.Printf("  Theme:   %s\n", settings.ThemeColor.Description())
	cmd.Printf("  Detail:  %s\n", settings.DetailLevel.Description())
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	changed := false
	if settingsSetName != "" {
		settings.UserName = settingsSetName
		changed = true
	}
	if settingsSetTheme != "" {
		settings.ThemeColor = domain.ThemeColor(settingsSetTheme)
		changed = true
	}
	if settingsSetDetail != "" {
		settings.DetailLevel = domain.DetailLevel(settingsSetDetail)
		changed = true
	}

	if !changed {
		cmd.Println("Nothing to change. Use --name, --theme or --detail.")
		return nil
	}

	if err := settingsService.Save(settings); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("invalid setting value: themes are %v, detail levels are %v",
				domain.AllThemeColors(), domain.AllDetailLevels())
		}
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings updated.")
	return nil
}
