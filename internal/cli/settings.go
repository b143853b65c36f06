package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/abacus/internal/config"
	"github.com/watchfire-io/abacus/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show global settings",
	Long:    `Show the settings stored in ~/.abacus/settings.yaml.`,
	Args:    cobra.NoArgs,
	RunE:    runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a setting and save it to ~/.abacus/settings.yaml.

Keys:
  theme          default, green, blue or yellow
  animation      true or false
  banner         path to a banner text file ("" to remove)
  max-factorial  largest n accepted by factorial`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	banner := settings.Appearance.Banner
	if banner == "" {
		banner = styleHint.Render("(none)")
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s\n", styleBrand.Render("Settings"), styleHint.Render(path))
	printSetting(cmd, "theme", settings.Appearance.Theme)
	printSetting(cmd, "animation", strconv.FormatBool(settings.Appearance.Animation))
	printSetting(cmd, "banner", banner)
	printSetting(cmd, "max-factorial", strconv.Itoa(settings.Limits.MaxFactorial))
	return nil
}

func printSetting(cmd *cobra.Command, key, value string) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-14s", key+":")), styleValue.Render(value))
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := applySetting(settings, args[0], args[1]); err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render(fmt.Sprintf("Set %s to %q.", args[0], args[1])))
	return nil
}

func applySetting(s *models.Settings, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		value = strings.ToLower(value)
		if !models.ValidTheme(value) {
			return fmt.Errorf("invalid theme %q (expected one of: %s)", value, strings.Join(models.Themes, ", "))
		}
		s.Appearance.Theme = value
	case "animation":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid animation value %q (expected true or false)", value)
		}
		s.Appearance.Animation = on
	case "banner":
		s.Appearance.Banner = value
	case "max-factorial", "max_factorial":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid max-factorial %q (expected a positive integer)", value)
		}
		s.Limits.MaxFactorial = n
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
