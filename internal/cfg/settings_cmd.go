package cfg

import (
	"fmt"

	"pngopt/internal/argv"
	"pngopt/internal/domain/consts"
	"pngopt/internal/domain/keys"
	"pngopt/internal/settings"
	"pngopt/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initSettingsCmds is the entrypoint for the settings file commands.
func initSettingsCmds(v *viper.Viper) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Settings file commands",
		Long:  "Write engine settings given as flags into an INI file, or show the settings an INI file holds.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("please specify a subcommand (save or show)")
		},
	}

	settingsCmd.AddCommand(saveSettingsCmd(v))
	settingsCmd.AddCommand(showSettingsCmd(v))
	return settingsCmd
}

// filePath returns the first regular argument, or the configured settings file.
func filePath(v *viper.Viper, a *argv.Args) string {
	if regular := a.RegularArgs(); len(regular) > 0 {
		return regular[0]
	}
	return v.GetString(keys.SettingsFile)
}

// saveSettingsCmd resolves settings from flags and writes them to the INI file.
func saveSettingsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:                "save [PATH] [settings flags]",
		Short:              "Save settings flags to an INI file",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := argv.Parse(args)
			applyCommonFlags(a)

			st, err := settings.FromArgs(a)
			if err != nil {
				return err
			}

			path := filePath(v, a)
			section := v.GetString(keys.SettingsSection)
			if err := settings.SaveFile(st, path, section, consts.IniHeaderLine1, consts.IniHeaderLine2); err != nil {
				return err
			}

			logging.S("Saved settings to section %q of %q", section, path)
			return nil
		},
	}
}

// showSettingsCmd prints the settings held by the INI file.
func showSettingsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:                "show [PATH]",
		Short:              "Show the settings of an INI file",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := argv.Parse(args)
			applyCommonFlags(a)
			path := filePath(v, a)

			st, err := settings.LoadFile(path, v.GetString(keys.SettingsSection))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, line := range settings.Describe(st) {
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
}
