// Package cfg provides configuration and command-line interface setup for pngopt.
package cfg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"pngopt/internal/argv"
	"pngopt/internal/domain/consts"
	"pngopt/internal/domain/errconsts"
	"pngopt/internal/domain/keys"
	"pngopt/internal/engine"
	"pngopt/internal/settings"
	"pngopt/internal/utils/fs"
	"pngopt/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewViper returns the program configuration, read from PNGOPT_* variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(keys.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // "debug-level" → PNGOPT_DEBUG_LEVEL
	v.AutomaticEnv()

	v.SetDefault(keys.DebugLevel, 0)
	v.SetDefault(keys.SettingsFile, consts.DefaultIniFile)
	v.SetDefault(keys.SettingsSection, consts.DefaultSection)
	return v
}

// NewRootCmd builds the command tree.
//
// Flag parsing is left to the argv package: settings flags use the
// "-Name:Value" form, which pflag does not understand.
func NewRootCmd(ctx context.Context, v *viper.Viper, opt engine.Optimizer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                consts.ProgramName + " (FILE [FILE2 [FILE3...]] | -file:\"yourfile.png\") [-recurs]",
		Short:              "Converts GIF, BMP and TGA files to optimized PNG files. Optimizes and cleans PNG files.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(ctx, cmd.OutOrStdout(), v, opt, argv.Parse(args))
		},
	}

	rootCmd.AddCommand(initSettingsCmds(v))
	return rootCmd
}

// Execute runs the command tree against args.
func Execute(ctx context.Context, v *viper.Viper, opt engine.Optimizer, args []string) error {
	rootCmd := NewRootCmd(ctx, v, opt)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// runOptimize resolves settings and files, then hands both to opt.
func runOptimize(ctx context.Context, w io.Writer, v *viper.Viper, opt engine.Optimizer, a *argv.Args) error {
	if a.HasFlag(keys.Help) {
		writeHelp(w)
		return nil
	}
	if a.HasFlag(keys.Version) {
		writeVersion(w)
		return nil
	}

	explicit := a.RegularArgs()
	if len(explicit) == 0 && !a.HasFlag(keys.File) {
		writeHelp(w)
		return nil
	}

	applyCommonFlags(a)

	// -settings[:PATH] switches the source to the INI file
	var (
		st  = settings.ArgDefaults()
		err error
	)
	if a.HasFlag(keys.SettingsFlag) {
		path := a.FlagString(keys.SettingsFlag)
		if path == "" {
			path = v.GetString(keys.SettingsFile)
		}
		section := v.GetString(keys.SettingsSection)
		logging.D(1, "Loading settings from section %q of %q", section, path)
		st, err = settings.LoadFile(path, section)
	} else {
		st, err = settings.FromArgs(a)
	}
	if err != nil {
		return err
	}

	pattern := a.FlagString(keys.File)
	files, err := fs.CollectFiles(explicit, pattern, a.HasFlag(keys.Recurs))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if pattern == "" {
			return errors.New(errconsts.NoInputFiles)
		}
		return fmt.Errorf(errconsts.FileNotFound, pattern)
	}

	logging.D(1, "Processing %d file(s)", len(files))
	return opt.OptimizeFiles(ctx, st, files)
}

// applyCommonFlags handles the flags every command accepts.
func applyCommonFlags(a *argv.Args) {
	if a.HasFlag(keys.Debug) {
		logging.SetLevel(a.FlagInt(keys.Debug))
	}
	for _, name := range settings.UnknownFlags(a, keys.File, keys.Recurs, keys.SettingsFlag, keys.Debug) {
		logging.D(1, "Ignoring unrecognized flag -%s", name)
	}
}

func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", consts.ProgramName, consts.ProgramVersion)
}

func writeHelp(w io.Writer) {
	writeVersion(w)
	fmt.Fprintln(w, "Converts GIF, BMP and TGA files to optimized PNG files.")
	fmt.Fprintln(w, "Optimizes and cleans PNG files.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usage:  %s (FILE [FILE2 [FILE3...]] | -file:\"yourfile.png\") [-recurs] [-settings[:PATH]] [-debug:N]\n", consts.ProgramName)
	settings.Usage(w, "  ")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "-file option specifies a file pattern to match files to be read from and written to.")
	fmt.Fprintln(w, "-recurs is valid only if the -file option is specified.")
	fmt.Fprintln(w, "-settings reads the engine settings from an INI file instead of the command line.")
	fmt.Fprintln(w, "-debug:N sets the debug output level (0 to 5).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Values enclosed with [] are optional.")
	fmt.Fprintln(w, "Chunk option meaning: R=Remove, K=Keep, F=Force. 0|1|2 can be used too.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input examples:")
	fmt.Fprintf(w, "  %s icon.png\n", consts.ProgramName)
	fmt.Fprintf(w, "  %s -file:\"*.png|*.bmp\" -recurs\n", consts.ProgramName)
	fmt.Fprintf(w, "  %s -file:\"gfx/\"\n", consts.ProgramName)
	fmt.Fprintf(w, "  %s settings save %s -KeepTextualData:F -ForcedTextKeyword:Title\n", consts.ProgramName, consts.DefaultIniFile)
}
