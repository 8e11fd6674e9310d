// Package cmd provides the root command and CLI setup for hygiene.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"oaks.dev/pkg/hygiene/internal/adapter"
	"oaks.dev/pkg/hygiene/internal/controller"
	"oaks.dev/pkg/hygiene/internal/domain"
	m "oaks.dev/pkg/hygiene/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore

// excludePatterns is a root-level flag naming directories every walk skips.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
}

const rootArgHelp = `ROOT defaults to the outermost directory above the working directory that
contains a Cargo.toml, or the working directory when there is none.`

const rootLongDescription = `Hygiene keeps the oaks lexer/parser workspace clean. It flags test code
placed outside the test directories, source files that grew past the line
limit, and build configurations that no longer compile cleanly.

` + rootArgHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hygiene",
		Short: "Repository hygiene gates for the oaks workspace",
		Long:  rootLongDescription,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Findings are reported on stdout; usage only helps with flag mistakes.
			cmd.SilenceUsage = true

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(
		&excludePatterns, excludeFlagName, "x",
		viper.GetStringSlice(excludeConfigKey),
		"directory name to skip while walking (can be repeated)",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// newWorkflow wires the checks to a UI writing to cmd's output.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	runner := adapter.NewLocalCommandRunner(buildTimeoutFromConfig())

	return domain.NewWorkflow(
		reportStore,
		ui,
		domain.NewPlacementChecker(fsAdapter, ui, placementRulesFromConfig()),
		domain.NewSizeChecker(fsAdapter, ui),
		domain.NewBuildChecker(fsAdapter, runner, ui),
	)
}

// resolveRoot returns the explicit ROOT argument, or the project root found
// from the working directory.
func resolveRoot(fs adapter.SourceFSAdapter, args []string) m.Path {
	if len(args) > 0 {
		return m.Path(args[0])
	}

	root, err := fs.FindProjectRoot(".", projectMarker)
	if err != nil {
		slog.Debug("No project root found, scanning working directory", "error", err)
		return "."
	}

	return root
}
