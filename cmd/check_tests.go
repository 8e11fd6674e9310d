package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"oaks.dev/pkg/hygiene/internal/domain"
	m "oaks.dev/pkg/hygiene/internal/model"
)

var testsParallelFlag int
var testsReportFlag string

// checkTestsCmd represents the check-tests command.
var checkTestsCmd = newCheckTestsCmd()

func newCheckTestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-tests [ROOT]",
		Short: "Flag test markers outside the test directories",
		Long: `Walk ROOT and report every test marker (#[test], #[cfg(test)]) in an
implementation file that is followed by a module or function declaration.
Markers inside quote! { ... } templates are ignored.

` + rootArgHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newWorkflow(cmd).CheckTests(cmd.Context(), testsArgsFromConfig(resolveRoot(fsAdapter, args)))
		},
	}

	configureCheckTestsFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkTestsCmd)
}

func configureCheckTestsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&testsParallelFlag, parallelFlagName, "p", viper.GetInt(testsParallelKey), "number of files scanned concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), testsParallelKey)

	cmd.Flags().StringVar(&testsReportFlag, reportFlagName, viper.GetString(testsReportKey), "also write the violations to this YAML file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), testsReportKey)
}

func testsArgsFromConfig(root m.Path) domain.TestsArgs {
	return domain.TestsArgs{
		PlacementArgs: domain.PlacementArgs{
			Root:    root,
			Exclude: viper.GetStringSlice(excludeConfigKey),
			Threads: viper.GetInt(testsParallelKey),
		},
		Report: m.Path(viper.GetString(testsReportKey)),
	}
}
