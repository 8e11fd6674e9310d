package cmd

import (
	"github.com/spf13/cobra"
	"oaks.dev/pkg/hygiene/internal/domain"
)

var skipBuildFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [ROOT]",
		Short: "Run every hygiene gate",
		Long: `Run check-tests, check-size and check-build in that order and fail if any
of them fails. Each gate reads the same configuration as its own command.

` + rootArgHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := resolveRoot(fsAdapter, args)

			checkArgs := domain.CheckArgs{
				Tests:     testsArgsFromConfig(root),
				Size:      sizeArgsFromConfig(root),
				SkipBuild: skipBuildFlag,
			}

			if !skipBuildFlag {
				buildArgs, err := buildArgsFromConfig(root, profileFlags)
				if err != nil {
					return err
				}

				checkArgs.Build = buildArgs
			}

			return newWorkflow(cmd).CheckAll(cmd.Context(), checkArgs)
		},
	}

	cmd.Flags().BoolVar(&skipBuildFlag, skipBuildFlagName, false, "skip the build gate")
	cmd.Flags().StringSliceVar(&profileFlags, profileFlagName, nil, "only build the named profiles (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
