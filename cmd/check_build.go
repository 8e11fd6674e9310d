package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"oaks.dev/pkg/hygiene/internal/domain"
	m "oaks.dev/pkg/hygiene/internal/model"
)

var denyWarningsFlag bool
var buildLogFlag string
var profileFlags []string

// checkBuildCmd represents the check-build command.
var checkBuildCmd = newCheckBuildCmd()

func newCheckBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-build [ROOT]",
		Short: "Build every configured profile and collect compiler errors",
		Long: `Run the build tool once per profile in build.profiles, count the errors and
warnings it reports and write them to the build log. A relative log path is
placed in ROOT.

` + rootArgHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buildArgs, err := buildArgsFromConfig(resolveRoot(fsAdapter, args), profileFlags)
			if err != nil {
				return err
			}

			return newWorkflow(cmd).CheckBuild(cmd.Context(), buildArgs)
		},
	}

	configureCheckBuildFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkBuildCmd)
}

func configureCheckBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&denyWarningsFlag, denyWarningsFlagName, viper.GetBool(buildDenyWarningsKey), "treat compiler warnings as failures")
	bindFlagToConfig(cmd.Flags().Lookup(denyWarningsFlagName), buildDenyWarningsKey)

	cmd.Flags().StringVar(&buildLogFlag, buildLogFlagName, viper.GetString(buildLogFileKey), "file receiving the collected diagnostics")
	bindFlagToConfig(cmd.Flags().Lookup(buildLogFlagName), buildLogFileKey)

	cmd.Flags().StringSliceVar(&profileFlags, profileFlagName, nil, "only build the named profiles (can be repeated)")
}

func buildArgsFromConfig(root m.Path, selected []string) (domain.BuildArgs, error) {
	profiles, err := buildProfilesFromConfig(selected)
	if err != nil {
		return domain.BuildArgs{}, err
	}

	logFile := viper.GetString(buildLogFileKey)
	if !filepath.IsAbs(logFile) {
		logFile = filepath.Join(string(root), logFile)
	}

	return domain.BuildArgs{
		Root:         root,
		Tool:         viper.GetString(buildToolKey),
		Subcommand:   viper.GetString(buildSubcommandKey),
		ExtraArgs:    viper.GetStringSlice(buildArgsKey),
		Profiles:     profiles,
		LogFile:      m.Path(logFile),
		DenyWarnings: viper.GetBool(buildDenyWarningsKey),
		SpillDir:     viper.GetString(buildSpillDirKey),
	}, nil
}
