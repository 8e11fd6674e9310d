package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"oaks.dev/pkg/hygiene/internal/domain"
	m "oaks.dev/pkg/hygiene/internal/model"
)

var maxLinesFlag int

// checkSizeCmd represents the check-size command.
var checkSizeCmd = newCheckSizeCmd()

func newCheckSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-size [ROOT]",
		Short: "Flag source files over the line limit",
		Long: `Walk ROOT and report every source file (size.extensions) whose line count
exceeds the limit.

` + rootArgHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newWorkflow(cmd).CheckSize(cmd.Context(), sizeArgsFromConfig(resolveRoot(fsAdapter, args)))
		},
	}

	configureCheckSizeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkSizeCmd)
}

func configureCheckSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&maxLinesFlag, maxLinesFlagName, viper.GetInt(sizeMaxLinesKey), "maximum number of lines per file")
	bindFlagToConfig(cmd.Flags().Lookup(maxLinesFlagName), sizeMaxLinesKey)
}

func sizeArgsFromConfig(root m.Path) domain.SizeArgs {
	return domain.SizeArgs{
		Root:       root,
		Exclude:    viper.GetStringSlice(excludeConfigKey),
		Extensions: viper.GetStringSlice(sizeExtensionsKey),
		MaxLines:   viper.GetInt(sizeMaxLinesKey),
	}
}
