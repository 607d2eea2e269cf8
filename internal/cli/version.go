package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printKV(cmd.OutOrStdout(),
			"skwizzd", rootCmd.Version,
			"go", runtime.Version(),
			"platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
