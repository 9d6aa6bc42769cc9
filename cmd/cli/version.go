package cli

import (
	"fmt"

	"github.com/autoflow/autoflow/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()

			fmt.Printf("autoflow %s\n", info.Version)
			if info.GitCommit != "" {
				fmt.Printf("  commit:   %s\n", info.GitCommit)
			}
			fmt.Printf("  go:       %s\n", info.GoVersion)
			fmt.Printf("  platform: %s\n", info.Platform)
		},
	}
}
