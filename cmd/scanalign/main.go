package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/scanalign/internal/app"
	"github.com/philipparndt/scanalign/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scanalign <fixed-file> <moving-file>",
	Short: "Interactive alignment viewer for pairs of 3D surface scans",
	Long: `scanalign loads two STL surface scans and aligns them interactively.
Pick a reference face on each scan; the tool derives a landmark on each
reference plane and rotates the assembly in two animated phases until
the landmarks line up.`,
	Version: version.GetVersion(),
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(args[0], args[1])
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
